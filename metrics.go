package intervalskiplist

// metrics counts structural work done by the index. The structure is
// single-writer, so plain integers suffice.
type metrics struct {
	intervalsInserted int64
	intervalsRemoved  int64
	nodesCreated      int64
	nodesRemoved      int64
	promotions        int64
	demotions         int64
}

// MetricsSnapshot reports cumulative operation counters. Promotions and
// demotions count marker moves between levels during invariant repair;
// they are the interesting cost driver of endpoint insertion and removal.
type MetricsSnapshot struct {
	IntervalsInserted int64
	IntervalsRemoved  int64
	NodesCreated      int64
	NodesRemoved      int64
	Promotions        int64
	Demotions         int64
}

// Metrics returns a snapshot of the index's cumulative counters. Clear does
// not reset them.
func (s *IntervalSkipList[V, I]) Metrics() MetricsSnapshot {
	return MetricsSnapshot{
		IntervalsInserted: s.metrics.intervalsInserted,
		IntervalsRemoved:  s.metrics.intervalsRemoved,
		NodesCreated:      s.metrics.nodesCreated,
		NodesRemoved:      s.metrics.nodesRemoved,
		Promotions:        s.metrics.promotions,
		Demotions:         s.metrics.demotions,
	}
}
