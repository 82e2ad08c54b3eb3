package intervalskiplist

import "sync"

// cellPool recycles marker cells. Each index owns its own pool; marker
// lists never share cells across indexes.
type cellPool[V comparable, I Interval[V]] struct {
	pool sync.Pool
}

func (p *cellPool[V, I]) acquire(ih *intervalCell[V, I]) *markerCell[V, I] {
	c, _ := p.pool.Get().(*markerCell[V, I])
	if c == nil {
		c = &markerCell[V, I]{}
	}
	c.ih = ih
	c.next = nil
	return c
}

func (p *cellPool[V, I]) release(c *markerCell[V, I]) {
	if c == nil {
		return
	}
	c.ih = nil
	c.next = nil
	p.pool.Put(c)
}

// intervalCell is the canonical storage slot for one stored interval. The
// address is stable until the cell is released, so marker cells reference
// it directly.
type intervalCell[V comparable, I Interval[V]] struct {
	iv   I
	prev *intervalCell[V, I]
	next *intervalCell[V, I]
}

// intervalStore hands out stable interval cells and tracks them in
// insertion order. Released cells go on a free list for reuse; the live
// count is the number of stored intervals.
type intervalStore[V comparable, I Interval[V]] struct {
	head *intervalCell[V, I]
	tail *intervalCell[V, I]
	free *intervalCell[V, I]
	live int
}

func (s *intervalStore[V, I]) acquire(iv I) *intervalCell[V, I] {
	c := s.free
	if c != nil {
		s.free = c.next
		c.next = nil
	} else {
		c = &intervalCell[V, I]{}
	}
	c.iv = iv
	c.prev = s.tail
	if s.tail != nil {
		s.tail.next = c
	} else {
		s.head = c
	}
	s.tail = c
	s.live++
	return c
}

func (s *intervalStore[V, I]) release(c *intervalCell[V, I]) {
	if c.prev != nil {
		c.prev.next = c.next
	} else {
		s.head = c.next
	}
	if c.next != nil {
		c.next.prev = c.prev
	} else {
		s.tail = c.prev
	}
	var zero I
	c.iv = zero
	c.prev = nil
	c.next = s.free
	s.free = c
	s.live--
}

func (s *intervalStore[V, I]) size() int { return s.live }

func (s *intervalStore[V, I]) reset() {
	s.head = nil
	s.tail = nil
	s.free = nil
	s.live = 0
}
