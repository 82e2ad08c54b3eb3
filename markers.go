package intervalskiplist

// placeMarkers walks the staircase from left to right, marking the highest
// edge out of each visited node that iv still contains, and recording iv in
// the eq-markers of every visited node whose key it contains.
func (s *IntervalSkipList[V, I]) placeMarkers(left, right *Node[V, I], ih *intervalCell[V, I]) {
	p := &s.cells
	iv := ih.iv

	x := left
	if iv.Contains(x.key) {
		x.eqMarkers.insert(p, ih)
	}

	// Ascending phase: raise the level greedily while the next edge up is
	// still contained, mark, advance.
	i := 0
	for x.forward[i] != nil && iv.ContainsInterval(x.key, x.forward[i].key) {
		for i != x.topLevel() && x.forward[i+1] != nil &&
			iv.ContainsInterval(x.key, x.forward[i+1].key) {
			i++
		}
		if x.forward[i] != nil {
			x.markers[i].insert(p, ih)
			x = x.forward[i]
			if iv.Contains(x.key) {
				x.eqMarkers.insert(p, ih)
			}
		}
	}

	// Descending phase: lower the level until the edge fits again, mark,
	// advance. x cannot run off the list before reaching right because
	// right's key terminates the walk.
	for x.key != right.key {
		for i != 0 && (x.forward[i] == nil ||
			!iv.ContainsInterval(x.key, x.forward[i].key)) {
			i--
		}
		x.markers[i].insert(p, ih)
		x = x.forward[i]
		if iv.Contains(x.key) {
			x.eqMarkers.insert(p, ih)
		}
	}

	if afterPlaceMarkersHook != nil {
		afterPlaceMarkersHook(s)
	}
}

// removeMarkers walks the identical staircase for iv, removing one matching
// cell from every touched list, and returns the interval handle the removed
// cells referenced. With duplicate intervals every touched list holds one
// cell per occurrence; pinning the sweep to the first handle found keeps
// the released cell unreferenced by the surviving occurrences. Returns nil
// when no list held a match, in which case nothing was removed.
func (s *IntervalSkipList[V, I]) removeMarkers(left *Node[V, I], iv I) *intervalCell[V, I] {
	p := &s.cells
	var res *intervalCell[V, I]
	take := func(l *markerList[V, I]) {
		if res != nil {
			if l.removeHandle(p, res) {
				return
			}
		}
		if ih := l.removeOne(p, iv); ih != nil && res == nil {
			res = ih
		}
	}

	x := left
	if iv.Contains(x.key) {
		take(&x.eqMarkers)
	}

	i := 0
	for x.forward[i] != nil && iv.ContainsInterval(x.key, x.forward[i].key) {
		for i != x.topLevel() && x.forward[i+1] != nil &&
			iv.ContainsInterval(x.key, x.forward[i+1].key) {
			i++
		}
		if x.forward[i] != nil {
			take(&x.markers[i])
			x = x.forward[i]
			if iv.Contains(x.key) {
				take(&x.eqMarkers)
			}
		}
	}

	for x.key != iv.Sup() {
		for i != 0 && (x.forward[i] == nil ||
			!iv.ContainsInterval(x.key, x.forward[i].key)) {
			i--
		}
		take(&x.markers[i])
		x = x.forward[i]
		if iv.Contains(x.key) {
			take(&x.eqMarkers)
		}
	}
	return res
}

// removeMarkFromLevel strips iv from the edge markers and eq-markers of
// every node on the level-i chain from l up to but excluding r, then from
// r's eq-markers only. r's outgoing edge belongs to the next segment and is
// left alone.
func (s *IntervalSkipList[V, I]) removeMarkFromLevel(iv I, i int, l, r *Node[V, I]) {
	p := &s.cells
	x := l
	for ; x != nil && x != r; x = x.forward[i] {
		x.markers[i].remove(p, iv)
		x.eqMarkers.remove(p, iv)
	}
	if x != nil {
		x.eqMarkers.remove(p, iv)
	}
}

// adjustMarkersOnInsert repairs the marker invariant after x was spliced in
// with update vector update. Markers that now span a taller containment
// range around x are promoted level by level; the rest settle on x's edges.
func (s *IntervalSkipList[V, I]) adjustMarkersOnInsert(x *Node[V, I], update []*Node[V, I]) {
	p := &s.cells
	var promoted, newPromoted, removePromoted, tempMarkList markerList[V, I]

	// Phase 1: edges leading out of x. Climb from the bottom, carrying
	// the set of markers still being promoted.
	i := 0
	for ; i <= x.topLevel()-1 && x.forward[i+1] != nil; i++ {
		for m := update[i].markers[i].first(); m != nil; m = m.next {
			if m.ih.iv.ContainsInterval(x.key, x.forward[i+1].key) {
				// Promotable: strip it from the level-i path it no
				// longer terminates on.
				s.removeMarkFromLevel(m.ih.iv, i, x.forward[i], x.forward[i+1])
				newPromoted.insert(p, m.ih)
				s.metrics.promotions++
			} else {
				// Settles on the level-i edge out of x. It is already
				// on x.forward[i]'s own edge.
				x.markers[i].insert(p, m.ih)
			}
		}

		for m := promoted.first(); m != nil; m = m.next {
			if !m.ih.iv.ContainsInterval(x.key, x.forward[i+1].key) {
				// Reached its ceiling.
				x.markers[i].insert(p, m.ih)
				if m.ih.iv.Contains(x.forward[i].key) {
					x.forward[i].eqMarkers.insert(p, m.ih)
				}
				removePromoted.insert(p, m.ih)
			} else {
				s.removeMarkFromLevel(m.ih.iv, i, x.forward[i], x.forward[i+1])
			}
		}
		promoted.removeAll(p, &removePromoted)
		removePromoted.clear(p)
		promoted.copyFrom(p, &newPromoted)
		newPromoted.clear(p)
	}
	// Deposit the carried set and the old edge's markers on the top
	// non-null edge out of x. promoted is non-empty only if that edge
	// exists.
	x.markers[i].copyFrom(p, &promoted)
	x.markers[i].copyFrom(p, &update[i].markers[i])
	for m := promoted.first(); m != nil; m = m.next {
		if m.ih.iv.Contains(x.forward[i].key) {
			x.forward[i].eqMarkers.insert(p, m.ih)
		}
	}

	// Phase 2: edges leading into x. Markers may rise as high as the top
	// edge coming into x, but never onto an edge out of the header.
	promoted.clear(p)

	for i = 0; i <= x.topLevel()-1 && !update[i+1].isHeader; i++ {
		// Snapshot the edge's markers: removeMarkFromLevel mutates the
		// lists on the update[i+1]→x path, which includes this one.
		tempMarkList.copyFrom(p, &update[i].markers[i])
		for m := tempMarkList.first(); m != nil; m = m.next {
			if m.ih.iv.ContainsInterval(update[i+1].key, x.key) {
				newPromoted.insert(p, m.ih)
				s.metrics.promotions++
				s.removeMarkFromLevel(m.ih.iv, i, update[i+1], x)
			}
		}
		tempMarkList.clear(p)

		for m := promoted.first(); m != nil; m = m.next {
			if !update[i].isHeader &&
				m.ih.iv.ContainsInterval(update[i].key, x.key) &&
				!update[i+1].isHeader &&
				!m.ih.iv.ContainsInterval(update[i+1].key, x.key) {
				// Ceiling reached: settle on the level-i edge into x.
				update[i].markers[i].insert(p, m.ih)
				if m.ih.iv.Contains(update[i].key) {
					update[i].eqMarkers.insert(p, m.ih)
				}
				removePromoted.insert(p, m.ih)
			} else {
				s.removeMarkFromLevel(m.ih.iv, i, update[i+1], x)
			}
		}
		promoted.removeAll(p, &removePromoted)
		removePromoted.clear(p)
		promoted.copyFrom(p, &newPromoted)
		newPromoted.clear(p)
	}
	// Here i == x.topLevel() or update[i+1] is the header. Either way the
	// carried set belongs on the level-i edge into x; it is empty whenever
	// update[i] is the header, since header edges are never marked.
	update[i].markers[i].copyFrom(p, &promoted)
	for m := promoted.first(); m != nil; m = m.next {
		if m.ih.iv.Contains(update[i].key) {
			update[i].eqMarkers.insert(p, m.ih)
		}
	}
	promoted.clear(p)

	// x is brand-new, so every interval whose marker leaves x also covers
	// x itself.
	for i := 0; i <= x.topLevel(); i++ {
		x.eqMarkers.copyFrom(p, &x.markers[i])
	}

	if afterAdjustOnInsertHook != nil {
		afterAdjustOnInsertHook(s, x)
	}
}

// adjustMarkersOnDelete demotes markers in preparation for x being spliced
// out. x is still linked; update is its update vector.
func (s *IntervalSkipList[V, I]) adjustMarkersOnDelete(x *Node[V, I], update []*Node[V, I]) {
	p := &s.cells
	var demoted, newDemoted, tempRemoved markerList[V, I]

	// Phase 1: lower markers on edges into x, top level down.
	for i := x.topLevel(); i >= 0; i-- {
		for m := update[i].markers[i].first(); m != nil; m = m.next {
			if x.forward[i] == nil ||
				!m.ih.iv.ContainsInterval(update[i].key, x.forward[i].key) {
				newDemoted.insert(p, m.ih)
				s.metrics.demotions++
			}
		}
		update[i].markers[i].removeAll(p, &newDemoted)
		// update[i].eqMarkers stays: markers there before demotion belong
		// there after.

		for m := demoted.first(); m != nil; m = m.next {
			// Lay the mark along level i from update[i+1] to update[i].
			// update[i+1] itself already carries its eq-mark if it needs
			// one.
			var y *Node[V, I]
			for y = update[i+1]; y != nil && y != update[i]; y = y.forward[i] {
				if y != update[i+1] && m.ih.iv.Contains(y.key) {
					y.eqMarkers.insert(p, m.ih)
				}
				y.markers[i].insert(p, m.ih)
			}
			if y != nil && y != update[i+1] && m.ih.iv.Contains(y.key) {
				y.eqMarkers.insert(p, m.ih)
			}

			// If this is the lowest level the mark needs, it also covers
			// the post-removal edge out of update[i] and leaves the
			// demoted set.
			if x.forward[i] != nil &&
				m.ih.iv.ContainsInterval(update[i].key, x.forward[i].key) {
				update[i].markers[i].insert(p, m.ih)
				tempRemoved.insert(p, m.ih)
			}
		}
		demoted.removeAll(p, &tempRemoved)
		tempRemoved.clear(p)
		demoted.copyFrom(p, &newDemoted)
		newDemoted.clear(p)
	}

	// Phase 2: lower markers on edges out of x, top level down.
	demoted.clear(p)

	for i := x.topLevel(); i >= 0; i-- {
		for m := x.markers[i].first(); m != nil; m = m.next {
			if x.forward[i] != nil &&
				(update[i].isHeader ||
					!m.ih.iv.ContainsInterval(update[i].key, x.forward[i].key)) {
				newDemoted.insert(p, m.ih)
				s.metrics.demotions++
			}
		}

		for m := demoted.first(); m != nil; m = m.next {
			// Lay the mark along level i from x.forward[i] up to but not
			// including x.forward[i+1], which is already marked. The
			// demoted set is non-empty only below the top level, so the
			// i+1 access stays in range.
			for y := x.forward[i]; y != x.forward[i+1]; y = y.forward[i] {
				y.eqMarkers.insert(p, m.ih)
				y.markers[i].insert(p, m.ih)
			}

			if x.forward[i] != nil && !update[i].isHeader &&
				m.ih.iv.ContainsInterval(update[i].key, x.forward[i].key) {
				tempRemoved.insert(p, m.ih)
			}
		}
		demoted.removeAll(p, &tempRemoved)
		tempRemoved.clear(p)
		demoted.copyFrom(p, &newDemoted)
		newDemoted.clear(p)
	}
	demoted.clear(p)

	if afterAdjustOnDeleteHook != nil {
		afterAdjustOnDeleteHook(s, x)
	}
}
