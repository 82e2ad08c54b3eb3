package intervalskiplist

// markerList is an unordered singly linked bag of interval handles attached
// to an edge or a node. Order within a list is not observable; stabbing
// queries treat each list as a multiset. Cells are drawn from the owning
// list's cellPool, so every operation that links or unlinks a cell takes
// the pool explicitly.
type markerList[V comparable, I Interval[V]] struct {
	head *markerCell[V, I]
}

// markerCell references an interval cell in the interval store and links to
// the next cell of its list.
type markerCell[V comparable, I Interval[V]] struct {
	ih   *intervalCell[V, I]
	next *markerCell[V, I]
}

func (l *markerList[V, I]) empty() bool { return l.head == nil }

func (l *markerList[V, I]) first() *markerCell[V, I] { return l.head }

// insert prepends a cell for ih. Duplicates are allowed; bulk copies during
// promotion rely on that.
func (l *markerList[V, I]) insert(p *cellPool[V, I], ih *intervalCell[V, I]) {
	c := p.acquire(ih)
	c.next = l.head
	l.head = c
}

// removeOne unlinks the first cell whose interval equals iv by value and
// returns the handle that was attached, or nil if no cell matches.
func (l *markerList[V, I]) removeOne(p *cellPool[V, I], iv I) *intervalCell[V, I] {
	var last *markerCell[V, I]
	for x := l.head; x != nil; last, x = x, x.next {
		if x.ih.iv == iv {
			res := x.ih
			if last == nil {
				l.head = x.next
			} else {
				last.next = x.next
			}
			p.release(x)
			return res
		}
	}
	return nil
}

// remove drops the first cell matching iv by value, if any.
func (l *markerList[V, I]) remove(p *cellPool[V, I], iv I) {
	l.removeOne(p, iv)
}

// removeHandle unlinks the first cell referencing exactly ih. It reports
// whether a cell was removed.
func (l *markerList[V, I]) removeHandle(p *cellPool[V, I], ih *intervalCell[V, I]) bool {
	var last *markerCell[V, I]
	for x := l.head; x != nil; last, x = x, x.next {
		if x.ih == ih {
			if last == nil {
				l.head = x.next
			} else {
				last.next = x.next
			}
			p.release(x)
			return true
		}
	}
	return false
}

// removeAll removes one cell from l for each cell of other, matching by
// interval value.
func (l *markerList[V, I]) removeAll(p *cellPool[V, I], other *markerList[V, I]) {
	for x := other.head; x != nil; x = x.next {
		l.remove(p, x.ih.iv)
	}
}

// copyFrom appends a cell for every handle of other. Cell identity is not
// shared; only the handles are.
func (l *markerList[V, I]) copyFrom(p *cellPool[V, I], other *markerList[V, I]) {
	for x := other.head; x != nil; x = x.next {
		l.insert(p, x.ih)
	}
}

// emit appends every interval value of the list to out.
func (l *markerList[V, I]) emit(out []I) []I {
	for x := l.head; x != nil; x = x.next {
		out = append(out, x.ih.iv)
	}
	return out
}

// contains reports whether some cell references exactly ih.
func (l *markerList[V, I]) contains(ih *intervalCell[V, I]) bool {
	for x := l.head; x != nil; x = x.next {
		if x.ih == ih {
			return true
		}
	}
	return false
}

// clear releases every cell back to the pool.
func (l *markerList[V, I]) clear(p *cellPool[V, I]) {
	for x := l.head; x != nil; {
		next := x.next
		p.release(x)
		x = next
	}
	l.head = nil
}
