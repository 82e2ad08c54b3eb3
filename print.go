package intervalskiplist

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a diagnostic description of the structure: one block per key
// node with its levels, owner count, per-level forward keys and marker
// lists, and eq-markers.
func (s *IntervalSkipList[V, I]) Dump(w io.Writer) {
	fmt.Fprintf(w, "interval skip list: %d interval(s), maxLevel=%d\n", s.Len(), s.maxLevel)
	for n := s.header.Next(); n != nil; n = n.Next() {
		fmt.Fprintf(w, "node key=%v levels=%d ownerCount=%d\n", n.key, n.Level(), n.ownerCount)
		for i := 0; i <= n.topLevel(); i++ {
			fmt.Fprintf(w, "  forward[%d] = ", i)
			if n.forward[i] != nil {
				fmt.Fprintf(w, "%v", n.forward[i].key)
			} else {
				fmt.Fprint(w, "nil")
			}
			fmt.Fprintf(w, "  markers[%d] = %s\n", i, formatMarkers(&n.markers[i]))
		}
		fmt.Fprintf(w, "  eqMarkers = %s\n", formatMarkers(&n.eqMarkers))
	}
}

// String returns the stored keys in ascending order.
func (s *IntervalSkipList[V, I]) String() string {
	var b strings.Builder
	b.WriteString("keys:")
	for n := s.header.Next(); n != nil; n = n.Next() {
		fmt.Fprintf(&b, " %v", n.key)
	}
	return b.String()
}

func formatMarkers[V comparable, I Interval[V]](l *markerList[V, I]) string {
	if l.empty() {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	for x := l.first(); x != nil; x = x.next {
		if x != l.first() {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", x.ih.iv)
	}
	b.WriteByte('}')
	return b.String()
}
