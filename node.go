package intervalskiplist

// Node is a key node of the interval skip list. It carries one forward link
// and one edge marker list per level, plus the eq-marker list holding every
// stored interval that contains the node's own key.
type Node[V comparable, I Interval[V]] struct {
	key      V
	isHeader bool
	// forward[i] is the successor on the level-i chain; markers[i] holds
	// the intervals marking the outgoing level-i edge. Both are indexed
	// 0..topLevel.
	forward   []*Node[V, I]
	markers   []markerList[V, I]
	eqMarkers markerList[V, I]
	// ownerCount is the number of endpoint incidences at this key. A
	// non-header node exists iff ownerCount > 0; a zero-length interval
	// contributes 2 to its single node.
	ownerCount int
}

func newNode[V comparable, I Interval[V]](key V, topLevel int) *Node[V, I] {
	return &Node[V, I]{
		key:     key,
		forward: make([]*Node[V, I], topLevel+1),
		markers: make([]markerList[V, I], topLevel+1),
	}
}

func newHeader[V comparable, I Interval[V]]() *Node[V, I] {
	var zero V
	n := newNode[V, I](zero, MaxLevel-1)
	n.isHeader = true
	return n
}

// Key returns the node's key. The result is meaningless on the header.
func (n *Node[V, I]) Key() V { return n.key }

// Level returns the number of levels the node participates in.
func (n *Node[V, I]) Level() int { return len(n.forward) }

func (n *Node[V, I]) topLevel() int { return len(n.forward) - 1 }

// OwnerCount returns the number of stored interval endpoints equal to the
// node's key.
func (n *Node[V, I]) OwnerCount() int { return n.ownerCount }

// Next returns the node's successor on the bottom level, or nil at the end
// of the list.
func (n *Node[V, I]) Next() *Node[V, I] { return n.forward[0] }
