package intervalskiplist

import "cmp"

// Less reports whether a orders strictly before b.
type Less[V any] func(a, b V) bool

// Interval is the capability an interval type must provide to be stored in
// an IntervalSkipList. The index treats intervals as opaque values under
// these operations; open/closed endpoint policy lives entirely inside
// Contains and ContainsInterval.
//
// ContainsInterval(a, b) must hold exactly when every point of the closed
// range [a, b] is contained in the interval. Value equality (the embedded
// comparable) is used to match intervals inside marker lists, so two
// stored intervals are duplicates iff they compare equal with ==.
type Interval[V any] interface {
	comparable

	// Inf returns the lower endpoint. Inf() must order at or before Sup().
	Inf() V
	// Sup returns the upper endpoint.
	Sup() V
	// Contains reports whether v lies in the interval, honoring the
	// interval's own endpoint policy.
	Contains(v V) bool
	// ContainsInterval reports whether the closed range [a, b] lies
	// entirely in the interval.
	ContainsInterval(a, b V) bool
}

// ClosedInterval is the stock Interval implementation: both endpoints
// included.
type ClosedInterval[V cmp.Ordered] struct {
	Low  V
	High V
}

// NewClosedInterval returns the closed interval [low, high].
func NewClosedInterval[V cmp.Ordered](low, high V) ClosedInterval[V] {
	return ClosedInterval[V]{Low: low, High: high}
}

func (iv ClosedInterval[V]) Inf() V { return iv.Low }

func (iv ClosedInterval[V]) Sup() V { return iv.High }

func (iv ClosedInterval[V]) Contains(v V) bool {
	return iv.Low <= v && v <= iv.High
}

func (iv ClosedInterval[V]) ContainsInterval(a, b V) bool {
	return iv.Low <= a && b <= iv.High
}
