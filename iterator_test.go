package intervalskiplist

import "testing"

func TestIteratorYieldsInsertionOrder(t *testing.T) {
	s := newIntIndex()
	inserted := []ClosedInterval[int]{ci(5, 9), ci(1, 3), ci(4, 4), ci(2, 8)}
	for _, iv := range inserted {
		s.Insert(iv)
	}

	it := s.Iterator()
	var got []ClosedInterval[int]
	for it.Next() {
		got = append(got, it.Interval())
	}
	if !equalIntervals(got, inserted) {
		t.Fatalf("iterator yielded %v, want insertion order %v", got, inserted)
	}
	if it.Valid() {
		t.Fatalf("expected iterator to be invalid after exhaustion")
	}
	if it.Next() {
		t.Fatalf("expected Next to keep failing after exhaustion")
	}
}

func TestIteratorSkipsRemovedIntervals(t *testing.T) {
	s := newIntIndex()
	s.Insert(ci(1, 3))
	s.Insert(ci(4, 6))
	s.Insert(ci(7, 9))
	if !s.Remove(ci(4, 6)) {
		t.Fatalf("expected removal to succeed")
	}

	var got []ClosedInterval[int]
	for it := s.Iterator(); it.Next(); {
		got = append(got, it.Interval())
	}
	want := []ClosedInterval[int]{ci(1, 3), ci(7, 9)}
	if !equalIntervals(got, want) {
		t.Fatalf("iterator yielded %v, want %v", got, want)
	}
}

func TestIteratorReusedSlotsKeepInsertionOrder(t *testing.T) {
	s := newIntIndex()
	s.Insert(ci(1, 3))
	s.Insert(ci(4, 6))
	if !s.Remove(ci(1, 3)) {
		t.Fatalf("expected removal to succeed")
	}
	// Reuses the released cell; it must still appear last.
	s.Insert(ci(10, 12))

	var got []ClosedInterval[int]
	for it := s.Iterator(); it.Next(); {
		got = append(got, it.Interval())
	}
	want := []ClosedInterval[int]{ci(4, 6), ci(10, 12)}
	if !equalIntervals(got, want) {
		t.Fatalf("iterator yielded %v, want %v", got, want)
	}
}

func TestIteratorOnEmptyIndex(t *testing.T) {
	s := newIntIndex()
	it := s.Iterator()
	if it.Valid() {
		t.Fatalf("fresh iterator must not be valid")
	}
	if it.Next() {
		t.Fatalf("expected no elements")
	}

	var nilIt *Iterator[int, ClosedInterval[int]]
	if nilIt.Valid() || nilIt.Next() {
		t.Fatalf("nil iterator must report invalid")
	}
}
