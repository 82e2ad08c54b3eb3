package intervalskiplist

// Test hooks (kept separate so instrumentation doesn't clutter logic).
// These are intended solely for test instrumentation and must not perform
// mutating operations on the list.
var (
	// afterAdjustOnInsertHook is invoked after marker repair for a newly
	// spliced-in endpoint node.
	afterAdjustOnInsertHook func(list any, node any)

	// afterAdjustOnDeleteHook is invoked after marker demotion for a node
	// about to be spliced out.
	afterAdjustOnDeleteHook func(list any, node any)

	// afterPlaceMarkersHook is invoked after an interval's staircase has
	// been marked.
	afterPlaceMarkersHook func(list any)

	// afterRemoveNodeHook is invoked after a node has been spliced out and
	// released.
	afterRemoveNodeHook func(list any)
)
