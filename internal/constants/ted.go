package constants

// Size gating defaults for TED algorithm selection.
const (
	// DefaultMaxTreeSize is the tree size above which only the cheap
	// algorithm subset runs.
	DefaultMaxTreeSize = 50

	// PerformanceMaxTreeSize is the tuned threshold used by the
	// "performance" preset.
	PerformanceMaxTreeSize = 30
)

// String-approximation scaling. The raw character-difference count is
// divided by SimpleTEDDivisor and capped at SimpleTEDCap so scores stay in
// a bounded range comparable across sentence pairs.
const (
	SimpleTEDDivisor = 10.0
	SimpleTEDCap     = 10.0
)

// RTEDSmallTreeLimit is the flattened node count up to which the adaptive
// algorithm takes the exact small-tree path.
const RTEDSmallTreeLimit = 10
