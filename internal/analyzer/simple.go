package analyzer

import (
	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/domain"
	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/internal/constants"
	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/internal/treebank"
)

// SimpleTED is a character-level approximation of tree edit distance: both
// trees are rendered to their bracketed string form and compared position by
// position. Cheap enough to run on trees of any size, which makes it the
// screening signal the size gate always allows through.
//
// The result is scaled and capped to stay comparable across sentence pairs.
// It is not a metric; callers must treat it as a coarse signal only.
type SimpleTED struct{}

// NewSimpleTED creates the string-approximation algorithm.
func NewSimpleTED() *SimpleTED {
	return &SimpleTED{}
}

// ID returns the algorithm identifier.
func (s *SimpleTED) ID() domain.Algorithm {
	return domain.AlgorithmSimple
}

// Distance approximates the edit distance between the two trees.
// A nil tree contributes a penalty equal to the other tree's size.
func (s *SimpleTED) Distance(canonical, headline *treebank.ParseTree) (float64, error) {
	if canonical == nil && headline == nil {
		return 0.0, nil
	}
	if canonical == nil {
		return float64(headline.Size()), nil
	}
	if headline == nil {
		return float64(canonical.Size()), nil
	}

	str1 := canonical.String()
	str2 := headline.String()

	shorter := len(str1)
	if len(str2) < shorter {
		shorter = len(str2)
	}

	// Positional mismatches plus the length difference: a crude surrogate
	// for edit distance, not a true Levenshtein computation.
	diff := len(str1) + len(str2) - 2*shorter
	for i := 0; i < shorter; i++ {
		if str1[i] != str2[i] {
			diff++
		}
	}

	distance := float64(diff) / constants.SimpleTEDDivisor
	if distance > constants.SimpleTEDCap {
		distance = constants.SimpleTEDCap
	}
	return distance, nil
}
