package analyzer

import (
	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/domain"
	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/internal/treebank"
)

// TEDAlgorithm computes a structural distance between two ordered labeled
// trees. Implementations must return a non-negative distance, handle nil
// subtrees (nil means "absent"), and be deterministic for identical inputs.
type TEDAlgorithm interface {
	// ID returns the algorithm's identifier.
	ID() domain.Algorithm

	// Distance computes the distance between the canonical and headline
	// parses. Both arguments may be nil.
	Distance(canonical, headline *treebank.ParseTree) (float64, error)
}

// AlgorithmRegistry maps algorithm identifiers to implementations. The
// driver dispatches through this table, so adding an algorithm means adding
// one identifier and one registry entry.
type AlgorithmRegistry map[domain.Algorithm]TEDAlgorithm

// NewAlgorithmRegistry builds the standard registry of all four algorithms
// sharing one cost model. The Klein entry owns a memo that persists for the
// registry's lifetime, so subtrees repeated across sentence pairs are
// served from cache.
func NewAlgorithmRegistry(costs CostModel) AlgorithmRegistry {
	return AlgorithmRegistry{
		domain.AlgorithmSimple:      NewSimpleTED(),
		domain.AlgorithmZhangShasha: NewZhangShashaTED(costs),
		domain.AlgorithmKlein:       NewKleinTED(costs),
		domain.AlgorithmRTED:        NewRTED(costs),
	}
}
