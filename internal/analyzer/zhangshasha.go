package analyzer

import (
	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/domain"
	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/internal/treebank"
)

// ZhangShashaTED computes the formal ordered-tree edit distance in its
// sequence-alignment formulation: both trees are linearized to post-order
// label sequences and aligned with a full (n1+1)x(n2+1) dynamic program.
//
// Invariants, for unit costs:
//
//	|size1 - size2| <= distance <= max(size1, size2)
//	distance(T, T) == 0
//	distance(A, B) == distance(B, A)
//
// O(n1*n2) time and space. The driver's size gate keeps pathological inputs
// away from this path.
type ZhangShashaTED struct {
	costs CostModel
}

// NewZhangShashaTED creates the Zhang-Shasha algorithm with the given cost model.
func NewZhangShashaTED(costs CostModel) *ZhangShashaTED {
	if costs == nil {
		costs = NewUnitCostModel()
	}
	return &ZhangShashaTED{costs: costs}
}

// ID returns the algorithm identifier.
func (z *ZhangShashaTED) ID() domain.Algorithm {
	return domain.AlgorithmZhangShasha
}

// Distance computes the post-order sequence edit distance between the trees.
// When one tree is absent the distance is the size of the present tree
// (everything must be inserted or deleted).
func (z *ZhangShashaTED) Distance(canonical, headline *treebank.ParseTree) (float64, error) {
	if canonical == nil && headline == nil {
		return 0.0, nil
	}
	if canonical == nil {
		return float64(headline.Size()), nil
	}
	if headline == nil {
		return float64(canonical.Size()), nil
	}

	nodes1, _ := canonical.PostOrder()
	nodes2, _ := headline.PostOrder()

	n1 := len(nodes1)
	n2 := len(nodes2)

	dist := make([][]float64, n1+1)
	for i := range dist {
		dist[i] = make([]float64, n2+1)
	}

	// Transforming a prefix into the empty sequence is pure deletion;
	// the symmetric case is pure insertion.
	for i := 1; i <= n1; i++ {
		dist[i][0] = dist[i-1][0] + z.costs.Delete(nodes1[i-1])
	}
	for j := 1; j <= n2; j++ {
		dist[0][j] = dist[0][j-1] + z.costs.Insert(nodes2[j-1])
	}

	for i := 1; i <= n1; i++ {
		for j := 1; j <= n2; j++ {
			deleteCost := dist[i-1][j] + z.costs.Delete(nodes1[i-1])
			insertCost := dist[i][j-1] + z.costs.Insert(nodes2[j-1])
			renameCost := dist[i-1][j-1] + z.costs.Rename(nodes1[i-1], nodes2[j-1])

			dist[i][j] = min3(deleteCost, insertCost, renameCost)
		}
	}

	return dist[n1][n2], nil
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
