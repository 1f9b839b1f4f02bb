package analyzer

import (
	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/domain"
	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/internal/treebank"
)

// KleinTED computes a recursive structural distance with memoization. At
// each pair of subtrees it considers deleting one side wholesale, inserting
// the other wholesale, or matching the roots and optimally aligning the two
// children lists (itself a sequence edit distance using the recursion as
// substitution cost).
//
// Results are memoized on the pair of canonical subtree serializations, and
// the memo lives as long as the analyzer instance: across a corpus run,
// structurally repeated constituents (punctuation, common function-word
// phrases) are computed once. Not safe for concurrent use; give each worker
// its own instance or guard the memo externally.
type KleinTED struct {
	costs CostModel
	memo  map[kleinKey]float64

	hits   int
	misses int
}

type kleinKey struct {
	left  string
	right string
}

// NewKleinTED creates the Klein algorithm with the given cost model.
func NewKleinTED(costs CostModel) *KleinTED {
	if costs == nil {
		costs = NewUnitCostModel()
	}
	return &KleinTED{
		costs: costs,
		memo:  make(map[kleinKey]float64),
	}
}

// ID returns the algorithm identifier.
func (k *KleinTED) ID() domain.Algorithm {
	return domain.AlgorithmKlein
}

// Distance computes the memoized recursive distance between the trees.
func (k *KleinTED) Distance(canonical, headline *treebank.ParseTree) (float64, error) {
	return k.dist(canonical, headline), nil
}

// MemoStats returns the cache hit and miss counts accumulated so far.
func (k *KleinTED) MemoStats() (hits, misses int) {
	return k.hits, k.misses
}

// ResetMemo drops the cache and counters.
func (k *KleinTED) ResetMemo() {
	k.memo = make(map[kleinKey]float64)
	k.hits = 0
	k.misses = 0
}

func (k *KleinTED) dist(t1, t2 *treebank.ParseTree) float64 {
	if t1 == nil && t2 == nil {
		return 0.0
	}
	// An absent subtree means everything on the other side is inserted or
	// deleted at unit cost per node.
	if t1 == nil {
		return float64(t2.Size())
	}
	if t2 == nil {
		return float64(t1.Size())
	}

	key := kleinKey{left: t1.IdentityKey(), right: t2.IdentityKey()}
	if cached, ok := k.memo[key]; ok {
		k.hits++
		return cached
	}
	k.misses++

	var result float64
	if t1.Label == t2.Label {
		result = k.alignChildren(t1.Children, t2.Children)
	} else {
		// Three strategies: replace t1 wholesale, replace t2 wholesale,
		// or relabel the root and still align the children.
		replaceLeft := k.costs.Delete(t1) + k.dist(nil, t2)
		replaceRight := k.costs.Insert(t2) + k.dist(t1, nil)
		relabel := k.costs.Rename(t1, t2) + k.alignChildren(t1.Children, t2.Children)
		result = min3(replaceLeft, replaceRight, relabel)
	}

	k.memo[key] = result
	return result
}

// alignChildren computes the minimum-cost ordered alignment of two children
// lists. Each left child is deleted, matched in order against a right child,
// or a right child is inserted; substitution cost is the recursive distance.
func (k *KleinTED) alignChildren(left, right []*treebank.ParseTree) float64 {
	m := len(left)
	n := len(right)

	align := make([][]float64, m+1)
	for i := range align {
		align[i] = make([]float64, n+1)
	}

	for i := 1; i <= m; i++ {
		align[i][0] = align[i-1][0] + k.dist(left[i-1], nil)
	}
	for j := 1; j <= n; j++ {
		align[0][j] = align[0][j-1] + k.dist(nil, right[j-1])
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			deleteCost := align[i-1][j] + k.dist(left[i-1], nil)
			insertCost := align[i][j-1] + k.dist(nil, right[j-1])
			matchCost := align[i-1][j-1] + k.dist(left[i-1], right[j-1])

			align[i][j] = min3(deleteCost, insertCost, matchCost)
		}
	}

	return align[m][n]
}
