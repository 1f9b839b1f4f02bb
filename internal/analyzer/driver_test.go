package analyzer

import (
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/domain"
	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/internal/config"
	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/internal/treebank"
)

// failingAlgorithm always errors, for failure-isolation tests.
type failingAlgorithm struct {
	id domain.Algorithm
}

func (f *failingAlgorithm) ID() domain.Algorithm { return f.id }

func (f *failingAlgorithm) Distance(canonical, headline *treebank.ParseTree) (float64, error) {
	return 0, errors.New("deliberate failure")
}

// panickingAlgorithm always panics, for recovery tests.
type panickingAlgorithm struct {
	id domain.Algorithm
}

func (p *panickingAlgorithm) ID() domain.Algorithm { return p.id }

func (p *panickingAlgorithm) Distance(canonical, headline *treebank.ParseTree) (float64, error) {
	panic("deliberate panic")
}

func quietDriver(cfg *config.TEDConfig) *TEDDriver {
	d := NewTEDDriver(cfg)
	d.SetLogger(log.New(io.Discard, "", 0))
	return d
}

func quietDriverWithRegistry(cfg *config.TEDConfig, registry AlgorithmRegistry) *TEDDriver {
	d := NewTEDDriverWithRegistry(cfg, registry)
	d.SetLogger(log.New(io.Discard, "", 0))
	return d
}

func makePair(t *testing.T, id, canonical, headline string) *treebank.SentencePair {
	t.Helper()
	pair := &treebank.SentencePair{Newspaper: "test", SentenceID: id}
	if canonical != "" {
		pair.Canonical = mustParse(t, canonical)
		pair.CanonicalText = pair.Canonical.Text()
	}
	if headline != "" {
		pair.Headline = mustParse(t, headline)
		pair.HeadlineText = pair.Headline.Text()
	}
	return pair
}

func TestDriverScoreCardinality(t *testing.T) {
	driver := quietDriver(config.DefaultTEDConfig())

	pairs := []*treebank.SentencePair{
		makePair(t, "test-1", "(S (NN dogs))", "(S (NN dog))"),
		makePair(t, "test-2", "(S (NP (DT The) (NN cat)) (VP (VBZ sits)))", "(S (NP (NN Cat)) (VP (VBZ sits)))"),
	}
	driver.ProcessPairs(pairs, nil)

	// One score per pair per enabled algorithm, zero distances included.
	assert.Len(t, driver.Scores(), 2*4)
	assert.Equal(t, 2, driver.Stats().PairsProcessed)
	assert.Equal(t, 8, driver.Stats().ScoresComputed)
	assert.Zero(t, driver.Stats().Failures)

	// Every event corresponds to a positive-distance score.
	positive := 0
	for _, score := range driver.Scores() {
		if score.Distance > 0 {
			positive++
		}
	}
	assert.Len(t, driver.Events(), positive)
}

func TestDriverIdenticalPairEmitsNoEvents(t *testing.T) {
	driver := quietDriver(config.DefaultTEDConfig())

	input := "(S (NP (DT The) (NN cat)) (VP (VBZ sits)))"
	driver.ProcessPair(makePair(t, "test-1", input, input))

	require.Len(t, driver.Scores(), 4)
	for _, score := range driver.Scores() {
		assert.Equal(t, 0.0, score.Distance)
	}
	assert.Empty(t, driver.Events())
}

func TestDriverSkipsPairsWithMissingTrees(t *testing.T) {
	driver := quietDriver(config.DefaultTEDConfig())

	driver.ProcessPair(makePair(t, "test-1", "(S (NN dogs))", ""))
	driver.ProcessPair(makePair(t, "test-2", "", "(S (NN dogs))"))
	driver.ProcessPair(nil)

	assert.Empty(t, driver.Scores())
	assert.Equal(t, 2, driver.Stats().PairsSkipped)
	assert.Zero(t, driver.Stats().PairsProcessed)
}

func TestDriverSizeGating(t *testing.T) {
	driver := quietDriver(config.DefaultTEDConfig())

	// Larger tree exceeds the default gate of 50 nodes: only the cheap
	// algorithms run.
	bigPair := &treebank.SentencePair{
		Newspaper:  "test",
		SentenceID: "test-big",
		Canonical:  chainTree(60),
		Headline:   mustParse(t, "(S (NN dogs))"),
	}
	driver.ProcessPair(bigPair)

	scores := driver.Scores()
	require.Len(t, scores, 2)
	assert.Equal(t, domain.AlgorithmSimple, scores[0].Algorithm)
	assert.Equal(t, domain.AlgorithmRTED, scores[1].Algorithm)
}

func TestDriverFailureIsolation(t *testing.T) {
	costs := NewUnitCostModel()
	registry := AlgorithmRegistry{
		domain.AlgorithmSimple:      NewSimpleTED(),
		domain.AlgorithmZhangShasha: &failingAlgorithm{id: domain.AlgorithmZhangShasha},
		domain.AlgorithmKlein:       &panickingAlgorithm{id: domain.AlgorithmKlein},
		domain.AlgorithmRTED:        NewRTED(costs),
	}
	driver := quietDriverWithRegistry(config.DefaultTEDConfig(), registry)

	driver.ProcessPair(makePair(t, "test-1", "(S (NN dogs))", "(S (NN dog))"))
	driver.ProcessPair(makePair(t, "test-2", "(S (NN cats))", "(S (NN cat))"))

	// The failing and panicking algorithms are counted, the healthy ones
	// still produce scores for every pair.
	stats := driver.Stats()
	assert.Equal(t, 2, stats.PairsProcessed)
	assert.Equal(t, 4, stats.Failures)
	assert.Equal(t, 4, stats.ScoresComputed)

	for _, score := range driver.Scores() {
		assert.Contains(t, []domain.Algorithm{domain.AlgorithmSimple, domain.AlgorithmRTED}, score.Algorithm)
	}
}

func TestDriverEventShape(t *testing.T) {
	driver := quietDriver(config.DefaultTEDConfig())
	driver.ProcessPair(makePair(t, "test-1",
		"(S (NP (DT The) (NN cat)) (VP (VBZ sits)))",
		"(S (NP (NN Cat)) (VP (VBZ sits)))",
	))

	events := driver.Events()
	require.NotEmpty(t, events)

	event := events[0]
	assert.Equal(t, "test", event.Newspaper)
	assert.Equal(t, "test-1", event.SentenceID)
	assert.Equal(t, domain.ParseTypeConstituency, event.ParseType)
	assert.Contains(t, event.FeatureID, "TED-")
	assert.Contains(t, event.FeatureMnemonic, "TED-")
	// Distance is symmetric, so both register values carry the same number.
	assert.Equal(t, event.CanonicalValue, event.HeadlineValue)
	assert.NotEmpty(t, event.CanonicalText)
}

func TestDriverLargeBatchCardinality(t *testing.T) {
	driver := quietDriver(config.DefaultTEDConfig())

	pairs := make([]*treebank.SentencePair, 0, 100)
	for i := 0; i < 100; i++ {
		canonical := "(S (NP (DT The) (NN cat)) (VP (VBZ sits)))"
		headline := "(S (NP (NN Cat)) (VP (VBZ sits)))"
		if i%2 == 0 {
			headline = canonical
		}
		pairs = append(pairs, makePair(t, "test-"+string(rune('a'+i%26)), canonical, headline))
	}
	driver.ProcessPairs(pairs, nil)

	// Full score table: one row per pair per algorithm, including zeros.
	assert.Len(t, driver.Scores(), 100*4)
	assert.Equal(t, 100, driver.Stats().PairsProcessed)

	positive := 0
	for _, score := range driver.Scores() {
		if score.Distance > 0 {
			positive++
		}
	}
	assert.Len(t, driver.Events(), positive)
	assert.Less(t, len(driver.Events()), len(driver.Scores()))
}

func TestDriverProcessPairsCallback(t *testing.T) {
	driver := quietDriver(config.DefaultTEDConfig())

	var calls []int
	driver.ProcessPairs([]*treebank.SentencePair{
		makePair(t, "test-1", "(S (NN a))", "(S (NN a))"),
		makePair(t, "test-2", "(S (NN b))", "(S (NN b))"),
	}, func(processed int) {
		calls = append(calls, processed)
	})

	assert.Equal(t, []int{1, 2}, calls)
}
