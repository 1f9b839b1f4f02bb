package analyzer

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/domain"
	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/internal/config"
	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/internal/treebank"
)

// DriverStats reports aggregate counts for one driver's run so partial
// failures are visible in the final summary instead of silently dropped.
type DriverStats struct {
	PairsProcessed int
	PairsSkipped   int
	ScoresComputed int
	Failures       int
}

// TEDDriver orchestrates algorithm selection and execution per sentence
// pair. For each pair it computes both tree sizes, asks the configuration
// which algorithms apply at the larger size, runs each through the registry,
// and accumulates one score record per algorithm plus a difference event
// whenever the distance is positive.
//
// A failure inside one algorithm never aborts the remaining algorithms or
// pairs: this is batch analysis, and losing one (pair, algorithm) unit of
// work must not sink the run.
type TEDDriver struct {
	config   *config.TEDConfig
	registry AlgorithmRegistry

	scores []domain.SentenceTEDScore
	events []domain.DifferenceEvent
	stats  DriverStats

	logger *log.Logger
}

// NewTEDDriver creates a driver with the standard algorithm registry built
// from the configuration's cost model.
func NewTEDDriver(cfg *config.TEDConfig) *TEDDriver {
	if cfg == nil {
		cfg = config.DefaultTEDConfig()
	}
	return NewTEDDriverWithRegistry(cfg, NewAlgorithmRegistry(NewCostModel(cfg.CostModelType)))
}

// NewTEDDriverWithRegistry creates a driver over an explicit registry.
// Tests use this to substitute instrumented algorithms.
func NewTEDDriverWithRegistry(cfg *config.TEDConfig, registry AlgorithmRegistry) *TEDDriver {
	if cfg == nil {
		cfg = config.DefaultTEDConfig()
	}
	return &TEDDriver{
		config:   cfg,
		registry: registry,
		logger:   log.New(os.Stderr, "", log.LstdFlags),
	}
}

// SetLogger redirects the driver's warning output.
func (d *TEDDriver) SetLogger(logger *log.Logger) {
	if logger != nil {
		d.logger = logger
	}
}

// ProcessPair runs the applicable algorithms on one sentence pair. A pair
// with either root missing is skipped entirely: a missing root is not the
// same as an absent subtree encountered during recursion, and guessing a
// degenerate distance for it would pollute the score distribution.
func (d *TEDDriver) ProcessPair(pair *treebank.SentencePair) {
	if pair == nil {
		return
	}
	if pair.Canonical == nil || pair.Headline == nil {
		d.stats.PairsSkipped++
		return
	}

	canonicalSize := pair.Canonical.Size()
	headlineSize := pair.Headline.Size()

	maxSize := canonicalSize
	if headlineSize > maxSize {
		maxSize = headlineSize
	}

	d.stats.PairsProcessed++

	for _, algID := range d.config.AlgorithmsForTreeSize(maxSize) {
		impl, ok := d.registry[algID]
		if !ok {
			d.stats.Failures++
			d.logger.Printf("ted: %s %s: no implementation registered for algorithm %s",
				pair.Newspaper, pair.SentenceID, algID)
			continue
		}

		distance, err := d.computeSafely(impl, pair)
		if err != nil {
			d.stats.Failures++
			d.logger.Printf("ted: %s %s: algorithm %s failed: %v",
				pair.Newspaper, pair.SentenceID, algID, err)
			continue
		}

		d.scores = append(d.scores, domain.SentenceTEDScore{
			Newspaper:         pair.Newspaper,
			SentenceID:        pair.SentenceID,
			Algorithm:         algID,
			Distance:          distance,
			CanonicalTreeSize: canonicalSize,
			HeadlineTreeSize:  headlineSize,
			CanonicalText:     pair.CanonicalText,
			HeadlineText:      pair.HeadlineText,
		})
		d.stats.ScoresComputed++

		if distance > 0 {
			d.events = append(d.events, d.newDifferenceEvent(pair, algID, distance))
		}
	}
}

// ProcessPairs runs ProcessPair over a batch, invoking onPair after each
// pair when non-nil (progress reporting hook).
func (d *TEDDriver) ProcessPairs(pairs []*treebank.SentencePair, onPair func(processed int)) {
	for i, pair := range pairs {
		d.ProcessPair(pair)
		if onPair != nil {
			onPair(i + 1)
		}
	}
}

// computeSafely invokes one algorithm, converting a panic into an error so
// a malformed tree cannot take down the batch.
func (d *TEDDriver) computeSafely(impl TEDAlgorithm, pair *treebank.SentencePair) (distance float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during distance computation: %v", r)
		}
	}()

	distance, err = impl.Distance(pair.Canonical, pair.Headline)
	if err != nil {
		return 0, err
	}
	if distance < 0 {
		return 0, fmt.Errorf("negative distance %f", distance)
	}
	return distance, nil
}

func (d *TEDDriver) newDifferenceEvent(pair *treebank.SentencePair, algID domain.Algorithm, distance float64) domain.DifferenceEvent {
	value := strconv.FormatFloat(distance, 'f', -1, 64)
	return domain.DifferenceEvent{
		Newspaper:       pair.Newspaper,
		SentenceID:      pair.SentenceID,
		ParseType:       domain.ParseTypeConstituency,
		FeatureID:       algID.FeatureID(),
		FeatureName:     "Tree Edit Distance (" + algID.Description() + ")",
		FeatureMnemonic: algID.FeatureMnemonic(),
		CanonicalValue:  value,
		HeadlineValue:   value,
		CanonicalText:   pair.CanonicalText,
		HeadlineText:    pair.HeadlineText,
	}
}

// Scores returns the accumulated score records in processing order.
func (d *TEDDriver) Scores() []domain.SentenceTEDScore {
	return d.scores
}

// Events returns the accumulated difference events in processing order.
func (d *TEDDriver) Events() []domain.DifferenceEvent {
	return d.events
}

// Stats returns the run counters accumulated so far.
func (d *TEDDriver) Stats() DriverStats {
	return d.stats
}
