package config

import (
	"fmt"

	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/domain"
	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/internal/constants"
)

// Preset names accepted by PresetTEDConfig.
const (
	PresetDefault      = "default"
	PresetSimpleOnly   = "simple_only"
	PresetStandardOnly = "standard_only"
	PresetPerformance  = "performance"
)

// TEDConfig declares which algorithms run and the tree size beyond which
// only the cheap subset is allowed. Constructed once per analysis run and
// passed explicitly into the driver; there is no shared mutable default.
type TEDConfig struct {
	// EnabledAlgorithms is the ordered set of active algorithms. Order is
	// preserved in gating results and in driver output.
	EnabledAlgorithms []domain.Algorithm

	// MaxTreeSizeForComplexAlgorithms gates the expensive algorithms: when
	// the larger tree of a pair exceeds it, only the cheap subset runs.
	MaxTreeSizeForComplexAlgorithms int

	// CostModelType selects the edit-cost model ("unit" or "constituency").
	CostModelType string
}

// cheapAlgorithms can run at any tree size.
var cheapAlgorithms = map[domain.Algorithm]bool{
	domain.AlgorithmSimple: true,
	domain.AlgorithmRTED:   true,
}

// NewTEDConfig builds a configuration from an explicit algorithm list.
// Construction fails fast on identifiers outside the closed set; a silent
// default here would make every downstream number meaningless.
func NewTEDConfig(algorithms []domain.Algorithm, maxTreeSize int) (*TEDConfig, error) {
	if len(algorithms) == 0 {
		return nil, domain.NewConfigError("at least one TED algorithm must be enabled", nil)
	}
	seen := make(map[domain.Algorithm]bool, len(algorithms))
	for _, alg := range algorithms {
		if !alg.IsValid() {
			return nil, domain.NewConfigError(fmt.Sprintf("unknown TED algorithm: %q", alg), nil)
		}
		if seen[alg] {
			return nil, domain.NewConfigError(fmt.Sprintf("duplicate TED algorithm: %q", alg), nil)
		}
		seen[alg] = true
	}
	if maxTreeSize < 1 {
		return nil, domain.NewConfigError(fmt.Sprintf("max tree size must be >= 1, got %d", maxTreeSize), nil)
	}

	return &TEDConfig{
		EnabledAlgorithms:               append([]domain.Algorithm(nil), algorithms...),
		MaxTreeSizeForComplexAlgorithms: maxTreeSize,
		CostModelType:                   "unit",
	}, nil
}

// NewTEDConfigFromFlags builds a configuration from four independent
// per-algorithm enable flags, preserving canonical algorithm order.
func NewTEDConfigFromFlags(simple, zhangShasha, klein, rted bool) (*TEDConfig, error) {
	var algorithms []domain.Algorithm
	if simple {
		algorithms = append(algorithms, domain.AlgorithmSimple)
	}
	if zhangShasha {
		algorithms = append(algorithms, domain.AlgorithmZhangShasha)
	}
	if klein {
		algorithms = append(algorithms, domain.AlgorithmKlein)
	}
	if rted {
		algorithms = append(algorithms, domain.AlgorithmRTED)
	}
	return NewTEDConfig(algorithms, constants.DefaultMaxTreeSize)
}

// DefaultTEDConfig returns the "default" preset: all four algorithms with
// the standard size gate.
func DefaultTEDConfig() *TEDConfig {
	cfg, _ := PresetTEDConfig(PresetDefault)
	return cfg
}

// PresetTEDConfig builds one of the named presets.
func PresetTEDConfig(name string) (*TEDConfig, error) {
	switch name {
	case PresetDefault, "":
		return NewTEDConfig(domain.AllAlgorithms(), constants.DefaultMaxTreeSize)
	case PresetSimpleOnly:
		return NewTEDConfig([]domain.Algorithm{domain.AlgorithmSimple}, constants.DefaultMaxTreeSize)
	case PresetStandardOnly:
		return NewTEDConfig([]domain.Algorithm{
			domain.AlgorithmZhangShasha,
			domain.AlgorithmKlein,
			domain.AlgorithmRTED,
		}, constants.DefaultMaxTreeSize)
	case PresetPerformance:
		return NewTEDConfig([]domain.Algorithm{
			domain.AlgorithmSimple,
			domain.AlgorithmKlein,
			domain.AlgorithmRTED,
		}, constants.PerformanceMaxTreeSize)
	default:
		return nil, domain.NewConfigError(fmt.Sprintf("unknown TED preset: %q", name), nil)
	}
}

// TEDConfigFromRequest resolves a domain request into a configuration:
// an explicit algorithm list overrides the preset, and a positive
// MaxTreeSize overrides the preset's threshold.
func TEDConfigFromRequest(req *domain.TEDRequest) (*TEDConfig, error) {
	var cfg *TEDConfig
	var err error

	if len(req.EnabledAlgorithms) > 0 {
		maxSize := req.MaxTreeSize
		if maxSize <= 0 {
			maxSize = constants.DefaultMaxTreeSize
		}
		cfg, err = NewTEDConfig(req.EnabledAlgorithms, maxSize)
	} else {
		cfg, err = PresetTEDConfig(req.Preset)
		if err == nil && req.MaxTreeSize > 0 {
			cfg.MaxTreeSizeForComplexAlgorithms = req.MaxTreeSize
		}
	}
	if err != nil {
		return nil, err
	}

	if req.CostModelType != "" {
		cfg.CostModelType = req.CostModelType
	}
	return cfg, nil
}

// AlgorithmsForTreeSize returns the algorithms to run on a sentence pair
// whose larger tree has maxSize nodes. Above the gate only the cheap subset
// survives; enabled order is preserved either way.
func (c *TEDConfig) AlgorithmsForTreeSize(maxSize int) []domain.Algorithm {
	if maxSize <= c.MaxTreeSizeForComplexAlgorithms {
		return append([]domain.Algorithm(nil), c.EnabledAlgorithms...)
	}

	var selected []domain.Algorithm
	for _, alg := range c.EnabledAlgorithms {
		if cheapAlgorithms[alg] {
			selected = append(selected, alg)
		}
	}
	return selected
}

// IsEnabled reports whether the algorithm is in the enabled set.
func (c *TEDConfig) IsEnabled(alg domain.Algorithm) bool {
	for _, enabled := range c.EnabledAlgorithms {
		if enabled == alg {
			return true
		}
	}
	return false
}
