package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/domain"
	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/internal/constants"
)

func TestNewTEDConfig(t *testing.T) {
	cfg, err := NewTEDConfig([]domain.Algorithm{domain.AlgorithmSimple, domain.AlgorithmKlein}, 40)
	require.NoError(t, err)

	assert.Equal(t, []domain.Algorithm{domain.AlgorithmSimple, domain.AlgorithmKlein}, cfg.EnabledAlgorithms)
	assert.Equal(t, 40, cfg.MaxTreeSizeForComplexAlgorithms)
	assert.Equal(t, "unit", cfg.CostModelType)
}

func TestNewTEDConfigRejectsBadInput(t *testing.T) {
	tests := []struct {
		name       string
		algorithms []domain.Algorithm
		maxSize    int
	}{
		{name: "empty list", algorithms: nil, maxSize: 50},
		{name: "unknown algorithm", algorithms: []domain.Algorithm{"apted"}, maxSize: 50},
		{name: "duplicate algorithm", algorithms: []domain.Algorithm{domain.AlgorithmSimple, domain.AlgorithmSimple}, maxSize: 50},
		{name: "zero max size", algorithms: domain.AllAlgorithms(), maxSize: 0},
		{name: "negative max size", algorithms: domain.AllAlgorithms(), maxSize: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTEDConfig(tt.algorithms, tt.maxSize)
			require.Error(t, err)
			assert.True(t, domain.IsDomainErrorWithCode(err, domain.ErrCodeConfigError))
		})
	}
}

func TestPresetTEDConfig(t *testing.T) {
	tests := []struct {
		preset     string
		algorithms []domain.Algorithm
		maxSize    int
	}{
		{
			preset:     PresetDefault,
			algorithms: domain.AllAlgorithms(),
			maxSize:    constants.DefaultMaxTreeSize,
		},
		{
			preset:     PresetSimpleOnly,
			algorithms: []domain.Algorithm{domain.AlgorithmSimple},
			maxSize:    constants.DefaultMaxTreeSize,
		},
		{
			preset:     PresetStandardOnly,
			algorithms: []domain.Algorithm{domain.AlgorithmZhangShasha, domain.AlgorithmKlein, domain.AlgorithmRTED},
			maxSize:    constants.DefaultMaxTreeSize,
		},
		{
			preset:     PresetPerformance,
			algorithms: []domain.Algorithm{domain.AlgorithmSimple, domain.AlgorithmKlein, domain.AlgorithmRTED},
			maxSize:    constants.PerformanceMaxTreeSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			cfg, err := PresetTEDConfig(tt.preset)
			require.NoError(t, err)
			assert.Equal(t, tt.algorithms, cfg.EnabledAlgorithms)
			assert.Equal(t, tt.maxSize, cfg.MaxTreeSizeForComplexAlgorithms)
		})
	}
}

func TestPresetTEDConfigUnknown(t *testing.T) {
	_, err := PresetTEDConfig("turbo")
	require.Error(t, err)
	assert.True(t, domain.IsDomainErrorWithCode(err, domain.ErrCodeConfigError))
}

func TestNewTEDConfigFromFlags(t *testing.T) {
	cfg, err := NewTEDConfigFromFlags(true, false, true, false)
	require.NoError(t, err)
	assert.Equal(t, []domain.Algorithm{domain.AlgorithmSimple, domain.AlgorithmKlein}, cfg.EnabledAlgorithms)

	_, err = NewTEDConfigFromFlags(false, false, false, false)
	assert.Error(t, err)
}

func TestAlgorithmsForTreeSize(t *testing.T) {
	cfg := DefaultTEDConfig()

	// At or under the gate: everything enabled, in order.
	assert.Equal(t, domain.AllAlgorithms(), cfg.AlgorithmsForTreeSize(constants.DefaultMaxTreeSize))
	assert.Equal(t, domain.AllAlgorithms(), cfg.AlgorithmsForTreeSize(1))

	// Over the gate: only the cheap subset survives.
	gated := cfg.AlgorithmsForTreeSize(constants.DefaultMaxTreeSize + 1)
	assert.Equal(t, []domain.Algorithm{domain.AlgorithmSimple, domain.AlgorithmRTED}, gated)
}

func TestAlgorithmsForTreeSizeMonotonic(t *testing.T) {
	cfg := DefaultTEDConfig()

	// Growing the tree never adds algorithms.
	previous := len(cfg.AlgorithmsForTreeSize(1))
	for size := 10; size <= 100; size += 10 {
		current := len(cfg.AlgorithmsForTreeSize(size))
		assert.LessOrEqual(t, current, previous, "size %d", size)
		previous = current
	}
}

func TestAlgorithmsForTreeSizeReturnsCopy(t *testing.T) {
	cfg := DefaultTEDConfig()

	selected := cfg.AlgorithmsForTreeSize(10)
	selected[0] = "mutated"

	assert.Equal(t, domain.AllAlgorithms(), cfg.EnabledAlgorithms)
}

func TestIsEnabled(t *testing.T) {
	cfg, err := PresetTEDConfig(PresetStandardOnly)
	require.NoError(t, err)

	assert.True(t, cfg.IsEnabled(domain.AlgorithmKlein))
	assert.False(t, cfg.IsEnabled(domain.AlgorithmSimple))
}

func TestTEDConfigFromRequest(t *testing.T) {
	t.Run("explicit algorithms override preset", func(t *testing.T) {
		req := domain.DefaultTEDRequest()
		req.Preset = PresetSimpleOnly
		req.EnabledAlgorithms = []domain.Algorithm{domain.AlgorithmKlein}

		cfg, err := TEDConfigFromRequest(req)
		require.NoError(t, err)
		assert.Equal(t, []domain.Algorithm{domain.AlgorithmKlein}, cfg.EnabledAlgorithms)
	})

	t.Run("preset with size override", func(t *testing.T) {
		req := domain.DefaultTEDRequest()
		req.Preset = PresetDefault
		req.MaxTreeSize = 25

		cfg, err := TEDConfigFromRequest(req)
		require.NoError(t, err)
		assert.Equal(t, 25, cfg.MaxTreeSizeForComplexAlgorithms)
	})

	t.Run("zero size keeps preset threshold", func(t *testing.T) {
		req := domain.DefaultTEDRequest()
		req.Preset = PresetPerformance

		cfg, err := TEDConfigFromRequest(req)
		require.NoError(t, err)
		assert.Equal(t, constants.PerformanceMaxTreeSize, cfg.MaxTreeSizeForComplexAlgorithms)
	})

	t.Run("cost model overlay", func(t *testing.T) {
		req := domain.DefaultTEDRequest()
		req.CostModelType = "constituency"

		cfg, err := TEDConfigFromRequest(req)
		require.NoError(t, err)
		assert.Equal(t, "constituency", cfg.CostModelType)
	})
}
