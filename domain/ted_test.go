package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlgorithmIsValid(t *testing.T) {
	for _, alg := range AllAlgorithms() {
		assert.True(t, alg.IsValid(), "%s", alg)
	}
	assert.False(t, Algorithm("apted").IsValid())
	assert.False(t, Algorithm("").IsValid())
}

func TestAlgorithmFeatureIdentifiers(t *testing.T) {
	tests := []struct {
		alg      Algorithm
		id       string
		mnemonic string
	}{
		{AlgorithmSimple, "TED-SIMPLE", "TED-SIMP"},
		{AlgorithmZhangShasha, "TED-ZHANG-SHASHA", "TED-ZSHA"},
		{AlgorithmKlein, "TED-KLEIN", "TED-KLEN"},
		{AlgorithmRTED, "TED-RTED", "TED-RTED"},
	}

	for _, tt := range tests {
		t.Run(string(tt.alg), func(t *testing.T) {
			assert.Equal(t, tt.id, tt.alg.FeatureID())
			assert.Equal(t, tt.mnemonic, tt.alg.FeatureMnemonic())
			assert.NotEmpty(t, tt.alg.Description())
		})
	}
}

func TestAlgorithmMnemonicFallback(t *testing.T) {
	assert.Equal(t, "CUST", Algorithm("custom").Mnemonic())
	assert.Equal(t, "AB", Algorithm("ab").Mnemonic())
}

func TestTEDRequestValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, DefaultTEDRequest().Validate())
	})

	t.Run("empty paths", func(t *testing.T) {
		req := DefaultTEDRequest()
		req.Paths = nil
		err := req.Validate()
		require.Error(t, err)
		assert.True(t, IsDomainErrorWithCode(err, ErrCodeInvalidInput))
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		req := DefaultTEDRequest()
		req.EnabledAlgorithms = []Algorithm{"apted"}
		assert.Error(t, req.Validate())
	})

	t.Run("negative max tree size", func(t *testing.T) {
		req := DefaultTEDRequest()
		req.MaxTreeSize = -1
		assert.Error(t, req.Validate())
	})

	t.Run("zero max tree size means preset decides", func(t *testing.T) {
		req := DefaultTEDRequest()
		req.MaxTreeSize = 0
		assert.NoError(t, req.Validate())
	})

	t.Run("unsupported output format", func(t *testing.T) {
		req := DefaultTEDRequest()
		req.OutputFormat = "xml"
		err := req.Validate()
		require.Error(t, err)
		assert.True(t, IsDomainErrorWithCode(err, ErrCodeUnsupportedFormat))
	})
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := assert.AnError
	err := NewConfigError("bad config", cause)

	var de DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrCodeConfigError, de.Code)
	assert.ErrorIs(t, err, cause)
}
