package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/domain"
)

func TestLoadRegdiffToml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".regdiff.toml")
	content := `
[ted]
preset = "performance"
klein = false
max_tree_size = 20
cost_model = "constituency"

[input]
include_patterns = ["news/**/*.canonical"]
recursive = false

[output]
format = "json"
show_events = true
sort_by = "distance"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadRegdiffToml(path)
	require.NoError(t, err)

	assert.Equal(t, "performance", cfg.TED.Preset)
	require.NotNil(t, cfg.TED.Klein)
	assert.False(t, *cfg.TED.Klein)
	assert.Nil(t, cfg.TED.Simple) // unset flags stay nil
	assert.Equal(t, 20, cfg.TED.MaxTreeSize)
	assert.Equal(t, "constituency", cfg.TED.CostModel)

	require.NotNil(t, cfg.Input.Recursive)
	assert.False(t, *cfg.Input.Recursive)
	assert.Equal(t, []string{"news/**/*.canonical"}, cfg.Input.IncludePatterns)

	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadRegdiffTomlMissing(t *testing.T) {
	_, err := LoadRegdiffToml(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, domain.IsDomainErrorWithCode(err, domain.ErrCodeFileNotFound))
}

func TestLoadRegdiffTomlInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ted\npreset="), 0o644))

	_, err := LoadRegdiffToml(path)
	require.Error(t, err)
	assert.True(t, domain.IsDomainErrorWithCode(err, domain.ErrCodeConfigError))
}

func TestFindDefaultConfigFile(t *testing.T) {
	dir := t.TempDir()
	assert.Empty(t, FindDefaultConfigFile(dir))

	path := filepath.Join(dir, DefaultConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))
	assert.Equal(t, path, FindDefaultConfigFile(dir))
}

func TestApplyToRequest(t *testing.T) {
	boolPtr := func(v bool) *bool { return &v }

	cfg := &RegdiffTomlConfig{
		TED: TEDTomlSection{
			Preset:      "standard_only",
			Simple:      boolPtr(true),
			ZhangShasha: boolPtr(false),
			MaxTreeSize: 30,
			CostModel:   "constituency",
		},
		Output: OutputTomlSection{
			Format:     "csv",
			ShowEvents: boolPtr(true),
			SortBy:     "algorithm",
		},
	}

	req := domain.DefaultTEDRequest()
	cfg.ApplyToRequest(req)

	assert.Equal(t, "standard_only", req.Preset)
	// Explicit flags override the preset; unset flags default to enabled.
	assert.Equal(t, []domain.Algorithm{
		domain.AlgorithmSimple,
		domain.AlgorithmKlein,
		domain.AlgorithmRTED,
	}, req.EnabledAlgorithms)
	assert.Equal(t, 30, req.MaxTreeSize)
	assert.Equal(t, "constituency", req.CostModelType)
	assert.Equal(t, domain.OutputFormatCSV, req.OutputFormat)
	assert.True(t, req.ShowEvents)
	assert.Equal(t, domain.SortByAlgorithm, req.SortBy)
}

func TestApplyToRequestLeavesDefaults(t *testing.T) {
	cfg := &RegdiffTomlConfig{}

	req := domain.DefaultTEDRequest()
	cfg.ApplyToRequest(req)

	defaults := domain.DefaultTEDRequest()
	assert.Equal(t, defaults.Preset, req.Preset)
	assert.Nil(t, req.EnabledAlgorithms)
	assert.Equal(t, defaults.MaxTreeSize, req.MaxTreeSize)
	assert.Equal(t, defaults.OutputFormat, req.OutputFormat)
}

func TestWriteDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFileName)

	require.NoError(t, WriteDefaultConfig(path))

	// The generated template must itself be loadable.
	cfg, err := LoadRegdiffToml(path)
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.TED.Preset)
	assert.Equal(t, 50, cfg.TED.MaxTreeSize)
}
