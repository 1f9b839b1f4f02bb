package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/domain"
)

// DefaultConfigFileName is the project-local configuration file.
const DefaultConfigFileName = ".regdiff.toml"

// RegdiffTomlConfig represents the structure of .regdiff.toml. The
// mapstructure tags let the same shape load from YAML/JSON via viper.
type RegdiffTomlConfig struct {
	TED    TEDTomlSection    `toml:"ted" mapstructure:"ted"`
	Input  InputTomlSection  `toml:"input" mapstructure:"input"`
	Output OutputTomlSection `toml:"output" mapstructure:"output"`
}

// TEDTomlSection holds algorithm selection and gating settings.
type TEDTomlSection struct {
	Preset string `toml:"preset" mapstructure:"preset"`

	// Per-algorithm enable flags; pointers to detect unset
	Simple      *bool `toml:"simple" mapstructure:"simple"`
	ZhangShasha *bool `toml:"zhang_shasha" mapstructure:"zhang_shasha"`
	Klein       *bool `toml:"klein" mapstructure:"klein"`
	RTED        *bool `toml:"rted" mapstructure:"rted"`

	MaxTreeSize int    `toml:"max_tree_size" mapstructure:"max_tree_size"`
	CostModel   string `toml:"cost_model" mapstructure:"cost_model"`
}

// InputTomlSection holds corpus file selection settings.
type InputTomlSection struct {
	Paths           []string `toml:"paths" mapstructure:"paths"`
	Recursive       *bool    `toml:"recursive" mapstructure:"recursive"` // pointer to detect unset
	IncludePatterns []string `toml:"include_patterns" mapstructure:"include_patterns"`
	ExcludePatterns []string `toml:"exclude_patterns" mapstructure:"exclude_patterns"`
}

// OutputTomlSection holds result formatting settings.
type OutputTomlSection struct {
	Format     string `toml:"format" mapstructure:"format"`
	ShowEvents *bool  `toml:"show_events" mapstructure:"show_events"` // pointer to detect unset
	SortBy     string `toml:"sort_by" mapstructure:"sort_by"`
}

// LoadRegdiffToml reads and decodes a .regdiff.toml file.
func LoadRegdiffToml(path string) (*RegdiffTomlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NewFileNotFoundError(path, err)
		}
		return nil, domain.NewConfigError("failed to read config file", err)
	}

	var cfg RegdiffTomlConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, domain.NewConfigError("failed to parse "+path, err)
	}
	return &cfg, nil
}

// FindDefaultConfigFile returns the path of .regdiff.toml in dir, or ""
// when absent.
func FindDefaultConfigFile(dir string) string {
	path := filepath.Join(dir, DefaultConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// ApplyToRequest overlays the file settings onto a request. Fields the file
// leaves unset keep the request's existing values.
func (c *RegdiffTomlConfig) ApplyToRequest(req *domain.TEDRequest) {
	if c.TED.Preset != "" {
		req.Preset = c.TED.Preset
	}

	// Explicit per-algorithm flags override the preset wholesale.
	if c.TED.Simple != nil || c.TED.ZhangShasha != nil || c.TED.Klein != nil || c.TED.RTED != nil {
		enabled := func(flag *bool, fallback bool) bool {
			if flag == nil {
				return fallback
			}
			return *flag
		}
		var algorithms []domain.Algorithm
		if enabled(c.TED.Simple, true) {
			algorithms = append(algorithms, domain.AlgorithmSimple)
		}
		if enabled(c.TED.ZhangShasha, true) {
			algorithms = append(algorithms, domain.AlgorithmZhangShasha)
		}
		if enabled(c.TED.Klein, true) {
			algorithms = append(algorithms, domain.AlgorithmKlein)
		}
		if enabled(c.TED.RTED, true) {
			algorithms = append(algorithms, domain.AlgorithmRTED)
		}
		req.EnabledAlgorithms = algorithms
	}

	if c.TED.MaxTreeSize > 0 {
		req.MaxTreeSize = c.TED.MaxTreeSize
	}
	if c.TED.CostModel != "" {
		req.CostModelType = c.TED.CostModel
	}

	if len(c.Input.Paths) > 0 {
		req.Paths = c.Input.Paths
	}
	if c.Input.Recursive != nil {
		req.Recursive = *c.Input.Recursive
	}
	if len(c.Input.IncludePatterns) > 0 {
		req.IncludePatterns = c.Input.IncludePatterns
	}
	if len(c.Input.ExcludePatterns) > 0 {
		req.ExcludePatterns = c.Input.ExcludePatterns
	}

	if c.Output.Format != "" {
		req.OutputFormat = domain.OutputFormat(c.Output.Format)
	}
	if c.Output.ShowEvents != nil {
		req.ShowEvents = *c.Output.ShowEvents
	}
	if c.Output.SortBy != "" {
		req.SortBy = domain.SortCriteria(c.Output.SortBy)
	}
}

// DefaultConfigContent is the commented template written by `regdiff init`.
const DefaultConfigContent = `# regdiff configuration file
#
# Register comparison via tree edit distance between canonical sentences
# and their headline counterparts.

[ted]
# Named preset: "default", "simple_only", "standard_only", "performance".
preset = "default"

# Per-algorithm switches. Setting any of these overrides the preset.
# simple = true
# zhang_shasha = true
# klein = true
# rted = true

# Pairs whose larger tree exceeds this node count run only the cheap
# algorithms (simple, rted).
max_tree_size = 50

# Edit-cost model: "unit" (documented contracts) or "constituency"
# (phrase-category aware weighting).
cost_model = "unit"

[input]
# Glob patterns locating canonical corpus files. Each *.canonical file must
# have a line-aligned *.headline companion.
include_patterns = ["**/*.canonical"]
exclude_patterns = []
recursive = true

[output]
# Output format: text, json, yaml, csv
format = "text"

# Include per-event listing in text output
show_events = false

# Sort order for score records: location, distance, algorithm
sort_by = "location"
`

// WriteDefaultConfig writes the commented default configuration to path.
func WriteDefaultConfig(path string) error {
	return os.WriteFile(path, []byte(DefaultConfigContent), 0o644)
}
