package domain

import (
	"context"
	"io"
	"strings"
)

// Algorithm identifies one of the tree edit distance implementations.
type Algorithm string

const (
	// AlgorithmSimple - character-level string approximation, fast and crude
	AlgorithmSimple Algorithm = "simple"
	// AlgorithmZhangShasha - formal ordered-tree edit distance over post-order sequences
	AlgorithmZhangShasha Algorithm = "zhang_shasha"
	// AlgorithmKlein - memoized recursive distance with optimal children alignment
	AlgorithmKlein Algorithm = "klein"
	// AlgorithmRTED - adaptive strategy keyed on tree size
	AlgorithmRTED Algorithm = "rted"
)

// AllAlgorithms returns every recognized algorithm identifier in canonical order.
func AllAlgorithms() []Algorithm {
	return []Algorithm{AlgorithmSimple, AlgorithmZhangShasha, AlgorithmKlein, AlgorithmRTED}
}

// IsValid reports whether the identifier belongs to the closed algorithm set.
func (a Algorithm) IsValid() bool {
	switch a {
	case AlgorithmSimple, AlgorithmZhangShasha, AlgorithmKlein, AlgorithmRTED:
		return true
	default:
		return false
	}
}

// Description returns a human-readable name for the algorithm.
// Unknown identifiers fall back to the identifier itself.
func (a Algorithm) Description() string {
	switch a {
	case AlgorithmSimple:
		return "Simple String Approximation"
	case AlgorithmZhangShasha:
		return "Zhang-Shasha Tree Edit Distance"
	case AlgorithmKlein:
		return "Klein Memoized Tree Edit Distance"
	case AlgorithmRTED:
		return "RTED Adaptive Tree Edit Distance"
	default:
		return string(a)
	}
}

// Mnemonic returns a short code for the algorithm, used in feature identifiers.
// Unknown identifiers fall back to their first four characters uppercased.
func (a Algorithm) Mnemonic() string {
	switch a {
	case AlgorithmSimple:
		return "SIMP"
	case AlgorithmZhangShasha:
		return "ZSHA"
	case AlgorithmKlein:
		return "KLEN"
	case AlgorithmRTED:
		return "RTED"
	default:
		s := strings.ToUpper(string(a))
		if len(s) > 4 {
			s = s[:4]
		}
		return s
	}
}

// FeatureID builds the feature identifier emitted with difference events,
// e.g. "TED-ZHANG-SHASHA".
func (a Algorithm) FeatureID() string {
	return "TED-" + strings.ToUpper(strings.ReplaceAll(string(a), "_", "-"))
}

// FeatureMnemonic builds the short feature code, e.g. "TED-ZSHA".
func (a Algorithm) FeatureMnemonic() string {
	return "TED-" + a.Mnemonic()
}

// ParseTypeConstituency is the parse type recorded on TED difference events.
const ParseTypeConstituency = "constituency"

// SentenceTEDScore is one raw distance record per sentence pair and algorithm.
// Scores are recorded unconditionally, including zero distances, so the
// downstream distributional analysis sees the full score population.
type SentenceTEDScore struct {
	Newspaper         string    `json:"newspaper" yaml:"newspaper" csv:"newspaper"`
	SentenceID        string    `json:"sentence_id" yaml:"sentence_id" csv:"sentence_id"`
	Algorithm         Algorithm `json:"algorithm" yaml:"algorithm" csv:"algorithm"`
	Distance          float64   `json:"distance" yaml:"distance" csv:"distance"`
	CanonicalTreeSize int       `json:"canonical_tree_size" yaml:"canonical_tree_size" csv:"canonical_tree_size"`
	HeadlineTreeSize  int       `json:"headline_tree_size" yaml:"headline_tree_size" csv:"headline_tree_size"`
	CanonicalText     string    `json:"canonical_text,omitempty" yaml:"canonical_text,omitempty" csv:"canonical_text"`
	HeadlineText      string    `json:"headline_text,omitempty" yaml:"headline_text,omitempty" csv:"headline_text"`
}

// DifferenceEvent is the TED-specific event emitted when an algorithm finds a
// nonzero structural distance between the two registers. The distance is
// serialized as both canonical and headline value because tree edit distance
// is a symmetric measure, not a directional transformation.
type DifferenceEvent struct {
	Newspaper       string `json:"newspaper" yaml:"newspaper" csv:"newspaper"`
	SentenceID      string `json:"sentence_id" yaml:"sentence_id" csv:"sentence_id"`
	ParseType       string `json:"parse_type" yaml:"parse_type" csv:"parse_type"`
	FeatureID       string `json:"feature_id" yaml:"feature_id" csv:"feature_id"`
	FeatureName     string `json:"feature_name" yaml:"feature_name" csv:"feature_name"`
	FeatureMnemonic string `json:"feature_mnemonic" yaml:"feature_mnemonic" csv:"feature_mnemonic"`
	CanonicalValue  string `json:"canonical_value" yaml:"canonical_value" csv:"canonical_value"`
	HeadlineValue   string `json:"headline_value" yaml:"headline_value" csv:"headline_value"`
	CanonicalText   string `json:"canonical_text,omitempty" yaml:"canonical_text,omitempty" csv:"canonical_text"`
	HeadlineText    string `json:"headline_text,omitempty" yaml:"headline_text,omitempty" csv:"headline_text"`
}

// TEDSummary reports aggregate counts for one analysis run so partial data
// loss is observable instead of silent.
type TEDSummary struct {
	FilesAnalyzed  int                `json:"files_analyzed" yaml:"files_analyzed"`
	PairsProcessed int                `json:"pairs_processed" yaml:"pairs_processed"`
	PairsSkipped   int                `json:"pairs_skipped" yaml:"pairs_skipped"`
	ScoresComputed int                `json:"scores_computed" yaml:"scores_computed"`
	Failures       int                `json:"failures" yaml:"failures"`
	MeanDistance   map[string]float64 `json:"mean_distance" yaml:"mean_distance"`
}

// TEDRequest carries all parameters for one register comparison run.
type TEDRequest struct {
	// Input parameters
	Paths           []string `json:"paths"`
	Recursive       bool     `json:"recursive"`
	IncludePatterns []string `json:"include_patterns"`
	ExcludePatterns []string `json:"exclude_patterns"`

	// Algorithm selection. EnabledAlgorithms overrides Preset when non-empty.
	Preset            string      `json:"preset"`
	EnabledAlgorithms []Algorithm `json:"enabled_algorithms"`
	MaxTreeSize       int         `json:"max_tree_size"`
	CostModelType     string      `json:"cost_model_type"`

	// Output configuration
	OutputFormat OutputFormat `json:"output_format"`
	OutputWriter io.Writer    `json:"-"`
	ShowEvents   bool         `json:"show_events"`
	SortBy       SortCriteria `json:"sort_by"`

	// Configuration file
	ConfigPath string `json:"config_path"`
}

// Validate validates a TED analysis request.
func (req *TEDRequest) Validate() error {
	if len(req.Paths) == 0 {
		return NewValidationError("paths cannot be empty")
	}

	for _, alg := range req.EnabledAlgorithms {
		if !alg.IsValid() {
			return NewValidationError("unknown algorithm: " + string(alg))
		}
	}

	// Zero means "let the preset decide".
	if req.MaxTreeSize < 0 {
		return NewValidationError("max_tree_size cannot be negative")
	}

	switch req.OutputFormat {
	case OutputFormatText, OutputFormatJSON, OutputFormatYAML, OutputFormatCSV:
	default:
		return NewUnsupportedFormatError(string(req.OutputFormat))
	}

	return nil
}

// HasValidOutputWriter checks if the request has a valid output writer.
func (req *TEDRequest) HasValidOutputWriter() bool {
	return req.OutputWriter != nil
}

// DefaultTEDRequest returns a request with the default preset and thresholds.
func DefaultTEDRequest() *TEDRequest {
	return &TEDRequest{
		Paths:             []string{"."},
		Recursive:         true,
		IncludePatterns:   []string{"**/*.canonical"},
		ExcludePatterns:   []string{},
		Preset:            "default",
		EnabledAlgorithms: nil,
		MaxTreeSize:       0,
		CostModelType:     "unit",
		OutputFormat:      OutputFormatText,
		ShowEvents:        false,
		SortBy:            SortByLocation,
	}
}

// TEDResponse is the result of one register comparison run.
type TEDResponse struct {
	Scores  []SentenceTEDScore `json:"scores" yaml:"scores"`
	Events  []DifferenceEvent  `json:"events" yaml:"events"`
	Summary *TEDSummary        `json:"summary" yaml:"summary"`

	// ShowEvents carries the presentation choice from the request so the
	// text formatter knows whether to list the events. Structured formats
	// always include the event records themselves.
	ShowEvents bool `json:"-" yaml:"-"`

	// Metadata
	Duration int64  `json:"duration_ms" yaml:"duration_ms"`
	Success  bool   `json:"success" yaml:"success"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// TEDService defines the interface for register comparison services.
type TEDService interface {
	// Analyze runs TED analysis over the corpus files named by the request.
	Analyze(ctx context.Context, req *TEDRequest) (*TEDResponse, error)

	// AnalyzePair computes all configured distances for a single pair of
	// bracketed constituency trees.
	AnalyzePair(ctx context.Context, canonical, headline string, req *TEDRequest) (*TEDResponse, error)
}

// TEDOutputFormatter defines the interface for rendering TED results.
type TEDOutputFormatter interface {
	Format(response *TEDResponse, format OutputFormat, writer io.Writer) error
}

// TEDConfigurationLoader defines the interface for loading TED configuration.
type TEDConfigurationLoader interface {
	// LoadConfig loads a TED request template from a configuration file.
	LoadConfig(configPath string) (*TEDRequest, error)

	// DefaultConfig returns the built-in default request.
	DefaultConfig() *TEDRequest
}
