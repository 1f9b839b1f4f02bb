package app

import (
	"context"
	"fmt"

	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/domain"
)

// TEDUseCase orchestrates the register comparison workflow: request
// validation, configuration loading, analysis, and output formatting.
type TEDUseCase struct {
	service      domain.TEDService
	formatter    domain.TEDOutputFormatter
	configLoader domain.TEDConfigurationLoader
}

// NewTEDUseCase creates a new TED use case
func NewTEDUseCase(
	service domain.TEDService,
	formatter domain.TEDOutputFormatter,
	configLoader domain.TEDConfigurationLoader,
) *TEDUseCase {
	return &TEDUseCase{
		service:      service,
		formatter:    formatter,
		configLoader: configLoader,
	}
}

// Execute performs the complete register comparison workflow
func (uc *TEDUseCase) Execute(ctx context.Context, req *domain.TEDRequest) error {
	if req == nil {
		return domain.NewValidationError("request cannot be nil")
	}
	if !req.HasValidOutputWriter() {
		return domain.NewValidationError("output writer is required")
	}

	finalReq, err := uc.loadAndMergeConfig(req)
	if err != nil {
		return domain.NewConfigError("failed to load configuration", err)
	}

	if err := finalReq.Validate(); err != nil {
		return err
	}

	response, err := uc.service.Analyze(ctx, finalReq)
	if err != nil {
		return domain.NewAnalysisError("register comparison failed", err)
	}

	if err := uc.formatter.Format(response, finalReq.OutputFormat, finalReq.OutputWriter); err != nil {
		return domain.NewOutputError("failed to write output", err)
	}

	return nil
}

// ExecutePair runs all configured algorithms on a single pair of bracketed
// trees given as strings.
func (uc *TEDUseCase) ExecutePair(ctx context.Context, canonical, headline string, req *domain.TEDRequest) error {
	if req == nil {
		return domain.NewValidationError("request cannot be nil")
	}
	if !req.HasValidOutputWriter() {
		return domain.NewValidationError("output writer is required")
	}
	if canonical == "" || headline == "" {
		return domain.NewValidationError("both canonical and headline trees are required")
	}

	finalReq, err := uc.loadAndMergeConfig(req)
	if err != nil {
		return domain.NewConfigError("failed to load configuration", err)
	}

	response, err := uc.service.AnalyzePair(ctx, canonical, headline, finalReq)
	if err != nil {
		return domain.NewAnalysisError("pair comparison failed", err)
	}

	if err := uc.formatter.Format(response, finalReq.OutputFormat, finalReq.OutputWriter); err != nil {
		return domain.NewOutputError("failed to write output", err)
	}

	return nil
}

// loadAndMergeConfig loads the file configuration as a baseline and lays the
// caller's request over it. The request always wins where it sets a value;
// the file fills what the caller left at defaults.
func (uc *TEDUseCase) loadAndMergeConfig(req *domain.TEDRequest) (*domain.TEDRequest, error) {
	if uc.configLoader == nil {
		return req, nil
	}

	base, err := uc.configLoader.LoadConfig(req.ConfigPath)
	if err != nil {
		if req.ConfigPath != "" {
			return nil, fmt.Errorf("failed to load config from %s: %w", req.ConfigPath, err)
		}
		return req, nil
	}
	if base == nil {
		return req, nil
	}

	merged := mergeRequests(base, req)
	return merged, nil
}

// mergeRequests overlays override's explicitly-set fields onto base. Defaults
// come from domain.DefaultTEDRequest, so "explicitly set" means "differs from
// the default zero behavior".
func mergeRequests(base, override *domain.TEDRequest) *domain.TEDRequest {
	merged := *base
	defaults := domain.DefaultTEDRequest()

	if len(override.Paths) > 0 && !sameStrings(override.Paths, defaults.Paths) {
		merged.Paths = override.Paths
	}
	if override.Recursive != defaults.Recursive {
		merged.Recursive = override.Recursive
	}
	if len(override.IncludePatterns) > 0 && !sameStrings(override.IncludePatterns, defaults.IncludePatterns) {
		merged.IncludePatterns = override.IncludePatterns
	}
	if len(override.ExcludePatterns) > 0 {
		merged.ExcludePatterns = override.ExcludePatterns
	}

	if override.Preset != "" && override.Preset != defaults.Preset {
		merged.Preset = override.Preset
	}
	if len(override.EnabledAlgorithms) > 0 {
		merged.EnabledAlgorithms = override.EnabledAlgorithms
	}
	if override.MaxTreeSize > 0 {
		merged.MaxTreeSize = override.MaxTreeSize
	}
	if override.CostModelType != "" && override.CostModelType != defaults.CostModelType {
		merged.CostModelType = override.CostModelType
	}

	if override.OutputFormat != "" && override.OutputFormat != defaults.OutputFormat {
		merged.OutputFormat = override.OutputFormat
	}
	if override.ShowEvents {
		merged.ShowEvents = true
	}
	if override.SortBy != "" && override.SortBy != defaults.SortBy {
		merged.SortBy = override.SortBy
	}

	merged.OutputWriter = override.OutputWriter
	merged.ConfigPath = override.ConfigPath
	return &merged
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TEDUseCaseBuilder provides a builder for assembling a TEDUseCase.
type TEDUseCaseBuilder struct {
	service      domain.TEDService
	formatter    domain.TEDOutputFormatter
	configLoader domain.TEDConfigurationLoader
}

// NewTEDUseCaseBuilder creates a new builder
func NewTEDUseCaseBuilder() *TEDUseCaseBuilder {
	return &TEDUseCaseBuilder{}
}

// WithService sets the TED service
func (b *TEDUseCaseBuilder) WithService(service domain.TEDService) *TEDUseCaseBuilder {
	b.service = service
	return b
}

// WithFormatter sets the output formatter
func (b *TEDUseCaseBuilder) WithFormatter(formatter domain.TEDOutputFormatter) *TEDUseCaseBuilder {
	b.formatter = formatter
	return b
}

// WithConfigLoader sets the configuration loader
func (b *TEDUseCaseBuilder) WithConfigLoader(configLoader domain.TEDConfigurationLoader) *TEDUseCaseBuilder {
	b.configLoader = configLoader
	return b
}

// Build creates the TEDUseCase with the configured dependencies
func (b *TEDUseCaseBuilder) Build() (*TEDUseCase, error) {
	if b.service == nil {
		return nil, fmt.Errorf("TED service is required")
	}
	if b.formatter == nil {
		return nil, fmt.Errorf("output formatter is required")
	}
	// configLoader is optional - config loading is skipped when nil
	return NewTEDUseCase(b.service, b.formatter, b.configLoader), nil
}
