package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/app"
	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/domain"
	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/service"
)

// TEDCommand represents the ted command
type TEDCommand struct {
	// Command line flags
	outputFormat string
	preset       string
	simple       bool
	zhangShasha  bool
	klein        bool
	rted         bool
	maxTreeSize  int
	costModel    string
	showEvents   bool
	sortBy       string
	configFile   string
	verbose      bool
}

// NewTEDCommand creates a new ted command
func NewTEDCommand() *TEDCommand {
	return &TEDCommand{
		outputFormat: "text",
		preset:       "default",
		maxTreeSize:  0,
		costModel:    "",
		sortBy:       "location",
	}
}

// CreateCobraCommand creates the cobra command for corpus analysis
func (t *TEDCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ted [paths...]",
		Short: "Compute tree edit distances over a paired corpus",
		Long: `Compute tree edit distances between canonical sentences and their
headline counterparts across a corpus of paired treebank files.

Each *.canonical file must have a line-aligned *.headline companion in the
same directory; line N of both files holds the bracketed constituency parse
of the same underlying sentence in each register.

Pairs whose larger tree exceeds the size threshold run only the cheap
algorithms (simple, rted) so one pathological parse cannot stall a batch.

Examples:
  regdiff ted corpus/
  regdiff ted --preset performance corpus/
  regdiff ted --zhang-shasha --klein --format csv corpus/ > scores.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: t.runTEDAnalysis,
	}

	cmd.Flags().StringVarP(&t.outputFormat, "format", "f", "text", "Output format (text, json, yaml, csv)")
	cmd.Flags().StringVar(&t.preset, "preset", "default", "Algorithm preset (default, simple_only, standard_only, performance)")
	cmd.Flags().BoolVar(&t.simple, "simple", false, "Enable the simple string approximation")
	cmd.Flags().BoolVar(&t.zhangShasha, "zhang-shasha", false, "Enable the Zhang-Shasha algorithm")
	cmd.Flags().BoolVar(&t.klein, "klein", false, "Enable the Klein memoized algorithm")
	cmd.Flags().BoolVar(&t.rted, "rted", false, "Enable the RTED adaptive algorithm")
	cmd.Flags().IntVar(&t.maxTreeSize, "max-tree-size", 0, "Size gate for expensive algorithms (0 = preset default)")
	cmd.Flags().StringVar(&t.costModel, "cost-model", "", "Edit-cost model (unit, constituency)")
	cmd.Flags().BoolVar(&t.showEvents, "events", false, "List difference events in text output")
	cmd.Flags().StringVar(&t.sortBy, "sort", "location", "Sort scores by (location, distance, algorithm)")
	cmd.Flags().StringVarP(&t.configFile, "config", "c", "", "Configuration file path")

	return cmd
}

// runTEDAnalysis executes the corpus analysis
func (t *TEDCommand) runTEDAnalysis(cmd *cobra.Command, args []string) error {
	if cmd.Parent() != nil {
		t.verbose, _ = cmd.Parent().Flags().GetBool("verbose")
	}

	request, err := t.buildTEDRequest(cmd, args)
	if err != nil {
		return fmt.Errorf("invalid command arguments: %w", err)
	}

	useCase, err := t.createTEDUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize analyzer: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := useCase.Execute(ctx, request); err != nil {
		return handleAnalysisError(err)
	}

	return nil
}

// buildTEDRequest creates a domain request from CLI flags
func (t *TEDCommand) buildTEDRequest(cmd *cobra.Command, args []string) (*domain.TEDRequest, error) {
	outputFormat, err := parseOutputFormat(t.outputFormat)
	if err != nil {
		return nil, err
	}

	sortBy, err := parseSortCriteria(t.sortBy)
	if err != nil {
		return nil, err
	}

	paths, err := expandAndValidatePaths(args)
	if err != nil {
		return nil, err
	}

	// Track which flags were explicitly set by the user so a flag left at
	// its default does not shadow a config-file setting.
	explicitFlags := make(map[string]bool)
	cmd.Flags().Visit(func(f *pflag.Flag) {
		explicitFlags[f.Name] = true
	})

	req := domain.DefaultTEDRequest()
	req.Paths = paths
	if explicitFlags["preset"] || t.preset != "default" {
		req.Preset = t.preset
	}
	req.EnabledAlgorithms = t.explicitAlgorithms()
	req.MaxTreeSize = t.maxTreeSize
	req.OutputFormat = outputFormat
	req.OutputWriter = cmd.OutOrStdout()
	req.ShowEvents = t.showEvents
	req.SortBy = sortBy
	req.ConfigPath = t.configFile
	if t.costModel != "" {
		req.CostModelType = t.costModel
	}
	return req, nil
}

// explicitAlgorithms converts the per-algorithm flags into an override list.
// No flag set means "follow the preset".
func (t *TEDCommand) explicitAlgorithms() []domain.Algorithm {
	if !t.simple && !t.zhangShasha && !t.klein && !t.rted {
		return nil
	}
	var algorithms []domain.Algorithm
	if t.simple {
		algorithms = append(algorithms, domain.AlgorithmSimple)
	}
	if t.zhangShasha {
		algorithms = append(algorithms, domain.AlgorithmZhangShasha)
	}
	if t.klein {
		algorithms = append(algorithms, domain.AlgorithmKlein)
	}
	if t.rted {
		algorithms = append(algorithms, domain.AlgorithmRTED)
	}
	return algorithms
}

// createTEDUseCase creates the use case with all dependencies
func (t *TEDCommand) createTEDUseCase() (*app.TEDUseCase, error) {
	var progress domain.ProgressManager
	if t.outputFormat == "text" {
		progress = service.NewProgressManager()
	} else {
		// Structured output is often piped; keep stderr quiet.
		progress = service.NewNoOpProgressManager()
	}

	useCase, err := app.NewTEDUseCaseBuilder().
		WithService(service.NewTEDService(progress)).
		WithFormatter(service.NewTEDFormatter()).
		WithConfigLoader(service.NewTEDConfigurationLoader()).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build use case: %w", err)
	}

	return useCase, nil
}

// Helper functions shared by the ted and pair commands.

func parseOutputFormat(format string) (domain.OutputFormat, error) {
	switch strings.ToLower(format) {
	case "text":
		return domain.OutputFormatText, nil
	case "json":
		return domain.OutputFormatJSON, nil
	case "yaml", "yml":
		return domain.OutputFormatYAML, nil
	case "csv":
		return domain.OutputFormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (supported: text, json, yaml, csv)", format)
	}
}

func parseSortCriteria(sort string) (domain.SortCriteria, error) {
	switch strings.ToLower(sort) {
	case "location":
		return domain.SortByLocation, nil
	case "distance":
		return domain.SortByDistance, nil
	case "algorithm":
		return domain.SortByAlgorithm, nil
	default:
		return "", fmt.Errorf("unsupported sort criteria: %s (supported: location, distance, algorithm)", sort)
	}
}

func expandAndValidatePaths(args []string) ([]string, error) {
	var paths []string

	for _, arg := range args {
		expanded, err := filepath.Abs(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid path %s: %w", arg, err)
		}

		if _, err := os.Stat(expanded); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("path does not exist: %s", arg)
			}
			return nil, fmt.Errorf("cannot access path %s: %w", arg, err)
		}

		paths = append(paths, expanded)
	}

	return paths, nil
}

func handleAnalysisError(err error) error {
	// Convert domain errors to user-friendly messages
	if domainErr, ok := err.(domain.DomainError); ok {
		switch domainErr.Code {
		case domain.ErrCodeFileNotFound:
			return fmt.Errorf("file not found: %s", domainErr.Message)
		case domain.ErrCodeInvalidInput:
			return fmt.Errorf("invalid input: %s", domainErr.Message)
		case domain.ErrCodeParseError:
			return fmt.Errorf("parsing failed: %s", domainErr.Message)
		case domain.ErrCodeAnalysisError:
			return fmt.Errorf("analysis failed: %s", domainErr.Message)
		case domain.ErrCodeConfigError:
			return fmt.Errorf("configuration error: %s", domainErr.Message)
		case domain.ErrCodeOutputError:
			return fmt.Errorf("output error: %s", domainErr.Message)
		case domain.ErrCodeUnsupportedFormat:
			return fmt.Errorf("unsupported format: %s", domainErr.Message)
		default:
			return fmt.Errorf("analysis error: %s", domainErr.Message)
		}
	}

	return err
}

// NewTEDCmd creates and returns the ted cobra command
func NewTEDCmd() *cobra.Command {
	tedCommand := NewTEDCommand()
	return tedCommand.CreateCobraCommand()
}
