package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/app"
	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/domain"
	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/service"
)

// PairCommand represents the pair command
type PairCommand struct {
	outputFormat string
	preset       string
	costModel    string
	configFile   string
}

// NewPairCommand creates a new pair command
func NewPairCommand() *PairCommand {
	return &PairCommand{
		outputFormat: "text",
		preset:       "default",
	}
}

// CreateCobraCommand creates the cobra command for single-pair comparison
func (p *PairCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pair <canonical-tree> <headline-tree>",
		Short: "Compare two bracketed constituency trees directly",
		Long: `Compare two bracketed constituency trees given on the command line,
without a corpus. Useful for spot checks and debugging parses.

Examples:
  regdiff pair "(S (NP (DT The) (NN cat)) (VP (VBZ sits)))" \
               "(S (NP (NN Cat)) (VP (VBZ sits)))"
  regdiff pair --format json "(S (NN dogs))" "(S (NN dog))"`,
		Args: cobra.ExactArgs(2),
		RunE: p.runPairComparison,
	}

	cmd.Flags().StringVarP(&p.outputFormat, "format", "f", "text", "Output format (text, json, yaml, csv)")
	cmd.Flags().StringVar(&p.preset, "preset", "default", "Algorithm preset (default, simple_only, standard_only, performance)")
	cmd.Flags().StringVar(&p.costModel, "cost-model", "", "Edit-cost model (unit, constituency)")
	cmd.Flags().StringVarP(&p.configFile, "config", "c", "", "Configuration file path")

	return cmd
}

// runPairComparison executes the single-pair comparison
func (p *PairCommand) runPairComparison(cmd *cobra.Command, args []string) error {
	outputFormat, err := parseOutputFormat(p.outputFormat)
	if err != nil {
		return fmt.Errorf("invalid command arguments: %w", err)
	}

	req := domain.DefaultTEDRequest()
	req.Preset = p.preset
	req.OutputFormat = outputFormat
	req.OutputWriter = cmd.OutOrStdout()
	req.ShowEvents = true
	req.ConfigPath = p.configFile
	if p.costModel != "" {
		req.CostModelType = p.costModel
	}

	useCase, err := app.NewTEDUseCaseBuilder().
		WithService(service.NewTEDService(service.NewNoOpProgressManager())).
		WithFormatter(service.NewTEDFormatter()).
		WithConfigLoader(service.NewTEDConfigurationLoader()).
		Build()
	if err != nil {
		return fmt.Errorf("failed to initialize analyzer: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := useCase.ExecutePair(ctx, args[0], args[1], req); err != nil {
		return handleAnalysisError(err)
	}

	return nil
}

// NewPairCmd creates and returns the pair cobra command
func NewPairCmd() *cobra.Command {
	pairCommand := NewPairCommand()
	return pairCommand.CreateCobraCommand()
}
