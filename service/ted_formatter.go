package service

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/domain"
)

// maxTextEvents caps the per-event listing in text output so a noisy corpus
// does not drown the summary.
const maxTextEvents = 25

// TEDFormatterImpl implements the TEDOutputFormatter interface.
type TEDFormatterImpl struct{}

// NewTEDFormatter creates a new TED output formatter.
func NewTEDFormatter() *TEDFormatterImpl {
	return &TEDFormatterImpl{}
}

// Format renders the response in the requested format.
func (f *TEDFormatterImpl) Format(response *domain.TEDResponse, format domain.OutputFormat, writer io.Writer) error {
	if response == nil {
		return domain.NewOutputError("response cannot be nil", nil)
	}
	if writer == nil {
		return domain.NewOutputError("writer cannot be nil", nil)
	}

	switch format {
	case domain.OutputFormatText:
		return f.formatText(response, writer)
	case domain.OutputFormatJSON:
		return f.formatJSON(response, writer)
	case domain.OutputFormatYAML:
		return f.formatYAML(response, writer)
	case domain.OutputFormatCSV:
		return f.formatCSV(response, writer)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

func (f *TEDFormatterImpl) formatJSON(response *domain.TEDResponse, writer io.Writer) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(response); err != nil {
		return domain.NewOutputError("failed to encode JSON", err)
	}
	return nil
}

func (f *TEDFormatterImpl) formatYAML(response *domain.TEDResponse, writer io.Writer) error {
	encoder := yaml.NewEncoder(writer)
	defer encoder.Close()
	if err := encoder.Encode(response); err != nil {
		return domain.NewOutputError("failed to encode YAML", err)
	}
	return nil
}

// formatCSV emits one row per score record. Events and summary are omitted;
// CSV is the raw-score export for downstream statistical tooling.
func (f *TEDFormatterImpl) formatCSV(response *domain.TEDResponse, writer io.Writer) error {
	w := csv.NewWriter(writer)

	header := []string{
		"newspaper", "sentence_id", "algorithm", "distance",
		"canonical_tree_size", "headline_tree_size",
		"canonical_text", "headline_text",
	}
	if err := w.Write(header); err != nil {
		return domain.NewOutputError("failed to write CSV header", err)
	}

	for _, score := range response.Scores {
		row := []string{
			score.Newspaper,
			score.SentenceID,
			string(score.Algorithm),
			strconv.FormatFloat(score.Distance, 'f', -1, 64),
			strconv.Itoa(score.CanonicalTreeSize),
			strconv.Itoa(score.HeadlineTreeSize),
			score.CanonicalText,
			score.HeadlineText,
		}
		if err := w.Write(row); err != nil {
			return domain.NewOutputError("failed to write CSV row", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return domain.NewOutputError("failed to flush CSV", err)
	}
	return nil
}

func (f *TEDFormatterImpl) formatText(response *domain.TEDResponse, writer io.Writer) error {
	fmt.Fprintln(writer, "Tree Edit Distance Analysis")
	fmt.Fprintln(writer, "===========================")
	fmt.Fprintln(writer)

	if summary := response.Summary; summary != nil {
		fmt.Fprintf(writer, "Files analyzed:   %d\n", summary.FilesAnalyzed)
		fmt.Fprintf(writer, "Pairs processed:  %d\n", summary.PairsProcessed)
		fmt.Fprintf(writer, "Pairs skipped:    %d\n", summary.PairsSkipped)
		fmt.Fprintf(writer, "Scores computed:  %d\n", summary.ScoresComputed)
		fmt.Fprintf(writer, "Failures:         %d\n", summary.Failures)
		fmt.Fprintln(writer)

		if len(summary.MeanDistance) > 0 {
			fmt.Fprintln(writer, "Mean distance by algorithm:")
			algorithms := make([]string, 0, len(summary.MeanDistance))
			for alg := range summary.MeanDistance {
				algorithms = append(algorithms, alg)
			}
			sort.Strings(algorithms)
			for _, alg := range algorithms {
				fmt.Fprintf(writer, "  %-14s %.3f\n", alg, summary.MeanDistance[alg])
			}
			fmt.Fprintln(writer)
		}
	}

	if response.ShowEvents && len(response.Events) > 0 {
		fmt.Fprintf(writer, "Difference events: %d\n", len(response.Events))
		shown := len(response.Events)
		if shown > maxTextEvents {
			shown = maxTextEvents
		}
		for _, event := range response.Events[:shown] {
			fmt.Fprintf(writer, "  %s %s [%s] %s distance=%s\n",
				event.Newspaper, event.SentenceID, event.ParseType,
				event.FeatureMnemonic, event.CanonicalValue)
		}
		if len(response.Events) > shown {
			fmt.Fprintf(writer, "  ... and %d more\n", len(response.Events)-shown)
		}
		fmt.Fprintln(writer)
	}

	fmt.Fprintf(writer, "Completed in %dms\n", response.Duration)
	return nil
}
