package domain

import "io"

// OutputFormat represents the output format for analysis results
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatCSV  OutputFormat = "csv"
)

// SortCriteria defines how score records are ordered in output
type SortCriteria string

const (
	// SortByLocation orders by newspaper, then sentence id (input order)
	SortByLocation SortCriteria = "location"
	// SortByDistance orders by distance, descending
	SortByDistance SortCriteria = "distance"
	// SortByAlgorithm orders by algorithm, then location
	SortByAlgorithm SortCriteria = "algorithm"
)

// ProgressManager manages progress tracking for a batch analysis run.
// Implementations live in the service layer.
type ProgressManager interface {
	// Initialize sets up progress tracking with the maximum value
	Initialize(maxValue int)

	// Start starts the progress bar
	Start()

	// Complete marks the progress as completed
	Complete(success bool)

	// Update updates the progress
	Update(processed, total int)

	// SetWriter sets the output writer for progress bars
	SetWriter(writer io.Writer)

	// IsInteractive returns true if progress bars should be shown
	IsInteractive() bool

	// Close cleans up any resources
	Close()
}
