package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/domain"
	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/internal/analyzer"
	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/internal/config"
	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/internal/treebank"
)

// TEDServiceImpl implements the domain.TEDService interface: it locates
// corpus file pairs, parses them, and runs the TED driver over the aligned
// sentence pairs.
type TEDServiceImpl struct {
	progress domain.ProgressManager
	logger   *log.Logger
}

// NewTEDService creates a new TED service.
// progress can be nil - the service works without progress reporting.
func NewTEDService(progress domain.ProgressManager) *TEDServiceImpl {
	return &TEDServiceImpl{
		progress: progress,
		logger:   log.New(os.Stderr, "", log.LstdFlags),
	}
}

// Analyze runs TED analysis over the corpus files named by the request.
func (s *TEDServiceImpl) Analyze(ctx context.Context, req *domain.TEDRequest) (*domain.TEDResponse, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}
	if req == nil {
		return nil, fmt.Errorf("TED request cannot be nil")
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid TED request: %w", err)
	}

	startTime := time.Now()

	files, err := CollectCanonicalFiles(req.Paths, req.Recursive, req.IncludePatterns, req.ExcludePatterns)
	if err != nil {
		return nil, fmt.Errorf("failed to collect corpus files: %w", err)
	}

	var pairs []*treebank.SentencePair
	for _, file := range files {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("TED analysis cancelled: %w", ctx.Err())
		default:
		}

		filePairs, warnings, err := treebank.LoadPairFile(file)
		if err != nil {
			s.logger.Printf("Warning: skipping corpus file %s: %v", file, err)
			continue
		}
		for _, w := range warnings {
			s.logger.Printf("Warning: %v", w)
		}
		pairs = append(pairs, filePairs...)
	}

	response, err := s.runDriver(ctx, req, pairs)
	if err != nil {
		return nil, err
	}
	response.Summary.FilesAnalyzed = len(files)
	response.Duration = time.Since(startTime).Milliseconds()
	return response, nil
}

// AnalyzePair computes all configured distances for a single pair of
// bracketed constituency trees. Used by the MCP surface and ad hoc checks.
func (s *TEDServiceImpl) AnalyzePair(ctx context.Context, canonical, headline string, req *domain.TEDRequest) (*domain.TEDResponse, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}
	if req == nil {
		req = domain.DefaultTEDRequest()
	}

	canonicalTree, err := treebank.ParseBracket(canonical)
	if err != nil {
		return nil, domain.NewParseError("canonical tree", err)
	}
	headlineTree, err := treebank.ParseBracket(headline)
	if err != nil {
		return nil, domain.NewParseError("headline tree", err)
	}

	pair := &treebank.SentencePair{
		Newspaper:     "adhoc",
		SentenceID:    "adhoc-1",
		Canonical:     canonicalTree,
		Headline:      headlineTree,
		CanonicalText: canonicalTree.Text(),
		HeadlineText:  headlineTree.Text(),
	}

	startTime := time.Now()
	response, err := s.runDriver(ctx, req, []*treebank.SentencePair{pair})
	if err != nil {
		return nil, err
	}
	response.Duration = time.Since(startTime).Milliseconds()
	return response, nil
}

// runDriver executes the TED driver over the pairs and assembles a response.
func (s *TEDServiceImpl) runDriver(ctx context.Context, req *domain.TEDRequest, pairs []*treebank.SentencePair) (*domain.TEDResponse, error) {
	tedConfig, err := config.TEDConfigFromRequest(req)
	if err != nil {
		return nil, err
	}

	driver := analyzer.NewTEDDriver(tedConfig)
	driver.SetLogger(s.logger)

	if s.progress != nil {
		s.progress.Initialize(len(pairs))
		s.progress.Start()
	}

	for i, pair := range pairs {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("TED analysis cancelled: %w", ctx.Err())
		default:
		}

		driver.ProcessPair(pair)
		if s.progress != nil {
			s.progress.Update(i+1, len(pairs))
		}
	}

	if s.progress != nil {
		s.progress.Complete(true)
	}

	scores := driver.Scores()
	sortScores(scores, req.SortBy)

	stats := driver.Stats()
	response := &domain.TEDResponse{
		Scores:     scores,
		Events:     driver.Events(),
		ShowEvents: req.ShowEvents,
		Summary: &domain.TEDSummary{
			PairsProcessed: stats.PairsProcessed,
			PairsSkipped:   stats.PairsSkipped,
			ScoresComputed: stats.ScoresComputed,
			Failures:       stats.Failures,
			MeanDistance:   meanDistanceByAlgorithm(scores),
		},
		Success: true,
	}
	return response, nil
}

// meanDistanceByAlgorithm averages the recorded distances per algorithm.
func meanDistanceByAlgorithm(scores []domain.SentenceTEDScore) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, score := range scores {
		key := string(score.Algorithm)
		sums[key] += score.Distance
		counts[key]++
	}

	means := make(map[string]float64, len(sums))
	for key, sum := range sums {
		means[key] = sum / float64(counts[key])
	}
	return means
}

// sortScores orders score records by the requested criteria. Location order
// (newspaper, sentence, algorithm) preserves input order and aids debugging.
func sortScores(scores []domain.SentenceTEDScore, criteria domain.SortCriteria) {
	switch criteria {
	case domain.SortByDistance:
		sort.SliceStable(scores, func(i, j int) bool {
			return scores[i].Distance > scores[j].Distance
		})
	case domain.SortByAlgorithm:
		sort.SliceStable(scores, func(i, j int) bool {
			if scores[i].Algorithm != scores[j].Algorithm {
				return scores[i].Algorithm < scores[j].Algorithm
			}
			if scores[i].Newspaper != scores[j].Newspaper {
				return scores[i].Newspaper < scores[j].Newspaper
			}
			return scores[i].SentenceID < scores[j].SentenceID
		})
	default:
		// Input order already groups by newspaper and sentence.
	}
}

// CollectCanonicalFiles expands the requested paths into canonical corpus
// files using doublestar glob patterns. A path naming a file directly is
// taken as is; directories are searched with the include patterns and
// pruned by the excludes. When recursive is false the include patterns
// still apply, but matches inside subdirectories are dropped.
func CollectCanonicalFiles(paths []string, recursive bool, includePatterns, excludePatterns []string) ([]string, error) {
	if len(includePatterns) == 0 {
		if recursive {
			includePatterns = []string{"**/*" + treebank.CanonicalExt}
		} else {
			includePatterns = []string{"*" + treebank.CanonicalExt}
		}
	}

	seen := make(map[string]bool)
	var files []string

	addFile := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, domain.NewFileNotFoundError(path, err)
		}

		if !info.IsDir() {
			addFile(path)
			continue
		}

		fsys := os.DirFS(path)
		for _, pattern := range includePatterns {
			matches, err := doublestar.Glob(fsys, pattern)
			if err != nil {
				return nil, domain.NewConfigError(fmt.Sprintf("bad include pattern %q", pattern), err)
			}
			for _, match := range matches {
				// fs.FS match paths always use "/" separators.
				if !recursive && strings.Contains(match, "/") {
					continue
				}
				if isExcluded(match, excludePatterns) {
					continue
				}
				addFile(filepath.Join(path, match))
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

func isExcluded(relPath string, excludePatterns []string) bool {
	for _, pattern := range excludePatterns {
		if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
			return true
		}
	}
	return false
}
