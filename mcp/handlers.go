package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/domain"
	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/service"
)

// newService builds the TED service used by all handlers. Progress output is
// suppressed: MCP owns stdout for JSON-RPC and stderr is for logs only.
func newService() domain.TEDService {
	return service.NewTEDService(service.NewNoOpProgressManager())
}

// HandleComputeTED handles the compute_ted tool
func HandleComputeTED(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	canonical, ok := args["canonical"].(string)
	if !ok || canonical == "" {
		return mcp.NewToolResultError("canonical parameter is required and must be a string"), nil
	}
	headline, ok := args["headline"].(string)
	if !ok || headline == "" {
		return mcp.NewToolResultError("headline parameter is required and must be a string"), nil
	}

	req := domain.DefaultTEDRequest()
	if preset, ok := args["preset"].(string); ok && preset != "" {
		req.Preset = preset
	}
	if costModel, ok := args["cost_model"].(string); ok && costModel != "" {
		req.CostModelType = costModel
	}

	response, err := newService().AnalyzePair(ctx, canonical, headline, req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}

	distances := make(map[string]float64, len(response.Scores))
	for _, score := range response.Scores {
		distances[string(score.Algorithm)] = score.Distance
	}

	responseData := map[string]interface{}{
		"distances": distances,
		"canonical_tree_size": treeSizeFromScores(response.Scores, func(s domain.SentenceTEDScore) int {
			return s.CanonicalTreeSize
		}),
		"headline_tree_size": treeSizeFromScores(response.Scores, func(s domain.SentenceTEDScore) int {
			return s.HeadlineTreeSize
		}),
		"failures": response.Summary.Failures,
	}

	jsonData, err := json.Marshal(responseData)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// HandleAnalyzeCorpus handles the analyze_corpus tool
func HandleAnalyzeCorpus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	path, ok := args["path"].(string)
	if !ok {
		return mcp.NewToolResultError("path parameter is required and must be a string"), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return mcp.NewToolResultError(fmt.Sprintf("path does not exist: %s", path)), nil
	}

	req := domain.DefaultTEDRequest()
	req.Paths = []string{path}
	if preset, ok := args["preset"].(string); ok && preset != "" {
		req.Preset = preset
	}
	if maxTreeSize, ok := args["max_tree_size"].(float64); ok && maxTreeSize > 0 {
		req.MaxTreeSize = int(maxTreeSize)
	}

	response, err := newService().Analyze(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("corpus analysis failed: %v", err)), nil
	}

	includeScores := false
	if v, ok := args["include_scores"].(bool); ok {
		includeScores = v
	}

	var responseData interface{}
	if includeScores {
		responseData = response
	} else {
		responseData = map[string]interface{}{
			"summary":     response.Summary,
			"event_count": len(response.Events),
			"duration_ms": response.Duration,
		}
	}

	jsonData, err := json.Marshal(responseData)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// treeSizeFromScores extracts a tree size from the first score record; every
// algorithm reports the same sizes for one pair.
func treeSizeFromScores(scores []domain.SentenceTEDScore, pick func(domain.SentenceTEDScore) int) int {
	if len(scores) == 0 {
		return 0
	}
	return pick(scores[0])
}
