package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all regdiff MCP tools with the server
func RegisterTools(s *server.MCPServer) {
	// Tool 1: compute_ted - distance between two bracketed trees
	s.AddTool(mcp.NewTool("compute_ted",
		mcp.WithDescription("Compute tree edit distances between two bracketed constituency parse trees using the simple, Zhang-Shasha, Klein, and RTED algorithms"),
		mcp.WithString("canonical",
			mcp.Required(),
			mcp.Description("Bracketed constituency parse of the canonical sentence, e.g. (S (NP (DT The) (NN cat)) (VP (VBZ sits)))")),
		mcp.WithString("headline",
			mcp.Required(),
			mcp.Description("Bracketed constituency parse of the headline")),
		mcp.WithString("preset",
			mcp.Description("Algorithm preset: default, simple_only, standard_only, performance (default: default)")),
		mcp.WithString("cost_model",
			mcp.Description("Edit-cost model: unit, constituency (default: unit)")),
	), HandleComputeTED)

	// Tool 2: analyze_corpus - batch analysis over paired treebank files
	s.AddTool(mcp.NewTool("analyze_corpus",
		mcp.WithDescription("Run tree edit distance analysis over a corpus of paired *.canonical / *.headline treebank files"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to a corpus directory or a single *.canonical file")),
		mcp.WithString("preset",
			mcp.Description("Algorithm preset: default, simple_only, standard_only, performance (default: default)")),
		mcp.WithNumber("max_tree_size",
			mcp.Description("Size gate for expensive algorithms, 0 = preset default (default: 0)")),
		mcp.WithBoolean("include_scores",
			mcp.Description("Include the full per-sentence score listing in the result (default: false, summary only)")),
	), HandleAnalyzeCorpus)
}
