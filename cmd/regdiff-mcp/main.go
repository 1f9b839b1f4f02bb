package main

import (
	"fmt"
	"log"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/mcp"
)

const (
	serverName    = "regdiff"
	serverVersion = "1.0.0"
)

func main() {
	// Set up logging to stderr (MCP uses stdout for JSON-RPC)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Create MCP server with tool capabilities
	server := mcpserver.NewMCPServer(
		serverName,
		serverVersion,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithLogging(),
	)

	// Register all regdiff tools
	mcp.RegisterTools(server)

	log.Printf("Starting %s MCP server v%s\n", serverName, serverVersion)
	log.Println("Registered tools:")
	log.Println("  - compute_ted: Tree edit distance between two bracketed trees")
	log.Println("  - analyze_corpus: Batch analysis over paired treebank files")
	log.Println("")
	log.Println("Server ready - waiting for MCP client connection...")

	// Start server with stdio transport
	// This blocks until the server is terminated
	if err := mcpserver.ServeStdio(server); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
