// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/projectparaiba/paraiba/internal/contract"
)

// NewMCPServer initializes and configures the Paraiba MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Paraiba Hidden Gem Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: score_one ---
	s.AddTool(mcp.NewTool("score_one",
		mcp.WithDescription("Compute the hidden gem score (0-100) for a single candidate from its raw signals."),
		mcp.WithNumber("google_rating", mcp.Description("Average star rating on a 0-5 scale."), mcp.Required()),
		mcp.WithNumber("google_reviews", mcp.Description("Number of reviews behind the rating."), mcp.Required()),
		mcp.WithNumber("reddit_mentions", mcp.Description("Number of community mentions."), mcp.Required()),
		mcp.WithNumber("average_upvotes", mcp.Description("Average upvotes per mention."), mcp.Required()),
		mcp.WithNumber("sentiment_score", mcp.Description("Pre-computed sentiment, nominally 0-1."), mcp.Required()),
		mcp.WithString("name", mcp.Description("Optional display name echoed in the result.")),
	), h.handleScoreOne)

	// --- 2. Tool: score_batch ---
	s.AddTool(mcp.NewTool("score_batch",
		mcp.WithDescription("Score and rank a batch of candidates. Candidates that cannot be scored are kept with a zero score and an error."),
		mcp.WithString("candidates", mcp.Description("JSON array of candidate objects, or an object with a 'candidates' array."), mcp.Required()),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleScoreBatch)

	// --- 3. Tool: get_weights ---
	s.AddTool(mcp.NewTool("get_weights",
		mcp.WithDescription("Return the active weight configuration used for scoring."),
	), h.handleGetWeights)

	return s
}

// StartMCPServer starts the Paraiba MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
