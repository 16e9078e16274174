package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/projectparaiba/paraiba/core"
	"github.com/projectparaiba/paraiba/core/algo"
	"github.com/projectparaiba/paraiba/internal/contract"
	"github.com/projectparaiba/paraiba/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// batchResponse is the score_batch payload.
type batchResponse struct {
	RunID   string                           `json:"runId"`
	Scored  int                              `json:"scored"`
	Failed  int                              `json:"failed"`
	Results []schema.EnrichedRankedCandidate `json:"results"`
}

func (h *toolHandler) handleScoreOne(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	in, err := scoreInputsFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid score parameters: %v", err)), nil
	}

	result, err := algo.ScoreOne(in, cfg.Weights)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	rc := schema.RankedCandidate{
		Candidate: schema.CandidateFromInputs(request.GetString("name", ""), in),
		Result:    result,
	}
	return jsonResult(schema.EnrichRanked([]schema.RankedCandidate{rc})[0]), nil
}

func (h *toolHandler) handleScoreBatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	candidates, err := core.DecodeJSONCandidates([]byte(request.GetString("candidates", "")))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid candidates: %v", err)), nil
	}

	report := core.RankCandidates(ctx, cfg, candidates, nil)
	resp := batchResponse{
		RunID:   report.RunID.String(),
		Scored:  report.Scored,
		Failed:  report.Failed,
		Results: schema.EnrichRanked(algo.Top(report.Results, cfg.ResultLimit)),
	}
	return jsonResult(resp), nil
}

func (h *toolHandler) handleGetWeights(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(h.baseCfg.Weights), nil
}

// jsonResult renders v as indented JSON, or a tool error when it cannot be encoded.
func jsonResult(v any) *mcp.CallToolResult {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err))
	}
	return mcp.NewToolResultText(string(jsonData))
}

// scoreInputsFromRequest reads the five required signals of score_one.
func scoreInputsFromRequest(request mcp.CallToolRequest) (schema.ScoreInputs, error) {
	var (
		in  schema.ScoreInputs
		err error
	)
	if in.GoogleRating, err = request.RequireFloat("google_rating"); err != nil {
		return in, err
	}
	if in.GoogleReviews, err = request.RequireInt("google_reviews"); err != nil {
		return in, err
	}
	if in.RedditMentions, err = request.RequireInt("reddit_mentions"); err != nil {
		return in, err
	}
	if in.AverageUpvotes, err = request.RequireFloat("average_upvotes"); err != nil {
		return in, err
	}
	if in.SentimentScore, err = request.RequireFloat("sentiment_score"); err != nil {
		return in, err
	}
	return in, nil
}
