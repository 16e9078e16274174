package core

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/projectparaiba/paraiba/internal/contract"
	"github.com/projectparaiba/paraiba/schema"
)

func testConfig(t *testing.T, output schema.OutputMode) *contract.Config {
	t.Helper()
	return &contract.Config{
		ResultLimit: 25,
		Workers:     2,
		Precision:   2,
		Output:      output,
		Width:       120,
		OutputFile:  filepath.Join(t.TempDir(), "out."+string(output)),
		Weights:     schema.DefaultWeightConfig(),
	}
}

func TestExecuteRank(t *testing.T) {
	cfg := testConfig(t, schema.JSONOut)
	cfg.InputPath = writeTemp(t, "candidates.json", jsonCandidates)
	cfg.MetricsFile = filepath.Join(t.TempDir(), "paraiba.prom")

	require.NoError(t, ExecuteRank(context.Background(), cfg))

	content, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	var out struct {
		Scored  int              `json:"scored"`
		Failed  int              `json:"failed"`
		Results []map[string]any `json:"results"`
	}
	require.NoError(t, json.Unmarshal(content, &out))
	assert.Equal(t, 2, out.Scored)
	assert.Equal(t, 0, out.Failed)
	require.Len(t, out.Results, 2)
	assert.Equal(t, "Flatfish GNV", out.Results[0]["name"])
	assert.Equal(t, "Seafood", out.Results[0]["cuisine"])

	_, err = os.Stat(cfg.MetricsFile)
	assert.NoError(t, err, "metrics file should be written")
}

func TestExecuteRankAppliesLimit(t *testing.T) {
	orig := loadCandidates
	loadCandidates = func(string) ([]schema.Candidate, error) {
		return sampleCandidates(), nil
	}
	defer func() { loadCandidates = orig }()

	cfg := testConfig(t, schema.JSONOut)
	cfg.ResultLimit = 3
	require.NoError(t, ExecuteRank(context.Background(), cfg))

	content, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	var out struct {
		Scored  int              `json:"scored"`
		Results []map[string]any `json:"results"`
	}
	require.NoError(t, json.Unmarshal(content, &out))
	assert.Equal(t, 10, out.Scored, "counts cover the whole batch")
	require.Len(t, out.Results, 3)
	assert.Equal(t, expectedOrder[0], out.Results[0]["name"])
	assert.Equal(t, expectedOrder[2], out.Results[2]["name"])
}

func TestExecuteRankLoadError(t *testing.T) {
	cfg := testConfig(t, schema.TextOut)
	cfg.InputPath = filepath.Join(t.TempDir(), "missing.json")
	assert.Error(t, ExecuteRank(context.Background(), cfg))
}

func TestRankCandidatesRecordsBatch(t *testing.T) {
	rec := &contract.MockBatchRecorder{}
	rec.On("ObserveBatch", mock.MatchedBy(func(results []schema.RankedCandidate) bool {
		return len(results) == 10 && results[0].Candidate.Name() == expectedOrder[0]
	}), mock.Anything).Return().Once()

	cfg := testConfig(t, schema.TextOut)
	report := RankCandidates(context.Background(), cfg, sampleCandidates(), rec)

	rec.AssertExpectations(t)
	assert.Equal(t, 10, report.Scored)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, cfg.Weights, report.Weights)
	assert.Equal(t, expectedOrder, names(report.Results))
}

func TestRankCandidatesWithoutRecorder(t *testing.T) {
	cfg := testConfig(t, schema.TextOut)
	report := RankCandidates(context.Background(), cfg, sampleCandidates()[:2], nil)
	assert.Len(t, report.Results, 2)
}

func TestExecuteScore(t *testing.T) {
	cfg := testConfig(t, schema.JSONOut)
	cfg.ScoreName = "Pearl's Country Store"
	cfg.Score = schema.ScoreInputs{
		GoogleRating:   4.6,
		GoogleReviews:  3043,
		RedditMentions: 8,
		AverageUpvotes: 25,
		SentimentScore: 0.72,
	}

	require.NoError(t, ExecuteScore(context.Background(), cfg))

	content, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(content, &out))
	assert.Equal(t, "Pearl's Country Store", out["name"])
	assert.Equal(t, schema.PromisingLabel, out["label"])
	assert.Equal(t, 61.62, out["scoreResult"].(map[string]any)["score"])
}

func TestExecuteScoreInvalidInput(t *testing.T) {
	cfg := testConfig(t, schema.TextOut)
	cfg.Score = schema.ScoreInputs{GoogleRating: 4.0, GoogleReviews: -1}

	err := ExecuteScore(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrInvalidInput))
}

func TestExecuteWeights(t *testing.T) {
	cfg := testConfig(t, schema.CSVOut)
	require.NoError(t, ExecuteWeights(context.Background(), cfg))

	content, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "social")
}
