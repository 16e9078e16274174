//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const candidatesJSON = `[
  {"name": "Pearl's Country Store", "googleRating": 4.6, "googleReviews": 3043, "redditMentions": 8, "averageUpvotes": 25, "sentimentScore": 0.72},
  {"name": "Flatfish GNV", "googleRating": 4.7, "googleReviews": 158, "redditMentions": 8, "averageUpvotes": 25, "sentimentScore": 0.72},
  {"name": "M&D West African Cuisine", "googleRating": 4.9, "googleReviews": 195, "redditMentions": 8, "averageUpvotes": 25, "sentimentScore": 0.72},
  {"name": "Broken", "googleRating": "n/a", "googleReviews": 10, "redditMentions": 1, "averageUpvotes": 1, "sentimentScore": 0.5}
]`

// runParaiba runs the binary in dir and returns stdout, stderr and the run error.
func runParaiba(t *testing.T, dir string, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := exec.Command(getParaibaBinary(), args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func TestRankJSONFromFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "candidates.json")
	require.NoError(t, os.WriteFile(input, []byte(candidatesJSON), 0o600))

	stdout, stderr, err := runParaiba(t, dir, "", "rank", input, "--output", "json")
	require.NoError(t, err, stderr)

	var out struct {
		Scored  int              `json:"scored"`
		Failed  int              `json:"failed"`
		Results []map[string]any `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, 3, out.Scored)
	assert.Equal(t, 1, out.Failed)
	require.Len(t, out.Results, 4)

	got := make([]any, len(out.Results))
	for i, r := range out.Results {
		got[i] = r["name"]
	}
	assert.Equal(t, []any{"M&D West African Cuisine", "Flatfish GNV", "Pearl's Country Store", "Broken"}, got)
	assert.Contains(t, stderr, "could not be scored")
}

func TestRankFromStdin(t *testing.T) {
	stdout, stderr, err := runParaiba(t, t.TempDir(), candidatesJSON, "rank", "--output", "csv", "--limit", "2")
	require.NoError(t, err, stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3, "header plus two rows")
	assert.True(t, strings.HasPrefix(lines[1], "1,M&D West African Cuisine,65.54,Gem"))
}

func TestScoreCommand(t *testing.T) {
	stdout, stderr, err := runParaiba(t, t.TempDir(), "",
		"score", "--rating", "4.6", "--reviews", "3043", "--mentions", "8", "--upvotes", "25", "--sentiment", "0.72", "--output", "json")
	require.NoError(t, err, stderr)

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, 61.62, out["scoreResult"].(map[string]any)["score"])
}

func TestScoreCommandRejectsInvalidInput(t *testing.T) {
	_, stderr, err := runParaiba(t, t.TempDir(), "",
		"score", "--rating", "4.6", "--reviews", "-1", "--mentions", "8", "--upvotes", "25", "--sentiment", "0.72")
	require.Error(t, err)
	assert.Contains(t, stderr, "invalid input")
}

func TestInvalidWeightsFailAtStartup(t *testing.T) {
	dir := t.TempDir()
	config := "weights:\n  quality: 0.9\n  obscurity: 0.4\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".paraiba.yaml"), []byte(config), 0o600))

	_, stderr, err := runParaiba(t, dir, "", "weights")
	require.Error(t, err)
	assert.Contains(t, stderr, "rating weights must sum to 1.0")
}
