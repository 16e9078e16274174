package schema

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeightConfigIsValid(t *testing.T) {
	w := DefaultWeightConfig()
	require.NoError(t, w.Validate())

	assert.InDelta(t, 1.0, w.Groups.Sum(), 1e-9)
	assert.InDelta(t, 1.0, w.Rating.Sum(), 1e-9)
	assert.Equal(t, 0.40, w.GroupWeight(BreakdownSocial))
	assert.Equal(t, 0.30, w.GroupWeight(BreakdownSentiment))
	assert.Equal(t, 0.30, w.GroupWeight(BreakdownRating))
	assert.Equal(t, 0.0, w.GroupWeight("unknown"))
}

func TestWeightConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*WeightConfig)
		wantErr string
	}{
		{
			name:    "group sum too high",
			mutate:  func(w *WeightConfig) { w.Groups.Social = 0.5 },
			wantErr: "group weights must sum to 1.0, got 1.100",
		},
		{
			name:    "rating sum too low",
			mutate:  func(w *WeightConfig) { w.Rating.Obscurity = 0.2 },
			wantErr: "rating weights must sum to 1.0, got 0.800",
		},
		{
			name:    "negative weight",
			mutate:  func(w *WeightConfig) { w.Groups.Social = -0.1; w.Groups.Sentiment = 0.8 },
			wantErr: "groups.social must satisfy gte 0",
		},
		{
			name:    "weight above one",
			mutate:  func(w *WeightConfig) { w.Rating.Quality = 1.2; w.Rating.Obscurity = -0.2 },
			wantErr: "rating.quality must satisfy lte 1",
		},
		{
			name:    "zero ceiling",
			mutate:  func(w *WeightConfig) { w.Ceilings.Reviews = 0 },
			wantErr: "ceilings.reviews must satisfy gt 0",
		},
		{
			name:    "NaN weight",
			mutate:  func(w *WeightConfig) { w.Groups.Sentiment = math.NaN() },
			wantErr: "groups.sentiment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := DefaultWeightConfig()
			tt.mutate(&w)
			err := w.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfigInvariant)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWeightConfigValidateWithinTolerance(t *testing.T) {
	w := DefaultWeightConfig()
	w.Groups = GroupWeights{Social: 0.3334, Sentiment: 0.3333, Rating: 0.3333}
	assert.NoError(t, w.Validate())

	w.Groups = GroupWeights{Social: 0.335, Sentiment: 0.3333, Rating: 0.3333}
	assert.ErrorIs(t, w.Validate(), ErrConfigInvariant)
}
