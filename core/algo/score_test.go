package algo

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectparaiba/paraiba/schema"
)

// sampleInputs share the same social and sentiment signals so that rating
// and review counts drive the ordering.
var sampleInputs = []struct {
	name      string
	in        schema.ScoreInputs
	rating    float64
	composite float64
}{
	{"Pearl's Country Store", inputs(4.6, 3043), 0.552, 61.62},
	{"Adam's Rib Co", inputs(4.5, 2033), 0.54, 61.26},
	{"La Tienda", inputs(4.5, 2952), 0.54, 61.26},
	{"La Cocina de Abuela", inputs(4.6, 768), 0.5673, 62.08},
	{"Flatfish GNV", inputs(4.7, 158), 0.6705, 65.18},
	{"M&D West African Cuisine", inputs(4.9, 195), 0.6824, 65.54},
	{"Di Big Jerk", inputs(4.3, 146), 0.6271, 63.88},
	{"Caribbean Spice", inputs(4.2, 529), 0.5408, 61.29},
	{"Uppercrust", inputs(4.7, 821), 0.5754, 62.33},
	{"Mi Apa Latin Cafe", inputs(4.6, 4974), 0.552, 61.62},
}

func inputs(rating float64, reviews int) schema.ScoreInputs {
	return schema.ScoreInputs{
		GoogleRating:   rating,
		GoogleReviews:  reviews,
		RedditMentions: 8,
		AverageUpvotes: 25,
		SentimentScore: 0.72,
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.5866, Round(0.586597, 4))
	assert.Equal(t, 61.62, Round(61.624, 2))
	assert.Equal(t, 0.0, Round(0, 4))
	assert.Equal(t, 0.12, Round(0.125, 2), "ties round to even")

	// The stored value decides, not the product with the scale
	assert.Equal(t, 0.1235, Round(0.12345, 4))
	assert.Equal(t, 0.0001, Round(0.00005, 4))
	assert.Equal(t, 0.5678, Round(0.56785, 4))
	assert.Equal(t, 0.0, Round(-0.00001, 4))
	assert.False(t, math.Signbit(Round(-0.00001, 4)))

	// Large magnitudes survive without overflowing
	assert.Equal(t, 1.2e305, Round(1.2e305, 4))
	assert.True(t, math.IsInf(Round(math.Inf(1), 2), 1))
}

func TestSentimentScoreRoundsStoredValue(t *testing.T) {
	s, err := SentimentScore(0.12345)
	require.NoError(t, err)
	assert.Equal(t, 0.1235, s)
}

func TestScoreOneHugeRatingStaysFinite(t *testing.T) {
	in := inputs(1e306, 10)

	res, err := ScoreOne(in, schema.DefaultWeightConfig())
	require.NoError(t, err)
	assert.False(t, math.IsInf(res.Score, 0))
	assert.InDelta(t, 1.2e305, *res.Rating, 1e291)

	_, err = json.Marshal(res)
	assert.NoError(t, err)
}

func TestScoreOneOverflowIsInvalidInput(t *testing.T) {
	in := inputs(math.MaxFloat64, 10)

	_, err := ScoreOne(in, schema.DefaultWeightConfig())
	assert.ErrorIs(t, err, schema.ErrInvalidInput)
}

func TestSocialScore(t *testing.T) {
	c := schema.DefaultWeightConfig().Ceilings

	tests := []struct {
		name     string
		mentions int
		upvotes  float64
		expected float64
	}{
		{"no activity", 0, 0, 0.0},
		{"typical", 8, 25, 0.5866},
		{"exactly at ceilings", 50, 200, 1.0},
		{"above ceilings saturates", 500, 10000, 1.0},
		{"mentions only", 50, 0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SocialScore(tt.mentions, tt.upvotes, c)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSocialScoreRejectsBadInput(t *testing.T) {
	c := schema.DefaultWeightConfig().Ceilings

	_, err := SocialScore(-1, 10, c)
	assert.ErrorIs(t, err, schema.ErrInvalidInput)

	_, err = SocialScore(1, -10, c)
	assert.ErrorIs(t, err, schema.ErrInvalidInput)

	_, err = SocialScore(1, math.NaN(), c)
	assert.ErrorIs(t, err, schema.ErrInvalidInput)

	_, err = SocialScore(1, math.Inf(1), c)
	assert.ErrorIs(t, err, schema.ErrInvalidInput)
}

func TestSentimentScorePassesThrough(t *testing.T) {
	got, err := SentimentScore(0.72)
	require.NoError(t, err)
	assert.Equal(t, 0.72, got)

	got, err = SentimentScore(0.123456)
	require.NoError(t, err)
	assert.Equal(t, 0.1235, got)

	// Out-of-range sentiment is not clamped.
	got, err = SentimentScore(1.5)
	require.NoError(t, err)
	assert.Equal(t, 1.5, got)

	got, err = SentimentScore(-0.25)
	require.NoError(t, err)
	assert.Equal(t, -0.25, got)

	_, err = SentimentScore(math.NaN())
	assert.ErrorIs(t, err, schema.ErrInvalidInput)
}

func TestRatingScore(t *testing.T) {
	w := schema.DefaultWeightConfig()

	got, err := RatingScore(5.0, 0, w.Rating, w.Ceilings.Reviews)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got, "perfect rating with no reviews is fully obscure")

	got, err = RatingScore(5.0, 1000, w.Rating, w.Ceilings.Reviews)
	require.NoError(t, err)
	assert.Equal(t, 0.6, got, "obscurity is zero at the review ceiling")

	got, err = RatingScore(4.6, 3043, w.Rating, w.Ceilings.Reviews)
	require.NoError(t, err)
	assert.Equal(t, 0.552, got, "obscurity never goes negative")

	// Ratings above five are not clamped.
	got, err = RatingScore(6.0, 1000, w.Rating, w.Ceilings.Reviews)
	require.NoError(t, err)
	assert.Equal(t, 0.72, got)
}

func TestRatingScoreRejectsBadInput(t *testing.T) {
	w := schema.DefaultWeightConfig()

	_, err := RatingScore(4.5, -1, w.Rating, w.Ceilings.Reviews)
	assert.ErrorIs(t, err, schema.ErrInvalidInput)

	_, err = RatingScore(math.Inf(-1), 10, w.Rating, w.Ceilings.Reviews)
	assert.ErrorIs(t, err, schema.ErrInvalidInput)
}

func TestObscurityFractionMonotonic(t *testing.T) {
	prev := ObscurityFraction(0, 1000)
	assert.Equal(t, 1.0, prev)
	for _, reviews := range []int{1, 10, 100, 500, 999, 1000, 5000} {
		got := ObscurityFraction(reviews, 1000)
		assert.LessOrEqual(t, got, prev, "reviews=%d", reviews)
		assert.GreaterOrEqual(t, got, 0.0)
		prev = got
	}
}

func TestScoreOneGolden(t *testing.T) {
	w := schema.DefaultWeightConfig()

	for _, tt := range sampleInputs {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ScoreOne(tt.in, w)
			require.NoError(t, err)
			assert.True(t, res.OK())
			require.NotNil(t, res.Social)
			require.NotNil(t, res.Sentiment)
			require.NotNil(t, res.Rating)

			assert.Equal(t, 0.5866, *res.Social)
			assert.Equal(t, 0.72, *res.Sentiment)
			assert.Equal(t, tt.rating, *res.Rating)
			assert.Equal(t, tt.composite, res.Score)
		})
	}
}

func TestScoreOneBreakdown(t *testing.T) {
	w := schema.DefaultWeightConfig()
	res, err := ScoreOne(inputs(4.9, 195), w)
	require.NoError(t, err)

	require.Len(t, res.Breakdown, len(schema.AllBreakdownKeys))
	var total float64
	for _, key := range schema.AllBreakdownKeys {
		total += res.Breakdown[key]
	}
	assert.InDelta(t, res.Score, total, 0.005)
	assert.InDelta(t, 23.464, res.Breakdown[schema.BreakdownSocial], 1e-9)
	assert.InDelta(t, 21.6, res.Breakdown[schema.BreakdownSentiment], 1e-9)
}

func TestScoreOneBounds(t *testing.T) {
	w := schema.DefaultWeightConfig()

	res, err := ScoreOne(schema.ScoreInputs{}, w)
	require.NoError(t, err)
	assert.Equal(t, 12.0, res.Score, "only obscurity contributes for an empty candidate")

	res, err = ScoreOne(schema.ScoreInputs{
		GoogleRating:   5,
		GoogleReviews:  0,
		RedditMentions: 50,
		AverageUpvotes: 200,
		SentimentScore: 1,
	}, w)
	require.NoError(t, err)
	assert.Equal(t, 100.0, res.Score)
}

func TestScoreOneUsesCustomWeights(t *testing.T) {
	w := schema.DefaultWeightConfig()
	w.Groups = schema.GroupWeights{Social: 0, Sentiment: 1, Rating: 0}

	res, err := ScoreOne(inputs(4.6, 3043), w)
	require.NoError(t, err)
	assert.Equal(t, 72.0, res.Score)
}

func TestScoreOnePropagatesInvalidInput(t *testing.T) {
	w := schema.DefaultWeightConfig()
	in := inputs(4.5, 100)
	in.RedditMentions = -3

	res, err := ScoreOne(in, w)
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrInvalidInput)
	assert.Equal(t, schema.ScoreResult{}, res)
}

func TestScoreOneFewerReviewsNeverScoresLower(t *testing.T) {
	w := schema.DefaultWeightConfig()
	prev, err := ScoreOne(inputs(4.5, 0), w)
	require.NoError(t, err)

	for _, reviews := range []int{5, 50, 150, 400, 900, 1500} {
		res, err := ScoreOne(inputs(4.5, reviews), w)
		require.NoError(t, err)
		assert.LessOrEqual(t, res.Score, prev.Score, "reviews=%d", reviews)
		prev = res
	}
}

func TestScoreOneMonotonicInEachSignal(t *testing.T) {
	w := schema.DefaultWeightConfig()
	base := inputs(4.5, 200)

	bumps := map[string]func(in *schema.ScoreInputs){
		"mentions":  func(in *schema.ScoreInputs) { in.RedditMentions += 3 },
		"upvotes":   func(in *schema.ScoreInputs) { in.AverageUpvotes += 40 },
		"sentiment": func(in *schema.ScoreInputs) { in.SentimentScore += 0.1 },
		"rating":    func(in *schema.ScoreInputs) { in.GoogleRating += 0.2 },
	}

	for name, bump := range bumps {
		t.Run(name, func(t *testing.T) {
			prev, err := ScoreOne(base, w)
			require.NoError(t, err)

			in := base
			for range 5 {
				bump(&in)
				res, err := ScoreOne(in, w)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, res.Score, prev.Score)
				prev = res
			}
		})
	}
}

func FuzzScoreOne(f *testing.F) {
	f.Add(4.6, 3043, 8, 25.0, 0.72)
	f.Add(0.0, 0, 0, 0.0, 0.0)
	f.Add(5.0, 0, 50, 200.0, 1.0)
	f.Add(3.2, 99999, 1000, 1e6, 0.5)

	w := schema.DefaultWeightConfig()

	f.Fuzz(func(t *testing.T, rating float64, reviews, mentions int, upvotes, sentiment float64) {
		in := schema.ScoreInputs{
			GoogleRating:   rating,
			GoogleReviews:  reviews,
			RedditMentions: mentions,
			AverageUpvotes: upvotes,
			SentimentScore: sentiment,
		}
		res, err := ScoreOne(in, w)
		if err != nil {
			assert.ErrorIs(t, err, schema.ErrInvalidInput)
			return
		}

		inRange := rating >= 0 && rating <= 5 && sentiment >= 0 && sentiment <= 1
		if inRange {
			assert.GreaterOrEqual(t, res.Score, 0.0)
			assert.LessOrEqual(t, res.Score, 100.0)
		}
		assert.GreaterOrEqual(t, *res.Social, 0.0)
		assert.LessOrEqual(t, *res.Social, 1.0)
	})
}

func BenchmarkScoreOne(b *testing.B) {
	w := schema.DefaultWeightConfig()
	in := inputs(4.6, 3043)
	for b.Loop() {
		_, _ = ScoreOne(in, w)
	}
}
