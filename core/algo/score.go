package algo

import (
	"fmt"
	"math"

	"github.com/projectparaiba/paraiba/schema"
)

// ScoreOne computes the composite score for one candidate's inputs.
//
//	composite = 100 * (wSocial*social + wSentiment*sentiment + wRating*rating)
//
// Each sub-score is rounded before weighting; the composite keeps two
// decimals. Normalizer errors are returned unchanged, and a composite too
// large to represent is invalid input.
func ScoreOne(in schema.ScoreInputs, w schema.WeightConfig) (schema.ScoreResult, error) {
	social, err := SocialScore(in.RedditMentions, in.AverageUpvotes, w.Ceilings)
	if err != nil {
		return schema.ScoreResult{}, err
	}
	sentiment, err := SentimentScore(in.SentimentScore)
	if err != nil {
		return schema.ScoreResult{}, err
	}
	rating, err := RatingScore(in.GoogleRating, in.GoogleReviews, w.Rating, w.Ceilings.Reviews)
	if err != nil {
		return schema.ScoreResult{}, err
	}

	subScores := map[schema.BreakdownKey]float64{
		schema.BreakdownSocial:    social,
		schema.BreakdownSentiment: sentiment,
		schema.BreakdownRating:    rating,
	}

	breakdown := make(map[schema.BreakdownKey]float64, len(subScores))
	var raw float64
	for _, key := range schema.AllBreakdownKeys {
		contribution := w.GroupWeight(key) * subScores[key]
		breakdown[key] = contribution * 100.0
		raw += contribution
	}

	score := Round(raw*100.0, CompositePlaces)
	if math.IsInf(score, 0) {
		return schema.ScoreResult{}, fmt.Errorf("%w: composite score overflows", schema.ErrInvalidInput)
	}

	return schema.ScoreResult{
		Score:     score,
		Social:    &social,
		Sentiment: &sentiment,
		Rating:    &rating,
		Breakdown: breakdown,
	}, nil
}
