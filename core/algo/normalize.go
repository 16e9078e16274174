// Package algo holds the pure scoring functions: normalizers, the weighted
// aggregator and the ranker.
package algo

import (
	"fmt"
	"math"
	"strconv"

	"github.com/projectparaiba/paraiba/schema"
)

// Decimal places kept by each stage.
const (
	SubScorePlaces  = 4
	CompositePlaces = 2
)

// Round rounds the exact value of v to the given number of decimal places,
// ties to even. Large magnitudes stay finite.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil || r == 0 {
		// Drops the sign of -0 as well.
		return 0
	}
	return r
}

// logFraction compresses v onto the ceiling's log scale. It is 0 at v=0 and
// 1 at v=ceiling.
func logFraction(v, ceiling float64) float64 {
	return math.Log1p(v) / math.Log1p(ceiling)
}

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be a finite number, got %v", schema.ErrInvalidInput, name, v)
	}
	return nil
}

// SocialScore averages the log-scaled mention and upvote fractions, each
// capped at 1.0 by its ceiling.
func SocialScore(mentions int, upvotes float64, c schema.Ceilings) (float64, error) {
	if mentions < 0 {
		return 0, fmt.Errorf("%w: mention count must be non-negative, got %d", schema.ErrInvalidInput, mentions)
	}
	if err := checkFinite("average upvotes", upvotes); err != nil {
		return 0, err
	}
	if upvotes < 0 {
		return 0, fmt.Errorf("%w: average upvotes must be non-negative, got %v", schema.ErrInvalidInput, upvotes)
	}

	mentionNorm := math.Min(1.0, logFraction(float64(mentions), c.Mentions))
	upvoteNorm := math.Min(1.0, logFraction(upvotes, c.Upvotes))

	return Round((mentionNorm+upvoteNorm)/2, SubScorePlaces), nil
}

// SentimentScore passes the upstream sentiment through. Values outside
// [0,1] are not clamped.
func SentimentScore(sentiment float64) (float64, error) {
	if err := checkFinite("sentiment score", sentiment); err != nil {
		return 0, err
	}
	return Round(sentiment, SubScorePlaces), nil
}

// RatingScore blends rating quality (stars/5, unclamped) with obscurity,
// which falls from 1 toward 0 as reviews approach the ceiling and never
// goes negative.
func RatingScore(rating float64, reviews int, w schema.RatingWeights, reviewCeiling float64) (float64, error) {
	if err := checkFinite("rating", rating); err != nil {
		return 0, err
	}
	if reviews < 0 {
		return 0, fmt.Errorf("%w: review count must be non-negative, got %d", schema.ErrInvalidInput, reviews)
	}

	ratingNorm := rating / 5.0
	obscurity := ObscurityFraction(reviews, reviewCeiling)

	return Round(w.Quality*ratingNorm+w.Obscurity*obscurity, SubScorePlaces), nil
}

// ObscurityFraction is the inverse-popularity term of the rating group.
func ObscurityFraction(reviews int, reviewCeiling float64) float64 {
	return math.Max(0.0, 1.0-logFraction(float64(reviews), reviewCeiling))
}
