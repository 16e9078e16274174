package schema

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

// WeightSumTolerance is how far a weight group may drift from 1.0.
const WeightSumTolerance = 0.001

// GroupWeights are the top-level weights of the three signal groups.
type GroupWeights struct {
	Social    float64 `json:"social" validate:"gte=0,lte=1"`
	Sentiment float64 `json:"sentiment" validate:"gte=0,lte=1"`
	Rating    float64 `json:"rating" validate:"gte=0,lte=1"`
}

// Sum returns the total of the group weights.
func (g GroupWeights) Sum() float64 {
	return g.Social + g.Sentiment + g.Rating
}

// RatingWeights split the rating group between quality and obscurity.
type RatingWeights struct {
	Quality   float64 `json:"quality" validate:"gte=0,lte=1"`
	Obscurity float64 `json:"obscurity" validate:"gte=0,lte=1"`
}

// Sum returns the total of the rating sub-weights.
func (r RatingWeights) Sum() float64 {
	return r.Quality + r.Obscurity
}

// Ceilings are the reference counts used for logarithmic normalization.
// A raw count at or above its ceiling saturates.
type Ceilings struct {
	Mentions float64 `json:"mentions" validate:"gt=0"`
	Upvotes  float64 `json:"upvotes" validate:"gt=0"`
	Reviews  float64 `json:"reviews" validate:"gt=0"`
}

// WeightConfig is the complete, immutable scoring configuration. It is passed
// by value into the scoring functions.
type WeightConfig struct {
	Groups   GroupWeights  `json:"groups"`
	Rating   RatingWeights `json:"rating"`
	Ceilings Ceilings      `json:"ceilings"`
}

// DefaultWeightConfig returns the stock weights and ceilings.
//
//	composite = 100 * (0.40*social + 0.30*sentiment + 0.30*rating)
//	rating    = 0.60*(stars/5) + 0.40*obscurity
func DefaultWeightConfig() WeightConfig {
	return WeightConfig{
		Groups: GroupWeights{
			Social:    0.40,
			Sentiment: 0.30,
			Rating:    0.30,
		},
		Rating: RatingWeights{
			Quality:   0.60,
			Obscurity: 0.40,
		},
		Ceilings: Ceilings{
			Mentions: 50,
			Upvotes:  200,
			Reviews:  1000,
		},
	}
}

// GroupWeight returns the top-level weight for a breakdown key.
func (w WeightConfig) GroupWeight(key BreakdownKey) float64 {
	switch key {
	case BreakdownSocial:
		return w.Groups.Social
	case BreakdownSentiment:
		return w.Groups.Sentiment
	case BreakdownRating:
		return w.Groups.Rating
	default:
		return 0
	}
}

// Validate checks ranges and that both weight groups sum to 1.0.
// Every failure wraps ErrConfigInvariant.
func (w WeightConfig) Validate() error {
	if err := validate.Struct(w); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			field := strings.TrimPrefix(fe.Namespace(), "WeightConfig.")
			return fmt.Errorf("%w: %s must satisfy %s %s (got %v)", ErrConfigInvariant, field, fe.Tag(), fe.Param(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrConfigInvariant, err)
	}
	if sum := w.Groups.Sum(); math.Abs(sum-1.0) > WeightSumTolerance {
		return fmt.Errorf("%w: group weights must sum to 1.0, got %.3f", ErrConfigInvariant, sum)
	}
	if sum := w.Rating.Sum(); math.Abs(sum-1.0) > WeightSumTolerance {
		return fmt.Errorf("%w: rating weights must sum to 1.0, got %.3f", ErrConfigInvariant, sum)
	}
	return nil
}
