package outwriter

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/projectparaiba/paraiba/schema"
)

// breakdownContrib is one group's weighted contribution in score points.
type breakdownContrib struct {
	Key   schema.BreakdownKey
	Value float64
}

// contribMinimum hides groups that barely move the score.
const contribMinimum = 0.5

// formatBreakdown lists the signal groups by contribution, largest first.
func formatBreakdown(r schema.ScoreResult) string {
	if !r.OK() {
		return r.Error
	}

	var contribs []breakdownContrib
	for _, key := range schema.AllBreakdownKeys {
		v, ok := r.Breakdown[key]
		if ok && math.Abs(v) >= contribMinimum {
			contribs = append(contribs, breakdownContrib{Key: key, Value: v})
		}
	}
	if len(contribs) == 0 {
		return "Not applicable"
	}

	sort.SliceStable(contribs, func(i, j int) bool {
		return math.Abs(contribs[i].Value) > math.Abs(contribs[j].Value)
	})

	parts := make([]string, len(contribs))
	for i, c := range contribs {
		parts[i] = fmt.Sprintf("%s %.1f", c.Key, c.Value)
	}
	return strings.Join(parts, " > ")
}

// formatWeights formats weights for display in formulas.
func formatWeights(w schema.WeightConfig) string {
	var parts []string
	for _, key := range schema.AllBreakdownKeys {
		if weight := w.GroupWeight(key); weight > 0 {
			parts = append(parts, fmt.Sprintf("%.2f*%s", weight, key))
		}
	}
	return "100 * (" + strings.Join(parts, " + ") + ")"
}

// buildWeightsRenderModel constructs the complete render model with all processed data.
func buildWeightsRenderModel(w schema.WeightConfig) *schema.WeightsRenderModel {
	groups := []schema.SignalGroup{
		{
			Key:     string(schema.BreakdownSocial),
			Name:    "Social",
			Purpose: "Community buzz - mentions and upvotes in local discussions",
			Weight:  w.Groups.Social,
			Formula: fmt.Sprintf("mean(ln(mentions+1)/ln(%g+1), ln(upvotes+1)/ln(%g+1)), each capped at 1",
				w.Ceilings.Mentions, w.Ceilings.Upvotes),
		},
		{
			Key:     string(schema.BreakdownSentiment),
			Name:    "Sentiment",
			Purpose: "Tone of the discussion - pre-computed sentiment, passed through",
			Weight:  w.Groups.Sentiment,
			Formula: "sentimentScore",
		},
		{
			Key:     string(schema.BreakdownRating),
			Name:    "Rating",
			Purpose: "Quality without fame - high stars, few reviews",
			Weight:  w.Groups.Rating,
			Formula: fmt.Sprintf("%.2f*(rating/5) + %.2f*max(0, 1 - ln(reviews+1)/ln(%g+1))",
				w.Rating.Quality, w.Rating.Obscurity, w.Ceilings.Reviews),
		},
	}

	return &schema.WeightsRenderModel{
		Title:       "Paraiba Hidden Gem Score",
		Description: "Score = weighted sum of normalized signal groups, scaled to 0-100",
		Formula:     formatWeights(w),
		Groups:      groups,
		Config:      w,
	}
}
