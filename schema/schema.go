// Package schema has the models, weights and error kinds shared by all parts of paraiba.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"math"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// maxExactInt bounds integers that survive a float64 round trip.
const maxExactInt = 1 << 53

// Candidate is a single place of interest. The five scoring inputs are typed
// and nil when absent; every other attribute is kept verbatim in Extra.
type Candidate struct {
	GoogleRating   *float64 `json:"googleRating" validate:"required"`
	GoogleReviews  *int     `json:"googleReviews" validate:"required"`
	RedditMentions *int     `json:"redditMentions" validate:"required"`
	AverageUpvotes *float64 `json:"averageUpvotes" validate:"required"`
	SentimentScore *float64 `json:"sentimentScore" validate:"required"`

	// Extra holds opaque attributes, including required keys whose value had
	// an unusable type.
	Extra map[string]any `json:"-"`
}

// ScoreInputs are the validated raw signals for one candidate.
type ScoreInputs struct {
	GoogleRating   float64 `json:"googleRating"`
	GoogleReviews  int     `json:"googleReviews"`
	RedditMentions int     `json:"redditMentions"`
	AverageUpvotes float64 `json:"averageUpvotes"`
	SentimentScore float64 `json:"sentimentScore"`
}

// NewCandidate builds a Candidate from a loosely typed attribute map.
func NewCandidate(attrs map[string]any) Candidate {
	c := Candidate{Extra: make(map[string]any)}
	for k, v := range attrs {
		if !c.setRequired(k, v) {
			c.Extra[k] = v
		}
	}
	return c
}

// CandidateFromInputs wraps validated inputs, plus an optional name, as a Candidate.
func CandidateFromInputs(name string, in ScoreInputs) Candidate {
	c := Candidate{
		GoogleRating:   &in.GoogleRating,
		GoogleReviews:  &in.GoogleReviews,
		RedditMentions: &in.RedditMentions,
		AverageUpvotes: &in.AverageUpvotes,
		SentimentScore: &in.SentimentScore,
		Extra:          make(map[string]any),
	}
	if name != "" {
		c.Extra[FieldName] = name
	}
	return c
}

// setRequired assigns a required attribute and reports whether k was one
// with a usable value.
func (c *Candidate) setRequired(k string, v any) bool {
	switch k {
	case FieldGoogleRating:
		f, ok := toFloat(v)
		if ok {
			c.GoogleRating = &f
		}
		return ok
	case FieldAverageUpvotes:
		f, ok := toFloat(v)
		if ok {
			c.AverageUpvotes = &f
		}
		return ok
	case FieldSentimentScore:
		f, ok := toFloat(v)
		if ok {
			c.SentimentScore = &f
		}
		return ok
	case FieldGoogleReviews:
		n, ok := toInt(v)
		if ok {
			c.GoogleReviews = &n
		}
		return ok
	case FieldRedditMentions:
		n, ok := toInt(v)
		if ok {
			c.RedditMentions = &n
		}
		return ok
	default:
		return false
	}
}

// Name returns the display name attribute, or an empty string.
func (c Candidate) Name() string {
	if s, ok := c.Extra[FieldName].(string); ok {
		return s
	}
	return ""
}

// Attributes returns the candidate as a flat attribute map.
func (c Candidate) Attributes() map[string]any {
	attrs := make(map[string]any, len(c.Extra)+len(RequiredFields))
	maps.Copy(attrs, c.Extra)
	if c.GoogleRating != nil {
		attrs[FieldGoogleRating] = *c.GoogleRating
	}
	if c.GoogleReviews != nil {
		attrs[FieldGoogleReviews] = *c.GoogleReviews
	}
	if c.RedditMentions != nil {
		attrs[FieldRedditMentions] = *c.RedditMentions
	}
	if c.AverageUpvotes != nil {
		attrs[FieldAverageUpvotes] = *c.AverageUpvotes
	}
	if c.SentimentScore != nil {
		attrs[FieldSentimentScore] = *c.SentimentScore
	}
	return attrs
}

// Validate reports the first required field that is missing or unusable.
func (c Candidate) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := verrs[0].Field()
		if raw, ok := c.Extra[field]; ok {
			return fmt.Errorf("%w: required field %q has unusable value %v", ErrInvalidInput, field, raw)
		}
		return fmt.Errorf("%w: missing required field %q", ErrInvalidInput, field)
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

// Inputs validates the candidate and returns its scoring inputs.
func (c Candidate) Inputs() (ScoreInputs, error) {
	if err := c.Validate(); err != nil {
		return ScoreInputs{}, err
	}
	return ScoreInputs{
		GoogleRating:   *c.GoogleRating,
		GoogleReviews:  *c.GoogleReviews,
		RedditMentions: *c.RedditMentions,
		AverageUpvotes: *c.AverageUpvotes,
		SentimentScore: *c.SentimentScore,
	}, nil
}

// MarshalJSON encodes the candidate as a flat object.
func (c Candidate) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Attributes())
}

// UnmarshalJSON decodes a flat object. Numbers keep full precision until
// they are assigned.
func (c *Candidate) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var attrs map[string]any
	if err := dec.Decode(&attrs); err != nil {
		return err
	}
	*c = NewCandidate(attrs)
	return nil
}

// UnmarshalYAML decodes a YAML mapping.
func (c *Candidate) UnmarshalYAML(value *yaml.Node) error {
	var attrs map[string]any
	if err := value.Decode(&attrs); err != nil {
		return err
	}
	*c = NewCandidate(attrs)
	return nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// toInt accepts integers and integral floats such as 3043.0.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case int32:
		return int(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
	}
	f, ok := toFloat(v)
	if !ok || f != math.Trunc(f) || math.Abs(f) > maxExactInt {
		return 0, false
	}
	return int(f), true
}
