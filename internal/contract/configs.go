package contract

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/projectparaiba/paraiba/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 2
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// WeightsRawInput holds custom weight overrides from the YAML config file.
// Use float64 pointers so that omitted keys keep their defaults.
type WeightsRawInput struct {
	Social    *float64 `mapstructure:"social"`
	Sentiment *float64 `mapstructure:"sentiment"`
	Rating    *float64 `mapstructure:"rating"`
	Quality   *float64 `mapstructure:"quality"`
	Obscurity *float64 `mapstructure:"obscurity"`
}

// CeilingsRawInput holds custom normalization ceilings from the YAML config file.
type CeilingsRawInput struct {
	Mentions *float64 `mapstructure:"mentions"`
	Upvotes  *float64 `mapstructure:"upvotes"`
	Reviews  *float64 `mapstructure:"reviews"`
}

// Config holds the runtime configuration for scoring.
// This struct remains the "final, validated" config.
type Config struct {
	InputPath   string
	ResultLimit int
	Workers     int
	Explain     bool
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	MetricsFile string
	Width       int // Terminal width override (0 = auto-detect)

	// Score holds the inputs of the single-candidate score command.
	Score     schema.ScoreInputs
	ScoreName string

	// Weights is the final weight config, computed from defaults + custom overrides.
	Weights schema.WeightConfig

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	OutputFile  string `mapstructure:"output-file"`
	Limit       int    `mapstructure:"limit"`
	Workers     int    `mapstructure:"workers"`
	Precision   int    `mapstructure:"precision"`
	Output      string `mapstructure:"output"`
	Width       int    `mapstructure:"width"`
	Color       string `mapstructure:"color"`
	MetricsFile string `mapstructure:"metrics-file"`

	// --- Fields from rankCmd.Flags() ---
	Explain bool `mapstructure:"explain"`

	// --- Fields from scoreCmd.Flags() ---
	Name      string  `mapstructure:"name"`
	Rating    float64 `mapstructure:"rating"`
	Reviews   int     `mapstructure:"reviews"`
	Mentions  int     `mapstructure:"mentions"`
	Upvotes   float64 `mapstructure:"upvotes"`
	Sentiment float64 `mapstructure:"sentiment"`

	// --- Custom weights and ceilings from config file ---
	Weights  WeightsRawInput  `mapstructure:"weights"`
	Ceilings CeilingsRawInput `mapstructure:"ceilings"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processScoreInputs(cfg, input); err != nil {
		return err
	}
	weights, err := ProcessWeights(input.Weights, input.Ceilings)
	if err != nil {
		return err
	}
	cfg.Weights = weights
	return nil
}

// validateSimpleInputs processes and validates all non-weight fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.InputPath = strings.TrimSpace(input.InputPathStr)
	cfg.OutputFile = input.OutputFile
	cfg.MetricsFile = input.MetricsFile
	cfg.Explain = input.Explain
	cfg.Width = input.Width

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 3. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	return nil
}

// processScoreInputs copies the single-candidate flags into the config.
// Range checks happen when the candidate is scored.
func processScoreInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.ScoreName = strings.TrimSpace(input.Name)
	cfg.Score = schema.ScoreInputs{
		GoogleRating:   input.Rating,
		GoogleReviews:  input.Reviews,
		RedditMentions: input.Mentions,
		AverageUpvotes: input.Upvotes,
		SentimentScore: input.Sentiment,
	}
	return nil
}

// ScoreSignalKeys are the flags the score command cannot default.
var ScoreSignalKeys = []string{"rating", "reviews", "mentions", "upvotes", "sentiment"}

// RequireScoreSignals fails with the flags among ScoreSignalKeys that isSet
// reports as never given.
func RequireScoreSignals(isSet func(key string) bool) error {
	var missing []string
	for _, key := range ScoreSignalKeys {
		if !isSet(key) {
			missing = append(missing, "--"+key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required score flags: %s", schema.ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}

// ProcessWeights applies the custom overrides on top of the default weight
// config and validates the result.
func ProcessWeights(weights WeightsRawInput, ceilings CeilingsRawInput) (schema.WeightConfig, error) {
	w := schema.DefaultWeightConfig()

	overrides := []struct {
		raw *float64
		dst *float64
	}{
		{weights.Social, &w.Groups.Social},
		{weights.Sentiment, &w.Groups.Sentiment},
		{weights.Rating, &w.Groups.Rating},
		{weights.Quality, &w.Rating.Quality},
		{weights.Obscurity, &w.Rating.Obscurity},
		{ceilings.Mentions, &w.Ceilings.Mentions},
		{ceilings.Upvotes, &w.Ceilings.Upvotes},
		{ceilings.Reviews, &w.Ceilings.Reviews},
	}
	for _, o := range overrides {
		if o.raw != nil {
			*o.dst = *o.raw
		}
	}

	if err := w.Validate(); err != nil {
		return schema.WeightConfig{}, fmt.Errorf("invalid weight configuration: %w", err)
	}
	return w, nil
}

// ProcessProfilingConfig sets up profiling configuration based on the provided prefix.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	profile.Prefix = strings.TrimSpace(profilePrefix)
	profile.Enabled = profile.Prefix != ""
	return nil
}
