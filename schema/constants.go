package schema

// Custom string types for type safety.
type (
	// BreakdownKey represents keys used in scoring breakdowns.
	BreakdownKey string

	// OutputMode represents the format of the output.
	OutputMode string
)

// Breakdown keys used in the scoring logic, one per signal group.
const (
	BreakdownSocial    BreakdownKey = "social"    // mention + upvote activity
	BreakdownSentiment BreakdownKey = "sentiment" // pre-computed sentiment
	BreakdownRating    BreakdownKey = "rating"    // rating quality + obscurity
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// Required candidate attribute names.
const (
	FieldGoogleRating   = "googleRating"
	FieldGoogleReviews  = "googleReviews"
	FieldRedditMentions = "redditMentions"
	FieldAverageUpvotes = "averageUpvotes"
	FieldSentimentScore = "sentimentScore"

	// FieldName is optional, but used for display when present.
	FieldName = "name"
)

// AllBreakdownKeys lists the signal groups in summation order.
var AllBreakdownKeys = []BreakdownKey{BreakdownSocial, BreakdownSentiment, BreakdownRating}

// RequiredFields lists the attributes a candidate must carry to be scored.
var RequiredFields = []string{
	FieldGoogleRating,
	FieldGoogleReviews,
	FieldRedditMentions,
	FieldAverageUpvotes,
	FieldSentimentScore,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}
