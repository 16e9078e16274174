package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/projectparaiba/paraiba/schema"
)

// Color variables for console output.
var (
	GemColor       = color.New(color.FgGreen, color.Bold) // GemColor marks the hidden gems.
	PromisingColor = color.New(color.FgCyan, color.Bold)  // PromisingColor marks strong candidates.
	AverageColor   = color.New(color.FgYellow)            // AverageColor is standard caution, not bold.
	LowColor       = color.New(color.FgWhite)             // LowColor is informational.
	ErrorColor     = color.New(color.FgRed, color.Bold)   // ErrorColor marks candidates that failed to score.
)

// GetColorLabel returns a colored text label for console output (table).
// It uses schema.ResultLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(result schema.ScoreResult) string {
	text := schema.ResultLabel(result)

	switch text {
	case schema.GemLabel:
		return GemColor.Sprint(text)
	case schema.PromisingLabel:
		return PromisingColor.Sprint(text)
	case schema.AverageLabel:
		return AverageColor.Sprint(text)
	case schema.ErrorLabel:
		return ErrorColor.Sprint(text)
	default: // "Low"
		return LowColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncateName truncates a display name to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 to leave room for the "..." and at least one character.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// DisplayName returns the candidate's name, or a positional placeholder when it has none.
func DisplayName(c schema.Candidate, index int) string {
	if name := c.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("#%d", index+1)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
