package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Streak label constants.
const (
	StrongValue = "Strong" // Long unbroken run
	SteadyValue = "Steady" // Established run
	FreshValue  = "Fresh"  // Run just started
	IdleValue   = "Idle"   // No active run
)

// Color variables for console output.
var (
	StrongColor = color.New(color.FgGreen, color.Bold)
	SteadyColor = color.New(color.FgCyan)
	FreshColor  = color.New(color.FgYellow)
	IdleColor   = color.New(color.FgRed)
)

// GetPlainLabel returns a plain text label grading the streak length.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(streak int) string {
	switch {
	case streak >= 8:
		return StrongValue
	case streak >= 3:
		return SteadyValue
	case streak >= 1:
		return FreshValue
	default:
		return IdleValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(streak int) string {
	text := GetPlainLabel(streak)

	switch text {
	case StrongValue:
		return StrongColor.Sprint(text)
	case SteadyValue:
		return SteadyColor.Sprint(text)
	case FreshValue:
		return FreshColor.Sprint(text)
	default: // "Idle"
		return IdleColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It returns os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateName truncates a habit name to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 to ensure there's space for both the "..." suffix and
// at least one character of content.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
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

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}
