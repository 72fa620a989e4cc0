package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/habitctl/internal/contract"
	"github.com/huangsam/habitctl/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSummaries() []schema.HabitSummary {
	return []schema.HabitSummary{
		{
			Name:          "Exercise",
			Periodicity:   schema.DailyPeriod,
			Streak:        5,
			Completions:   12,
			LastCompleted: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			Name:        "Call Family",
			Periodicity: schema.WeeklyPeriod,
			Streak:      0,
			Completions: 0,
		},
	}
}

func TestWriteHabitJSONResults(t *testing.T) {
	var buf bytes.Buffer
	err := writeHabitJSONResults(&buf, sampleSummaries())
	require.NoError(t, err)

	// Parse the JSON to verify structure
	var result []map[string]any
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, float64(1), result[0]["position"])
	assert.Equal(t, "Exercise", result[0]["name"])
	assert.Equal(t, "daily", result[0]["periodicity"])
	assert.Equal(t, float64(5), result[0]["streak"])
	assert.Equal(t, "Steady", result[0]["label"])

	assert.Equal(t, float64(2), result[1]["position"])
	assert.Equal(t, "Idle", result[1]["label"])
}

func TestWriteHabitCSVResults(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeHabitCSVResults(w, sampleSummaries())
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3) // header + 2 rows

	// Check header
	assert.Contains(t, lines[0], "position")
	assert.Contains(t, lines[0], "name")
	assert.Contains(t, lines[0], "streak")

	// Check data rows
	assert.Contains(t, lines[1], "Exercise")
	assert.Contains(t, lines[1], "daily")
	assert.Contains(t, lines[1], "2024-01-15T09:00:00Z")
	assert.Contains(t, lines[2], "Call Family")
	assert.Contains(t, lines[2], "Idle")
}

func TestWriteHabitCSVResultsEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeHabitCSVResults(w, nil)
	require.NoError(t, err)
	w.Flush()

	// Should only have header
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "position")
}

func TestWriteHabitTable(t *testing.T) {
	cfg := &contract.Config{Output: schema.TextOut, Width: 100}

	var buf bytes.Buffer
	err := writeHabitTable(sampleSummaries(), cfg, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Exercise")
	assert.Contains(t, out, "Call Family")
	assert.Contains(t, out, "never")
	assert.Contains(t, out, "Showing 2 habits (total completions: 12, combined streak: 5)")
}

func TestWriteLongestToFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "longest.txt")
	cfg := &contract.Config{Output: schema.TextOut, OutputFile: outPath}

	// Capture stderr to check the file-written notice.
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	defer func() { os.Stderr = oldStderr }()

	require.NoError(t, WriteLongest(sampleSummaries()[0], cfg))
	require.NoError(t, w.Close())
	os.Stderr = oldStderr

	notice, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Contains(t, string(notice), "Wrote longest")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Longest streak: Exercise (daily) with 5")
}

func TestGetMaxTableNameWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"narrow terminal clamps to minimum", 40, 10},
		{"wide terminal clamps to maximum", 200, 40},
		{"mid-size terminal uses available space", 80, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.want, GetMaxTableNameWidth(cfg))
		})
	}
}
