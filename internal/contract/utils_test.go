package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		streak int
		want   string
	}{
		{0, IdleValue},
		{1, FreshValue},
		{2, FreshValue},
		{3, SteadyValue},
		{7, SteadyValue},
		{8, StrongValue},
		{100, StrongValue},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GetPlainLabel(tt.streak), "streak %d", tt.streak)
	}
}

func TestGetColorLabelContainsPlainText(t *testing.T) {
	for _, streak := range []int{0, 1, 3, 8} {
		assert.Contains(t, GetColorLabel(streak), GetPlainLabel(streak))
	}
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"short name untouched", "Exercise", 20, "Exercise"},
		{"exact width untouched", "Exercise", 8, "Exercise"},
		{"long name truncated", "A very long habit name", 10, "A very ..."},
		{"tiny width untouched", "Exercise", 3, "Exercise"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateName(tt.input, tt.maxWidth))
		})
	}
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "1"} {
		got, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, got, s)
	}
	for _, s := range []string{"no", "No", "false", "0"} {
		got, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, got, s)
	}

	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}
