package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSalary(t *testing.T) {
	assert.Equal(t, "150,000", FormatSalary(150000))
	assert.Equal(t, "999", FormatSalary(999))
	assert.Equal(t, "Not Available", FormatSalary(0))
}

func TestParseTerms(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Python, C++,Ruby", []string{"Python", "C++", "Ruby"}},
		{" Go ,, Go , Rust ", []string{"Go", "Rust"}},
		{"", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTerms(tt.in), tt.in)
	}
}

func TestSources(t *testing.T) {
	assert.True(t, IsValidSource("HH"))
	assert.True(t, IsValidSource("all"))
	assert.False(t, IsValidSource("linkedin"))

	assert.Equal(t, []string{SourceHeadHunter, SourceSuperJob}, ExpandSources(SourceAll))
	assert.Equal(t, []string{SourceSuperJob}, ExpandSources("sj"))
}
