package utils

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// Source identifiers accepted on the command line
const (
	SourceHeadHunter = "hh"
	SourceSuperJob   = "sj"
	SourceAll        = "all"
)

// FormatSalary formats a salary with thousands separators, e.g. 150000 -> "150,000"
func FormatSalary(salary int) string {
	if salary <= 0 {
		return "Not Available"
	}
	return humanize.Comma(int64(salary))
}

// FormatCount formats a vacancy count with thousands separators
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// IsValidSource checks if the source is supported
func IsValidSource(source string) bool {
	validSources := map[string]bool{
		SourceHeadHunter: true,
		SourceSuperJob:   true,
		SourceAll:        true,
	}
	return validSources[strings.ToLower(source)]
}

// ExpandSources turns a -source value into the ordered list of sources to run
func ExpandSources(source string) []string {
	switch strings.ToLower(source) {
	case SourceHeadHunter:
		return []string{SourceHeadHunter}
	case SourceSuperJob:
		return []string{SourceSuperJob}
	default:
		return []string{SourceHeadHunter, SourceSuperJob}
	}
}

// ParseTerms splits a comma separated list of search terms.
// Blank entries and repeats are dropped; the first occurrence keeps its place.
func ParseTerms(list string) []string {
	seen := make(map[string]struct{})
	var terms []string

	for _, part := range strings.Split(list, ",") {
		term := strings.TrimSpace(part)
		if term == "" {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}

	return terms
}
