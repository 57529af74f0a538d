package utils

import (
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/models"
)

// One-sided ranges are widened toward the undisclosed bound
const (
	lowerBoundFactor = 1.2
	upperBoundFactor = 0.8
)

// PredictSalary estimates a single salary figure for a vacancy.
// It reports false when the vacancy has no salary, is paid in a currency
// other than currency, or discloses neither bound.
func PredictSalary(v models.Vacancy, currency string) (float64, bool) {
	if v.Salary == nil || v.Salary.Currency != currency {
		return 0, false
	}
	return estimate(v.Salary.From, v.Salary.To)
}

func estimate(from, to float64) (float64, bool) {
	switch {
	case from != 0 && to != 0:
		return (from + to) / 2, true
	case from != 0:
		return from * lowerBoundFactor, true
	case to != 0:
		return to * upperBoundFactor, true
	default:
		return 0, false
	}
}
