package utils

import (
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/models"
)

// SummarizeTerm reduces one term's vacancies to a summary row.
// It reports false when none of the vacancies produced an estimate.
func SummarizeTerm(set models.VacancySet, currency string) (models.TermSummary, bool) {
	var sum float64
	processed := 0

	for _, v := range set.Records {
		salary, ok := PredictSalary(v, currency)
		if !ok {
			continue
		}
		sum += salary
		processed++
	}

	if processed == 0 {
		return models.TermSummary{}, false
	}

	return models.TermSummary{
		Term:               set.Term,
		VacanciesFound:     set.Found,
		VacanciesProcessed: processed,
		AverageSalary:      int(sum / float64(processed)),
	}, true
}

// Summarize builds a report from the sets of one source, keeping their order.
// Terms without a single estimate are left out.
func Summarize(title string, sets []models.VacancySet, currency string) models.Report {
	report := models.Report{
		Title: title,
		Rows:  make([]models.TermSummary, 0, len(sets)),
	}

	for _, set := range sets {
		if summary, ok := SummarizeTerm(set, currency); ok {
			report.Rows = append(report.Rows, summary)
		}
	}

	return report
}
