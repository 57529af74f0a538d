package models

// SalaryRange is the salary block of a vacancy in a source-independent shape.
// A zero bound means the source did not disclose it.
type SalaryRange struct {
	Currency string  `json:"currency"`
	From     float64 `json:"from"`
	To       float64 `json:"to"`
}

// Vacancy represents a single job posting returned by one of the sources
type Vacancy struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Employer string       `json:"employer,omitempty"`
	URL      string       `json:"url,omitempty"`
	Salary   *SalaryRange `json:"salary,omitempty"`
}

// VacancySet holds everything fetched for one search term.
// Found is the total reported by the source and may differ from len(Records).
type VacancySet struct {
	Term    string    `json:"term"`
	Found   int       `json:"found"`
	Records []Vacancy `json:"records"`
}

// TermSummary represents the salary statistics for one search term
type TermSummary struct {
	Term               string `json:"term"`
	VacanciesFound     int    `json:"vacancies_found"`
	VacanciesProcessed int    `json:"vacancies_processed"`
	AverageSalary      int    `json:"average_salary"`
}

// Report is an ordered set of term summaries for a single source
type Report struct {
	Title string        `json:"title"`
	Rows  []TermSummary `json:"rows"`
}

// Get returns the summary for term, if the report has one
func (r Report) Get(term string) (TermSummary, bool) {
	for _, row := range r.Rows {
		if row.Term == term {
			return row, true
		}
	}
	return TermSummary{}, false
}

// Terms returns the report's terms in row order
func (r Report) Terms() []string {
	terms := make([]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		terms = append(terms, row.Term)
	}
	return terms
}

// Len returns the number of rows
func (r Report) Len() int {
	return len(r.Rows)
}
