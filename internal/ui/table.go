package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/vacancysleuth/internal/models"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/utils"
)

// Column headers of the summary table, in display order
var reportHeader = []string{"Language", "Vacancies found", "Vacancies processed", "Average salary"}

// ReportData converts a report into table rows, header first
func ReportData(report models.Report) pterm.TableData {
	data := pterm.TableData{reportHeader}
	for _, row := range report.Rows {
		data = append(data, []string{
			row.Term,
			utils.FormatCount(row.VacanciesFound),
			utils.FormatCount(row.VacanciesProcessed),
			ColorizeSalary(row.AverageSalary, utils.FormatSalary(row.AverageSalary)),
		})
	}
	return data
}

// RenderReport renders the report as a table boxed under its title
func RenderReport(report models.Report) (string, error) {
	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithRightAlignment().
		WithData(ReportData(report)).
		Srender()
	if err != nil {
		return "", fmt.Errorf("render %s table: %w", report.Title, err)
	}

	return pterm.DefaultBox.
		WithTitle(pterm.Bold.Sprint(report.Title)).
		WithTitleTopLeft().
		Sprint(table), nil
}

// PrintReport writes the rendered report to w
func PrintReport(w io.Writer, report models.Report) error {
	out, err := RenderReport(report)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
