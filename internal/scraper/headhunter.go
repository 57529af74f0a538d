package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/vacancysleuth/internal/client"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/models"
)

const (
	headHunterName     = "hh"
	headHunterCurrency = "RUR"
)

// HeadHunterConfig holds the api.hh.ru query settings
type HeadHunterConfig struct {
	URL      string
	Title    string
	RoleID   int
	AreaID   int
	PerPage  int
	MinFound int // terms with found <= MinFound are skipped
}

// hhPage represents one page of the HeadHunter vacancies API
type hhPage struct {
	Found   int         `json:"found"`
	Pages   int         `json:"pages"`
	Page    int         `json:"page"`
	PerPage int         `json:"per_page"`
	Items   []hhVacancy `json:"items"`
}

// hhVacancy represents a vacancy from HeadHunter. Salary is null when not disclosed.
type hhVacancy struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	AlternateURL string `json:"alternate_url"`
	Employer     struct {
		Name string `json:"name"`
	} `json:"employer"`
	Salary *struct {
		From     *float64 `json:"from"`
		To       *float64 `json:"to"`
		Currency string   `json:"currency"`
		Gross    *bool    `json:"gross"`
	} `json:"salary"`
}

func (v hhVacancy) toVacancy() models.Vacancy {
	out := models.Vacancy{
		ID:       v.ID,
		Title:    v.Name,
		Employer: v.Employer.Name,
		URL:      v.AlternateURL,
	}
	if v.Salary != nil {
		out.Salary = &models.SalaryRange{
			Currency: v.Salary.Currency,
			From:     deref(v.Salary.From),
			To:       deref(v.Salary.To),
		}
	}
	return out
}

// HeadHunter fetches vacancies from api.hh.ru
type HeadHunter struct {
	client   *resty.Client
	config   HeadHunterConfig
	progress Progress
	logger   *pterm.Logger
}

// NewHeadHunter creates a HeadHunter source. progress and logger may be nil.
func NewHeadHunter(c *resty.Client, cfg HeadHunterConfig, progress Progress, logger *pterm.Logger) *HeadHunter {
	if progress == nil {
		progress = NopProgress{}
	}
	if logger == nil {
		logger = pterm.DefaultLogger.WithWriter(io.Discard)
	}
	return &HeadHunter{client: c, config: cfg, progress: progress, logger: logger}
}

func (h *HeadHunter) Name() string     { return headHunterName }
func (h *HeadHunter) Title() string    { return h.config.Title }
func (h *HeadHunter) Currency() string { return headHunterCurrency }

// FetchTerm probes page 0 and, if the term has more than MinFound vacancies,
// downloads the remaining pages. The probe doubles as page 0.
func (h *HeadHunter) FetchTerm(ctx context.Context, term string) (*models.VacancySet, error) {
	first, err := h.fetchPage(ctx, term, 0)
	if err != nil {
		return nil, err
	}

	if first.Found <= h.config.MinFound {
		h.logger.Debug("skipping term", h.logger.Args("source", headHunterName, "term", term, "found", first.Found))
		return nil, nil
	}

	pages := first.Pages
	h.logger.Info("downloading term", h.logger.Args("source", headHunterName, "term", term, "found", first.Found, "pages", pages))
	h.progress.StartTerm(term, pages)
	defer h.progress.FinishTerm(term)

	set := &models.VacancySet{
		Term:    term,
		Found:   first.Found,
		Records: make([]models.Vacancy, 0, len(first.Items)*pages),
	}
	set.Records = appendHH(set.Records, first.Items)
	h.progress.PageDone(term, 1, pages)

	for page := 1; page < pages; page++ {
		p, err := h.fetchPage(ctx, term, page)
		if err != nil {
			return nil, err
		}
		set.Records = appendHH(set.Records, p.Items)
		h.progress.PageDone(term, page+1, pages)
	}

	return set, nil
}

func (h *HeadHunter) fetchPage(ctx context.Context, term string, page int) (*hhPage, error) {
	h.logger.Debug("requesting page", h.logger.Args("source", headHunterName, "term", term, "page", page))

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"text":              term,
			"professional_role": strconv.Itoa(h.config.RoleID),
			"area":              strconv.Itoa(h.config.AreaID),
			"per_page":          strconv.Itoa(h.config.PerPage),
			"page":              strconv.Itoa(page),
		}).
		Get(h.config.URL)
	if err != nil {
		return nil, fmt.Errorf("request page %d: %w", page, err)
	}
	if err := client.CheckResponse(resp); err != nil {
		return nil, err
	}

	var p hhPage
	if err := json.Unmarshal(resp.Body(), &p); err != nil {
		return nil, fmt.Errorf("%w: page %d: %v", ErrDecode, page, err)
	}
	return &p, nil
}

func appendHH(dst []models.Vacancy, items []hhVacancy) []models.Vacancy {
	for _, item := range items {
		dst = append(dst, item.toVacancy())
	}
	return dst
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
