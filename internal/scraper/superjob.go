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
	superJobName     = "sj"
	superJobCurrency = "rub"
	superJobKeyHdr   = "X-Api-App-Id"
)

// SuperJobConfig holds the api.superjob.ru query settings
type SuperJobConfig struct {
	URL         string
	Title       string
	Token       string
	CatalogueID int
	TownID      int
	PerPage     int
}

// sjPage represents one page of the SuperJob vacancies API
type sjPage struct {
	Total   int         `json:"total"`
	More    bool        `json:"more"`
	Objects []sjVacancy `json:"objects"`
}

// sjVacancy represents a vacancy from SuperJob. Zero payments mean "not disclosed".
type sjVacancy struct {
	ID          int      `json:"id"`
	Profession  string   `json:"profession"`
	FirmName    string   `json:"firm_name"`
	Link        string   `json:"link"`
	Currency    string   `json:"currency"`
	PaymentFrom *float64 `json:"payment_from"`
	PaymentTo   *float64 `json:"payment_to"`
}

func (v sjVacancy) toVacancy() models.Vacancy {
	return models.Vacancy{
		ID:       strconv.Itoa(v.ID),
		Title:    v.Profession,
		Employer: v.FirmName,
		URL:      v.Link,
		Salary: &models.SalaryRange{
			Currency: v.Currency,
			From:     deref(v.PaymentFrom),
			To:       deref(v.PaymentTo),
		},
	}
}

// SuperJob fetches vacancies from api.superjob.ru
type SuperJob struct {
	client   *resty.Client
	config   SuperJobConfig
	progress Progress
	logger   *pterm.Logger
}

// NewSuperJob creates a SuperJob source. progress and logger may be nil.
func NewSuperJob(c *resty.Client, cfg SuperJobConfig, progress Progress, logger *pterm.Logger) *SuperJob {
	if progress == nil {
		progress = NopProgress{}
	}
	if logger == nil {
		logger = pterm.DefaultLogger.WithWriter(io.Discard)
	}
	return &SuperJob{client: c, config: cfg, progress: progress, logger: logger}
}

func (s *SuperJob) Name() string     { return superJobName }
func (s *SuperJob) Title() string    { return s.config.Title }
func (s *SuperJob) Currency() string { return superJobCurrency }

// FetchTerm probes page 0 and keeps requesting pages while the API says
// there are more. The page count derived from total only feeds progress.
func (s *SuperJob) FetchTerm(ctx context.Context, term string) (*models.VacancySet, error) {
	first, err := s.fetchPage(ctx, term, 0)
	if err != nil {
		return nil, err
	}

	if first.Total <= 0 {
		s.logger.Debug("skipping term", s.logger.Args("source", superJobName, "term", term))
		return nil, nil
	}

	pages := estimatePages(first.Total, s.config.PerPage)
	s.logger.Info("downloading term", s.logger.Args("source", superJobName, "term", term, "found", first.Total, "pages", pages))
	s.progress.StartTerm(term, pages)
	defer s.progress.FinishTerm(term)

	set := &models.VacancySet{
		Term:    term,
		Found:   first.Total,
		Records: make([]models.Vacancy, 0, len(first.Objects)*pages),
	}
	set.Records = appendSJ(set.Records, first.Objects)
	s.progress.PageDone(term, 1, pages)

	more := first.More
	for page := 1; more; page++ {
		p, err := s.fetchPage(ctx, term, page)
		if err != nil {
			return nil, err
		}
		set.Records = appendSJ(set.Records, p.Objects)
		s.progress.PageDone(term, page+1, pages)
		more = p.More
	}

	return set, nil
}

func (s *SuperJob) fetchPage(ctx context.Context, term string, page int) (*sjPage, error) {
	s.logger.Debug("requesting page", s.logger.Args("source", superJobName, "term", term, "page", page))

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader(superJobKeyHdr, s.config.Token).
		SetQueryParams(map[string]string{
			"keyword":    term,
			"catalogues": strconv.Itoa(s.config.CatalogueID),
			"town":       strconv.Itoa(s.config.TownID),
			"count":      strconv.Itoa(s.config.PerPage),
			"page":       strconv.Itoa(page),
		}).
		Get(s.config.URL)
	if err != nil {
		return nil, fmt.Errorf("request page %d: %w", page, err)
	}
	if err := client.CheckResponse(resp); err != nil {
		return nil, err
	}

	var p sjPage
	if err := json.Unmarshal(resp.Body(), &p); err != nil {
		return nil, fmt.Errorf("%w: page %d: %v", ErrDecode, page, err)
	}
	return &p, nil
}

// estimatePages is ceil(total / perPage)
func estimatePages(total, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}

func appendSJ(dst []models.Vacancy, items []sjVacancy) []models.Vacancy {
	for _, item := range items {
		dst = append(dst, item.toVacancy())
	}
	return dst
}
