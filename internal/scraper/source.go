// Package scraper fetches vacancy listings from the recruitment APIs.
//
// Every source walks its pages one request at a time and stops the whole run
// on the first failed request: a non-2xx status, a transport error or an
// undecodable body is returned to the caller and nothing fetched so far is
// kept. Retries only happen when the HTTP client is built with a retry count.
package scraper

import (
	"context"
	"errors"
	"fmt"

	"github.com/fr4nk3nst1ner/vacancysleuth/internal/models"
)

// ErrDecode is wrapped into errors for response bodies that are not valid JSON
var ErrDecode = errors.New("decode response")

// Source is a paginated vacancy API
type Source interface {
	// Name is the short identifier, e.g. "hh"
	Name() string
	// Title is used as the report heading
	Title() string
	// Currency is the marker of the local currency in this source's records
	Currency() string
	// FetchTerm downloads every page for term. A nil set means the term was skipped.
	FetchTerm(ctx context.Context, term string) (*models.VacancySet, error)
}

// Progress receives per-page notifications while a term is downloaded
type Progress interface {
	StartTerm(term string, pages int)
	PageDone(term string, page, pages int)
	FinishTerm(term string)
}

// NopProgress discards progress notifications
type NopProgress struct{}

func (NopProgress) StartTerm(string, int)     {}
func (NopProgress) PageDone(string, int, int) {}
func (NopProgress) FinishTerm(string)         {}

// Collect fetches all terms from src in order. Skipped terms are left out.
func Collect(ctx context.Context, src Source, terms []string) ([]models.VacancySet, error) {
	sets := make([]models.VacancySet, 0, len(terms))

	for _, term := range terms {
		set, err := src.FetchTerm(ctx, term)
		if err != nil {
			return nil, fmt.Errorf("%s: fetch %q: %w", src.Name(), term, err)
		}
		if set == nil {
			continue
		}
		sets = append(sets, *set)
	}

	return sets, nil
}
