package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/vacancysleuth/internal/client"
)

func newSJ(url string, progress Progress) *SuperJob {
	return NewSuperJob(client.New(client.Options{Timeout: 2 * time.Second}), SuperJobConfig{
		URL:         url,
		Title:       "SuperJob Moscow",
		Token:       "v3.r.test-token",
		CatalogueID: 48,
		TownID:      4,
		PerPage:     100,
	}, progress, nil)
}

func sjObject(id int, currency string, from, to any) map[string]any {
	return map[string]any{
		"id":           id,
		"profession":   "Developer",
		"firm_name":    "Acme",
		"currency":     currency,
		"payment_from": from,
		"payment_to":   to,
	}
}

func TestSuperJobFollowsMoreFlag(t *testing.T) {
	log := newPageLog()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "v3.r.test-token", r.Header.Get("X-Api-App-Id"))
		assert.Equal(t, "48", q.Get("catalogues"))
		assert.Equal(t, "4", q.Get("town"))
		assert.Equal(t, "100", q.Get("count"))

		page, _ := strconv.Atoi(q.Get("page"))
		log.add(q.Get("keyword"), page)

		// total says one page; the more flag keeps going until page 2
		writeJSON(t, w, map[string]any{
			"total":   1,
			"more":    page < 2,
			"objects": []map[string]any{sjObject(page, "rub", 100000, 0)},
		})
	}))
	defer srv.Close()

	progress := &recordingProgress{}
	set, err := newSJ(srv.URL, progress).FetchTerm(context.Background(), "Python")
	require.NoError(t, err)
	require.NotNil(t, set)

	assert.Equal(t, []int{0, 1, 2}, log.get("Python"))
	assert.Equal(t, 1, set.Found)
	assert.Len(t, set.Records, 3)

	assert.Equal(t, 1, progress.started["Python"], "estimated pages come from total")
	assert.Equal(t, []int{1, 2, 3}, progress.done)
}

func TestSuperJobSinglePage(t *testing.T) {
	log := newPageLog()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		log.add(r.URL.Query().Get("keyword"), page)
		writeJSON(t, w, map[string]any{
			"total":   250,
			"more":    false,
			"objects": []map[string]any{sjObject(7, "rub", 0, 100000)},
		})
	}))
	defer srv.Close()

	set, err := newSJ(srv.URL, nil).FetchTerm(context.Background(), "Go")
	require.NoError(t, err)
	assert.Equal(t, []int{0}, log.get("Go"))

	require.Len(t, set.Records, 1)
	rec := set.Records[0]
	assert.Equal(t, "7", rec.ID)
	require.NotNil(t, rec.Salary)
	assert.Equal(t, "rub", rec.Salary.Currency)
	assert.Equal(t, 0.0, rec.Salary.From)
	assert.Equal(t, 100000.0, rec.Salary.To)
}

func TestSuperJobSkipsEmptyTerms(t *testing.T) {
	log := newPageLog()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.add(r.URL.Query().Get("keyword"), 0)
		writeJSON(t, w, map[string]any{"total": 0, "more": false, "objects": []any{}})
	}))
	defer srv.Close()

	set, err := newSJ(srv.URL, nil).FetchTerm(context.Background(), "Delphi")
	require.NoError(t, err)
	assert.Nil(t, set)
	assert.Len(t, log.get("Delphi"), 1)
}

func TestSuperJobUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newSJ(srv.URL, nil).FetchTerm(context.Background(), "Go")
	var statusErr *client.StatusError
	assert.ErrorAs(t, err, &statusErr)
}

func TestEstimatePages(t *testing.T) {
	assert.Equal(t, 3, estimatePages(250, 100))
	assert.Equal(t, 1, estimatePages(100, 100))
	assert.Equal(t, 1, estimatePages(1, 100))
	assert.Equal(t, 1, estimatePages(5, 0))
}
