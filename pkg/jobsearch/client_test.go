package jobsearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-resume-backend/internal/domain"
)

func TestSearch(t *testing.T) {
	t.Run("decodes results", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-id", r.URL.Query().Get("app_id"))
			assert.Equal(t, "Engineer Go", r.URL.Query().Get("what"))
			assert.Equal(t, "5", r.URL.Query().Get("results_per_page"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"results": [
				{"id": "1", "title": "Backend Engineer",
				 "company": {"display_name": "Acme"},
				 "location": {"display_name": "Remote"},
				 "redirect_url": "https://example.com/1",
				 "salary_min": 90000, "salary_max": 120000}
			]}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "test-id", "test-key")
		postings, err := c.Search(context.Background(), domain.JobQuery{
			Title:  "Engineer",
			Skills: []string{"Go"},
			Limit:  5,
		})
		require.NoError(t, err)
		require.Len(t, postings, 1)
		assert.Equal(t, "Backend Engineer", postings[0].Title)
		assert.Equal(t, "Acme", postings[0].Company)
		assert.Equal(t, float64(90000), postings[0].SalaryMin)
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "id", "key")
		_, err := c.Search(context.Background(), domain.JobQuery{Title: "Engineer"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 403")
	})

	t.Run("limit is clamped", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "50", r.URL.Query().Get("results_per_page"))
			_, _ = w.Write([]byte(`{"results": []}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "id", "key")
		_, err := c.Search(context.Background(), domain.JobQuery{Title: "Engineer", Limit: 500})
		require.NoError(t, err)
	})
}
