package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianSurii/optimus-lead-management-dashboard/internal/analytics"
	"github.com/ianSurii/optimus-lead-management-dashboard/internal/middleware"
)

func TestDashboardHandler_GetDashboard(t *testing.T) {
	router := setupRouter(t, "")

	t.Run("happy: default window", func(t *testing.T) {
		w := get(router, "/api/v1/dashboard")
		require.Equal(t, http.StatusOK, w.Code)

		var res analytics.DashboardResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, 5, res.Summary.TotalRecords)
		assert.Equal(t, "2024-01-01", res.Summary.DateRange.From)
		assert.Len(t, res.KPIMetrics, 4)
		assert.Len(t, res.LeadVsConversion.Labels, 7)
		assert.Len(t, res.Filters.AvailableBranches, 3)
		assert.Equal(t, analytics.Positions{BranchRanking: 1, CountryRanking: 1}, res.Rankings)
	})

	t.Run("frontend keys are present", func(t *testing.T) {
		w := get(router, "/api/v1/dashboard")
		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
		for _, key := range []string{
			"filters", "kpi_metrics", "lead_vs_conversion", "revenue_vs_target", "branch_agent_rankings",
			"country_rankings", "agent_performance_released", "top_performing_agents", "transaction_list",
			"charts", "agent_performance", "branch_performance", "country_ranking", "recommendations",
			"rankings", "summary",
		} {
			assert.Contains(t, raw, key)
		}
	})

	t.Run("filters are echoed", func(t *testing.T) {
		w := get(router, "/api/v1/dashboard?branch_id=B2&unknown=1")
		require.Equal(t, http.StatusOK, w.Code)

		var res analytics.DashboardResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, map[string]string{"branch_id": "B2"}, res.Filters.Applied)
		assert.Equal(t, 2, res.Summary.TotalRecords)
	})

	t.Run("identical requests give identical bodies", func(t *testing.T) {
		a := get(router, "/api/v1/dashboard?date=2024-01-31")
		b := get(router, "/api/v1/dashboard?date=2024-01-31")
		assert.Equal(t, a.Body.String(), b.Body.String())
	})
}

func TestDashboardHandler_Errors(t *testing.T) {
	router := setupRouter(t, "")

	cases := []struct {
		name string
		url  string
	}{
		{"inverted range", "/api/v1/dashboard?date_from=2024-02-01&date_to=2024-01-01"},
		{"date with range", "/api/v1/dashboard?date=2024-01-31&date_to=2024-01-31"},
		{"malformed date", "/api/v1/dashboard?date=31-01-2024"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := get(router, tc.url)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp middleware.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "INVALID_WINDOW", resp.Code)
		})
	}

	t.Run("missing data file is 503", func(t *testing.T) {
		router := setupRouter(t, "/nonexistent/dashboard.json")
		w := get(router, "/api/v1/dashboard")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var resp middleware.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "DATA_UNAVAILABLE", resp.Code)
	})
}

func TestDashboardHandler_HostileInput(t *testing.T) {
	router := setupRouter(t, "")

	urls := []string{
		"/api/v1/dashboard?branch_id=B1'%3B+DROP+TABLE+transactions%3B+--",
		"/api/v1/dashboard?country=%00%00",
		"/api/v1/dashboard?status=,,,,",
		"/api/v1/transactions?page=-5&page_size=999999",
		"/api/v1/transactions?page=abc",
	}
	for _, u := range urls {
		w := get(router, u)
		assert.Equal(t, http.StatusOK, w.Code, u)
	}
}
