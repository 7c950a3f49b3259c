package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/ianSurii/optimus-lead-management-dashboard/internal/analytics"
	"github.com/ianSurii/optimus-lead-management-dashboard/internal/middleware"
	"github.com/ianSurii/optimus-lead-management-dashboard/internal/repository"
	"github.com/ianSurii/optimus-lead-management-dashboard/internal/service"
)

const testDoc = `{
  "transactions": [
    {"txn_id": "T1", "branch_id": "B1", "user_id": "U1", "product_id": "P1", "campaign_id": "C1", "segment_id": "S1", "customer_name": "Achieng", "amount": 100, "status": "Closed", "date": "2024-01-25", "closed_date": "2024-01-27"},
    {"txn_id": "T2", "branch_id": "B1", "user_id": "U1", "product_id": "P1", "campaign_id": "C1", "segment_id": "S1", "customer_name": "Baraka", "amount": 50, "status": "Open", "date": "2024-01-26"},
    {"txn_id": "T3", "branch_id": "B2", "user_id": "U2", "product_id": "P1", "campaign_id": "C1", "segment_id": "S1", "customer_name": "Chebet", "amount": 300, "status": "Product/Service Sold", "date": "2024-01-28", "closed_date": "2024-01-29"},
    {"txn_id": "T4", "branch_id": "B2", "user_id": "U2", "product_id": "P1", "campaign_id": "C1", "segment_id": "S1", "customer_name": "Dalmas", "amount": 80, "status": "To Callback Later", "date": "2024-01-30"},
    {"txn_id": "T5", "branch_id": "B3", "user_id": "U3", "product_id": "P1", "campaign_id": "C1", "segment_id": "S1", "customer_name": "Esther", "amount": 200, "status": "Rejected", "date": "2024-01-31"},
    {"txn_id": "T6", "branch_id": "B1", "user_id": "U1", "product_id": "P1", "campaign_id": "C1", "segment_id": "S1", "customer_name": "Faith", "amount": 40, "status": "Closed", "date": "2023-12-20", "closed_date": "2023-12-22"}
  ],
  "lookups": {
    "branches": [
      {"branch_id": "B1", "name": "Nairobi CBD", "region": "Central", "country": "Kenya"},
      {"branch_id": "B2", "name": "Mombasa", "region": "Coast", "country": "Kenya"},
      {"branch_id": "B3", "name": "Kampala", "region": "Central", "country": "Uganda"}
    ],
    "users": [
      {"user_id": "U1", "first_name": "Amina", "last_name": "Otieno", "role": "Agent"},
      {"user_id": "U2", "first_name": "Brian", "last_name": "Mwangi", "role": "Agent"},
      {"user_id": "U3", "first_name": "Carol", "last_name": "Nakato", "role": "Agent"}
    ],
    "products": [{"product_id": "P1", "name": "Personal Loan"}],
    "campaigns": [{"campaign_id": "C1", "name": "Q1 Push"}],
    "segments": [{"segment_id": "S1", "name": "Retail"}]
  },
  "metrics": {"revenue_targets": [
    {"user_id": "U1", "month": "2024-01", "target_amount": 1000},
    {"user_id": "U2", "month": "2024-01", "target_amount": 600}
  ]},
  "user_profile": {"user_id": "U1", "first_name": "Amina", "last_name": "Otieno", "role": "Manager", "primary_branch_id": "B2"},
  "notifications": [{"id": 1, "type": "info", "message": "Targets updated", "link": "/dashboard", "timestamp": "2024-01-30T08:00:00Z", "read": false}],
  "banner": {"active": true, "text": "Q1 push ends Friday", "style": "info", "link_url": "/campaigns"}
}`

func setupRouter(t *testing.T, dataPath string) *gin.Engine {
	t.Helper()
	if dataPath == "" {
		dataPath = filepath.Join(t.TempDir(), "dashboard.json")
		require.NoError(t, os.WriteFile(dataPath, []byte(testDoc), 0o600))
	}

	provider := repository.NewFileRepository(dataPath)
	engine := analytics.NewEngine(analytics.WithClock(func() time.Time {
		return time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)
	}))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.ErrorHandler())
	RegisterRoutes(router, service.NewDashboardService(provider, engine), service.NewSessionService(provider), "file")
	return router
}

func get(router *gin.Engine, url string, header ...string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	router.ServeHTTP(w, req)
	return w
}
