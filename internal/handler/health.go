package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ianSurii/optimus-lead-management-dashboard/internal/dto"
	"github.com/ianSurii/optimus-lead-management-dashboard/internal/service"
)

const APIVersion = "v1"

type HealthHandler struct {
	svc    *service.DashboardService
	source string
}

func NewHealthHandler(svc *service.DashboardService, source string) *HealthHandler {
	return &HealthHandler{svc: svc, source: source}
}

// Health reports whether a snapshot can be served.
func (h *HealthHandler) Health(c *gin.Context) {
	snap, err := h.svc.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status:     "unhealthy",
			DataSource: h.source,
		})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:       "healthy",
		DataSource:   h.source,
		Transactions: len(snap.Transactions),
		LoadedAt:     snap.LoadedAt.UTC().Format(time.RFC3339),
	})
}

func (h *HealthHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, dto.StatusResponse{
		Status:  "Dashboard API is running",
		Version: APIVersion,
	})
}
