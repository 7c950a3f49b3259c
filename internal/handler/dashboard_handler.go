package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ianSurii/optimus-lead-management-dashboard/internal/dto"
	"github.com/ianSurii/optimus-lead-management-dashboard/internal/middleware"
	"github.com/ianSurii/optimus-lead-management-dashboard/internal/service"
)

type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	var q dto.DashboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.Error(fmt.Errorf("%w: %v", middleware.ErrBadRequest, err))
		return
	}

	res, err := h.svc.GetDashboard(c.Request.Context(), q.Filters())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, res)
}
