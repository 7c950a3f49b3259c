package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/ianSurii/optimus-lead-management-dashboard/internal/analytics"
	"github.com/ianSurii/optimus-lead-management-dashboard/internal/dto"
	"github.com/ianSurii/optimus-lead-management-dashboard/internal/middleware"
	"github.com/ianSurii/optimus-lead-management-dashboard/internal/service"
)

type TransactionHandler struct {
	svc *service.DashboardService
}

func NewTransactionHandler(svc *service.DashboardService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

// List serves the filtered transaction table, paginated as JSON or in full
// as CSV when format=csv or the client accepts text/csv.
func (h *TransactionHandler) List(c *gin.Context) {
	var q dto.DashboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.Error(fmt.Errorf("%w: %v", middleware.ErrBadRequest, err))
		return
	}

	rows, w, err := h.svc.ListTransactions(c.Request.Context(), q.Filters())
	if err != nil {
		_ = c.Error(err)
		return
	}

	format := c.Query("format")
	wantsCSV := format == "csv" || (format == "" && strings.Contains(c.GetHeader("Accept"), "text/csv"))
	if wantsCSV {
		name := fmt.Sprintf("transactions_%s_%s.csv", w.Start.Format(analytics.DateLayout), w.End.Format(analytics.DateLayout))
		c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Status(http.StatusOK)
		if err := service.WriteCSV(c.Writer, rows); err != nil {
			log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("csv export aborted")
		}
		return
	}

	p := dto.ParsePagination(c)
	c.JSON(http.StatusOK, dto.TransactionListResponse{
		Data:       dto.Paginate(rows, p),
		Pagination: dto.NewPagination(p.Page, p.PageSize, len(rows)),
		DateRange: analytics.DateRange{
			From: w.Start.Format(analytics.DateLayout),
			To:   w.End.Format(analytics.DateLayout),
		},
	})
}
