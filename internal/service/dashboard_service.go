package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ianSurii/optimus-lead-management-dashboard/internal/analytics"
	"github.com/ianSurii/optimus-lead-management-dashboard/internal/model"
	"github.com/ianSurii/optimus-lead-management-dashboard/internal/repository"
	"github.com/ianSurii/optimus-lead-management-dashboard/internal/telemetry"
)

type DashboardService struct {
	provider repository.Provider
	engine   *analytics.Engine
}

func NewDashboardService(provider repository.Provider, engine *analytics.Engine) *DashboardService {
	return &DashboardService{provider: provider, engine: engine}
}

func (s *DashboardService) GetDashboard(ctx context.Context, f analytics.Filters) (*analytics.DashboardResult, error) {
	snap, err := s.provider.Snapshot(ctx)
	if err != nil {
		telemetry.DashboardErrorsTotal.WithLabelValues("data_unavailable").Inc()
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	start := time.Now()
	res, err := s.engine.ComputeDashboard(snap, f)
	telemetry.DashboardComputeDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		telemetry.DashboardErrorsTotal.WithLabelValues(errorReason(err)).Inc()
		return nil, fmt.Errorf("compute dashboard: %w", err)
	}

	log.Debug().
		Interface("filters", res.Filters.Applied).
		Int("total_records", res.Summary.TotalRecords).
		Str("from", res.Summary.DateRange.From).
		Str("to", res.Summary.DateRange.To).
		Dur("took", time.Since(start)).
		Msg("dashboard computed")
	return res, nil
}

// ListTransactions returns every denormalized transaction matching f.
func (s *DashboardService) ListTransactions(ctx context.Context, f analytics.Filters) ([]analytics.TransactionRow, analytics.Window, error) {
	snap, err := s.provider.Snapshot(ctx)
	if err != nil {
		return nil, analytics.Window{}, fmt.Errorf("load snapshot: %w", err)
	}
	rows, w, err := s.engine.Transactions(snap, f)
	if err != nil {
		return nil, analytics.Window{}, fmt.Errorf("list transactions: %w", err)
	}
	return rows, w, nil
}

var csvHeader = []string{
	"txn_id", "date", "closed_date", "tat_days", "customer_name", "amount", "status",
	"branch_id", "branch_name", "user_id", "agent_name", "product_name", "campaign_name", "segment_name",
}

// WriteCSV streams rows as CSV with a header line.
func WriteCSV(w io.Writer, rows []analytics.TransactionRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		closed, tat := "", ""
		if r.ClosedDate != nil {
			closed = *r.ClosedDate
		}
		if r.TATDays != nil {
			tat = strconv.Itoa(*r.TATDays)
		}
		record := []string{
			r.TxnID, r.Date, closed, tat, r.CustomerName,
			strconv.FormatFloat(r.Amount, 'f', 2, 64), r.Status,
			r.BranchID, r.BranchName, r.UserID, r.AgentName, r.ProductName, r.CampaignName, r.SegmentName,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %s: %w", r.TxnID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Reload refreshes the snapshot from the data source.
func (s *DashboardService) Reload(ctx context.Context) (*model.Snapshot, error) {
	snap, err := s.provider.Reload(ctx)
	if err != nil {
		return nil, fmt.Errorf("reload snapshot: %w", err)
	}
	return snap, nil
}

// Snapshot exposes the active snapshot for health reporting.
func (s *DashboardService) Snapshot(ctx context.Context) (*model.Snapshot, error) {
	return s.provider.Snapshot(ctx)
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, analytics.ErrInvalidWindow):
		return "invalid_window"
	case errors.Is(err, analytics.ErrDataUnavailable):
		return "data_unavailable"
	default:
		return "internal"
	}
}
