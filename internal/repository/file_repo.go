package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/ianSurii/optimus-lead-management-dashboard/internal/analytics"
	"github.com/ianSurii/optimus-lead-management-dashboard/internal/model"
)

// FileRepository serves a snapshot decoded from a JSON document on disk.
type FileRepository struct {
	path  string
	cache *snapshotCache
}

func NewFileRepository(path string) *FileRepository {
	r := &FileRepository{path: path}
	r.cache = newSnapshotCache("file", r.readFile)
	return r
}

func (r *FileRepository) Snapshot(ctx context.Context) (*model.Snapshot, error) {
	return r.cache.get(ctx)
}

func (r *FileRepository) Reload(ctx context.Context) (*model.Snapshot, error) {
	return r.cache.reload(ctx)
}

func (r *FileRepository) readFile(_ context.Context) (*model.Snapshot, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()
	return DecodeSnapshot(f)
}

type rawTransaction struct {
	ID           string  `json:"txn_id"`
	BranchID     string  `json:"branch_id"`
	UserID       string  `json:"user_id"`
	ProductID    string  `json:"product_id"`
	CampaignID   string  `json:"campaign_id"`
	SegmentID    string  `json:"segment_id"`
	CustomerName string  `json:"customer_name"`
	Amount       float64 `json:"amount"`
	Status       string  `json:"status"`
	Date         string  `json:"date"`
	ClosedDate   *string `json:"closed_date"`
}

type fileDocument struct {
	Transactions []rawTransaction `json:"transactions"`
	Lookups      model.Lookups    `json:"lookups"`
	Metrics      struct {
		RevenueTargets []model.RevenueTarget `json:"revenue_targets"`
	} `json:"metrics"`
	UserProfile   model.UserProfile    `json:"user_profile"`
	Notifications []model.Notification `json:"notifications"`
	Banner        model.Banner         `json:"banner"`
}

// DecodeSnapshot parses the dashboard JSON document. Records with an
// unparseable date are dropped; an unparseable closed_date is treated as
// absent.
func DecodeSnapshot(r io.Reader) (*model.Snapshot, error) {
	var doc fileDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode data file: %w", err)
	}

	txns := make([]model.Transaction, 0, len(doc.Transactions))
	for _, raw := range doc.Transactions {
		created, err := analytics.ParseDate(raw.Date)
		if err != nil {
			log.Warn().Str("txn_id", raw.ID).Str("date", raw.Date).Msg("skipping transaction with bad date")
			continue
		}
		t := model.Transaction{
			ID:           raw.ID,
			BranchID:     raw.BranchID,
			UserID:       raw.UserID,
			ProductID:    raw.ProductID,
			CampaignID:   raw.CampaignID,
			SegmentID:    raw.SegmentID,
			CustomerName: raw.CustomerName,
			Amount:       raw.Amount,
			Status:       raw.Status,
			Date:         created,
		}
		if raw.ClosedDate != nil && *raw.ClosedDate != "" {
			if closed, err := analytics.ParseDate(*raw.ClosedDate); err == nil {
				t.ClosedDate = &closed
			} else {
				log.Warn().Str("txn_id", raw.ID).Str("closed_date", *raw.ClosedDate).Msg("ignoring bad closed_date")
			}
		}
		txns = append(txns, t)
	}

	return &model.Snapshot{
		Transactions:   txns,
		Lookups:        doc.Lookups,
		RevenueTargets: doc.Metrics.RevenueTargets,
		Session: model.Session{
			Profile:       doc.UserProfile,
			Notifications: doc.Notifications,
			Banner:        doc.Banner,
		},
	}, nil
}
