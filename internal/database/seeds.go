package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/ianSurii/optimus-lead-management-dashboard/internal/model"
)

// SeedSnapshot copies snap into empty dashboard tables in one transaction.
// It does nothing when transactions already exist.
func SeedSnapshot(ctx context.Context, pool *pgxpool.Pool, snap *model.Snapshot) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM transactions").Scan(&count); err != nil {
		return fmt.Errorf("check existing data: %w", err)
	}
	if count > 0 {
		log.Info().Int("transactions", count).Msg("seed data already exists, skipping")
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, b := range snap.Lookups.Branches {
		batch.Queue("INSERT INTO branches (branch_id, name, region, country) VALUES ($1, $2, $3, $4)",
			b.BranchID, b.Name, b.Region, b.Country)
	}
	for _, a := range snap.Lookups.Users {
		batch.Queue("INSERT INTO agents (user_id, first_name, last_name, role) VALUES ($1, $2, $3, $4)",
			a.UserID, a.FirstName, a.LastName, a.Role)
	}
	for _, p := range snap.Lookups.Products {
		batch.Queue("INSERT INTO products (product_id, name) VALUES ($1, $2)", p.ProductID, p.Name)
	}
	for _, c := range snap.Lookups.Campaigns {
		batch.Queue("INSERT INTO campaigns (campaign_id, name) VALUES ($1, $2)", c.CampaignID, c.Name)
	}
	for _, s := range snap.Lookups.Segments {
		batch.Queue("INSERT INTO segments (segment_id, name) VALUES ($1, $2)", s.SegmentID, s.Name)
	}
	for _, t := range snap.RevenueTargets {
		batch.Queue(`INSERT INTO revenue_targets (user_id, month, target_amount) VALUES ($1, $2, $3)
			ON CONFLICT (user_id, month) DO UPDATE SET target_amount = revenue_targets.target_amount + EXCLUDED.target_amount`,
			t.UserID, t.Month, t.TargetAmount)
	}

	p := snap.Session.Profile
	if p.UserID != "" {
		batch.Queue(`INSERT INTO user_profiles (user_id, first_name, last_name, role, managed_product_id, primary_branch_id, profile_pic_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			p.UserID, p.FirstName, p.LastName, p.Role, p.ManagedProductID, p.PrimaryBranchID, p.ProfilePicURL)
	}
	for _, n := range snap.Session.Notifications {
		batch.Queue("INSERT INTO notifications (id, type, message, link, created_at, is_read) VALUES ($1, $2, $3, $4, $5, $6)",
			n.ID, n.Type, n.Message, n.Link, n.Timestamp, n.Read)
	}
	b := snap.Session.Banner
	batch.Queue("INSERT INTO banners (active, text, style, link_url) VALUES ($1, $2, $3, $4)",
		b.Active, b.Text, b.Style, b.LinkURL)

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert dimensions: %w", err)
	}

	txns, dropped := uniqueTransactions(snap.Transactions)
	if dropped > 0 {
		log.Warn().Int("dropped", dropped).Msg("skipping transactions with a repeated txn_id")
	}
	rows := make([][]any, 0, len(txns))
	for _, t := range txns {
		rows = append(rows, []any{
			t.ID, t.BranchID, t.UserID, t.ProductID, t.CampaignID, t.SegmentID,
			t.CustomerName, t.Amount, t.Status, t.Date, t.ClosedDate,
		})
	}
	n, err := tx.CopyFrom(ctx,
		pgx.Identifier{"transactions"},
		[]string{"txn_id", "branch_id", "user_id", "product_id", "campaign_id", "segment_id",
			"customer_name", "amount", "status", "txn_date", "closed_date"},
		pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("copy transactions: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	log.Info().
		Int64("transactions", n).
		Int("branches", len(snap.Lookups.Branches)).
		Int("agents", len(snap.Lookups.Users)).
		Int("targets", len(snap.RevenueTargets)).
		Msg("seeded dashboard data")
	return nil
}

// uniqueTransactions keeps the first record for each txn_id, in order, and
// reports how many repeats it dropped.
func uniqueTransactions(txns []model.Transaction) ([]model.Transaction, int) {
	seen := make(map[string]struct{}, len(txns))
	out := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out, len(txns) - len(out)
}
