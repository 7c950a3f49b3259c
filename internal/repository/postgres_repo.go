package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/ianSurii/optimus-lead-management-dashboard/internal/model"
)

// PostgresRepository builds snapshots from the dashboard tables.
type PostgresRepository struct {
	pool  *pgxpool.Pool
	cache *snapshotCache
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	r := &PostgresRepository{pool: pool}
	r.cache = newSnapshotCache("postgres", r.load)
	return r
}

func (r *PostgresRepository) Snapshot(ctx context.Context) (*model.Snapshot, error) {
	return r.cache.get(ctx)
}

func (r *PostgresRepository) Reload(ctx context.Context) (*model.Snapshot, error) {
	return r.cache.reload(ctx)
}

// load reads every collection in parallel.
func (r *PostgresRepository) load(ctx context.Context) (*model.Snapshot, error) {
	s := &model.Snapshot{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) { s.Transactions, err = r.transactions(gctx); return })
	g.Go(func() (err error) { s.Lookups.Branches, err = r.branches(gctx); return })
	g.Go(func() (err error) { s.Lookups.Users, err = r.agents(gctx); return })
	g.Go(func() (err error) {
		s.Lookups.Products, err = queryNamed(gctx, r.pool, "products", "product_id",
			func(id, name string) model.Product { return model.Product{ProductID: id, Name: name} })
		return
	})
	g.Go(func() (err error) {
		s.Lookups.Campaigns, err = queryNamed(gctx, r.pool, "campaigns", "campaign_id",
			func(id, name string) model.Campaign { return model.Campaign{CampaignID: id, Name: name} })
		return
	})
	g.Go(func() (err error) {
		s.Lookups.Segments, err = queryNamed(gctx, r.pool, "segments", "segment_id",
			func(id, name string) model.Segment { return model.Segment{SegmentID: id, Name: name} })
		return
	})
	g.Go(func() (err error) { s.RevenueTargets, err = r.revenueTargets(gctx); return })
	g.Go(func() (err error) { s.Session, err = r.session(gctx); return })

	if err := g.Wait(); err != nil {
		return nil, err
	}
	s.LoadedAt = time.Now()
	return s, nil
}

func (r *PostgresRepository) transactions(ctx context.Context) ([]model.Transaction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT txn_id, branch_id, user_id, product_id, campaign_id, segment_id,
			customer_name, amount::float8, status, txn_date, closed_date
		FROM transactions
		ORDER BY txn_date, txn_id
	`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.BranchID, &t.UserID, &t.ProductID, &t.CampaignID, &t.SegmentID,
			&t.CustomerName, &t.Amount, &t.Status, &t.Date, &t.ClosedDate); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) branches(ctx context.Context) ([]model.Branch, error) {
	rows, err := r.pool.Query(ctx, `SELECT branch_id, name, region, country FROM branches ORDER BY branch_id`)
	if err != nil {
		return nil, fmt.Errorf("query branches: %w", err)
	}
	defer rows.Close()

	var out []model.Branch
	for rows.Next() {
		var b model.Branch
		if err := rows.Scan(&b.BranchID, &b.Name, &b.Region, &b.Country); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) agents(ctx context.Context) ([]model.Agent, error) {
	rows, err := r.pool.Query(ctx, `SELECT user_id, first_name, last_name, role FROM agents ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("query agents: %w", err)
	}
	defer rows.Close()

	var out []model.Agent
	for rows.Next() {
		var a model.Agent
		if err := rows.Scan(&a.UserID, &a.FirstName, &a.LastName, &a.Role); err != nil {
			return nil, fmt.Errorf("scan agent: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// queryNamed reads an (id, name) dimension table. table and idCol are
// compile-time constants, never user input.
func queryNamed[T any](ctx context.Context, pool *pgxpool.Pool, table, idCol string, build func(id, name string) T) ([]T, error) {
	rows, err := pool.Query(ctx, fmt.Sprintf(`SELECT %s, name FROM %s ORDER BY %s`, idCol, table, idCol))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		out = append(out, build(id, name))
	}
	return out, rows.Err()
}

func (r *PostgresRepository) revenueTargets(ctx context.Context) ([]model.RevenueTarget, error) {
	rows, err := r.pool.Query(ctx, `SELECT user_id, month, target_amount::float8 FROM revenue_targets ORDER BY month, user_id`)
	if err != nil {
		return nil, fmt.Errorf("query revenue targets: %w", err)
	}
	defer rows.Close()

	var out []model.RevenueTarget
	for rows.Next() {
		var t model.RevenueTarget
		if err := rows.Scan(&t.UserID, &t.Month, &t.TargetAmount); err != nil {
			return nil, fmt.Errorf("scan revenue target: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) session(ctx context.Context) (model.Session, error) {
	var s model.Session

	p := &s.Profile
	err := r.pool.QueryRow(ctx, `
		SELECT user_id, first_name, last_name, role, managed_product_id, primary_branch_id, profile_pic_url
		FROM user_profiles ORDER BY user_id LIMIT 1
	`).Scan(&p.UserID, &p.FirstName, &p.LastName, &p.Role, &p.ManagedProductID, &p.PrimaryBranchID, &p.ProfilePicURL)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return s, fmt.Errorf("query user profile: %w", err)
	}

	b := &s.Banner
	err = r.pool.QueryRow(ctx, `SELECT active, text, style, link_url FROM banners ORDER BY id DESC LIMIT 1`).
		Scan(&b.Active, &b.Text, &b.Style, &b.LinkURL)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return s, fmt.Errorf("query banner: %w", err)
	}

	rows, err := r.pool.Query(ctx, `SELECT id, type, message, link, created_at, is_read FROM notifications ORDER BY created_at DESC, id`)
	if err != nil {
		return s, fmt.Errorf("query notifications: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.Type, &n.Message, &n.Link, &n.Timestamp, &n.Read); err != nil {
			return s, fmt.Errorf("scan notification: %w", err)
		}
		s.Notifications = append(s.Notifications, n)
	}
	return s, rows.Err()
}
