package analytics

import "github.com/ianSurii/optimus-lead-management-dashboard/internal/model"

// TransactionRow is a transaction joined to its dimension names.
type TransactionRow struct {
	ID           string  `json:"id"`
	TxnID        string  `json:"txn_id"`
	CustomerName string  `json:"customer_name"`
	Amount       float64 `json:"amount"`
	Status       string  `json:"status"`
	Date         string  `json:"date"`
	ClosedDate   *string `json:"closed_date"`
	TATDays      *int    `json:"tat_days"`
	BranchID     string  `json:"branch_id"`
	BranchName   string  `json:"branch_name"`
	UserID       string  `json:"user_id"`
	AgentName    string  `json:"agent_name"`
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	CampaignID   string  `json:"campaign_id"`
	CampaignName string  `json:"campaign_name"`
	SegmentID    string  `json:"segment_id"`
	SegmentName  string  `json:"segment_name"`
}

// Denormalize keeps the order of txns. tat_days is set for any status as
// long as both dates are present and not inverted.
func Denormalize(txns []model.Transaction, lk *Lookup) []TransactionRow {
	rows := make([]TransactionRow, 0, len(txns))
	for _, t := range txns {
		row := TransactionRow{
			ID:           t.ID,
			TxnID:        t.ID,
			CustomerName: t.CustomerName,
			Amount:       t.Amount,
			Status:       t.Status,
			Date:         t.Date.Format(DateLayout),
			BranchID:     t.BranchID,
			BranchName:   lk.BranchName(t.BranchID),
			UserID:       t.UserID,
			AgentName:    lk.AgentName(t.UserID),
			ProductID:    t.ProductID,
			ProductName:  lk.ProductName(t.ProductID),
			CampaignID:   t.CampaignID,
			CampaignName: lk.CampaignName(t.CampaignID),
			SegmentID:    t.SegmentID,
			SegmentName:  lk.SegmentName(t.SegmentID),
		}
		if t.ClosedDate != nil && !t.ClosedDate.IsZero() {
			s := t.ClosedDate.Format(DateLayout)
			row.ClosedDate = &s
		}
		if d, ok := dayDiff(t); ok {
			row.TATDays = &d
		}
		rows = append(rows, row)
	}
	return rows
}
