package dto

import "github.com/ianSurii/optimus-lead-management-dashboard/internal/analytics"

// DashboardQuery is the query string accepted by the dashboard and
// transaction endpoints.
type DashboardQuery struct {
	Date       string `form:"date"`
	DateFrom   string `form:"date_from"`
	DateTo     string `form:"date_to"`
	BranchID   string `form:"branch_id"`
	UserID     string `form:"user_id"`
	ProductID  string `form:"product_id"`
	CampaignID string `form:"campaign_id"`
	SegmentID  string `form:"segment_id"`
	Status     string `form:"status"`
	Country    string `form:"country"`
}

func (q DashboardQuery) Filters() analytics.Filters {
	return analytics.FiltersFromMap(map[string]string{
		"date":        q.Date,
		"date_from":   q.DateFrom,
		"date_to":     q.DateTo,
		"branch_id":   q.BranchID,
		"user_id":     q.UserID,
		"product_id":  q.ProductID,
		"campaign_id": q.CampaignID,
		"segment_id":  q.SegmentID,
		"status":      q.Status,
		"country":     q.Country,
	})
}
