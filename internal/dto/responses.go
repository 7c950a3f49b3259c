package dto

import "github.com/ianSurii/optimus-lead-management-dashboard/internal/analytics"

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type TransactionListResponse struct {
	Data       []analytics.TransactionRow `json:"data"`
	Pagination Pagination                 `json:"pagination"`
	DateRange  analytics.DateRange        `json:"date_range"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type HealthResponse struct {
	Status       string `json:"status"`
	DataSource   string `json:"data_source"`
	Transactions int    `json:"transactions,omitempty"`
	LoadedAt     string `json:"loaded_at,omitempty"`
}
