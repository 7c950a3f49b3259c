package analytics

import (
	"strings"

	"github.com/ianSurii/optimus-lead-management-dashboard/internal/model"
)

// Filters is the dashboard request. Every field is optional.
type Filters struct {
	Date       string
	DateFrom   string
	DateTo     string
	BranchID   string
	UserID     string
	ProductID  string
	CampaignID string
	SegmentID  string
	Status     string
	Country    string
}

// FiltersFromMap reads the recognized keys and ignores everything else.
func FiltersFromMap(m map[string]string) Filters {
	return Filters{
		Date:       strings.TrimSpace(m["date"]),
		DateFrom:   strings.TrimSpace(m["date_from"]),
		DateTo:     strings.TrimSpace(m["date_to"]),
		BranchID:   strings.TrimSpace(m["branch_id"]),
		UserID:     strings.TrimSpace(m["user_id"]),
		ProductID:  strings.TrimSpace(m["product_id"]),
		CampaignID: strings.TrimSpace(m["campaign_id"]),
		SegmentID:  strings.TrimSpace(m["segment_id"]),
		Status:     strings.TrimSpace(m["status"]),
		Country:    strings.TrimSpace(m["country"]),
	}
}

// Applied echoes the non-empty filters back to the caller.
func (f Filters) Applied() map[string]string {
	out := map[string]string{}
	for k, v := range map[string]string{
		"date":        f.Date,
		"date_from":   f.DateFrom,
		"date_to":     f.DateTo,
		"branch_id":   f.BranchID,
		"user_id":     f.UserID,
		"product_id":  f.ProductID,
		"campaign_id": f.CampaignID,
		"segment_id":  f.SegmentID,
		"status":      f.Status,
		"country":     f.Country,
	} {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

type valueSet map[string]struct{}

func csvSet(s string) valueSet {
	if s == "" {
		return nil
	}
	out := valueSet{}
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out[p] = struct{}{}
		}
	}
	return out
}

// allows treats an empty set as "no filter".
func (s valueSet) allows(v string) bool {
	if len(s) == 0 {
		return true
	}
	_, ok := s[v]
	return ok
}

type criteria struct {
	branch   valueSet
	user     valueSet
	product  valueSet
	campaign valueSet
	segment  valueSet
	status   valueSet
	country  valueSet
}

func newCriteria(f Filters) criteria {
	return criteria{
		branch:   csvSet(f.BranchID),
		user:     csvSet(f.UserID),
		product:  csvSet(f.ProductID),
		campaign: csvSet(f.CampaignID),
		segment:  csvSet(f.SegmentID),
		status:   csvSet(f.Status),
		country:  csvSet(f.Country),
	}
}

func (c criteria) match(t model.Transaction, lk *Lookup) bool {
	if !c.branch.allows(t.BranchID) ||
		!c.user.allows(t.UserID) ||
		!c.product.allows(t.ProductID) ||
		!c.campaign.allows(t.CampaignID) ||
		!c.segment.allows(t.SegmentID) ||
		!c.status.allows(t.Status) {
		return false
	}
	if len(c.country) > 0 {
		country, ok := lk.Country(t.BranchID)
		if !ok || !c.country.allows(country) {
			return false
		}
	}
	return true
}

// FilterTransactions keeps the records inside w that satisfy the dimension
// filters in f, in their original order.
func FilterTransactions(txns []model.Transaction, w Window, f Filters, lk *Lookup) []model.Transaction {
	return filterTransactions(txns, w, newCriteria(f), lk)
}

func filterTransactions(txns []model.Transaction, w Window, c criteria, lk *Lookup) []model.Transaction {
	out := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if !w.Contains(t.Date) {
			continue
		}
		if c.match(t, lk) {
			out = append(out, t)
		}
	}
	return out
}
