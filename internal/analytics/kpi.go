package analytics

import (
	"math"

	"github.com/ianSurii/optimus-lead-management-dashboard/internal/model"
)

const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// KPISet holds the headline metrics of one filtered transaction set.
type KPISet struct {
	TotalLeads     int     `json:"total_leads"`
	ContactedLeads int     `json:"contacted_leads"`
	ClosedLeads    int     `json:"closed_leads"`
	ConversionRate float64 `json:"conversion_rate"`
	TotalRevenue   float64 `json:"total_revenue"`
	AvgTurnaround  float64 `json:"avg_turnaround"`
}

type KPI struct {
	ID               string  `json:"id"`
	Label            string  `json:"label"`
	Value            float64 `json:"value"`
	PreviousValue    float64 `json:"previous_value"`
	Unit             string  `json:"unit"`
	AbsoluteChange   float64 `json:"absolute_change"`
	ChangePercentage float64 `json:"change_percentage"`
	ChangeDirection  string  `json:"change_direction"`
	Color            string  `json:"color"`
}

func CalculateKPIs(txns []model.Transaction) KPISet {
	var a tally
	for _, t := range txns {
		a.add(t)
	}
	return KPISet{
		TotalLeads:     a.total,
		ContactedLeads: a.contacted,
		ClosedLeads:    a.closed,
		ConversionRate: a.conversion(),
		TotalRevenue:   a.revenueValue(),
		AvgTurnaround:  a.avgTAT(),
	}
}

// ChangePercentage is the unsigned relative change from previous to current.
// A zero baseline reports 100 for any growth and 0 otherwise.
func ChangePercentage(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return round2(math.Abs(current-previous) / previous * 100)
}

// ChangeDirection applies the same rule to every metric, turnaround
// included: a higher or equal current value is "up".
func ChangeDirection(current, previous float64) string {
	if current >= previous {
		return DirectionUp
	}
	return DirectionDown
}

// CompareKPIs renders the dashboard tiles in display order: turnaround,
// contacted leads, conversion rate, total leads.
func CompareKPIs(current, previous KPISet) []KPI {
	return []KPI{
		newKPI("avg_tat", "Avg Turn Around Time", "days", "#F59E0B", current.AvgTurnaround, previous.AvgTurnaround),
		newKPI("contacted_leads", "Contacted Leads", "count", "#3B82F6", float64(current.ContactedLeads), float64(previous.ContactedLeads)),
		newKPI("conversion_rate", "Conversion Rate", "%", "#10B981", current.ConversionRate, previous.ConversionRate),
		newKPI("total_leads", "Total Leads Processed", "count", "#8B5CF6", float64(current.TotalLeads), float64(previous.TotalLeads)),
	}
}

func newKPI(id, label, unit, color string, current, previous float64) KPI {
	return KPI{
		ID:               id,
		Label:            label,
		Value:            current,
		PreviousValue:    previous,
		Unit:             unit,
		AbsoluteChange:   round2(current - previous),
		ChangePercentage: ChangePercentage(current, previous),
		ChangeDirection:  ChangeDirection(current, previous),
		Color:            color,
	}
}
