package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/ianSurii/optimus-lead-management-dashboard/internal/model"
)

type BranchDaily struct {
	BranchName      string    `json:"branch_name"`
	DailyRevenue    []float64 `json:"daily_revenue"`
	DailyLeads      []int     `json:"daily_leads"`
	DailyClosed     []int     `json:"daily_closed"`
	DailyConversion []float64 `json:"daily_conversion"`
}

type LeadVsConversion struct {
	Labels   []string               `json:"labels"`
	Branches map[string]BranchDaily `json:"branches"`
}

type BranchRevenueTarget struct {
	BranchName   string    `json:"branch_name"`
	DailyTarget  []float64 `json:"daily_target"`
	DailyRevenue []float64 `json:"daily_revenue"`
}

type RevenueVsTarget struct {
	Labels   []string                       `json:"labels"`
	Branches map[string]BranchRevenueTarget `json:"branches"`
}

// Rollup buckets txns into one slot per day of w for every lookup branch.
// Records dated outside w, or at a branch missing from the lookup, are
// skipped.
func Rollup(txns []model.Transaction, w Window, lk *Lookup) LeadVsConversion {
	n := w.Days()
	type acc struct {
		revenue []decimal.Decimal
		leads   []int
		closed  []int
	}
	accs := make(map[string]*acc, len(lk.Branches()))
	for _, b := range lk.Branches() {
		accs[b.BranchID] = &acc{
			revenue: make([]decimal.Decimal, n),
			leads:   make([]int, n),
			closed:  make([]int, n),
		}
	}

	for _, t := range txns {
		a, ok := accs[t.BranchID]
		if !ok {
			continue
		}
		i := w.DayIndex(t.Date)
		if i < 0 || i >= n {
			continue
		}
		a.leads[i]++
		if t.IsClosed() {
			a.closed[i]++
			a.revenue[i] = a.revenue[i].Add(decimal.NewFromFloat(t.Amount))
		}
	}

	out := LeadVsConversion{Labels: w.Labels(), Branches: make(map[string]BranchDaily, len(accs))}
	for _, b := range lk.Branches() {
		a := accs[b.BranchID]
		d := BranchDaily{
			BranchName:      b.Name,
			DailyRevenue:    make([]float64, n),
			DailyLeads:      a.leads,
			DailyClosed:     a.closed,
			DailyConversion: make([]float64, n),
		}
		for i := 0; i < n; i++ {
			d.DailyRevenue[i] = toFloat(a.revenue[i])
			d.DailyConversion[i] = percent(float64(a.closed[i]), float64(a.leads[i]))
		}
		out.Branches[b.BranchID] = d
	}
	return out
}

// RevenueAgainstTarget pairs each branch's daily revenue with a flat daily
// target of branchTargets/DaysPerTargetMonth.
func RevenueAgainstTarget(r LeadVsConversion, branchTargets map[string]float64) RevenueVsTarget {
	out := RevenueVsTarget{Labels: r.Labels, Branches: make(map[string]BranchRevenueTarget, len(r.Branches))}
	for id, d := range r.Branches {
		daily := round2(branchTargets[id] / DaysPerTargetMonth)
		target := make([]float64, len(d.DailyRevenue))
		for i := range target {
			target[i] = daily
		}
		out.Branches[id] = BranchRevenueTarget{
			BranchName:   d.BranchName,
			DailyTarget:  target,
			DailyRevenue: d.DailyRevenue,
		}
	}
	return out
}
