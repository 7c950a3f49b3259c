package analytics

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/ianSurii/optimus-lead-management-dashboard/internal/model"
)

// tally accumulates lead counts, closed revenue and turnaround samples.
type tally struct {
	total     int
	contacted int
	closed    int
	open      int
	revenue   decimal.Decimal
	tatSum    int
	tatCount  int
}

func (a *tally) add(t model.Transaction) {
	a.total++
	if t.IsContacted() {
		a.contacted++
	}
	if t.IsOpen() {
		a.open++
	}
	if !t.IsClosed() {
		return
	}
	a.closed++
	a.revenue = a.revenue.Add(decimal.NewFromFloat(t.Amount))
	if d, ok := turnaround(t); ok {
		a.tatSum += d
		a.tatCount++
	}
}

func (a tally) conversion() float64 {
	return percent(float64(a.closed), float64(a.total))
}

func (a tally) avgTAT() float64 {
	if a.tatCount == 0 {
		return 0
	}
	return round2(float64(a.tatSum) / float64(a.tatCount))
}

func (a tally) revenueValue() float64 {
	return toFloat(a.revenue)
}

// turnaround is the closed-lead TAT in whole days. Records without both
// dates, or whose difference is negative, yield ok=false.
func turnaround(t model.Transaction) (int, bool) {
	if !t.IsClosed() {
		return 0, false
	}
	return dayDiff(t)
}

func dayDiff(t model.Transaction) (int, bool) {
	if t.Date.IsZero() || t.ClosedDate == nil || t.ClosedDate.IsZero() {
		return 0, false
	}
	d := DaysBetween(t.Date, *t.ClosedDate)
	if d < 0 {
		return 0, false
	}
	return d, true
}

// percent is part/whole*100 rounded to two decimals, 0 when whole is 0.
func percent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return round2(part / whole * 100)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func toFloat(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func sumAmounts(values ...float64) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total
}
