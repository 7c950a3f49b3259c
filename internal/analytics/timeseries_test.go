package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianSurii/optimus-lead-management-dashboard/internal/model"
)

func TestRollup(t *testing.T) {
	snap := testSnapshot()
	lk := NewLookup(snap.Lookups)
	w, err := Resolve(date("2024-01-31"), 7)
	require.NoError(t, err)

	r := Rollup(snap.Transactions, w, lk)

	assert.Equal(t, []string{"2024-01-25", "2024-01-26", "2024-01-27", "2024-01-28", "2024-01-29", "2024-01-30", "2024-01-31"}, r.Labels)
	require.Len(t, r.Branches, 3)

	b1 := r.Branches["B1"]
	assert.Equal(t, "Nairobi CBD", b1.BranchName)
	assert.Equal(t, []int{1, 1, 0, 0, 0, 0, 0}, b1.DailyLeads)
	assert.Equal(t, []int{1, 0, 0, 0, 0, 0, 0}, b1.DailyClosed)
	assert.Equal(t, []float64{100, 0, 0, 0, 0, 0, 0}, b1.DailyRevenue)
	assert.Equal(t, []float64{100, 0, 0, 0, 0, 0, 0}, b1.DailyConversion)

	b2 := r.Branches["B2"]
	assert.Equal(t, []int{0, 0, 0, 1, 0, 1, 0}, b2.DailyLeads)
	assert.Equal(t, []float64{0, 0, 0, 300, 0, 0, 0}, b2.DailyRevenue)

	_, ok := r.Branches["B9"]
	assert.False(t, ok, "unknown branches are not rolled up")
}

func TestRollup_AlwaysFullLength(t *testing.T) {
	lk := NewLookup(testLookups())
	w, err := Resolve(date("2024-06-30"), 7)
	require.NoError(t, err)

	cases := map[string][]model.Transaction{
		"empty":   nil,
		"outside": {txn("X", "B1", "U1", 10, model.StatusClosed, "2024-06-23"), txn("Y", "B1", "U1", 10, model.StatusClosed, "2024-07-01")},
		"single":  {txn("Z", "B3", "U3", 10, model.StatusClosed, "2024-06-30")},
	}
	for name, txns := range cases {
		t.Run(name, func(t *testing.T) {
			r := Rollup(txns, w, lk)
			for id, b := range r.Branches {
				assert.Len(t, b.DailyLeads, 7, id)
				assert.Len(t, b.DailyClosed, 7, id)
				assert.Len(t, b.DailyRevenue, 7, id)
				assert.Len(t, b.DailyConversion, 7, id)
			}
			if name == "outside" {
				assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 0}, r.Branches["B1"].DailyLeads)
			}
		})
	}
}

func TestRevenueAgainstTarget(t *testing.T) {
	lk := NewLookup(testLookups())
	w, err := Resolve(date("2024-01-31"), 7)
	require.NoError(t, err)
	r := Rollup(nil, w, lk)

	rvt := RevenueAgainstTarget(r, map[string]float64{"B1": 1000, "B2": 600})
	assert.Equal(t, r.Labels, rvt.Labels)
	assert.Equal(t, []float64{33.33, 33.33, 33.33, 33.33, 33.33, 33.33, 33.33}, rvt.Branches["B1"].DailyTarget)
	assert.Equal(t, 20.0, rvt.Branches["B2"].DailyTarget[6])
	assert.Equal(t, 0.0, rvt.Branches["B3"].DailyTarget[0])
}

func TestTargets(t *testing.T) {
	targets := NewTargets([]model.RevenueTarget{
		{UserID: "U1", Month: "2024-01", TargetAmount: 1000.10},
		{UserID: "U1", Month: "2024-01", TargetAmount: 0.20},
		{UserID: "U2", Month: "2024-02", TargetAmount: 500},
	})

	v, ok := targets.For("U1", "2024-01")
	assert.True(t, ok)
	assert.Equal(t, 1000.3, v)

	_, ok = targets.For("U2", "2024-01")
	assert.False(t, ok)
}

func TestBranchTargets(t *testing.T) {
	txns := []model.Transaction{
		txn("1", "B1", "U1", 0, model.StatusOpen, "2024-01-01"),
		txn("2", "B1", "U1", 0, model.StatusOpen, "2024-01-02"),
		txn("3", "B1", "U2", 0, model.StatusOpen, "2024-01-02"),
		txn("4", "B2", "U2", 0, model.StatusOpen, "2024-01-02"),
		txn("5", "B3", "U9", 0, model.StatusOpen, "2024-01-02"),
	}
	agents := []AgentPerformance{{UserID: "U1", Target: 1000}, {UserID: "U2", Target: 250.5}}

	got := BranchTargets(txns, agents)
	assert.Equal(t, map[string]float64{"B1": 1250.5, "B2": 250.5, "B3": 0}, got)
}
