package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/ianSurii/optimus-lead-management-dashboard/internal/model"
)

// DaysPerTargetMonth spreads a monthly target evenly over days.
const DaysPerTargetMonth = 30

// Targets indexes monthly revenue targets by agent and month.
type Targets map[targetKey]float64

type targetKey struct {
	userID string
	month  string
}

func NewTargets(ts []model.RevenueTarget) Targets {
	sums := make(map[targetKey]decimal.Decimal, len(ts))
	for _, t := range ts {
		k := targetKey{userID: t.UserID, month: t.Month}
		sums[k] = sums[k].Add(decimal.NewFromFloat(t.TargetAmount))
	}
	out := make(Targets, len(sums))
	for k, v := range sums {
		out[k] = toFloat(v)
	}
	return out
}

func (t Targets) For(userID, month string) (float64, bool) {
	v, ok := t[targetKey{userID: userID, month: month}]
	return v, ok
}

// BranchTargets derives each branch's target from the agent ranking: the
// sum of the targets of every agent who transacted at the branch in txns.
// Agents missing from the ranking contribute nothing.
func BranchTargets(txns []model.Transaction, agents []AgentPerformance) map[string]float64 {
	agentTarget := make(map[string]float64, len(agents))
	for _, a := range agents {
		agentTarget[a.UserID] = a.Target
	}

	seen := make(map[string]map[string]struct{})
	for _, t := range txns {
		if seen[t.BranchID] == nil {
			seen[t.BranchID] = map[string]struct{}{}
		}
		seen[t.BranchID][t.UserID] = struct{}{}
	}

	out := make(map[string]float64, len(seen))
	for branchID, users := range seen {
		values := make([]float64, 0, len(users))
		for userID := range users {
			values = append(values, agentTarget[userID])
		}
		out[branchID] = toFloat(sumAmounts(values...))
	}
	return out
}
