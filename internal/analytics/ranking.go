package analytics

import (
	"sort"

	"github.com/ianSurii/optimus-lead-management-dashboard/internal/model"
)

const (
	TopAgentsLimit = 5
	ReleasedLimit  = 10
)

type AgentPerformance struct {
	UserID             string  `json:"user_id"`
	Name               string  `json:"name"`
	Role               string  `json:"role"`
	TotalRevenue       float64 `json:"total_revenue"`
	TotalLeads         int     `json:"total_leads"`
	ClosedLeads        int     `json:"closed_leads"`
	OpenLeads          int     `json:"open_leads"`
	ContactedLeads     int     `json:"contacted_leads"`
	ConversionRate     float64 `json:"conversion_rate"`
	AvgTAT             float64 `json:"avg_tat"`
	Target             float64 `json:"target"`
	AchievementPercent float64 `json:"achievement_percent"`
	BranchID           *string `json:"branch_id"`
	BranchName         *string `json:"branch_name"`
}

type BranchPerformance struct {
	BranchID           string  `json:"branch_id"`
	BranchName         string  `json:"branch_name"`
	Region             string  `json:"region"`
	Country            string  `json:"country"`
	TotalRevenue       float64 `json:"total_revenue"`
	TotalLeads         int     `json:"total_leads"`
	ClosedLeads        int     `json:"closed_leads"`
	ConversionRate     float64 `json:"conversion_rate"`
	AvgTAT             float64 `json:"avg_tat"`
	Target             float64 `json:"target"`
	AchievementPercent float64 `json:"achievement_percent"`
}

type CountryPerformance struct {
	Country            string  `json:"country"`
	TotalRevenue       float64 `json:"total_revenue"`
	TotalLeads         int     `json:"total_leads"`
	ClosedLeads        int     `json:"closed_leads"`
	ConversionRate     float64 `json:"conversion_rate"`
	AvgTAT             float64 `json:"avg_tat"`
	Target             float64 `json:"target"`
	AchievementPercent float64 `json:"achievement_percent"`
	BranchCount        int     `json:"branch_count"`
}

type TopAgent struct {
	AgentID        string  `json:"agent_id"`
	AgentName      string  `json:"agent_name"`
	TurnaroundTime float64 `json:"turnaround_time"`
	ConversionRate float64 `json:"conversion_rate"`
	BranchName     string  `json:"branch_name"`
}

type ReleasedAmount struct {
	AgentID        string  `json:"agent_id"`
	AgentName      string  `json:"agent_name"`
	ReleasedAmount float64 `json:"released_amount"`
}

type BranchLeaderboardEntry struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	TargetKES        float64 `json:"target_kes"`
	Current          int     `json:"current"`
	Previous         int     `json:"previous"`
	Realised         float64 `json:"realised"`
	RealisedPrevious float64 `json:"realised_previous"`
}

type CountryLeaderboardEntry struct {
	ID               string  `json:"id"`
	Country          string  `json:"country"`
	Realised         float64 `json:"realised"`
	PreviousRealised float64 `json:"previous_realised"`
	BranchCount      int     `json:"branch_count"`
}

func achievement(revenue, target float64) float64 {
	return percent(revenue, target)
}

// RankAgents aggregates txns for every agent in the lookup. Records from
// agents missing in the lookup are left out. The result is ordered by
// closed leads, then revenue, then agent id.
func RankAgents(txns []model.Transaction, lk *Lookup, targets Targets, month string) []AgentPerformance {
	tallies := make(map[string]*tally, len(lk.Agents()))
	branchHits := make(map[string]map[string]int, len(lk.Agents()))
	for _, a := range lk.Agents() {
		tallies[a.UserID] = &tally{}
		branchHits[a.UserID] = map[string]int{}
	}
	for _, t := range txns {
		a, ok := tallies[t.UserID]
		if !ok {
			continue
		}
		a.add(t)
		branchHits[t.UserID][t.BranchID]++
	}

	out := make([]AgentPerformance, 0, len(tallies))
	for _, agent := range lk.Agents() {
		a := tallies[agent.UserID]
		if a == nil {
			continue
		}
		target, _ := targets.For(agent.UserID, month)
		p := AgentPerformance{
			UserID:             agent.UserID,
			Name:               agent.FullName(),
			Role:               agent.Role,
			TotalRevenue:       a.revenueValue(),
			TotalLeads:         a.total,
			ClosedLeads:        a.closed,
			OpenLeads:          a.open,
			ContactedLeads:     a.contacted,
			ConversionRate:     a.conversion(),
			AvgTAT:             a.avgTAT(),
			Target:             target,
			AchievementPercent: achievement(a.revenueValue(), target),
		}
		if id, ok := primaryBranch(branchHits[agent.UserID]); ok {
			name := lk.BranchName(id)
			p.BranchID = &id
			p.BranchName = &name
		}
		out = append(out, p)
		delete(tallies, agent.UserID)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ClosedLeads != out[j].ClosedLeads {
			return out[i].ClosedLeads > out[j].ClosedLeads
		}
		if out[i].TotalRevenue != out[j].TotalRevenue {
			return out[i].TotalRevenue > out[j].TotalRevenue
		}
		return out[i].UserID < out[j].UserID
	})
	return out
}

// primaryBranch picks the branch with the most records, lowest id on ties.
func primaryBranch(hits map[string]int) (string, bool) {
	best, bestN := "", 0
	for id, n := range hits {
		if n > bestN || (n == bestN && id < best) {
			best, bestN = id, n
		}
	}
	return best, bestN > 0
}

// RankBranches aggregates txns for every lookup branch and orders them by
// revenue, then branch id.
func RankBranches(txns []model.Transaction, lk *Lookup, branchTargets map[string]float64) []BranchPerformance {
	tallies := make(map[string]*tally, len(lk.Branches()))
	for _, b := range lk.Branches() {
		tallies[b.BranchID] = &tally{}
	}
	for _, t := range txns {
		if a, ok := tallies[t.BranchID]; ok {
			a.add(t)
		}
	}

	out := make([]BranchPerformance, 0, len(tallies))
	for _, b := range lk.Branches() {
		a := tallies[b.BranchID]
		if a == nil {
			continue
		}
		target := branchTargets[b.BranchID]
		out = append(out, BranchPerformance{
			BranchID:           b.BranchID,
			BranchName:         b.Name,
			Region:             b.Region,
			Country:            b.Country,
			TotalRevenue:       a.revenueValue(),
			TotalLeads:         a.total,
			ClosedLeads:        a.closed,
			ConversionRate:     a.conversion(),
			AvgTAT:             a.avgTAT(),
			Target:             target,
			AchievementPercent: achievement(a.revenueValue(), target),
		})
		delete(tallies, b.BranchID)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalRevenue != out[j].TotalRevenue {
			return out[i].TotalRevenue > out[j].TotalRevenue
		}
		return out[i].BranchID < out[j].BranchID
	})
	return out
}

// RankCountries groups txns by the country of their branch. Records whose
// branch is not in the lookup are left out.
func RankCountries(txns []model.Transaction, lk *Lookup, branchTargets map[string]float64) []CountryPerformance {
	tallies := map[string]*tally{}
	branchCount := map[string]int{}
	targets := map[string][]float64{}
	for _, b := range lk.Branches() {
		if tallies[b.Country] == nil {
			tallies[b.Country] = &tally{}
		}
		branchCount[b.Country]++
		targets[b.Country] = append(targets[b.Country], branchTargets[b.BranchID])
	}
	for _, t := range txns {
		country, ok := lk.Country(t.BranchID)
		if !ok {
			continue
		}
		tallies[country].add(t)
	}

	out := make([]CountryPerformance, 0, len(tallies))
	for country, a := range tallies {
		target := toFloat(sumAmounts(targets[country]...))
		out = append(out, CountryPerformance{
			Country:            country,
			TotalRevenue:       a.revenueValue(),
			TotalLeads:         a.total,
			ClosedLeads:        a.closed,
			ConversionRate:     a.conversion(),
			AvgTAT:             a.avgTAT(),
			Target:             target,
			AchievementPercent: achievement(a.revenueValue(), target),
			BranchCount:        branchCount[country],
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalRevenue != out[j].TotalRevenue {
			return out[i].TotalRevenue > out[j].TotalRevenue
		}
		return out[i].Country < out[j].Country
	})
	return out
}

// TopPerformingAgents keeps agents with at least one lead, ordered by
// conversion rate, then closed leads, then id.
func TopPerformingAgents(agents []AgentPerformance, limit int) []TopAgent {
	active := make([]AgentPerformance, 0, len(agents))
	for _, a := range agents {
		if a.TotalLeads > 0 {
			active = append(active, a)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		if active[i].ConversionRate != active[j].ConversionRate {
			return active[i].ConversionRate > active[j].ConversionRate
		}
		if active[i].ClosedLeads != active[j].ClosedLeads {
			return active[i].ClosedLeads > active[j].ClosedLeads
		}
		return active[i].UserID < active[j].UserID
	})
	if len(active) > limit {
		active = active[:limit]
	}

	out := make([]TopAgent, 0, len(active))
	for _, a := range active {
		branch := Placeholder
		if a.BranchName != nil {
			branch = *a.BranchName
		}
		out = append(out, TopAgent{
			AgentID:        a.UserID,
			AgentName:      a.Name,
			TurnaroundTime: a.AvgTAT,
			ConversionRate: a.ConversionRate,
			BranchName:     branch,
		})
	}
	return out
}

// ReleasedLeaderboard lists agents with at least one lead by closed revenue.
func ReleasedLeaderboard(agents []AgentPerformance, limit int) []ReleasedAmount {
	active := make([]AgentPerformance, 0, len(agents))
	for _, a := range agents {
		if a.TotalLeads > 0 {
			active = append(active, a)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		if active[i].TotalRevenue != active[j].TotalRevenue {
			return active[i].TotalRevenue > active[j].TotalRevenue
		}
		return active[i].UserID < active[j].UserID
	})
	if len(active) > limit {
		active = active[:limit]
	}

	out := make([]ReleasedAmount, 0, len(active))
	for _, a := range active {
		out = append(out, ReleasedAmount{AgentID: a.UserID, AgentName: a.Name, ReleasedAmount: a.TotalRevenue})
	}
	return out
}

// BranchLeaderboard compares each branch against the previous window.
// Both rankings must come from the same lookup.
func BranchLeaderboard(current, previous []BranchPerformance) []BranchLeaderboardEntry {
	prev := make(map[string]BranchPerformance, len(previous))
	for _, p := range previous {
		prev[p.BranchID] = p
	}

	out := make([]BranchLeaderboardEntry, 0, len(current))
	for _, b := range current {
		p := prev[b.BranchID]
		out = append(out, BranchLeaderboardEntry{
			ID:               b.BranchID,
			Name:             b.BranchName,
			TargetKES:        b.Target,
			Current:          b.ClosedLeads,
			Previous:         p.ClosedLeads,
			Realised:         b.TotalRevenue,
			RealisedPrevious: p.TotalRevenue,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Realised != out[j].Realised {
			return out[i].Realised > out[j].Realised
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func CountryLeaderboard(current, previous []CountryPerformance) []CountryLeaderboardEntry {
	prev := make(map[string]float64, len(previous))
	for _, p := range previous {
		prev[p.Country] = p.TotalRevenue
	}

	out := make([]CountryLeaderboardEntry, 0, len(current))
	for _, c := range current {
		out = append(out, CountryLeaderboardEntry{
			ID:               c.Country,
			Country:          c.Country,
			Realised:         c.TotalRevenue,
			PreviousRealised: prev[c.Country],
			BranchCount:      c.BranchCount,
		})
	}
	return out
}
