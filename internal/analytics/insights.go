package analytics

import "fmt"

const (
	SeverityHigh   = "HIGH"
	SeverityMedium = "MEDIUM"
	SeverityLow    = "LOW"
)

// Thresholds used by Recommend.
const (
	lowConversionRate  = 20.0
	slowTurnaroundDays = 7.0
	behindTargetPct    = 50.0
	idleAgentLeads     = 5
)

type Recommendation struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Severity    string  `json:"severity"`
	Metric      string  `json:"metric"`
	Value       float64 `json:"value"`
	Threshold   float64 `json:"threshold"`
}

// Positions of the session user's branch in the branch and country
// rankings. Zero means not ranked.
type Positions struct {
	BranchRanking  int `json:"branch_ranking"`
	CountryRanking int `json:"country_ranking"`
}

// Recommend derives rule-based recommendations from the KPIs and rankings
// of one request. The order is stable for identical inputs.
func Recommend(current, previous KPISet, agents []AgentPerformance, branches []BranchPerformance) []Recommendation {
	var out []Recommendation

	if current.TotalLeads > 0 && current.ConversionRate < lowConversionRate {
		out = append(out, Recommendation{
			Title:       "Improve lead conversion",
			Description: fmt.Sprintf("Only %.2f%% of %d leads closed in this period. Review follow-up scripts and prioritise warm leads.", current.ConversionRate, current.TotalLeads),
			Severity:    SeverityHigh,
			Metric:      "conversion_rate",
			Value:       current.ConversionRate,
			Threshold:   lowConversionRate,
		})
	} else if previous.ConversionRate > 0 && current.ConversionRate < previous.ConversionRate {
		out = append(out, Recommendation{
			Title:       "Conversion is slipping",
			Description: fmt.Sprintf("Conversion fell from %.2f%% to %.2f%% against the previous period.", previous.ConversionRate, current.ConversionRate),
			Severity:    SeverityMedium,
			Metric:      "conversion_rate",
			Value:       current.ConversionRate,
			Threshold:   previous.ConversionRate,
		})
	}

	if current.AvgTurnaround > slowTurnaroundDays {
		out = append(out, Recommendation{
			Title:       "Reduce turnaround time",
			Description: fmt.Sprintf("Closed deals take %.2f days on average. Aim to close within %.0f days.", current.AvgTurnaround, slowTurnaroundDays),
			Severity:    SeverityMedium,
			Metric:      "avg_tat",
			Value:       current.AvgTurnaround,
			Threshold:   slowTurnaroundDays,
		})
	}

	for _, b := range branches {
		if b.Target > 0 && b.AchievementPercent < behindTargetPct {
			out = append(out, Recommendation{
				Title:       fmt.Sprintf("%s is behind target", b.BranchName),
				Description: fmt.Sprintf("%s has realised %.2f%% of its %.2f target. Rebalance leads or add support.", b.BranchName, b.AchievementPercent, b.Target),
				Severity:    SeverityHigh,
				Metric:      "achievement_percent",
				Value:       b.AchievementPercent,
				Threshold:   behindTargetPct,
			})
		}
	}

	for _, a := range agents {
		if a.TotalLeads >= idleAgentLeads && a.ClosedLeads == 0 {
			out = append(out, Recommendation{
				Title:       fmt.Sprintf("Coach %s", a.Name),
				Description: fmt.Sprintf("%s has %d leads and no closed deals in this period.", a.Name, a.TotalLeads),
				Severity:    SeverityLow,
				Metric:      "closed_leads",
				Value:       0,
				Threshold:   idleAgentLeads,
			})
		}
	}

	if len(branches) > 0 && branches[0].TotalRevenue > 0 {
		top := branches[0]
		out = append(out, Recommendation{
			Title:       fmt.Sprintf("Share practices from %s", top.BranchName),
			Description: fmt.Sprintf("%s leads with %.2f in closed revenue at %.2f%% conversion.", top.BranchName, top.TotalRevenue, top.ConversionRate),
			Severity:    SeverityLow,
			Metric:      "total_revenue",
			Value:       top.TotalRevenue,
		})
	}

	if len(out) == 0 {
		out = append(out, Recommendation{
			Title:       "On track",
			Description: "No issues detected for the selected filters.",
			Severity:    SeverityLow,
		})
	}
	return out
}

// RankPositions finds branchID in the ranked branches and its country in
// the ranked countries, both 1-based.
func RankPositions(branchID string, branches []BranchPerformance, countries []CountryPerformance, lk *Lookup) Positions {
	var p Positions
	for i, b := range branches {
		if b.BranchID == branchID {
			p.BranchRanking = i + 1
			break
		}
	}
	country, ok := lk.Country(branchID)
	if !ok {
		return p
	}
	for i, c := range countries {
		if c.Country == country {
			p.CountryRanking = i + 1
			break
		}
	}
	return p
}
