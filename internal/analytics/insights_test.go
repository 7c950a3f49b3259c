package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend(t *testing.T) {
	t.Run("nothing to flag", func(t *testing.T) {
		recs := Recommend(KPISet{}, KPISet{}, nil, nil)
		require.Len(t, recs, 1)
		assert.Equal(t, "On track", recs[0].Title)
	})

	t.Run("low conversion and slow turnaround", func(t *testing.T) {
		cur := KPISet{TotalLeads: 20, ClosedLeads: 2, ConversionRate: 10, AvgTurnaround: 9.5}
		recs := Recommend(cur, KPISet{}, nil, nil)
		require.Len(t, recs, 2)
		assert.Equal(t, "conversion_rate", recs[0].Metric)
		assert.Equal(t, SeverityHigh, recs[0].Severity)
		assert.Equal(t, "avg_tat", recs[1].Metric)
	})

	t.Run("slipping conversion", func(t *testing.T) {
		recs := Recommend(KPISet{TotalLeads: 10, ConversionRate: 40}, KPISet{ConversionRate: 60}, nil, nil)
		require.Len(t, recs, 1)
		assert.Equal(t, SeverityMedium, recs[0].Severity)
	})

	t.Run("branches and agents", func(t *testing.T) {
		branches := []BranchPerformance{
			{BranchID: "B2", BranchName: "Mombasa", TotalRevenue: 300, Target: 600, AchievementPercent: 50},
			{BranchID: "B1", BranchName: "Nairobi CBD", TotalRevenue: 100, Target: 1000, AchievementPercent: 10},
		}
		agents := []AgentPerformance{{UserID: "U9", Name: "Idle Agent", TotalLeads: 6}}

		recs := Recommend(KPISet{TotalLeads: 10, ConversionRate: 30}, KPISet{}, agents, branches)
		titles := make([]string, len(recs))
		for i, r := range recs {
			titles[i] = r.Title
		}
		assert.Equal(t, []string{"Nairobi CBD is behind target", "Coach Idle Agent", "Share practices from Mombasa"}, titles)
	})
}

func TestRankPositions(t *testing.T) {
	_, branches, countries := rankFixture(t)
	lk := NewLookup(testLookups())

	assert.Equal(t, Positions{BranchRanking: 1, CountryRanking: 1}, RankPositions("B2", branches, countries, lk))
	assert.Equal(t, Positions{BranchRanking: 3, CountryRanking: 2}, RankPositions("B3", branches, countries, lk))
	assert.Equal(t, Positions{}, RankPositions("B404", branches, countries, lk))
}
