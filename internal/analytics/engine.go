package analytics

import (
	"time"

	"github.com/ianSurii/optimus-lead-management-dashboard/internal/model"
)

const (
	DefaultKPIWindowDays  = 31
	DefaultTransactionCap = 50

	// TrendWindowDays is the fixed length of every daily series.
	TrendWindowDays = 7
)

// Engine computes dashboard payloads from an immutable snapshot. It holds
// no state between calls and is safe for concurrent use.
type Engine struct {
	now      func() time.Time
	kpiDays  int
	txnLimit int
}

type Option func(*Engine)

// WithClock replaces the wall clock used when a request has no date.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithKPIWindow sets the main window length in days. The daily series
// always cover TrendWindowDays.
func WithKPIWindow(days int) Option {
	return func(e *Engine) { e.kpiDays = days }
}

// WithTransactionLimit caps transaction_list. Zero or less means no cap.
func WithTransactionLimit(n int) Option {
	return func(e *Engine) { e.txnLimit = n }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now:      time.Now,
		kpiDays:  DefaultKPIWindowDays,
		txnLimit: DefaultTransactionCap,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type FilterOptions struct {
	Applied            map[string]string `json:"applied"`
	AvailableBranches  []model.Branch    `json:"available_branches"`
	AvailableUsers     []model.Agent     `json:"available_users"`
	AvailableCampaigns []model.Campaign  `json:"available_campaigns"`
	AvailableSegments  []model.Segment   `json:"available_segments"`
	AvailableProducts  []model.Product   `json:"available_products"`
}

type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Summary struct {
	TotalRecords int       `json:"total_records"`
	DateRange    DateRange `json:"date_range"`
}

type DashboardResult struct {
	Filters                  FilterOptions             `json:"filters"`
	KPIMetrics               []KPI                     `json:"kpi_metrics"`
	LeadVsConversion         LeadVsConversion          `json:"lead_vs_conversion"`
	RevenueVsTarget          RevenueVsTarget           `json:"revenue_vs_target"`
	BranchAgentRankings      []BranchLeaderboardEntry  `json:"branch_agent_rankings"`
	CountryRankings          []CountryLeaderboardEntry `json:"country_rankings"`
	AgentPerformanceReleased []ReleasedAmount          `json:"agent_performance_released"`
	TopPerformingAgents      []TopAgent                `json:"top_performing_agents"`
	TransactionList          []TransactionRow          `json:"transaction_list"`
	Charts                   Charts                    `json:"charts"`
	AgentPerformance         []AgentPerformance        `json:"agent_performance"`
	BranchPerformance        []BranchPerformance       `json:"branch_performance"`
	CountryRanking           []CountryPerformance      `json:"country_ranking"`
	Recommendations          []Recommendation          `json:"recommendations"`
	Rankings                 Positions                 `json:"rankings"`
	Summary                  Summary                   `json:"summary"`
}

// Window resolves the main reporting window of a request.
func (e *Engine) Window(f Filters) (Window, error) {
	return ResolveWindow(f, e.now(), e.kpiDays)
}

// ComputeDashboard builds the full payload for f. A nil snapshot yields
// ErrDataUnavailable and a bad date range ErrInvalidWindow; every other
// edge case degrades to zero values.
func (e *Engine) ComputeDashboard(snap *model.Snapshot, f Filters) (*DashboardResult, error) {
	if snap == nil {
		return nil, ErrDataUnavailable
	}
	w, err := e.Window(f)
	if err != nil {
		return nil, err
	}
	trendW, err := Resolve(w.End, TrendWindowDays)
	if err != nil {
		return nil, err
	}

	lk := NewLookup(snap.Lookups)
	c := newCriteria(f)
	prevW := w.Previous()
	current := filterTransactions(snap.Transactions, w, c, lk)
	previous := filterTransactions(snap.Transactions, prevW, c, lk)
	recent := filterTransactions(snap.Transactions, trendW, c, lk)

	curKPI := CalculateKPIs(current)
	prevKPI := CalculateKPIs(previous)

	targets := NewTargets(snap.RevenueTargets)
	month := MonthKey(w.End)
	agents := RankAgents(current, lk, targets, month)
	branchTargets := BranchTargets(current, agents)
	branches := RankBranches(current, lk, branchTargets)
	countries := RankCountries(current, lk, branchTargets)
	prevBranches := RankBranches(previous, lk, nil)
	prevCountries := RankCountries(previous, lk, nil)

	rollup := Rollup(recent, trendW, lk)
	recentAgents := RankAgents(recent, lk, targets, month)
	recentTargets := BranchTargets(recent, recentAgents)

	rows := Denormalize(current, lk)
	if e.txnLimit > 0 && len(rows) > e.txnLimit {
		rows = rows[:e.txnLimit]
	}

	dims := lk.Dimensions()
	return &DashboardResult{
		Filters: FilterOptions{
			Applied:            f.Applied(),
			AvailableBranches:  orEmpty(dims.Branches),
			AvailableUsers:     orEmpty(dims.Users),
			AvailableCampaigns: orEmpty(dims.Campaigns),
			AvailableSegments:  orEmpty(dims.Segments),
			AvailableProducts:  orEmpty(dims.Products),
		},
		KPIMetrics:               CompareKPIs(curKPI, prevKPI),
		LeadVsConversion:         rollup,
		RevenueVsTarget:          RevenueAgainstTarget(rollup, recentTargets),
		BranchAgentRankings:      BranchLeaderboard(branches, prevBranches),
		CountryRankings:          CountryLeaderboard(countries, prevCountries),
		AgentPerformanceReleased: ReleasedLeaderboard(agents, ReleasedLimit),
		TopPerformingAgents:      TopPerformingAgents(recentAgents, TopAgentsLimit),
		TransactionList:          rows,
		Charts: Charts{
			StatusBreakdown:      StatusBreakdown(current),
			RevenueByProduct:     RevenueByProduct(current, lk),
			RevenueByBranch7Days: RevenueByBranch(rollup, lk),
		},
		AgentPerformance:  agents,
		BranchPerformance: branches,
		CountryRanking:    countries,
		Recommendations:   Recommend(curKPI, prevKPI, agents, branches),
		Rankings:          RankPositions(snap.Session.Profile.PrimaryBranchID, branches, countries, lk),
		Summary: Summary{
			TotalRecords: len(current),
			DateRange:    DateRange{From: w.Start.Format(DateLayout), To: w.End.Format(DateLayout)},
		},
	}, nil
}

// Transactions returns the complete denormalized list for f, without the
// transaction_list cap.
func (e *Engine) Transactions(snap *model.Snapshot, f Filters) ([]TransactionRow, Window, error) {
	if snap == nil {
		return nil, Window{}, ErrDataUnavailable
	}
	w, err := e.Window(f)
	if err != nil {
		return nil, Window{}, err
	}
	lk := NewLookup(snap.Lookups)
	return Denormalize(FilterTransactions(snap.Transactions, w, f, lk), lk), w, nil
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
