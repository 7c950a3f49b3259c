package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/ianSurii/optimus-lead-management-dashboard/internal/model"
)

type ChartDataset struct {
	Label           string    `json:"label,omitempty"`
	Data            []float64 `json:"data"`
	BackgroundColor []string  `json:"backgroundColor,omitempty"`
	BorderColor     string    `json:"borderColor,omitempty"`
}

type ChartData struct {
	Type     string         `json:"type"`
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

type Charts struct {
	StatusBreakdown      ChartData `json:"status_breakdown"`
	RevenueByProduct     ChartData `json:"revenue_by_product"`
	RevenueByBranch7Days ChartData `json:"revenue_by_branch_7days"`
}

var statusColors = map[string]string{
	model.StatusOpen:          "#94A3B8",
	model.StatusProcessing:    "#38BDF8",
	model.StatusCallbackLater: "#A78BFA",
	model.StatusProductSold:   "#22C55E",
	model.StatusClosed:        "#4ADE80",
	model.StatusRejected:      "#EF4444",
	model.StatusPending:       "#FDE047",
}

// StatusBreakdown counts records per status in the fixed status order.
// Unknown statuses are not charted.
func StatusBreakdown(txns []model.Transaction) ChartData {
	counts := make(map[string]int, len(model.Statuses))
	for _, t := range txns {
		counts[t.Status]++
	}
	data := make([]float64, len(model.Statuses))
	colors := make([]string, len(model.Statuses))
	for i, s := range model.Statuses {
		data[i] = float64(counts[s])
		colors[i] = statusColors[s]
	}
	return ChartData{
		Type:     "doughnut",
		Labels:   append([]string(nil), model.Statuses...),
		Datasets: []ChartDataset{{Label: "Lead Count", Data: data, BackgroundColor: colors}},
	}
}

// RevenueByProduct sums closed revenue per lookup product.
func RevenueByProduct(txns []model.Transaction, lk *Lookup) ChartData {
	sums := map[string]decimal.Decimal{}
	for _, t := range txns {
		if t.IsClosed() {
			sums[t.ProductID] = sums[t.ProductID].Add(decimal.NewFromFloat(t.Amount))
		}
	}
	products := lk.Products()
	labels := make([]string, len(products))
	data := make([]float64, len(products))
	for i, p := range products {
		labels[i] = p.Name
		data[i] = toFloat(sums[p.ProductID])
	}
	return ChartData{
		Type:     "bar",
		Labels:   labels,
		Datasets: []ChartDataset{{Label: "Revenue", Data: data, BorderColor: "#3B82F6"}},
	}
}

// RevenueByBranch totals the daily revenue series of a rollup per branch in
// lookup order.
func RevenueByBranch(r LeadVsConversion, lk *Lookup) ChartData {
	branches := lk.Branches()
	labels := make([]string, 0, len(branches))
	data := make([]float64, 0, len(branches))
	for _, b := range branches {
		d, ok := r.Branches[b.BranchID]
		if !ok {
			continue
		}
		labels = append(labels, b.Name)
		data = append(data, toFloat(sumAmounts(d.DailyRevenue...)))
	}
	return ChartData{
		Type:     "bar",
		Labels:   labels,
		Datasets: []ChartDataset{{Label: "Revenue (7 days)", Data: data, BorderColor: "#10B981"}},
	}
}
