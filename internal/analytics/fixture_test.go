package analytics

import (
	"time"

	"github.com/ianSurii/optimus-lead-management-dashboard/internal/model"
)

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func fixedClock(s string) func() time.Time {
	return func() time.Time { return date(s).Add(15 * time.Hour) }
}

func txn(id, branch, user string, amount float64, status, created string, closed ...string) model.Transaction {
	t := model.Transaction{
		ID:           id,
		BranchID:     branch,
		UserID:       user,
		ProductID:    "P1",
		CampaignID:   "C1",
		SegmentID:    "S1",
		CustomerName: "Customer " + id,
		Amount:       amount,
		Status:       status,
		Date:         date(created),
	}
	if len(closed) > 0 {
		t.ClosedDate = datePtr(closed[0])
	}
	return t
}

func testLookups() model.Lookups {
	return model.Lookups{
		Branches: []model.Branch{
			{BranchID: "B1", Name: "Nairobi CBD", Region: "Central", Country: "Kenya"},
			{BranchID: "B2", Name: "Mombasa", Region: "Coast", Country: "Kenya"},
			{BranchID: "B3", Name: "Kampala", Region: "Central", Country: "Uganda"},
		},
		Users: []model.Agent{
			{UserID: "U1", FirstName: "Amina", LastName: "Otieno", Role: "Agent"},
			{UserID: "U2", FirstName: "Brian", LastName: "Mwangi", Role: "Agent"},
			{UserID: "U3", FirstName: "Carol", LastName: "Nakato", Role: "Agent"},
		},
		Products:  []model.Product{{ProductID: "P1", Name: "Personal Loan"}, {ProductID: "P2", Name: "Insurance"}},
		Campaigns: []model.Campaign{{CampaignID: "C1", Name: "Q1 Push"}},
		Segments:  []model.Segment{{SegmentID: "S1", Name: "Retail"}},
	}
}

func testSnapshot() *model.Snapshot {
	return &model.Snapshot{
		Transactions: []model.Transaction{
			txn("T1", "B1", "U1", 100, model.StatusClosed, "2024-01-25", "2024-01-27"),
			txn("T2", "B1", "U1", 50, model.StatusOpen, "2024-01-26"),
			txn("T3", "B2", "U2", 300, model.StatusProductSold, "2024-01-28", "2024-01-29"),
			txn("T4", "B2", "U2", 80, model.StatusCallbackLater, "2024-01-30"),
			txn("T5", "B3", "U3", 200, model.StatusRejected, "2024-01-31"),
			txn("T6", "B9", "U1", 70, model.StatusClosed, "2024-01-31", "2024-01-31"),
			// previous window
			txn("T7", "B1", "U1", 40, model.StatusClosed, "2023-12-20", "2023-12-22"),
			txn("T8", "B3", "U3", 60, model.StatusOpen, "2023-12-15"),
		},
		Lookups: testLookups(),
		RevenueTargets: []model.RevenueTarget{
			{UserID: "U1", Month: "2024-01", TargetAmount: 1000},
			{UserID: "U2", Month: "2024-01", TargetAmount: 600},
			{UserID: "U2", Month: "2023-12", TargetAmount: 9999},
		},
		Session: model.Session{
			Profile: model.UserProfile{UserID: "U1", FirstName: "Amina", LastName: "Otieno", PrimaryBranchID: "B2"},
		},
	}
}
