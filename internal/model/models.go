package model

import (
	"time"
)

const (
	StatusOpen          = "Open"
	StatusProcessing    = "Processing"
	StatusCallbackLater = "To Callback Later"
	StatusProductSold   = "Product/Service Sold"
	StatusClosed        = "Closed"
	StatusRejected      = "Rejected"
	StatusPending       = "Pending"
)

// Statuses lists every lead status in display order.
var Statuses = []string{
	StatusOpen,
	StatusProcessing,
	StatusCallbackLater,
	StatusProductSold,
	StatusClosed,
	StatusRejected,
	StatusPending,
}

type Transaction struct {
	ID           string     `json:"txn_id"`
	BranchID     string     `json:"branch_id"`
	UserID       string     `json:"user_id"`
	ProductID    string     `json:"product_id"`
	CampaignID   string     `json:"campaign_id"`
	SegmentID    string     `json:"segment_id"`
	CustomerName string     `json:"customer_name"`
	Amount       float64    `json:"amount"`
	Status       string     `json:"status"`
	Date         time.Time  `json:"date"`
	ClosedDate   *time.Time `json:"closed_date,omitempty"`
}

// IsClosed reports whether the lead generated revenue.
func (t Transaction) IsClosed() bool {
	return t.Status == StatusClosed || t.Status == StatusProductSold
}

// IsContacted reports whether the customer was reached.
func (t Transaction) IsContacted() bool {
	return t.Status == StatusCallbackLater || t.IsClosed()
}

// IsOpen reports whether the lead is still in the pipeline.
func (t Transaction) IsOpen() bool {
	return !t.IsClosed() && t.Status != StatusRejected
}

type Branch struct {
	BranchID string `json:"branch_id"`
	Name     string `json:"name"`
	Region   string `json:"region"`
	Country  string `json:"country"`
}

type Agent struct {
	UserID    string `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

func (a Agent) FullName() string {
	return a.FirstName + " " + a.LastName
}

type Product struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
}

type Campaign struct {
	CampaignID string `json:"campaign_id"`
	Name       string `json:"name"`
}

type Segment struct {
	SegmentID string `json:"segment_id"`
	Name      string `json:"name"`
}

type Lookups struct {
	Branches  []Branch   `json:"branches"`
	Users     []Agent    `json:"users"`
	Products  []Product  `json:"products"`
	Campaigns []Campaign `json:"campaigns"`
	Segments  []Segment  `json:"segments"`
}

type RevenueTarget struct {
	UserID       string  `json:"user_id"`
	Month        string  `json:"month"`
	TargetAmount float64 `json:"target_amount"`
}

type UserProfile struct {
	UserID           string `json:"user_id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Role             string `json:"role"`
	ManagedProductID string `json:"managed_product_id,omitempty"`
	PrimaryBranchID  string `json:"primary_branch_id,omitempty"`
	ProfilePicURL    string `json:"profile_pic_url,omitempty"`
}

type Notification struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Link      string    `json:"link"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

type Banner struct {
	Active  bool   `json:"active"`
	Text    string `json:"text"`
	Style   string `json:"style"`
	LinkURL string `json:"link_url"`
}

type Session struct {
	Profile       UserProfile    `json:"user_profile"`
	Notifications []Notification `json:"notifications"`
	Banner        Banner         `json:"banner"`
}

// Snapshot is the immutable data set the analytics engine reads from.
// Nothing mutates a Snapshot after the provider has built it.
type Snapshot struct {
	Transactions   []Transaction   `json:"transactions"`
	Lookups        Lookups         `json:"lookups"`
	RevenueTargets []RevenueTarget `json:"revenue_targets"`
	Session        Session         `json:"session"`
	LoadedAt       time.Time       `json:"-"`
}
