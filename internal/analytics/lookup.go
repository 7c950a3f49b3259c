package analytics

import "github.com/ianSurii/optimus-lead-management-dashboard/internal/model"

// Placeholder is shown for any dimension id that has no lookup entry.
const Placeholder = "N/A"

// Lookup is a read-only index over the reference dimensions.
type Lookup struct {
	src       model.Lookups
	branches  map[string]model.Branch
	agents    map[string]model.Agent
	products  map[string]string
	campaigns map[string]string
	segments  map[string]string
}

func NewLookup(l model.Lookups) *Lookup {
	lk := &Lookup{
		src:       l,
		branches:  make(map[string]model.Branch, len(l.Branches)),
		agents:    make(map[string]model.Agent, len(l.Users)),
		products:  make(map[string]string, len(l.Products)),
		campaigns: make(map[string]string, len(l.Campaigns)),
		segments:  make(map[string]string, len(l.Segments)),
	}
	for _, b := range l.Branches {
		lk.branches[b.BranchID] = b
	}
	for _, a := range l.Users {
		lk.agents[a.UserID] = a
	}
	for _, p := range l.Products {
		lk.products[p.ProductID] = p.Name
	}
	for _, c := range l.Campaigns {
		lk.campaigns[c.CampaignID] = c.Name
	}
	for _, s := range l.Segments {
		lk.segments[s.SegmentID] = s.Name
	}
	return lk
}

func (l *Lookup) Branch(id string) (model.Branch, bool) {
	b, ok := l.branches[id]
	return b, ok
}

func (l *Lookup) Agent(id string) (model.Agent, bool) {
	a, ok := l.agents[id]
	return a, ok
}

// Country resolves a branch id to its country through the branch dimension.
func (l *Lookup) Country(branchID string) (string, bool) {
	b, ok := l.branches[branchID]
	if !ok {
		return "", false
	}
	return b.Country, true
}

func (l *Lookup) BranchName(id string) string {
	if b, ok := l.branches[id]; ok {
		return b.Name
	}
	return Placeholder
}

func (l *Lookup) AgentName(id string) string {
	if a, ok := l.agents[id]; ok {
		return a.FullName()
	}
	return Placeholder
}

func (l *Lookup) ProductName(id string) string  { return nameOr(l.products, id) }
func (l *Lookup) CampaignName(id string) string { return nameOr(l.campaigns, id) }
func (l *Lookup) SegmentName(id string) string  { return nameOr(l.segments, id) }
func (l *Lookup) Branches() []model.Branch      { return l.src.Branches }
func (l *Lookup) Agents() []model.Agent         { return l.src.Users }
func (l *Lookup) Products() []model.Product     { return l.src.Products }
func (l *Lookup) Dimensions() model.Lookups     { return l.src }

func nameOr(m map[string]string, id string) string {
	if n, ok := m[id]; ok {
		return n
	}
	return Placeholder
}
