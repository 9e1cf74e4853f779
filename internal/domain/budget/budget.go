package budget

// Status classifies a month against the 50/30/20 rule.
type Status string

const (
	StatusOnTrack  Status = "on_track"
	StatusWarning  Status = "warning"
	StatusOffTrack Status = "off_track"
)

// Allocation reports spending in one bucket against its share of income.
type Allocation struct {
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
	Limit      float64 `json:"limit"`
}

// SavingsAllocation is like Allocation but savings carry a floor to reach,
// not a ceiling to stay under.
type SavingsAllocation struct {
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
	Target     float64 `json:"target"`
}

type Result struct {
	Income     float64           `json:"income"`
	TotalSpent float64           `json:"totalSpent"`
	Needs      Allocation        `json:"needs"`
	Wants      Allocation        `json:"wants"`
	Savings    SavingsAllocation `json:"savings"`
	Status     Status            `json:"status"`
	Warnings   []string          `json:"warnings"`
}
