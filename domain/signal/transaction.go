package signal

import "lifelens/domain/core"

// Spending groups. Needs is an explicit opt-in tag; anything else that is not
// income counts as discretionary ("Wants"). A transaction with a missing or
// unrecognized group is therefore counted as Wants. Stakeholders have
// accepted this permissive default as policy.
const (
	GroupIncome = "Income"
	GroupNeeds  = "Needs"
	GroupWants  = "Wants"
)

// Transaction is a single raw ledger row from an uploaded export.
// Amount is positive for outflow; income rows may arrive with either sign
// and are always summed by absolute value.
type Transaction struct {
	Date     core.DateKey `json:"date"`
	Amount   float64      `json:"amount"`
	Group    string       `json:"group,omitempty"`
	Category string       `json:"category,omitempty"`
	Merchant string       `json:"merchant,omitempty"`
}

// IsIncome reports whether the row is labeled income by group or category.
func (t Transaction) IsIncome() bool {
	return t.Group == GroupIncome || t.Category == GroupIncome
}

// IsNeeds reports whether the row carries the explicit Needs tag.
func (t Transaction) IsNeeds() bool {
	return t.Group == GroupNeeds
}
