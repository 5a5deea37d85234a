package chaucha

import (
	"slices"

	"github.com/etnz/chaucha/date"
)

// UserData is the root aggregate: one user's complete financial profile.
//
// JSON names are part of the persisted format and must not change.
type UserData struct {
	Name            string         `json:"name"` // empty until onboarding
	MonthlyIncome   Amount         `json:"monthlyIncome"`
	CurrentBalance  Amount         `json:"currentBalance"`
	CreditCardUsed  Amount         `json:"creditCardUsed"`
	CreditCardLimit Amount         `json:"creditCardLimit"`
	FixedExpenses   []FixedExpense `json:"fixedExpenses"`
	Goals           []Goal         `json:"goals"`
	Transactions    []Transaction  `json:"transactions"` // newest first by convention
	IsConfigured    bool           `json:"isConfigured"`
}

// Clone returns a deep copy of u, so that the copy can be modified without
// affecting u.
func (u UserData) Clone() UserData {
	u.FixedExpenses = slices.Clone(u.FixedExpenses)
	u.Goals = slices.Clone(u.Goals)
	u.Transactions = slices.Clone(u.Transactions)
	return u
}

// FixedExpense is a recurring monthly outflow, like the rent.
type FixedExpense struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount Amount `json:"amount"`
	Icon   string `json:"icon"`
	Paid   bool   `json:"paid"`
}

// GoalType classifies a Goal.
type GoalType string

const (
	GoalSavings    GoalType = "savings"    // emergency fund
	GoalInvestment GoalType = "investment" // money set aside to invest
	GoalPurchase   GoalType = "purchase"   // a car, a trip...
)

// Valid reports whether t is one of the known goal types.
func (t GoalType) Valid() bool {
	switch t {
	case GoalSavings, GoalInvestment, GoalPurchase:
		return true
	}
	return false
}

// Goal is a savings target.
type Goal struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	TargetAmount  Amount   `json:"targetAmount"`
	CurrentAmount Amount   `json:"currentAmount"`
	Type          GoalType `json:"type"`
	Icon          string   `json:"icon"`
	Deadline      string   `json:"deadline,omitempty"` // informational only
	Color         string   `json:"color"`
}

// Progress returns how much of the target has been reached, capped at 100%.
func (g Goal) Progress() Percent {
	if g.TargetAmount <= 0 {
		return 0
	}
	p := share(g.CurrentAmount, g.TargetAmount)
	return min(p, 100)
}

// Reached reports whether the goal's target has been met.
func (g Goal) Reached() bool { return g.TargetAmount > 0 && g.CurrentAmount >= g.TargetAmount }

// Transaction is a single movement on the user's account.
type Transaction struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      Amount `json:"amount"`   // negative for an outflow
	Category    string `json:"category"` // free-form, grouped by exact match
	IsFixed     bool   `json:"isFixed"`  // part of a recurring fixed expense
}

// IsVariable reports whether tx is a discretionary outflow.
func (tx Transaction) IsVariable() bool { return !tx.IsFixed && tx.Amount < 0 }

// TransactionsIn returns the transactions of txs dated within r, in order.
// Transactions with an unreadable date are left out.
func TransactionsIn(txs []Transaction, r date.Range) []Transaction {
	var in []Transaction
	for _, tx := range txs {
		if d, err := date.Parse(tx.Date); err == nil && r.Contains(d) {
			in = append(in, tx)
		}
	}
	return in
}
