package chaucha

import "github.com/google/uuid"

// StorageKey is the key under which the profile document is persisted.
// The suffix is the schema generation.
const StorageKey = "chaucha_data_v2"

// Icons and colors used by the add flows.
const (
	IconOnboardingExpense = "receipt_long"
	IconBudgetExpense     = "calendar_today"
	IconGoal              = "flag"
	ColorGoal             = "bg-black"
)

// demoTransactions seeds a fresh profile so that the budget has something to show.
var demoTransactions = []Transaction{
	{ID: "t1", Date: "2023-10-20", Description: "Uber Eats", Amount: -12500, Category: "Alimentación", IsFixed: false},
	{ID: "t2", Date: "2023-10-19", Description: "Starbucks", Amount: -4200, Category: "Ocio", IsFixed: false},
	{ID: "t3", Date: "2023-10-18", Description: "Jumbo", Amount: -45000, Category: "Alimentación", IsFixed: false},
	{ID: "t4", Date: "2023-10-18", Description: "Copec", Amount: -25000, Category: "Transporte", IsFixed: false},
	{ID: "t5", Date: "2023-10-15", Description: "Netflix", Amount: -8500, Category: "Entretenimiento", IsFixed: true},
	{ID: "t6", Date: "2023-10-12", Description: "Zara", Amount: -35990, Category: "Compras", IsFixed: false},
	{ID: "t7", Date: "2023-10-10", Description: "Farmacia Cruz Verde", Amount: -12990, Category: "Salud", IsFixed: false},
}

// DemoTransactions returns a copy of the transactions seeded in a fresh profile.
func DemoTransactions() []Transaction {
	txs := make([]Transaction, len(demoTransactions))
	copy(txs, demoTransactions)
	return txs
}

// DefaultUserData returns the profile of a fresh install: empty, not
// configured, with the demo transactions.
func DefaultUserData() UserData {
	return UserData{
		FixedExpenses: []FixedExpense{},
		Goals:         []Goal{},
		Transactions:  DemoTransactions(),
	}
}

// DefaultOnboardingExpenses returns the fixed expenses suggested during onboarding.
func DefaultOnboardingExpenses() []FixedExpense {
	return []FixedExpense{
		{ID: NewID(), Name: "Arriendo", Amount: 450000, Icon: "home"},
		{ID: NewID(), Name: "Plan Celular", Amount: 15000, Icon: "smartphone"},
	}
}

// NewID returns a new collision-free identifier for expenses, goals and transactions.
func NewID() string { return uuid.NewString() }

// NewFixedExpense returns an unpaid fixed expense with a fresh id.
func NewFixedExpense(name string, amount Amount, icon string) FixedExpense {
	return FixedExpense{ID: NewID(), Name: name, Amount: amount, Icon: icon}
}

// NewGoal returns a savings goal with a fresh id and nothing saved yet.
func NewGoal(name string, target Amount) Goal {
	return Goal{
		ID:           NewID(),
		Name:         name,
		TargetAmount: target,
		Type:         GoalSavings,
		Icon:         IconGoal,
		Color:        ColorGoal,
	}
}
