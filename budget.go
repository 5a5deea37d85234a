package chaucha

// CreditWarningThreshold is the credit card usage above which the dashboard warns.
const CreditWarningThreshold Percent = 80

// RecentCount is the number of transactions shown on the dashboard.
const RecentCount = 5

// Budget is the monthly budget: income against fixed and variable expenses.
type Budget struct {
	Income        Amount            `json:"income"`
	TotalFixed    Amount            `json:"totalFixed"`
	PaidFixed     Amount            `json:"paidFixed"`
	PendingFixed  Amount            `json:"pendingFixed"`
	TotalVariable Amount            `json:"totalVariable"`
	TotalExpenses Amount            `json:"totalExpenses"`
	Remaining     Amount            `json:"remaining"` // negative when overspent
	FixedExpenses []FixedExpense    `json:"fixedExpenses"`
	Variable      []VariableExpense `json:"variable"`
}

// NewBudget computes the budget of u.
func NewBudget(u UserData) Budget {
	b := Budget{
		Income:        u.MonthlyIncome,
		FixedExpenses: u.Clone().FixedExpenses,
		Variable:      VariableExpenses(u.Transactions),
	}
	for _, e := range u.FixedExpenses {
		b.TotalFixed += e.Amount
		if e.Paid {
			b.PaidFixed += e.Amount
		} else {
			b.PendingFixed += e.Amount
		}
	}
	for _, v := range b.Variable {
		b.TotalVariable += v.Amount
	}
	b.TotalExpenses = b.TotalFixed + b.TotalVariable
	b.Remaining = b.Income - b.TotalExpenses
	return b
}

// Dashboard holds the figures shown on the home screen.
type Dashboard struct {
	Name            string        `json:"name"`
	Configured      bool          `json:"configured"`
	Available       Amount        `json:"available"` // balance minus credit card debt
	Balance         Amount        `json:"balance"`
	CreditUsed      Amount        `json:"creditUsed"`
	CreditLimit     Amount        `json:"creditLimit"`
	CreditAvailable Amount        `json:"creditAvailable"`
	CreditUsage     Percent       `json:"creditUsage"`
	CreditWarning   bool          `json:"creditWarning"`
	OverLimit       bool          `json:"overLimit"`
	Recent          []Transaction `json:"recent"`
}

// NewDashboard computes the dashboard of u.
func NewDashboard(u UserData) Dashboard {
	recent := u.Transactions
	if len(recent) > RecentCount {
		recent = recent[:RecentCount]
	}
	d := Dashboard{
		Name:            u.Name,
		Configured:      u.IsConfigured,
		Available:       u.CurrentBalance - u.CreditCardUsed,
		Balance:         u.CurrentBalance,
		CreditUsed:      u.CreditCardUsed,
		CreditLimit:     u.CreditCardLimit,
		CreditAvailable: u.CreditCardLimit - u.CreditCardUsed,
		CreditUsage:     share(u.CreditCardUsed, u.CreditCardLimit),
		OverLimit:       u.CreditCardUsed > u.CreditCardLimit,
		Recent:          append([]Transaction{}, recent...),
	}
	d.CreditWarning = d.OverLimit || d.CreditUsage > CreditWarningThreshold
	return d
}
