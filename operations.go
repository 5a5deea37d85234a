package chaucha

import (
	"fmt"
	"slices"
	"strings"
)

// this file contains the explicit operations on the profile. Each one checks
// its own arguments and then goes through the same mutate path as Update.

// Onboarding holds everything the user fills in before using the app.
type Onboarding struct {
	Name            string         `json:"name"`
	MonthlyIncome   Amount         `json:"monthlyIncome"`
	CurrentBalance  Amount         `json:"currentBalance"`
	CreditCardUsed  Amount         `json:"creditCardUsed"`
	CreditCardLimit Amount         `json:"creditCardLimit"`
	FixedExpenses   []FixedExpense `json:"fixedExpenses"`
}

// CompleteOnboarding stores the onboarding answers and marks the profile as configured.
func (s *Store) CompleteOnboarding(o Onboarding) error {
	if strings.TrimSpace(o.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalid)
	}
	if err := validateCreditCard(o.CreditCardUsed, o.CreditCardLimit); err != nil {
		return err
	}
	for _, e := range o.FixedExpenses {
		if err := validateExpense(e); err != nil {
			return err
		}
	}
	_, err := s.mutate("complete onboarding", func(u *UserData) error {
		u.Name = o.Name
		u.MonthlyIncome = o.MonthlyIncome
		u.CurrentBalance = o.CurrentBalance
		u.CreditCardUsed = o.CreditCardUsed
		u.CreditCardLimit = o.CreditCardLimit
		u.FixedExpenses = slices.Clone(o.FixedExpenses)
		if u.FixedExpenses == nil {
			u.FixedExpenses = []FixedExpense{}
		}
		u.IsConfigured = true
		return nil
	})
	return err
}

// AddExpense appends e to the fixed expenses.
func (s *Store) AddExpense(e FixedExpense) error {
	if err := validateExpense(e); err != nil {
		return err
	}
	_, err := s.mutate("add expense", func(u *UserData) error {
		u.FixedExpenses = append(u.FixedExpenses, e)
		return nil
	})
	return err
}

// RemoveExpense removes the fixed expense id. Nothing happens if there is no such expense.
func (s *Store) RemoveExpense(id string) error {
	_, err := s.mutate("remove expense", func(u *UserData) error {
		n := len(u.FixedExpenses)
		u.FixedExpenses = slices.DeleteFunc(u.FixedExpenses, func(e FixedExpense) bool { return e.ID == id })
		if len(u.FixedExpenses) == n {
			return errUnchanged
		}
		return nil
	})
	return err
}

// ResetPaid marks every fixed expense as unpaid, as at the start of a new month.
func (s *Store) ResetPaid() error {
	_, err := s.mutate("reset paid", func(u *UserData) error {
		changed := false
		for i := range u.FixedExpenses {
			if u.FixedExpenses[i].Paid {
				u.FixedExpenses[i].Paid = false
				changed = true
			}
		}
		if !changed {
			return errUnchanged
		}
		return nil
	})
	return err
}

// RemoveGoal removes the goal id. Nothing happens if there is no such goal.
func (s *Store) RemoveGoal(id string) error {
	_, err := s.mutate("remove goal", func(u *UserData) error {
		n := len(u.Goals)
		u.Goals = slices.DeleteFunc(u.Goals, func(g Goal) bool { return g.ID == id })
		if len(u.Goals) == n {
			return errUnchanged
		}
		return nil
	})
	return err
}

// SetName changes the user's display name.
func (s *Store) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalid)
	}
	_, err := s.Update(Patch{Name: &name})
	return err
}

// SetIncome changes the monthly income.
func (s *Store) SetIncome(income Amount) error {
	_, err := s.Update(Patch{MonthlyIncome: &income})
	return err
}

// SetBalance changes the current account balance.
func (s *Store) SetBalance(balance Amount) error {
	_, err := s.Update(Patch{CurrentBalance: &balance})
	return err
}

// SetCreditCard changes the credit card figures. Being over the limit is allowed.
func (s *Store) SetCreditCard(used, limit Amount) error {
	if err := validateCreditCard(used, limit); err != nil {
		return err
	}
	_, err := s.Update(Patch{CreditCardUsed: &used, CreditCardLimit: &limit})
	return err
}

// AddTransaction records tx as the newest transaction.
func (s *Store) AddTransaction(tx Transaction) error {
	if tx.ID == "" {
		return fmt.Errorf("%w: transaction id must not be empty", ErrInvalid)
	}
	return s.ImportTransactions([]Transaction{tx})
}

// ImportTransactions puts txs in front of the existing transactions, in the
// given order. Records are neither validated nor deduplicated.
func (s *Store) ImportTransactions(txs []Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	_, err := s.mutate("import transactions", func(u *UserData) error {
		u.Transactions = append(slices.Clone(txs), u.Transactions...)
		return nil
	})
	return err
}

func validateExpense(e FixedExpense) error {
	switch {
	case e.ID == "":
		return fmt.Errorf("%w: expense id must not be empty", ErrInvalid)
	case strings.TrimSpace(e.Name) == "":
		return fmt.Errorf("%w: expense name must not be empty", ErrInvalid)
	case e.Amount <= 0:
		return fmt.Errorf("%w: expense %q amount must be positive, got %d", ErrInvalid, e.Name, e.Amount)
	}
	return nil
}

func validateGoal(g Goal) error {
	switch {
	case g.ID == "":
		return fmt.Errorf("%w: goal id must not be empty", ErrInvalid)
	case strings.TrimSpace(g.Name) == "":
		return fmt.Errorf("%w: goal name must not be empty", ErrInvalid)
	case g.TargetAmount <= 0:
		return fmt.Errorf("%w: goal %q target must be positive, got %d", ErrInvalid, g.Name, g.TargetAmount)
	case !g.Type.Valid():
		return fmt.Errorf("%w: goal %q has unknown type %q", ErrInvalid, g.Name, g.Type)
	}
	return nil
}

func validateCreditCard(used, limit Amount) error {
	if used < 0 {
		return fmt.Errorf("%w: credit card used must not be negative, got %d", ErrInvalid, used)
	}
	if limit < 0 {
		return fmt.Errorf("%w: credit card limit must not be negative, got %d", ErrInvalid, limit)
	}
	return nil
}
