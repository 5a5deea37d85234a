package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/chaucha"
)

// amountFlag is an amount flag, written the way bank statements do ("450.000").
type amountFlag struct {
	v   chaucha.Amount
	set bool
}

func (a *amountFlag) String() string {
	if a == nil {
		return "0"
	}
	return strconv.FormatInt(int64(a.v), 10)
}

func (a *amountFlag) Set(s string) error {
	v, err := chaucha.ParseAmount(s)
	if err != nil {
		return err
	}
	a.v, a.set = v, true
	return nil
}

// expensesFlag collects repeated "name=amount" fixed expenses.
type expensesFlag []chaucha.FixedExpense

func (e *expensesFlag) String() string {
	if e == nil {
		return ""
	}
	parts := make([]string, 0, len(*e))
	for _, x := range *e {
		parts = append(parts, fmt.Sprintf("%s=%d", x.Name, x.Amount))
	}
	return strings.Join(parts, ",")
}

func (e *expensesFlag) Set(s string) error {
	name, amount, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("invalid expense %q, want name=amount", s)
	}
	v, err := chaucha.ParseAmount(amount)
	if err != nil {
		return err
	}
	*e = append(*e, chaucha.NewFixedExpense(strings.TrimSpace(name), v, chaucha.IconOnboardingExpense))
	return nil
}
