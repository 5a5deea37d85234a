package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/chaucha"
	"github.com/etnz/chaucha/renderer"
	"github.com/google/subcommands"
)

type onboardCmd struct {
	name        string
	income      amountFlag
	balance     amountFlag
	creditUsed  amountFlag
	creditLimit amountFlag
	expenses    expensesFlag
	noDefaults  bool
}

func (*onboardCmd) Name() string     { return "onboard" }
func (*onboardCmd) Synopsis() string { return "set up the profile" }
func (*onboardCmd) Usage() string {
	return `chaucha onboard -name <name> [-income <amount>] [-balance <amount>] [-credit-used <amount>] [-credit-limit <amount>] [-expense <name=amount>]...

  Stores the profile answers and marks it as configured.

  Without -expense, the profile starts with the usual fixed expenses (rent and
  phone plan), use -no-default-expenses to start with none.

Usage Examples:
$ chaucha onboard -name Camila -income 1.200.000 -balance 850.000 -credit-used 300.000 -credit-limit 1.000.000
$ chaucha onboard -name Camila -income 1200000 -expense Arriendo=450000 -expense Gimnasio=25000
`
}

func (c *onboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Your name.")
	f.Var(&c.income, "income", "Monthly income.")
	f.Var(&c.balance, "balance", "Current balance of the account.")
	f.Var(&c.creditUsed, "credit-used", "Amount used on the credit card.")
	f.Var(&c.creditLimit, "credit-limit", "Credit card limit.")
	f.Var(&c.expenses, "expense", "A fixed expense as name=amount, can be repeated.")
	f.BoolVar(&c.noDefaults, "no-default-expenses", false, "Start without the usual fixed expenses.")
}

func (c *onboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, log, err := OpenStore()
	if err != nil {
		return fail("%v", err)
	}
	defer log.Sync()

	expenses := []chaucha.FixedExpense(c.expenses)
	if len(expenses) == 0 && !c.noDefaults {
		expenses = chaucha.DefaultOnboardingExpenses()
	}
	err = store.CompleteOnboarding(chaucha.Onboarding{
		Name:            c.name,
		MonthlyIncome:   c.income.v,
		CurrentBalance:  c.balance.v,
		CreditCardUsed:  c.creditUsed.v,
		CreditCardLimit: c.creditLimit.v,
		FixedExpenses:   expenses,
	})
	if err != nil {
		return fail("could not complete the onboarding: %v", err)
	}
	fmt.Printf("Profile stored in %s\n", storeLocation())
	printMarkdown(renderer.Dashboard(store.Dashboard(), *currency))
	return subcommands.ExitSuccess
}
