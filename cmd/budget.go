package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/chaucha"
	"github.com/etnz/chaucha/renderer"
	"github.com/google/subcommands"
)

type budgetCmd struct {
	variable bool
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "show the monthly budget" }
func (*budgetCmd) Usage() string {
	return `chaucha budget [-variable]

  Shows the income against the fixed and variable expenses, and what is left.
  With -variable, only the variable expenses by category.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.variable, "variable", false, "Show only the variable expenses by category.")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, log, err := OpenStore()
	if err != nil {
		return fail("%v", err)
	}
	defer log.Sync()

	if c.variable {
		printMarkdown(renderer.VariableExpenses(store.VariableExpenses(), *currency))
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.Budget(store.Budget(), *currency))
	return subcommands.ExitSuccess
}

type addExpenseCmd struct {
	name   string
	amount amountFlag
	icon   string
}

func (*addExpenseCmd) Name() string     { return "add-expense" }
func (*addExpenseCmd) Synopsis() string { return "add a fixed monthly expense" }
func (*addExpenseCmd) Usage() string {
	return `chaucha add-expense -name <name> -amount <amount> [-icon <icon>]

  Adds an unpaid fixed expense to the budget.
`
}

func (c *addExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the expense.")
	f.Var(&c.amount, "amount", "Monthly amount.")
	f.StringVar(&c.icon, "icon", chaucha.IconBudgetExpense, "Icon name.")
}

func (c *addExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, log, err := OpenStore()
	if err != nil {
		return fail("%v", err)
	}
	defer log.Sync()

	e := chaucha.NewFixedExpense(c.name, c.amount.v, c.icon)
	if err := store.AddExpense(e); err != nil {
		return fail("%v", err)
	}
	fmt.Printf("Added expense %q with id %s\n", e.Name, e.ID)
	return subcommands.ExitSuccess
}

type rmExpenseCmd struct {
	id string
}

func (*rmExpenseCmd) Name() string     { return "rm-expense" }
func (*rmExpenseCmd) Synopsis() string { return "remove a fixed expense" }
func (*rmExpenseCmd) Usage() string {
	return `chaucha rm-expense -id <id>

  Removes a fixed expense from the budget. Ids are listed by 'chaucha budget'.
`
}

func (c *rmExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the expense.")
}

func (c *rmExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	store, log, err := OpenStore()
	if err != nil {
		return fail("%v", err)
	}
	defer log.Sync()
	if err := store.RemoveExpense(c.id); err != nil {
		return fail("%v", err)
	}
	return subcommands.ExitSuccess
}

type payCmd struct {
	id    string
	reset bool
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "mark a fixed expense as paid, or unpaid" }
func (*payCmd) Usage() string {
	return `chaucha pay -id <id> | -reset

  Toggles the paid flag of a fixed expense: paying a paid expense marks it unpaid.
  With -reset, marks every fixed expense unpaid, for a new month.
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the expense.")
	f.BoolVar(&c.reset, "reset", false, "Mark every fixed expense unpaid.")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (c.id == "") == !c.reset {
		fmt.Fprintln(os.Stderr, "Error: exactly one of -id or -reset is required.")
		return subcommands.ExitUsageError
	}
	store, log, err := OpenStore()
	if err != nil {
		return fail("%v", err)
	}
	defer log.Sync()

	if c.reset {
		err = store.ResetPaid()
	} else {
		err = store.ToggleExpensePaid(c.id)
	}
	if err != nil {
		return fail("%v", err)
	}
	printMarkdown(renderer.Budget(store.Budget(), *currency))
	return subcommands.ExitSuccess
}
