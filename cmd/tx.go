package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/chaucha"
	"github.com/etnz/chaucha/date"
	"github.com/etnz/chaucha/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	period   string
	date     string
	category string
	variable bool
	head     int
	tail     int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the transactions" }
func (*txCmd) Usage() string {
	return `chaucha tx [-p <period>] [-d <date>] [-c <category>] [-variable] [-head <n>] [-tail <n>]

  Lists transactions, newest first, with options for filtering and limiting the output.

  -p selects the period (day, week, month, quarter, year) containing the date
  -d, today by default.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Period to list (day, week, month, quarter, year).")
	f.StringVar(&c.date, "d", "", "A date in the period, today by default.")
	f.StringVar(&c.category, "c", "", "List only this category.")
	f.BoolVar(&c.variable, "variable", false, "List only variable expenses.")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	store, log, err := OpenStore()
	if err != nil {
		return fail("%v", err)
	}
	defer log.Sync()
	transactions := store.Snapshot().Transactions

	if c.period != "" {
		period, err := date.ParsePeriod(c.period)
		if err != nil {
			return fail("parsing period: %v", err)
		}
		on := date.Today()
		if c.date != "" {
			if on, err = date.Parse(c.date); err != nil {
				return fail("parsing date: %v", err)
			}
		}
		transactions = chaucha.TransactionsIn(transactions, date.NewRange(on, period))
	}

	var selected []chaucha.Transaction
	for _, tx := range transactions {
		if c.category != "" && tx.Category != c.category {
			continue
		}
		if c.variable && !tx.IsVariable() {
			continue
		}
		selected = append(selected, tx)
	}

	if c.head > 0 && len(selected) > c.head {
		selected = selected[:c.head]
	}
	if c.tail > 0 && len(selected) > c.tail {
		selected = selected[len(selected)-c.tail:]
	}

	printMarkdown(renderer.Transactions(selected, *currency))
	return subcommands.ExitSuccess
}

type addTxCmd struct {
	date        string
	description string
	amount      amountFlag
	category    string
	fixed       bool
}

func (*addTxCmd) Name() string     { return "add-tx" }
func (*addTxCmd) Synopsis() string { return "record a transaction" }
func (*addTxCmd) Usage() string {
	return `chaucha add-tx -amount <amount> -description <text> [-category <category>] [-date <date>] [-fixed]

  Records a transaction, before the existing ones. Outflows are negative.

Usage Examples:
$ chaucha add-tx -amount -4200 -description Starbucks -category Ocio
`
}

func (c *addTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Date of the transaction, today by default.")
	f.StringVar(&c.description, "description", "", "Description.")
	f.Var(&c.amount, "amount", "Amount, negative for an outflow.")
	f.StringVar(&c.category, "category", chaucha.DefaultCategory, "Category.")
	f.BoolVar(&c.fixed, "fixed", false, "The transaction pays a fixed expense.")
}

func (c *addTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.amount.set {
		fmt.Fprintln(os.Stderr, "Error: -amount is required.")
		return subcommands.ExitUsageError
	}
	day := date.Today().String()
	if c.date != "" {
		var err error
		if day, err = date.Normalize(c.date); err != nil {
			return fail("%v", err)
		}
	}

	store, log, err := OpenStore()
	if err != nil {
		return fail("%v", err)
	}
	defer log.Sync()

	tx := chaucha.Transaction{
		ID:          chaucha.NewID(),
		Date:        day,
		Description: c.description,
		Amount:      c.amount.v,
		Category:    c.category,
		IsFixed:     c.fixed,
	}
	if err := store.AddTransaction(tx); err != nil {
		return fail("%v", err)
	}
	return subcommands.ExitSuccess
}
