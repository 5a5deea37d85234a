package cmd

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/etnz/chaucha"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output   string
	variable bool
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the transactions as CSV" }
func (*exportCmd) Usage() string {
	return `chaucha export [-variable] [-o <file.csv>]

  Writes the transactions in the import format, or with -variable, the
  variable expenses by category.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, standard output by default.")
	f.BoolVar(&c.variable, "variable", false, "Export the variable expenses by category.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, log, err := OpenStore()
	if err != nil {
		return fail("%v", err)
	}
	defer log.Sync()

	var w io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			return fail("%v", err)
		}
		defer file.Close()
		w = file
	}

	if c.variable {
		err = chaucha.ExportVariableCSV(w, store.VariableExpenses())
	} else {
		err = chaucha.ExportTransactionsCSV(w, store.Snapshot().Transactions)
	}
	if err != nil {
		return fail("could not export: %v", err)
	}
	return subcommands.ExitSuccess
}
