package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/chaucha"
	"github.com/etnz/chaucha/renderer"
	"github.com/google/subcommands"
)

type importCmd struct {
	dryRun bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a bank statement from a CSV file" }
func (*importCmd) Usage() string {
	return `chaucha import [-n] <file.csv|->

  Adds the transactions of a CSV bank statement before the existing ones.
  See 'chaucha topic import' for the format.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.dryRun, "n", false, "Show the transactions without importing them.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import takes exactly one file, or - for the standard input.")
		return subcommands.ExitUsageError
	}

	var r io.Reader = os.Stdin
	if name := f.Arg(0); name != "-" {
		file, err := os.Open(name)
		if err != nil {
			return fail("%v", err)
		}
		defer file.Close()
		r = file
	}

	txs, err := chaucha.ImportCSV(r)
	if err != nil {
		return fail("could not import %q: %v", f.Arg(0), err)
	}
	if c.dryRun {
		printMarkdown(renderer.Transactions(txs, *currency))
		return subcommands.ExitSuccess
	}

	store, log, err := OpenStore()
	if err != nil {
		return fail("%v", err)
	}
	defer log.Sync()
	if err := store.ImportTransactions(txs); err != nil {
		return fail("%v", err)
	}
	fmt.Printf("Imported %d transactions\n", len(txs))
	return subcommands.ExitSuccess
}
