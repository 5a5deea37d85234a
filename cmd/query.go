package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/chaucha"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "extract values from the profile with JSONPath" }
func (*queryCmd) Usage() string {
	return `chaucha query <path>

  Prints, as JSON, the values matching the JSONPath expression.
  See 'chaucha topic query'.

Usage Examples:
$ chaucha query '$.goals[*].name'
$ chaucha query '$.fixedExpenses[?(@.paid == false)].amount'
`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (*queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: query takes exactly one JSONPath expression.")
		return subcommands.ExitUsageError
	}
	store, log, err := OpenStore()
	if err != nil {
		return fail("%v", err)
	}
	defer log.Sync()

	v, err := chaucha.Query(store.Snapshot(), f.Arg(0))
	if err != nil {
		return fail("%v", err)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fail("%v", err)
	}
	return subcommands.ExitSuccess
}
