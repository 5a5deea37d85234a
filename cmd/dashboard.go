package cmd

import (
	"context"
	"flag"

	"github.com/etnz/chaucha/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show the balance, the credit card and the latest transactions" }
func (*dashboardCmd) Usage() string {
	return `chaucha dashboard

  Shows what is available, the credit card usage and the latest transactions.
  Until the onboarding is done, it tells how to start instead.
`
}

func (*dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (*dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, log, err := OpenStore()
	if err != nil {
		return fail("%v", err)
	}
	defer log.Sync()

	d := store.Dashboard()
	if !d.Configured {
		printMarkdown(renderer.NotConfigured())
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.Dashboard(d, *currency))
	return subcommands.ExitSuccess
}
