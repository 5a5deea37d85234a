package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/chaucha/renderer"
	"github.com/google/subcommands"
)

type settingsCmd struct{}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show the profile settings" }
func (*settingsCmd) Usage() string {
	return `chaucha settings

  Shows the name, income, balance, credit card and where the profile is stored.
`
}

func (*settingsCmd) SetFlags(f *flag.FlagSet) {}

func (*settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, log, err := OpenStore()
	if err != nil {
		return fail("%v", err)
	}
	defer log.Sync()
	printMarkdown(renderer.Settings(store.Snapshot(), storeLocation(), *currency))
	return subcommands.ExitSuccess
}

type setCmd struct {
	name        string
	income      amountFlag
	balance     amountFlag
	creditUsed  amountFlag
	creditLimit amountFlag
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "change the profile settings" }
func (*setCmd) Usage() string {
	return `chaucha set [-name <name>] [-income <amount>] [-balance <amount>] [-credit-used <amount>] [-credit-limit <amount>]

  Changes only the settings given on the command line.
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Your name.")
	f.Var(&c.income, "income", "Monthly income.")
	f.Var(&c.balance, "balance", "Current balance of the account.")
	f.Var(&c.creditUsed, "credit-used", "Amount used on the credit card.")
	f.Var(&c.creditLimit, "credit-limit", "Credit card limit.")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, log, err := OpenStore()
	if err != nil {
		return fail("%v", err)
	}
	defer log.Sync()

	nameSet := false
	f.Visit(func(fl *flag.Flag) { nameSet = nameSet || fl.Name == "name" })

	changed := false
	if nameSet {
		changed, err = true, store.SetName(c.name)
	}
	if err == nil && c.income.set {
		changed, err = true, store.SetIncome(c.income.v)
	}
	if err == nil && c.balance.set {
		changed, err = true, store.SetBalance(c.balance.v)
	}
	if err == nil && (c.creditUsed.set || c.creditLimit.set) {
		u := store.Snapshot()
		used, limit := u.CreditCardUsed, u.CreditCardLimit
		if c.creditUsed.set {
			used = c.creditUsed.v
		}
		if c.creditLimit.set {
			limit = c.creditLimit.v
		}
		changed, err = true, store.SetCreditCard(used, limit)
	}
	if err != nil {
		return fail("%v", err)
	}
	if !changed {
		fmt.Fprintln(os.Stderr, "Nothing to change, see 'chaucha help set'.")
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.Settings(store.Snapshot(), storeLocation(), *currency))
	return subcommands.ExitSuccess
}

type resetCmd struct {
	force bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "delete all your data" }
func (*resetCmd) Usage() string {
	return `chaucha reset [-force]

  Deletes the stored profile. The next command starts from a fresh profile,
  with the demo transactions. Asks for a confirmation unless -force is given.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Do not ask for a confirmation.")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Printf("¿Estás seguro? Se borrarán todos tus datos de %s [s/N] ", storeLocation())
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "s", "si", "sí", "y", "yes":
		default:
			fmt.Println("Nada fue borrado.")
			return subcommands.ExitSuccess
		}
	}

	store, log, err := OpenStore()
	if err != nil {
		return fail("%v", err)
	}
	defer log.Sync()
	if err := store.Reset(); err != nil {
		return fail("could not reset the profile: %v", err)
	}
	fmt.Println("Todos tus datos fueron borrados.")
	return subcommands.ExitSuccess
}
