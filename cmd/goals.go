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

type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "show the savings goals" }
func (*goalsCmd) Usage() string {
	return `chaucha goals

  Shows the savings goals and their progress.
`
}

func (*goalsCmd) SetFlags(f *flag.FlagSet) {}

func (*goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, log, err := OpenStore()
	if err != nil {
		return fail("%v", err)
	}
	defer log.Sync()
	printMarkdown(renderer.Goals(store.Snapshot().Goals, *currency))
	return subcommands.ExitSuccess
}

type addGoalCmd struct {
	name     string
	target   amountFlag
	current  amountFlag
	kind     string
	deadline string
	icon     string
	color    string
}

func (*addGoalCmd) Name() string     { return "add-goal" }
func (*addGoalCmd) Synopsis() string { return "create a savings goal" }
func (*addGoalCmd) Usage() string {
	return `chaucha add-goal -name <name> -target <amount> [-type savings|investment|purchase] [-deadline <date>]

  Creates a savings goal. See 'chaucha topic goals'.
`
}

func (c *addGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the goal.")
	f.Var(&c.target, "target", "Amount to reach.")
	f.Var(&c.current, "current", "Amount already saved.")
	f.StringVar(&c.kind, "type", string(chaucha.GoalSavings), "Type of goal: savings, investment or purchase.")
	f.StringVar(&c.deadline, "deadline", "", "Optional date to reach the goal.")
	f.StringVar(&c.icon, "icon", chaucha.IconGoal, "Icon name.")
	f.StringVar(&c.color, "color", chaucha.ColorGoal, "Color name.")
}

func (c *addGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	g := chaucha.NewGoal(c.name, c.target.v)
	g.CurrentAmount = min(c.current.v, c.target.v)
	g.Type = chaucha.GoalType(c.kind)
	g.Icon, g.Color = c.icon, c.color
	if c.deadline != "" {
		d, err := date.Normalize(c.deadline)
		if err != nil {
			return fail("%v", err)
		}
		g.Deadline = d
	}

	store, log, err := OpenStore()
	if err != nil {
		return fail("%v", err)
	}
	defer log.Sync()
	if err := store.AddGoal(g); err != nil {
		return fail("%v", err)
	}
	fmt.Printf("Added goal %q with id %s\n", g.Name, g.ID)
	return subcommands.ExitSuccess
}

type fundGoalCmd struct {
	id     string
	amount amountFlag
}

func (*fundGoalCmd) Name() string     { return "fund-goal" }
func (*fundGoalCmd) Synopsis() string { return "add to, or withdraw from, a savings goal" }
func (*fundGoalCmd) Usage() string {
	return `chaucha fund-goal -id <id> -amount <amount>

  Adds amount to the goal, a negative amount withdraws from it.
  The saved amount stays between zero and the target.
`
}

func (c *fundGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the goal.")
	f.Var(&c.amount, "amount", "Amount to add, negative to withdraw.")
}

func (c *fundGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	store, log, err := OpenStore()
	if err != nil {
		return fail("%v", err)
	}
	defer log.Sync()
	if err := store.UpdateGoalAmount(c.id, c.amount.v); err != nil {
		return fail("%v", err)
	}
	printMarkdown(renderer.Goals(store.Snapshot().Goals, *currency))
	return subcommands.ExitSuccess
}

type rmGoalCmd struct {
	id string
}

func (*rmGoalCmd) Name() string     { return "rm-goal" }
func (*rmGoalCmd) Synopsis() string { return "remove a savings goal" }
func (*rmGoalCmd) Usage() string {
	return `chaucha rm-goal -id <id>
`
}

func (c *rmGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the goal.")
}

func (c *rmGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	store, log, err := OpenStore()
	if err != nil {
		return fail("%v", err)
	}
	defer log.Sync()
	if err := store.RemoveGoal(c.id); err != nil {
		return fail("%v", err)
	}
	return subcommands.ExitSuccess
}
