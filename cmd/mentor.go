package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/chaucha/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type mentorCmd struct{}

func (*mentorCmd) Name() string     { return "mentor" }
func (*mentorCmd) Synopsis() string { return "talk about your finances with the AI mentor" }
func (*mentorCmd) Usage() string {
	return `chaucha mentor [question]

  Starts an interactive session with Chaucha, the AI mentor. Type 'bye' to exit.
  The Gemini key is read from GEMINI_API_KEY. See 'chaucha topic mentor'.
`
}

func (*mentorCmd) SetFlags(_ *flag.FlagSet) {}

func (*mentorCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}

	store, log, err := OpenStore()
	if err != nil {
		return fail("%v", err)
	}
	defer log.Sync()

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	mentor := agent.NewMentor(agent.GeminiChats(client), store, *currency, log)
	session := agent.NewSession(mentor, agent.Greeting(store.Snapshot()))
	if err := agent.Run(ctx, os.Stdout, os.Stdin, session, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Mentor failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
