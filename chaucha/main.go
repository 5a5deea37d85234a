// Command chaucha manages a personal financial profile: budget, goals,
// transactions, and an AI mentor to talk about them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/chaucha/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// A .env file in the current folder is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "Warning: cannot load .env:", err)
	}

	commander := subcommands.NewCommander(flag.CommandLine, "chaucha")
	cmd.Register(commander)
	cmd.Completion(commander).Complete("chaucha")

	flag.Parse()

	// The dashboard is the home screen.
	if flag.NArg() == 0 {
		flag.CommandLine.Parse(append(os.Args[1:], "dashboard"))
	}

	if name := flag.Arg(0); !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// registered reports whether name is a subcommand of c.
func registered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		found = found || sc.Name() == name
	})
	return found
}
