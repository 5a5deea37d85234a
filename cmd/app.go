// Package cmd implements the chaucha command line application.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/chaucha"
	"github.com/etnz/chaucha/logger"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	c.Register(&topicCmd{}, "")

	c.Register(&dashboardCmd{}, "profile")
	c.Register(&onboardCmd{}, "profile")
	c.Register(&settingsCmd{}, "profile")
	c.Register(&setCmd{}, "profile")
	c.Register(&resetCmd{}, "profile")
	c.Register(&queryCmd{}, "profile")

	c.Register(&budgetCmd{}, "budget")
	c.Register(&addExpenseCmd{}, "budget")
	c.Register(&rmExpenseCmd{}, "budget")
	c.Register(&payCmd{}, "budget")

	c.Register(&goalsCmd{}, "goals")
	c.Register(&addGoalCmd{}, "goals")
	c.Register(&fundGoalCmd{}, "goals")
	c.Register(&rmGoalCmd{}, "goals")

	c.Register(&txCmd{}, "transactions")
	c.Register(&addTxCmd{}, "transactions")
	c.Register(&importCmd{}, "transactions")
	c.Register(&exportCmd{}, "transactions")

	c.Register(&mentorCmd{}, "mentor")
	c.Register(&serveCmd{}, "mentor")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	dataDir  = flag.String("data-dir", envOr(EnvDataDir, defaultDataDir()), "Folder holding the profile. Env: "+EnvDataDir)
	currency = flag.String("currency", envOr(EnvCurrency, chaucha.DefaultCurrency), "Currency used to display amounts. Env: "+EnvCurrency)
	Verbose  = flag.Bool("v", envBool(EnvVerbose), "Log what happens to stderr. Env: "+EnvVerbose)
)

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}

// defaultDataDir is "chaucha" in the user configuration folder, or the current folder.
func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "chaucha")
}

// newLogger returns the logger of the application: warnings only unless verbose.
func newLogger() *zap.Logger {
	level := logger.WarnLevel
	if *Verbose {
		level = logger.DebugLevel
	}
	log, err := logger.New(true, level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
		return zap.NewNop()
	}
	return log
}

// OpenStore opens the profile stored in the data folder.
func OpenStore() (*chaucha.Store, *zap.Logger, error) {
	log := newLogger()
	storage := chaucha.NewDirStorage(*dataDir)
	store, err := chaucha.Open(storage, chaucha.WithLogger(log))
	if err != nil {
		return nil, nil, fmt.Errorf("could not open the profile in %q: %w", *dataDir, err)
	}
	return store, log, nil
}

// storeLocation returns where the profile is stored, for display.
func storeLocation() string {
	return chaucha.NewDirStorage(*dataDir).Path(chaucha.StorageKey)
}

// printMarkdown renders md for the terminal, or prints it as is when it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}

// fail prints err to stderr and returns the failure status.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}
