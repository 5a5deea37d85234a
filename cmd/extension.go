package cmd

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"syscall"
)

const (
	EnvDataDir  = "CHAUCHA_DATA_DIR"
	EnvCurrency = "CHAUCHA_CURRENCY"
	EnvVerbose  = "CHAUCHA_VERBOSE"
)

// RunExtension attempts to find and execute an external chaucha-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
//
// Global flags are passed to the extension as environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "chaucha-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		if *Verbose {
			log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		}
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(),
		EnvDataDir+"="+*dataDir,
		EnvCurrency+"="+*currency,
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
