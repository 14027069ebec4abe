// Package cli assembles the solver's command-line driver: one subcommand per
// input format (dimacs, sudoku, npn), plus stats and version, one file per
// subcommand.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rhartert/dsat/internal/cnf"
)

// Exit codes follow the SAT-competition convention: 10 and 20 report the
// verdict itself, 0 means the solver could not decide, and the remaining
// codes classify failures.
const (
	ExitUnknown        = 0
	ExitSatisfiable    = 10
	ExitUnsatisfiable  = 20
	ExitParseError     = 2
	ExitIOError        = 100
	ExitInvalidArgs    = 126
	ExitFrameworkError = 1
)

// cliError pairs an error with the process exit code it should produce.
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func ioErr(err error) error    { return &cliError{code: ExitIOError, err: err} }
func parseErr(err error) error { return &cliError{code: ExitParseError, err: err} }
func argErr(err error) error   { return &cliError{code: ExitInvalidArgs, err: err} }

// reportResult prints the competition-mode result line and returns the exit
// code that corresponds to it.
func reportResult(cmd *cobra.Command, verdict cnf.Verdict) int {
	out := cmd.OutOrStdout()
	switch verdict {
	case cnf.Sat:
		fmt.Fprintln(out, "s SATISFIABLE")
		return ExitSatisfiable
	case cnf.Unsat:
		fmt.Fprintln(out, "s UNSATISFIABLE")
		return ExitUnsatisfiable
	default:
		fmt.Fprintln(out, "s UNKNOWN")
		return ExitUnknown
	}
}

// Execute builds the root command, runs it against os.Args, and returns the
// process exit code it should terminate with.
func Execute() int {
	exitCode := ExitUnknown
	root := newRootCmd(&exitCode)
	if err := root.Execute(); err != nil {
		var ce *cliError
		if errors.As(err, &ce) {
			fmt.Fprintf(os.Stderr, "c error: %v\n", ce.err)
			return ce.code
		}
		fmt.Fprintf(os.Stderr, "c error: %v\n", err)
		return ExitFrameworkError
	}
	return exitCode
}

func newRootCmd(exitCode *int) *cobra.Command {
	root := &cobra.Command{
		Use:           "dsat",
		Short:         "dsat solves boolean satisfiability queries with a CDCL engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDimacsCmd(exitCode))
	root.AddCommand(newSudokuCmd(exitCode))
	root.AddCommand(newNPNCmd(exitCode))
	root.AddCommand(newStatsCmd())
	root.AddCommand(newVersionCmd())
	return root
}
