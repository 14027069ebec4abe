package cli

import (
	"fmt"
	"unsafe"

	"github.com/spf13/cobra"

	"github.com/rhartert/dsat/internal/cnf"
)

// newStatsCmd reports the in-memory footprint of the core data types, a
// developer diagnostic for keeping an eye on the per-variable and
// per-clause memory cost.
func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print internal data structure statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "CNF problem type sizes:")
			fmt.Fprintf(out, "  Literal:   %d bytes\n", unsafe.Sizeof(cnf.Literal(0)))
			fmt.Fprintf(out, "  Variable:  %d bytes\n", unsafe.Sizeof(cnf.Variable{}))
			fmt.Fprintf(out, "  Clause:    %d bytes (header only, literals are separately allocated)\n", unsafe.Sizeof(cnf.Clause{}))
			return nil
		},
	}
}
