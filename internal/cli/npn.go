package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rhartert/dsat/internal/cnf"
	"github.com/rhartert/dsat/internal/npn"
	"github.com/rhartert/dsat/internal/stats"
)

func newNPNCmd(exitCode *int) *cobra.Command {
	var timeFlag, modelFlag bool

	cmd := &cobra.Command{
		Use:   "npn QUERY",
		Short: "Parse and solve a Polish-notation boolean query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			sw := stats.NewStopwatch()
			problem, err := npn.Parse(strings.NewReader(args[0]))
			sw.Stop()
			if err != nil {
				return parseErr(fmt.Errorf("parsing query: %w", err))
			}
			if timeFlag {
				fmt.Fprintf(out, "c [T] parsing query: %s\n", sw)
			}

			sw.Start()
			verdict := problem.Solve()
			sw.Stop()
			if timeFlag {
				fmt.Fprintf(out, "c [T] solving: %s\n", sw)
				fmt.Fprintf(out, "c conflicts: %d, restarts: %d, avg glue: %.2f\n",
					problem.NumConflicts(), problem.NumRestarts(), problem.AverageGlue())
			}

			*exitCode = reportResult(cmd, verdict)
			if verdict == cnf.Sat && modelFlag {
				printStringModel(out, problem)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&timeFlag, "time", "t", false, "time the solving process")
	cmd.Flags().BoolVarP(&modelFlag, "model", "m", false, "print a model for satisfying results")

	return cmd
}

func printStringModel(out io.Writer, p *cnf.Problem[string]) {
	fmt.Fprintln(out, "c model:")
	model := p.Model()
	for vid := 0; vid < p.NumVariables(); vid++ {
		name := p.Name(cnf.VariableID(vid))
		if strings.HasPrefix(name, ".") {
			continue // internal Tseitin auxiliary, not a user-named atom
		}
		sign := ""
		if !model[vid] {
			sign = "-"
		}
		fmt.Fprintf(out, "v %s%s\n", sign, name)
	}
}
