package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rhartert/dsat/internal/cnf"
	"github.com/rhartert/dsat/internal/compressio"
	"github.com/rhartert/dsat/internal/dimacs"
	"github.com/rhartert/dsat/internal/stats"
)

func newDimacsCmd(exitCode *int) *cobra.Command {
	var timeFlag, modelFlag, preprocessFlag bool

	cmd := &cobra.Command{
		Use:   "dimacs FILE",
		Short: "Parse and solve a DIMACS CNF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			out := cmd.OutOrStdout()

			sw := stats.NewStopwatch()
			r, err := compressio.Open(path)
			if err != nil {
				return ioErr(fmt.Errorf("opening %s: %w", path, err))
			}
			defer r.Close()
			sw.Stop()
			if timeFlag {
				fmt.Fprintf(out, "c [T] opening file: %s\n", sw)
			}

			sw.Start()
			problem, err := dimacs.Parse(r)
			sw.Stop()
			if err != nil {
				return parseErr(fmt.Errorf("parsing %s: %w", path, err))
			}
			if timeFlag {
				fmt.Fprintf(out, "c [T] parsing and preprocessing: %s\n", sw)
			}
			if preprocessFlag {
				if err := cnf.WriteDIMACS(out, problem.NumVariables(), problem.ClauseLiterals()); err != nil {
					return ioErr(err)
				}
			}

			sw.Start()
			verdict := problem.Solve()
			sw.Stop()
			if timeFlag {
				fmt.Fprintf(out, "c [T] solving: %s\n", sw)
				fmt.Fprintf(out, "c conflicts: %d, restarts: %d, avg glue: %.2f\n",
					problem.NumConflicts(), problem.NumRestarts(), problem.AverageGlue())
				var lens stats.Histogram
				for length, count := range problem.ConflictLengths() {
					lens.AddN(length, uint64(count))
				}
				fmt.Fprintf(out, "c conflict lengths: %s\n", &lens)
			}

			*exitCode = reportResult(cmd, verdict)
			if verdict == cnf.Sat && modelFlag {
				printIntModel(out, problem)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&timeFlag, "time", "t", false, "time the solving process")
	cmd.Flags().BoolVarP(&modelFlag, "model", "m", false, "print a model for satisfying results")
	cmd.Flags().BoolVarP(&preprocessFlag, "preprocess", "p", false, "dump CNF after preprocessing")

	return cmd
}

func printIntModel(out io.Writer, p *cnf.Problem[int]) {
	fmt.Fprintln(out, "c model:")
	model := p.Model()
	for vid := 0; vid < p.NumVariables(); vid++ {
		sign := ""
		if !model[vid] {
			sign = "-"
		}
		fmt.Fprintf(out, "v %s%d\n", sign, p.Name(cnf.VariableID(vid))+1)
	}
}
