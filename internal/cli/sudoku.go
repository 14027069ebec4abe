package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rhartert/dsat/internal/compressio"
	"github.com/rhartert/dsat/internal/stats"
	"github.com/rhartert/dsat/internal/sudoku"
)

func newSudokuCmd(exitCode *int) *cobra.Command {
	var timeFlag, deduceFlag bool
	var queryPath string
	var rows, cols int

	cmd := &cobra.Command{
		Use:   "sudoku FILE",
		Short: "Parse and solve a Sudoku-family puzzle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rows <= 0 || cols <= 0 || rows*cols > 35 {
				return argErr(fmt.Errorf("rows*cols must be in [1, 35], got rows=%d cols=%d", rows, cols))
			}

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
			board, err := sudoku.Parse(r, rows, cols)
			sw.Stop()
			if err != nil {
				return parseErr(fmt.Errorf("parsing %s: %w", path, err))
			}
			if timeFlag {
				fmt.Fprintf(out, "c [T] parsing board: %s\n", sw)
			}

			if deduceFlag {
				sw.Start()
				board.Deduce()
				sw.Stop()
				if timeFlag {
					fmt.Fprintf(out, "c [T] deducing: %s\n", sw)
				}
			}

			if queryPath != "" {
				f, err := os.Create(queryPath)
				if err != nil {
					return ioErr(err)
				}
				defer f.Close()
				if err := board.PrintDIMACS(f); err != nil {
					return ioErr(err)
				}
			}

			sw.Start()
			grid, ok := board.Solve()
			sw.Stop()
			if timeFlag {
				fmt.Fprintf(out, "c [T] solving: %s\n", sw)
			}

			if !ok {
				fmt.Fprintln(out, "s UNSATISFIABLE")
				*exitCode = ExitUnsatisfiable
				return nil
			}
			*exitCode = ExitSatisfiable
			fmt.Fprintln(out, "s SATISFIABLE")
			printGrid(out, grid, board.N())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&timeFlag, "time", "t", false, "time the solving process")
	cmd.Flags().BoolVarP(&deduceFlag, "deduce", "d", false, "simplify via sudoku constraint propagation before solving")
	cmd.Flags().StringVarP(&queryPath, "query", "q", "", "write the SAT query in DIMACS CNF format to FILE")
	cmd.Flags().IntVarP(&rows, "rows", "r", 3, "block height")
	cmd.Flags().IntVarP(&cols, "cols", "c", 3, "block width")

	return cmd
}

func printGrid(out io.Writer, grid []int, n int) {
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			v := grid[row*n+col]
			if v < 10 {
				fmt.Fprintf(out, "%d", v)
			} else {
				fmt.Fprintf(out, "%c", 'a'+v-10)
			}
		}
		fmt.Fprintln(out)
	}
}
