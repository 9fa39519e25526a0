package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kilianp07/transport/app"
	"github.com/kilianp07/transport/core/model"
	"github.com/kilianp07/transport/core/transport"
	"github.com/kilianp07/transport/pkg/export"
)

type solveOptions struct {
	format        string
	trace         bool
	verify        bool
	maxIterations int
}

func newSolveCmd(root *rootOptions) *cobra.Command {
	opts := &solveOptions{}
	c := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve one problem file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("max-iterations") {
				cfg.Solver.MaxIterations = opts.maxIterations
				if err := cfg.Solver.Validate(); err != nil {
					return err
				}
			}
			return withService(cfg, func(svc *app.Service) error {
				p, err := svc.Load(args[0])
				if err != nil {
					return err
				}
				sol, err := svc.Solve(cmd.Context(), p)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if err := write(out, opts.format, sol, opts.trace); err != nil {
					return err
				}
				if !opts.verify {
					return nil
				}
				want, err := svc.Verify(p, sol)
				if err != nil {
					return err
				}
				if opts.format == "text" {
					_, err = fmt.Fprintf(out, "LP cross-check: %s\n", transport.Format(want))
				}
				return err
			})
		},
	}
	c.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: text, json or csv")
	c.Flags().BoolVar(&opts.trace, "trace", false, "print every step of the solution (text format)")
	c.Flags().BoolVar(&opts.verify, "verify", false, "cross-check the optimum with an LP solver")
	c.Flags().IntVar(&opts.maxIterations, "max-iterations", transport.DefaultMaxIterations, "pivot limit of the potential method")
	return c
}

func write(w io.Writer, format string, sol model.Solution, trace bool) error {
	switch format {
	case "text":
		return export.WriteText(w, sol, trace)
	case "json":
		return export.WriteJSON(w, sol)
	case "csv":
		return export.WriteCSV(w, sol)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
