package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/kilianp07/transport/app"
	"github.com/kilianp07/transport/core/transport"
)

func newBatchCmd(root *rootOptions) *cobra.Command {
	var parallel int
	c := &cobra.Command{
		Use:   "batch FILE...",
		Short: "Solve several problem files concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			return withService(cfg, func(svc *app.Service) error {
				results, err := svc.SolveAll(cmd.Context(), args, parallel)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				failed := 0
				for _, r := range results {
					if r.Err != nil {
						failed++
						fmt.Fprintf(out, "%s\terror\t%v\n", r.Path, r.Err)
						continue
					}
					status := "optimal"
					if !r.Solution.Optimal {
						status = "capped"
					}
					fmt.Fprintf(out, "%s\t%s\t%s\t%d\n", r.Path, status, transport.Format(r.Solution.TotalCost), r.Solution.Iterations)
				}
				if failed > 0 {
					return fmt.Errorf("%d of %d problems failed", failed, len(results))
				}
				return nil
			})
		},
	}
	c.Flags().IntVarP(&parallel, "parallel", "p", runtime.NumCPU(), "maximum concurrent solves")
	return c
}
