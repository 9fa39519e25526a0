package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/transport/app"
	"github.com/kilianp07/transport/config"
	"github.com/kilianp07/transport/infra/logger"
)

type rootOptions struct {
	cfgPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "transport",
		Short:         "Transportation problem solver",
		Long:          "Builds a northwest corner plan and improves it with the potential method until every reduced cost is non-negative.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.cfgPath, "config", "c", "", "configuration file (yaml or json); K_ environment variables apply either way")
	root.AddCommand(newSolveCmd(opts), newBatchCmd(opts))
	return root
}

// Execute runs the CLI.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.cfgPath == "" {
		cfg, err := config.LoadEnv()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		return cfg, nil
	}
	cfg, err := config.Load(o.cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// withService builds the service, runs fn and closes the service.
func withService(cfg *config.Config, fn func(*app.Service) error) (err error) {
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := svc.Close(); cerr != nil {
			logger.New("main").Errorf("service close: %v", cerr)
			if err == nil {
				err = cerr
			}
		}
	}()
	return fn(svc)
}
