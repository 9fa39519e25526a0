package app

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/kilianp07/transport/config"
	coremetrics "github.com/kilianp07/transport/core/metrics"
	"github.com/kilianp07/transport/core/model"
	coremon "github.com/kilianp07/transport/core/monitoring"
	"github.com/kilianp07/transport/core/parse"
	"github.com/kilianp07/transport/core/transport"
	"github.com/kilianp07/transport/infra/logger"
	"github.com/kilianp07/transport/infra/metrics"
	"github.com/kilianp07/transport/infra/monitoring"
	"github.com/kilianp07/transport/infra/problemfile"
)

// ErrVerification is returned when the LP cross-check disagrees with the
// potential method.
var ErrVerification = errors.New("lp cross-check mismatch")

// Service wires the solver with logging, monitoring and metrics.
type Service struct {
	Solver *transport.Solver
	cfg    *config.Config
	parser parse.Parser
	sink   coremetrics.MetricsSink
	gather prometheus.Gatherer
	log    logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	if err := logger.Setup(logger.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format}); err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	logg := logger.New("service")

	mon, err := monitoring.NewSentryMonitor(cfg.Sentry)
	if err != nil {
		return nil, fmt.Errorf("sentry: %w", err)
	}
	coremon.Init(mon)

	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	return &Service{
		Solver: transport.NewSolver(cfg.Solver, logger.New("solver"), sink),
		cfg:    cfg,
		parser: parse.Parser{Precision: cfg.Solver.Precision},
		sink:   sink,
		gather: prometheus.DefaultGatherer,
		log:    logg,
	}, nil
}

// Load reads a problem file with the configured cell precision.
func (s *Service) Load(path string) (model.Problem, error) {
	return problemfile.LoadWith(path, s.parser)
}

// Solve runs the solver on p.
func (s *Service) Solve(ctx context.Context, p model.Problem) (model.Solution, error) {
	return s.Solver.Solve(ctx, p)
}

// SolveFile loads and solves the problem at path.
func (s *Service) SolveFile(ctx context.Context, path string) (model.Solution, error) {
	p, err := s.Load(path)
	if err != nil {
		return model.Solution{}, err
	}
	return s.Solve(ctx, p)
}

// Verify solves p as a plain linear program and compares the optimum with
// sol. Plans stopped by the iteration cap are not compared.
func (s *Service) Verify(p model.Problem, sol model.Solution) (float64, error) {
	want, err := transport.LPCost(p)
	if err != nil {
		return 0, err
	}
	if !sol.Optimal {
		return want, nil
	}
	tol := 1e-6 * math.Max(1, math.Abs(want))
	if math.Abs(want-sol.TotalCost) > tol {
		return want, fmt.Errorf("%w: potential method %s, lp %s", ErrVerification,
			transport.Format(sol.TotalCost), transport.Format(want))
	}
	s.log.Debugf("lp cross-check agrees on %s", transport.Format(want))
	return want, nil
}

// Result is the outcome of one file of a batch.
type Result struct {
	Path     string
	Solution model.Solution
	Err      error
}

// SolveAll solves every file concurrently, at most parallel at a time (no
// limit when parallel <= 0). A failing file is reported in its Result and does
// not stop the others; only cancellation of ctx aborts the batch. Results keep
// the order of paths.
func (s *Service) SolveAll(ctx context.Context, paths []string, parallel int) ([]Result, error) {
	results := make([]Result, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			sol, err := s.SolveFile(gCtx, path)
			results[i] = Result{Path: path, Solution: sol, Err: err}
			if err != nil {
				s.log.Warnf("%s: %v", path, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

// Close flushes the monitor and writes the metrics textfile when configured.
func (s *Service) Close() error {
	coremon.Flush(2 * time.Second)
	if s.cfg.Metrics.Textfile == "" {
		return nil
	}
	return metrics.WriteTextfile(s.cfg.Metrics.Textfile, s.gather)
}
