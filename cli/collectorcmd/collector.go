// Package collectorcmd implements the "collector run" command: loading a
// multichain YAML config and running one background collector per chain
// until interrupted, optionally exposing Prometheus metrics.
package collectorcmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/dotscale/substrate-go/cli/logging"
	"github.com/dotscale/substrate-go/config"
	"github.com/dotscale/substrate-go/pkg/collector"
)

// NewCommands returns the "collector" command and its "run" subcommand.
func NewCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "collector",
			Usage: "Run the background metadata collector",
			Subcommands: []*cli.Command{
				{
					Name:      "run",
					Usage:     "Poll every configured chain and persist metadata snapshots",
					UsageText: "substrate-go collector run --config <path> [--metrics-addr :9100] [--log-level info]",
					Action:    run,
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "config", Required: true, Usage: "path to the collector's YAML config"},
						&cli.StringFlag{Name: "metrics-addr", Usage: "address to serve /metrics on; empty disables it"},
						&cli.StringFlag{Name: "log-level", Value: "info"},
						&cli.StringFlag{Name: "log-encoding", Value: "console"},
					},
				},
			},
		},
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("collector run: %w", err)
	}

	log, err := logging.New(c.String("log-level"), c.String("log-encoding"))
	if err != nil {
		return fmt.Errorf("collector run: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	reg := prometheus.NewRegistry()
	metrics := collector.NewMetrics(reg)

	if addr := c.String("metrics-addr"); addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv := &http.Server{Addr: addr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("metrics server stopped", zap.Error(err))
			}
		}()
		defer srv.Close()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return collector.RunAll(ctx, cfg.Chains, log, metrics)
}
