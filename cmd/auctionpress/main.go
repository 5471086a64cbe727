// Package main provides the CLI entry point for auctionpress.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/r21league/auctionpress/pkg/auctionpress"
	"github.com/r21league/auctionpress/pkg/auctionpress/config"
	"github.com/r21league/auctionpress/pkg/auctionpress/schedule"
)

var (
	configPath string
	once       bool
	interval   time.Duration
	runFor     time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "auctionpress",
		Short: "Publish the auction catalogue on a schedule",
		Long: `auctionpress converts the auction workbook into a self-contained
interactive catalogue and publishes it to the remote content host on a fixed,
non-overlapping schedule.`,
		Args: cobra.NoArgs,
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML, optional)")
	rootCmd.Flags().BoolVar(&once, "once", false, "Run a single tick and exit")
	rootCmd.Flags().DurationVar(&interval, "interval", 0, "Override the schedule interval")
	rootCmd.Flags().DurationVar(&runFor, "run-for", 0, "Stop scheduling after this duration")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := config.GetLogger()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if interval > 0 {
		cfg.Interval = interval
	}
	if runFor > 0 {
		cfg.RunFor = runFor
	}

	pipeline, err := auctionpress.NewPipeline(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if once {
		return pipeline.Run(ctx)
	}

	logger.WithFields(logrus.Fields{
		"interval": cfg.Interval.String(),
		"auction":  cfg.AuctionMode,
		"upload":   cfg.Upload,
	}).Info("starting publish scheduler")

	sched := schedule.New(cfg.Interval, cfg.RunFor, pipeline.Run)
	sched.Run(ctx)
	return nil
}
