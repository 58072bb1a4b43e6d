package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lowaak/fitness-tracker/fitness-tracker-app/internal/config"
	"github.com/lowaak/fitness-tracker/fitness-tracker-app/internal/dispatch"
	"github.com/lowaak/fitness-tracker/fitness-tracker-app/internal/feed"
	"github.com/lowaak/fitness-tracker/fitness-tracker-app/internal/logging"
	"github.com/lowaak/fitness-tracker/fitness-tracker-app/internal/report"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "fitness-tracker",
		Short:        "Summarize recorded workouts into one report line each",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, nil)
		},
	}
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(summarizeCmd())
	rootCmd.AddCommand(codesCmd())
	return rootCmd
}

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Report every configured session (the default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, nil)
		},
	}
}

func summarizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summarize CODE ARG...",
		Short: "Report a single session given on the command line",
		Example: "  fitness-tracker summarize RUN 15000 1 75\n" +
			"  fitness-tracker summarize WLK 9000 1 75 180",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg, err := feed.FromArgs(args)
			if err != nil {
				return err
			}
			return runReport(cmd, []feed.Package{pkg})
		},
	}
}

func codesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List the recognized activity codes and their arguments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			logger, closer := logging.New(cfg)
			defer closer.Close()

			for _, v := range dispatch.NewDispatcher(logger).Variants() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", v.Code, v.Kind.Label(), strings.Join(v.Args, " "))
			}
			return nil
		},
	}
}

// runReport reports pkgs, or the configured sessions when pkgs is nil.
// Skipped records are printed to stderr and do not fail the command.
func runReport(cmd *cobra.Command, pkgs []feed.Package) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	locale, err := report.ParseLocale(cfg.Locale)
	if err != nil {
		return err
	}
	if pkgs == nil {
		pkgs = cfg.Sessions
	}

	logger, closer := logging.New(cfg)
	defer closer.Close()

	driver := report.NewDriver(report.NewDriverArg{
		Reader:  dispatch.NewDispatcher(logger),
		Output:  cmd.OutOrStdout(),
		Logger:  logger,
		Locale:  locale,
		Workers: cfg.Workers,
	})
	driver.OnDiagnostic(printDiagnostic(cmd.ErrOrStderr()))

	metrics := report.NewMetrics()
	metrics.Observe(driver)

	_, runErr := driver.Run(cmd.Context(), pkgs)

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Printf("Main: failed to write metrics to %s: %v", cfg.MetricsFile, err)
			if runErr == nil {
				runErr = err
			}
		}
	}
	return runErr
}

func printDiagnostic(w io.Writer) func(report.Diagnostic) {
	return func(d report.Diagnostic) {
		fmt.Fprintf(w, "skipped: %s\n", d)
	}
}
