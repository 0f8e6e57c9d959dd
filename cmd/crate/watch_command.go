package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"crate/internal/artwork"
	"crate/internal/logging"
	"crate/internal/scanner"
	"crate/internal/trackstore"
	"crate/internal/watch"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var scanOnStart bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch for removable media and rescan when it appears",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			store, err := trackstore.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			s := scanner.New(cfg, store, artwork.NewCache(cfg), logger)

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			rescan := func(scanCtx context.Context, device string) {
				logger.Info("rescanning after media event",
					logging.String("device", device),
				)
				if _, err := s.Scan(scanCtx); err != nil {
					logger.Warn("rescan failed",
						logging.Error(err),
						logging.String("device", device),
					)
				}
			}

			if scanOnStart {
				if _, err := s.Scan(runCtx); err != nil {
					return err
				}
			}

			monitor := watch.NewMonitor(logger, rescan)
			if err := monitor.Start(runCtx); err != nil {
				return err
			}
			defer monitor.Stop()

			fmt.Fprintln(cmd.OutOrStdout(), "Watching for removable media; press Ctrl-C to stop")
			<-runCtx.Done()
			return nil
		},
	}

	cmd.Flags().BoolVar(&scanOnStart, "scan-on-start", false, "Run a full scan before watching")
	return cmd
}
