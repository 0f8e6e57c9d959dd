package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"crate/internal/artwork"
	"crate/internal/scanner"
	"crate/internal/trackstore"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the music library and refresh the track database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			lock := flock.New(filepath.Join(cfg.Paths.LogDir, "crate-scan.lock"))
			ok, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire scan lock: %w", err)
			}
			if !ok {
				return errors.New("another scan is already running")
			}
			defer func() {
				_ = lock.Unlock()
			}()

			var summary *scanner.Summary
			err = ctx.withStore(func(store *trackstore.Store) error {
				s := scanner.New(cfg, store, artwork.NewCache(cfg), logger)
				summary, err = s.Scan(cmd.Context())
				return err
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, summary)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Scanned %d files in %s\n", summary.Discovered, summary.Elapsed.Round(timeRounding))
			fmt.Fprintf(out, "Stored %d tracks, cached %d covers, pruned %d vanished rows\n",
				summary.Stored, summary.Covers, summary.Pruned)
			if summary.TagErrors > 0 {
				fmt.Fprintf(out, "%d files had unreadable tags and fell back to filename metadata\n", summary.TagErrors)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output scan summary as JSON")
	return cmd
}
