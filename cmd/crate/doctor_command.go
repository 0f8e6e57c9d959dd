package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"crate/internal/preflight"
	"crate/internal/textutil"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that configured paths are usable",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			results := preflight.RunAll(cfg)

			if jsonOutput {
				type resultView struct {
					Name   string `json:"name"`
					Passed bool   `json:"passed"`
					Detail string `json:"detail"`
				}
				views := make([]resultView, 0, len(results))
				for _, result := range results {
					views = append(views, resultView(result))
				}
				if err := writeJSON(cmd, views); err != nil {
					return err
				}
			} else {
				color := stdoutIsTerminal()
				rows := make([][]string, 0, len(results))
				for _, result := range results {
					status := colorize(
						textutil.Ternary(result.Passed, "OK", "FAIL"),
						textutil.Ternary(result.Passed, ansiGreen, ansiRed),
						color,
					)
					rows = append(rows, []string{result.Name, status, result.Detail})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Check", "Status", "Detail"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft},
				))
			}

			if !preflight.Passed(results) {
				return errors.New("one or more checks failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
