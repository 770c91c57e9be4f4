package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"popon/internal/catalog"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var runID string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded conversions from the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.Catalog.Enabled {
				return fmt.Errorf("catalog is disabled in configuration")
			}

			store, err := catalog.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			var entries []*catalog.Entry
			if runID != "" {
				entries, err = store.ListByRun(cmd.Context(), runID)
			} else {
				entries, err = store.List(cmd.Context(), limit)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No conversions recorded")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{
					strconv.FormatInt(entry.ID, 10),
					entry.CreatedAt.Local().Format(time.DateTime),
					entry.Title,
					entry.Format,
					strconv.Itoa(entry.CueCount),
					entry.Duration.Truncate(time.Second).String(),
					entry.OutputPath,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Created", "Title", "Format", "Cues", "Duration", "Output"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum entries to show (0 for all)")
	cmd.Flags().StringVar(&runID, "run", "", "Show entries from one batch run")
	return cmd
}
