package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"popon/internal/config"
	"popon/internal/convert"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var keepStyles bool

	cmd := &cobra.Command{
		Use:   "inspect <file.scc>",
		Short: "Decode an SCC file and print its cues as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			source, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			opts := convert.OptionsFromConfig(cfg)
			if keepStyles {
				opts.KeepStyles = true
			}

			in, err := os.Open(source)
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer in.Close()

			cues, err := convert.Cues(in, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, line := range heading(out, fmt.Sprintf("%s: %d cues", source, len(cues))) {
				fmt.Fprintln(out, line)
			}
			if len(cues) == 0 {
				return nil
			}

			rows := make([][]string, 0, len(cues))
			for i, cue := range cues {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					cue.Start.FormatMillis(),
					cue.End.FormatMillis(),
					cue.Position.String(),
					cue.Align.String(),
					cue.Content.Flatten(),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Start", "End", "Position", "Align", "Text"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&keepStyles, "keep-styles", false, "Keep color and flash styling")
	return cmd
}
