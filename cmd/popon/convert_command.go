package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"popon/internal/config"
	"popon/internal/convert"
	"popon/internal/logging"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var formatFlag string
	var keepStyles bool
	var toStdout bool

	cmd := &cobra.Command{
		Use:   "convert <file.scc>",
		Short: "Convert an SCC file to WebVTT or SRT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			logger = logging.WithComponent(logger, "convert")

			source, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			opts := convert.OptionsFromConfig(cfg)
			if formatFlag != "" {
				opts.Format = formatFlag
			}
			if keepStyles {
				opts.KeepStyles = true
			}

			in, err := os.Open(source)
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer in.Close()

			if toStdout {
				result, err := convert.Run(in, cmd.OutOrStdout(), opts)
				if err != nil {
					return err
				}
				logger.Info("converted stream",
					logging.Args(
						logging.String(logging.FieldSource, source),
						logging.Int(logging.FieldCueCount, result.CueCount),
					)...)
				return nil
			}

			target := outputPath
			if target == "" {
				target = convert.OutputPath(source, cfg.Paths.OutputDir, opts.Format)
			} else if target, err = config.ExpandPath(target); err != nil {
				return err
			}
			if dir := filepath.Dir(target); dir != "" {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create output directory: %w", err)
				}
			}

			out, err := os.Create(target)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}

			result, err := convert.Run(in, out, opts)
			if closeErr := out.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				return err
			}

			logger.Info("converted file",
				logging.Args(
					logging.String(logging.FieldSource, source),
					logging.String(logging.FieldOutput, target),
					logging.String(logging.FieldFormat, opts.Format),
					logging.Int(logging.FieldCueCount, result.CueCount),
				)...)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d cues to %s\n", result.CueCount, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format (vtt or srt)")
	cmd.Flags().BoolVar(&keepStyles, "keep-styles", false, "Keep color and flash styling")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Write output to stdout instead of a file")
	return cmd
}
