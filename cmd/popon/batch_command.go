package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"popon/internal/catalog"
	"popon/internal/config"
	"popon/internal/convert"
	"popon/internal/logging"
)

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "batch <directory>",
		Short: "Convert every SCC file under a directory and record the results",
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

			root, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			opts := convert.OptionsFromConfig(cfg)
			if formatFlag != "" {
				opts.Format = formatFlag
			}

			sources, err := findSCCFiles(root)
			if err != nil {
				return err
			}
			if len(sources) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No SCC files found under %s\n", root)
				return nil
			}

			var store *catalog.Store
			if cfg.Catalog.Enabled {
				if err := cfg.EnsureDirectories(); err != nil {
					return err
				}
				lock := flock.New(filepath.Join(cfg.Paths.CatalogDir, "popon.lock"))
				ok, err := lock.TryLock()
				if err != nil {
					return fmt.Errorf("acquire catalog lock: %w", err)
				}
				if !ok {
					return fmt.Errorf("another popon batch run holds the catalog lock")
				}
				defer lock.Unlock()

				store, err = catalog.Open(cfg)
				if err != nil {
					return err
				}
				defer store.Close()
			}

			runID := uuid.NewString()
			logger = logging.WithComponent(logger, "batch").With(
				logging.Args(logging.String(logging.FieldRunID, runID))...)

			converted, failed := 0, 0
			for _, source := range sources {
				result, target, err := batchConvert(source, cfg, opts)
				if err != nil {
					failed++
					logger.Error("conversion failed",
						logging.Args(
							logging.String(logging.FieldSource, source),
							logging.Error(err),
						)...)
					continue
				}
				converted++
				logger.Info("converted file",
					logging.Args(
						logging.String(logging.FieldSource, source),
						logging.String(logging.FieldOutput, target),
						logging.Int(logging.FieldCueCount, result.CueCount),
					)...)

				if store != nil {
					_, err := store.Record(cmd.Context(), catalog.Entry{
						RunID:      runID,
						SourcePath: source,
						Title:      catalog.DeriveTitle(source),
						OutputPath: target,
						Format:     opts.Format,
						CueCount:   result.CueCount,
						Duration:   result.Duration,
					})
					if err != nil {
						logger.Error("catalog record failed",
							logging.Args(
								logging.String(logging.FieldSource, source),
								logging.Error(err),
							)...)
					}
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Run %s: %d converted, %d failed\n", runID, converted, failed)
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(sources))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format (vtt or srt)")
	return cmd
}

func batchConvert(source string, cfg *config.Config, opts convert.Options) (convert.Result, string, error) {
	in, err := os.Open(source)
	if err != nil {
		return convert.Result{}, "", fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	target := convert.OutputPath(source, cfg.Paths.OutputDir, opts.Format)
	if dir := filepath.Dir(target); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return convert.Result{}, "", fmt.Errorf("create output directory: %w", err)
		}
	}

	out, err := os.Create(target)
	if err != nil {
		return convert.Result{}, "", fmt.Errorf("create output: %w", err)
	}

	result, err := convert.Run(in, out, opts)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return convert.Result{}, "", err
	}
	return result, target, nil
}

func findSCCFiles(root string) ([]string, error) {
	var sources []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".scc") {
			sources = append(sources, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	sort.Strings(sources)
	return sources, nil
}
