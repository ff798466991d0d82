package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"subalch/internal/config"
	"subalch/internal/subtitles"
	"subalch/internal/transcript"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var threshold int64
	var fromStore bool

	cmd := &cobra.Command{
		Use:   "generate <src> <dst>",
		Short: "Merge a timed transcript into an SRT subtitle file",
		Long: "Merge a timed transcript into an SRT subtitle file.\n\n" +
			"src is a transcript JSON file, a stored transcript key (with --from-store),\n" +
			"or a directory of transcript JSON files. For a directory, dst is the output\n" +
			"directory and receives one <key>.srt per transcript.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			runCtx, logger, err := ctx.runContext(cmd)
			if err != nil {
				return err
			}

			gap := cfg.Merge.GapThresholdMS
			if cmd.Flags().Changed("threshold") {
				if threshold < 0 {
					return fmt.Errorf("--threshold must be >= 0, got %d", threshold)
				}
				gap = threshold
			}
			gen := subtitles.NewGenerator(gap, logger)
			out := cmd.OutOrStdout()

			dstPath, err := config.ExpandPath(args[1])
			if err != nil {
				return err
			}

			if fromStore {
				st, err := ctx.openStore(runCtx)
				if err != nil {
					return err
				}
				defer st.Close()
				t, err := st.Load(runCtx, args[0])
				if err != nil {
					return err
				}
				result, err := gen.WriteSRT(dstPath, t)
				if err != nil {
					return err
				}
				printResult(cmd, result)
				return nil
			}

			srcPath, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			info, err := os.Stat(srcPath)
			if err != nil {
				return fmt.Errorf("inspect source %q: %w", srcPath, err)
			}
			if info.IsDir() {
				results, err := gen.GenerateDir(runCtx, srcPath, dstPath)
				for _, result := range results {
					printResult(cmd, result)
				}
				fmt.Fprintf(out, "Generated %d subtitle file(s) in %s\n", len(results), dstPath)
				return err
			}

			t, err := transcript.ReadJSON(srcPath)
			if err != nil {
				return err
			}
			result, err := gen.WriteSRT(dstPath, t)
			if err != nil {
				return err
			}
			printResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().Int64Var(&threshold, "threshold", 0, "Gap threshold in milliseconds (defaults to merge.gap_threshold_ms)")
	cmd.Flags().BoolVar(&fromStore, "from-store", false, "Treat src as a key in the transcript store")
	return cmd
}

func printResult(cmd *cobra.Command, result subtitles.Result) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d fragments -> %d lines (%s) -> %s\n",
		result.Key, result.Fragments, result.SegmentCount,
		formatMillis(result.Duration.Milliseconds()), result.SubtitlePath)
}
