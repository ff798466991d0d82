package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"subalch/internal/config"
	"subalch/internal/logging"
	"subalch/internal/transcript"
)

func newTranscriptsCommand(ctx *commandContext) *cobra.Command {
	transcriptsCmd := &cobra.Command{
		Use:     "transcripts",
		Aliases: []string{"ts"},
		Short:   "Manage the transcript store",
	}

	transcriptsCmd.AddCommand(newTranscriptsListCommand(ctx))
	transcriptsCmd.AddCommand(newTranscriptsShowCommand(ctx))
	transcriptsCmd.AddCommand(newTranscriptsImportCommand(ctx))
	transcriptsCmd.AddCommand(newTranscriptsDeleteCommand(ctx))

	return transcriptsCmd
}

func newTranscriptsListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored transcripts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runCtx := cmd.Context()
			st, err := ctx.openStore(runCtx)
			if err != nil {
				return err
			}
			defer st.Close()

			summaries, err := st.List(runCtx)
			if err != nil {
				return err
			}
			if asJSON {
				if summaries == nil {
					summaries = []transcript.Summary{}
				}
				return writeJSON(cmd, summaries)
			}

			out := cmd.OutOrStdout()
			if len(summaries) == 0 {
				fmt.Fprintln(out, "No transcripts stored")
				return nil
			}
			rows := make([][]string, 0, len(summaries))
			for _, s := range summaries {
				source := s.SourcePath
				if source == "" {
					source = "-"
				}
				rows = append(rows, []string{
					s.Key,
					fmt.Sprintf("%d", s.WordCount),
					formatMillis(s.DurationMS),
					source,
					s.UpdatedAt.Local().Format("2006-01-02 15:04"),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Key", "Words", "Duration", "Source", "Updated"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print summaries as JSON")
	return cmd
}

func newTranscriptsShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <key>",
		Short: "Show a stored transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runCtx := cmd.Context()
			st, err := ctx.openStore(runCtx)
			if err != nil {
				return err
			}
			defer st.Close()

			t, err := st.Load(runCtx, args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, t)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%d words, %s)\n", t.Key, len(t.Words), formatMillis(t.Duration()))
			rows := make([][]string, 0, len(t.Words))
			for i, word := range t.Words {
				span := t.Timeline[i]
				rows = append(rows, []string{
					fmt.Sprintf("%d", i),
					fmt.Sprintf("%d", span.Start),
					fmt.Sprintf("%d", span.End),
					word,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Start ms", "End ms", "Text"},
				rows,
				[]columnAlignment{alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the transcript as JSON")
	return cmd
}

func newTranscriptsImportCommand(ctx *commandContext) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "import <file.json>...",
		Short: "Import transcript JSON files into the store",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(key) != "" && len(args) > 1 {
				return fmt.Errorf("--key can only be used with a single file")
			}
			runCtx, logger, err := ctx.runContext(cmd)
			if err != nil {
				return err
			}
			st, err := ctx.openStore(runCtx)
			if err != nil {
				return err
			}
			defer st.Close()

			out := cmd.OutOrStdout()
			for _, arg := range args {
				path, err := config.ExpandPath(arg)
				if err != nil {
					return err
				}
				t, err := transcript.ReadJSON(path)
				if err != nil {
					return err
				}
				if value := strings.TrimSpace(key); value != "" {
					t.Key = value
				}
				if err := st.Save(runCtx, t, path); err != nil {
					return err
				}
				logger.Info("transcript imported",
					logging.String(logging.FieldTranscriptKey, t.Key),
					logging.String("source_file", path),
				)
				fmt.Fprintf(out, "Imported %s (%d words)\n", t.Key, len(t.Words))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Store the transcript under this key instead of its own")
	return cmd
}

func newTranscriptsDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <key>...",
		Aliases: []string{"rm"},
		Short:   "Delete stored transcripts",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runCtx := cmd.Context()
			st, err := ctx.openStore(runCtx)
			if err != nil {
				return err
			}
			defer st.Close()

			for _, key := range args {
				if err := st.Delete(runCtx, key); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", key)
			}
			return nil
		},
	}
}
