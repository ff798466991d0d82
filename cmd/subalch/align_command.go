package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"subalch/internal/config"
	"subalch/internal/logging"
	"subalch/internal/phonetic"
	"subalch/internal/review"
	"subalch/internal/script"
	"subalch/internal/srt"
	"subalch/internal/transcript"
)

type alignOutput struct {
	Truth       string              `json:"truth"`
	Predicted   string              `json:"predicted"`
	Report      review.Report       `json:"report"`
	Suggestions []review.Correction `json:"suggestions"`
}

func newAlignCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var keepPunctuation bool

	cmd := &cobra.Command{
		Use:   "align <truth.txt> <predicted>",
		Short: "Compare recognized text against a ground-truth script",
		Long: "Compare recognized text against a ground-truth script.\n\n" +
			"predicted may be an .srt file, a transcript .json file, or plain text.\n" +
			"Each mismatch is listed with the characters the recognizer produced in its\n" +
			"place and how alike they sound.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			_, logger, err := ctx.runContext(cmd)
			if err != nil {
				return err
			}
			opts := script.Options{KeepPunctuation: keepPunctuation}

			truthPath, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			predictedPath, err := config.ExpandPath(args[1])
			if err != nil {
				return err
			}
			truth, err := script.ReadFile(truthPath, opts)
			if err != nil {
				return err
			}
			predicted, err := loadPredicted(predictedPath, opts)
			if err != nil {
				return err
			}

			weights := phonetic.Weights{
				Initial: cfg.Align.InitialWeight,
				Final:   cfg.Align.FinalWeight,
				Tone:    cfg.Align.ToneWeight,
			}
			report, err := review.Review(truth, predicted, weights)
			if err != nil {
				return err
			}
			suggestions := report.Suggestions(cfg.Align.SuggestThreshold)
			logger.Info("alignment reviewed",
				logging.String(logging.FieldEventType, "align_review"),
				logging.Int("truth_chars", report.TruthLen),
				logging.Int("predicted_chars", report.PredictedLen),
				logging.Float64("accuracy", report.Accuracy),
				logging.Int("mismatches", len(report.Corrections)),
				logging.Int("suggestions", len(suggestions)),
			)

			if asJSON {
				if suggestions == nil {
					suggestions = []review.Correction{}
				}
				return writeJSON(cmd, alignOutput{
					Truth:       truthPath,
					Predicted:   predictedPath,
					Report:      report,
					Suggestions: suggestions,
				})
			}
			printAlignReport(cmd, ctx.colorize(cmd.OutOrStdout()), report, cfg.Align.SuggestThreshold)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	cmd.Flags().BoolVar(&keepPunctuation, "keep-punctuation", false, "Compare punctuation as well as text")
	return cmd
}

// loadPredicted reads recognizer output by file extension.
func loadPredicted(path string, opts script.Options) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		cues, err := srt.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return script.Chars(srt.Text(cues), opts)
	case ".json":
		t, err := transcript.ReadJSON(path)
		if err != nil {
			return nil, err
		}
		return script.Chars(t.Text(), opts)
	default:
		return script.ReadFile(path, opts)
	}
}

func printAlignReport(cmd *cobra.Command, colorize bool, report review.Report, threshold float64) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderSectionHeader("Alignment", colorize))
	fmt.Fprintln(out, renderStatusLine("Truth", statusInfo, fmt.Sprintf("%d chars", report.TruthLen), colorize))
	fmt.Fprintln(out, renderStatusLine("Predicted", statusInfo, fmt.Sprintf("%d chars", report.PredictedLen), colorize))
	fmt.Fprintln(out, renderStatusLine("Accuracy", accuracyKind(report.Accuracy),
		fmt.Sprintf("%s (%d matched)", formatPercent(report.Accuracy), report.Matched), colorize))

	if len(report.Corrections) == 0 {
		fmt.Fprintln(out, "No mismatches")
		return
	}

	rows := make([][]string, 0, len(report.Corrections))
	for i, c := range report.Corrections {
		predicted := c.PredictedText
		if c.Dropped() {
			predicted = "(dropped)"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			formatIndices(c.Truth),
			c.TruthText,
			formatIndices(c.Predicted),
			predicted,
			fmt.Sprintf("%.2f", c.Similarity),
			yesNo(!c.Dropped() && c.Similarity >= threshold),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"#", "Truth @", "Truth", "Predicted @", "Predicted", "Similarity", "Homophone"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignLeft, alignRight, alignLeft, alignRight, alignLeft},
	))
}
