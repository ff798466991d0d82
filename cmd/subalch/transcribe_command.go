package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"subalch/internal/config"
	"subalch/internal/logging"
	"subalch/internal/stt"
	"subalch/internal/transcript"
)

var newTranscriber = func(cfg stt.Config, logger *slog.Logger) stt.Transcriber {
	return stt.NewCommandTranscriber(cfg, logger)
}

func newTranscribeCommand(ctx *commandContext) *cobra.Command {
	var model string
	var hotword string
	var store bool

	cmd := &cobra.Command{
		Use:   "transcribe <audio> <dst.json>",
		Short: "Run speech recognition on an audio file and save the timed transcript",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			runCtx, logger, err := ctx.runContext(cmd)
			if err != nil {
				return err
			}

			audioPath, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			dstPath, err := config.ExpandPath(args[1])
			if err != nil {
				return err
			}

			sttCfg := stt.ConfigFrom(cfg)
			if value := strings.TrimSpace(model); value != "" {
				sttCfg.Model = value
			}
			if value := strings.Join(strings.Fields(hotword), " "); value != "" {
				sttCfg.Hotword = value
			}

			result, err := newTranscriber(sttCfg, logger).Transcribe(runCtx, audioPath)
			if err != nil {
				return err
			}
			if err := transcript.WriteJSON(dstPath, result); err != nil {
				return err
			}

			if store {
				st, err := ctx.openStore(runCtx)
				if err != nil {
					return err
				}
				defer st.Close()
				if err := st.Save(runCtx, result, audioPath); err != nil {
					return err
				}
				logger.Info("transcript stored",
					logging.String(logging.FieldTranscriptKey, result.Key),
					logging.String("store", st.Path()),
				)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Transcribed %s: %d words, %s -> %s\n",
				result.Key, len(result.Words), formatMillis(result.Duration()), dstPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "Recognition model (overrides stt.model)")
	cmd.Flags().StringVar(&hotword, "hotword", "", "Space separated hot words (overrides stt.hotword)")
	cmd.Flags().BoolVar(&store, "store", false, "Also save the transcript to the transcript store")
	return cmd
}
