package config

const (
	defaultTranscriptDir    = "~/.local/share/subalch/transcripts"
	defaultLogDir           = "~/.local/share/subalch/logs"
	defaultStorePath        = "~/.local/share/subalch/transcripts.db"
	defaultGapThresholdMS   = 100
	defaultSTTCommand       = "funasr"
	defaultSTTModel         = "paraformer-zh"
	defaultSTTVADModel      = "fsmn-vad"
	defaultSTTBatchSizeS    = 300
	defaultSTTTimeout       = 1800
	defaultInitialWeight    = 0.4
	defaultFinalWeight      = 0.4
	defaultToneWeight       = 0.2
	defaultSuggestThreshold = 0.6
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			TranscriptDir: defaultTranscriptDir,
			LogDir:        defaultLogDir,
			StorePath:     defaultStorePath,
		},
		Merge: Merge{
			GapThresholdMS: defaultGapThresholdMS,
		},
		STT: STT{
			Command:        defaultSTTCommand,
			Model:          defaultSTTModel,
			VADModel:       defaultSTTVADModel,
			BatchSizeS:     defaultSTTBatchSizeS,
			TimeoutSeconds: defaultSTTTimeout,
		},
		Align: Align{
			InitialWeight:    defaultInitialWeight,
			FinalWeight:      defaultFinalWeight,
			ToneWeight:       defaultToneWeight,
			SuggestThreshold: defaultSuggestThreshold,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
