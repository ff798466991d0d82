package stt

import (
	"strconv"
	"time"

	"subalch/internal/config"
)

// Config captures runtime settings for the recognizer command.
type Config struct {
	Command    string
	Model      string
	VADModel   string
	Hotword    string
	BatchSizeS int
	Timeout    time.Duration
}

// Defaults used when a Config field is left empty.
const (
	DefaultCommand    = "funasr"
	DefaultModel      = "paraformer-zh"
	DefaultBatchSizeS = 300
	DefaultTimeout    = 30 * time.Minute
)

// ConfigFrom extracts the recognizer settings from the application config.
func ConfigFrom(cfg *config.Config) Config {
	if cfg == nil {
		return Config{}
	}
	return Config{
		Command:    cfg.STT.Command,
		Model:      cfg.STT.Model,
		VADModel:   cfg.STT.VADModel,
		Hotword:    cfg.STT.Hotword,
		BatchSizeS: cfg.STT.BatchSizeS,
		Timeout:    time.Duration(cfg.STT.TimeoutSeconds) * time.Second,
	}
}

func (c Config) withDefaults() Config {
	if c.Command == "" {
		c.Command = DefaultCommand
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BatchSizeS <= 0 {
		c.BatchSizeS = DefaultBatchSizeS
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

func (c Config) args(audioPath string) []string {
	args := []string{"--model", c.Model}
	if c.VADModel != "" {
		args = append(args, "--vad-model", c.VADModel)
	}
	if c.Hotword != "" {
		args = append(args, "--hotword", c.Hotword)
	}
	args = append(args, "--batch-size-s", strconv.Itoa(c.BatchSizeS), audioPath)
	return args
}
