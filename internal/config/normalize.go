package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSTT()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.TranscriptDir) == "" {
		c.Paths.TranscriptDir = defaultTranscriptDir
	}
	if c.Paths.TranscriptDir, err = expandPath(c.Paths.TranscriptDir); err != nil {
		return fmt.Errorf("paths.transcript_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.StorePath) == "" {
		c.Paths.StorePath = defaultStorePath
	}
	if c.Paths.StorePath, err = expandPath(c.Paths.StorePath); err != nil {
		return fmt.Errorf("paths.store_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeSTT() {
	c.STT.Command = strings.TrimSpace(c.STT.Command)
	if value, ok := os.LookupEnv("SUBALCH_STT_COMMAND"); ok && strings.TrimSpace(value) != "" {
		c.STT.Command = strings.TrimSpace(value)
	}
	if c.STT.Command == "" {
		c.STT.Command = defaultSTTCommand
	}
	c.STT.Model = strings.TrimSpace(c.STT.Model)
	if c.STT.Model == "" {
		c.STT.Model = defaultSTTModel
	}
	c.STT.VADModel = strings.TrimSpace(c.STT.VADModel)
	c.STT.Hotword = strings.Join(strings.Fields(c.STT.Hotword), " ")
	if c.STT.Hotword == "" {
		if value, ok := os.LookupEnv("SUBALCH_HOTWORD"); ok {
			c.STT.Hotword = strings.Join(strings.Fields(value), " ")
		}
	}
	if c.STT.BatchSizeS <= 0 {
		c.STT.BatchSizeS = defaultSTTBatchSizeS
	}
	if c.STT.TimeoutSeconds <= 0 {
		c.STT.TimeoutSeconds = defaultSTTTimeout
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	switch c.Logging.Level {
	case "":
		c.Logging.Level = defaultLogLevel
	case "warning":
		c.Logging.Level = "warn"
	}
}
