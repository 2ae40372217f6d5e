package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Formats accepted by the format key. "text" is only meaningful for humans.
var Formats = []string{"workflow", "json", "markdown", "text"}

// LogFormats accepted by the log_format key.
var LogFormats = []string{"text", "json"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ThemeDir) == "" {
		return fmt.Errorf("theme_dir is required")
	}
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("invalid format %q: expected one of %s", c.Format, strings.Join(Formats, ", "))
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if !slices.Contains(LogFormats, c.LogFormat) {
		return fmt.Errorf("invalid log_format %q: expected one of %s", c.LogFormat, strings.Join(LogFormats, ", "))
	}
	if !c.Engine.Builtin && c.Engine.RulesDir == "" {
		return fmt.Errorf("no checks configured: enable engine.builtin or set engine.rules_dir")
	}
	return nil
}

// ParseLogLevel converts a log_level value to a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log_level %q: expected debug, info, warn or error", s)
	}
	return level, nil
}
