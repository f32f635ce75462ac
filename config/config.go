// Package config loads the optional settings file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nathoo/textbasedgame/engine/messages"
	"github.com/nathoo/textbasedgame/types"
)

// EnvPath names the environment variable consulted when no --config flag
// is given.
const EnvPath = "TEXTBASEDGAME_CONFIG"

// Config holds every tunable the engine and front ends read at startup.
type Config struct {
	TextSpeed         string            `yaml:"text_speed"`   // slow, med, fast
	CursorStyle       int               `yaml:"cursor_style"` // 1..4
	LineCount         int               `yaml:"line_count"`
	LineWidth         int               `yaml:"line_width"`
	InputLimit        int               `yaml:"input_limit"`
	FrameRate         int               `yaml:"frame_rate"`
	BackspaceRepeatMs int               `yaml:"backspace_repeat_ms"`
	Debug             bool              `yaml:"debug"`
	Messages          map[string]string `yaml:"messages"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		TextSpeed:         "med",
		CursorStyle:       int(types.VerticalBar),
		LineCount:         6,
		LineWidth:         65,
		InputLimit:        63,
		FrameRate:         60,
		BackspaceRepeatMs: 25,
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Path picks the config file: the flag value if set, else $TEXTBASEDGAME_CONFIG.
func Path(flag string) string {
	if flag != "" {
		return flag
	}
	return os.Getenv(EnvPath)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, ok := ParseSpeed(c.TextSpeed); !ok {
		return fmt.Errorf("text_speed %q: want slow, med or fast", c.TextSpeed)
	}
	if c.CursorStyle < int(types.VerticalBar) || c.CursorStyle > int(types.TransparentBox) {
		return fmt.Errorf("cursor_style %d: want 1..4", c.CursorStyle)
	}
	if c.LineCount < 2 {
		return fmt.Errorf("line_count %d: want at least 2", c.LineCount)
	}
	if c.LineWidth < 10 {
		return fmt.Errorf("line_width %d: want at least 10", c.LineWidth)
	}
	if c.InputLimit < 1 {
		return fmt.Errorf("input_limit %d: want at least 1", c.InputLimit)
	}
	if c.FrameRate < 1 || c.FrameRate > 240 {
		return fmt.Errorf("frame_rate %d: want 1..240", c.FrameRate)
	}
	if c.BackspaceRepeatMs < 0 {
		return fmt.Errorf("backspace_repeat_ms %d: must not be negative", c.BackspaceRepeatMs)
	}
	for name := range c.Messages {
		if _, ok := messages.Lookup(name); !ok {
			return fmt.Errorf("messages: unknown message %q", name)
		}
	}
	return nil
}

// Speed returns the configured text speed, Medium if unset or invalid.
func (c Config) Speed() types.TextSpeed {
	if s, ok := ParseSpeed(c.TextSpeed); ok {
		return s
	}
	return types.Medium
}

// Cursor returns the configured cursor style, VerticalBar if invalid.
func (c Config) Cursor() types.CursorStyle {
	cs := types.CursorStyle(c.CursorStyle)
	if cs < types.VerticalBar || cs > types.TransparentBox {
		return types.VerticalBar
	}
	return cs
}

// ParseSpeed maps a speed name to a TextSpeed.
func ParseSpeed(s string) (types.TextSpeed, bool) {
	switch s {
	case "slow", "s":
		return types.Slow, true
	case "med", "medium", "m":
		return types.Medium, true
	case "fast", "f":
		return types.Fast, true
	}
	return 0, false
}
