// Package messages holds the fixed player-facing strings of the engine.
// A Table is built once at startup and never modified afterwards.
package messages

import "fmt"

// Key names one message.
type Key int

const (
	ExitConfirmation Key = iota
	TextSpeedSet
	CursorStyleSet
	BlockedDir
	InvalidDir
	InvalidInspect
	InvalidTake
	InvalidTakeHolding
	UnknownTake
	InvalidDrop
	UnknownDrop
	CannotCarry
	InvalidTextSpeed
	InvalidCursorStyle
	UnknownSetting
	InvalidCommand
	InvalidExitCommand
	UnknownError
	MorePrompt
	numKeys
)

var names = [numKeys]string{
	ExitConfirmation:   "exit_confirmation",
	TextSpeedSet:       "text_speed_set",
	CursorStyleSet:     "cursor_style_set",
	BlockedDir:         "blocked_dir",
	InvalidDir:         "invalid_dir",
	InvalidInspect:     "invalid_inspect",
	InvalidTake:        "invalid_take",
	InvalidTakeHolding: "invalid_take_holding",
	UnknownTake:        "unknown_take",
	InvalidDrop:        "invalid_drop",
	UnknownDrop:        "unknown_drop",
	CannotCarry:        "cannot_carry",
	InvalidTextSpeed:   "invalid_text_speed",
	InvalidCursorStyle: "invalid_cursor_style",
	UnknownSetting:     "unknown_setting",
	InvalidCommand:     "invalid_command",
	InvalidExitCommand: "invalid_exit_command",
	UnknownError:       "unknown_error",
	MorePrompt:         "more_prompt",
}

var defaults = [numKeys]string{
	ExitConfirmation:   "Do you want to exit? (y/n)",
	TextSpeedSet:       "Text speed updated.",
	CursorStyleSet:     "Cursor style updated.",
	BlockedDir:         "You can't go that way.",
	InvalidDir:         "Which way?",
	InvalidInspect:     "You don't see that in here.",
	InvalidTake:        "You don't see that in here.",
	InvalidTakeHolding: "You already have that.",
	UnknownTake:        "What do you want to take?",
	InvalidDrop:        "You're not holding that item.",
	UnknownDrop:        "What do you want to drop?",
	CannotCarry:        "You don't need that.",
	InvalidTextSpeed:   "Usage: set textspeed <slow/med/fast>",
	InvalidCursorStyle: "Usage: set cursor <1/2/3/4>",
	UnknownSetting:     "What do you want to set?\nUsage: set <setting> <arg>",
	InvalidCommand:     "Command not recognized.",
	InvalidExitCommand: "Command not recognized. Do you want to exit? (y/n)",
	UnknownError:       "Something went wrong. Please try that again.",
	MorePrompt:         "...",
}

func (k Key) String() string {
	if k < 0 || k >= numKeys {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return names[k]
}

// Table maps every Key to its text.
type Table struct {
	text [numKeys]string
}

// Default returns the built-in table.
func Default() *Table {
	return &Table{text: defaults}
}

// New returns the built-in table with overrides applied. Overrides are keyed
// by message name (e.g. "blocked_dir"); unknown names are an error.
func New(overrides map[string]string) (*Table, error) {
	t := Default()
	for name, text := range overrides {
		k, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown message %q", name)
		}
		t.text[k] = text
	}
	return t, nil
}

// Lookup finds the key for a message name.
func Lookup(name string) (Key, bool) {
	for k, n := range names {
		if n == name {
			return Key(k), true
		}
	}
	return 0, false
}

// Get returns the text for k.
func (t *Table) Get(k Key) string {
	return t.text[k]
}
