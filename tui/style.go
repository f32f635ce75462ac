package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/textbasedgame/types"
)

// Styles used throughout the TUI.
var (
	styleFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	styleBanner = lipgloss.NewStyle().
			Background(lipgloss.Color("24")).
			Foreground(lipgloss.Color("230")).
			Bold(true).
			Align(lipgloss.Center)

	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleNarration = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	styleMore = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Blink(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleInput = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleHint = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	styleCursorBar = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34"))

	styleCursorUnderline = lipgloss.NewStyle().
				Underline(true)

	styleCursorOutline = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34")).
				Bold(true)

	styleCursorBlock = lipgloss.NewStyle().
				Reverse(true)
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarration lineKind = iota
	kindError
	kindMore
)

// classifyLine determines what kind of output line this is. more is the
// paging prompt text.
func classifyLine(line, more string) lineKind {
	switch {
	case more != "" && line == more:
		return kindMore
	case strings.HasPrefix(line, "You don't"),
		strings.HasPrefix(line, "You can't"),
		strings.HasPrefix(line, "You're not"),
		strings.HasPrefix(line, "Command not recognized"),
		strings.HasPrefix(line, "Usage:"),
		strings.HasPrefix(line, "Something went wrong"):
		return kindError
	default:
		return kindNarration
	}
}

func renderLine(line string, kind lineKind) string {
	switch kind {
	case kindError:
		return styleError.Render(line)
	case kindMore:
		return styleMore.Render(line)
	default:
		return styleNarration.Render(line)
	}
}

// renderInput draws the input line: prompt, typed text, cursor, then the
// hint suffix. Bar and outline cursors take a cell of their own; underline
// and block cursors sit on the first hint character.
func renderInput(input, hint string, style types.CursorStyle, visible bool) string {
	var b strings.Builder
	b.WriteString(styleInputPrompt.Render("> "))
	b.WriteString(styleInput.Render(input))

	under, rest := " ", ""
	if hint != "" {
		under, rest = hint[:1], hint[1:]
	}
	switch style {
	case types.Underline, types.TransparentBox:
		switch {
		case !visible:
			b.WriteString(styleHint.Render(under))
		case style == types.Underline:
			b.WriteString(styleCursorUnderline.Render(under))
		default:
			b.WriteString(styleCursorBlock.Render(under))
		}
		b.WriteString(styleHint.Render(rest))
	default:
		switch {
		case !visible:
			b.WriteString(" ")
		case style == types.OutlineBox:
			b.WriteString(styleCursorOutline.Render("▯"))
		default:
			b.WriteString(styleCursorBar.Render("▏"))
		}
		b.WriteString(styleHint.Render(hint))
	}
	return b.String()
}
