package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/textbasedgame/types"
)

// exitNames lists the open exits of the current room in direction order.
func (m Model) exitNames() []string {
	w := m.game.World
	var dirs []string
	for _, d := range types.Directions {
		if w.Exit(w.Current().Name, d) != "" {
			dirs = append(dirs, d.String())
		}
	}
	return dirs
}

// renderStatusBar produces a full-width inverted status line showing the
// current room, its exits, the inventory and the text speed.
func (m Model) renderStatusBar(width int) string {
	w := m.game.World

	exitStr := strings.Join(m.exitNames(), ",")
	if exitStr == "" {
		exitStr = "none"
	}
	left := fmt.Sprintf(" %s | Exits: %s", w.Current().Name, exitStr)
	right := fmt.Sprintf("Speed: %s ", m.game.Buffer().Speed())

	// Show inventory items if they fit, otherwise just count.
	if inv := w.Inventory(); len(inv) > 0 {
		names := make([]string, len(inv))
		for i, it := range inv {
			names[i] = w.Item(it).Display
		}
		candidate := fmt.Sprintf("Inv: %s | %s", strings.Join(names, ", "), right)
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < width {
			right = candidate
		} else {
			right = fmt.Sprintf("Inv: %d | %s", len(inv), right)
		}
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(width).Render(bar)
}
