// Package tui provides the Bubble Tea display surface for the game: it
// turns terminal key presses into engine keys, drives the frame loop, and
// renders the room banner, output lines, input line and status bar.
package tui

// History remembers confirmed input lines for Up/Down recall.
type History struct {
	lines []string
	limit int
	pos   int // len(lines) when not browsing
}

// NewHistory creates a history that keeps at most limit lines.
func NewHistory(limit int) *History {
	return &History{lines: make([]string, 0, limit), limit: limit}
}

// Add records a confirmed line and stops browsing. Blank lines and
// repeats of the newest line are not recorded.
func (h *History) Add(line string) {
	if line != "" && (len(h.lines) == 0 || h.lines[len(h.lines)-1] != line) {
		h.lines = append(h.lines, line)
		if len(h.lines) > h.limit {
			h.lines = h.lines[1:]
		}
	}
	h.pos = len(h.lines)
}

// Older steps back one line. It stays on the oldest line once there.
func (h *History) Older() (string, bool) {
	if len(h.lines) == 0 {
		return "", false
	}
	if h.pos > 0 {
		h.pos--
	}
	return h.lines[h.pos], true
}

// Newer steps forward one line. Stepping past the newest line ends
// browsing and reports false.
func (h *History) Newer() (string, bool) {
	if h.pos >= len(h.lines) {
		return "", false
	}
	h.pos++
	if h.pos == len(h.lines) {
		return "", false
	}
	return h.lines[h.pos], true
}

// Browsing reports whether Older has been called since the last Add.
func (h *History) Browsing() bool {
	return h.pos < len(h.lines)
}
