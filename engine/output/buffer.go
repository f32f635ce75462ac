// Package output implements the fixed-size line buffer with typewriter
// reveal, and the paging console that writes into it.
package output

import "github.com/nathoo/textbasedgame/types"

// line is one output line: revealed runes are drawn, pending runes wait.
type line struct {
	revealed []rune
	pending  []rune
}

// Buffer is a fixed number of output lines revealed a character at a time.
type Buffer struct {
	lines []line
	speed types.TextSpeed
	frame uint64
	purge bool
}

// NewBuffer creates a buffer with count lines at the given speed.
func NewBuffer(count int, speed types.TextSpeed) *Buffer {
	if count < 1 {
		panic("output: line count must be positive")
	}
	return &Buffer{lines: make([]line, count), speed: speed}
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Speed returns the current reveal speed.
func (b *Buffer) Speed() types.TextSpeed {
	return b.speed
}

// SetSpeed changes the reveal speed.
func (b *Buffer) SetSpeed(s types.TextSpeed) {
	b.speed = s
}

// SetLine replaces line i. The whole text becomes pending; nothing of the
// previous content survives.
func (b *Buffer) SetLine(i int, text string) {
	l := &b.lines[i]
	l.revealed = l.revealed[:0]
	l.pending = []rune(text)
}

// Line returns the revealed part of line i.
func (b *Buffer) Line(i int) string {
	return string(b.lines[i].revealed)
}

// Pending returns the not yet revealed part of line i.
func (b *Buffer) Pending(i int) string {
	return string(b.lines[i].pending)
}

// Text returns the full intended text of line i.
func (b *Buffer) Text(i int) string {
	return b.Line(i) + b.Pending(i)
}

// IsIdle reports whether every line is fully revealed.
func (b *Buffer) IsIdle() bool {
	for _, l := range b.lines {
		if len(l.pending) > 0 {
			return false
		}
	}
	return true
}

// RequestPurge makes the next Advance reveal everything at once.
func (b *Buffer) RequestPurge() {
	b.purge = true
}

// Advance runs one frame of the reveal animation.
func (b *Buffer) Advance() {
	switch {
	case b.purge:
		for i := range b.lines {
			l := &b.lines[i]
			l.revealed = append(l.revealed, l.pending...)
			l.pending = nil
		}
		b.purge = false
	case b.revealThisFrame():
		for i := range b.lines {
			l := &b.lines[i]
			if len(l.pending) == 0 {
				continue
			}
			l.revealed = append(l.revealed, l.pending[0])
			l.pending = l.pending[1:]
			if b.speed != types.Fast {
				break
			}
		}
	}
	b.frame++
}

func (b *Buffer) revealThisFrame() bool {
	switch b.speed {
	case types.Slow:
		return b.frame%5 == 0
	case types.Medium:
		return b.frame%3 == 0
	default:
		return true
	}
}
