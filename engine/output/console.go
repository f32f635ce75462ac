package output

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// Split breaks text into exactly count lines no wider than width, breaking
// at whitespace or explicit newlines. Words longer than width are cut.
// Lines past count are dropped; missing lines are empty.
func Split(text string, count, width int) []string {
	out := make([]string, 0, count)
	if text != "" {
		wrapped := wrap.String(wordwrap.String(text, width), width)
		for _, l := range strings.Split(wrapped, "\n") {
			if len(out) == count {
				break
			}
			out = append(out, strings.TrimRight(l, " \t"))
		}
	}
	for len(out) < count {
		out = append(out, "")
	}
	return out
}

// Console writes whole messages into a Buffer and pages through
// multi-message writes, one key press per page.
type Console struct {
	buf   *Buffer
	width int
	more  string

	pages  []string
	paging bool
}

// NewConsole wraps buf. Lines are at most width characters; more is added
// as a final line to every page of a paged write ("" to disable).
func NewConsole(buf *Buffer, width int, more string) *Console {
	return &Console{buf: buf, width: width, more: more}
}

// Buffer returns the underlying line buffer.
func (c *Console) Buffer() *Buffer {
	return c.buf
}

// Write replaces every line with text.
func (c *Console) Write(text string) {
	for i, l := range Split(text, c.buf.LineCount(), c.width) {
		c.buf.SetLine(i, l)
	}
}

// Clear blanks every line.
func (c *Console) Clear() {
	c.Write("")
}

// WritePages shows the first page now and queues the rest. Until the last
// page has been dismissed, key presses go to Press.
func (c *Console) WritePages(pages []string) {
	if len(pages) == 0 {
		return
	}
	c.pages = append([]string(nil), pages[1:]...)
	c.paging = true
	c.writePage(pages[0])
}

// Paging reports whether a paged write is waiting for key presses.
func (c *Console) Paging() bool {
	return c.paging
}

// Press handles one key press during a paged write. A press while text is
// still revealing purges it; otherwise it advances to the next page, and
// after the last page it ends paging.
func (c *Console) Press() {
	if !c.paging {
		return
	}
	switch {
	case !c.buf.IsIdle():
		c.buf.RequestPurge()
	case len(c.pages) > 0:
		next := c.pages[0]
		c.pages = c.pages[1:]
		c.writePage(next)
	default:
		c.paging = false
	}
}

func (c *Console) writePage(page string) {
	if c.more != "" {
		page += "\n" + c.more
	}
	c.Write(page)
}
