// Package cli provides a line-oriented front end for the game: it reads
// whole commands, types them into the game one key per tick, and prints
// each screen of output once it is fully revealed. It is used for plain
// terminals and for replaying scripts.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathoo/textbasedgame/engine"
	"github.com/nathoo/textbasedgame/types"
)

// maxPresses bounds how many pages a single command may produce.
const maxPresses = 64

// CLI handles line-based interaction with the player.
type CLI struct {
	Game      *engine.Game
	In        io.Reader
	Out       io.Writer
	Trace     bool
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI on stdin and stdout wired to the given game. The game
// must already be initialized.
func New(g *engine.Game) *CLI {
	return &CLI{
		Game: g,
		In:   os.Stdin,
		Out:  os.Stdout,
	}
}

// Run shows the title and the opening screen, then loops:
// prompt, input, type into the game, print. It returns when input ends,
// the player confirms exit, or /quit is entered.
func (c *CLI) Run() {
	if t := c.Game.World.Game.Title; t != "" {
		c.printLine(t)
		c.printLine("")
	}
	c.flush()

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			c.printLine("")
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return
			}
			continue
		}

		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printSystem("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		if c.submit(input) == types.Stop {
			c.printSystem("Goodbye.")
			return
		}
		if c.Trace {
			c.printSystem("matched: " + c.Game.LastCommand())
		}
	}
}

// submit types input, presses Enter, and prints every resulting page.
// Input the game did not accept in full is reported before it runs.
func (c *CLI) submit(input string) types.TickOutcome {
	c.settle()
	keys := make([]types.Key, 0, len(input))
	for _, r := range input {
		keys = append(keys, types.Key{Kind: types.KeyChar, Rune: r})
	}
	c.Game.Tick(keys)
	if typed := c.Game.Input(); typed != input {
		c.printSystem(fmt.Sprintf("Input cut to %d characters: %q", len(typed), typed))
	}
	if c.Game.Tick([]types.Key{{Kind: types.KeyEnter}}) == types.Stop {
		return types.Stop
	}
	c.flush()
	return types.Continue
}

// flush prints the current screen, then presses through any remaining
// pages, printing each.
func (c *CLI) flush() {
	c.settle()
	c.printScreen()
	for n := 0; c.Game.Paging() && n < maxPresses; n++ {
		c.Game.Tick([]types.Key{{Kind: types.KeyOther}})
		if !c.Game.Paging() {
			break
		}
		c.settle()
		c.printScreen()
	}
}

// settle reveals everything still pending.
func (c *CLI) settle() {
	c.Game.Buffer().RequestPurge()
	c.Game.Tick(nil)
}

// printScreen prints the output lines, dropping trailing blank ones.
func (c *CLI) printScreen() {
	buf := c.Game.Buffer()
	lines := make([]string, buf.LineCount())
	last := -1
	for i := range lines {
		lines[i] = buf.Line(i)
		if lines[i] != "" {
			last = i
		}
	}
	for _, l := range lines[:last+1] {
		c.printLine(l)
	}
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	switch parts[0] {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/help":
		c.printLine("Meta commands:")
		c.printLine("  /state   Show location, inventory, and game state")
		c.printLine("  /trace   Toggle printing of the matched command")
		c.printLine("  /quit    Leave immediately")
		c.printLine("  again, g Repeat the last command")

	case "/state":
		c.cmdState()

	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for a list.", parts[0]))
	}
	return false
}

func (c *CLI) cmdState() {
	w := c.Game.World
	c.printLine(fmt.Sprintf("Location: %s", w.Current().Name))
	inv := w.Inventory()
	if len(inv) == 0 {
		c.printLine("Inventory: (empty)")
	} else {
		c.printLine("Inventory: " + strings.Join(inv, ", "))
	}
	c.printLine(fmt.Sprintf("State: %s", c.Game.State()))
	c.printLine(fmt.Sprintf("Speed: %s", c.Game.Buffer().Speed()))
}

func (c *CLI) printLine(s string) {
	fmt.Fprintln(c.Out, s)
}

func (c *CLI) print(s string) {
	fmt.Fprint(c.Out, s)
}

func (c *CLI) printSystem(s string) {
	fmt.Fprintf(c.Out, "[%s]\n", s)
}
