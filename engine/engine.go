// Package engine provides the Game: the state machine, the per-frame Tick
// that feeds keys into the input line and the dispatcher, and the command
// sets each state exposes.
package engine

import (
	"fmt"
	"io"
	"log"

	"github.com/nathoo/textbasedgame/config"
	"github.com/nathoo/textbasedgame/engine/command"
	"github.com/nathoo/textbasedgame/engine/hint"
	"github.com/nathoo/textbasedgame/engine/messages"
	"github.com/nathoo/textbasedgame/engine/output"
	"github.com/nathoo/textbasedgame/engine/world"
	"github.com/nathoo/textbasedgame/types"
)

// Screen is the display surface state the front end renders.
type Screen struct {
	Input      string
	Hint       string
	Background string // room name
	Cursor     types.CursorStyle
}

// Game holds the world and everything the player sees.
type Game struct {
	World *world.World
	Text  *messages.Table
	Log   *log.Logger

	console    *output.Console
	state      types.GameState
	screen     Screen
	inputLimit int
	frame      uint64

	ctx       *command.Context
	cmds      command.Set
	dirty     bool
	lastLabel string
	lastInput string
	evals     uint64
}

// New creates a game in the Loading state. Call Init before the first Tick.
func New(w *world.World, cfg config.Config) (*Game, error) {
	text, err := messages.New(cfg.Messages)
	if err != nil {
		return nil, fmt.Errorf("messages: %w", err)
	}
	buf := output.NewBuffer(cfg.LineCount, cfg.Speed())
	g := &Game{
		World:      w,
		Text:       text,
		Log:        log.New(io.Discard, "", 0),
		console:    output.NewConsole(buf, cfg.LineWidth, text.Get(messages.MorePrompt)),
		state:      types.Loading,
		screen:     Screen{Cursor: cfg.Cursor()},
		inputLimit: cfg.InputLimit,
		dirty:      true,
	}
	g.ctx = &command.Context{
		World:    w,
		Out:      g.console,
		Settings: g,
		States:   g,
		Text:     text,
	}
	return g, nil
}

// Init enters the start room and switches to Playing.
func (g *Game) Init() {
	if g.state != types.Loading {
		return
	}
	g.screen.Background = g.World.Current().Name
	g.ChangeState(types.Playing)
	g.console.Write(g.whereAmI())
}

// State returns the current game state.
func (g *Game) State() types.GameState {
	return g.state
}

// ChangeState moves to s, writing the message that belongs to the
// transition.
func (g *Game) ChangeState(s types.GameState) {
	switch {
	case g.state == types.Playing && s == types.ExitMenu:
		g.console.Write(g.Text.Get(messages.ExitConfirmation))
	case g.state == types.ExitMenu && s == types.Playing:
		g.console.Write(g.whereAmI())
	}
	g.Log.Printf("state %s -> %s", g.state, s)
	g.state = s
	g.dirty = true
}

// SetTextSpeed changes how fast output is revealed.
func (g *Game) SetTextSpeed(s types.TextSpeed) {
	g.console.Buffer().SetSpeed(s)
}

// SetCursorStyle changes how the input cursor is drawn.
func (g *Game) SetCursorStyle(c types.CursorStyle) {
	g.screen.Cursor = c
}

// Buffer returns the output line buffer.
func (g *Game) Buffer() *output.Buffer {
	return g.console.Buffer()
}

// Paging reports whether a paged write is waiting for key presses.
func (g *Game) Paging() bool {
	return g.console.Paging()
}

// Screen returns a copy of the display surface state.
func (g *Game) Screen() Screen {
	return g.screen
}

// Input returns the unconfirmed input line.
func (g *Game) Input() string { return g.screen.Input }

// Hint returns the current completion suffix.
func (g *Game) Hint() string { return g.screen.Hint }

// Background returns the name of the room whose picture is shown.
func (g *Game) Background() string { return g.screen.Background }

// CursorStyle returns the input cursor style.
func (g *Game) CursorStyle() types.CursorStyle { return g.screen.Cursor }

// CursorVisible reports the blink phase: off for the last half of every
// 60-frame cycle.
func (g *Game) CursorVisible() bool {
	return g.frame%60 <= 30
}

// AppendChar adds r to the input line. Runes outside 32..125 and input
// past the limit are ignored.
func (g *Game) AppendChar(r rune) {
	if r < 32 || r > 125 {
		return
	}
	if len(g.screen.Input) >= g.inputLimit {
		return
	}
	g.screen.Input += string(r)
}

// SetInput replaces the input line, applying the same rules as AppendChar.
func (g *Game) SetInput(s string) {
	g.screen.Input = ""
	for _, r := range s {
		g.AppendChar(r)
	}
}

// DeleteLastChar removes the last input character, if any.
func (g *Game) DeleteLastChar() {
	if n := len(g.screen.Input); n > 0 {
		g.screen.Input = g.screen.Input[:n-1]
	}
}

// AcceptHint appends the hint to the input and clears it.
func (g *Game) AcceptHint() {
	g.screen.Input += g.screen.Hint
	g.screen.Hint = ""
}

// Commands returns the bindings active in the current state. The set is
// rebuilt after every dispatch and state change.
func (g *Game) Commands() command.Set {
	if g.dirty {
		g.cmds = g.buildCommands()
		g.dirty = false
	}
	return g.cmds
}

// Eval clears the output, dispatches the input line against the active
// commands, and clears the input.
func (g *Game) Eval() {
	input := g.screen.Input
	g.console.Clear()
	label, ok := g.Commands().TryEval(input, g.ctx)
	g.Log.Printf("eval state=%s input=%q label=%q matched=%v", g.state, input, label, ok)
	g.lastLabel = label
	g.lastInput = input
	g.evals++
	g.dirty = true
	if g.state != types.Exited {
		g.screen.Background = g.World.Current().Name
	}
	g.screen.Input = ""
	g.screen.Hint = ""
}

// LastCommand returns the label of the binding the last Eval fired.
func (g *Game) LastCommand() string {
	return g.lastLabel
}

// LastInput returns the input line the last Eval dispatched.
func (g *Game) LastInput() string {
	return g.lastInput
}

// Evals returns how many input lines have been dispatched.
func (g *Game) Evals() uint64 {
	return g.evals
}

// Tick runs one frame: it applies keys in order, advances the reveal
// animation, and recomputes the hint. It returns Stop once the player has
// confirmed exit.
func (g *Game) Tick(keys []types.Key) types.TickOutcome {
	for _, k := range keys {
		if g.state == types.Exited {
			break
		}
		g.handleKey(k)
	}
	g.console.Buffer().Advance()
	g.frame++
	if g.state == types.Exited {
		return types.Stop
	}
	g.screen.Hint = hint.Resolve(g.screen.Input, g.Commands())
	return types.Continue
}

func (g *Game) handleKey(k types.Key) {
	if g.console.Paging() {
		g.console.Press()
		return
	}
	switch k.Kind {
	case types.KeyChar:
		g.AppendChar(k.Rune)
	case types.KeyBackspace:
		g.DeleteLastChar()
	case types.KeyTab:
		g.AcceptHint()
	case types.KeyEnter:
		if !g.console.Buffer().IsIdle() {
			g.console.Buffer().RequestPurge()
			return
		}
		g.Eval()
	}
}

func (g *Game) whereAmI() string {
	return fmt.Sprintf("You are in the %s.", g.World.Current().Display)
}
