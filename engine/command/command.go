// Package command implements pattern→action bindings and first-match dispatch.
package command

import (
	"regexp"

	"github.com/nathoo/textbasedgame/engine/messages"
	"github.com/nathoo/textbasedgame/engine/world"
	"github.com/nathoo/textbasedgame/types"
)

// Output queues text for the player.
type Output interface {
	// Write replaces the output lines with text.
	Write(text string)
	// WritePages shows pages one at a time, waiting for a key between them.
	WritePages(pages []string)
}

// Settings changes display settings.
type Settings interface {
	SetTextSpeed(types.TextSpeed)
	SetCursorStyle(types.CursorStyle)
}

// StateMachine changes the game state.
type StateMachine interface {
	ChangeState(types.GameState)
}

// Context is handed to an action when it runs. Actions reach the world,
// output, and state only through it.
type Context struct {
	World    *world.World
	Out      Output
	Settings Settings
	States   StateMachine
	Text     *messages.Table
}

// Say writes a message from the table.
func (c *Context) Say(k messages.Key) {
	c.Out.Write(c.Text.Get(k))
}

// Action runs when a binding matches.
type Action func(ctx *Context)

// Binding is one dispatch unit: a label, a pattern, hints, and an action.
type Binding struct {
	Label   string
	Hints   []string
	Action  Action
	pattern *regexp.Regexp
}

// New compiles pattern as a case-insensitive whole-string match.
func New(label, pattern string, hints []string, action Action) (Binding, error) {
	re, err := compile(pattern)
	if err != nil {
		return Binding{}, err
	}
	return Binding{Label: label, Hints: hints, Action: action, pattern: re}, nil
}

// MustNew is New for patterns known at compile time.
func MustNew(label, pattern string, hints []string, action Action) Binding {
	b, err := New(label, pattern, hints, action)
	if err != nil {
		panic("command: " + label + ": " + err.Error())
	}
	return b
}

// Compile checks that a pattern is usable without building a binding.
func Compile(pattern string) error {
	_, err := compile(pattern)
	return err
}

func compile(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?i)^(?:` + pattern + `)$`)
}

// Pattern returns the anchored pattern source.
func (b Binding) Pattern() string {
	if b.pattern == nil {
		return ""
	}
	return b.pattern.String()
}

// Match reports whether the whole input matches the pattern.
func (b Binding) Match(input string) bool {
	return b.pattern != nil && b.pattern.MatchString(input)
}

// TryEval runs the action if input matches, and reports whether it did.
func (b Binding) TryEval(input string, ctx *Context) bool {
	if !b.Match(input) {
		return false
	}
	if b.Action != nil {
		b.Action(ctx)
	}
	return true
}

// Set is an ordered list of bindings. More specific patterns must come
// before the catch-alls that also accept them.
type Set []Binding

// Add appends a binding.
func (s *Set) Add(b Binding) {
	*s = append(*s, b)
}

// Find returns the first binding that matches input without running it.
func (s Set) Find(input string) (Binding, bool) {
	for _, b := range s {
		if b.Match(input) {
			return b, true
		}
	}
	return Binding{}, false
}

// TryEval runs the first binding matching input and returns its label.
func (s Set) TryEval(input string, ctx *Context) (string, bool) {
	for _, b := range s {
		if b.TryEval(input, ctx) {
			return b.Label, true
		}
	}
	return "", false
}

// Labels returns the binding labels in order.
func (s Set) Labels() []string {
	out := make([]string, len(s))
	for i, b := range s {
		out[i] = b.Label
	}
	return out
}
