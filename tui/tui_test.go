package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/textbasedgame/config"
	"github.com/nathoo/textbasedgame/content"
	"github.com/nathoo/textbasedgame/engine"
	"github.com/nathoo/textbasedgame/loader"
	"github.com/nathoo/textbasedgame/types"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want lineKind
	}{
		{"You are in the kitchen.", kindNarration},
		{"You can't go that way.", kindError},
		{"You don't see that in here.", kindError},
		{"You're not holding that item.", kindError},
		{"Command not recognized.", kindError},
		{"Usage: set cursor <1/2/3/4>", kindError},
		{"...", kindMore},
		{"", kindNarration},
	}
	for _, tt := range tests {
		if got := classifyLine(tt.line, "..."); got != tt.want {
			t.Errorf("classifyLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
	if got := classifyLine("...", ""); got != kindNarration {
		t.Errorf("classifyLine with no more prompt = %v, want narration", got)
	}
}

func TestRenderInput_ContainsTextAndHint(t *testing.T) {
	styles := []types.CursorStyle{types.VerticalBar, types.Underline, types.OutlineBox, types.TransparentBox}
	for _, s := range styles {
		for _, visible := range []bool{true, false} {
			got := renderInput("ta", "ke lamp", s, visible)
			if !strings.Contains(got, "ta") || !strings.Contains(got, "e lamp") {
				t.Errorf("style %d visible=%v: %q", s, visible, got)
			}
		}
	}
}

func TestHistory_OlderAndNewer(t *testing.T) {
	h := NewHistory(5)
	h.Add("look")
	h.Add("go north")
	h.Add("take key")

	for _, want := range []string{"take key", "go north", "look", "look"} {
		got, ok := h.Older()
		if !ok || got != want {
			t.Errorf("Older() = %q, %v; want %q", got, ok, want)
		}
	}

	next, ok := h.Newer()
	if !ok || next != "go north" {
		t.Errorf("Newer() = %q, %v; want go north", next, ok)
	}
	h.Newer()
	if _, ok := h.Newer(); ok {
		t.Error("expected false when past newest entry")
	}
	if h.Browsing() {
		t.Error("still browsing after stepping past newest entry")
	}
}

func TestHistory_Empty(t *testing.T) {
	h := NewHistory(5)
	if _, ok := h.Older(); ok {
		t.Error("expected false on empty history")
	}
	if _, ok := h.Newer(); ok {
		t.Error("expected false on empty history")
	}
}

func TestHistory_Limit(t *testing.T) {
	h := NewHistory(2)
	h.Add("a")
	h.Add("b")
	h.Add("c") // "a" evicted

	for _, want := range []string{"c", "b", "b"} {
		if got, _ := h.Older(); got != want {
			t.Errorf("Older() = %q, want %q", got, want)
		}
	}
}

func TestHistory_SkipsBlankAndRepeats(t *testing.T) {
	h := NewHistory(5)
	h.Add("look")
	h.Add("look")
	h.Add("")
	if len(h.lines) != 1 {
		t.Errorf("expected 1 entry, got %d", len(h.lines))
	}
}

func TestTimer(t *testing.T) {
	now := time.Unix(0, 0)
	tm := NewTimer(100 * time.Millisecond)
	tm.now = func() time.Time { return now }

	if !tm.Ready() {
		t.Fatal("first press should fire")
	}
	now = now.Add(50 * time.Millisecond)
	if tm.Ready() {
		t.Error("repeat inside the interval fired")
	}
	now = now.Add(50 * time.Millisecond)
	if !tm.Ready() {
		t.Error("repeat after the interval did not fire")
	}
	tm.Reset()
	if !tm.Ready() {
		t.Error("press after Reset did not fire")
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	w, err := loader.LoadFS(content.FS)
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	cfg := config.Default()
	g, err := engine.New(w, cfg)
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	g.Init()
	return New(g, cfg)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// typeLine sends input as rune keys followed by Enter, then runs frames
// until the output settles.
func typeLine(t *testing.T, m Model, input string) Model {
	t.Helper()
	m = settleModel(t, m)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(input)})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, frameMsg{})
	return settleModel(t, m)
}

func settleModel(t *testing.T, m Model) Model {
	t.Helper()
	m.game.Buffer().RequestPurge()
	m, _ = update(t, m, frameMsg{})
	return m
}

func TestModel_TypingAndSubmit(t *testing.T) {
	m := newTestModel(t)
	m = typeLine(t, m, "go north")

	if got := m.game.Buffer().Line(0); got != "You went north." {
		t.Errorf("line 0 = %q", got)
	}
	if m.game.Background() != "Bedroom" {
		t.Errorf("background = %q, want Bedroom", m.game.Background())
	}
	if !strings.Contains(m.View(), "Bedroom") {
		t.Error("view does not show the room banner")
	}
}

func TestModel_KeysWaitForFrame(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("lo")})
	if m.game.Input() != "" {
		t.Errorf("input changed before the frame: %q", m.game.Input())
	}
	m, cmd := update(t, m, frameMsg{})
	if m.game.Input() != "lo" {
		t.Errorf("input = %q, want lo", m.game.Input())
	}
	if cmd == nil {
		t.Error("frame did not schedule the next frame")
	}
	if m.game.Hint() != "ok around" {
		t.Errorf("hint = %q, want %q", m.game.Hint(), "ok around")
	}
}

func TestModel_SpaceAndTab(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("go")})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = update(t, m, frameMsg{})
	if m.game.Input() != "go " {
		t.Fatalf("input = %q, want %q", m.game.Input(), "go ")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, frameMsg{})
	if m.game.Input() != "go north" {
		t.Errorf("input after tab = %q, want %q", m.game.Input(), "go north")
	}
}

func TestModel_BackspaceRepeatPaced(t *testing.T) {
	m := newTestModel(t)
	now := time.Unix(0, 0)
	m.backspace.now = func() time.Time { return now }

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})
	m, _ = update(t, m, frameMsg{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = update(t, m, frameMsg{})
	if m.game.Input() != "ab" {
		t.Errorf("input = %q, want ab (second repeat inside the interval)", m.game.Input())
	}
	now = now.Add(100 * time.Millisecond)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = update(t, m, frameMsg{})
	if m.game.Input() != "a" {
		t.Errorf("input = %q, want a", m.game.Input())
	}
}

func TestModel_BackspaceDoubleTap(t *testing.T) {
	m := newTestModel(t)
	now := time.Unix(0, 0)
	m.backspace.now = func() time.Time { return now }

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})
	m, _ = update(t, m, frameMsg{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	now = now.Add(60 * time.Millisecond)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = update(t, m, frameMsg{})
	if m.game.Input() != "a" {
		t.Errorf("input = %q, want a (taps 60ms apart both delete)", m.game.Input())
	}
}

func TestModel_History(t *testing.T) {
	m := newTestModel(t)
	m = typeLine(t, m, "look")
	m = typeLine(t, m, "inventory")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.game.Input() != "inventory" {
		t.Errorf("up: input = %q, want inventory", m.game.Input())
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.game.Input() != "look" {
		t.Errorf("up up: input = %q, want look", m.game.Input())
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.game.Input() != "" {
		t.Errorf("down past newest: input = %q, want empty", m.game.Input())
	}
}

func TestModel_PagingTakesAnyKey(t *testing.T) {
	m := newTestModel(t)
	m = typeLine(t, m, "help")
	if !m.game.Paging() {
		t.Fatal("help did not page")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m = settleModel(t, m)
	if m.game.Input() != "" {
		t.Errorf("key during paging reached the input: %q", m.game.Input())
	}
	if got := m.game.Buffer().Line(0); got != "check inventory" {
		t.Errorf("line 0 = %q, want second help page", got)
	}
}

func TestModel_ExitStopsProgram(t *testing.T) {
	m := newTestModel(t)
	m = typeLine(t, m, "quit")
	m = settleModel(t, m)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := update(t, m, frameMsg{})
	if !m.quitting {
		t.Error("model not quitting after confirmed exit")
	}
	if cmd == nil {
		t.Fatal("expected tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command is not tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModel_CtrlCQuits(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.quitting || cmd == nil {
		t.Error("ctrl+c did not quit")
	}
}

func TestStatusBar(t *testing.T) {
	m := newTestModel(t)
	bar := m.renderStatusBar(80)
	for _, want := range []string{"Kitchen", "Exits: north", "Speed: med"} {
		if !strings.Contains(bar, want) {
			t.Errorf("status bar %q missing %q", bar, want)
		}
	}

	m = typeLine(t, m, "take red key")
	if bar := m.renderStatusBar(80); !strings.Contains(bar, "Inv: red key") {
		t.Errorf("status bar %q missing inventory", bar)
	}
	if bar := m.renderStatusBar(20); strings.Contains(bar, "red key") {
		t.Errorf("narrow status bar should show a count: %q", bar)
	}
}
