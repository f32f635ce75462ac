// Package types defines the shared data structures for the textbasedgame engine.
// This package contains only type definitions and their string forms, no game logic.
package types

// Direction is a way the player can move out of a room.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every cardinal direction in registration order.
var Directions = []Direction{North, South, East, West}

var directionNames = [...]string{"north", "south", "east", "west"}

func (d Direction) String() string {
	if d < North || d > West {
		return "invalid"
	}
	return directionNames[d]
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	panic("types: reverse of invalid direction")
}

// ParseDirection maps "north"/"n" etc. to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "north", "n":
		return North, true
	case "south", "s":
		return South, true
	case "east", "e":
		return East, true
	case "west", "w":
		return West, true
	}
	return 0, false
}

// RoomMessage selects one of a room's messages.
type RoomMessage int

const (
	OnEnter RoomMessage = iota
	OnLook
)

// ItemMessage selects one of an item's messages.
type ItemMessage int

const (
	OnInspect ItemMessage = iota
)

// GameState is where the player currently "is" in the program.
// Each state exposes its own command set.
type GameState int

const (
	Loading GameState = iota
	Playing
	ExitMenu
	Exited
)

func (s GameState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Playing:
		return "playing"
	case ExitMenu:
		return "exit_menu"
	case Exited:
		return "exited"
	default:
		return "unknown"
	}
}

// TextSpeed controls how fast output text is revealed.
type TextSpeed int

const (
	Slow   TextSpeed = 1
	Medium TextSpeed = 2
	Fast   TextSpeed = 3
)

func (s TextSpeed) String() string {
	switch s {
	case Slow:
		return "slow"
	case Medium:
		return "med"
	case Fast:
		return "fast"
	default:
		return "unknown"
	}
}

// CursorStyle is how the input cursor is drawn.
type CursorStyle int

const (
	VerticalBar    CursorStyle = 1
	Underline      CursorStyle = 2
	OutlineBox     CursorStyle = 3
	TransparentBox CursorStyle = 4
)

// KeyKind classifies a key event delivered to the tick loop.
type KeyKind int

const (
	KeyChar KeyKind = iota
	KeyBackspace
	KeyEnter
	KeyTab
	KeyOther
)

// Key is a single discrete key event.
type Key struct {
	Kind KeyKind
	Rune rune // set for KeyChar
}

// TickOutcome tells the caller whether to keep running the frame loop.
type TickOutcome int

const (
	Continue TickOutcome = iota
	Stop
)

// Condition is a predicate checked before a special command's effects run.
type Condition struct {
	Type   string         // "has_item", "in_room", "item_in_room", "item_found", "not"
	Params map[string]any // condition-specific parameters
	Inner  *Condition     // for "not": the negated inner condition
}

// Effect is a single atomic world mutation or output instruction.
type Effect struct {
	Type   string
	Params map[string]any
}

// SpecialDef is an item-bound command described as data.
// It only becomes active while its item is reachable.
type SpecialDef struct {
	Label     string
	Pattern   string
	Hints     []string
	Requires  []Condition
	Effects   []Effect
	Otherwise []Effect // applied when Requires fails
}

// GameDef holds game metadata.
type GameDef struct {
	Title  string
	Author string
	Start  string // starting room name
}

// Event is emitted by world mutations so content handlers can react.
type Event struct {
	Type string         // "room_entered", "item_taken", "item_dropped", ...
	Data map[string]any // event-specific data
}

// Handler runs Effects once for every matching event whose Conditions pass.
type Handler struct {
	EventType  string
	Conditions []Condition
	Effects    []Effect
}
