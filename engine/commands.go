package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nathoo/textbasedgame/engine/command"
	"github.com/nathoo/textbasedgame/engine/messages"
	"github.com/nathoo/textbasedgame/engine/world"
	"github.com/nathoo/textbasedgame/types"
)

var helpPages = []string{
	"look around\ngo <north/south/east/west>\ntake/drop <item>",
	"check inventory\nsettings\nquit",
}

const settingsList = "set textspeed <slow/med/fast>\nset cursor <1/2/3/4>"

// The static parts of the Playing set. Item bindings go between
// playingHead and playingTail.
var (
	playingHead = []command.Binding{
		moveBinding(types.North),
		moveBinding(types.South),
		moveBinding(types.East),
		moveBinding(types.West),
		command.MustNew("Move Unknown Direction", "(go|move)( .*)?", nil, say(messages.InvalidDir)),

		command.MustNew("Get Current Room", "(where am i)|((current )?room)",
			[]string{"current room", "room", "where am i"}, currentRoom),
		command.MustNew("Look Around", "look( around)?", []string{"look around"}, lookAround),
		command.MustNew("Check Inventory", "(check )?inv(entory)?",
			[]string{"check inventory", "inventory"}, checkInventory),
	}

	playingTail = []command.Binding{
		command.MustNew("Take Item: Invalid", "take .*", nil, say(messages.InvalidTake)),
		command.MustNew("Take Item: Unknown", "take.*", nil, say(messages.UnknownTake)),
		command.MustNew("Drop Item: Invalid", "drop .*", nil, say(messages.InvalidDrop)),
		command.MustNew("Drop Item: Unknown", "drop.*", nil, say(messages.UnknownDrop)),
		command.MustNew("Inspect Item: Invalid", "(look at|inspect) .*", nil, say(messages.InvalidInspect)),

		speedBinding("Slow", "s(low)?", "slow", types.Slow),
		speedBinding("Medium", "m(ed(ium)?)?", "med", types.Medium),
		speedBinding("Fast", "f(ast)?", "fast", types.Fast),
		command.MustNew("Set Text Scroll Speed: Invalid", "set (textspeed|ts).*", nil, say(messages.InvalidTextSpeed)),

		cursorBinding("Vertical Bar", types.VerticalBar),
		cursorBinding("Underline", types.Underline),
		cursorBinding("Outline Box", types.OutlineBox),
		cursorBinding("Transparent Box", types.TransparentBox),
		command.MustNew("Set Cursor Style: Invalid", "set (cursor( style)?|cs|c).*", nil, say(messages.InvalidCursorStyle)),

		command.MustNew("General Help", "(game )?help( me)?", []string{"help", "help me", "game help"},
			func(ctx *command.Context) { ctx.Out.WritePages(helpPages) }),
		command.MustNew("List Settings", "(game )?settings", []string{"settings", "game settings"},
			func(ctx *command.Context) { ctx.Out.Write(settingsList) }),
		command.MustNew("Exit Game", "(q(uit)?|exit)( game)?", []string{"exit game", "quit game"},
			func(ctx *command.Context) { ctx.States.ChangeState(types.ExitMenu) }),

		command.MustNew("Unknown Setting", "set.*", nil, say(messages.UnknownSetting)),
		command.MustNew("Invalid Command", ".*", nil, say(messages.InvalidCommand)),
	}

	exitMenu = command.Set{
		command.MustNew("Exit: Yes", "(y(es)?)|(exit)|(quit)", []string{"yes", "exit", "quit"},
			func(ctx *command.Context) { ctx.States.ChangeState(types.Exited) }),
		command.MustNew("Exit: No", "n(o)?", []string{"no"},
			func(ctx *command.Context) { ctx.States.ChangeState(types.Playing) }),
		command.MustNew("Exit: Unknown", ".*", nil, say(messages.InvalidExitCommand)),
	}
)

func (g *Game) buildCommands() command.Set {
	switch g.state {
	case types.Playing:
		cmds := make(command.Set, 0, len(playingHead)+len(playingTail)+4*len(g.World.Items()))
		cmds = append(cmds, playingHead...)
		for _, it := range g.World.Items() {
			cmds = append(cmds, itemBindings(g.World, it)...)
		}
		return append(cmds, playingTail...)
	case types.ExitMenu:
		return append(command.Set(nil), exitMenu...)
	default:
		return nil
	}
}

// itemBindings returns the take, drop, inspect and special bindings that
// are active for it right now.
func itemBindings(w *world.World, it *world.Item) []command.Binding {
	var out []command.Binding
	name := regexp.QuoteMeta(it.Name)
	inRoom := w.InCurrentRoom(it.Name)
	held := w.InInventory(it.Name)

	var takeHints, dropHints, lookHints []string
	if it.Attrs.IsFound {
		takeHints = []string{"take " + it.Display, "pick up " + it.Display}
		dropHints = []string{"drop " + it.Display, "put down " + it.Display}
		lookHints = []string{"inspect " + it.Display, "look at " + it.Display}
	}

	item := it.Name
	if inRoom && it.Flags.CanCarry {
		out = append(out, command.MustNew("Take Item: "+item, "(take|pick up) "+name, takeHints,
			func(ctx *command.Context) { TryTake(ctx, item) }))
	}
	if held {
		out = append(out, command.MustNew("Drop Item: "+item, "(drop|put down) "+name, dropHints,
			func(ctx *command.Context) { TryDrop(ctx, item) }))
	}
	if inRoom {
		out = append(out, command.MustNew("Inspect Item: "+item, "(look at|inspect) "+name, lookHints,
			func(ctx *command.Context) { TryInspect(ctx, item) }))
	}
	if inRoom || held {
		for _, sp := range it.Specials {
			out = append(out, specialBinding(sp))
		}
	}
	return out
}

func moveBinding(d types.Direction) command.Binding {
	dir := d.String()
	pattern := fmt.Sprintf("(go |move )?%s(%s)?", dir[:1], dir[1:])
	label := "Move " + strings.ToUpper(dir[:1]) + dir[1:]
	hints := []string{"go " + dir, "move " + dir, dir}
	return command.MustNew(label, pattern, hints, func(ctx *command.Context) { TryMove(ctx, d) })
}

func speedBinding(name, pattern, hint string, s types.TextSpeed) command.Binding {
	return command.MustNew("Set Text Scroll Speed: "+name, "set (textspeed|ts) "+pattern,
		[]string{"set textspeed " + hint, "set ts " + hint},
		func(ctx *command.Context) {
			ctx.Settings.SetTextSpeed(s)
			ctx.Say(messages.TextSpeedSet)
		})
}

func cursorBinding(name string, c types.CursorStyle) command.Binding {
	n := fmt.Sprint(int(c))
	return command.MustNew("Set Cursor Style: "+name, "set (cursor( style)?|cs|c) "+n,
		[]string{"set cursor style " + n, "set cursor " + n, "set cs " + n},
		func(ctx *command.Context) {
			ctx.Settings.SetCursorStyle(c)
			ctx.Say(messages.CursorStyleSet)
		})
}

func say(k messages.Key) command.Action {
	return func(ctx *command.Context) { ctx.Say(k) }
}
