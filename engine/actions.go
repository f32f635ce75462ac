package engine

import (
	"fmt"

	"github.com/nathoo/textbasedgame/engine/command"
	"github.com/nathoo/textbasedgame/engine/conditions"
	"github.com/nathoo/textbasedgame/engine/effects"
	"github.com/nathoo/textbasedgame/engine/events"
	"github.com/nathoo/textbasedgame/engine/messages"
	"github.com/nathoo/textbasedgame/types"
)

// TryMove moves the player through the exit in direction d, if there is one.
func TryMove(ctx *command.Context, d types.Direction) {
	w := ctx.World
	target := w.Exit(w.Current().Name, d)
	if target == "" {
		ctx.Say(messages.BlockedDir)
		return
	}
	w.SetCurrent(target)
	text := fmt.Sprintf("You went %s.\n%s", d, w.Current().Messages[types.OnEnter])
	respond(ctx, text, types.Event{Type: "room_entered", Data: map[string]any{"room": target}})
}

// TryTake moves an item from the current room into the inventory.
func TryTake(ctx *command.Context, item string) {
	w := ctx.World
	it := w.Item(item)
	switch {
	case w.InInventory(item):
		ctx.Say(messages.InvalidTakeHolding)
	case !w.InCurrentRoom(item):
		ctx.Say(messages.InvalidTake)
	case !it.Flags.CanCarry:
		ctx.Say(messages.CannotCarry)
	case w.Take(item):
		respond(ctx, fmt.Sprintf("You took the %s.", it.Display),
			types.Event{Type: "item_taken", Data: map[string]any{"item": item}})
	default:
		ctx.Say(messages.UnknownError)
	}
}

// TryDrop moves an item from the inventory into the current room.
func TryDrop(ctx *command.Context, item string) {
	w := ctx.World
	if !w.Drop(item) {
		ctx.Say(messages.InvalidDrop)
		return
	}
	respond(ctx, fmt.Sprintf("You dropped the %s.", w.Item(item).Display),
		types.Event{Type: "item_dropped", Data: map[string]any{"item": item}})
}

// TryInspect describes an item in the current room and marks it found.
func TryInspect(ctx *command.Context, item string) {
	w := ctx.World
	if !w.InCurrentRoom(item) {
		ctx.Say(messages.InvalidInspect)
		return
	}
	w.MarkFound(item)
	ctx.Out.Write(w.Item(item).Messages[types.OnInspect])
}

func currentRoom(ctx *command.Context) {
	ctx.Out.Write(fmt.Sprintf("You are in the %s.", ctx.World.Current().Display))
}

// lookAround marks everything in the room found before listing it.
func lookAround(ctx *command.Context) {
	w := ctx.World
	room := w.Current()
	for _, item := range room.Items() {
		w.MarkFound(item)
	}
	respond(ctx, room.Messages[types.OnLook]+" "+w.RoomListing(),
		types.Event{Type: "looked", Data: map[string]any{"room": room.Name}})
}

func checkInventory(ctx *command.Context) {
	ctx.Out.Write(ctx.World.InventoryListing())
}

// specialBinding compiles an item special command into a binding. The
// pattern was checked when the content was loaded.
func specialBinding(sp types.SpecialDef) command.Binding {
	return command.MustNew(sp.Label, sp.Pattern, sp.Hints, func(ctx *command.Context) {
		effs := sp.Effects
		if !conditions.EvalAll(sp.Requires, ctx.World) {
			effs = sp.Otherwise
		}
		evs, out := effects.Apply(ctx.World, effs)
		evs = append(evs, types.Event{Type: "special_used", Data: map[string]any{"label": sp.Label}})
		writeAll(ctx, append(out, react(ctx, evs)...))
	})
}

// respond writes text followed by whatever the event handlers say.
func respond(ctx *command.Context, text string, evs ...types.Event) {
	writeAll(ctx, append([]string{text}, react(ctx, evs)...))
}

// react runs the content's event handlers once over evs and returns
// their output. Events raised by handler effects are not dispatched again.
func react(ctx *command.Context, evs []types.Event) []string {
	effs := events.Dispatch(evs, ctx.World.Handlers, ctx.World)
	if len(effs) == 0 {
		return nil
	}
	_, out := effects.Apply(ctx.World, effs)
	return out
}

// writeAll writes a single text directly and several as pages.
func writeAll(ctx *command.Context, texts []string) {
	switch len(texts) {
	case 0:
	case 1:
		ctx.Out.Write(texts[0])
	default:
		ctx.Out.WritePages(texts)
	}
}
