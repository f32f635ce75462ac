// Package effects applies the world mutations and output instructions
// that item special commands and event handlers are made of.
// Every effect type is one atomic operation.
package effects

import (
	"strings"

	"github.com/nathoo/textbasedgame/engine/world"
	"github.com/nathoo/textbasedgame/types"
)

// Apply applies effects to the world in order, stopping early at "stop".
// It returns the events the mutations emitted and the text collected from
// "say" effects, one entry per say.
func Apply(w *world.World, effects []types.Effect) ([]types.Event, []string) {
	var events []types.Event
	var output []string

	for _, eff := range effects {
		switch eff.Type {
		case "say":
			text, _ := eff.Params["text"].(string)
			output = append(output, interpolate(text, w))

		case "give_item":
			item, _ := eff.Params["item"].(string)
			w.Give(item)
			events = append(events, event("item_given", "item", item))

		case "remove_item":
			item, _ := eff.Params["item"].(string)
			w.Consume(item)
			events = append(events, event("item_removed", "item", item))

		case "place_item":
			item, _ := eff.Params["item"].(string)
			room, _ := eff.Params["room"].(string)
			if room == "" {
				room = w.Current().Name
			}
			w.Place(item, room)
			events = append(events, types.Event{
				Type: "item_placed",
				Data: map[string]any{"item": item, "room": room},
			})

		case "mark_found":
			item, _ := eff.Params["item"].(string)
			w.MarkFound(item)

		case "link_rooms":
			from, _ := eff.Params["from"].(string)
			to, _ := eff.Params["to"].(string)
			dir := direction(eff.Params["direction"])
			oneWay, _ := eff.Params["one_way"].(bool)
			w.LinkRooms(from, dir, to, !oneWay)
			events = append(events, types.Event{
				Type: "rooms_linked",
				Data: map[string]any{"from": from, "direction": dir.String(), "to": to},
			})

		case "unlink":
			room, _ := eff.Params["room"].(string)
			w.Unlink(room, direction(eff.Params["direction"]))

		case "move_player":
			room, _ := eff.Params["room"].(string)
			w.SetCurrent(room)
			events = append(events, event("room_entered", "room", room))

		case "stop":
			return events, output

		default:
			// Unknown effect types are rejected by the loader.
		}
	}

	return events, output
}

// Known reports whether typ is an effect type Apply understands.
func Known(typ string) bool {
	switch typ {
	case "say", "give_item", "remove_item", "place_item", "mark_found",
		"link_rooms", "unlink", "move_player", "stop":
		return true
	}
	return false
}

// interpolate replaces {room} and {inventory} in text.
func interpolate(text string, w *world.World) string {
	if strings.Contains(text, "{room}") {
		text = strings.ReplaceAll(text, "{room}", w.Current().Display)
	}
	if strings.Contains(text, "{inventory}") {
		text = strings.ReplaceAll(text, "{inventory}", w.InventoryListing())
	}
	return text
}

func event(typ, key, value string) types.Event {
	return types.Event{Type: typ, Data: map[string]any{key: value}}
}

// direction accepts a direction name or a types.Direction. Invalid values
// panic in the world lookup; the loader rejects them first.
func direction(v any) types.Direction {
	switch d := v.(type) {
	case types.Direction:
		return d
	case string:
		if dir, ok := types.ParseDirection(d); ok {
			return dir
		}
	}
	return types.Direction(-1)
}
