// Package conditions evaluates the preconditions of item special commands.
package conditions

import (
	"github.com/nathoo/textbasedgame/engine/world"
	"github.com/nathoo/textbasedgame/types"
)

// Eval evaluates a single condition against the world.
// Unknown condition types are false.
func Eval(c types.Condition, w *world.World) bool {
	switch c.Type {
	case "has_item":
		item, _ := c.Params["item"].(string)
		return w.HasItem(item) && w.InInventory(item)

	case "in_room":
		room, _ := c.Params["room"].(string)
		return w.Current().Name == room

	case "item_in_room":
		item, _ := c.Params["item"].(string)
		room, _ := c.Params["room"].(string)
		if room == "" {
			room = w.Current().Name
		}
		return w.HasItem(item) && w.HasRoom(room) && w.InRoom(item, room)

	case "item_found":
		item, _ := c.Params["item"].(string)
		return w.HasItem(item) && w.Item(item).Attrs.IsFound

	case "not":
		if c.Inner == nil {
			return true
		}
		return !Eval(*c.Inner, w)

	default:
		return false
	}
}

// EvalAll returns true if every condition passes.
// An empty list is vacuously true.
func EvalAll(conds []types.Condition, w *world.World) bool {
	for _, c := range conds {
		if !Eval(c, w) {
			return false
		}
	}
	return true
}

// Known reports whether typ is a condition type Eval understands.
func Known(typ string) bool {
	switch typ {
	case "has_item", "in_room", "item_in_room", "item_found", "not":
		return true
	}
	return false
}
