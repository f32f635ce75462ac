package loader

import (
	"fmt"
	"strings"

	"github.com/nathoo/textbasedgame/engine/command"
	"github.com/nathoo/textbasedgame/engine/conditions"
	"github.com/nathoo/textbasedgame/engine/effects"
	"github.com/nathoo/textbasedgame/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

func (e *ValidationError) errorf(format string, args ...any) {
	e.Errors = append(e.Errors, fmt.Sprintf(format, args...))
}

func (e *ValidationError) warnf(format string, args ...any) {
	e.Warnings = append(e.Warnings, fmt.Sprintf(format, args...))
}

// validate checks the compiled defs for referential integrity. Anything
// it accepts can be built into a world without panicking. Warnings are
// returned even when there are no errors.
func validate(d *defs) ([]string, error) {
	ve := &ValidationError{}

	rooms := map[string]bool{}
	for _, r := range d.rooms {
		if rooms[r.name] {
			ve.errorf("duplicate room %q", r.name)
		}
		rooms[r.name] = true
	}
	items := map[string]bool{}
	for _, it := range d.items {
		if items[it.name] {
			ve.errorf("duplicate item %q", it.name)
		}
		items[it.name] = true
	}
	refs := &refs{rooms: rooms, items: items, ve: ve}

	if d.game.Title == "" {
		ve.errorf("Game.title is required")
	}
	if d.game.Start == "" {
		ve.errorf("Game.start is required")
	} else if !rooms[d.game.Start] {
		ve.errorf("start room %q not found in defined rooms", d.game.Start)
	}

	for _, r := range d.rooms {
		for dir, target := range r.exits {
			if _, ok := types.ParseDirection(dir); !ok {
				ve.errorf("room %q has exit in unknown direction %q", r.name, dir)
			}
			if !rooms[target] {
				ve.errorf("room %q exit %q points to undefined room %q", r.name, dir, target)
			}
		}
	}

	for _, l := range d.links {
		where := fmt.Sprintf("Link(%q, %q, %q)", l.from, l.direction, l.to)
		refs.room(where, l.from)
		refs.room(where, l.to)
		if _, ok := types.ParseDirection(l.direction); !ok {
			ve.errorf("%s: unknown direction %q", where, l.direction)
		}
	}

	labels := map[string]bool{}
	for _, it := range d.items {
		switch it.location {
		case "":
			ve.warnf("item %q has no location and can only appear through effects", it.name)
		case Inventory:
		default:
			if !rooms[it.location] {
				ve.errorf("item %q location %q does not match any defined room", it.name, it.location)
			}
		}
		if it.onInspect == "" {
			ve.warnf("item %q has no on_inspect text", it.name)
		}

		for _, sp := range it.specials {
			where := fmt.Sprintf("command %q", sp.Label)
			if labels[sp.Label] {
				ve.errorf("duplicate command label %q", sp.Label)
			}
			labels[sp.Label] = true
			if sp.Pattern == "" {
				ve.errorf("%s: pattern is required", where)
			} else if err := command.Compile(sp.Pattern); err != nil {
				ve.errorf("%s: bad pattern: %v", where, err)
			}
			refs.conditions(where, sp.Requires)
			refs.effects(where, sp.Effects)
			refs.effects(where, sp.Otherwise)
		}
	}

	for _, h := range d.handlers {
		where := fmt.Sprintf("On(%q)", h.EventType)
		refs.conditions(where, h.Conditions)
		refs.effects(where, h.Effects)
	}

	if len(ve.Errors) > 0 {
		return ve.Warnings, ve
	}
	return ve.Warnings, nil
}

// refs checks item, room and direction names used by conditions and effects.
type refs struct {
	rooms map[string]bool
	items map[string]bool
	ve    *ValidationError
}

func (r *refs) room(where, name string) {
	if !r.rooms[name] {
		r.ve.errorf("%s references undefined room %q", where, name)
	}
}

func (r *refs) item(where, name string) {
	if !r.items[name] {
		r.ve.errorf("%s references undefined item %q", where, name)
	}
}

func (r *refs) direction(where string, v any) {
	s, _ := v.(string)
	if _, ok := types.ParseDirection(s); !ok {
		r.ve.errorf("%s: unknown direction %v", where, v)
	}
}

// param returns a required string parameter, recording an error if it
// is missing.
func (r *refs) param(where string, p map[string]any, key string) (string, bool) {
	s, ok := p[key].(string)
	if !ok || s == "" {
		r.ve.errorf("%s: missing %s", where, key)
		return "", false
	}
	return s, true
}

func (r *refs) conditions(where string, conds []types.Condition) {
	for _, c := range conds {
		w := where + " condition " + c.Type
		if !conditions.Known(c.Type) {
			r.ve.errorf("%s: unknown condition type %q", where, c.Type)
			continue
		}
		switch c.Type {
		case "has_item", "item_found":
			if item, ok := r.param(w, c.Params, "item"); ok {
				r.item(w, item)
			}
		case "in_room":
			if room, ok := r.param(w, c.Params, "room"); ok {
				r.room(w, room)
			}
		case "item_in_room":
			if item, ok := r.param(w, c.Params, "item"); ok {
				r.item(w, item)
			}
			if room, ok := c.Params["room"].(string); ok {
				r.room(w, room)
			}
		case "not":
			if c.Inner != nil {
				r.conditions(where, []types.Condition{*c.Inner})
			}
		}
	}
}

func (r *refs) effects(where string, effs []types.Effect) {
	for _, e := range effs {
		w := where + " effect " + e.Type
		if !effects.Known(e.Type) {
			r.ve.errorf("%s: unknown effect type %q", where, e.Type)
			continue
		}
		switch e.Type {
		case "say":
			r.param(w, e.Params, "text")
		case "give_item", "remove_item", "mark_found":
			if item, ok := r.param(w, e.Params, "item"); ok {
				r.item(w, item)
			}
		case "place_item":
			if item, ok := r.param(w, e.Params, "item"); ok {
				r.item(w, item)
			}
			if room, ok := e.Params["room"].(string); ok {
				r.room(w, room)
			}
		case "link_rooms":
			if from, ok := r.param(w, e.Params, "from"); ok {
				r.room(w, from)
			}
			if to, ok := r.param(w, e.Params, "to"); ok {
				r.room(w, to)
			}
			r.direction(w, e.Params["direction"])
		case "unlink":
			if room, ok := r.param(w, e.Params, "room"); ok {
				r.room(w, room)
			}
			r.direction(w, e.Params["direction"])
		case "move_player":
			if room, ok := r.param(w, e.Params, "room"); ok {
				r.room(w, room)
			}
		}
	}
}
