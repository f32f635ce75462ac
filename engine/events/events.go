// Package events dispatches world events to content handlers.
// Handlers produce additional effects but do not recurse.
package events

import (
	"github.com/nathoo/textbasedgame/engine/conditions"
	"github.com/nathoo/textbasedgame/engine/world"
	"github.com/nathoo/textbasedgame/types"
)

// Dispatch runs handlers against the emitted events in a single pass and
// returns the effects of every handler whose event type matches and whose
// conditions pass.
func Dispatch(evs []types.Event, handlers []types.Handler, w *world.World) []types.Effect {
	var result []types.Effect

	for _, ev := range evs {
		for _, h := range handlers {
			if h.EventType != ev.Type {
				continue
			}
			if !conditions.EvalAll(h.Conditions, w) {
				continue
			}
			result = append(result, h.Effects...)
		}
	}

	return result
}
