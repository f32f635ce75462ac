package loader

import (
	"testing"

	"github.com/nathoo/textbasedgame/types"
)

// validDefs returns minimal valid defs for testing.
func validDefs() *defs {
	return &defs{
		game: types.GameDef{Title: "Test", Start: "Hall"},
		rooms: []roomDef{
			{name: "Hall", display: "hall", exits: map[string]string{"north": "Garden"}},
			{name: "Garden", display: "garden", exits: map[string]string{}},
		},
		items: []itemDef{
			{name: "Key", display: "key", onInspect: "A key.", carry: true, location: "Hall"},
		},
	}
}

func validationErrors(t *testing.T, d *defs) []string {
	t.Helper()
	_, err := validate(d)
	if err == nil {
		t.Fatal("expected validation error")
	}
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	return ve.Errors
}

func TestValidate_ValidDefs(t *testing.T) {
	warnings, err := validate(validDefs())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestValidate_Game(t *testing.T) {
	d := validDefs()
	d.game.Title = ""
	assertContains(t, validationErrors(t, d), "title is required")

	d = validDefs()
	d.game.Start = ""
	assertContains(t, validationErrors(t, d), "start is required")

	d = validDefs()
	d.game.Start = "Nowhere"
	assertContains(t, validationErrors(t, d), "start room")
}

func TestValidate_Duplicates(t *testing.T) {
	d := validDefs()
	d.rooms = append(d.rooms, roomDef{name: "Hall"})
	assertContains(t, validationErrors(t, d), `duplicate room "Hall"`)

	d = validDefs()
	d.items = append(d.items, itemDef{name: "Key", location: "Hall"})
	assertContains(t, validationErrors(t, d), `duplicate item "Key"`)
}

func TestValidate_Exits(t *testing.T) {
	d := validDefs()
	d.rooms[0].exits["north"] = "Void"
	assertContains(t, validationErrors(t, d), `undefined room "Void"`)

	d = validDefs()
	d.rooms[0].exits["up"] = "Garden"
	assertContains(t, validationErrors(t, d), `unknown direction "up"`)
}

func TestValidate_Links(t *testing.T) {
	d := validDefs()
	d.links = []rawLink{{from: "Hall", direction: "east", to: "Void"}}
	assertContains(t, validationErrors(t, d), `undefined room "Void"`)

	d = validDefs()
	d.links = []rawLink{{from: "Hall", direction: "sideways", to: "Garden"}}
	assertContains(t, validationErrors(t, d), "unknown direction")
}

func TestValidate_ItemLocation(t *testing.T) {
	d := validDefs()
	d.items[0].location = "Void"
	assertContains(t, validationErrors(t, d), `location "Void"`)

	d = validDefs()
	d.items[0].location = Inventory
	if _, err := validate(d); err != nil {
		t.Errorf("inventory location rejected: %v", err)
	}

	d = validDefs()
	d.items[0].location = ""
	warnings, err := validate(d)
	if err != nil {
		t.Fatalf("unplaced item rejected: %v", err)
	}
	assertContains(t, warnings, "has no location")
}

func TestValidate_Specials(t *testing.T) {
	special := func(sp types.SpecialDef) *defs {
		d := validDefs()
		if sp.Label == "" {
			sp.Label = "Key: Use"
		}
		d.items[0].specials = []types.SpecialDef{sp}
		return d
	}

	tests := []struct {
		name string
		sp   types.SpecialDef
		want string
	}{
		{"missing pattern", types.SpecialDef{}, "pattern is required"},
		{"bad pattern", types.SpecialDef{Pattern: "use (key"}, "bad pattern"},
		{
			"unknown condition",
			types.SpecialDef{Pattern: "use key", Requires: []types.Condition{{Type: "flag_set"}}},
			`unknown condition type "flag_set"`,
		},
		{
			"condition bad item",
			types.SpecialDef{Pattern: "use key", Requires: []types.Condition{
				{Type: "has_item", Params: map[string]any{"item": "Sword"}},
			}},
			`undefined item "Sword"`,
		},
		{
			"negated condition bad room",
			types.SpecialDef{Pattern: "use key", Requires: []types.Condition{
				{Type: "not", Inner: &types.Condition{Type: "in_room", Params: map[string]any{"room": "Void"}}},
			}},
			`undefined room "Void"`,
		},
		{
			"unknown effect",
			types.SpecialDef{Pattern: "use key", Effects: []types.Effect{{Type: "explode"}}},
			`unknown effect type "explode"`,
		},
		{
			"effect missing item",
			types.SpecialDef{Pattern: "use key", Effects: []types.Effect{{Type: "remove_item", Params: map[string]any{}}}},
			"missing item",
		},
		{
			"link bad direction",
			types.SpecialDef{Pattern: "use key", Effects: []types.Effect{
				{Type: "link_rooms", Params: map[string]any{"from": "Hall", "direction": "up", "to": "Garden"}},
			}},
			"unknown direction",
		},
		{
			"otherwise checked too",
			types.SpecialDef{Pattern: "use key", Otherwise: []types.Effect{
				{Type: "move_player", Params: map[string]any{"room": "Void"}},
			}},
			`undefined room "Void"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertContains(t, validationErrors(t, special(tt.sp)), tt.want)
		})
	}
}

func TestValidate_DuplicateCommandLabel(t *testing.T) {
	d := validDefs()
	sp := types.SpecialDef{Label: "Key: Use", Pattern: "use key"}
	d.items[0].specials = []types.SpecialDef{sp, sp}
	assertContains(t, validationErrors(t, d), "duplicate command label")
}

func TestValidate_Handlers(t *testing.T) {
	d := validDefs()
	d.handlers = []types.Handler{{
		EventType: "item_taken",
		Effects:   []types.Effect{{Type: "give_item", Params: map[string]any{"item": "Sword"}}},
	}}
	assertContains(t, validationErrors(t, d), `On("item_taken")`)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	d := validDefs()
	d.game.Title = ""
	d.items[0].location = "Void"
	if errs := validationErrors(t, d); len(errs) != 2 {
		t.Errorf("expected 2 errors, got %d: %v", len(errs), errs)
	}
}
