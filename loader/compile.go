// Package loader loads Lua game content into the world model at startup.
// The Lua VM is discarded after loading; no Lua runs during play.
package loader

import (
	"fmt"
	"strings"

	"github.com/nathoo/textbasedgame/engine/world"
	"github.com/nathoo/textbasedgame/types"
	lua "github.com/yuin/gopher-lua"
)

// Raw tables collected while the Lua files run.
type (
	rawRoom struct {
		name  string
		table *lua.LTable
	}
	rawItem struct {
		name  string
		table *lua.LTable
	}
	rawLink struct {
		from, direction, to string
		oneWay              bool
	}
	rawHandler struct {
		eventType string
		table     *lua.LTable
	}
)

// defs is the compiled content, checked by validate before build turns it
// into a world.
type defs struct {
	game     types.GameDef
	rooms    []roomDef
	items    []itemDef
	links    []rawLink
	handlers []types.Handler
}

type roomDef struct {
	name    string
	display string
	onEnter string
	onLook  string
	exits   map[string]string // direction name -> room
}

type itemDef struct {
	name      string
	display   string
	onInspect string
	carry     bool
	location  string // room name, "inventory", or "" for nowhere
	specials  []types.SpecialDef
}

// Inventory is the item location that starts an item in the player's hands.
const Inventory = "inventory"

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or def if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	if b, ok := tbl.RawGetString(key).(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	if t, ok := tbl.RawGetString(key).(*lua.LTable); ok {
		return t
	}
	return nil
}

// getStrings returns the array part of a table field as strings.
func getStrings(tbl *lua.LTable, key string) []string {
	arr := getTable(tbl, key)
	if arr == nil {
		return nil
	}
	var out []string
	for i := 1; i <= arr.MaxN(); i++ {
		if s, ok := arr.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}

// toGoValue converts a Lua value to a Go value recursively.
func toGoValue(v lua.LValue) any {
	switch val := v.(type) {
	case lua.LBool:
		return bool(val)
	case lua.LNumber:
		f := float64(val)
		if f == float64(int(f)) {
			return int(f)
		}
		return f
	case lua.LString:
		return string(val)
	case *lua.LTable:
		if n := val.MaxN(); n > 0 {
			arr := make([]any, 0, n)
			for i := 1; i <= n; i++ {
				arr = append(arr, toGoValue(val.RawGetInt(i)))
			}
			return arr
		}
		m := map[string]any{}
		val.ForEach(func(k, v lua.LValue) {
			if ks, ok := k.(lua.LString); ok {
				m[string(ks)] = toGoValue(v)
			}
		})
		return m
	default:
		return nil
	}
}

// tableToStringMap converts a Lua table to a map[string]string.
func tableToStringMap(tbl *lua.LTable) map[string]string {
	m := map[string]string{}
	if tbl == nil {
		return m
	}
	tbl.ForEach(func(k, v lua.LValue) {
		if ks, ok := k.(lua.LString); ok {
			if vs, ok := v.(lua.LString); ok {
				m[string(ks)] = string(vs)
			}
		}
	})
	return m
}

// compile converts the collected Lua tables into defs.
func compile(coll *collector) (*defs, error) {
	if coll.game == nil {
		return nil, fmt.Errorf("no Game{} definition found")
	}
	d := &defs{
		game: types.GameDef{
			Title:  getString(coll.game, "title"),
			Author: getString(coll.game, "author"),
			Start:  getString(coll.game, "start"),
		},
		links: coll.links,
	}

	for _, raw := range coll.rooms {
		d.rooms = append(d.rooms, compileRoom(raw))
	}

	for _, raw := range coll.items {
		item, err := compileItem(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling item %s: %w", raw.name, err)
		}
		d.items = append(d.items, item)
	}

	for _, raw := range coll.handlers {
		d.handlers = append(d.handlers, types.Handler{
			EventType:  raw.eventType,
			Conditions: compileConditions(getTable(raw.table, "conditions")),
			Effects:    compileEffects(getTable(raw.table, "effects")),
		})
	}

	return d, nil
}

// compileRoom fills in the standard messages when the content leaves them out.
func compileRoom(raw rawRoom) roomDef {
	tbl := raw.table
	r := roomDef{
		name:    raw.name,
		display: getString(tbl, "display"),
		onEnter: getString(tbl, "on_enter"),
		onLook:  getString(tbl, "on_look"),
		exits:   tableToStringMap(getTable(tbl, "exits")),
	}
	if r.display == "" {
		r.display = strings.ToLower(r.name)
	}
	if r.onEnter == "" {
		r.onEnter = "You have entered the " + r.display + "."
	}
	if r.onLook == "" {
		r.onLook = "You are in the " + r.display + "."
	}
	return r
}

func compileItem(raw rawItem) (itemDef, error) {
	tbl := raw.table
	it := itemDef{
		name:      raw.name,
		display:   getString(tbl, "display"),
		onInspect: getString(tbl, "on_inspect"),
		carry:     getBool(tbl, "carry", true),
		location:  getString(tbl, "location"),
	}
	if it.display == "" {
		it.display = strings.ToLower(it.name)
	}

	if cmds := getTable(tbl, "commands"); cmds != nil {
		for i := 1; i <= cmds.MaxN(); i++ {
			cmdTbl, ok := cmds.RawGetInt(i).(*lua.LTable)
			if !ok {
				return it, fmt.Errorf("commands[%d] is not a Command table", i)
			}
			it.specials = append(it.specials, compileSpecial(raw.name, cmdTbl))
		}
	}
	return it, nil
}

// compileSpecial labels unlabeled commands "<item>: <pattern>".
func compileSpecial(item string, tbl *lua.LTable) types.SpecialDef {
	sp := types.SpecialDef{
		Label:     getString(tbl, "__label"),
		Pattern:   getString(tbl, "pattern"),
		Hints:     getStrings(tbl, "hints"),
		Requires:  compileConditions(getTable(tbl, "requires")),
		Effects:   compileEffects(getTable(tbl, "effects")),
		Otherwise: compileEffects(getTable(tbl, "otherwise")),
	}
	if sp.Label == "" {
		sp.Label = item + ": " + sp.Pattern
	}
	return sp
}

func compileConditions(tbl *lua.LTable) []types.Condition {
	if tbl == nil {
		return nil
	}
	var conds []types.Condition
	for i := 1; i <= tbl.MaxN(); i++ {
		if condTbl, ok := tbl.RawGetInt(i).(*lua.LTable); ok {
			conds = append(conds, compileCondition(condTbl))
		}
	}
	return conds
}

func compileCondition(tbl *lua.LTable) types.Condition {
	condType := getString(tbl, "type")

	if condType == "not" {
		if innerTbl := getTable(tbl, "inner"); innerTbl != nil {
			inner := compileCondition(innerTbl)
			return types.Condition{Type: "not", Inner: &inner}
		}
	}

	return types.Condition{Type: condType, Params: params(tbl)}
}

func compileEffects(tbl *lua.LTable) []types.Effect {
	if tbl == nil {
		return nil
	}
	var effs []types.Effect
	for i := 1; i <= tbl.MaxN(); i++ {
		if effTbl, ok := tbl.RawGetInt(i).(*lua.LTable); ok {
			effs = append(effs, types.Effect{Type: getString(effTbl, "type"), Params: params(effTbl)})
		}
	}
	return effs
}

// params returns every string-keyed field except type.
func params(tbl *lua.LTable) map[string]any {
	m := map[string]any{}
	tbl.ForEach(func(k, v lua.LValue) {
		if ks, ok := k.(lua.LString); ok && string(ks) != "type" {
			m[string(ks)] = toGoValue(v)
		}
	})
	return m
}

// build turns validated defs into a world. Rooms and items are registered
// in source order; exits, links and placements follow.
func build(d *defs) *world.World {
	w := world.New(d.game)
	w.Handlers = d.handlers

	for _, r := range d.rooms {
		w.AddRoom(world.Room{
			Name:    r.name,
			Display: r.display,
			Messages: map[types.RoomMessage]string{
				types.OnEnter: r.onEnter,
				types.OnLook:  r.onLook,
			},
		})
	}
	for _, r := range d.rooms {
		for name, target := range r.exits {
			dir, _ := types.ParseDirection(name)
			w.LinkRooms(r.name, dir, target, false)
		}
	}
	for _, l := range d.links {
		dir, _ := types.ParseDirection(l.direction)
		w.LinkRooms(l.from, dir, l.to, !l.oneWay)
	}

	for _, it := range d.items {
		w.AddItem(world.Item{
			Name:     it.name,
			Display:  it.display,
			Messages: map[types.ItemMessage]string{types.OnInspect: it.onInspect},
			Specials: it.specials,
			Flags:    world.Flags{CanCarry: it.carry},
		})
		switch it.location {
		case "":
		case Inventory:
			w.Give(it.name)
		default:
			w.Place(it.name, it.location)
		}
	}

	w.SetCurrent(d.game.Start)
	return w
}
