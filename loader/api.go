package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers all Lua constructors and helpers as globals.
func registerAPI(L *lua.LState, coll *collector) {
	registerConstructors(L, coll)
	registerConditionHelpers(L)
	registerEffectHelpers(L)
}

// curried returns a Lua function taking a name and returning a function
// that takes the definition table, so content can write Room "Kitchen" { ... }.
func curried(L *lua.LState, done func(name string, tbl *lua.LTable)) *lua.LFunction {
	return L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			done(name, L.CheckTable(1))
			return 0
		}))
		return 1
	})
}

func registerConstructors(L *lua.LState, coll *collector) {
	// Game { title = "...", start = "..." }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		coll.game = L.CheckTable(1)
		return 0
	}))

	// Room "Name" { display = "...", on_enter = "...", on_look = "...", exits = {...} }
	L.SetGlobal("Room", curried(L, func(name string, tbl *lua.LTable) {
		coll.rooms = append(coll.rooms, rawRoom{name: name, table: tbl})
	}))

	// Item "Name" { display = "...", on_inspect = "...", carry = true, location = "...", commands = {...} }
	L.SetGlobal("Item", curried(L, func(name string, tbl *lua.LTable) {
		coll.items = append(coll.items, rawItem{name: name, table: tbl})
	}))

	// Command "Label" { pattern = "...", hints = {...}, requires = {...}, effects = {...}, otherwise = {...} }
	// Returns the table tagged with its label for use in an item's commands list.
	L.SetGlobal("Command", L.NewFunction(func(L *lua.LState) int {
		label := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			tbl.RawSetString("__label", lua.LString(label))
			L.Push(tbl)
			return 1
		}))
		return 1
	}))

	// Link("Kitchen", "north", "Bedroom") links both ways; a fourth
	// argument of true makes it one-way.
	L.SetGlobal("Link", L.NewFunction(func(L *lua.LState) int {
		coll.links = append(coll.links, rawLink{
			from:      L.CheckString(1),
			direction: L.CheckString(2),
			to:        L.CheckString(3),
			oneWay:    L.OptBool(4, false),
		})
		return 0
	}))

	// On("event_type", { conditions = {...}, effects = {...} })
	L.SetGlobal("On", L.NewFunction(func(L *lua.LState) int {
		eventType := L.CheckString(1)
		tbl := L.CheckTable(2)
		coll.handlers = append(coll.handlers, rawHandler{eventType: eventType, table: tbl})
		return 0
	}))
}

// helper registers name as a function building a {type = typ, ...} table
// from its string arguments, assigned to keys in order.
func helper(L *lua.LState, name, typ string, keys ...string) {
	L.SetGlobal(name, L.NewFunction(func(L *lua.LState) int {
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString(typ))
		for i, k := range keys {
			if v := L.Get(i + 1); v != lua.LNil {
				tbl.RawSetString(k, v)
			}
		}
		L.Push(tbl)
		return 1
	}))
}

func registerConditionHelpers(L *lua.LState) {
	helper(L, "HasItem", "has_item", "item")
	helper(L, "InRoom", "in_room", "room")
	helper(L, "ItemInRoom", "item_in_room", "item", "room")
	helper(L, "ItemFound", "item_found", "item")

	// Not(condition)
	L.SetGlobal("Not", L.NewFunction(func(L *lua.LState) int {
		inner := L.CheckTable(1)
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("not"))
		tbl.RawSetString("inner", inner)
		L.Push(tbl)
		return 1
	}))
}

func registerEffectHelpers(L *lua.LState) {
	helper(L, "Say", "say", "text")
	helper(L, "GiveItem", "give_item", "item")
	helper(L, "RemoveItem", "remove_item", "item")
	helper(L, "PlaceItem", "place_item", "item", "room")
	helper(L, "MarkFound", "mark_found", "item")
	helper(L, "LinkRooms", "link_rooms", "from", "direction", "to", "one_way")
	helper(L, "Unlink", "unlink", "room", "direction")
	helper(L, "MovePlayer", "move_player", "room")
	helper(L, "Stop", "stop")
}
