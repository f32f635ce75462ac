// Package world holds the rooms, items, and inventory the engine operates on.
// Every item has at most one owner (a room or the inventory); all transfers
// go through World so the invariant cannot be broken from outside.
package world

import (
	"fmt"
	"strings"

	"github.com/nathoo/textbasedgame/types"
)

// Room is a place the player can stand in.
type Room struct {
	Name     string
	Display  string
	Messages map[types.RoomMessage]string
	Exits    map[types.Direction]string // "" or missing = no path

	items []string // owned by World
}

// Items returns a copy of the item names lying in the room.
func (r *Room) Items() []string {
	return append([]string(nil), r.items...)
}

// Flags are immutable per-item properties.
type Flags struct {
	CanCarry bool
}

// Attrs are mutable per-item properties.
type Attrs struct {
	IsFound bool
}

// Item is something that lives in a room or in the player's inventory.
type Item struct {
	Name     string
	Display  string
	Messages map[types.ItemMessage]string
	Specials []types.SpecialDef
	Flags    Flags
	Attrs    Attrs
}

// owner values for items that are not in any room.
const (
	ownerNone      = ""
	ownerInventory = "\x00inventory"
)

// World is the complete mutable game world.
type World struct {
	Game     types.GameDef
	Handlers []types.Handler // event handlers, in registration order

	rooms     map[string]*Room
	items     map[string]*Item
	itemOrder []string // registration order, for deterministic command sets
	owner     map[string]string
	inventory []string
	current   string
}

// New creates an empty world.
func New(game types.GameDef) *World {
	return &World{
		Game:      game,
		rooms:     map[string]*Room{},
		items:     map[string]*Item{},
		owner:     map[string]string{},
		inventory: []string{},
	}
}

// AddRoom registers a room. Exits default to none in every direction.
func (w *World) AddRoom(r Room) {
	if _, ok := w.rooms[r.Name]; ok {
		panic(fmt.Sprintf("world: duplicate room %q", r.Name))
	}
	exits := make(map[types.Direction]string, len(types.Directions))
	for _, d := range types.Directions {
		exits[d] = r.Exits[d]
	}
	r.Exits = exits
	r.items = nil
	w.rooms[r.Name] = &r
}

// AddItem registers an item without placing it anywhere.
func (w *World) AddItem(it Item) {
	if _, ok := w.items[it.Name]; ok {
		panic(fmt.Sprintf("world: duplicate item %q", it.Name))
	}
	w.items[it.Name] = &it
	w.itemOrder = append(w.itemOrder, it.Name)
	w.owner[it.Name] = ownerNone
}

// Room returns the named room. Unknown names are content bugs and panic.
func (w *World) Room(name string) *Room {
	r, ok := w.rooms[name]
	if !ok {
		panic(fmt.Sprintf("world: unknown room %q", name))
	}
	return r
}

// Item returns the named item. Unknown names are content bugs and panic.
func (w *World) Item(name string) *Item {
	it, ok := w.items[name]
	if !ok {
		panic(fmt.Sprintf("world: unknown item %q", name))
	}
	return it
}

// HasRoom reports whether a room with that name exists.
func (w *World) HasRoom(name string) bool {
	_, ok := w.rooms[name]
	return ok
}

// HasItem reports whether an item with that name exists.
func (w *World) HasItem(name string) bool {
	_, ok := w.items[name]
	return ok
}

// Items returns every item in registration order.
func (w *World) Items() []*Item {
	out := make([]*Item, 0, len(w.itemOrder))
	for _, name := range w.itemOrder {
		out = append(out, w.items[name])
	}
	return out
}

// RoomNames returns every room name. Order is unspecified.
func (w *World) RoomNames() []string {
	names := make([]string, 0, len(w.rooms))
	for name := range w.rooms {
		names = append(names, name)
	}
	return names
}

// Current returns the room the player is in.
func (w *World) Current() *Room {
	return w.Room(w.current)
}

// SetCurrent moves the player to the named room.
func (w *World) SetCurrent(name string) {
	w.Room(name)
	w.current = name
}

// Inventory returns a copy of the inventory in pickup order.
func (w *World) Inventory() []string {
	return append([]string(nil), w.inventory...)
}

// InInventory reports whether the player holds the item.
func (w *World) InInventory(item string) bool {
	w.Item(item)
	return w.owner[item] == ownerInventory
}

// InRoom reports whether the item lies in the named room.
func (w *World) InRoom(item, room string) bool {
	w.Item(item)
	w.Room(room)
	return w.owner[item] == room
}

// InCurrentRoom reports whether the item lies in the player's room.
func (w *World) InCurrentRoom(item string) bool {
	return w.InRoom(item, w.current)
}

// Reachable reports whether the item is held or in the current room.
func (w *World) Reachable(item string) bool {
	return w.InInventory(item) || w.InCurrentRoom(item)
}

// Exit returns the room in direction d from the named room, or "".
func (w *World) Exit(room string, d types.Direction) string {
	r := w.Room(room)
	target, ok := r.Exits[d]
	if !ok {
		panic(fmt.Sprintf("world: invalid direction %d", d))
	}
	return target
}

// LinkRooms connects a to b in direction d. When bothWays is set, b is
// also connected back to a in the reverse direction.
func (w *World) LinkRooms(a string, d types.Direction, b string, bothWays bool) {
	checkDirection(d)
	w.Room(a).Exits[d] = w.Room(b).Name
	if bothWays {
		w.Room(b).Exits[d.Reverse()] = a
	}
}

// Unlink removes the exit in direction d from the named room.
func (w *World) Unlink(room string, d types.Direction) {
	checkDirection(d)
	w.Room(room).Exits[d] = ""
}

func checkDirection(d types.Direction) {
	if d < types.North || d > types.West {
		panic(fmt.Sprintf("world: invalid direction %d", d))
	}
}

// Place puts an item in a room, taking it from wherever it was.
func (w *World) Place(item, room string) {
	w.Room(room)
	w.detach(item)
	r := w.rooms[room]
	r.items = append(r.items, item)
	w.owner[item] = room
}

// Give puts an item in the inventory, taking it from wherever it was.
func (w *World) Give(item string) {
	w.detach(item)
	w.inventory = append(w.inventory, item)
	w.owner[item] = ownerInventory
}

// Consume removes an item from the world entirely.
func (w *World) Consume(item string) {
	w.detach(item)
}

// Take moves an item from the current room into the inventory and marks
// it found. It reports false, changing nothing, if the item is not in the
// current room.
func (w *World) Take(item string) bool {
	if !w.InCurrentRoom(item) {
		return false
	}
	w.Give(item)
	w.items[item].Attrs.IsFound = true
	return true
}

// Drop moves an item from the inventory into the current room. It reports
// false, changing nothing, if the item is not held.
func (w *World) Drop(item string) bool {
	if !w.InInventory(item) {
		return false
	}
	w.Place(item, w.current)
	return true
}

// MarkFound records that the player has seen the item. It never reverts.
func (w *World) MarkFound(item string) {
	w.Item(item).Attrs.IsFound = true
}

// detach removes the item from its current owner's list.
func (w *World) detach(item string) {
	w.Item(item)
	switch owner := w.owner[item]; owner {
	case ownerNone:
	case ownerInventory:
		w.inventory = removeFirst(w.inventory, item)
	default:
		r := w.rooms[owner]
		r.items = removeFirst(r.items, item)
	}
	w.owner[item] = ownerNone
}

func removeFirst(list []string, s string) []string {
	for i, v := range list {
		if v == s {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}

// FullItemName returns the item's display text with an article:
// "a lamp", "an orange".
func (w *World) FullItemName(item string) string {
	display := w.Item(item).Display
	if display == "" {
		return display
	}
	switch strings.ToLower(display[:1]) {
	case "a", "e", "i", "o", "u":
		return "an " + display
	}
	return "a " + display
}

// InventoryListing describes the inventory in a single sentence.
func (w *World) InventoryListing() string {
	if len(w.inventory) == 0 {
		return "Your inventory is empty."
	}
	return "Your inventory contains " + w.joinNames(w.inventory) + "."
}

// RoomListing describes the items in the current room in a single sentence.
func (w *World) RoomListing() string {
	items := w.Current().items
	if len(items) == 0 {
		return "There's nothing useful in here."
	}
	return "You see " + w.joinNames(items) + "."
}

// joinNames renders "x", "x and y", "x, y and z", ...
func (w *World) joinNames(items []string) string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = w.FullItemName(it)
	}
	if len(names) == 1 {
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
