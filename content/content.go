// Package content embeds the game's Lua sources.
package content

import "embed"

// FS holds game.lua and the world definition files.
//
//go:embed *.lua
var FS embed.FS
