// Package games bundles the example games that ship with textr.
package games

import (
	"embed"
	"fmt"
	"path"
	"slices"

	"github.com/tatianab/textr/internal/engine"
	"github.com/tatianab/textr/internal/models"
)

//go:embed walkthroughs/*.yaml
var walkthroughs embed.FS

// Entry describes one bundled game.
type Entry struct {
	Name    string
	Title   string
	Summary string
	Build   func(opts ...engine.Option) *engine.Game
}

// Walkthrough returns the script that wins the game.
func (e Entry) Walkthrough() (*models.Script, error) {
	data, err := walkthroughs.ReadFile(path.Join("walkthroughs", e.Name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("walkthrough for %s: %w", e.Name, err)
	}
	return models.ParseScript(data)
}

var registry = []Entry{
	{
		Name:    "mimic",
		Title:   "Find the Mimic",
		Summary: "Three chests. One holds gold, two want to eat you.",
		Build:   MimicGame,
	},
	{
		Name:    "amulet",
		Title:   "Find the Mimic: The Amulet",
		Summary: "An amulet on the ground lets you see through disguises.",
		Build:   AmuletGame,
	},
	{
		Name:    "zapper",
		Title:   "Find the Mimic: The Zapper",
		Summary: "Collect three charges and zap the mimics away.",
		Build:   ZapperGame,
	},
}

// All returns every bundled game in menu order.
func All() []Entry {
	return slices.Clone(registry)
}

func Lookup(name string) (Entry, bool) {
	i := slices.IndexFunc(registry, func(e Entry) bool { return e.Name == name })
	if i < 0 {
		return Entry{}, false
	}
	return registry[i], true
}

// MimicGame builds the plain mimic game.
func MimicGame(opts ...engine.Option) *engine.Game {
	g := engine.NewGame(opts...)
	engine.MustAdd(g, NewChest())
	engine.MustAdd(g, NewMimic())
	engine.MustAdd(g, NewMimic())
	return g
}

func AmuletGame(opts ...engine.Option) *engine.Game {
	g := engine.NewGame(append([]engine.Option{engine.WithCategories("Treasure", "Swag")}, opts...)...)
	treasure := engine.WithCategory("Treasure")
	engine.MustAdd(g, NewChest(treasure))
	engine.MustAdd(g, NewMimic(treasure))
	engine.MustAdd(g, NewMimic(treasure))
	engine.MustAdd(g, NewAmulet(engine.WithCategory("Swag")))
	return g
}

func ZapperGame(opts ...engine.Option) *engine.Game {
	g := engine.NewGame(append([]engine.Option{engine.WithCategories("Treasure", "Swag")}, opts...)...)
	treasure := engine.WithCategory("Treasure")
	swag := engine.WithCategory("Swag")
	engine.MustAdd(g, NewChest(treasure))
	engine.MustAdd(g, NewMimic(treasure))
	engine.MustAdd(g, NewMimic(treasure))
	engine.MustAdd(g, NewZapper(swag))
	for range fullCharge {
		engine.MustAdd(g, NewCharge(swag))
	}
	return g
}
