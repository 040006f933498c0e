package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(assets []Asset) []string {
	out := make([]string, len(assets))
	for i, a := range assets {
		out[i] = a.Name()
	}
	return out
}

func TestAddAndRemoveAsset(t *testing.T) {
	g := NewGame()
	chest := MustAdd(g, newProbe("Chest"))
	mimic := MustAdd(g, newProbe("Mimic"))
	assert.Equal(t, []string{"Chest", "Mimic"}, names(g.Assets()))

	assert.ErrorIs(t, g.AddAsset(chest), ErrAssetExists)

	require.NoError(t, g.RemoveAsset(mimic))
	assert.Equal(t, []string{"Chest"}, names(g.Assets()))
	assert.False(t, g.Live(mimic))

	assert.ErrorIs(t, g.RemoveAsset(mimic), ErrAssetNotFound)
	assert.ErrorIs(t, g.RemoveAsset(nil), ErrAssetNotFound)
	assert.ErrorIs(t, g.AddAsset(mimic), ErrAssetRetired)
	assert.ErrorIs(t, g.AddAsset(&probe{}), ErrInvalidAsset)
	assert.ErrorIs(t, g.AddAsset(nil), ErrInvalidAsset)
}

func TestMustAddPanics(t *testing.T) {
	g := NewGame()
	p := MustAdd(g, newProbe("p"))
	assert.Panics(t, func() { MustAdd(g, p) })
}

func TestAssetsReturnsCopy(t *testing.T) {
	g := NewGame()
	MustAdd(g, newProbe("a"))
	assets := g.Assets()
	assets[0] = nil
	assert.NotNil(t, g.Assets()[0])
}

func TestBaseDefaults(t *testing.T) {
	b := NewBase("Thing")
	assert.Equal(t, DefaultCategory, b.Category())
	assert.Equal(t, 0, b.Order())
	assert.NotEmpty(t, b.ID())
	other := NewBase("Thing")
	assert.NotEqual(t, b.ID(), other.ID())

	desc, err := b.Description(nil)
	require.NoError(t, err)
	assert.Empty(t, desc)
	visible, err := b.Visible(nil)
	require.NoError(t, err)
	assert.True(t, visible)

	_, ok := b.EventHandler("anything")
	assert.False(t, ok)
	_, ok = b.QueryHandler("anything")
	assert.False(t, ok)

	var zero Base
	zero.HandleEvent("x", func(*Game, any) error { return nil })
	_, ok = zero.EventHandler("x")
	assert.True(t, ok)
}

func TestEndIsIdempotent(t *testing.T) {
	g := NewGame()
	assert.Equal(t, StateRunning, g.State())
	_, over := g.Over()
	assert.False(t, over)

	g.End("You won")
	g.End("You lost")

	reason, over := g.Over()
	assert.True(t, over)
	assert.Equal(t, "You won", reason)
	assert.Equal(t, StateEnded, g.State())
	assert.Equal(t, "ENDED", g.State().String())
}

func TestCategoriesOrdering(t *testing.T) {
	g := NewGame(WithCategories("Treasure", "Swag"))
	MustAdd(g, newProbe("amulet", WithCategory("Swag"), WithOrder(2)))
	MustAdd(g, newProbe("odd1", WithCategory("Unknown")))
	MustAdd(g, newProbe("chest", WithCategory("Treasure")))
	MustAdd(g, newProbe("charm", WithCategory("Swag"), WithOrder(1)))
	MustAdd(g, newProbe("odd0", WithCategory("Other")))
	MustAdd(g, newProbe("ring", WithCategory("Swag"), WithOrder(1)))
	MustAdd(g, newProbe("odd2", WithCategory("Unknown")))

	groups, err := g.Categories()
	require.NoError(t, err)

	var categories []string
	for _, group := range groups {
		categories = append(categories, group.Category)
	}
	assert.Equal(t, []string{"Treasure", "Swag", "Unknown", "Other"}, categories)
	assert.Equal(t, []string{"chest"}, names(groups[0].Assets))
	assert.Equal(t, []string{"charm", "ring", "amulet"}, names(groups[1].Assets))
	assert.Equal(t, []string{"odd1", "odd2"}, names(groups[2].Assets))
}

func TestCategoriesSkipsInvisible(t *testing.T) {
	g := NewGame()
	hidden := true
	p := MustAdd(g, newProbe("ghost"))
	p.visible = func(*Game) bool { return !hidden }
	MustAdd(g, newProbe("rock"))

	groups, err := g.Categories()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, DefaultCategory, groups[0].Category)
	assert.Equal(t, []string{"rock"}, names(groups[0].Assets))

	hidden = false
	groups, err = g.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"ghost", "rock"}, names(groups[0].Assets))
}

func TestPrintModifiersCompose(t *testing.T) {
	rec := &recorder{}
	g := NewGame(WithSink(rec))
	g.RegisterPrintModifiers(strings.ToUpper)
	g.RegisterPrintModifiers(func(s string) string { return "[" + s + "]" })

	g.Log("you found gold")
	assert.Equal(t, []string{"[YOU FOUND GOLD]"}, rec.last())
}
