package games

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/textr/internal/engine"
	"github.com/tatianab/textr/internal/models"
)

type screens struct {
	frames [][]string
}

func (s *screens) Clear() { s.frames = append(s.frames, nil) }

func (s *screens) Println(line string) {
	if len(s.frames) == 0 {
		s.Clear()
	}
	s.frames[len(s.frames)-1] = append(s.frames[len(s.frames)-1], line)
}

func (s *screens) text(i int) string { return strings.Join(s.frames[i], "\n") }

func play(t *testing.T, g *engine.Game, steps ...engine.Intent) error {
	t.Helper()
	return g.Run(context.Background(), models.NewScriptNavigator(steps))
}

func TestWalkthroughsWin(t *testing.T) {
	for _, entry := range All() {
		t.Run(entry.Name, func(t *testing.T) {
			script, err := entry.Walkthrough()
			require.NoError(t, err)
			assert.Equal(t, entry.Name, script.Game)

			intents, err := script.Intents()
			require.NoError(t, err)

			g := entry.Build()
			require.NoError(t, play(t, g, intents...))
			reason, over := g.Over()
			require.True(t, over)
			assert.True(t, script.Matches(reason), "ending %q", reason)
		})
	}
}

func TestLookup(t *testing.T) {
	e, ok := Lookup("zapper")
	require.True(t, ok)
	assert.Equal(t, "zapper", e.Name)

	_, ok = Lookup("dragon")
	assert.False(t, ok)
	assert.Len(t, All(), 3)
}

func TestMimicLoses(t *testing.T) {
	g := MimicGame()
	require.NoError(t, play(t, g, engine.IntentDown, engine.IntentActivate))
	reason, _ := g.Over()
	assert.Equal(t, lostMessage, reason)
}

func TestAmuletRevealsMimics(t *testing.T) {
	out := &screens{}
	g := AmuletGame(engine.WithSink(out))

	err := play(t, g, engine.IntentDown, engine.IntentDown, engine.IntentDown, engine.IntentActivate,
		engine.IntentActivate)
	assert.ErrorIs(t, err, models.ErrScriptExhausted)

	// One screen to start, then one per intent.
	require.Len(t, out.frames, 6)
	before := out.text(0)
	assert.NotContains(t, before, "Looks like a mimic")
	assert.Contains(t, before, "-> pick up")
	assert.Less(t, strings.Index(before, " Treasure "), strings.Index(before, " Swag "))

	worn := out.text(4)
	assert.True(t, strings.HasPrefix(worn, "You picked up the amulet"))
	assert.Equal(t, 2, strings.Count(worn, "Looks like a mimic"))
	assert.Contains(t, worn, "=> take off")

	off := out.text(5)
	assert.NotContains(t, off, "Looks like a mimic")
	assert.Contains(t, off, "You took off the amulet")
}

func TestZapperChargesAndZaps(t *testing.T) {
	out := &screens{}
	g := ZapperGame(engine.WithSink(out))

	steps := []engine.Intent{engine.IntentDown, engine.IntentDown, engine.IntentDown, engine.IntentActivate}
	err := play(t, g, steps...)
	assert.ErrorIs(t, err, models.ErrScriptExhausted)
	assert.Contains(t, out.text(0), "0 / 3")
	require.Len(t, out.frames, 5)
	assert.Contains(t, out.text(3), "0 / 3")
	assert.Contains(t, out.text(4), "1 / 3")
	assert.NotContains(t, out.text(4), "-> activate")
	assert.NotContains(t, out.text(4), "=> activate")
}

func TestZapperRemovesMimics(t *testing.T) {
	g := ZapperGame()
	var zapper *Zapper
	for _, a := range g.Assets() {
		switch a := a.(type) {
		case *Charge:
			a.pickedUp = true
		case *Zapper:
			zapper = a
		}
	}
	require.NotNil(t, zapper)

	actions, err := zapper.Actions(g)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	require.NoError(t, actions[0].Handler(g))

	for _, a := range g.Assets() {
		_, isMimic := a.(*Mimic)
		assert.False(t, isMimic, "mimic survived the zapper")
	}

	charge, err := engine.QueryAs(g, queryTotalCharge, 0)
	require.NoError(t, err)
	assert.Zero(t, charge)
	actions, err = zapper.Actions(g)
	require.NoError(t, err)
	assert.Empty(t, actions)
}
