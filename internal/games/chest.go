package games

import "github.com/tatianab/textr/internal/engine"

const (
	wonMessage  = "You opened the chest! You found some gold! You Won!"
	lostMessage = "You opened the chest! It was a mimic! You Lost!"
)

// Chest holds the gold.
type Chest struct {
	engine.Base
}

func NewChest(opts ...engine.BaseOption) *Chest {
	return &Chest{Base: engine.NewBase("Chest", opts...)}
}

func (c *Chest) Description(*engine.Game) ([]string, error) {
	return []string{"Looks harmless"}, nil
}

func (c *Chest) Actions(*engine.Game) ([]engine.Action, error) {
	return []engine.Action{{Label: "open", Handler: c.open}}, nil
}

func (c *Chest) open(g *engine.Game) error {
	g.End(wonMessage)
	return nil
}

// Mimic looks like a Chest. It gives itself away to true vision and offers
// itself as a zapper target.
type Mimic struct {
	engine.Base
}

func NewMimic(opts ...engine.BaseOption) *Mimic {
	m := &Mimic{Base: engine.NewBase("Chest", opts...)}
	m.HandleQuery(queryZapTarget, engine.Fold(func(g *engine.Game, targets []engine.Asset) ([]engine.Asset, error) {
		return append([]engine.Asset{m}, targets...), nil
	}))
	return m
}

func (m *Mimic) Description(g *engine.Game) ([]string, error) {
	seen, err := engine.QueryAs(g, queryTrueVision, false)
	if err != nil {
		return nil, err
	}
	if seen {
		return []string{"Looks like a mimic"}, nil
	}
	return []string{"Looks harmless"}, nil
}

func (m *Mimic) Actions(*engine.Game) ([]engine.Action, error) {
	return []engine.Action{{Label: "open", Handler: m.open}}, nil
}

func (m *Mimic) open(g *engine.Game) error {
	g.End(lostMessage)
	return nil
}
