package games

import (
	"fmt"

	"github.com/tatianab/textr/internal/engine"
)

const (
	queryTotalCharge = "total_charge"
	queryZapTarget   = "zap_target"
	eventZapped      = "zapped"

	fullCharge = 3
)

// Zapper removes every mimic once it holds enough charges.
type Zapper struct {
	engine.Base
}

func NewZapper(opts ...engine.BaseOption) *Zapper {
	return &Zapper{Base: engine.NewBase("Zapper", opts...)}
}

func (z *Zapper) charge(g *engine.Game) (int, error) {
	return engine.QueryAs(g, queryTotalCharge, 0)
}

func (z *Zapper) Description(g *engine.Game) ([]string, error) {
	charge, err := z.charge(g)
	if err != nil {
		return nil, err
	}
	return []string{
		"A device from a mad scientist",
		"It zaps things",
		fmt.Sprintf("%d / %d", charge, fullCharge),
	}, nil
}

func (z *Zapper) Actions(g *engine.Game) ([]engine.Action, error) {
	charge, err := z.charge(g)
	if err != nil {
		return nil, err
	}
	if charge < fullCharge {
		return nil, nil
	}
	return []engine.Action{{Label: "activate", Handler: z.activate}}, nil
}

func (z *Zapper) activate(g *engine.Game) error {
	g.Log("You activated the zapper")
	targets, err := engine.QueryAs[[]engine.Asset](g, queryZapTarget, nil)
	if err != nil {
		return err
	}
	for _, target := range targets {
		g.Log("A mimic was zapped!")
		if err := g.RemoveAsset(target); err != nil {
			return err
		}
	}
	return g.TriggerEvent(eventZapped, len(targets))
}

// Charge powers the zapper once picked up. Firing the zapper drains it.
type Charge struct {
	engine.Base
	pickedUp bool
	drained  bool
}

func NewCharge(opts ...engine.BaseOption) *Charge {
	c := &Charge{Base: engine.NewBase("Charge", opts...)}
	c.HandleQuery(queryTotalCharge, engine.Fold(func(g *engine.Game, total int) (int, error) {
		if c.pickedUp && !c.drained {
			total++
		}
		return total, nil
	}))
	c.HandleEvent(eventZapped, func(g *engine.Game, _ any) error {
		if c.pickedUp {
			c.drained = true
		}
		return nil
	})
	return c
}

func (c *Charge) Description(*engine.Game) ([]string, error) {
	switch {
	case c.drained:
		return []string{"A dull gem stone", "Its energy is spent"}, nil
	case c.pickedUp:
		return []string{"A pulsating gem stone", "Its attached to your zapper"}, nil
	}
	return []string{"A pulsating gem stone", "It lies on the ground"}, nil
}

func (c *Charge) Actions(*engine.Game) ([]engine.Action, error) {
	if c.pickedUp {
		return nil, nil
	}
	return []engine.Action{{Label: "pick up", Handler: c.pickUp}}, nil
}

func (c *Charge) pickUp(g *engine.Game) error {
	g.Log("You picked up the charge")
	c.pickedUp = true
	return nil
}
