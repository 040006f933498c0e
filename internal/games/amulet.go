package games

import "github.com/tatianab/textr/internal/engine"

const queryTrueVision = "true_vision"

// Amulet reveals mimics while worn.
type Amulet struct {
	engine.Base
	worn bool
}

func NewAmulet(opts ...engine.BaseOption) *Amulet {
	a := &Amulet{Base: engine.NewBase("Amulet", opts...)}
	a.HandleQuery(queryTrueVision, engine.Fold(func(g *engine.Game, seen bool) (bool, error) {
		return seen || a.worn, nil
	}))
	return a
}

func (a *Amulet) Description(*engine.Game) ([]string, error) {
	if a.worn {
		return []string{"A nice amulet, worn by you"}, nil
	}
	return []string{"A nice amulet, lying on the ground"}, nil
}

func (a *Amulet) Actions(*engine.Game) ([]engine.Action, error) {
	if a.worn {
		return []engine.Action{{Label: "take off", Handler: a.takeOff}}, nil
	}
	return []engine.Action{{Label: "pick up", Handler: a.pickUp}}, nil
}

func (a *Amulet) pickUp(g *engine.Game) error {
	g.Log("You picked up the amulet")
	a.worn = true
	return nil
}

func (a *Amulet) takeOff(g *engine.Game) error {
	g.Log("You took off the amulet")
	a.worn = false
	return nil
}
