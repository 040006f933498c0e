// Command simulate_game plays every bundled game with a random player and
// reports how the sessions ended. Winning sessions are printed as
// walkthrough scripts.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tatianab/textr/internal/config"
	"github.com/tatianab/textr/internal/engine"
	"github.com/tatianab/textr/internal/games"
	"github.com/tatianab/textr/internal/models"
	"github.com/tatianab/textr/internal/tui"
)

const (
	maxTurns = 40
	sessions = 50
)

var errOutOfTurns = errors.New("out of turns")

// randomPlayer mashes keys, favouring movement over activation.
type randomPlayer struct {
	rng   *rand.Rand
	turns int
}

func (p *randomPlayer) Next(ctx context.Context) (engine.Intent, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if p.turns >= maxTurns {
		return 0, errOutOfTurns
	}
	p.turns++
	switch n := p.rng.IntN(5); {
	case n < 2:
		return engine.IntentDown, nil
	case n < 3:
		return engine.IntentUp, nil
	default:
		return engine.IntentActivate, nil
	}
}

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig("")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var out io.Writer = io.Discard
	if os.Getenv("TEXTR_VERBOSE") != "" {
		out = os.Stdout
	}

	for i, entry := range games.All() {
		fmt.Printf("--- %s ---\n", entry.Title)
		var won, lost, unfinished int
		var best *models.Script

		for s := range sessions {
			player := &randomPlayer{rng: rand.New(rand.NewPCG(uint64(i), uint64(s)))}
			rec := models.NewRecorder(entry.Name, player)
			g := entry.Build(
				engine.WithSink(tui.NewLineSink(out, false)),
				engine.WithPanelWidth(cfg.UI.PanelWidth),
				engine.WithPerRow(cfg.UI.PerRow),
			)

			err := g.Run(ctx, rec)
			switch {
			case errors.Is(err, errOutOfTurns):
				unfinished++
				continue
			case err != nil:
				log.Fatalf("%s session %d: %v", entry.Name, s, err)
			}

			reason, _ := g.Over()
			script := rec.Script(reason)
			if strings.HasSuffix(reason, "You Won!") {
				won++
				if best == nil || len(script.Steps) < len(best.Steps) {
					best = script
				}
			} else {
				lost++
			}
		}

		fmt.Printf("Won: %d, Lost: %d, Unfinished: %d\n", won, lost, unfinished)
		if best != nil {
			data, err := yaml.Marshal(best)
			if err != nil {
				log.Fatalf("Failed to encode script: %v", err)
			}
			fmt.Printf("Shortest win:\n%s\n", data)
		}
	}
}
