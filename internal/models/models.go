package models

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tatianab/textr/internal/engine"
)

// ErrScriptExhausted is returned when a walkthrough has no steps left but
// the game has not ended.
var ErrScriptExhausted = errors.New("script exhausted")

// Script is a recorded playthrough of one game.
type Script struct {
	Game        string   `yaml:"game"`
	Description string   `yaml:"description,omitempty"`
	Steps       []string `yaml:"steps"`
	Expect      string   `yaml:"expect,omitempty"` // substring of the ending
}

// Intents decodes the steps.
func (s Script) Intents() ([]engine.Intent, error) {
	intents := make([]engine.Intent, 0, len(s.Steps))
	for i, step := range s.Steps {
		intent, err := engine.ParseIntent(step)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		intents = append(intents, intent)
	}
	return intents, nil
}

// Matches reports whether ending satisfies the script's expectation. A
// script without expectation accepts any ending.
func (s Script) Matches(ending string) bool {
	return s.Expect == "" || strings.Contains(ending, s.Expect)
}

// ScriptNavigator replays a fixed list of intents.
type ScriptNavigator struct {
	intents []engine.Intent
	next    int
}

func NewScriptNavigator(intents []engine.Intent) *ScriptNavigator {
	return &ScriptNavigator{intents: intents}
}

func (n *ScriptNavigator) Next(ctx context.Context) (engine.Intent, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if n.next >= len(n.intents) {
		return 0, ErrScriptExhausted
	}
	intent := n.intents[n.next]
	n.next++
	return intent, nil
}

// Played returns how many intents have been served.
func (n *ScriptNavigator) Played() int {
	return n.next
}

// Recorder passes intents through from another navigator and remembers
// them, so a live session can be saved as a Script.
type Recorder struct {
	nav    engine.Navigator
	script Script
}

func NewRecorder(game string, nav engine.Navigator) *Recorder {
	return &Recorder{nav: nav, script: Script{Game: game}}
}

func (r *Recorder) Next(ctx context.Context) (engine.Intent, error) {
	intent, err := r.nav.Next(ctx)
	if err != nil {
		return 0, err
	}
	r.script.Steps = append(r.script.Steps, intent.String())
	return intent, nil
}

// Script returns the recording with ending as its expectation.
func (r *Recorder) Script(ending string) *Script {
	s := r.script
	s.Steps = append([]string(nil), r.script.Steps...)
	s.Expect = ending
	return &s
}
