package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/cobra"

	"github.com/tatianab/textr/internal/config"
	"github.com/tatianab/textr/internal/engine"
	"github.com/tatianab/textr/internal/games"
	"github.com/tatianab/textr/internal/models"
	"github.com/tatianab/textr/internal/tui"
)

const defaultGame = "mimic"

func newPlayCmd(root *rootOptions) *cobra.Command {
	var record string
	cmd := &cobra.Command{
		Use:   "play [game]",
		Short: "Play a bundled game in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := defaultGame
			if len(args) == 1 {
				name = args[0]
			}
			entry, err := lookup(name)
			if err != nil {
				return err
			}

			cfg, err := config.LoadConfig(root.configPath)
			if err != nil {
				return err
			}
			logger, closeLog, err := openLog(cfg.Debug.LogFile)
			if err != nil {
				return err
			}
			defer closeLog()

			term := tui.Start(tui.WithAltScreen(cfg.UI.AltScreen))
			g := entry.Build(gameOptions(cfg, term, logger)...)
			decorate(g, cfg)

			var nav engine.Navigator = term
			var rec *models.Recorder
			if record != "" {
				rec = models.NewRecorder(entry.Name, term)
				nav = rec
			}

			runErr := g.Run(cmd.Context(), nav)
			closeErr := term.Close()
			if errors.Is(runErr, tui.ErrQuit) {
				return nil
			}
			if runErr != nil {
				return runErr
			}
			if closeErr != nil {
				return closeErr
			}

			if rec != nil {
				reason, _ := g.Over()
				if err := rec.Script(reason).Save(record); err != nil {
					return fmt.Errorf("save recording: %w", err)
				}
				logger.Printf("recording saved to %s", record)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&record, "record", "", "save the session as a walkthrough script")
	return cmd
}

// Names this close to a game are offered as a suggestion.
const maxSuggestDistance = 2

func lookup(name string) (games.Entry, error) {
	entry, ok := games.Lookup(name)
	if ok {
		return entry, nil
	}
	if guess := suggest(name); guess != "" {
		return games.Entry{}, fmt.Errorf("unknown game %q, did you mean %q?", name, guess)
	}
	return games.Entry{}, fmt.Errorf("unknown game %q (see 'textr list')", name)
}

func suggest(name string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, e := range games.All() {
		if d := levenshtein.ComputeDistance(strings.ToLower(name), e.Name); d < bestDist {
			best, bestDist = e.Name, d
		}
	}
	return best
}
