package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tatianab/textr/internal/config"
	"github.com/tatianab/textr/internal/models"
	"github.com/tatianab/textr/internal/tui"
)

var errSimulationFailed = errors.New("simulation failed")

func newSimulateCmd(root *rootOptions) *cobra.Command {
	var (
		scriptPath  string
		dir         string
		clearScreen bool
		quiet       bool
	)
	cmd := &cobra.Command{
		Use:   "simulate [game]",
		Short: "Replay a walkthrough script without a terminal",
		Long: `Replays navigation intents from a YAML walkthrough and prints every frame.
Without --script or --dir the game's bundled walkthrough is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(root.configPath)
			if err != nil {
				return err
			}

			var scripts []*models.Script
			switch {
			case dir != "":
				paths, err := models.ListScripts(dir)
				if err != nil {
					return err
				}
				for _, p := range paths {
					s, err := models.LoadScript(p)
					if err != nil {
						return err
					}
					scripts = append(scripts, s)
				}
				if len(scripts) == 0 {
					return fmt.Errorf("no scripts in %s", dir)
				}
			case scriptPath != "":
				s, err := models.LoadScript(scriptPath)
				if err != nil {
					return err
				}
				scripts = append(scripts, s)
			default:
				name := defaultGame
				if len(args) == 1 {
					name = args[0]
				}
				entry, err := lookup(name)
				if err != nil {
					return err
				}
				s, err := entry.Walkthrough()
				if err != nil {
					return err
				}
				scripts = append(scripts, s)
			}

			frames := cmd.OutOrStdout()
			if quiet {
				frames = io.Discard
			}
			failed := 0
			for _, s := range scripts {
				if len(args) == 1 && dir == "" {
					s.Game = args[0]
				}
				outcome, err := simulate(cmd.Context(), cfg, s, frames, clearScreen)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", s.Game, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok   %s: %s\n", s.Game, outcome)
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d scripts", errSimulationFailed, failed, len(scripts))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&scriptPath, "script", "", "walkthrough YAML file")
	cmd.Flags().StringVar(&dir, "dir", "", "run every walkthrough in this directory")
	cmd.Flags().BoolVar(&clearScreen, "clear", false, "clear the screen between frames")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print outcomes")
	return cmd
}

func simulate(ctx context.Context, cfg *config.Config, s *models.Script, out io.Writer, clearScreen bool) (string, error) {
	entry, err := lookup(s.Game)
	if err != nil {
		return "", err
	}
	intents, err := s.Intents()
	if err != nil {
		return "", err
	}
	logger, closeLog, err := openLog(cfg.Debug.LogFile)
	if err != nil {
		return "", err
	}
	defer closeLog()

	g := entry.Build(gameOptions(cfg, tui.NewLineSink(out, clearScreen), logger)...)
	decorate(g, cfg)

	nav := models.NewScriptNavigator(intents)
	if err := g.Run(ctx, nav); err != nil {
		if errors.Is(err, models.ErrScriptExhausted) {
			return "", fmt.Errorf("game still running after %d steps", nav.Played())
		}
		return "", err
	}
	reason, _ := g.Over()
	if !s.Matches(reason) {
		return "", fmt.Errorf("ended with %q, expected %q", reason, s.Expect)
	}
	return reason, nil
}
