// Package cli wires the textr command tree.
package cli

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tatianab/textr/internal/config"
	"github.com/tatianab/textr/internal/engine"
	"github.com/tatianab/textr/internal/tui"
)

type rootOptions struct {
	configPath string
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "textr",
		Short: "Play small menu-driven text adventures",
		Long: `textr renders every object of a game as a bordered panel with its own
actions. Move with the arrow keys (or j/k) and press enter to act.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/textr/config.toml)")

	cmd.AddCommand(
		newPlayCmd(opts),
		newSimulateCmd(opts),
		newListCmd(),
		newVersionCmd(),
	)
	return cmd
}

// openLog routes engine traces to path through bubbletea's log file, so
// they never land on the game screen. The standard logger is left alone.
func openLog(path string) (*log.Logger, func() error, error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() error { return nil }, nil
	}
	logger := log.New(io.Discard, "", log.LstdFlags)
	f, err := tea.LogToFileWith(path, "textr", logger)
	if err != nil {
		return nil, nil, err
	}
	return logger, f.Close, nil
}

func gameOptions(cfg *config.Config, sink engine.Sink, logger *log.Logger) []engine.Option {
	return []engine.Option{
		engine.WithSink(sink),
		engine.WithLogger(logger),
		engine.WithPanelWidth(cfg.UI.PanelWidth),
		engine.WithPerRow(cfg.UI.PerRow),
	}
}

func decorate(g *engine.Game, cfg *config.Config) {
	if cfg.UI.Color != "" {
		g.RegisterPrintModifiers(tui.Colorizer(cfg.UI.Color))
	}
}
