package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/atomicstack/tmux-context-menu/internal/backend"
	"github.com/atomicstack/tmux-context-menu/internal/geom"
	"github.com/atomicstack/tmux-context-menu/internal/logging/events"
	"github.com/atomicstack/tmux-context-menu/internal/menu"
	"github.com/atomicstack/tmux-context-menu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

const watchInterval = time.Second

// Config describes user-provided application options.
type Config struct {
	MenuPath        string
	X               int
	Y               int
	Width           int
	Height          int
	SafeZoneTimeout time.Duration
	HoldThreshold   time.Duration
	Plain           bool
	Watch           bool
}

// OneShot reports whether the menu opens at a fixed point and the program
// exits as soon as it closes.
func (c Config) OneShot() bool {
	return c.X >= 0 && c.Y >= 0
}

// Run bootstraps and executes the Bubble Tea program, then acts on the
// activated item.
func Run(cfg Config) error {
	def, err := menu.LoadDefinition(cfg.MenuPath)
	if err != nil {
		events.Definition.Error(cfg.MenuPath, err)
		return err
	}
	events.Definition.Load(cfg.MenuPath, len(def.Items))

	opts := ui.Options{
		Definition:      def,
		MenuPath:        cfg.MenuPath,
		Width:           cfg.Width,
		Height:          cfg.Height,
		SafeZoneTimeout: cfg.SafeZoneTimeout,
		HoldThreshold:   cfg.HoldThreshold,
		Plain:           cfg.Plain,
	}
	if cfg.OneShot() {
		opts.Origin = &geom.Point{X: cfg.X, Y: cfg.Y}
	}
	if cfg.Watch {
		watcher := backend.NewWatcher(cfg.MenuPath, watchInterval)
		defer watcher.Stop()
		opts.Watcher = watcher
	}

	model := ui.NewModel(opts)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return err
	}
	sel, ok := model.Selection()
	return finish(sel, ok, os.Stdout, os.Stderr)
}

// finish runs the selection's command, or prints its output when it has
// none.
func finish(sel menu.Selection, ok bool, stdout, stderr io.Writer) error {
	if !ok {
		events.App.Exit("", "")
		return nil
	}
	events.App.Exit(sel.Path, sel.Command)
	if sel.Command == "" {
		_, err := fmt.Fprintln(stdout, sel.Output())
		return err
	}
	cmd := exec.Command("sh", "-c", sel.Command)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = append(os.Environ(),
		"TMUX_CONTEXT_MENU_PATH="+sel.Path,
		"TMUX_CONTEXT_MENU_VALUE="+sel.Value,
	)
	if err := cmd.Run(); err != nil {
		err = fmt.Errorf("run %q: %w", sel.Path, err)
		events.Action.Error(err)
		return err
	}
	events.Action.Success(sel.Path)
	return nil
}
