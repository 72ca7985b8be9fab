package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/atomicstack/tmux-context-menu/internal/app"
	"github.com/atomicstack/tmux-context-menu/internal/config"
	"github.com/atomicstack/tmux-context-menu/internal/logging"
	"github.com/atomicstack/tmux-context-menu/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		if errors.Is(err, config.ErrMissingMenu) {
			fmt.Fprintln(os.Stderr, "usage: tmux-context-menu -menu FILE [-x COL -y ROW]")
		}
		return 2
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCode(err)
	}
	return 0
}

// exitCode passes a failed action command's status through; other runtime
// errors exit 1.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg, terminalSize))
}

// startupTracePayload records the flags, the menu file and the viewport the
// menu will be placed against.
func startupTracePayload(cfg config.Config, probe sizeProbe) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"menu":     cfg.App.MenuPath,
		"oneShot":  cfg.App.OneShot(),
		"viewport": resolveViewport(cfg.App, probe),
	}
	if cfg.App.OneShot() {
		payload["origin"] = map[string]int{"x": cfg.App.X, "y": cfg.App.Y}
	}
	return payload
}

// sizeProbe reports the terminal size and which descriptor it came from.
type sizeProbe func() (source string, width, height int, ok bool)

type viewportDetails struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Source string `json:"source"`
	// Terminal names the descriptor the terminal size was read from.
	Terminal string `json:"terminal,omitempty"`
	// OriginInside is set for one-shot menus once the viewport is known.
	OriginInside *bool `json:"origin_inside,omitempty"`
}

// resolveViewport combines -width/-height with the terminal size. Source is
// "flags", "terminal", "mixed" or "unknown".
func resolveViewport(cfg app.Config, probe sizeProbe) viewportDetails {
	vp := viewportDetails{Width: cfg.Width, Height: cfg.Height}
	fromTerm := false
	if cfg.Width <= 0 || cfg.Height <= 0 {
		if source, w, h, ok := probe(); ok {
			if vp.Width <= 0 {
				vp.Width = w
			}
			if vp.Height <= 0 {
				vp.Height = h
			}
			fromTerm = true
			vp.Terminal = source
		}
	}
	switch {
	case vp.Width <= 0 || vp.Height <= 0:
		vp.Source = "unknown"
	case !fromTerm:
		vp.Source = "flags"
	case cfg.Width > 0 || cfg.Height > 0:
		vp.Source = "mixed"
	default:
		vp.Source = "terminal"
	}
	if cfg.OneShot() && vp.Source != "unknown" {
		inside := cfg.X < vp.Width && cfg.Y < vp.Height
		vp.OriginInside = &inside
	}
	return vp
}

// terminalSize asks stdout, then stdin, for the terminal size.
func terminalSize() (string, int, int, bool) {
	for _, probe := range []struct {
		name string
		fd   uintptr
	}{
		{"stdout", os.Stdout.Fd()},
		{"stdin", os.Stdin.Fd()},
	} {
		fd := int(probe.fd)
		if !term.IsTerminal(fd) {
			continue
		}
		if w, h, err := term.GetSize(fd); err == nil {
			return probe.name, w, h, true
		}
	}
	return "", 0, 0, false
}
