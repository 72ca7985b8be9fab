package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/tmux-context-menu/internal/app"
	"github.com/atomicstack/tmux-context-menu/internal/geom"
	"github.com/atomicstack/tmux-context-menu/internal/ui/state"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envMenu            = "TMUX_CONTEXT_MENU_FILE"
	envX               = "TMUX_CONTEXT_MENU_X"
	envY               = "TMUX_CONTEXT_MENU_Y"
	envWidth           = "TMUX_CONTEXT_MENU_WIDTH"
	envHeight          = "TMUX_CONTEXT_MENU_HEIGHT"
	envSafeZoneTimeout = "TMUX_CONTEXT_MENU_SAFE_ZONE_TIMEOUT"
	envHoldThreshold   = "TMUX_CONTEXT_MENU_HOLD_THRESHOLD"
	envPlain           = "TMUX_CONTEXT_MENU_PLAIN"
	envWatch           = "TMUX_CONTEXT_MENU_WATCH"
	envTrace           = "TMUX_CONTEXT_MENU_TRACE"
	envLogFile         = "TMUX_CONTEXT_MENU_LOG_FILE"
)

// ErrMissingMenu is returned by Validate when no definition file is given.
var ErrMissingMenu = errors.New("a menu definition file is required (-menu)")

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("tmux-context-menu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	menuPath := fs.String("menu", envOrDefault(env, envMenu, ""), "path to the YAML menu definition")
	x := fs.Int("x", envOrInt(env, envX, -1), "open the menu at this column at once (requires -y)")
	y := fs.Int("y", envOrInt(env, envY, -1), "open the menu at this row at once (requires -x)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	safeZone := fs.Duration("safe-zone-timeout", envOrDuration(env, envSafeZoneTimeout, geom.DefaultSafeZoneTimeout), "how long a submenu safe zone stays active")
	hold := fs.Duration("hold-threshold", envOrDuration(env, envHoldThreshold, state.DefaultHoldThreshold), "press duration after which releasing outside the menu closes it")
	plain := fs.Bool("plain", envOrBool(env, envPlain, false), "draw without colour using ASCII glyphs")
	watch := fs.Bool("watch", envOrBool(env, envWatch, true), "reload the menu definition when the file changes")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			MenuPath:        *menuPath,
			X:               *x,
			Y:               *y,
			Width:           *width,
			Height:          *height,
			SafeZoneTimeout: *safeZone,
			HoldThreshold:   *hold,
			Plain:           *plain,
			Watch:           *watch,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"menu":            *menuPath,
			"x":               strconv.Itoa(*x),
			"y":               strconv.Itoa(*y),
			"width":           strconv.Itoa(*width),
			"height":          strconv.Itoa(*height),
			"safeZoneTimeout": safeZone.String(),
			"holdThreshold":   hold.String(),
			"plain":           strconv.FormatBool(*plain),
			"watch":           strconv.FormatBool(*watch),
			"trace":           strconv.FormatBool(*trace),
			"logFile":         *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	a := cfg.App
	if strings.TrimSpace(a.MenuPath) == "" {
		return ErrMissingMenu
	}
	if a.X < -1 || a.Y < -1 {
		return fmt.Errorf("-x and -y must be >= 0 (got x=%d y=%d)", a.X, a.Y)
	}
	xSet, ySet := a.X >= 0, a.Y >= 0
	if xSet != ySet {
		return fmt.Errorf("-x and -y must be given together (got x=%d y=%d)", a.X, a.Y)
	}
	if a.SafeZoneTimeout <= 0 {
		return fmt.Errorf("safe-zone-timeout must be positive (got %s)", a.SafeZoneTimeout)
	}
	if a.HoldThreshold <= 0 {
		return fmt.Errorf("hold-threshold must be positive (got %s)", a.HoldThreshold)
	}
	return nil
}
