package main

import (
	"errors"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/atomicstack/tmux-context-menu/internal/app"
	"github.com/atomicstack/tmux-context-menu/internal/config"
)

func fixedProbe(w, h int) sizeProbe {
	return func() (string, int, int, bool) { return "stdout", w, h, true }
}

func noTerminal() (string, int, int, bool) { return "", 0, 0, false }

func TestResolveViewport(t *testing.T) {
	cases := []struct {
		name   string
		cfg    app.Config
		probe  sizeProbe
		w, h   int
		source string
	}{
		{"flags only", app.Config{Width: 60, Height: 20}, noTerminal, 60, 20, "flags"},
		{"flags win over terminal", app.Config{Width: 60, Height: 20}, fixedProbe(100, 40), 60, 20, "flags"},
		{"terminal", app.Config{}, fixedProbe(100, 40), 100, 40, "terminal"},
		{"mixed", app.Config{Width: 50}, fixedProbe(100, 40), 50, 40, "mixed"},
		{"unknown", app.Config{}, noTerminal, 0, 0, "unknown"},
	}
	for _, tc := range cases {
		tc.cfg.X, tc.cfg.Y = -1, -1
		vp := resolveViewport(tc.cfg, tc.probe)
		if vp.Width != tc.w || vp.Height != tc.h {
			t.Fatalf("%s: expected %dx%d, got %dx%d", tc.name, tc.w, tc.h, vp.Width, vp.Height)
		}
		if vp.Source != tc.source {
			t.Fatalf("%s: expected source %q, got %q", tc.name, tc.source, vp.Source)
		}
		if tc.source == "terminal" && vp.Terminal != "stdout" {
			t.Fatalf("%s: expected stdout as the size source, got %q", tc.name, vp.Terminal)
		}
		if vp.OriginInside != nil {
			t.Fatalf("%s: expected no origin check without -x/-y", tc.name)
		}
	}
}

func TestResolveViewportChecksOneShotOrigin(t *testing.T) {
	vp := resolveViewport(app.Config{X: 90, Y: 5}, fixedProbe(80, 24))
	if vp.OriginInside == nil || *vp.OriginInside {
		t.Fatalf("expected origin outside an 80x24 terminal to be flagged")
	}
	vp = resolveViewport(app.Config{X: 10, Y: 5}, fixedProbe(80, 24))
	if vp.OriginInside == nil || !*vp.OriginInside {
		t.Fatalf("expected origin inside the terminal")
	}
	vp = resolveViewport(app.Config{X: 10, Y: 5}, noTerminal)
	if vp.OriginInside != nil {
		t.Fatalf("expected no origin check with an unknown viewport")
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			MenuPath:        "menu.yaml",
			X:               10,
			Y:               4,
			Width:           80,
			Height:          24,
			SafeZoneTimeout: 300 * time.Millisecond,
			Plain:           true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"menu":  "menu.yaml",
			"x":     "10",
			"y":     "4",
			"plain": "true",
		},
		Args: []string{"-menu", "menu.yaml", "-x", "10", "-y", "4"},
	}

	payload := startupTracePayload(cfg, noTerminal)
	if payload["oneShot"] != true {
		t.Fatalf("expected one-shot flag in payload, got %v", payload["oneShot"])
	}

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["menu"] != "menu.yaml" {
		t.Fatalf("expected menu flag %q, got %v", "menu.yaml", flagsValue["menu"])
	}
	if flagsValue["x"] != "10" || flagsValue["y"] != "4" {
		t.Fatalf("expected origin flags, got %v/%v", flagsValue["x"], flagsValue["y"])
	}
	if flagsValue["plain"] != "true" {
		t.Fatalf("expected plain flag true, got %v", flagsValue["plain"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if payload["menu"] != "menu.yaml" {
		t.Fatalf("expected menu path in payload, got %v", payload["menu"])
	}
	origin, ok := payload["origin"].(map[string]int)
	if !ok || origin["x"] != 10 || origin["y"] != 4 {
		t.Fatalf("expected origin 10,4 in payload, got %v", payload["origin"])
	}
	vp, ok := payload["viewport"].(viewportDetails)
	if !ok {
		t.Fatalf("expected viewport details in payload")
	}
	if vp.Source != "flags" || vp.OriginInside == nil || !*vp.OriginInside {
		t.Fatalf("expected flag viewport containing the origin, got %+v", vp)
	}
}

func TestExitCodePassesCommandStatus(t *testing.T) {
	err := exec.Command("sh", "-c", "exit 4").Run()
	if got := exitCode(fmt.Errorf("run %q: %w", "Tools/Fail", err)); got != 4 {
		t.Fatalf("expected exit code 4, got %d", got)
	}
	if got := exitCode(errors.New("boom")); got != 1 {
		t.Fatalf("expected exit code 1 for plain errors, got %d", got)
	}
}
