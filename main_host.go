//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"goldfire/app"
	"goldfire/fire"
	"goldfire/hal"
	"goldfire/internal/buildinfo"
)

func main() {
	cfg := app.DefaultConfig()
	var (
		headless bool
		terminal bool
		hz       int
		frames   uint64
		rgba     bool
		scale    int
		snapshot string
		version  bool
	)
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.BoolVar(&terminal, "term", false, "Render into the terminal with half-block cells.")
	flag.IntVar(&hz, "hz", 60, "Frame rate for the headless and terminal runners.")
	flag.Uint64Var(&frames, "frames", 0, "Stop after N frames in headless/terminal mode (0 = run until quit).")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Framebuffer width.")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Framebuffer height.")
	flag.IntVar(&cfg.FirstRow, "first-row", cfg.FirstRow, "First row the fire is computed on.")
	flag.StringVar(&cfg.PaletteDir, "palettes", cfg.PaletteDir, "Directory of 768-byte palette files.")
	flag.StringVar(&cfg.DefaultPalette, "default-palette", cfg.DefaultPalette, "Palette file shown first.")
	flag.IntVar(&cfg.Gain, "gain", cfg.Gain, "Multiply palette channels on load, clamped to 255 (< 2 = off).")
	flag.StringVar(&cfg.LogoPath, "logo", cfg.LogoPath, "Logo asset written by mklogo (empty = built-in word).")
	flag.Uint64Var(&cfg.Seed, "seed", 1, "Random seed for the seed rows and palette picks.")
	flag.StringVar(&cfg.Policy, "policy", cfg.Policy, "Seed policy: "+strings.Join(fire.PolicyNames(), "|")+".")
	flag.BoolVar(&cfg.Exact, "exact", false, "Average exactly instead of through the sum cache.")
	flag.BoolVar(&cfg.Mirror, "mirror", false, "Mirror the fire into the top rows.")
	flag.BoolVar(&rgba, "rgba", false, "Use a 4-byte RGBA framebuffer.")
	flag.BoolVar(&cfg.Overlay, "overlay", false, "Start with the static logo overlay on.")
	flag.BoolVar(&cfg.Caption, "caption", false, "Start with the palette caption on.")
	flag.IntVar(&scale, "scale", 2, "Window and snapshot scale factor.")
	flag.StringVar(&snapshot, "snapshot", "", "Write the last frame as PNG on exit.")
	flag.BoolVar(&version, "version", false, "Print the build version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	display := hal.DisplayConfig{
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: hal.PixelFormatRGB888,
		Scale:  scale,
		Title:  "GoldFire",
	}
	if rgba {
		display.Format = hal.PixelFormatRGBA8888
	}

	var sys *app.System
	newApp := app.Factory(cfg, &sys)

	var err error
	switch {
	case headless:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{Display: display, Hz: hz, Frames: frames})
	case terminal:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunTerminal(ctx, newApp, hal.TerminalConfig{Display: display, Hz: hz, Frames: frames})
	default:
		err = hal.RunWindow(newApp, display)
	}
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	if sys != nil {
		sys.Report()
		if snapshot != "" {
			if serr := writeSnapshot(sys, snapshot, scale); serr != nil {
				err = errors.Join(err, serr)
			}
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func writeSnapshot(sys *app.System, path string, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := sys.Snapshot(f, scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
