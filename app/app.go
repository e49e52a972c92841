// Package app wires the palette store, the logo asset, the fire engine and
// the compositor to a HAL and runs them one frame per Step.
package app

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"sync"
	"time"

	"goldfire/compose"
	"goldfire/control"
	"goldfire/fire"
	"goldfire/hal"
	"goldfire/logo"
	"goldfire/palette"
)

// ErrFramebuffer is returned when the HAL display does not match Config.
var ErrFramebuffer = errors.New("app: framebuffer does not match config")

// DefaultLogo is the asset written by cmd/mklogo.
const DefaultLogo = "data/goldfire.bin"

// Config selects assets and engine options.
type Config struct {
	Width    int
	Height   int
	FirstRow int

	PaletteDir     string
	DefaultPalette string
	Gain           int

	// LogoPath names the logo asset. Empty uses the built-in word.
	LogoPath string

	Seed   uint64
	Policy string
	Exact  bool
	Mirror bool

	Overlay bool
	Caption bool
}

// DefaultConfig returns the classic 320x200 setup.
func DefaultConfig() Config {
	return Config{
		Width:          320,
		Height:         200,
		FirstRow:       145,
		PaletteDir:     "palettes",
		DefaultPalette: palette.DefaultFile,
		Gain:           1,
		LogoPath:       DefaultLogo,
		Policy:         fire.Classic.Name,
	}
}

// System owns the per-frame state.
type System struct {
	cfg     Config
	log     hal.Logger
	fb      hal.Framebuffer
	lock    sync.Locker
	kbd     hal.Keyboard
	store   *palette.Store
	engine  *fire.Engine
	comp    *compose.Compositor
	state   *control.State
	started time.Time
	now     func() time.Time
}

// New loads the assets and builds the engine against h's framebuffer.
// Palette problems are logged and recovered; a missing logo file is fatal.
func New(h hal.HAL, cfg Config) (*System, error) {
	s := &System{cfg: cfg, log: h.Logger(), now: time.Now}

	if d := h.Display(); d != nil {
		s.fb = d.Framebuffer()
	}
	if s.fb == nil || s.fb.Width() != cfg.Width || s.fb.Height() != cfg.Height {
		return nil, ErrFramebuffer
	}
	channels := s.fb.Format().BytesPerPixel()
	if l, ok := s.fb.(sync.Locker); ok {
		s.lock = l
	}
	if in := h.Input(); in != nil {
		s.kbd = in.Keyboard()
	}

	store, err := palette.Load(cfg.PaletteDir, palette.Options{Default: cfg.DefaultPalette, Gain: cfg.Gain})
	if err != nil {
		s.logErr(err)
	}
	s.store = store
	s.logf("palette: %d loaded (%s)", store.Len(), store.Entry(0).Name)

	policy, err := fire.ParsePolicy(cfg.Policy)
	if err != nil {
		return nil, err
	}
	s.engine, err = fire.New(fire.Config{
		Width:    cfg.Width,
		Height:   cfg.Height,
		FirstRow: cfg.FirstRow,
		Exact:    cfg.Exact,
		Mirror:   cfg.Mirror,
	}, fire.NewWeightedSeeds(policy, cfg.Seed))
	if err != nil {
		return nil, err
	}
	s.comp, err = compose.New(cfg.Width, cfg.Height, channels)
	if err != nil {
		return nil, err
	}

	word, err := loadLogo(cfg.LogoPath)
	if err != nil {
		return nil, err
	}
	if err := s.engine.SetLogo(word); err != nil {
		s.logf("fire: word disabled: %v", err)
	}
	x, y := overlayOrigin(cfg, word)
	if err := s.comp.SetLogo(word, x, y); err != nil {
		s.logf("compose: overlay disabled: %v", err)
	}

	s.state = control.New(store.Len(), cfg.Seed)
	s.state.Overlay = cfg.Overlay
	s.state.Caption = cfg.Caption

	s.logf("fire: %dx%d first row %d, policy %s, exact=%t mirror=%t",
		cfg.Width, cfg.Height, cfg.FirstRow, policy.Name, cfg.Exact, cfg.Mirror)
	s.started = s.now()
	return s, nil
}

// Factory adapts New to the HAL runners. The built System is stored in *out
// when out is non-nil.
func Factory(cfg Config, out **System) hal.AppFactory {
	return func(h hal.HAL) (func() error, error) {
		s, err := New(h, cfg)
		if err != nil {
			return nil, err
		}
		if out != nil {
			*out = s
		}
		return s.guard(s.Step), nil
	}
}

func loadLogo(path string) (*logo.Bitmap, error) {
	if path == "" {
		return logo.Generate(), nil
	}
	b, err := logo.Load(path)
	if err != nil {
		return nil, fmt.Errorf("app: logo: %w", err)
	}
	return b, nil
}

// overlayOrigin centres the static overlay in the dark rows above the fire.
func overlayOrigin(cfg Config, b *logo.Bitmap) (x, y int) {
	x = (cfg.Width - b.Width) / 2
	y = (cfg.FirstRow - b.Height) / 2
	if y < 0 {
		y = 0
	}
	return x, y
}

// Step handles queued keys, advances the fire and composes into the
// framebuffer. It returns hal.ErrStop once quit was requested.
func (s *System) Step() error {
	s.drainKeys()
	if s.state.Quit {
		return hal.ErrStop
	}

	s.engine.Advance(s.state)

	entry := s.store.Entry(s.state.PaletteIndex)
	if s.lock != nil {
		s.lock.Lock()
	}
	s.comp.Compose(s.fb.Buffer(), s.engine.Pixels(), entry, s.state)
	if s.lock != nil {
		s.lock.Unlock()
	}
	if err := s.fb.Present(); err != nil {
		return err
	}

	if s.state.Changed {
		mode := "color"
		if s.state.Grey {
			mode = "grey"
		}
		s.logf("palette: %d/%d %s %s", s.state.PaletteIndex+1, s.state.Palettes, entry.Name, mode)
	}
	s.state.EndFrame()
	return nil
}

func (s *System) drainKeys() {
	if s.kbd == nil {
		return
	}
	ch := s.kbd.Events()
	for {
		select {
		case ev := <-ch:
			cmd := commandForKey(ev)
			if cmd == control.ShowWord && !s.engine.HasLogo() {
				s.logf("fire: no word fits the active rows")
				continue
			}
			if cmd != control.None {
				s.state.Apply(cmd)
			}
		default:
			return
		}
	}
}

func commandForKey(ev hal.KeyEvent) control.Command {
	if !ev.Press {
		return control.None
	}
	switch ev.Code {
	case hal.KeyEscape:
		return control.Quit
	case hal.KeyRight, hal.KeyEnter:
		return control.PaletteNext
	}
	if ev.Rune != 0 {
		return control.CommandForRune(ev.Rune)
	}
	return control.None
}

// State exposes the render state.
func (s *System) State() *control.State { return s.state }

// Engine exposes the fire engine.
func (s *System) Engine() *fire.Engine { return s.engine }

// Report logs the frame count, elapsed time and average rate.
func (s *System) Report() {
	frames := s.engine.Frames()
	secs := s.now().Sub(s.started).Seconds()
	fps := 0.0
	if secs > 0 {
		fps = float64(frames) / secs
	}
	s.logf("fire: %d frames in %.2fs (%.1f fps)", frames, secs, fps)
}

// Snapshot writes the last composed frame as a PNG, scaled by factor.
func (s *System) Snapshot(w io.Writer, factor int) error {
	if s.lock != nil {
		s.lock.Lock()
	}
	img := compose.Image(s.fb.Buffer(), s.cfg.Width, s.cfg.Height, s.comp.Channels())
	if s.lock != nil {
		s.lock.Unlock()
	}
	if factor > 1 {
		img = compose.Scale(img, factor)
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("app: snapshot: %w", err)
	}
	return nil
}

func (s *System) logf(format string, args ...any) {
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}

// logErr writes each joined error on its own line.
func (s *System) logErr(err error) {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range j.Unwrap() {
			s.logErr(e)
		}
		return
	}
	s.log.WriteLineString(err.Error())
}
