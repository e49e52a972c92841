//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// ErrNoTerminal is returned by RunTerminal when stdout is not a terminal.
var ErrNoTerminal = errors.New("hal: stdout is not a terminal")

// TerminalConfig controls the terminal host runner.
type TerminalConfig struct {
	Display DisplayConfig
	Hz      int
	Frames  uint64
}

// RunTerminal renders the framebuffer into the terminal using half-block
// cells, two pixel rows per cell. Log lines are held until the screen is
// released.
func RunTerminal(ctx context.Context, newApp AppFactory, cfg TerminalConfig) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNoTerminal
	}
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}

	var logs bytes.Buffer
	h := newHost(cfg.Display, &logs)
	defer func() { os.Stdout.Write(logs.Bytes()) }()

	step, err := newApp(h)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	scratch := make([]byte, h.fb.width*h.fb.height*4)
	var frames uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ke, ok := terminalKey(ev); ok {
					h.kbd.push(ke)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-t.C:
			if err := step(); err != nil {
				if errors.Is(err, ErrStop) {
					return nil
				}
				return err
			}
			h.fb.snapshotRGBA(scratch)
			cols, rows := screen.Size()
			paintHalfBlocks(screen, scratch, h.fb.width, h.fb.height, cols, rows)
			screen.Show()

			frames++
			if cfg.Frames > 0 && frames >= cfg.Frames {
				return nil
			}
		}
	}
}

func terminalKey(ev *tcell.EventKey) (KeyEvent, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyEvent{Code: KeyEscape, Press: true}, true
	case tcell.KeyUp:
		return KeyEvent{Code: KeyUp, Press: true}, true
	case tcell.KeyDown:
		return KeyEvent{Code: KeyDown, Press: true}, true
	case tcell.KeyLeft:
		return KeyEvent{Code: KeyLeft, Press: true}, true
	case tcell.KeyRight:
		return KeyEvent{Code: KeyRight, Press: true}, true
	case tcell.KeyEnter:
		return KeyEvent{Code: KeyEnter, Press: true}, true
	case tcell.KeyRune:
		return KeyEvent{Press: true, Rune: ev.Rune()}, true
	}
	return KeyEvent{}, false
}

type cellSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

func paintHalfBlocks(s cellSetter, rgba []byte, width, height, cols, rows int) {
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top, bottom := sampleCell(rgba, width, height, cols, rows, cx, cy)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top[0]), int32(top[1]), int32(top[2]))).
				Background(tcell.NewRGBColor(int32(bottom[0]), int32(bottom[1]), int32(bottom[2])))
			s.SetContent(cx, cy, '▀', nil, style)
		}
	}
}

// sampleCell picks the nearest source pixels for the upper and lower half
// of terminal cell (cx, cy).
func sampleCell(rgba []byte, width, height, cols, rows, cx, cy int) (top, bottom [3]uint8) {
	if cols <= 0 || rows <= 0 || width <= 0 || height <= 0 {
		return
	}
	x := cx * width / cols
	y0 := (2 * cy) * height / (2 * rows)
	y1 := (2*cy + 1) * height / (2 * rows)
	return pixelAt(rgba, width, x, y0), pixelAt(rgba, width, x, y1)
}

func pixelAt(rgba []byte, width, x, y int) [3]uint8 {
	i := (y*width + x) * 4
	if i < 0 || i+2 >= len(rgba) {
		return [3]uint8{}
	}
	return [3]uint8{rgba[i], rgba[i+1], rgba[i+2]}
}
