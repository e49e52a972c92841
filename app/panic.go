package app

import (
	"errors"
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"goldfire/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// ErrPanic wraps a panic recovered from a frame step.
var ErrPanic = errors.New("app: frame panicked")

const (
	panicLineHeight = 10
	panicBaseline   = 8
)

// guard turns a panic inside step into ErrPanic. The panic value and stack
// are logged and printed over the framebuffer before the runner stops.
func (s *System) guard(step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			stack := strings.Split(string(debug.Stack()), "\n")
			s.logf("goldfire panic: frame=%d panic=%v", s.engine.Frames(), v)
			for _, line := range stack {
				if line != "" {
					s.log.WriteLineString(line)
				}
			}
			s.paintPanic(v, stack)
			err = fmt.Errorf("%w: %v", ErrPanic, v)
		}()
		return step()
	}
}

func (s *System) paintPanic(v any, stack []string) {
	if s.lock != nil {
		s.lock.Lock()
		defer s.lock.Unlock()
	}
	d := panicDisplay{fb: s.fb}
	clear(s.fb.Buffer())
	d.fill(color.RGBA{R: 0x40, A: 0xFF})

	font := &proggy.TinySZ8pt7b
	_, glyphW := tinyfont.LineWidth(font, "0")
	cols := 1
	if glyphW > 0 {
		cols = s.fb.Width() / int(glyphW)
	}

	lines := []string{
		"GoldFire panic:",
		fmt.Sprintf("frame: %d", s.engine.Frames()),
		fmt.Sprintf("panic: %v", v),
	}
	for _, line := range stack {
		if line != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}

	fg := color.RGBA{R: 0xFF, G: 0xEE, B: 0xAA, A: 0xFF}
	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+panicLineHeight > s.fb.Height() {
				_ = s.fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 0, int16(y+panicBaseline), chunk, fg)
			y += panicLineHeight
			line = rest
		}
	}
	_ = s.fb.Present()
}

// panicDisplay lets tinyfont draw straight into the HAL framebuffer.
type panicDisplay struct {
	fb hal.Framebuffer
}

func (d panicDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d panicDisplay) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	bpp := d.fb.Format().BytesPerPixel()
	buf := d.fb.Buffer()
	off := iy*d.fb.StrideBytes() + ix*bpp
	if bpp == 0 || off+bpp > len(buf) {
		return
	}
	buf[off] = c.R
	buf[off+1] = c.G
	buf[off+2] = c.B
	if bpp == 4 {
		buf[off+3] = 0xFF
	}
}

func (d panicDisplay) Display() error { return nil }

func (d panicDisplay) fill(c color.RGBA) {
	for y := 0; y < d.fb.Height(); y++ {
		for x := 0; x < d.fb.Width(); x++ {
			d.SetPixel(int16(x), int16(y), c)
		}
	}
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if utf8.RuneCountInString(s) <= n {
		return s, ""
	}
	i := 0
	for count := 0; i < len(s) && count < n; count++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i], s[i:]
}
