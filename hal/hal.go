package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrStop is returned by a frame step to end the runner cleanly.
var ErrStop = errors.New("hal: stop requested")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB888 is 3 bytes per pixel: r, g, b.
	PixelFormatRGB888 PixelFormat = iota + 1
	// PixelFormatRGBA8888 is 4 bytes per pixel: r, g, b, a.
	PixelFormatRGBA8888
)

// BytesPerPixel returns the size of one pixel, or 0 for unknown formats.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatRGB888:
		return 3
	case PixelFormatRGBA8888:
		return 4
	}
	return 0
}

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL is the only contact point between the effect and the host.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}

// DisplayConfig sizes the host framebuffer and window.
type DisplayConfig struct {
	Width  int
	Height int
	Format PixelFormat
	// Scale multiplies the window size. The framebuffer is unscaled.
	Scale int
	Title string
}

func (c DisplayConfig) withDefaults() DisplayConfig {
	if c.Width <= 0 {
		c.Width = 320
	}
	if c.Height <= 0 {
		c.Height = 200
	}
	if c.Format.BytesPerPixel() == 0 {
		c.Format = PixelFormatRGB888
	}
	if c.Scale <= 0 {
		c.Scale = 2
	}
	if c.Title == "" {
		c.Title = "GoldFire"
	}
	return c
}

// AppFactory builds the per-frame step function once the HAL exists.
type AppFactory func(h HAL) (step func() error, err error)
