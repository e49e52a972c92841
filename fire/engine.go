// Package fire implements the palette-indexed fire automaton.
//
// Every frame two rows of weighted random heat are generated below the
// visible buffer. Each pixel from the first active row down is replaced by
// the average of the pixel below it, its left and right neighbours (wrapping
// at the edges) and the pixel two rows below. Rows are processed top-down so
// every read sees the previous frame and a single buffer is enough.
package fire

import (
	"errors"
	"fmt"

	"goldfire/control"
	"goldfire/logo"
)

var (
	ErrDimensions = errors.New("fire: invalid dimensions")
	ErrMirror     = errors.New("fire: mirror band overlaps the active rows")
	ErrLogoFit    = errors.New("fire: logo does not fit the active rows")
)

// Config fixes the buffer geometry and the engine variant.
type Config struct {
	Width  int
	Height int
	// FirstRow is the topmost row the automaton updates. Rows above it
	// stay dark, so they are skipped.
	FirstRow int

	// Exact averages all four neighbours instead of using the sum cache.
	Exact bool
	// Mirror copies the active band, reversed, into the top rows.
	Mirror bool
}

// Validate checks the geometry the neighbour lookups depend on.
func (c Config) Validate() error {
	if c.Width < 3 {
		return fmt.Errorf("%w: width %d < 3", ErrDimensions, c.Width)
	}
	if c.FirstRow < 0 {
		return fmt.Errorf("%w: first row %d", ErrDimensions, c.FirstRow)
	}
	if c.Height < c.FirstRow+3 {
		return fmt.Errorf("%w: height %d < first row %d + 3", ErrDimensions, c.Height, c.FirstRow)
	}
	if c.Mirror && c.Height-c.FirstRow > c.FirstRow {
		return fmt.Errorf("%w: %d active rows, %d free", ErrMirror, c.Height-c.FirstRow, c.FirstRow)
	}
	return nil
}

// Engine owns the indexed pixel buffer.
type Engine struct {
	cfg   Config
	pix   []uint8
	seeds []uint8
	src   SeedSource
	cache *SumCache

	logo         *logo.Bitmap
	logoX, logoY int

	frames uint64
}

// New validates cfg and returns an engine with a dark buffer.
func New(cfg Config, src SeedSource) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.New("fire: nil seed source")
	}
	return &Engine{
		cfg:   cfg,
		pix:   make([]uint8, cfg.Width*cfg.Height),
		seeds: make([]uint8, cfg.Width*2),
		src:   src,
		cache: sumCache,
	}, nil
}

func (e *Engine) Width() int             { return e.cfg.Width }
func (e *Engine) Height() int            { return e.cfg.Height }
func (e *Engine) FirstRow() int          { return e.cfg.FirstRow }
func (e *Engine) Config() Config         { return e.cfg }
func (e *Engine) Frames() uint64         { return e.frames }
func (e *Engine) Pixels() []uint8        { return e.pix }
func (e *Engine) Seeds() []uint8         { return e.seeds }
func (e *Engine) HasLogo() bool          { return e.logo != nil }
func (e *Engine) LogoOrigin() (x, y int) { return e.logoX, e.logoY }

// Reset darkens the buffer and the frame counter.
func (e *Engine) Reset() {
	clear(e.pix)
	e.frames = 0
}

// SetLogo attaches the word stamped by control.ShowWord. It is centred
// horizontally and vertically inside the active rows.
func (e *Engine) SetLogo(b *logo.Bitmap) error {
	active := e.cfg.Height - e.cfg.FirstRow
	if b == nil || b.Width > e.cfg.Width || b.Height > active {
		return ErrLogoFit
	}
	e.logo = b
	e.logoX = (e.cfg.Width - b.Width) / 2
	e.logoY = e.cfg.FirstRow + (active-b.Height)/2
	return nil
}

// Advance computes one frame. A pending word in st is stamped once and the
// flag cleared. st may be nil.
func (e *Engine) Advance(st *control.State) {
	e.src.Fill(e.seeds)

	w := e.cfg.Width
	for y := e.cfg.FirstRow; y < e.cfg.Height; y++ {
		e.spread(e.pix[y*w:(y+1)*w], e.row(y+1), e.row(y+2))
	}

	if st != nil && st.TakeWord() && e.logo != nil {
		e.stamp()
	}
	if e.cfg.Mirror {
		e.mirror()
	}
	e.frames++
}

// row returns buffer row y; rows Height and Height+1 are the seed rows.
func (e *Engine) row(y int) []uint8 {
	w := e.cfg.Width
	if y < e.cfg.Height {
		return e.pix[y*w : (y+1)*w]
	}
	y -= e.cfg.Height
	return e.seeds[y*w : (y+1)*w]
}

func (e *Engine) spread(out, below, below2 []uint8) {
	last := len(out) - 1
	if e.cfg.Exact {
		out[0] = ExactAverage(below[last], below[1], below[0], below2[0])
		for x := 1; x < last; x++ {
			out[x] = ExactAverage(below[x-1], below[x+1], below[x], below2[x])
		}
		out[last] = ExactAverage(below[last-1], below[0], below[last], below2[last])
		return
	}

	c := e.cache
	out[0] = c[below[last]][below[1]] + c[below[0]][below2[0]]
	for x := 1; x < last; x++ {
		out[x] = c[below[x-1]][below[x+1]] + c[below[x]][below2[x]]
	}
	out[last] = c[below[last-1]][below[0]] + c[below[last]][below2[last]]
}

func (e *Engine) stamp() {
	w := e.cfg.Width
	for y := 0; y < e.logo.Height; y++ {
		dst := e.pix[(e.logoY+y)*w+e.logoX:]
		for x, v := range e.logo.Row(y) {
			if v != logo.Background {
				dst[x] = v
			}
		}
	}
}

func (e *Engine) mirror() {
	w := e.cfg.Width
	n := (e.cfg.Height - e.cfg.FirstRow) * w
	src := e.pix[e.cfg.FirstRow*w:]
	for i := 0; i < n; i++ {
		e.pix[i] = src[n-1-i]
	}
}
