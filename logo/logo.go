// Package logo builds the indexed "GoldFire" word bitmap that the fire
// engine can burn into its buffer.
//
// The bitmap is drawn once from a small stroke font, its letter interiors
// are flood filled with a marker value and the marker is then replaced by a
// vertical gradient of palette indices. The result is stored as a flat
// binary asset so the renderer only has to read it at startup.
package logo

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"goldfire/palette"
)

const (
	// Rows is the fixed logo height.
	Rows = 20
	// CellWidth is the column block reserved for each glyph.
	CellWidth = 18
	// Cells is the number of glyph blocks in the word.
	Cells = 8
	// Width of the generated word.
	Width = Cells * CellWidth

	// Background marks unfilled pixels. The engine and the overlay skip it.
	Background uint8 = 0
	// Stroke is the palette index of glyph outlines.
	Stroke uint8 = 128
	// ShadeBase is the palette index of the top interior row.
	ShadeBase uint8 = 52

	fillMarker uint8 = 1
)

var ErrBounds = errors.New("logo: stroke outside bitmap")

// StrokeRow lists the filled columns of one glyph row.
type StrokeRow struct {
	Row  int
	Cols []int
}

// Glyph is an ordered list of stroke rows.
type Glyph []StrokeRow

// Placement positions a glyph in the word. Cell selects the column block,
// DX and DY shift the glyph inside it. Shifted glyphs may overlap their
// neighbours.
type Placement struct {
	Glyph Glyph
	Cell  int
	DX    int
	DY    int
}

// Bitmap is a row-major grid of palette indices.
type Bitmap struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewBitmap returns a background-filled bitmap.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{Width: width, Height: height, Pix: make([]uint8, width*height)}
}

func (b *Bitmap) inside(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// At returns the index at (x, y), or Background outside the bitmap.
func (b *Bitmap) At(x, y int) uint8 {
	if !b.inside(x, y) {
		return Background
	}
	return b.Pix[y*b.Width+x]
}

// Set writes v at (x, y). Writes outside the bitmap are dropped.
func (b *Bitmap) Set(x, y int, v uint8) {
	if b.inside(x, y) {
		b.Pix[y*b.Width+x] = v
	}
}

// Row returns row y as a slice of Pix.
func (b *Bitmap) Row(y int) []uint8 {
	return b.Pix[y*b.Width : (y+1)*b.Width]
}

// Clone returns a deep copy.
func (b *Bitmap) Clone() *Bitmap {
	c := &Bitmap{Width: b.Width, Height: b.Height, Pix: make([]uint8, len(b.Pix))}
	copy(c.Pix, b.Pix)
	return c
}

// Image maps the bitmap through p. Background pixels stay transparent.
func (b *Bitmap) Image(p *palette.Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x, v := range b.Row(y) {
			if v == Background {
				continue
			}
			c := p[v]
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
		}
	}
	return img
}

// Rasterize draws every placement into a Rows x Width bitmap using the
// Stroke index.
func Rasterize(placements []Placement) (*Bitmap, error) {
	b := NewBitmap(Width, Rows)
	for i, p := range placements {
		x0 := p.Cell*CellWidth + p.DX
		for _, sr := range p.Glyph {
			y := p.DY + sr.Row
			for _, col := range sr.Cols {
				x := x0 + col
				if !b.inside(x, y) {
					return nil, fmt.Errorf("%w: glyph %d at (%d,%d)", ErrBounds, i, x, y)
				}
				b.Pix[y*b.Width+x] = Stroke
			}
		}
	}
	return b, nil
}

type point struct{ x, y int }

// FloodFill replaces the 4-connected region around (x, y) that shares the
// start pixel's value with c. Filling a region that already holds c leaves
// the bitmap unchanged.
func FloodFill(b *Bitmap, x, y int, c uint8) {
	if !b.inside(x, y) {
		return
	}
	start := b.Pix[y*b.Width+x]
	if start == c {
		return
	}

	stack := []point{{x, y}}
	b.Pix[y*b.Width+x] = c
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range [4]point{{p.x - 1, p.y}, {p.x + 1, p.y}, {p.x, p.y - 1}, {p.x, p.y + 1}} {
			if !b.inside(n.x, n.y) {
				continue
			}
			i := n.y*b.Width + n.x
			if b.Pix[i] != start {
				continue
			}
			b.Pix[i] = c
			stack = append(stack, n)
		}
	}
}

// Shade replaces target in row r with start+r, top to bottom. The index
// advances once per row whether or not the row held target.
func Shade(b *Bitmap, target, start uint8) {
	c := start
	for y := 0; y < b.Height; y++ {
		row := b.Row(y)
		for x, v := range row {
			if v == target {
				row[x] = c
			}
		}
		c++
	}
}

// Word is the GoldFire layout: glyphs in cell order with their offsets.
var Word = []Placement{
	{Glyph: GlyphG, Cell: 0},
	{Glyph: GlyphO, Cell: 1, DY: 5},
	{Glyph: GlyphL, Cell: 2},
	{Glyph: GlyphD, Cell: 3},
	{Glyph: GlyphF, Cell: 4},
	{Glyph: GlyphI, Cell: 5, DY: 2},
	{Glyph: GlyphR, Cell: 6, DX: -2, DY: 5},
	{Glyph: GlyphE, Cell: 7, DY: 4},
}

// wordFills are seed points inside each closed letter outline.
var wordFills = []point{
	{2, 1},
	{20, 7},
	{39, 1},
	{66, 1},
	{75, 1},
	{92, 3},
	{92, 8},
	{110, 6},
	{130, 6},
}

// Generate builds the shaded GoldFire word.
func Generate() *Bitmap {
	b, err := Rasterize(Word)
	if err != nil {
		// Word is static data that fits the bitmap.
		panic(err)
	}
	for _, p := range wordFills {
		FloodFill(b, p.x, p.y, fillMarker)
	}
	Shade(b, fillMarker, ShadeBase)
	return b
}
