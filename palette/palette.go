package palette

import (
	"errors"
	"fmt"
)

const (
	// Entries is the number of colours in every palette.
	Entries = 256
	// FileSize is the exact size of a palette file: 256 R,G,B triplets, no header.
	FileSize = Entries * 3
)

var (
	ErrSize      = errors.New("palette: file is not 768 bytes")
	ErrNoDefault = errors.New("palette: default palette not found")
)

// RGB is one palette colour.
type RGB struct {
	R, G, B uint8
}

// Palette maps an index to its colour.
type Palette [Entries]RGB

// BlackSet marks indices whose colour sums to zero. The compositor skips
// them because the output buffer is already cleared to black.
type BlackSet [Entries]bool

// Contains reports whether index i is black.
func (b *BlackSet) Contains(i uint8) bool { return b[i] }

// Len returns the number of black indices.
func (b *BlackSet) Len() int {
	n := 0
	for _, v := range b {
		if v {
			n++
		}
	}
	return n
}

// Entry is a loaded palette together with its derived tables.
type Entry struct {
	Name  string
	Color Palette
	Grey  Palette
	Black BlackSet
}

// Table returns the greyscale or colour table.
func (e *Entry) Table(grey bool) *Palette {
	if grey {
		return &e.Grey
	}
	return &e.Color
}

// Placeholder is the all-black palette that fills the default slot when no
// default file exists.
func Placeholder() Entry {
	return Derive("placeholder", Palette{})
}

// Derive computes the greyscale variant and the black index set of p.
func Derive(name string, p Palette) Entry {
	e := Entry{Name: name, Color: p}
	for i, c := range p {
		total := int(c.R) + int(c.G) + int(c.B)
		g := uint8(total / 3)
		e.Grey[i] = RGB{R: g, G: g, B: g}
		if total == 0 {
			e.Black[i] = true
		}
	}
	return e
}

// Parse decodes a palette file. Each channel is multiplied by gain and
// clamped to 255 before the grey and black tables are derived; a gain below
// one leaves the channels unchanged.
func Parse(name string, data []byte, gain int) (Entry, error) {
	if len(data) != FileSize {
		return Entry{}, fmt.Errorf("%s: %w (got %d)", name, ErrSize, len(data))
	}
	var p Palette
	for i := range p {
		p[i] = RGB{
			R: scale(data[i*3], gain),
			G: scale(data[i*3+1], gain),
			B: scale(data[i*3+2], gain),
		}
	}
	return Derive(name, p), nil
}

// Encode returns p in the on-disk format.
func Encode(p *Palette) []byte {
	out := make([]byte, FileSize)
	for i, c := range p {
		out[i*3] = c.R
		out[i*3+1] = c.G
		out[i*3+2] = c.B
	}
	return out
}

func scale(v uint8, gain int) uint8 {
	if gain <= 1 {
		return v
	}
	s := int(v) * gain
	if s > 255 {
		return 255
	}
	return uint8(s)
}
