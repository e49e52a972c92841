// Package compose turns the indexed fire buffer into display bytes.
//
// The output is cleared to black and every pixel whose index is not in the
// palette's black set is looked up. Optional overlays (the logo strip and
// the palette caption) are rendered once into cached strips and only
// rebuilt when their inputs change.
package compose

import (
	"errors"
	"fmt"

	"goldfire/control"
	"goldfire/logo"
	"goldfire/palette"
)

var (
	ErrChannels = errors.New("compose: channels must be 3 or 4")
	ErrSize     = errors.New("compose: invalid size")
	ErrOverlay  = errors.New("compose: overlay outside frame")
)

// Compositor writes RGB or RGBA frames. It performs no I/O.
type Compositor struct {
	width    int
	height   int
	channels int

	logo         *logo.Bitmap
	logoX, logoY int
	strip        []byte
	stripKey     stripKey
	stripValid   bool
	stripBuilds  int

	caption caption
}

type stripKey struct {
	entry *palette.Entry
	grey  bool
}

// New returns a compositor for width x height frames with 3 (RGB) or 4
// (RGBA, opaque) bytes per pixel.
func New(width, height, channels int) (*Compositor, error) {
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("%w: %d", ErrChannels, channels)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, width, height)
	}
	return &Compositor{width: width, height: height, channels: channels}, nil
}

// FrameSize is the number of bytes Compose writes.
func (c *Compositor) FrameSize() int { return c.width * c.height * c.channels }

// Channels returns the bytes per pixel.
func (c *Compositor) Channels() int { return c.channels }

// SetLogo attaches the static logo overlay with its top-left corner at (x, y).
func (c *Compositor) SetLogo(b *logo.Bitmap, x, y int) error {
	if b == nil || x < 0 || y < 0 || x+b.Width > c.width || y+b.Height > c.height {
		return ErrOverlay
	}
	c.logo = b
	c.logoX, c.logoY = x, y
	c.stripValid = false
	return nil
}

// Compose renders pix through entry into dst. dst must hold FrameSize bytes
// and pix width*height indices. st selects the greyscale table and the
// overlays; nil means colour with no overlays.
func (c *Compositor) Compose(dst []byte, pix []uint8, entry *palette.Entry, st *control.State) {
	n := c.width * c.height
	dst = dst[:c.FrameSize()]
	pix = pix[:n]

	grey := st != nil && st.Grey
	table := entry.Table(grey)
	black := &entry.Black

	clear(dst)
	if c.channels == 3 {
		for i, v := range pix {
			if black[v] {
				continue
			}
			p := table[v]
			o := i * 3
			dst[o] = p.R
			dst[o+1] = p.G
			dst[o+2] = p.B
		}
	} else {
		for i, v := range pix {
			o := i * 4
			dst[o+3] = 0xFF
			if black[v] {
				continue
			}
			p := table[v]
			dst[o] = p.R
			dst[o+1] = p.G
			dst[o+2] = p.B
		}
	}

	if st == nil {
		return
	}
	if st.Overlay && c.logo != nil {
		key := stripKey{entry: entry, grey: grey}
		if !c.stripValid || c.stripKey != key {
			c.buildStrip(table)
			c.stripKey = key
			c.stripValid = true
		}
		c.blitStrip(dst)
	}
	if st.Caption {
		c.caption.update(captionText(entry, st), c.width, c.channels)
		c.caption.blit(dst, c.width, c.height, c.channels)
	}
}

func (c *Compositor) buildStrip(table *palette.Palette) {
	b := c.logo
	size := b.Width * b.Height * c.channels
	if cap(c.strip) < size {
		c.strip = make([]byte, size)
	}
	c.strip = c.strip[:size]
	for i, v := range b.Pix {
		o := i * c.channels
		p := table[v]
		c.strip[o] = p.R
		c.strip[o+1] = p.G
		c.strip[o+2] = p.B
		if c.channels == 4 {
			c.strip[o+3] = 0xFF
		}
	}
	c.stripBuilds++
}

func (c *Compositor) blitStrip(dst []byte) {
	b := c.logo
	ch := c.channels
	for y := 0; y < b.Height; y++ {
		row := b.Row(y)
		so := y * b.Width * ch
		do := ((c.logoY+y)*c.width + c.logoX) * ch
		for x, v := range row {
			if v == logo.Background {
				continue
			}
			copy(dst[do+x*ch:do+x*ch+ch], c.strip[so+x*ch:so+x*ch+ch])
		}
	}
}
