package compose

import (
	"fmt"
	"image/color"

	"goldfire/control"
	"goldfire/palette"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	captionHeight   = 12
	captionBaseline = 9
	captionMargin   = 2
)

var (
	captionFont tinyfont.Fonter = &proggy.TinySZ8pt7b

	captionFG     = color.RGBA{R: 0xff, G: 0xee, B: 0xaa, A: 0xff}
	captionShadow = color.RGBA{R: 0x20, G: 0x08, B: 0x00, A: 0xff}
)

func captionText(entry *palette.Entry, st *control.State) string {
	mode := "color"
	if st.Grey {
		mode = "grey"
	}
	return fmt.Sprintf("%d/%d %s %s", st.PaletteIndex+1, st.Palettes, entry.Name, mode)
}

// caption is a small cached raster of the palette label. It implements
// drivers.Displayer so tinyfont can draw into it.
type caption struct {
	text     string
	w, h     int
	channels int
	pix      []byte
	mask     []bool
	builds   int
}

var _ drivers.Displayer = (*caption)(nil)

func (c *caption) Size() (x, y int16) { return int16(c.w), int16(c.h) }

func (c *caption) SetPixel(x, y int16, col color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= c.w || iy < 0 || iy >= c.h {
		return
	}
	i := iy*c.w + ix
	o := i * c.channels
	c.pix[o] = col.R
	c.pix[o+1] = col.G
	c.pix[o+2] = col.B
	if c.channels == 4 {
		c.pix[o+3] = 0xFF
	}
	c.mask[i] = true
}

func (c *caption) Display() error { return nil }

func (c *caption) update(text string, maxWidth, channels int) {
	if text == c.text && channels == c.channels && c.pix != nil {
		return
	}
	_, outbox := tinyfont.LineWidth(captionFont, text)
	w := int(outbox) + 2
	if w > maxWidth-captionMargin {
		w = maxWidth - captionMargin
	}
	if w < 0 {
		w = 0
	}
	c.text = text
	c.w, c.h = w, captionHeight
	c.channels = channels
	c.pix = make([]byte, c.w*c.h*channels)
	c.mask = make([]bool, c.w*c.h)

	tinyfont.WriteLine(c, captionFont, 1, captionBaseline+1, text, captionShadow)
	tinyfont.WriteLine(c, captionFont, 0, captionBaseline, text, captionFG)
	c.builds++
}

func (c *caption) blit(dst []byte, width, height, channels int) {
	for y := 0; y < c.h && captionMargin+y < height; y++ {
		for x := 0; x < c.w; x++ {
			i := y*c.w + x
			if !c.mask[i] {
				continue
			}
			o := ((captionMargin+y)*width + captionMargin + x) * channels
			copy(dst[o:o+channels], c.pix[i*channels:i*channels+channels])
		}
	}
}
