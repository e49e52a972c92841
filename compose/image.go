package compose

import (
	"image"

	"golang.org/x/image/draw"
)

// Image copies a composed frame into an RGBA image.
func Image(buf []byte, width, height, channels int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if channels == 4 {
		copy(img.Pix, buf[:width*height*4])
		return img
	}
	for i := 0; i < width*height; i++ {
		img.Pix[i*4] = buf[i*3]
		img.Pix[i*4+1] = buf[i*3+1]
		img.Pix[i*4+2] = buf[i*3+2]
		img.Pix[i*4+3] = 0xFF
	}
	return img
}

// Scale enlarges src by an integer factor without smoothing, keeping the
// blocky look of the low-resolution effect.
func Scale(src image.Image, factor int) *image.RGBA {
	b := src.Bounds()
	if factor < 1 {
		factor = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
