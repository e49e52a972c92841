//go:build !tinygo

package hal

import "sync"

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	format PixelFormat
	buf    []byte
}

func newHostFramebuffer(width, height int, format PixelFormat) *hostFramebuffer {
	stride := width * format.BytesPerPixel()
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		format: format,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return f.format }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }
func (f *hostFramebuffer) Present() error      { return nil }

// Lock and Unlock guard Buffer while a frame is being written.
func (f *hostFramebuffer) Lock()   { f.mu.Lock() }
func (f *hostFramebuffer) Unlock() { f.mu.Unlock() }

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	bpp := f.format.BytesPerPixel()
	for i := 0; i+bpp <= len(f.buf); i += bpp {
		f.buf[i] = r
		f.buf[i+1] = g
		f.buf[i+2] = b
		if bpp == 4 {
			f.buf[i+3] = 0xFF
		}
	}
}

// snapshotRGBA copies the framebuffer into dst as opaque RGBA.
func (f *hostFramebuffer) snapshotRGBA(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	expandRGBA(dst, f.buf, f.format)
}
