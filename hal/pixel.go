package hal

// expandRGBA converts src in format to opaque RGBA in dst.
func expandRGBA(dst, src []byte, format PixelFormat) {
	switch format {
	case PixelFormatRGBA8888:
		n := copy(dst, src)
		for i := 3; i < n; i += 4 {
			dst[i] = 0xFF
		}
	case PixelFormatRGB888:
		for i, j := 0, 0; i+2 < len(src) && j+3 < len(dst); i, j = i+3, j+4 {
			dst[j] = src[i]
			dst[j+1] = src[i+1]
			dst[j+2] = src[i+2]
			dst[j+3] = 0xFF
		}
	}
}
