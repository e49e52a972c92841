package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"goldfire/compose"
	"goldfire/logo"
	"goldfire/palette"
)

func main() {
	var (
		outPath = flag.String("out", "data/goldfire.bin", "Output logo asset.")
		pngPath = flag.String("png", "", "Optional PNG preview.")
		palPath = flag.String("palette", "", "Palette file for the preview (default: built-in fire ramp).")
		gain    = flag.Int("gain", 1, "Palette gain for the preview.")
		scale   = flag.Int("scale", 4, "Preview scale factor.")
	)
	flag.Parse()

	if *outPath == "" && *pngPath == "" {
		fatalf("usage: mklogo -out goldfire.bin [-png preview.png -palette file.bin -scale 4]")
	}

	b := logo.Generate()
	if *outPath != "" {
		if err := logo.Save(*outPath, b); err != nil {
			fatalf("save: %v", err)
		}
		fmt.Printf("%s: %dx%d, %d bytes\n", *outPath, b.Width, b.Height, len(b.Pix))
	}
	if *pngPath != "" {
		p, err := previewPalette(*palPath, *gain)
		if err != nil {
			fatalf("palette: %v", err)
		}
		if err := writePNG(*pngPath, preview(b, &p, *scale)); err != nil {
			fatalf("png: %v", err)
		}
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func previewPalette(path string, gain int) (palette.Palette, error) {
	if path == "" {
		return palette.Fire(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return palette.Palette{}, err
	}
	e, err := palette.Parse(path, data, gain)
	if err != nil {
		return palette.Palette{}, err
	}
	return e.Color, nil
}

func preview(b *logo.Bitmap, p *palette.Palette, scale int) *image.RGBA {
	return compose.Scale(b.Image(p), scale)
}

func writePNG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriterSize(out, 64*1024)
	if err := png.Encode(bw, img); err != nil {
		_ = out.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
