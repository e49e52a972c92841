package main

import (
	"flag"
	"fmt"
	"os"

	"goldfire/palette"
)

func main() {
	var (
		outPath = flag.String("out", "palettes/default.bin", "Output palette file.")
		kind    = flag.String("kind", "fire", "fire|ice|grey.")
		vga6    = flag.Bool("vga6", false, "Store 6-bit DAC values (load with -gain 4).")
	)
	flag.Parse()

	if *outPath == "" {
		fatalf("usage: mkpal -out palettes/default.bin [-kind fire|ice|grey] [-vga6]")
	}

	data, err := build(*kind, *vga6)
	if err != nil {
		fatalf("%v", err)
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		fatalf("write: %v", err)
	}
	fmt.Printf("%s: %s palette, %d bytes\n", *outPath, *kind, len(data))
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func build(kind string, vga6 bool) ([]byte, error) {
	p, ok := palette.Ramp(kind)
	if !ok {
		return nil, fmt.Errorf("unknown kind: %s", kind)
	}
	if vga6 {
		p = palette.VGA6(p)
	}
	return palette.Encode(&p), nil
}
