package palette

// Fire returns the classic black, red, yellow, white fire ramp.
func Fire() Palette {
	var p Palette
	for i := range p {
		switch {
		case i < 64:
			p[i] = RGB{R: uint8(i * 4)}
		case i < 128:
			p[i] = RGB{R: 255, G: uint8((i - 64) * 4)}
		case i < 192:
			p[i] = RGB{R: 255, G: 255, B: uint8((i - 128) * 4)}
		default:
			p[i] = RGB{R: 255, G: 255, B: 255}
		}
	}
	return p
}

// Ice is the fire ramp with red and blue swapped.
func Ice() Palette {
	p := Fire()
	for i, c := range p {
		p[i] = RGB{R: c.B, G: c.G, B: c.R}
	}
	return p
}

// Grey is a linear black to white ramp.
func Grey() Palette {
	var p Palette
	for i := range p {
		v := uint8(i)
		p[i] = RGB{R: v, G: v, B: v}
	}
	return p
}

// Ramp returns a built-in palette by name.
func Ramp(name string) (Palette, bool) {
	switch name {
	case "fire":
		return Fire(), true
	case "ice":
		return Ice(), true
	case "grey", "gray":
		return Grey(), true
	}
	return Palette{}, false
}

// VGA6 reduces p to 6-bit VGA DAC values, as stored by DOS-era palette
// dumps. Load them back with a gain of 4.
func VGA6(p Palette) Palette {
	for i, c := range p {
		p[i] = RGB{R: c.R >> 2, G: c.G >> 2, B: c.B >> 2}
	}
	return p
}
