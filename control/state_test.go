package control

import "testing"

func TestCommandForRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Command
	}{
		{'p', PaletteNext},
		{'P', PaletteNext},
		{'r', PaletteRandom},
		{'g', Greyscale},
		{'c', Color},
		{'l', ShowWord},
		{'o', ToggleOverlay},
		{'i', ToggleCaption},
		{'q', Quit},
		{0x1B, Quit},
		{'x', None},
	}
	for _, tt := range tests {
		if got := CommandForRune(tt.r); got != tt.want {
			t.Errorf("CommandForRune(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestPaletteNextWraps(t *testing.T) {
	s := New(3, 1)
	want := []int{1, 2, 0, 1}
	for i, w := range want {
		s.Apply(PaletteNext)
		if s.PaletteIndex != w {
			t.Fatalf("step %d: index %d, want %d", i, s.PaletteIndex, w)
		}
		if !s.Changed {
			t.Fatalf("step %d: Changed not set", i)
		}
		s.EndFrame()
	}
}

func TestPaletteRandomInRange(t *testing.T) {
	s := New(5, 42)
	for i := 0; i < 200; i++ {
		s.Apply(PaletteRandom)
		if s.PaletteIndex < 0 || s.PaletteIndex >= 5 {
			t.Fatalf("random index %d out of range", s.PaletteIndex)
		}
	}
}

func TestNewClampsPaletteCount(t *testing.T) {
	s := New(0, 1)
	if s.Palettes != 1 {
		t.Fatalf("Palettes = %d, want 1", s.Palettes)
	}
	s.Apply(PaletteNext)
	s.Apply(PaletteRandom)
	if s.PaletteIndex != 0 {
		t.Fatalf("PaletteIndex = %d, want 0", s.PaletteIndex)
	}
}

func TestGreyColorToggle(t *testing.T) {
	s := New(2, 1)
	s.Apply(Color)
	if s.Changed {
		t.Fatal("Color on colour state must not report a change")
	}
	s.Apply(Greyscale)
	if !s.Grey || !s.Changed {
		t.Fatalf("after Greyscale: grey=%v changed=%v", s.Grey, s.Changed)
	}
	s.EndFrame()
	s.Apply(Color)
	if s.Grey || !s.Changed {
		t.Fatalf("after Color: grey=%v changed=%v", s.Grey, s.Changed)
	}
}

func TestTakeWordIsOneShot(t *testing.T) {
	s := New(1, 1)
	if s.TakeWord() {
		t.Fatal("word set before ShowWord")
	}
	s.Apply(ShowWord)
	if !s.WordPending() {
		t.Fatal("WordPending = false after ShowWord")
	}
	if !s.TakeWord() {
		t.Fatal("TakeWord = false after ShowWord")
	}
	if s.TakeWord() {
		t.Fatal("TakeWord must clear the flag")
	}
}

func TestToggles(t *testing.T) {
	s := New(1, 1)
	s.Apply(ToggleOverlay)
	s.Apply(ToggleCaption)
	if !s.Overlay || !s.Caption {
		t.Fatalf("overlay=%v caption=%v", s.Overlay, s.Caption)
	}
	s.Apply(ToggleOverlay)
	if s.Overlay {
		t.Fatal("second ToggleOverlay must disable")
	}
	s.Apply(Quit)
	if !s.Quit {
		t.Fatal("Quit not recorded")
	}
}
