package main

import (
	"testing"

	"goldfire/palette"
)

func TestBuild(t *testing.T) {
	data, err := build("fire", false)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(data) != palette.FileSize {
		t.Fatalf("len = %d", len(data))
	}
	e, err := palette.Parse("fire", data, 1)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if e.Color != palette.Fire() {
		t.Fatal("fire round trip mismatch")
	}
}

func TestBuildVGA6(t *testing.T) {
	data, err := build("grey", true)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for i, v := range data {
		if v > 63 {
			t.Fatalf("byte %d = %d, want 6-bit", i, v)
		}
	}
	e, err := palette.Parse("grey", data, 4)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := e.Color[255]; got != (palette.RGB{R: 252, G: 252, B: 252}) {
		t.Fatalf("entry 255 = %+v", got)
	}
}

func TestBuildUnknownKind(t *testing.T) {
	if _, err := build("plasma", false); err == nil {
		t.Fatal("expected error")
	}
}
