//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

var polledKeys = [...]struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyEscape, KeyEscape},
}

func (k *hostKeyboard) poll() {
	for _, r := range ebiten.AppendInputChars(nil) {
		k.push(KeyEvent{Press: true, Rune: r})
	}

	// Letter keys arrive as text input above; only named keys are polled.
	for _, pk := range polledKeys {
		if inpututil.IsKeyJustPressed(pk.key) {
			k.push(KeyEvent{Code: pk.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(pk.key) {
			k.push(KeyEvent{Code: pk.code, Press: false})
		}
	}
}
