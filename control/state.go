package control

import "math/rand/v2"

// Command is a user request decoded from a key press.
type Command uint8

const (
	None Command = iota
	PaletteNext
	PaletteRandom
	Greyscale
	Color
	ShowWord
	ToggleOverlay
	ToggleCaption
	Quit
)

var commandNames = [...]string{
	None:          "none",
	PaletteNext:   "palette-next",
	PaletteRandom: "palette-random",
	Greyscale:     "greyscale",
	Color:         "color",
	ShowWord:      "show-word",
	ToggleOverlay: "toggle-overlay",
	ToggleCaption: "toggle-caption",
	Quit:          "quit",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// CommandForRune maps the demo's single-letter keys to commands.
func CommandForRune(r rune) Command {
	switch r {
	case 'p', 'P':
		return PaletteNext
	case 'r', 'R':
		return PaletteRandom
	case 'g', 'G':
		return Greyscale
	case 'c', 'C':
		return Color
	case 'l', 'L':
		return ShowWord
	case 'o', 'O':
		return ToggleOverlay
	case 'i', 'I':
		return ToggleCaption
	case 'q', 'Q', 0x1B:
		return Quit
	}
	return None
}

// State is the render selection read by the engine and the compositor at the
// start of each frame. Only the frame loop mutates it, so it carries no lock.
type State struct {
	PaletteIndex int
	Palettes     int
	Grey         bool
	Overlay      bool
	Caption      bool

	// Changed reports a palette or colour-mode switch since the last EndFrame.
	Changed bool
	Quit    bool

	word bool
	rng  *rand.Rand
}

// New returns a state selecting palette 0 of n. n below 1 is treated as 1
// since the default palette slot always exists.
func New(n int, seed uint64) *State {
	if n < 1 {
		n = 1
	}
	return &State{
		Palettes: n,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Apply mutates the state for one command.
func (s *State) Apply(cmd Command) {
	switch cmd {
	case PaletteNext:
		if s.PaletteIndex >= s.Palettes-1 {
			s.PaletteIndex = 0
		} else {
			s.PaletteIndex++
		}
		s.Changed = true
	case PaletteRandom:
		s.PaletteIndex = s.rng.IntN(s.Palettes)
		s.Changed = true
	case Greyscale:
		if !s.Grey {
			s.Grey = true
			s.Changed = true
		}
	case Color:
		if s.Grey {
			s.Grey = false
			s.Changed = true
		}
	case ShowWord:
		s.word = true
	case ToggleOverlay:
		s.Overlay = !s.Overlay
	case ToggleCaption:
		s.Caption = !s.Caption
	case Quit:
		s.Quit = true
	}
}

// TakeWord reports whether the one-shot word flag was set and clears it.
func (s *State) TakeWord() bool {
	w := s.word
	s.word = false
	return w
}

// WordPending reports the word flag without clearing it.
func (s *State) WordPending() bool { return s.word }

// EndFrame clears per-frame notifications.
func (s *State) EndFrame() { s.Changed = false }
