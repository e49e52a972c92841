package palette

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

// DefaultFile is the file placed at index 0 when present.
const DefaultFile = "default.bin"

// Options configures palette discovery.
type Options struct {
	// Default names the file placed at index 0. Empty means DefaultFile.
	Default string
	// Gain multiplies every channel, clamped to 255. Values below 2 disable it.
	Gain int
}

// Store is the ordered list of loaded palettes. Index 0 always exists.
type Store struct {
	entries []Entry
}

// NewStore builds a store from entries, inserting the placeholder when the
// list is empty.
func NewStore(entries ...Entry) *Store {
	if len(entries) == 0 {
		entries = []Entry{Placeholder()}
	}
	return &Store{entries: entries}
}

// Load reads every *.bin palette in dir. See LoadFS.
func Load(dir string, opts Options) (*Store, error) {
	return LoadFS(os.DirFS(dir), opts)
}

// LoadFS reads every *.bin palette at the root of fsys in lexicographic order,
// placing the default file first.
//
// The returned store is always usable. A non-nil error describes what was
// skipped: an unreadable directory, wrong-sized files, or a missing default.
func LoadFS(fsys fs.FS, opts Options) (*Store, error) {
	def := opts.Default
	if def == "" {
		def = DefaultFile
	}

	s := &Store{entries: []Entry{Placeholder()}}

	dirents, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return s, fmt.Errorf("palette: read dir: %w", err)
	}

	var errs []error
	foundDefault := false
	for _, de := range dirents {
		name := de.Name()
		if de.IsDir() || !strings.EqualFold(path.Ext(name), ".bin") {
			continue
		}
		// fs.Stat follows symlinks, unlike the entry's own Info.
		info, err := fs.Stat(fsys, name)
		if err != nil {
			errs = append(errs, fmt.Errorf("palette: %s: %w", name, err))
			continue
		}
		if info.IsDir() {
			continue
		}
		if info.Size() != FileSize {
			errs = append(errs, fmt.Errorf("%s: %w (got %d)", name, ErrSize, info.Size()))
			continue
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			errs = append(errs, fmt.Errorf("palette: %s: %w", name, err))
			continue
		}
		e, err := Parse(strings.TrimSuffix(name, path.Ext(name)), data, opts.Gain)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if strings.EqualFold(name, def) {
			s.entries[0] = e
			foundDefault = true
			continue
		}
		s.entries = append(s.entries, e)
	}
	if !foundDefault {
		errs = append(errs, fmt.Errorf("%w: %s", ErrNoDefault, def))
	}
	return s, errors.Join(errs...)
}

// Len returns the number of palettes, at least 1.
func (s *Store) Len() int { return len(s.entries) }

// Entry returns palette i. Out-of-range indices wrap.
func (s *Store) Entry(i int) *Entry {
	n := len(s.entries)
	i %= n
	if i < 0 {
		i += n
	}
	return &s.entries[i]
}

// Names lists palette names in index order.
func (s *Store) Names() []string {
	out := make([]string, len(s.entries))
	for i := range s.entries {
		out[i] = s.entries[i].Name
	}
	return out
}
