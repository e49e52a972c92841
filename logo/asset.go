package logo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

var ErrRows = errors.New("logo: asset length is not a positive multiple of 20")

// Read decodes a logo asset: Rows rows of indices, no header. The width is
// derived from the length.
func Read(r io.Reader) (*Bitmap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("logo: read: %w", err)
	}
	if len(data) == 0 || len(data)%Rows != 0 {
		return nil, fmt.Errorf("%w (got %d bytes)", ErrRows, len(data))
	}
	return &Bitmap{Width: len(data) / Rows, Height: Rows, Pix: data}, nil
}

// Write encodes b in the asset format.
func Write(w io.Writer, b *Bitmap) error {
	if b.Height != Rows {
		return fmt.Errorf("logo: write: height %d, want %d", b.Height, Rows)
	}
	if _, err := w.Write(b.Pix); err != nil {
		return fmt.Errorf("logo: write: %w", err)
	}
	return nil
}

// Load reads the asset at path.
func Load(path string) (*Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("logo: %w", err)
	}
	defer f.Close()
	b, err := Read(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Save writes b to path, replacing any existing file.
func Save(path string, b *Bitmap) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("logo: %w", err)
	}
	bw := bufio.NewWriter(f)
	if err := Write(bw, b); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("logo: flush: %w", err)
	}
	return f.Close()
}
