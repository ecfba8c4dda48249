// Package barcode wraps symbol decoding behind a small Backend
// interface so the decode pipeline stays independent of the engine.
// The default backend is gozxing constrained to Data Matrix.
package barcode

import (
	"context"
	"image"
)

// Format represents a barcode symbology.
type Format int

const (
	FormatUnknown Format = iota
	FormatDataMatrix
)

func (f Format) String() string {
	if f == FormatDataMatrix {
		return "datamatrix"
	}
	return "unknown"
}

// Options controls backend decoding behavior.
type Options struct {
	// TryHarder enables more exhaustive search (slower but more robust).
	TryHarder bool

	// MaxSymbols caps how many symbols the backend may return. A
	// backend is free to return fewer; the gozxing backend always
	// reads at most one symbol per image.
	MaxSymbols int
}

// Result represents a decoded symbol.
type Result struct {
	Format Format
	Text   string
}

// Valid reports whether the result carries usable payload text from a
// Data Matrix symbol.
func (r Result) Valid() bool {
	return r.Format == FormatDataMatrix && r.Text != ""
}

// Backend is a pluggable symbol decoder. Implementations return the
// symbols found in the image, or an error when the engine gives up;
// callers treat errors as "nothing found in this image".
type Backend interface {
	Decode(ctx context.Context, img image.Image, opts Options) ([]Result, error)
}
