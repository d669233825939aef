// Package loader handles source file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/retroenv/lmcasm/internal/options"
)

// Loader handles loading LMC source files from disk.
type Loader struct{}

// New creates a new source loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the input file of the options and returns its content as text.
func (l *Loader) Load(opts options.Program) (string, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return "", fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	return read(file)
}

func read(reader io.Reader) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("reading source: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("reading source: %w", ErrInvalidEncoding)
	}
	return string(data), nil
}
