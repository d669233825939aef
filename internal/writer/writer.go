// Package writer implements the instruction listing output.
package writer

import (
	"fmt"
	"io"

	"github.com/retroenv/lmcasm/internal/lmc"
)

// Writer writes a listing of decoded instructions, one instruction per line.
type Writer struct {
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	Codes  bool   // output the numeric operation code of every instruction
	Header string // optional comment written before the listing
}

// New creates a new writer.
func New(writer io.Writer, options Options) *Writer {
	return &Writer{
		options: options,
		writer:  writer,
	}
}

// Write writes the header and all instructions.
func (w Writer) Write(instructions []lmc.Instruction) error {
	if w.options.Header != "" {
		if _, err := fmt.Fprintf(w.writer, "// %s\n", w.options.Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, ins := range instructions {
		if err := w.writeInstruction(i, ins); err != nil {
			return err
		}
	}
	return nil
}

func (w Writer) writeInstruction(index int, ins lmc.Instruction) error {
	var err error
	if w.options.Codes {
		_, err = fmt.Fprintf(w.writer, "%03d  %04d  %s\n", index, ins.Code(), ins)
	} else {
		_, err = fmt.Fprintf(w.writer, "%03d  %s\n", index, ins)
	}
	if err != nil {
		return fmt.Errorf("writing instruction %d: %w", index, err)
	}
	return nil
}
