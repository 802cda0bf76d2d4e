package disassembler

import (
	"fmt"
	"io"
)

// Sink receives a finished listing.
type Sink interface {
	// Instruction is called once per decoded instruction, in address order.
	Instruction(inst Instruction) error
	// Symbol is called once per symbol after all instructions, in the order
	// the symbols were first referenced.
	Symbol(label, address string) error
}

// TextWriter is a Sink producing the plain text listing.
type TextWriter struct {
	w io.Writer
	n int64
}

// NewTextWriter returns a TextWriter writing to w.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// Instruction writes one listing line.
func (t *TextWriter) Instruction(inst Instruction) error {
	return t.line(inst.String())
}

// Symbol writes one "label = address" line.
func (t *TextWriter) Symbol(label, address string) error {
	return t.line(fmt.Sprintf("%s = %s", label, address))
}

// Written returns the number of bytes written so far.
func (t *TextWriter) Written() int64 {
	return t.n
}

func (t *TextWriter) line(s string) error {
	n, err := fmt.Fprintln(t.w, s)
	t.n += int64(n)
	return err
}

// WriteTo writes the text listing to w.
func (l *Listing) WriteTo(w io.Writer) (int64, error) {
	tw := NewTextWriter(w)
	err := l.Emit(tw)
	return tw.Written(), err
}
