package disassembler

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedOpcode is returned for a byte with no entry in the table it
	// was looked up in, or a primary byte that has no entry but is not a
	// prefix.
	ErrMalformedOpcode = errors.New("malformed opcode")
	// ErrTruncated is returned when an instruction runs past the end of the
	// image.
	ErrTruncated = errors.New("truncated instruction")
	// ErrOutOfRange is returned when decoding starts outside the image.
	ErrOutOfRange = errors.New("program counter out of range")
)

// DecodeError describes where a decode pass stopped.
type DecodeError struct {
	PC    int
	Bytes []byte
	Err   error
}

func (e *DecodeError) Error() string {
	if len(e.Bytes) == 0 {
		return fmt.Sprintf("decode error at %04X: %v", e.PC, e.Err)
	}
	return fmt.Sprintf("decode error at %04X (%s): %v", e.PC, hexBytes(e.Bytes), e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeError(pc int, b []byte, err error) error {
	return &DecodeError{PC: pc, Bytes: append([]byte(nil), b...), Err: err}
}
