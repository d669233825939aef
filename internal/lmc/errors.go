package lmc

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMnemonic is returned for a line whose first token is not in the mnemonic table.
	ErrUnknownMnemonic = errors.New("unknown instruction")
	// ErrInvalidOperand is returned for an operand that is not a 16 bit unsigned decimal number.
	ErrInvalidOperand = errors.New("invalid operand")
)

// DecodeError describes the source line that failed to decode.
type DecodeError struct {
	Line  int    // 1-based source line number
	Token string // offending token
	Err   error  // ErrUnknownMnemonic or ErrInvalidOperand
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d: %s %q", e.Line, e.Err, e.Token)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
