package expr

import (
	"errors"

	"github.com/ezrec/rvmon/translate"
)

var f = translate.From

var (
	// Tokenizer errors
	ErrTokenTooLong  = errors.New(f("token too long"))
	ErrTooManyTokens = errors.New(f("too many tokens"))

	// Evaluator errors
	ErrOperandMissing  = errors.New(f("operand missing"))
	ErrOperandInvalid  = errors.New(f("operand invalid"))
	ErrOperatorMissing = errors.New(f("operator missing"))
	ErrDivideByZero    = errors.New(f("divide by zero"))
)

// ErrNoMatch reports the position where no lexer rule matched.
type ErrNoMatch struct {
	Position int    // Byte offset of the unmatched input.
	Remain   string // Input from the unmatched position onward.
}

func (err *ErrNoMatch) Error() string {
	return f("no match at position %d near '%v'", err.Position, err.Remain)
}

// ErrRegisterUnknown names a register reference that did not resolve.
type ErrRegisterUnknown string

func (err ErrRegisterUnknown) Error() string {
	return f("register %v unknown", string(err))
}
