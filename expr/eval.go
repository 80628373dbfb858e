package expr

import (
	"strconv"
	"strings"
)

const (
	TOKEN_LIMIT = 32 // Default token capacity per evaluation
	DEREF_WIDTH = 4  // Default memory dereference width, in bytes
)

// Machine is the simulated machine state an expression can reference.
type Machine interface {
	// RegisterValue resolves a register name, without its '$' sigil,
	// to its current value.
	RegisterValue(name string) (value uint32, err error)
	// ReadMemory reads a value of the given byte width from memory.
	ReadMemory(address uint32, width int) (value uint32)
}

// Evaluator computes monitor expressions against a machine.
type Evaluator struct {
	Machine Machine // Register and memory access.
	Limit   int     // Token capacity; TOKEN_LIMIT if zero.
	Width   int     // Dereference width in bytes; DEREF_WIDTH if zero.
}

// Evaluate tokenizes and evaluates an expression, returning its machine
// word value. Any failure aborts the evaluation; the value is not valid
// unless err is nil.
func (ev *Evaluator) Evaluate(input string) (value uint32, err error) {
	limit := ev.Limit
	if limit == 0 {
		limit = TOKEN_LIMIT
	}

	tokens, err := Tokenize(input, limit)
	if err != nil {
		return
	}

	return ev.eval(tokens, 0, len(tokens)-1)
}

// eval recursively evaluates the inclusive token range [p..q].
func (ev *Evaluator) eval(tokens []Token, p, q int) (value uint32, err error) {
	if p > q {
		err = ErrOperandMissing
		return
	}

	if p == q {
		return ev.operand(tokens[p])
	}

	if paired(tokens, p, q) {
		return ev.eval(tokens, p+1, q-1)
	}

	main := mainOperator(tokens, p, q)
	if main < 0 {
		err = ErrOperatorMissing
		return
	}

	right, err := ev.eval(tokens, main+1, q)
	if err != nil {
		return
	}

	switch tokens[main].Kind {
	case TK_DEREF:
		width := ev.Width
		if width == 0 {
			width = DEREF_WIDTH
		}
		value = ev.Machine.ReadMemory(right, width)
		return
	case TK_NEG:
		value = -right
		return
	}

	left, err := ev.eval(tokens, p, main-1)
	if err != nil {
		return
	}

	switch tokens[main].Kind {
	case TK_ADD:
		value = left + right
	case TK_SUB:
		value = left - right
	case TK_MUL:
		value = left * right
	case TK_DIV:
		if right == 0 {
			err = ErrDivideByZero
			return
		}
		value = left / right
	case TK_EQ:
		value = boolWord(left == right)
	case TK_NE:
		value = boolWord(left != right)
	case TK_AND:
		// Both sides already evaluated; no short-circuit.
		value = boolWord(left != 0 && right != 0)
	}

	return
}

// operand resolves a single literal or register token.
func (ev *Evaluator) operand(token Token) (value uint32, err error) {
	switch token.Kind {
	case TK_HEX:
		var v64 uint64
		v64, err = strconv.ParseUint(token.Text[2:], 16, 32)
		if err != nil {
			err = ErrOperandInvalid
			return
		}
		value = uint32(v64)
	case TK_UINT:
		var v64 uint64
		v64, err = strconv.ParseUint(token.Text, 10, 32)
		if err != nil {
			err = ErrOperandInvalid
			return
		}
		value = uint32(v64)
	case TK_REG:
		name := strings.TrimPrefix(token.Text, "$")
		value, err = ev.Machine.RegisterValue(name)
		if err != nil {
			err = ErrRegisterUnknown(name)
		}
	default:
		err = ErrOperandInvalid
	}

	return
}

func boolWord(b bool) (value uint32) {
	if b {
		value = 1
	}

	return
}
