package machine

import (
	"errors"

	"github.com/ezrec/rvmon/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrTrap = errors.New(f("trap"))
)

// ErrRegister names an invalid register reference.
type ErrRegister string

func (err ErrRegister) Error() string {
	return f("register %v invalid", string(err))
}

// ErrDecode is an instruction word that did not decode.
type ErrDecode uint32

func (err ErrDecode) Error() string {
	return f("bad instruction 0x%08x", uint32(err))
}

func (err ErrDecode) Is(target error) (ok bool) {
	_, ok = target.(ErrDecode)
	return
}

// ErrAccess is a load or store address outside of memory.
type ErrAccess uint32

func (err ErrAccess) Error() string {
	return f("memory access 0x%08x out of range", uint32(err))
}

func (err ErrAccess) Is(target error) (ok bool) {
	_, ok = target.(ErrAccess)
	return
}
