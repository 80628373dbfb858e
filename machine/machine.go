// Package machine implements the little RV32I machine the monitor inspects.
package machine

import (
	"fmt"
	"iter"
	"log"

	"github.com/ezrec/rvmon/internal"
)

const (
	MEMORY_BASE = uint32(0x80000000) // Default load address and reset vector
	MEMORY_SIZE = 0x8000             // Default memory size, in bytes
)

// regNames lists the general purpose registers in index order, by ABI name.
var regNames = [32]string{
	"$0", "ra", "sp", "gp", "tp",
	"t0", "t1", "t2",
	"s0", "s1",
	"a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7",
	"s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "s11",
	"t3", "t4", "t5", "t6",
}

// regIndex resolves ABI names, xN names, and aliases to register indexes.
var regIndex = map[string]int{}

func init() {
	for n, name := range regNames {
		regIndex[name] = n
		regIndex[fmt.Sprintf("x%d", n)] = n
	}
	regIndex["0"] = 0
	regIndex["zero"] = 0
	regIndex["fp"] = 8
}

// Machine is a little-endian RV32I machine simulation.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Pc       uint32     // Program counter.
	Register [32]uint32 // Register bank; x0 always reads as zero.

	Base uint32 // Memory base address.
	Mem  []byte // Flat memory image.
}

// NewMachine creates a machine with the default memory layout.
func NewMachine() (m *Machine) {
	m = &Machine{
		Base: MEMORY_BASE,
		Mem:  make([]byte, MEMORY_SIZE),
	}
	m.Pc = m.Base

	return
}

// Reset clears the register bank and returns the PC to the reset vector.
func (m *Machine) Reset() {
	if m.Verbose {
		log.Printf("machine: reset")
	}

	clear(m.Register[:])
	m.Pc = m.Base
}

// Load copies an image to the base of memory and resets the machine.
func (m *Machine) Load(image []byte) {
	if len(image) > len(m.Mem) {
		m.Mem = make([]byte, len(image))
	}
	clear(m.Mem)
	copy(m.Mem, image)

	m.Reset()
}

// RegisterValue resolves a register name ("pc", an ABI name such as "sp" or
// "a0", or "x0".."x31") to its current value.
func (m *Machine) RegisterValue(name string) (value uint32, err error) {
	if name == "pc" {
		value = m.Pc
		return
	}

	index, ok := regIndex[name]
	if !ok {
		err = ErrRegister(name)
		return
	}
	value = m.Register[index]

	return
}

// ReadMemory reads a value of the given byte width, little-endian. Reads
// outside the memory image yield zero; the monitor peeks at arbitrary
// addresses and must never fault.
func (m *Machine) ReadMemory(address uint32, width int) (value uint32) {
	offset := int64(address) - int64(m.Base)
	if offset < 0 || offset+int64(width) > int64(len(m.Mem)) {
		if m.Verbose {
			log.Printf("machine: read of 0x%08x out of range", address)
		}
		return
	}

	for n := range width {
		value |= uint32(m.Mem[offset+int64(n)]) << (8 * n)
	}

	return
}

// Registers iterates the PC and the register bank, in dump order.
func (m *Machine) Registers() iter.Seq2[string, uint32] {
	pc := func(yield func(string, uint32) bool) {
		yield("pc", m.Pc)
	}
	bank := func(yield func(string, uint32) bool) {
		for n, name := range regNames {
			if !yield(name, m.Register[n]) {
				return
			}
		}
	}

	return internal.IterSeq2Concat(pc, bank)
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	for name, val := range m.Registers() {
		text += fmt.Sprintf("% 4s: %04x_%04x\n", name, val>>16, val&0xffff)
	}

	return
}
