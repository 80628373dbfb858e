package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterValue(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	m.Register[2] = 0x80007000
	m.Register[10] = 42
	m.Pc = 0x80000010

	table := [](struct {
		name  string
		value uint32
	}){
		{"sp", 0x80007000},
		{"x2", 0x80007000},
		{"a0", 42},
		{"x10", 42},
		{"pc", 0x80000010},
		{"$0", 0},
		{"0", 0},
		{"zero", 0},
		{"x0", 0},
		{"fp", 0},
	}

	for _, entry := range table {
		value, err := m.RegisterValue(entry.name)
		assert.NoError(err, entry.name)
		assert.Equal(entry.value, value, entry.name)
	}

	_, err := m.RegisterValue("zz")
	assert.ErrorIs(err, ErrRegister("zz"))
}

func TestReadMemory(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	m.Load([]byte{0x78, 0x56, 0x34, 0x12})

	assert.Equal(uint32(0x78), m.ReadMemory(m.Base, 1))
	assert.Equal(uint32(0x5678), m.ReadMemory(m.Base, 2))
	assert.Equal(uint32(0x12345678), m.ReadMemory(m.Base, 4))
	assert.Equal(uint32(0x3456), m.ReadMemory(m.Base+1, 2))

	// Reads outside the image yield zero, not a fault.
	assert.Equal(uint32(0), m.ReadMemory(m.Base-4, 4))
	assert.Equal(uint32(0), m.ReadMemory(0, 4))
	assert.Equal(uint32(0), m.ReadMemory(m.Base+uint32(len(m.Mem)), 4))
	assert.Equal(uint32(0), m.ReadMemory(m.Base+uint32(len(m.Mem))-2, 4))
}

func TestRegisters(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	m.Register[1] = 0x1234

	var names []string
	values := map[string]uint32{}
	for name, value := range m.Registers() {
		names = append(names, name)
		values[name] = value
	}

	assert.Equal(33, len(names))
	assert.Equal("pc", names[0])
	assert.Equal("$0", names[1])
	assert.Equal("ra", names[2])
	assert.Equal("t6", names[32])
	assert.Equal(m.Base, values["pc"])
	assert.Equal(uint32(0x1234), values["ra"])
}

func TestLoadReset(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	m.Register[10] = 99
	m.Pc = 0x80000020

	m.Load([]byte{1, 2, 3, 4})
	assert.Equal(m.Base, m.Pc)
	assert.Equal(uint32(0), m.Register[10])

	// Oversized images grow memory.
	big := make([]byte, MEMORY_SIZE+16)
	big[MEMORY_SIZE] = 0xaa
	m.Load(big)
	assert.Equal(uint32(0xaa), m.ReadMemory(m.Base+MEMORY_SIZE, 1))
}
