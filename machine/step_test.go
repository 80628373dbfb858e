package machine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// loadWords loads a program of instruction words at the base of memory.
func loadWords(m *Machine, words ...uint32) {
	image := make([]byte, 4*len(words))
	for n, word := range words {
		image[n*4+0] = byte(word >> 0)
		image[n*4+1] = byte(word >> 8)
		image[n*4+2] = byte(word >> 16)
		image[n*4+3] = byte(word >> 24)
	}
	m.Load(image)
}

// runToTrap steps until ebreak, failing the test on any other error.
func runToTrap(t *testing.T, m *Machine) {
	for range 1000 {
		err := m.Step()
		if errors.Is(err, ErrTrap) {
			return
		}
		if err != nil {
			t.Fatalf("pc 0x%08x: %v", m.Pc, err)
		}
	}
	t.Fatalf("no trap reached")
}

func TestStepAlu(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	loadWords(m,
		0x00500513, // addi a0, x0, 5
		0x00350513, // addi a0, a0, 3
		0x00100073, // ebreak
	)

	err := m.Step()
	assert.NoError(err)
	assert.Equal(uint32(5), m.Register[10])
	assert.Equal(m.Base+4, m.Pc)

	err = m.Step()
	assert.NoError(err)
	assert.Equal(uint32(8), m.Register[10])

	err = m.Step()
	assert.ErrorIs(err, ErrTrap)
	// The PC stays at the trapping instruction.
	assert.Equal(m.Base+8, m.Pc)
}

func TestStepLuiAuipc(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	loadWords(m,
		0x12345537, // lui a0, 0x12345
		0x00000597, // auipc a1, 0
		0x00100073, // ebreak
	)
	runToTrap(t, m)

	assert.Equal(uint32(0x12345000), m.Register[10])
	assert.Equal(m.Base+4, m.Register[11])
}

func TestStepBranch(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	loadWords(m,
		0x00100513, // addi a0, x0, 1
		0x00050463, // beq a0, x0, +8 (not taken)
		0x00051463, // bne a0, x0, +8 (taken)
		0x06300513, // addi a0, x0, 99 (skipped)
		0x00100073, // ebreak
	)
	runToTrap(t, m)

	assert.Equal(uint32(1), m.Register[10])
	assert.Equal(m.Base+16, m.Pc)
}

func TestStepJal(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	loadWords(m,
		0x008000ef, // jal ra, +8
		0x00000013, // nop (skipped)
		0x00100073, // ebreak
	)
	runToTrap(t, m)

	assert.Equal(m.Base+4, m.Register[1])
	assert.Equal(m.Base+8, m.Pc)
}

func TestStepJalr(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	loadWords(m,
		0x00000013, // nop
		0x00100073, // ebreak
	)
	m.Register[1] = m.Base + 4
	err := m.Step() // nop
	assert.NoError(err)

	loadWords(m,
		0x00008067, // jalr x0, 0(ra) -- ret
	)
	m.Register[1] = m.Base + 8
	err = m.Step()
	assert.NoError(err)
	assert.Equal(m.Base+8, m.Pc)
}

func TestStepMemory(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	loadWords(m,
		0xfff00513, // addi a0, x0, -1
		0x00a12023, // sw a0, 0(sp)
		0x00012583, // lw a1, 0(sp)
		0x00100073, // ebreak
	)
	m.Register[2] = m.Base + 0x100
	runToTrap(t, m)

	assert.Equal(uint32(0xffffffff), m.Register[10])
	assert.Equal(uint32(0xffffffff), m.Register[11])
	assert.Equal(uint32(0xffffffff), m.ReadMemory(m.Base+0x100, 4))
}

func TestStepSignExtend(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	loadWords(m,
		0x08000513, // addi a0, x0, 0x80
		0x00a10023, // sb a0, 0(sp)
		0x00010583, // lb a1, 0(sp)
		0x00014603, // lbu a2, 0(sp)
		0x00100073, // ebreak
	)
	m.Register[2] = m.Base + 0x100
	runToTrap(t, m)

	assert.Equal(uint32(0xffffff80), m.Register[11])
	assert.Equal(uint32(0x80), m.Register[12])
}

func TestStepAccess(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	loadWords(m,
		0x00002583, // lw a1, 0(x0)
	)

	err := m.Step()
	assert.ErrorIs(err, ErrAccess(0))
}

func TestStepDecode(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()

	for _, word := range []uint32{0x00000000, 0xffffffff, 0x00000073} {
		loadWords(m, word)
		err := m.Step()
		assert.ErrorIs(err, ErrDecode(word), "0x%08x", word)
		assert.Equal(m.Base, m.Pc)
	}
}
