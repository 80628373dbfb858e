package machine

import (
	"log"
)

// Immediate decodes for the RV32I instruction formats.
func immI(instr uint32) uint32 { return uint32(int32(instr) >> 20) }
func immU(instr uint32) uint32 { return instr & 0xfffff000 }

func immS(instr uint32) uint32 {
	return uint32((int32(instr)>>25)<<5) | ((instr >> 7) & 0x1f)
}

func immB(instr uint32) uint32 {
	return uint32((int32(instr)>>31)<<12) |
		((instr>>7)&0x1)<<11 |
		((instr>>25)&0x3f)<<5 |
		((instr>>8)&0xf)<<1
}

func immJ(instr uint32) uint32 {
	return uint32((int32(instr)>>31)<<20) |
		(instr & 0xff000) |
		((instr>>20)&0x1)<<11 |
		((instr>>21)&0x3ff)<<1
}

// setRegister writes a register bank entry. Writes to x0 are discarded.
func (m *Machine) setRegister(rd int, value uint32) {
	if rd != 0 {
		m.Register[rd] = value
	}
}

// load reads a little-endian value from memory, with optional sign
// extension.
func (m *Machine) load(address uint32, width int, signed bool) (value uint32, err error) {
	offset := int64(address) - int64(m.Base)
	if offset < 0 || offset+int64(width) > int64(len(m.Mem)) {
		err = ErrAccess(address)
		return
	}

	for n := range width {
		value |= uint32(m.Mem[offset+int64(n)]) << (8 * n)
	}

	if signed {
		shift := 32 - 8*width
		value = uint32(int32(value<<shift) >> shift)
	}

	return
}

// store writes a little-endian value to memory.
func (m *Machine) store(address uint32, width int, value uint32) (err error) {
	offset := int64(address) - int64(m.Base)
	if offset < 0 || offset+int64(width) > int64(len(m.Mem)) {
		err = ErrAccess(address)
		return
	}

	for n := range width {
		m.Mem[offset+int64(n)] = byte(value >> (8 * n))
	}

	return
}

func boolReg(b bool) (value uint32) {
	if b {
		value = 1
	}

	return
}

// Step fetches, decodes, and executes a single instruction.
// An ebreak returns ErrTrap and leaves the PC at the trapping instruction.
func (m *Machine) Step() (err error) {
	instr, err := m.load(m.Pc, 4, false)
	if err != nil {
		return
	}

	if m.Verbose {
		log.Printf("%08x: %08x", m.Pc, instr)
	}

	opcode := instr & 0x7f
	rd := int((instr >> 7) & 0x1f)
	funct3 := (instr >> 12) & 0x7
	rs1 := m.Register[(instr>>15)&0x1f]
	rs2 := m.Register[(instr>>20)&0x1f]
	shamt := (instr >> 20) & 0x1f
	funct7 := instr >> 25

	next_pc := m.Pc + 4

	switch opcode {
	case 0x37: // lui
		m.setRegister(rd, immU(instr))
	case 0x17: // auipc
		m.setRegister(rd, m.Pc+immU(instr))
	case 0x6f: // jal
		m.setRegister(rd, m.Pc+4)
		next_pc = m.Pc + immJ(instr)
	case 0x67: // jalr
		if funct3 != 0 {
			err = ErrDecode(instr)
			return
		}
		target := (rs1 + immI(instr)) &^ 1
		m.setRegister(rd, m.Pc+4)
		next_pc = target
	case 0x63: // branch
		var taken bool
		switch funct3 {
		case 0: // beq
			taken = rs1 == rs2
		case 1: // bne
			taken = rs1 != rs2
		case 4: // blt
			taken = int32(rs1) < int32(rs2)
		case 5: // bge
			taken = int32(rs1) >= int32(rs2)
		case 6: // bltu
			taken = rs1 < rs2
		case 7: // bgeu
			taken = rs1 >= rs2
		default:
			err = ErrDecode(instr)
			return
		}
		if taken {
			next_pc = m.Pc + immB(instr)
		}
	case 0x03: // load
		address := rs1 + immI(instr)
		var value uint32
		switch funct3 {
		case 0: // lb
			value, err = m.load(address, 1, true)
		case 1: // lh
			value, err = m.load(address, 2, true)
		case 2: // lw
			value, err = m.load(address, 4, false)
		case 4: // lbu
			value, err = m.load(address, 1, false)
		case 5: // lhu
			value, err = m.load(address, 2, false)
		default:
			err = ErrDecode(instr)
		}
		if err != nil {
			return
		}
		m.setRegister(rd, value)
	case 0x23: // store
		address := rs1 + immS(instr)
		switch funct3 {
		case 0: // sb
			err = m.store(address, 1, rs2)
		case 1: // sh
			err = m.store(address, 2, rs2)
		case 2: // sw
			err = m.store(address, 4, rs2)
		default:
			err = ErrDecode(instr)
		}
		if err != nil {
			return
		}
	case 0x13: // op-imm
		imm := immI(instr)
		var value uint32
		switch funct3 {
		case 0: // addi
			value = rs1 + imm
		case 2: // slti
			value = boolReg(int32(rs1) < int32(imm))
		case 3: // sltiu
			value = boolReg(rs1 < imm)
		case 4: // xori
			value = rs1 ^ imm
		case 6: // ori
			value = rs1 | imm
		case 7: // andi
			value = rs1 & imm
		case 1: // slli
			if funct7 != 0x00 {
				err = ErrDecode(instr)
				return
			}
			value = rs1 << shamt
		case 5: // srli, srai
			switch funct7 {
			case 0x00:
				value = rs1 >> shamt
			case 0x20:
				value = uint32(int32(rs1) >> shamt)
			default:
				err = ErrDecode(instr)
				return
			}
		}
		m.setRegister(rd, value)
	case 0x33: // op
		var value uint32
		switch funct7<<3 | funct3 {
		case 0x000: // add
			value = rs1 + rs2
		case 0x100: // sub
			value = rs1 - rs2
		case 0x001: // sll
			value = rs1 << (rs2 & 0x1f)
		case 0x002: // slt
			value = boolReg(int32(rs1) < int32(rs2))
		case 0x003: // sltu
			value = boolReg(rs1 < rs2)
		case 0x004: // xor
			value = rs1 ^ rs2
		case 0x005: // srl
			value = rs1 >> (rs2 & 0x1f)
		case 0x105: // sra
			value = uint32(int32(rs1) >> (rs2 & 0x1f))
		case 0x006: // or
			value = rs1 | rs2
		case 0x007: // and
			value = rs1 & rs2
		default:
			err = ErrDecode(instr)
			return
		}
		m.setRegister(rd, value)
	case 0x73: // system
		if instr == 0x00100073 { // ebreak
			err = ErrTrap
			return
		}
		err = ErrDecode(instr)
		return
	default:
		err = ErrDecode(instr)
		return
	}

	m.Pc = next_pc

	return
}
