package lmc

import (
	"strconv"
)

// Instruction is a decoded source line. It is created by the decoder and is
// read-only afterwards.
type Instruction struct {
	name       string
	opcode     *Opcode
	operand    uint16
	hasOperand bool
}

// Name returns the mnemonic as it was written in the source.
func (i Instruction) Name() string {
	return i.name
}

// Opcode returns a copy of the table entry of the instruction.
func (i Instruction) Opcode() Opcode {
	if i.opcode == nil {
		return Opcode{}
	}
	return *i.opcode
}

// Code returns the numeric operation code.
func (i Instruction) Code() uint16 {
	if i.opcode == nil {
		return 0
	}
	return i.opcode.code
}

// Operand returns the operand and whether one was given.
func (i Instruction) Operand() (uint16, bool) {
	return i.operand, i.hasOperand
}

// String returns the instruction in source form.
func (i Instruction) String() string {
	if !i.hasOperand {
		return i.name
	}
	return i.name + " " + strconv.FormatUint(uint64(i.operand), 10)
}
