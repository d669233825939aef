package lmc

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		mnemonic string
		code     uint16
		found    bool
	}{
		{"HLT", 0, true},
		{"ADD", 1, true},
		{"SUB", 2, true},
		{"STA", 3, true},
		{"LDA", 5, true},
		{"BRA", 6, true},
		{"BRZ", 7, true},
		{"BRP", 8, true},
		{"INP", 901, true},
		{"OUT", 902, true},
		{"DAT", 1000, true},
		{"hlt", 0, false},
		{"NOP", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.mnemonic, func(t *testing.T) {
			op, ok := Lookup(tt.mnemonic)
			assert.Equal(t, tt.found, ok)
			if !tt.found {
				return
			}
			assert.Equal(t, tt.mnemonic, op.Name())
			assert.Equal(t, tt.code, op.Code())
		})
	}
}

func TestMnemonics(t *testing.T) {
	expected := []string{"ADD", "BRA", "BRP", "BRZ", "DAT", "HLT", "INP", "LDA", "OUT", "STA", "SUB"}
	assert.Equal(t, expected, Mnemonics())
}

func TestIsNoOperandInstruction(t *testing.T) {
	for _, name := range Mnemonics() {
		op, ok := Lookup(name)
		assert.True(t, ok)
		assert.Equal(t, !op.HasOperand(), IsNoOperandInstruction(name))
	}
	assert.True(t, IsNoOperandInstruction("HLT"))
	assert.True(t, IsNoOperandInstruction("INP"))
	assert.True(t, IsNoOperandInstruction("OUT"))
	assert.False(t, IsNoOperandInstruction("DAT"))
	assert.False(t, IsNoOperandInstruction("hlt"))
}

func TestLookupReturnsCopy(t *testing.T) {
	op, ok := Lookup("ADD")
	assert.True(t, ok)
	op.code = 1000

	again, ok := Lookup("ADD")
	assert.True(t, ok)
	assert.Equal(t, uint16(1), again.Code())

	instructions, err := Decode("ADD 3")
	assert.NoError(t, err)
	fromInstruction := instructions[0].Opcode()
	fromInstruction.code = 2
	assert.Equal(t, uint16(1), instructions[0].Code())
}

func TestInstructionString(t *testing.T) {
	tests := []struct {
		name string
		ins  Instruction
		want string
	}{
		{"without operand", Instruction{name: "INP", opcode: inp}, "INP"},
		{"with operand", Instruction{name: "STA", opcode: sta, operand: 12, hasOperand: true}, "STA 12"},
		{"zero operand", Instruction{name: "DAT", opcode: dat, hasOperand: true}, "DAT 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ins.String())
		})
	}
}

func TestInstructionZeroValue(t *testing.T) {
	var ins Instruction
	assert.Equal(t, uint16(0), ins.Code())
	assert.Equal(t, Opcode{}, ins.Opcode())
}
