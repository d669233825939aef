package lmc

import (
	"github.com/retroenv/retrogolib/set"
	"golang.org/x/exp/slices"
)

// Opcode is an entry of the fixed LMC mnemonic table.
// Values are handed out as copies, the table itself can not be changed.
type Opcode struct {
	name       string
	code       uint16
	hasOperand bool
}

// Name returns the upper case mnemonic of the opcode.
func (o Opcode) Name() string {
	return o.name
}

// Code returns the numeric operation code.
func (o Opcode) Code() uint16 {
	return o.code
}

// HasOperand returns whether the instruction conventionally takes an operand.
// The decoder does not enforce this.
func (o Opcode) HasOperand() bool {
	return o.hasOperand
}

var (
	hlt = &Opcode{name: "HLT", code: 0}
	add = &Opcode{name: "ADD", code: 1, hasOperand: true}
	sub = &Opcode{name: "SUB", code: 2, hasOperand: true}
	sta = &Opcode{name: "STA", code: 3, hasOperand: true}
	lda = &Opcode{name: "LDA", code: 5, hasOperand: true}
	bra = &Opcode{name: "BRA", code: 6, hasOperand: true}
	brz = &Opcode{name: "BRZ", code: 7, hasOperand: true}
	brp = &Opcode{name: "BRP", code: 8, hasOperand: true}
	inp = &Opcode{name: "INP", code: 901}
	out = &Opcode{name: "OUT", code: 902}
	dat = &Opcode{name: "DAT", code: 1000, hasOperand: true}
)

var opcodes = map[string]*Opcode{
	hlt.name: hlt,
	add.name: add,
	sub.name: sub,
	sta.name: sta,
	lda.name: lda,
	bra.name: bra,
	brz.name: brz,
	brp.name: brp,
	inp.name: inp,
	out.name: out,
	dat.name: dat,
}

var noOperandInstructions = newNoOperandInstructions()

func newNoOperandInstructions() set.Set[string] {
	s := set.New[string]()
	for name, op := range opcodes {
		if !op.hasOperand {
			s.Add(name)
		}
	}
	return s
}

// Lookup returns the opcode for the given mnemonic. The lookup is case-sensitive.
func Lookup(mnemonic string) (Opcode, bool) {
	op, ok := opcodes[mnemonic]
	if !ok {
		return Opcode{}, false
	}
	return *op, true
}

// IsNoOperandInstruction returns whether the mnemonic names an instruction
// that does not use an operand.
func IsNoOperandInstruction(mnemonic string) bool {
	return noOperandInstructions.Contains(mnemonic)
}

// Mnemonics returns all known mnemonics in sorted order.
func Mnemonics() []string {
	names := make([]string, 0, len(opcodes))
	for name := range opcodes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
