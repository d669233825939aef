// Package lmc provides the Little Man Computer instruction set and a decoder
// that translates assembly source text into instruction records.
//
// # Instruction Set
//
// The Little Man Computer is a decimal accumulator machine with eleven
// instructions:
//   - Arithmetic: ADD, SUB
//   - Memory: STA, LDA, DAT
//   - Flow control: BRA, BRZ, BRP, HLT
//   - Input/Output: INP, OUT
//
// # Source Format
//
// Source text is processed line by line. Each line is trimmed of surrounding
// whitespace, lines starting with // are comments, and the remaining lines
// consist of a mnemonic optionally followed by a single space and a decimal
// operand:
//
//	// countdown
//	INP
//	STA 10
//	OUT
//	HLT
//
// Labels are not resolved at this stage, operands are plain numbers.
//
// # Usage Example
//
//	instructions, err := lmc.Decode(source)
//	if err != nil {
//		return fmt.Errorf("decoding source: %w", err)
//	}
//	for _, ins := range instructions {
//		fmt.Println(ins)
//	}
package lmc
