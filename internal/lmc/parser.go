package lmc

import (
	"strconv"
	"strings"
)

const commentPrefix = "//"

// SplitAndTrim splits the source into lines and trims surrounding whitespace
// of every line. Empty lines are kept, only "\n" is treated as line separator.
func SplitAndTrim(source string) []string {
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}

// Decode translates the source text into instructions in source order.
// Comment lines and empty lines are skipped. Decoding stops at the first
// line that can not be decoded, the returned error is a *DecodeError
// wrapping ErrUnknownMnemonic or ErrInvalidOperand.
func Decode(source string) ([]Instruction, error) {
	var instructions []Instruction

	for i, line := range SplitAndTrim(source) {
		ins, ok, err := decodeLine(line)
		if err != nil {
			err.Line = i + 1
			return nil, err
		}
		if ok {
			instructions = append(instructions, ins)
		}
	}

	return instructions, nil
}

// decodeLine decodes a single trimmed line and returns whether the line
// contained an instruction.
func decodeLine(line string) (Instruction, bool, *DecodeError) {
	if strings.HasPrefix(line, commentPrefix) {
		return Instruction{}, false, nil
	}

	// tokens are separated by a single space only, tabs or repeated spaces
	// are not collapsed
	tokens := strings.Split(line, " ")
	name := tokens[0]

	opcode, ok := opcodes[name]
	if !ok {
		if name == "" {
			return Instruction{}, false, nil
		}
		return Instruction{}, false, &DecodeError{Token: name, Err: ErrUnknownMnemonic}
	}

	ins := Instruction{
		name:   name,
		opcode: opcode,
	}

	if len(tokens) > 1 {
		operand, err := parseOperand(tokens[1])
		if err != nil {
			return Instruction{}, false, &DecodeError{Token: tokens[1], Err: ErrInvalidOperand}
		}
		ins.operand = operand
		ins.hasOperand = true
	}

	return ins, true, nil
}

// parseOperand parses a decimal 16 bit unsigned operand. A single leading
// plus sign is accepted when a digit follows it.
func parseOperand(token string) (uint16, error) {
	digits := token
	if len(token) > 1 && token[0] == '+' && token[1] >= '0' && token[1] <= '9' {
		digits = token[1:]
	}
	value, err := strconv.ParseUint(digits, 10, 16)
	if err != nil {
		return 0, err
	}
	return uint16(value), nil
}
