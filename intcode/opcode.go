package intcode

import "fmt"

// Opcode is the low two decimal digits of an instruction cell.
type Opcode int

const (
	OpAdd         Opcode = 1
	OpMultiply    Opcode = 2
	OpInput       Opcode = 3
	OpOutput      Opcode = 4
	OpJumpIfTrue  Opcode = 5
	OpJumpIfFalse Opcode = 6
	OpLessThan    Opcode = 7
	OpEquals      Opcode = 8
	OpHalt        Opcode = 99
)

var mnemonics = map[Opcode]string{
	OpAdd:         "add",
	OpMultiply:    "mul",
	OpInput:       "in",
	OpOutput:      "out",
	OpJumpIfTrue:  "jt",
	OpJumpIfFalse: "jf",
	OpLessThan:    "lt",
	OpEquals:      "eq",
	OpHalt:        "halt",
}

func (op Opcode) String() string {
	if s, ok := mnemonics[op]; ok {
		return s
	}
	return fmt.Sprintf("op%d", int(op))
}

// Width is the number of cells the instruction occupies, opcode included.
// Unknown opcodes report 1.
func (op Opcode) Width() int {
	switch op {
	case OpAdd, OpMultiply, OpLessThan, OpEquals:
		return 4
	case OpJumpIfTrue, OpJumpIfFalse:
		return 3
	case OpInput, OpOutput:
		return 2
	default:
		return 1
	}
}

// Valid reports whether op is part of the instruction set.
func (op Opcode) Valid() bool {
	_, ok := mnemonics[op]
	return ok
}

// Decode splits an instruction cell into its opcode and per-parameter
// addressing modes, first parameter first. A true mode means immediate.
//
// The mode list is not padded to the instruction's parameter count: it
// holds one entry per decimal digit above the opcode, so 1002 yields
// [false, true] and 1 yields nil. Use Immediate to read it.
func Decode(cell int) (Opcode, []bool) {
	op := Opcode(cell % 100)

	var modes []bool
	for rest := cell / 100; rest > 0; rest /= 10 {
		modes = append(modes, rest%10 != 0)
	}
	return op, modes
}

// Immediate reports whether the 1-indexed parameter n is in immediate
// mode. Parameters past the end of modes are in position mode.
func Immediate(modes []bool, n int) bool {
	if n < 1 || n > len(modes) {
		return false
	}
	return modes[n-1]
}
