package intcode

import (
	"fmt"
	"strconv"
	"strings"
)

// Instruction is one decoded instruction.
type Instruction struct {
	Addr  int
	Raw   int // the undecoded opcode cell
	Op    Opcode
	Modes []bool
	Args  []int
}

// Width is the number of cells the instruction occupies.
func (ins Instruction) Width() int {
	if !ins.Op.Valid() {
		return 1
	}
	return ins.Op.Width()
}

// String renders the instruction with position-mode arguments in brackets
// and immediate arguments bare, e.g. "mul [4] 3 [4]". Cells that do not
// decode to a known opcode render as "data <n>".
func (ins Instruction) String() string {
	if !ins.Op.Valid() {
		return "data " + strconv.Itoa(ins.Raw)
	}

	var b strings.Builder
	b.WriteString(ins.Op.String())
	for i, arg := range ins.Args {
		b.WriteByte(' ')
		if Immediate(ins.Modes, i+1) {
			b.WriteString(strconv.Itoa(arg))
		} else {
			fmt.Fprintf(&b, "[%d]", arg)
		}
	}
	return b.String()
}

// Disassemble decodes the instruction at addr without executing it. It
// fails if addr, or any of the instruction's arguments, lies outside mem.
func Disassemble(mem []int, addr int) (Instruction, error) {
	if addr < 0 || addr >= len(mem) {
		return Instruction{}, fmt.Errorf("%w: disassemble %d", ErrOutOfBounds, addr)
	}

	op, modes := Decode(mem[addr])
	ins := Instruction{Addr: addr, Raw: mem[addr], Op: op, Modes: modes}
	if !op.Valid() {
		return ins, nil
	}

	end := addr + op.Width()
	if end > len(mem) {
		return ins, fmt.Errorf("%w: %s at %d runs past end of memory", ErrOutOfBounds, op, addr)
	}
	ins.Args = append([]int(nil), mem[addr+1:end]...)
	return ins, nil
}

// Listing disassembles mem linearly from address 0. A truncated
// instruction at the end of memory is listed cell by cell as data.
func Listing(mem []int) []Instruction {
	var out []Instruction
	for addr := 0; addr < len(mem); {
		ins, err := Disassemble(mem, addr)
		if err != nil {
			ins = Instruction{Addr: addr, Raw: mem[addr], Op: Opcode(-1)}
		}
		out = append(out, ins)
		addr += ins.Width()
	}
	return out
}
