// Package intcode implements the Intcode virtual machine: a flat array of
// signed integers holding both code and data, executed one instruction at
// a time by an external driver that feeds it input and drains its output.
package intcode

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/slices"
)

var (
	// ErrOutOfBounds is returned when an instruction reads, writes or
	// fetches from an address outside memory.
	ErrOutOfBounds = errors.New("intcode: address out of bounds")

	// ErrUnknownOpcode is returned for any opcode outside the instruction set.
	ErrUnknownOpcode = errors.New("intcode: unknown opcode")
)

// Status is the outcome of Step or Run.
type Status int

const (
	// Running means an ordinary instruction executed.
	Running Status = iota
	// Output means an output instruction appended a value.
	Output
	// NeedsInput means the machine is blocked on an input instruction. The
	// instruction pointer is unchanged, so calling again with input resumes.
	NeedsInput
	// Halted means the halt instruction was reached.
	Halted
	// Fault means execution stopped on an error.
	Fault
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Output:
		return "output"
	case NeedsInput:
		return "needs input"
	case Halted:
		return "halted"
	case Fault:
		return "fault"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Exhaustion selects what an input instruction does when the stack is empty.
type Exhaustion int

const (
	// Suspend stops the machine with NeedsInput.
	Suspend Exhaustion = iota
	// YieldSentinel stores Sentinel and carries on.
	YieldSentinel
)

// Sentinel is the value read under YieldSentinel when no input is queued.
const Sentinel = -1

// Option configures a Machine.
type Option func(*Machine)

// WithExhaustion sets the empty-input policy.
func WithExhaustion(e Exhaustion) Option {
	return func(m *Machine) { m.exhaustion = e }
}

// WithTrace writes every instruction to w before it executes.
func WithTrace(w io.Writer) Option {
	return func(m *Machine) { m.trace = w }
}

// Machine is a single Intcode program instance. It is not safe for
// concurrent use; independent machines share nothing.
type Machine struct {
	ops    []int
	start  []int
	ip     int
	output []int
	halted bool

	exhaustion Exhaustion
	trace      io.Writer
}

// New returns a machine loaded with a copy of program.
func New(program []int, opts ...Option) *Machine {
	m := &Machine{
		ops:   slices.Clone(program),
		start: slices.Clone(program),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetExhaustion changes the empty-input policy.
func (m *Machine) SetExhaustion(e Exhaustion) { m.exhaustion = e }

// Reset restores memory to the loaded program, rewinds the instruction
// pointer and discards output.
func (m *Machine) Reset() {
	m.ops = append(m.ops[:0], m.start...)
	m.ip = 0
	m.output = m.output[:0]
	m.halted = false
}

func (m *Machine) IP() int { return m.ip }

func (m *Machine) Halted() bool { return m.halted }

// Memory returns a copy of the current memory.
func (m *Machine) Memory() []int { return slices.Clone(m.ops) }

// Output returns a copy of everything written since the last Drain or Reset.
func (m *Machine) Output() []int { return slices.Clone(m.output) }

// Drain returns the accumulated output and clears it.
func (m *Machine) Drain() []int {
	out := m.output
	m.output = nil
	return out
}

func (m *Machine) Peek(addr int) (int, error) {
	if !m.inBounds(addr) {
		return 0, fmt.Errorf("%w: peek %d", ErrOutOfBounds, addr)
	}
	return m.ops[addr], nil
}

func (m *Machine) Poke(addr, v int) error {
	if !m.inBounds(addr) {
		return fmt.Errorf("%w: poke %d", ErrOutOfBounds, addr)
	}
	m.ops[addr] = v
	return nil
}

// Run steps the machine until it halts, blocks on input or faults.
func (m *Machine) Run(in *Stack) (Status, error) {
	for {
		st, err := m.Step(in)
		if st != Running && st != Output {
			return st, err
		}
	}
}

// Step executes one instruction. If the machine is blocked on input, or
// has already halted, nothing changes.
func (m *Machine) Step(in *Stack) (Status, error) {
	if m.halted {
		return Halted, nil
	}
	if !m.inBounds(m.ip) {
		return Fault, m.fault("fetch", m.ip)
	}
	if m.trace != nil {
		m.traceStep()
	}

	op, modes := Decode(m.ops[m.ip])
	switch op {
	case OpAdd, OpMultiply, OpLessThan, OpEquals:
		a, err := m.param(modes, 1)
		if err != nil {
			return Fault, err
		}
		b, err := m.param(modes, 2)
		if err != nil {
			return Fault, err
		}
		dst, err := m.dest(3)
		if err != nil {
			return Fault, err
		}
		m.ops[dst] = arith(op, a, b)
	case OpInput:
		dst, err := m.dest(1)
		if err != nil {
			return Fault, err
		}
		v, ok := in.Pop()
		if !ok {
			if m.exhaustion == Suspend {
				return NeedsInput, nil
			}
			v = Sentinel
		}
		m.ops[dst] = v
	case OpOutput:
		a, err := m.param(modes, 1)
		if err != nil {
			return Fault, err
		}
		m.output = append(m.output, a)
		m.ip += 2
		return Output, nil
	case OpJumpIfTrue, OpJumpIfFalse:
		a, err := m.param(modes, 1)
		if err != nil {
			return Fault, err
		}
		b, err := m.param(modes, 2)
		if err != nil {
			return Fault, err
		}
		if (a != 0) == (op == OpJumpIfTrue) {
			m.ip = b
			return Running, nil
		}
	case OpHalt:
		m.halted = true
		return Halted, nil
	default:
		return Fault, fmt.Errorf("%w %d at %d", ErrUnknownOpcode, int(op), m.ip)
	}

	m.ip += op.Width()
	return Running, nil
}

func arith(op Opcode, a, b int) int {
	switch op {
	case OpAdd:
		return a + b
	case OpMultiply:
		return a * b
	case OpLessThan:
		if a < b {
			return 1
		}
	case OpEquals:
		if a == b {
			return 1
		}
	}
	return 0
}

// param resolves the 1-indexed parameter n of the current instruction.
func (m *Machine) param(modes []bool, n int) (int, error) {
	at := m.ip + n
	if !m.inBounds(at) {
		return 0, m.fault("parameter", at)
	}
	v := m.ops[at]
	if Immediate(modes, n) {
		return v, nil
	}
	if !m.inBounds(v) {
		return 0, m.fault("read", v)
	}
	return m.ops[v], nil
}

// dest resolves the address parameter n writes to. Writes are always in
// position mode.
func (m *Machine) dest(n int) (int, error) {
	at := m.ip + n
	if !m.inBounds(at) {
		return 0, m.fault("parameter", at)
	}
	addr := m.ops[at]
	if !m.inBounds(addr) {
		return 0, m.fault("write", addr)
	}
	return addr, nil
}

func (m *Machine) inBounds(addr int) bool {
	return addr >= 0 && addr < len(m.ops)
}

func (m *Machine) fault(access string, addr int) error {
	return fmt.Errorf("%w: %s %d at %d", ErrOutOfBounds, access, addr, m.ip)
}

func (m *Machine) traceStep() {
	ins, err := Disassemble(m.ops, m.ip)
	if err != nil {
		fmt.Fprintf(m.trace, "%4d: %d ?\n", m.ip, m.ops[m.ip])
		return
	}
	fmt.Fprintf(m.trace, "%4d: %s\n", m.ip, ins)
}
