// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Underflow selects what a binary operation does with a short stack.
type Underflow int

//go:generate go tool stringer -linecomment -type=Underflow
const (
	UNDERFLOW_ZERO  = Underflow(0) // zero
	UNDERFLOW_ERROR = Underflow(1) // error
)

// Machine is the execution context for a Program.
type Machine struct {
	Underflow Underflow // Short stack policy.
	Stack     Stack     // Operand stack, left in place after Run.

	Ticks int // Operations executed since the last Run.

	logger *zap.Logger
}

type MachineOpt func(*Machine) *Machine

// LoggerOpt sets the logger for the machine.
func LoggerOpt(l *zap.Logger) MachineOpt {
	return func(m *Machine) *Machine {
		m.logger = l
		return m
	}
}

// UnderflowOpt sets the short stack policy.
func UnderflowOpt(policy Underflow) MachineOpt {
	return func(m *Machine) *Machine {
		m.Underflow = policy
		return m
	}
}

// New creates a machine with an empty stack.
func New(opts ...MachineOpt) *Machine {
	m := &Machine{
		Underflow: UNDERFLOW_ZERO,
		logger:    zap.L(),
	}

	for _, opt := range opts {
		m = opt(m)
	}

	if m.logger == nil {
		m.logger = zap.L()
	}
	m.logger = m.logger.Named("machine")

	return m
}

// Run executes every operation of prog in order on a fresh stack.
// The result is the top of the stack; ok is false if the stack ended empty.
func (m *Machine) Run(prog Program) (result Word, ok bool, err error) {
	m.Stack.Reset()
	m.Ticks = 0

	for n, op := range prog {
		m.log().Debug("exec",
			zap.Int("index", n),
			zap.Stringer("op", op),
			zap.Int("depth", m.Stack.Len()),
		)

		err = m.Exec(op)
		if err != nil {
			err = &ErrRuntime{Index: n, Op: op, Err: err}
			return
		}
		m.Ticks++
	}

	result, ok = m.Stack.Peek()

	m.log().Debug("done",
		zap.Uint64("result", uint64(result)),
		zap.Bool("ok", ok),
		zap.Int("ticks", m.Ticks),
	)

	return
}

// Exec executes a single operation against the current stack.
func (m *Machine) Exec(op Op) (err error) {
	switch {
	case op.Kind == OP_PUSH:
		m.Stack.Push(op.Value)
	case op.Kind.Binary():
		if m.Underflow == UNDERFLOW_ERROR && m.Stack.Len() < 2 {
			return ErrStackUnderflow
		}

		// Right hand side is on top.
		right := m.pop()
		left := m.pop()

		var value Word
		if op.Kind == OP_ADD {
			value = left + right
		} else {
			value = left - right
		}

		m.log().Debug(op.Kind.String(),
			zap.Uint64("left", uint64(left)),
			zap.Uint64("right", uint64(right)),
			zap.Uint64("result", uint64(value)),
		)

		m.Stack.Push(value)
	default:
		err = ErrOpInvalid
	}

	return
}

// log returns the machine logger, falling back to the global logger.
func (m *Machine) log() *zap.Logger {
	if m.logger == nil {
		m.logger = zap.L().Named("machine")
	}
	return m.logger
}

// pop removes the top word, reading zero from an empty stack.
func (m *Machine) pop() (value Word) {
	value, ok := m.Stack.Pop()
	if !ok {
		m.log().Debug("underflow")
	}
	return
}

// String returns the current machine state as a string.
func (m *Machine) String() string {
	words := make([]string, m.Stack.Len())
	for n, value := range m.Stack.Data {
		words[n] = fmt.Sprintf("%016X", uint64(value))
	}

	return fmt.Sprintf("underflow: %v\n    ticks: %v\n    stack: [%v]\n",
		m.Underflow, m.Ticks, strings.Join(words, " "))
}
