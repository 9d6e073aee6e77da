package machine

import (
	"fmt"
	"strings"
)

// OpKind is the kind of a stack machine operation.
type OpKind int

//go:generate go tool stringer -linecomment -type=OpKind
const (
	OP_PUSH = OpKind(0) // push
	OP_ADD  = OpKind(1) // add
	OP_SUB  = OpKind(2) // sub
)

// Binary returns true if the kind pops two operands and pushes one result.
func (kind OpKind) Binary() bool {
	return kind == OP_ADD || kind == OP_SUB
}

// Op is a single decoded operation.
type Op struct {
	Kind  OpKind
	Value Word // Only used by OP_PUSH.
}

// Push creates an operation that pushes value.
func Push(value Word) Op {
	return Op{Kind: OP_PUSH, Value: value}
}

// Add creates an operation that replaces the top two words with their sum.
func Add() Op {
	return Op{Kind: OP_ADD}
}

// Subtract creates an operation that replaces the top two words with their difference.
func Subtract() Op {
	return Op{Kind: OP_SUB}
}

func (op Op) String() string {
	if op.Kind == OP_PUSH {
		return fmt.Sprintf("%v %v", op.Kind, op.Value)
	}

	return op.Kind.String()
}

// Program is an ordered list of operations, executed once from first to last.
type Program []Op

func (prog Program) String() string {
	words := make([]string, len(prog))
	for n, op := range prog {
		words[n] = op.String()
	}

	return strings.Join(words, "; ")
}
