// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package code

import (
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/ezrec/opvm/internal"
)

// Opcode is the one byte tag of an instruction.
type Opcode byte

// Opcode tags. Never renumber an existing tag; append new ones.
const (
	OP_CONSTANT = Opcode(0x00) // Push constant pool entry.
)

// Instructions is an encoded instruction stream.
type Instructions []byte

// Definition describes the encoding shape of an opcode.
type Definition struct {
	Name          string // Name used in diagnostics.
	OperandWidths []int  // Byte width of each operand, in order.
}

// Width returns the encoded size of an instruction, including the tag byte.
func (def Definition) Width() (width int) {
	width = 1
	for _, w := range def.OperandWidths {
		width += w
	}
	return
}

func (def Definition) clone() Definition {
	def.OperandWidths = slices.Clone(def.OperandWidths)
	return def
}

type entry struct {
	Opcode     Opcode
	Definition Definition
}

// The opcode table. Adding an opcode means adding an entry here.
var entries = []entry{
	{OP_CONSTANT, Definition{"OpConstant", []int{2}}},
}

// buildTable converts the entry list into a lookup table.
func buildTable(list []entry) (table map[Opcode]Definition, err error) {
	table = make(map[Opcode]Definition, len(list))
	for _, ent := range list {
		_, ok := table[ent.Opcode]
		if ok {
			return nil, ErrOpcodeDuplicate(ent.Opcode)
		}
		table[ent.Opcode] = ent.Definition.clone()
	}

	return
}

var definitions = sync.OnceValues(func() (map[Opcode]Definition, error) {
	return buildTable(entries)
})

// Lookup returns the definition of an opcode.
func Lookup(op Opcode) (def Definition, err error) {
	table, err := definitions()
	if err != nil {
		return
	}

	found, ok := table[op]
	if !ok {
		err = ErrUndefinedOpcode(op)
		return
	}

	def = found.clone()
	return
}

// LookupName finds an opcode by its definition name.
func LookupName(name string) (op Opcode, def Definition, err error) {
	for found, found_def := range Definitions() {
		if found_def.Name == name {
			return found, found_def, nil
		}
	}

	err = ErrOpcodeName(name)
	return
}

// Definitions iterates over the registry in ascending opcode order.
func Definitions() iter.Seq2[Opcode, Definition] {
	table, err := definitions()
	if err != nil {
		return func(yield func(Opcode, Definition) bool) {}
	}

	return internal.IterMap2(internal.IterSortedSeq2(table), Definition.clone)
}

// String returns the opcode name.
func (op Opcode) String() string {
	def, err := Lookup(op)
	if err != nil {
		return fmt.Sprintf("Opcode(0x%02x)", byte(op))
	}

	return def.Name
}
