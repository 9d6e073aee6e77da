package code

import (
	"github.com/ezrec/opvm/translate"
)

var f = translate.From

// ErrUndefinedOpcode is returned for an opcode missing from the registry.
type ErrUndefinedOpcode Opcode

func (eo ErrUndefinedOpcode) Error() string {
	return f("opcode 0x%02x undefined", byte(eo))
}

func (eo ErrUndefinedOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrUndefinedOpcode)
	return
}

// ErrOpcodeName is returned when no opcode has the requested name.
type ErrOpcodeName string

func (en ErrOpcodeName) Error() string {
	return f("opcode %v undefined", string(en))
}

func (en ErrOpcodeName) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcodeName)
	return
}

// ErrOpcodeDuplicate is returned when the registry is built with a repeated opcode.
type ErrOpcodeDuplicate Opcode

func (ed ErrOpcodeDuplicate) Error() string {
	return f("opcode 0x%02x duplicated", byte(ed))
}

func (ed ErrOpcodeDuplicate) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcodeDuplicate)
	return
}

// ErrOperandWidth is returned for an operand width with no encoding rule.
type ErrOperandWidth int

func (ew ErrOperandWidth) Error() string {
	return f("operand width %v unsupported", int(ew))
}

func (ew ErrOperandWidth) Is(err error) (ok bool) {
	_, ok = err.(ErrOperandWidth)
	return
}

// ErrOperandCount is returned when the operand list does not match the definition.
type ErrOperandCount struct {
	Opcode Opcode
	Want   int
	Got    int
}

func (ec ErrOperandCount) Error() string {
	return f("opcode 0x%02x wants %v operands, got %v", byte(ec.Opcode), ec.Want, ec.Got)
}

func (ec ErrOperandCount) Is(err error) (ok bool) {
	_, ok = err.(ErrOperandCount)
	return
}

// ErrOperandRange is returned for an operand that does not fit its width.
type ErrOperandRange struct {
	Index int
	Value int
	Width int
}

func (er ErrOperandRange) Error() string {
	return f("operand %v value %v does not fit in %v bytes", er.Index, er.Value, er.Width)
}

func (er ErrOperandRange) Is(err error) (ok bool) {
	_, ok = err.(ErrOperandRange)
	return
}
