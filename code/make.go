// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package code

import (
	"encoding/binary"
	"math"
)

// Make encodes an opcode and its operands.
func Make(op Opcode, operands ...int) (ins Instructions, err error) {
	def, err := Lookup(op)
	if err != nil {
		return
	}

	return encode(op, def, operands)
}

// encode writes the tag byte, then every operand at its declared width.
func encode(op Opcode, def Definition, operands []int) (ins Instructions, err error) {
	if len(operands) != len(def.OperandWidths) {
		err = ErrOperandCount{Opcode: op, Want: len(def.OperandWidths), Got: len(operands)}
		return
	}

	buff := make(Instructions, def.Width())
	buff[0] = byte(op)

	offset := 1
	for n, operand := range operands {
		width := def.OperandWidths[n]
		switch width {
		case 2:
			if operand < 0 || operand > math.MaxUint16 {
				err = ErrOperandRange{Index: n, Value: operand, Width: width}
				return
			}
			binary.BigEndian.PutUint16(buff[offset:], uint16(operand))
		default:
			err = ErrOperandWidth(width)
			return
		}
		offset += width
	}

	ins = buff
	return
}
