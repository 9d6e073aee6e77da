// Package code implements the opcode registry and instruction encoder for opvm.
//
// Each opcode is a single tag byte. The registry maps the tag to a Definition
// that names the opcode and lists the byte width of every operand. Make uses
// the registry to encode an opcode and its operands into Instructions: the tag
// byte followed by each operand in big-endian order at its declared width.
package code
