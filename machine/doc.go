// Package machine implements the opvm stack machine.
//
// A Machine evaluates a Program, an ordered list of already decoded
// operations, against a last-in first-out stack of unsigned 64-bit words.
// Arithmetic wraps modulo 2^64, so subtracting a larger word from a smaller
// one yields a large positive word rather than a negative value.
//
// A binary operation that finds fewer than two words on the stack is an
// underflow. Under UNDERFLOW_ZERO (the default) each missing operand reads
// as zero; under UNDERFLOW_ERROR the operation fails with ErrStackUnderflow.
package machine
