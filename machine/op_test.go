package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOp_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("push 3", Push(3).String())
	assert.Equal("add", Add().String())
	assert.Equal("sub", Subtract().String())
	assert.Equal("OpKind(9)", Op{Kind: 9}.String())
}

func TestOpKind_Binary(t *testing.T) {
	assert := assert.New(t)

	assert.False(OP_PUSH.Binary())
	assert.True(OP_ADD.Binary())
	assert.True(OP_SUB.Binary())
	assert.False(OpKind(-1).Binary())
}

func TestProgram_String(t *testing.T) {
	assert := assert.New(t)

	prog := Program{Push(3), Push(4), Add(), Push(5), Subtract()}
	assert.Equal("push 3; push 4; add; push 5; sub", prog.String())
	assert.Equal("", Program{}.String())
}

func TestUnderflow_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("zero", UNDERFLOW_ZERO.String())
	assert.Equal("error", UNDERFLOW_ERROR.String())
	assert.Equal("Underflow(5)", Underflow(5).String())
}
