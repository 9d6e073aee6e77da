package script

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.starlark.net/starlark"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ezrec/opvm/code"
	"github.com/ezrec/opvm/machine"
)

func load(t *testing.T, lines ...string) (*Script, error) {
	ld := &Loader{Logger: zap.NewNop()}
	return ld.Load("test.star", strings.Join(lines, "\n")+"\n")
}

func TestLoad_Program(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	scr, err := load(t,
		"push(3)",
		"push(4)",
		"add()",
		"push(5)",
		"sub()",
	)
	require.NoError(err)

	expected := machine.Program{
		machine.Push(3),
		machine.Push(4),
		machine.Add(),
		machine.Push(5),
		machine.Subtract(),
	}
	assert.Equal(expected, scr.Program)
	assert.Equal(0, len(scr.Instructions))

	result, ok, err := machine.New().Run(scr.Program)
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(machine.Word(2), result)
}

func TestLoad_Control(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	scr, err := load(t,
		"push(0)",
		"for n in range(1, 5):",
		"    push(n)",
		"    add()",
		"total = 10",
	)
	require.NoError(err)
	assert.Equal(9, len(scr.Program))
	assert.Equal(starlark.MakeInt(10), scr.Globals["total"])

	result, ok, err := machine.New().Run(scr.Program)
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(machine.Word(10), result)
}

func TestLoad_Make(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	scr, err := load(t,
		"a = make('OpConstant', 65534)",
		"b = make(OpConstant, 1)",
		"c = OpConstant",
	)
	require.NoError(err)

	assert.Equal([]code.Instructions{
		{byte(code.OP_CONSTANT), 0xff, 0xfe},
		{byte(code.OP_CONSTANT), 0x00, 0x01},
	}, scr.Instructions)
	assert.Equal(starlark.Bytes("\x00\xff\xfe"), scr.Globals["a"])
	assert.Equal(starlark.MakeInt(0), scr.Globals["c"])
	assert.Nil(scr.Globals["OpConstant"])
}

func TestLoad_MakeErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		line string
		err  error
	}){
		{"undefined", "make(0x7f, 1)", code.ErrUndefinedOpcode(0x7f)},
		{"name", "make('OpMissing')", code.ErrOpcodeName("OpMissing")},
		{"count", "make(OpConstant)", code.ErrOperandCount{}},
		{"extra", "make(OpConstant, 1, 2)", code.ErrOperandCount{}},
		{"range", "make(OpConstant, 65536)", code.ErrOperandRange{}},
		{"tag", "make(256, 1)", ErrOpcodeTag},
		{"type", "make([], 1)", ErrOpcodeType},
		{"operand", "make(OpConstant, 'x')", ErrOperand},
	}

	for _, entry := range table {
		scr, err := load(t, entry.line)
		assert.Nil(scr, entry.name)
		assert.True(errors.Is(err, entry.err), "%v: %v", entry.name, err)
	}
}

func TestLoad_PushErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := load(t, "push(-1)")
	assert.True(errors.Is(err, ErrPushRange))

	_, err = load(t, "push()")
	assert.Error(err)

	_, err = load(t, "add(1)")
	assert.Error(err)
}

func TestLoad_Syntax(t *testing.T) {
	assert := assert.New(t)

	scr, err := load(t, "push(")
	assert.Nil(scr)
	assert.Error(err)
}

func TestLoad_Print(t *testing.T) {
	assert := assert.New(t)

	core, logs := observer.New(zap.InfoLevel)
	ld := &Loader{Logger: zap.New(core)}

	_, err := ld.Load("print.star", "print('hello')\n")
	assert.NoError(err)

	entries := logs.FilterMessage("hello").All()
	if assert.Equal(1, len(entries)) {
		assert.Equal("script", entries[0].LoggerName)
	}
}
