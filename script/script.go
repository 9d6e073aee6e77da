// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package script builds opvm programs from Starlark source.
//
// A script calls push(n), add() and sub() to append operations to the
// machine program, and make(op, *operands) to encode an instruction. Every
// registered opcode is predeclared as an integer under its definition name.
package script

import (
	"errors"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
	"go.uber.org/zap"

	"github.com/ezrec/opvm/code"
	"github.com/ezrec/opvm/machine"
	"github.com/ezrec/opvm/translate"
)

var f = translate.From

var (
	ErrPushRange  = errors.New(f("push value out of range"))
	ErrOpcodeType = errors.New(f("opcode must be a name or tag"))
	ErrOpcodeTag  = errors.New(f("opcode tag out of range"))
	ErrOperand    = errors.New(f("operand must be an integer"))
)

// Script is the result of loading a script.
type Script struct {
	Program      machine.Program     // Operations added with push(), add() and sub().
	Instructions []code.Instructions // Instructions encoded with make().
	Globals      starlark.StringDict // Global values left by the script.
}

// Loader executes scripts.
type Loader struct {
	Logger *zap.Logger // Receives print() output. Defaults to zap.L().
}

// Load executes src, which may be a string, []byte or io.Reader.
// If src is nil, the file named by filename is read.
func (ld *Loader) Load(filename string, src any) (scr *Script, err error) {
	logger := ld.Logger
	if logger == nil {
		logger = zap.L()
	}
	logger = logger.Named("script")

	scr = &Script{}

	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			logger.Info(msg)
		},
	}
	opts := syntax.FileOptions{
		TopLevelControl: true,
		While:           true,
	}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, scr.predeclared())
	if err != nil {
		scr = nil
		return
	}

	scr.Globals = globals
	logger.Debug("loaded",
		zap.String("file", filename),
		zap.Stringer("program", scr.Program),
		zap.Int("instructions", len(scr.Instructions)),
	)

	return
}

// predeclared returns the builtins bound to scr.
func (scr *Script) predeclared() starlark.StringDict {
	pred := starlark.StringDict{
		"push": starlark.NewBuiltin("push", scr.push),
		"add":  starlark.NewBuiltin("add", scr.binary(machine.Add)),
		"sub":  starlark.NewBuiltin("sub", scr.binary(machine.Subtract)),
		"make": starlark.NewBuiltin("make", scr.make),
	}

	for op, def := range code.Definitions() {
		pred[def.Name] = starlark.MakeInt(int(op))
	}

	return pred
}

func (scr *Script) push(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var value starlark.Int
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &value)
	if err != nil {
		return nil, err
	}

	u64, ok := value.Uint64()
	if !ok {
		return nil, ErrPushRange
	}

	scr.Program = append(scr.Program, machine.Push(machine.Word(u64)))

	return starlark.None, nil
}

func (scr *Script) binary(op func() machine.Op) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0)
		if err != nil {
			return nil, err
		}

		scr.Program = append(scr.Program, op())

		return starlark.None, nil
	}
}

func (scr *Script) make(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) != 0 {
		return nil, errors.New(f("%v: unexpected keyword arguments", b.Name()))
	}
	if len(args) == 0 {
		return nil, errors.New(f("%v: missing opcode", b.Name()))
	}

	var op code.Opcode
	switch arg := args[0].(type) {
	case starlark.String:
		found, _, err := code.LookupName(string(arg))
		if err != nil {
			return nil, err
		}
		op = found
	case starlark.Int:
		tag, ok := arg.Int64()
		if !ok || tag < 0 || tag > 0xff {
			return nil, ErrOpcodeTag
		}
		op = code.Opcode(tag)
	default:
		return nil, ErrOpcodeType
	}

	operands := make([]int, 0, len(args)-1)
	for _, arg := range args[1:] {
		var value int
		err := starlark.AsInt(arg, &value)
		if err != nil {
			return nil, ErrOperand
		}
		operands = append(operands, value)
	}

	ins, err := code.Make(op, operands...)
	if err != nil {
		return nil, err
	}

	scr.Instructions = append(scr.Instructions, ins)

	return starlark.Bytes(ins), nil
}
