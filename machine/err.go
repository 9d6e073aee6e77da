package machine

import (
	"errors"

	"github.com/ezrec/opvm/translate"
)

var f = translate.From

var (
	ErrStackUnderflow = errors.New(f("stack underflow"))
	ErrOpInvalid      = errors.New(f("operation invalid"))
)

// ErrRuntime indicates the program location of a runtime error.
type ErrRuntime struct {
	Index int
	Op    Op
	Err   error
}

func (err *ErrRuntime) Error() string {
	return f("op %d '%v' %v", err.Index, err.Op.String(), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
