package nn

import (
	"errors"
	"fmt"
)

// Common errors returned by network operations.
var (
	// ErrEmptyInput indicates a nil or zero-row input matrix.
	ErrEmptyInput = errors.New("nn: empty input")

	// ErrLengthMismatch indicates that a label slice does not match the
	// number of input rows.
	ErrLengthMismatch = errors.New("nn: input and label lengths do not match")

	// ErrBadConfig indicates an invalid training configuration value.
	ErrBadConfig = errors.New("nn: invalid training configuration")
)

// ShapeError records an input whose dimensions do not match the network.
type ShapeError struct {
	Op   string // operation that rejected the input
	Want int    // expected number of columns
	Got  int    // actual number of columns
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("nn: %s: input has %d features, network expects %d", e.Op, e.Got, e.Want)
}

// LabelError records a class label outside the valid range [0, NumClasses).
type LabelError struct {
	Index      int // position of the offending label
	Label      int // the label value
	NumClasses int
}

func (e *LabelError) Error() string {
	return fmt.Sprintf("nn: label %d at index %d out of range [0, %d)", e.Label, e.Index, e.NumClasses)
}
