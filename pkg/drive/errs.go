package drive

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput is the parent of every input rejection below.
	ErrInvalidInput = errors.New("drive: invalid input")

	// ErrMissingInput indicates that one or more of power/speed/ratio is empty.
	ErrMissingInput = fmt.Errorf("%w: missing value", ErrInvalidInput)

	// ErrInvalidNumeric indicates a value that is not a finite number.
	ErrInvalidNumeric = fmt.Errorf("%w: not a finite number", ErrInvalidInput)

	// ErrOverflow indicates finite inputs whose result is not representable.
	// It is a kind of ErrInvalidNumeric.
	ErrOverflow = fmt.Errorf("%w: result overflows", ErrInvalidNumeric)

	// ErrDivisionByZero indicates speed == 0 or ratio == 0.
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrInvalidInput)

	// ErrUnknownDrive indicates a drive type outside belt/chain/gear/worm.
	ErrUnknownDrive = fmt.Errorf("%w: unknown drive type", ErrInvalidInput)
)

// Field names as they appear in InputError.
const (
	FieldPower = "power"
	FieldSpeed = "speed"
	FieldRatio = "ratio"
	FieldDrive = "drive"
)

// InputError reports which field(s) caused a rejection. Kind is one of the
// sentinel errors above.
type InputError struct {
	Fields []string
	Value  string
	Kind   error
}

func (e *InputError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if len(e.Fields) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(e.Fields, ", "))
		b.WriteString(")")
	}
	if e.Value != "" {
		fmt.Fprintf(&b, ": %q", e.Value)
	}
	return b.String()
}

func (e *InputError) Unwrap() error { return e.Kind }

// Field returns the first offending field, or "".
func (e *InputError) Field() string {
	if len(e.Fields) == 0 {
		return ""
	}
	return e.Fields[0]
}

func inputErr(kind error, value string, fields ...string) *InputError {
	return &InputError{Fields: fields, Value: value, Kind: kind}
}
