package drive

import (
	"math"
	"strconv"
	"strings"

	"github.com/ja7ad/kinema/pkg/types"
)

// Calculate maps one Input to its Result:
//
//	M_in  = 9549 * P / n
//	n_out = n / i
//	M_out = M_in * i
//
// It never returns Inf or NaN: non-finite inputs fail with ErrInvalidNumeric,
// a zero speed or ratio with ErrDivisionByZero. Negative ratios are accepted.
// Nothing is rounded.
func Calculate(in Input) (Result, error) {
	for _, f := range [...]struct {
		name string
		v    float64
	}{{FieldPower, in.Power}, {FieldSpeed, in.Speed}, {FieldRatio, in.Ratio}} {
		if !finite(f.v) {
			return Result{}, inputErr(ErrInvalidNumeric, strconv.FormatFloat(f.v, 'g', -1, 64), f.name)
		}
	}

	var zero []string
	if in.Speed == 0 {
		zero = append(zero, FieldSpeed)
	}
	if in.Ratio == 0 {
		zero = append(zero, FieldRatio)
	}
	if len(zero) > 0 {
		return Result{}, inputErr(ErrDivisionByZero, "", zero...)
	}

	mIn := TorqueConstant * in.Power / in.Speed
	nOut := in.Speed / in.Ratio
	mOut := mIn * in.Ratio

	// finite inputs can still overflow a quotient or product
	switch {
	case !finite(mIn):
		return Result{}, inputErr(ErrOverflow, "input torque", FieldPower, FieldSpeed)
	case !finite(nOut):
		return Result{}, inputErr(ErrOverflow, "output speed", FieldSpeed, FieldRatio)
	case !finite(mOut):
		return Result{}, inputErr(ErrOverflow, "output torque", FieldPower, FieldSpeed, FieldRatio)
	}

	return Result{
		InputTorque:  types.Torque(mIn),
		OutputSpeed:  types.Speed(nOut),
		OutputTorque: types.Torque(mOut),
	}, nil
}

// ParseInput builds an Input from user-entered text. Empty fields are reported
// together as ErrMissingInput; anything that is not a plain finite decimal
// number is ErrInvalidNumeric.
func ParseInput(power, speed, ratio string) (Input, error) {
	raw := [...]struct {
		name string
		s    string
	}{
		{FieldPower, strings.TrimSpace(power)},
		{FieldSpeed, strings.TrimSpace(speed)},
		{FieldRatio, strings.TrimSpace(ratio)},
	}

	var missing []string
	for _, r := range raw {
		if r.s == "" {
			missing = append(missing, r.name)
		}
	}
	if len(missing) > 0 {
		return Input{}, inputErr(ErrMissingInput, "", missing...)
	}

	var vals [3]float64
	for i, r := range raw {
		v, err := parseNumber(r.s)
		if err != nil {
			return Input{}, inputErr(ErrInvalidNumeric, r.s, r.name)
		}
		vals[i] = v
	}

	return Input{Power: vals[0], Speed: vals[1], Ratio: vals[2]}, nil
}

// ParseDriveType resolves s (case-insensitive). An empty string is "no
// selection" and returns ok=false with a nil error.
func ParseDriveType(s string) (Descriptor, bool, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Descriptor{}, false, nil
	}
	d, ok := Lookup(Type(s))
	if !ok {
		return Descriptor{}, false, inputErr(ErrUnknownDrive, s, FieldDrive)
	}
	return d, true, nil
}

func parseNumber(s string) (float64, error) {
	// strconv accepts hex floats, underscores, "inf" and "nan"; a form field
	// should only take plain decimals.
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c == '.', c == '-', c == '+', c == 'e', c == 'E':
		default:
			return 0, strconv.ErrSyntax
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if !finite(v) {
		return 0, strconv.ErrRange
	}
	// ParseFloat silently underflows "1e-400" to 0
	if v == 0 && nonZeroMantissa(s) {
		return 0, strconv.ErrRange
	}
	return v, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func nonZeroMantissa(s string) bool {
	for _, c := range s {
		if c == 'e' || c == 'E' {
			return false
		}
		if c >= '1' && c <= '9' {
			return true
		}
	}
	return false
}
