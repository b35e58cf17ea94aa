package types

import "fmt"

// Unit suffixes used by every rendered quantity.
const (
	UnitTorque = "N·m"
	UnitSpeed  = "rpm"
	UnitPower  = "kW"
)

// Torque is a rotational moment in newton-metres.
type Torque float64

// Speed is a rotational speed in revolutions per minute.
type Speed float64

// Power is a power in kilowatts.
type Power float64

// Ratio is a dimensionless transmission ratio (n_in / n_out).
type Ratio float64

// Efficiency is the fraction of input power preserved through a stage, in (0,1].
type Efficiency float64

// String returns the torque with two decimals and its unit, e.g. "9.55 N·m".
func (t Torque) String() string { return Fixed2(float64(t)) + " " + UnitTorque }

// String returns the speed with two decimals and its unit, e.g. "428.57 rpm".
func (s Speed) String() string { return Fixed2(float64(s)) + " " + UnitSpeed }

// String returns the power with two decimals and its unit, e.g. "1.50 kW".
func (p Power) String() string { return Fixed2(float64(p)) + " " + UnitPower }

// String returns the ratio with two decimals and no unit.
func (r Ratio) String() string { return Fixed2(float64(r)) }

// Percent returns the efficiency as a whole percentage, e.g. "95%".
func (e Efficiency) Percent() string {
	return fmt.Sprintf("%.0f%%", float64(e)*100)
}

// Valid reports whether e lies in (0,1].
func (e Efficiency) Valid() bool { return e > 0 && e <= 1 }

// Fixed2 formats v with exactly two decimal digits. Negative zero
// renders as "0.00".
func Fixed2(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}
