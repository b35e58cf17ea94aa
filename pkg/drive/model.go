package drive

import "github.com/ja7ad/kinema/pkg/types"

// TorqueConstant converts kW and rpm into N·m: 60000 / (2π) rounded to the
// customary textbook value.
const TorqueConstant = 9549.0

// Type identifies a kind of mechanical transmission.
type Type string

const (
	Belt  Type = "belt"
	Chain Type = "chain"
	Gear  Type = "gear"
	Worm  Type = "worm"
)

// Descriptor is the static reference data for one drive type.
// Efficiency is shown to the user only; it does not enter Calculate.
type Descriptor struct {
	ID          Type             `json:"id"`
	DisplayName string           `json:"displayName"`
	Efficiency  types.Efficiency `json:"efficiency"`
	Description string           `json:"description"`
}

// Formula is one row of the reference formula table.
type Formula struct {
	Name       string `json:"name"`
	Expression string `json:"expression"`
	Units      string `json:"units"`
}

// Input holds one calculation request.
// Units:
//   - Power: kW
//   - Speed: rpm (input shaft)
//   - Ratio: dimensionless, n_in / n_out; negative reverses rotation
type Input struct {
	Power float64 `json:"power"`
	Speed float64 `json:"speed"`
	Ratio float64 `json:"ratio"`
}

// Result is the full-precision output of Calculate.
type Result struct {
	InputTorque  types.Torque `json:"inputTorque"`  // N·m
	OutputSpeed  types.Speed  `json:"outputSpeed"`  // rpm
	OutputTorque types.Torque `json:"outputTorque"` // N·m
}

// Symbol is one row of the notation glossary.
type Symbol struct {
	Symbol  string `json:"symbol"`
	Meaning string `json:"meaning"`
	Units   string `json:"units"`
}

var _driveTypes = [...]Descriptor{
	{ID: Belt, DisplayName: "Belt drive", Efficiency: 0.95, Description: "Smooth operation, low cost, medium precision"},
	{ID: Chain, DisplayName: "Chain drive", Efficiency: 0.97, Description: "High reliability, constant transmission ratio"},
	{ID: Gear, DisplayName: "Gear drive", Efficiency: 0.98, Description: "High precision, compact, high efficiency"},
	{ID: Worm, DisplayName: "Worm drive", Efficiency: 0.85, Description: "Large transmission ratio, self-locking"},
}

var _formulas = [...]Formula{
	{Name: "Shaft torque", Expression: "M = 9549 × P / n", Units: "N·m"},
	{Name: "Transmission ratio", Expression: "i = n₁ / n₂", Units: "-"},
	{Name: "Peripheral speed", Expression: "v = π × d × n / 60000", Units: "m/s"},
	{Name: "Power", Expression: "P = M × ω / 1000", Units: "kW"},
}

var _notation = [...]Symbol{
	{Symbol: "P", Meaning: "power", Units: "kW"},
	{Symbol: "n", Meaning: "rotational speed", Units: "rpm"},
	{Symbol: "M", Meaning: "torque", Units: "N·m"},
	{Symbol: "i", Meaning: "transmission ratio", Units: "-"},
	{Symbol: "η", Meaning: "drive efficiency", Units: "-"},
	{Symbol: "ω", Meaning: "angular velocity", Units: "rad/s"},
}

var _usageSteps = [...]string{
	"Select a drive type (belt, chain, gear or worm); optional.",
	"Enter power (kW), input speed (rpm) and transmission ratio.",
	"Calculate to get input torque, output speed and output torque.",
}

// DriveTypes returns the four drive descriptors in display order.
// The returned slice is a copy.
func DriveTypes() []Descriptor {
	out := make([]Descriptor, len(_driveTypes))
	copy(out, _driveTypes[:])
	return out
}

// Formulas returns the reference formulas in display order.
// The returned slice is a copy.
func Formulas() []Formula {
	out := make([]Formula, len(_formulas))
	copy(out, _formulas[:])
	return out
}

// Lookup returns the descriptor for id.
func Lookup(id Type) (Descriptor, bool) {
	for _, d := range _driveTypes {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Notation returns the symbol glossary in display order.
// The returned slice is a copy.
func Notation() []Symbol {
	out := make([]Symbol, len(_notation))
	copy(out, _notation[:])
	return out
}

// UsageSteps returns the calculator usage guide, one step per entry.
func UsageSteps() []string {
	out := make([]string, len(_usageSteps))
	copy(out, _usageSteps[:])
	return out
}
