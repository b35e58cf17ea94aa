// Package drive implements single-stage mechanical drive kinematics: from input
// power, input speed and transmission ratio it derives input torque, output
// speed and output torque.
//
// Overview
//
//   - Calculate(Input) (Result, error)
//
//     Pure and stateless; safe to call from any number of goroutines.
//     Identical inputs always yield bit-identical results.
//
//   - ParseInput(power, speed, ratio string) (Input, error)
//
//     Boundary from user text. Empty fields are ErrMissingInput, anything that
//     is not a plain finite decimal is ErrInvalidNumeric.
//
//   - Static tables:
//     DriveTypes(), Lookup(id), ParseDriveType(s) and Formulas() expose the
//     reference data. Efficiency is reference data only; it is not applied
//     to the output torque.
//
//   - Errors (errs.go):
//     ErrMissingInput, ErrInvalidNumeric, ErrDivisionByZero and ErrUnknownDrive
//     all wrap ErrInvalidInput. Every returned error is an *InputError naming
//     the offending field(s).
//
// # Units
//
// Power is in kW, speeds in rpm, torques in N·m. Results carry full float64
// precision; rounding to two decimals happens only when a quantity is
// rendered (see pkg/types).
//
// # Example
//
//	in, err := drive.ParseInput("1.5", "1500", "3.5")
//	if err != nil { ... }
//	res, err := drive.Calculate(in)
//	fmt.Println(res.InputTorque, res.OutputSpeed, res.OutputTorque)
//	// 9.55 N·m 428.57 rpm 33.42 N·m
package drive
