package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/ja7ad/kinema/pkg/drive"
	"github.com/ja7ad/kinema/pkg/form"
	"github.com/ja7ad/kinema/pkg/types"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}

// Table prints the inputs and results of o as an aligned two-column table.
func Table(w io.Writer, o form.Outcome) error {
	tw := newTable(w)

	fmt.Fprintln(tw, bold("Parameters"))
	fmt.Fprintf(tw, "  Drive type\t%s\n", driveLabel(o.Drive))
	if o.Drive != nil {
		fmt.Fprintf(tw, "  Efficiency\t%s\n", o.Drive.Efficiency.Percent())
	}
	fmt.Fprintf(tw, "  Power\t%s\n", types.Power(o.Input.Power))
	fmt.Fprintf(tw, "  Input speed\t%s\n", types.Speed(o.Input.Speed))
	fmt.Fprintf(tw, "  Ratio\t%s\n", types.Ratio(o.Input.Ratio))
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, bold("Results"))
	fmt.Fprintf(tw, "  Input torque\t%s\n", bold("%s", o.Result.InputTorque))
	fmt.Fprintf(tw, "  Output speed\t%s\n", bold("%s", o.Result.OutputSpeed))
	fmt.Fprintf(tw, "  Output torque\t%s\n", bold("%s", o.Result.OutputTorque))

	return tw.Flush()
}

// Line prints o as a single comma-separated line, for non-tty use.
func Line(w io.Writer, o form.Outcome) error {
	r := NewRow(time.Time{}, o)
	_, err := fmt.Fprintf(w, "%s, %s, %s, %s, %s, %s, %s\n",
		nonEmpty(r.Drive), types.Fixed2(r.PowerKW), types.Fixed2(r.SpeedRPM), types.Fixed2(r.Ratio),
		r.InputTorque, r.OutputSpeed, r.OutputTorque)
	return err
}

// Drives prints the drive type reference table.
func Drives(w io.Writer) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tDRIVE\tEFFICIENCY\tPROPERTIES")
	fmt.Fprintln(tw, "--\t-----\t----------\t----------")
	for _, d := range drive.DriveTypes() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.ID, d.DisplayName, d.Efficiency.Percent(), d.Description)
	}
	return tw.Flush()
}

// Formulas prints the formula reference table.
func Formulas(w io.Writer) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "NAME\tFORMULA\tUNITS")
	fmt.Fprintln(tw, "----\t-------\t-----")
	for _, f := range drive.Formulas() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Name, f.Expression, f.Units)
	}
	return tw.Flush()
}

// Notation prints the symbol glossary.
func Notation(w io.Writer) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "SYMBOL\tMEANING\tUNITS")
	fmt.Fprintln(tw, "------\t-------\t-----")
	for _, n := range drive.Notation() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", n.Symbol, n.Meaning, n.Units)
	}
	return tw.Flush()
}

// Guide prints the numbered usage steps followed by the notation glossary.
func Guide(w io.Writer) error {
	fmt.Fprintln(w, bold("How to use the calculator"))
	for i, s := range drive.UsageSteps() {
		fmt.Fprintf(w, "  %d. %s\n", i+1, s)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, bold("Notation"))
	return Notation(w)
}

func nonEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
