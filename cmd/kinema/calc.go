package main

import (
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ja7ad/kinema/pkg/drive"
	"github.com/ja7ad/kinema/pkg/form"
	"github.com/ja7ad/kinema/pkg/report"
)

type calcOpts struct {
	power, speed, ratio string
	drive               string
	pretty              bool

	csvPath  string
	jsonPath string
	htmlPath string
}

func NewCalcCommand() *cobra.Command {
	var o calcOpts

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate input torque, output speed and output torque",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("pretty") {
				o.pretty = conf.IsPretty()
			}
			if !cmd.Flags().Changed("drive") {
				o.drive = string(conf.DriveType())
			}
			return runCalc(cmd, o)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.power, "power", "p", "", "input power, kW")
	f.StringVarP(&o.speed, "speed", "n", "", "input speed, rpm")
	f.StringVarP(&o.ratio, "ratio", "i", "", "transmission ratio n_in/n_out")
	f.StringVarP(&o.drive, "drive", "d", "", "drive type (belt, chain, gear, worm)")
	f.BoolVar(&o.pretty, "pretty", true, "format output as a table instead of a CSV-like line")
	f.StringVar(&o.csvPath, "csv", "", "write the result to a CSV file")
	f.StringVar(&o.jsonPath, "json", "", "write the result to a JSON file")
	f.StringVar(&o.htmlPath, "html", "", "write the result and reference tables to an HTML file")

	_ = cmd.RegisterFlagCompletionFunc("drive", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return validDrives(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runCalc(cmd *cobra.Command, o calcOpts) error {
	ctl := form.New("")
	ctl.SetPower(o.power)
	ctl.SetSpeed(o.speed)
	ctl.SetRatio(o.ratio)
	ctl.SetDrive(o.drive)

	out, err := ctl.Submit()
	if err != nil {
		if errors.Is(err, form.ErrNotReady) {
			_ = cmd.Usage()
		}
		return err
	}

	w := cmd.OutOrStdout()
	if o.pretty {
		err = report.Table(w, out)
	} else {
		err = report.Line(w, out)
	}
	if err != nil {
		return err
	}

	row := report.NewRow(time.Now(), out)
	for _, e := range []struct {
		path string
		fn   func(io.Writer, ...report.Row) error
	}{
		{o.csvPath, report.WriteCSV},
		{o.jsonPath, report.WriteJSON},
		{o.htmlPath, report.WriteHTML},
	} {
		if e.path == "" {
			continue
		}
		if err := report.WriteFile(e.path, e.fn, row); err != nil {
			return err
		}
		logrus.WithField("path", e.path).Info("report written")
	}

	logrus.WithFields(logrus.Fields{
		"drive":        o.drive,
		"inputTorque":  float64(out.Result.InputTorque),
		"outputSpeed":  float64(out.Result.OutputSpeed),
		"outputTorque": float64(out.Result.OutputTorque),
	}).Debug("calculated")
	return nil
}

func NewDrivesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "drives",
		Short: "List drive types and their efficiency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := loadConfig(cmd); err != nil {
				return err
			}
			return report.Drives(cmd.OutOrStdout())
		},
	}
}

func NewFormulasCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formulas",
		Short: "List reference formulas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := loadConfig(cmd); err != nil {
				return err
			}
			return report.Formulas(cmd.OutOrStdout())
		},
	}
}

func NewNotationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "notation",
		Short: "Show the usage guide and symbol glossary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := loadConfig(cmd); err != nil {
				return err
			}
			return report.Guide(cmd.OutOrStdout())
		},
	}
}

// validDrives is used for shell completion of --drive.
func validDrives() []string {
	ds := drive.DriveTypes()
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, string(d.ID))
	}
	return out
}
