package report

import (
	"time"

	"github.com/ja7ad/kinema/pkg/drive"
	"github.com/ja7ad/kinema/pkg/form"
	"github.com/ja7ad/kinema/pkg/types"
)

// Row is the flat, serialisable form of one calculation. Every result is
// present twice: the display string (two decimals) and the raw value.
type Row struct {
	At         time.Time `json:"time"`
	Drive      string    `json:"drive,omitempty"`
	Efficiency float64   `json:"efficiency,omitempty"`

	PowerKW  float64 `json:"power_kw"`
	SpeedRPM float64 `json:"speed_rpm"`
	Ratio    float64 `json:"ratio"`

	InputTorque  string `json:"input_torque"`
	OutputSpeed  string `json:"output_speed"`
	OutputTorque string `json:"output_torque"`

	InputTorqueNm  float64 `json:"input_torque_nm"`
	OutputSpeedRPM float64 `json:"output_speed_rpm"`
	OutputTorqueNm float64 `json:"output_torque_nm"`
}

// NewRow flattens an outcome stamped with at.
func NewRow(at time.Time, o form.Outcome) Row {
	r := Row{
		At:             at,
		PowerKW:        o.Input.Power,
		SpeedRPM:       o.Input.Speed,
		Ratio:          o.Input.Ratio,
		InputTorque:    types.Fixed2(float64(o.Result.InputTorque)),
		OutputSpeed:    types.Fixed2(float64(o.Result.OutputSpeed)),
		OutputTorque:   types.Fixed2(float64(o.Result.OutputTorque)),
		InputTorqueNm:  float64(o.Result.InputTorque),
		OutputSpeedRPM: float64(o.Result.OutputSpeed),
		OutputTorqueNm: float64(o.Result.OutputTorque),
	}
	if o.Drive != nil {
		r.Drive = string(o.Drive.ID)
		r.Efficiency = float64(o.Drive.Efficiency)
	}
	return r
}

// driveLabel is the display name of the selected drive, or "-".
func driveLabel(d *drive.Descriptor) string {
	if d == nil {
		return "-"
	}
	return d.DisplayName
}
