package form

import (
	"errors"
	"strings"

	"github.com/ja7ad/kinema/pkg/drive"
)

// ErrNotReady is returned by Submit while any of the three fields is empty.
// It is the equivalent of a disabled "calculate" button: nothing happens.
var ErrNotReady = errors.New("form: power, speed and ratio are required")

// Outcome is what the controller holds after a successful Submit.
type Outcome struct {
	Input  drive.Input
	Drive  *drive.Descriptor // nil when no drive type was selected
	Result drive.Result
}

// Controller owns the state of one calculator form: the raw text of the three
// numeric fields, the optional drive selection, and the last outcome.
// It is not safe for concurrent use.
type Controller struct {
	power, speed, ratio string
	driveType           string
	defaultDrive        drive.Type

	last *Outcome
}

// New returns an empty controller, optionally preselecting a drive type.
func New(defaultDrive drive.Type) *Controller {
	return &Controller{driveType: string(defaultDrive), defaultDrive: defaultDrive}
}

func (c *Controller) SetPower(s string) { c.power = s }
func (c *Controller) SetSpeed(s string) { c.speed = s }
func (c *Controller) SetRatio(s string) { c.ratio = s }

// SetDrive selects a drive type by id; "" clears the selection. The value is
// validated on Submit.
func (c *Controller) SetDrive(s string) { c.driveType = s }

// Ready reports whether all three numeric fields hold some text.
func (c *Controller) Ready() bool {
	return strings.TrimSpace(c.power) != "" &&
		strings.TrimSpace(c.speed) != "" &&
		strings.TrimSpace(c.ratio) != ""
}

// Submit parses the fields and runs the engine. On success the new outcome
// replaces the previous one; on any error the previous outcome is kept.
func (c *Controller) Submit() (Outcome, error) {
	if !c.Ready() {
		return Outcome{}, ErrNotReady
	}

	desc, selected, err := drive.ParseDriveType(c.driveType)
	if err != nil {
		return Outcome{}, err
	}

	in, err := drive.ParseInput(c.power, c.speed, c.ratio)
	if err != nil {
		return Outcome{}, err
	}

	res, err := drive.Calculate(in)
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{Input: in, Result: res}
	if selected {
		out.Drive = &desc
	}
	c.last = &out
	return out, nil
}

// Result returns the last successful outcome; ok is false until the first one.
func (c *Controller) Result() (Outcome, bool) {
	if c.last == nil {
		return Outcome{}, false
	}
	return *c.last, true
}

// Reset clears all fields and the stored outcome. The drive selection goes
// back to the default given to New.
func (c *Controller) Reset() {
	*c = Controller{driveType: string(c.defaultDrive), defaultDrive: c.defaultDrive}
}
