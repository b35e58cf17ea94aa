package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja7ad/kinema/pkg/drive"
)

func fill(c *Controller, p, n, i string) {
	c.SetPower(p)
	c.SetSpeed(n)
	c.SetRatio(i)
}

func TestController_NoResultYet(t *testing.T) {
	c := New("")
	_, ok := c.Result()
	assert.False(t, ok)
	assert.False(t, c.Ready())

	_, err := c.Submit()
	require.ErrorIs(t, err, ErrNotReady)
	_, ok = c.Result()
	assert.False(t, ok, "a not-ready submit must not produce a result")
}

func TestController_ReadyRequiresAllThree(t *testing.T) {
	c := New("")
	c.SetPower("1.5")
	assert.False(t, c.Ready())
	c.SetSpeed("1500")
	assert.False(t, c.Ready())
	c.SetRatio("   ")
	assert.False(t, c.Ready(), "whitespace is not a value")
	c.SetRatio("3.5")
	assert.True(t, c.Ready())
}

func TestController_SubmitStoresOutcome(t *testing.T) {
	c := New(drive.Gear)
	fill(c, "1.5", "1500", "3.5")

	out, err := c.Submit()
	require.NoError(t, err)
	require.NotNil(t, out.Drive)
	assert.Equal(t, drive.Gear, out.Drive.ID)
	assert.InDelta(t, 9.549, float64(out.Result.InputTorque), 1e-9)

	got, ok := c.Result()
	require.True(t, ok)
	assert.Equal(t, out, got)
}

func TestController_FailureKeepsPreviousOutcome(t *testing.T) {
	c := New("")
	fill(c, "10", "1000", "2")
	first, err := c.Submit()
	require.NoError(t, err)
	assert.Nil(t, first.Drive)

	c.SetSpeed("0")
	_, err = c.Submit()
	require.ErrorIs(t, err, drive.ErrDivisionByZero)

	c.SetSpeed("fast")
	_, err = c.Submit()
	require.ErrorIs(t, err, drive.ErrInvalidNumeric)

	c.SetSpeed("1000")
	c.SetDrive("rope")
	_, err = c.Submit()
	require.ErrorIs(t, err, drive.ErrUnknownDrive)

	got, ok := c.Result()
	require.True(t, ok)
	assert.Equal(t, first, got)
}

func TestController_NextSubmitReplaces(t *testing.T) {
	c := New("")
	fill(c, "10", "1000", "2")
	_, err := c.Submit()
	require.NoError(t, err)

	c.SetRatio("4")
	c.SetDrive("chain")
	out, err := c.Submit()
	require.NoError(t, err)
	assert.InDelta(t, 250.0, float64(out.Result.OutputSpeed), 1e-9)
	assert.Equal(t, drive.Chain, out.Drive.ID)

	got, _ := c.Result()
	assert.Equal(t, out, got)
}

func TestController_Reset(t *testing.T) {
	c := New(drive.Belt)
	fill(c, "10", "1000", "2")
	_, err := c.Submit()
	require.NoError(t, err)

	c.Reset()
	_, ok := c.Result()
	assert.False(t, ok)
	assert.False(t, c.Ready())
}

func TestController_ResetRestoresDefaultDrive(t *testing.T) {
	c := New(drive.Worm)
	c.SetDrive("belt")
	fill(c, "10", "1000", "2")
	_, err := c.Submit()
	require.NoError(t, err)

	c.Reset()
	fill(c, "10", "1000", "2")
	out, err := c.Submit()
	require.NoError(t, err)
	require.NotNil(t, out.Drive)
	assert.Equal(t, drive.Worm, out.Drive.ID)
}

func TestController_ResetWithoutDefault(t *testing.T) {
	c := New("")
	c.SetDrive("gear")
	c.Reset()
	fill(c, "10", "1000", "2")
	out, err := c.Submit()
	require.NoError(t, err)
	assert.Nil(t, out.Drive)
}
