package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg = nil
	cfgPath = ""
	logLevel = "warn"
	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEstimateText(t *testing.T) {
	out, err := execute(t, "estimate", "--current", "10", "--required", "80", "--capacity", "42", "--hours", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "To be charged:  29.40 kWh")
	assert.Contains(t, out, "Charging speed: 4.90 kW")
	assert.Contains(t, out, "Charging time:  6.00 h")
}

func TestEstimateWindowJSON(t *testing.T) {
	out, err := execute(t, "estimate", "--current", "10", "--required", "80", "--capacity", "42",
		"--start", "22:00", "--stop", "06:00", "-o", "json")
	require.NoError(t, err)

	var got estimateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 8.0, got.DurationHours)
	assert.Equal(t, "3.67 kW", got.Display.Power)
}

func TestEstimateUnreadableYAML(t *testing.T) {
	out, err := execute(t, "estimate", "--current", "10", "--required", "80", "--capacity", "?", "--hours", "6", "-o", "yaml")
	require.NoError(t, err)

	var got estimateOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Zero(t, got.EnergyToDeliverKWh)
	assert.Equal(t, "0.00 kW", got.Display.Power)
}

func TestEstimateCapacityFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vehicle:\n  capacity_kwh: 42\n"), 0o644))

	out, err := execute(t, "--config", path, "estimate", "--current", "10", "--required", "80", "--hours", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "29.40 kWh")
}

func TestEstimateBadOutput(t *testing.T) {
	_, err := execute(t, "estimate", "-o", "xml")
	assert.Error(t, err)
}

func TestWindowCommand(t *testing.T) {
	out, err := execute(t, "window", "--start", "08:00", "--stop", "10:00")
	require.NoError(t, err)
	assert.Equal(t, "2.00 h\n", out)

	_, err = execute(t, "window", "--start", "08:00", "--stop", "ten")
	assert.Error(t, err)
}

func TestSweepCommand(t *testing.T) {
	out, err := execute(t, "sweep", "--current", "10", "--required", "80", "--capacity", "42", "--hours-list", "6")
	require.NoError(t, err)
	assert.Equal(t, "index,hours,energy_to_deliver_kwh,average_power_kw,direction\n0,6.00,29.40,4.90,CHARGING\n", out)

	path := filepath.Join(t.TempDir(), "results", "sweep.csv")
	_, err = execute(t, "sweep", "--current", "10", "--required", "80", "--capacity", "42", "--hours-list", "1,2", "--out", path)
	require.NoError(t, err)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "1,2.00,29.40,14.70,CHARGING")
}
