package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"ev-charge-estimator/internal/window"
)

// EnvPrefix marks environment overrides, e.g. EVCHARGE_SERVER__PORT=9090.
const EnvPrefix = "EVCHARGE_"

// Config is the on-disk configuration shape (YAML or JSON).
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	// Optional: load vehicle parameters from a separate YAML file.
	// If both VehicleFile and Vehicle are provided, Vehicle overrides VehicleFile.
	VehicleFile string         `yaml:"vehicle_file"`
	Vehicle     VehicleConfig  `yaml:"vehicle"`
	Estimate    EstimateConfig `yaml:"estimate"`
}

type ServerConfig struct {
	Port            int           `yaml:"port"`
	Env             string        `yaml:"env"`
	CORSOrigins     []string      `yaml:"cors_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json | console
}

// VehicleConfig is the vehicle used when a request leaves the capacity out.
type VehicleConfig struct {
	Name        string  `yaml:"name"`
	CapacityKWh float64 `yaml:"capacity_kwh"`
}

type EstimateConfig struct {
	DefaultStop      string    `yaml:"default_stop"` // "HH:MM"
	QuickSelectHours []float64 `yaml:"quick_select_hours"`
	SweepHours       []float64 `yaml:"sweep_hours"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			Env:             "development",
			CORSOrigins:     []string{"*"},
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{Level: "info", Format: "json"},
		Estimate: EstimateConfig{
			DefaultStop:      window.DefaultStop.String(),
			QuickSelectHours: append([]float64(nil), window.DefaultQuickSelectHours...),
			SweepHours:       []float64{1, 2, 4, 6, 8, 10, 12},
		},
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads the file (if any), applies env overrides and merges the vehicle
// file, but does not validate. An empty path means env overrides only.
func LoadUnchecked(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	var c Config
	if err := k.UnmarshalWithConf("", &c, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, err
	}

	if c.VehicleFile != "" {
		vehiclePath := c.VehicleFile
		if !filepath.IsAbs(vehiclePath) && path != "" {
			// Prefer paths relative to the config file, fall back to cwd.
			cand := filepath.Join(filepath.Dir(path), vehiclePath)
			if _, err := os.Stat(cand); err == nil {
				vehiclePath = cand
			}
		}
		loaded, err := loadVehicleFile(vehiclePath)
		if err != nil {
			return nil, fmt.Errorf("vehicle file: %w", err)
		}
		c.Vehicle = MergeVehicle(loaded, c.Vehicle)
	}
	return &c, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
}

// SetDefaults fills every field left empty by the file and the environment.
func (c *Config) SetDefaults() {
	d := Default()
	if c.Server.Port == 0 {
		c.Server.Port = d.Server.Port
	}
	if c.Server.Env == "" {
		c.Server.Env = d.Server.Env
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = d.Server.ShutdownTimeout
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = d.Server.CORSOrigins
	}
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = d.Logging.Format
	}
	if strings.TrimSpace(c.Estimate.DefaultStop) == "" {
		c.Estimate.DefaultStop = d.Estimate.DefaultStop
	}
	if len(c.Estimate.QuickSelectHours) == 0 {
		c.Estimate.QuickSelectHours = d.Estimate.QuickSelectHours
	}
	if len(c.Estimate.SweepHours) == 0 {
		c.Estimate.SweepHours = d.Estimate.SweepHours
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	if c.Vehicle.CapacityKWh < 0 {
		return errors.New("vehicle.capacity_kwh must be >= 0")
	}
	if _, err := c.Estimate.StopTimeOfDay(); err != nil {
		return fmt.Errorf("estimate.default_stop: %w", err)
	}
	for _, h := range c.Estimate.QuickSelectHours {
		if h <= 0 {
			return errors.New("estimate.quick_select_hours must all be > 0")
		}
	}
	return nil
}

func (e EstimateConfig) StopTimeOfDay() (window.TimeOfDay, error) {
	return window.ParseTimeOfDay(e.DefaultStop)
}

type vehicleFileWrapper struct {
	Vehicle VehicleConfig `yaml:"vehicle"`
}

func loadVehicleFile(path string) (VehicleConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return VehicleConfig{}, err
	}
	var w vehicleFileWrapper
	if err := yamlv3.Unmarshal(raw, &w); err != nil {
		return VehicleConfig{}, err
	}
	return w.Vehicle, nil
}

// MergeVehicle overlays non-zero fields from override onto base.
func MergeVehicle(base, override VehicleConfig) VehicleConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.CapacityKWh != 0 {
		out.CapacityKWh = override.CapacityKWh
	}
	return out
}
