package config

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ja7ad/kinema/pkg/drive"
)

// Config is the on-disk configuration of kinema. Unset fields fall back to
// Default().
type Config struct {
	Listen       string `json:"listen,omitempty"`
	LogLevel     string `json:"logLevel,omitempty"`
	DefaultDrive string `json:"defaultDrive,omitempty"`
	Pretty       *bool  `json:"pretty,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	pretty := true
	return &Config{
		Listen:   "127.0.0.1:8549",
		LogLevel: "info",
		Pretty:   &pretty,
	}
}

// Load reads path and merges it over Default. A missing file is not an error.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logrus.WithField("path", path).Debug("config file not found, using defaults")
			return c, nil
		}
		return nil, pkgerrors.Wrapf(err, "failed to open config %s", path)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to read config %s", path)
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return c, nil
	}

	var fc Config
	if err := json.Unmarshal(raw, &fc); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to parse config %s", path)
	}
	c.merge(&fc)

	if err := c.Validate(); err != nil {
		return nil, pkgerrors.Wrapf(err, "invalid config %s", path)
	}
	return c, nil
}

func (c *Config) merge(o *Config) {
	if o.Listen != "" {
		c.Listen = o.Listen
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.DefaultDrive != "" {
		c.DefaultDrive = o.DefaultDrive
	}
	if o.Pretty != nil {
		v := *o.Pretty
		c.Pretty = &v
	}
}

// Validate checks every field that has a restricted domain.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return pkgerrors.Wrap(err, "logLevel")
	}
	if _, _, err := net.SplitHostPort(c.Listen); err != nil {
		return pkgerrors.Wrap(err, "listen")
	}
	if _, _, err := drive.ParseDriveType(c.DefaultDrive); err != nil {
		return pkgerrors.Wrap(err, "defaultDrive")
	}
	return nil
}

// DriveType returns the configured default drive type, "" if none.
func (c *Config) DriveType() drive.Type {
	return drive.Type(strings.ToLower(strings.TrimSpace(c.DefaultDrive)))
}

// IsPretty reports whether table output is enabled.
func (c *Config) IsPretty() bool {
	return c.Pretty == nil || *c.Pretty
}

// Save writes c to path through a temporary file in the same directory.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return pkgerrors.Wrap(err, "failed to marshal config")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return pkgerrors.Wrapf(err, "failed to create %s", dir)
	}
	tmp, err := os.CreateTemp(dir, ".kinema-*.json")
	if err != nil {
		return pkgerrors.Wrap(err, "failed to create temp config")
	}
	if _, err := tmp.Write(append(b, '\n')); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return pkgerrors.Wrap(err, "failed to write temp config")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return pkgerrors.Wrap(err, "failed to close temp config")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return pkgerrors.Wrapf(err, "failed to replace %s", path)
	}
	return nil
}

// LogrusFields returns the effective configuration as log fields.
func (c *Config) LogrusFields() logrus.Fields {
	return logrus.Fields{
		"listen":       c.Listen,
		"logLevel":     c.LogLevel,
		"defaultDrive": c.DefaultDrive,
		"pretty":       c.IsPretty(),
	}
}
