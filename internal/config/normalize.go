package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeDevice()
	if err := c.normalizeSession(); err != nil {
		return err
	}
	c.normalizeListen()
	return c.normalizeLogging()
}

func (c *Config) normalizeDevice() {
	c.Device.Address = strings.TrimSpace(c.Device.Address)
	if c.Device.Address == "" {
		if value, ok := os.LookupEnv(AddressEnv); ok {
			c.Device.Address = strings.TrimSpace(value)
		}
	}
}

func (c *Config) normalizeSession() error {
	c.Session.Bind = strings.TrimSpace(c.Session.Bind)
	if c.Session.Bind == "" {
		c.Session.Bind = defaultBind
	}
	if c.Session.MaxFrameSize == 0 {
		c.Session.MaxFrameSize = defaultMaxFrameSize
	}
	c.Session.ReplyTimeout = strings.TrimSpace(c.Session.ReplyTimeout)
	var err error
	if c.Session.LockDir, err = expandPath(strings.TrimSpace(c.Session.LockDir)); err != nil {
		return fmt.Errorf("session.lock_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeListen() {
	c.Listen.OnDecodeError = strings.ToLower(strings.TrimSpace(c.Listen.OnDecodeError))
	if c.Listen.OnDecodeError == "" {
		c.Listen.OnDecodeError = defaultOnDecodeError
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}
