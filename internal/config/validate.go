package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"akari/internal/wire"
)

const maxDatagramSize = 65535

// Validate ensures the configuration is usable. It does not require a device
// address; commands that talk to the device call RequireDevice.
func (c *Config) Validate() error {
	if err := c.validateSession(); err != nil {
		return err
	}
	if err := c.validateListen(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if c.Device.Address != "" {
		return c.RequireDevice()
	}
	return nil
}

// RequireDevice reports an error unless a host:port device address is set.
func (c *Config) RequireDevice() error {
	address := strings.TrimSpace(c.Device.Address)
	if address == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/akari/config.toml"
		}
		return fmt.Errorf("device.address is required. Set %s, pass --address, or edit %s (create with 'akari config init')", AddressEnv, defaultPath)
	}
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("device.address %q must be host:port: %w", address, err)
	}
	if host == "" || port == "" {
		return fmt.Errorf("device.address %q must name both host and port", address)
	}
	return nil
}

func (c *Config) validateSession() error {
	if _, _, err := net.SplitHostPort(c.Session.Bind); err != nil {
		return fmt.Errorf("session.bind %q must be host:port: %w", c.Session.Bind, err)
	}
	if c.Session.MaxFrameSize < wire.MaxResponseSize || c.Session.MaxFrameSize > maxDatagramSize {
		return fmt.Errorf("session.max_frame_size must be between %d and %d", wire.MaxResponseSize, maxDatagramSize)
	}
	if c.Session.ReplyTimeout != "" {
		d, err := time.ParseDuration(c.Session.ReplyTimeout)
		if err != nil {
			return fmt.Errorf("session.reply_timeout: %w", err)
		}
		if d < 0 {
			return errors.New("session.reply_timeout must not be negative")
		}
	}
	return nil
}

func (c *Config) validateListen() error {
	switch c.Listen.OnDecodeError {
	case DecodeErrorFail, DecodeErrorSkip:
		return nil
	default:
		return fmt.Errorf("listen.on_decode_error must be %q or %q, got %q", DecodeErrorFail, DecodeErrorSkip, c.Listen.OnDecodeError)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
