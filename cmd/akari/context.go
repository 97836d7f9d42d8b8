package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"akari/internal/config"
	"akari/internal/logging"
	"akari/internal/session"
)

type commandContext struct {
	configFlag  *string
	addressFlag *string
	verboseFlag *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, addressFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		addressFlag: addressFlag,
		verboseFlag: verboseFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.addressFlag != nil {
			if address := strings.TrimSpace(*c.addressFlag); address != "" {
				cfg.Device.Address = address
			}
		}
		if c.verbose() {
			cfg.Logging.Level = "debug"
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) verbose() bool {
	return c.verboseFlag != nil && *c.verboseFlag
}

func (c *commandContext) logger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.NewFromConfig(cfg)
}

// withSession opens a session against the configured device and hands it to
// fn together with the device address. A positive timeout overrides the
// configured reply timeout.
func (c *commandContext) withSession(ctx context.Context, timeout time.Duration, fn func(*session.Session, string) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if err := cfg.RequireDevice(); err != nil {
		return err
	}
	logger, err := c.logger()
	if err != nil {
		return err
	}
	if timeout <= 0 {
		timeout = cfg.ReplyTimeout()
	}

	s, err := session.Open(ctx, session.Options{
		Bind:         cfg.Session.Bind,
		MaxFrameSize: cfg.Session.MaxFrameSize,
		ReplyTimeout: timeout,
		LockDir:      cfg.Session.LockDir,
		Logger:       logger,
	})
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s, cfg.Device.Address)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
