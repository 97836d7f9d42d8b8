package testsupport

import (
	"path/filepath"
	"testing"
	"time"

	"akari/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config bound to loopback with a per-test lock
// directory. It applies any provided options after the defaults.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Session.Bind = "127.0.0.1:0"
	cfgVal.Session.LockDir = filepath.Join(base, "locks")
	cfgVal.Logging.File = ""

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithDevice points the test config at a fake device.
func WithDevice(device *Device) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Device.Address = device.Addr()
	}
}

// WithAddress sets the device address verbatim.
func WithAddress(address string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Device.Address = address
	}
}

// WithReplyTimeout bounds the reply wait.
func WithReplyTimeout(d time.Duration) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Session.ReplyTimeout = d.String()
	}
}

// WithoutLocks disables the per-device lock.
func WithoutLocks() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Session.LockDir = ""
	}
}

// WithSkipBadFrames makes listen skip undecodable datagrams.
func WithSkipBadFrames() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Listen.OnDecodeError = config.DecodeErrorSkip
	}
}
