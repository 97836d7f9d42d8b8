package config

const (
	defaultBind          = "0.0.0.0:0"
	defaultMaxFrameSize  = 256
	defaultOnDecodeError = DecodeErrorFail
	defaultLogFormat     = "console"
	defaultLogLevel      = "warn"

	// AddressEnv names the environment variable consulted when the config
	// file does not set device.address.
	AddressEnv = "MCU_ADDRESS"
)

// Values accepted by listen.on_decode_error.
const (
	DecodeErrorFail = "fail"
	DecodeErrorSkip = "skip"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Session: Session{
			Bind:         defaultBind,
			MaxFrameSize: defaultMaxFrameSize,
		},
		Listen: Listen{
			OnDecodeError: defaultOnDecodeError,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
