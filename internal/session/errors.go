package session

import (
	"errors"
	"fmt"
	"strings"

	"akari/internal/wire"
)

var (
	// ErrBind marks a failure to bind the local socket.
	ErrBind = errors.New("bind")
	// ErrSend marks a failure to resolve the device or transmit a datagram.
	ErrSend = errors.New("send")
	// ErrReceive marks a failed receive, including a datagram that could not
	// be decoded; the latter also matches the wire decode sentinels.
	ErrReceive = errors.New("receive")
	// ErrTimeout marks a reply that did not arrive within the reply timeout.
	ErrTimeout = errors.New("timeout")
)

// wrap tags err with marker so callers can classify it with errors.Is while
// keeping the underlying cause reachable.
func wrap(marker error, detail string, err error) error {
	detail = strings.TrimSpace(detail)
	switch {
	case err != nil && detail != "":
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	case err != nil:
		return fmt.Errorf("%w: %w", marker, err)
	case detail != "":
		return fmt.Errorf("%w: %s", marker, detail)
	default:
		return marker
	}
}

func isDecodeError(err error) bool {
	var decodeErr *wire.DecodeError
	return errors.As(err, &decodeErr)
}
