package session

import (
	"context"
	"iter"

	"akari/internal/logging"
	"akari/internal/wire"
)

// DecodePolicy selects what a listen stream does with a datagram that does
// not decode.
type DecodePolicy int

const (
	// DecodeFail yields the decode error and ends the stream.
	DecodeFail DecodePolicy = iota
	// DecodeSkip logs the bad datagram and keeps listening.
	DecodeSkip
)

func (p DecodePolicy) String() string {
	if p == DecodeSkip {
		return "skip"
	}
	return "fail"
}

// Listen sends the subscription command to remote and returns the stream of
// pushed updates. The sequence never ends on its own: it yields one
// response per datagram until a receive error, a decode error under
// DecodeFail, or ctx cancellation, each of which is yielded once as the
// final element. Breaking out of the range loop stops it as well. The
// reply timeout does not apply; a quiet device is not an error here.
func (s *Session) Listen(ctx context.Context, remote string, policy DecodePolicy) (iter.Seq2[wire.Response, error], error) {
	ctx = logging.WithDevice(ctx, remote)
	if err := s.Send(ctx, remote, wire.Listen{}); err != nil {
		return nil, err
	}
	logger := logging.WithContext(ctx, s.logger)
	logger.Debug("listening", "policy", policy.String())

	return func(yield func(wire.Response, error) bool) {
		for {
			resp, err := s.await(ctx, 0)
			if err != nil {
				if policy == DecodeSkip && isDecodeError(err) {
					logger.Warn("skipping undecodable datagram", logging.Error(err))
					continue
				}
				yield(nil, err)
				return
			}
			logger.Debug("received response", "response", resp.String())
			if !yield(resp, nil) {
				return
			}
		}
	}, nil
}
