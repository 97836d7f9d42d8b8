package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"time"

	"github.com/google/uuid"

	"akari/internal/logging"
	"akari/internal/wire"
)

const (
	// DefaultBind binds all interfaces on an OS-assigned port.
	DefaultBind = "0.0.0.0:0"
	// DefaultMaxFrameSize comfortably exceeds the largest response frame.
	DefaultMaxFrameSize = 256
)

// Options configures a Session.
type Options struct {
	// Bind is the local address; DefaultBind when empty.
	Bind string
	// MaxFrameSize bounds the receive buffer; bytes beyond it are dropped.
	MaxFrameSize int
	// ReplyTimeout bounds Exchange and Await. Zero waits forever.
	ReplyTimeout time.Duration
	// LockDir holds per-device lock files taken around Exchange. Empty
	// disables locking. The reply timeout also bounds the wait for the lock.
	LockDir string
	Logger  *slog.Logger
}

// Session is one bound UDP endpoint talking to the device.
type Session struct {
	id           string
	conn         *net.UDPConn
	buf          []byte
	replyTimeout time.Duration
	lockDir      string
	logger       *slog.Logger
}

// Open binds the local socket.
func Open(ctx context.Context, opts Options) (*Session, error) {
	bind := opts.Bind
	if bind == "" {
		bind = DefaultBind
	}
	maxFrame := opts.MaxFrameSize
	if maxFrame <= 0 {
		maxFrame = DefaultMaxFrameSize
	}

	var lc net.ListenConfig
	pc, err := lc.ListenPacket(ctx, "udp", bind)
	if err != nil {
		return nil, wrap(ErrBind, bind, err)
	}
	conn, ok := pc.(*net.UDPConn)
	if !ok {
		pc.Close()
		return nil, wrap(ErrBind, bind, fmt.Errorf("unexpected packet conn %T", pc))
	}

	id := uuid.NewString()
	logger := logging.WithSessionID(logging.NewComponentLogger(opts.Logger, "session"), id)
	logger.Debug("socket bound", "local", conn.LocalAddr().String(), "max_frame_size", maxFrame)

	return &Session{
		id:           id,
		conn:         conn,
		buf:          make([]byte, maxFrame),
		replyTimeout: opts.ReplyTimeout,
		lockDir:      opts.LockDir,
		logger:       logger,
	}, nil
}

// ID returns the session's correlation id.
func (s *Session) ID() string { return s.id }

// LocalAddr returns the bound local address.
func (s *Session) LocalAddr() net.Addr { return s.conn.LocalAddr() }

// Close releases the socket.
func (s *Session) Close() error { return s.conn.Close() }

// Send encodes cmd and transmits it as a single datagram to remote, a
// host:port string. Delivery is not acknowledged.
func (s *Session) Send(ctx context.Context, remote string, cmd wire.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	addr, err := net.ResolveUDPAddr("udp", remote)
	if err != nil {
		return wrap(ErrSend, "resolve "+remote, err)
	}
	frame := wire.Encode(cmd)
	if _, err := s.conn.WriteToUDP(frame, addr); err != nil {
		return wrap(ErrSend, remote, err)
	}
	logging.WithContext(ctx, s.logger).Debug("sent command",
		logging.FieldCommand, cmd.String(),
		"remote", addr.String(),
		"bytes", len(frame),
	)
	return nil
}

// Await blocks until one datagram arrives and decodes it. It honours the
// reply timeout and ctx cancellation; without either it waits forever.
func (s *Session) Await(ctx context.Context) (wire.Response, error) {
	return s.await(ctx, s.replyTimeout)
}

// Exchange sends cmd to remote and waits for the single reply. When a lock
// directory is configured the device lock is held for the whole exchange, so
// invocations on this host reach the device one at a time.
func (s *Session) Exchange(ctx context.Context, remote string, cmd wire.Command) (wire.Response, error) {
	ctx = logging.WithCommand(logging.WithDevice(ctx, remote), cmd.String())

	if s.lockDir != "" {
		lock, err := NewDeviceLock(s.lockDir, remote)
		if err != nil {
			return nil, err
		}
		if err := s.acquire(ctx, lock); err != nil {
			return nil, err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				s.logger.Warn("release device lock", "path", lock.Path(), logging.Error(err))
			}
		}()
	}

	if err := s.Send(ctx, remote, cmd); err != nil {
		return nil, err
	}
	resp, err := s.Await(ctx)
	if err != nil {
		return nil, err
	}
	logging.WithContext(ctx, s.logger).Debug("received response", "response", resp.String())
	return resp, nil
}

// acquire waits for the device lock. The reply timeout bounds the wait so a
// holder stuck on a lost reply cannot hang later exchanges.
func (s *Session) acquire(ctx context.Context, lock *DeviceLock) error {
	if s.replyTimeout <= 0 {
		return lock.Acquire(ctx)
	}
	lockCtx, cancel := context.WithTimeout(ctx, s.replyTimeout)
	defer cancel()
	err := lock.Acquire(lockCtx)
	if err != nil && ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
		return wrap(ErrTimeout, fmt.Sprintf("device lock %s held for over %s", lock.Path(), s.replyTimeout), err)
	}
	return err
}

func (s *Session) await(ctx context.Context, timeout time.Duration) (wire.Response, error) {
	frame, from, err := s.read(ctx, timeout)
	if err != nil {
		return nil, err
	}
	resp, err := wire.Decode(frame)
	if err != nil {
		return nil, wrap(ErrReceive, fmt.Sprintf("datagram from %s", from), err)
	}
	return resp, nil
}

// read blocks for the next datagram. The returned frame aliases the session
// buffer and is only valid until the next read.
func (s *Session) read(ctx context.Context, timeout time.Duration) ([]byte, *net.UDPAddr, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}
	if err := s.conn.SetReadDeadline(deadline); err != nil {
		return nil, nil, wrap(ErrReceive, "set read deadline", err)
	}
	stop := context.AfterFunc(ctx, func() {
		_ = s.conn.SetReadDeadline(time.Unix(1, 0))
	})
	defer stop()

	n, from, err := s.conn.ReadFromUDP(s.buf)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, nil, ctxErr
		}
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return nil, nil, wrap(ErrTimeout, fmt.Sprintf("no reply within %s", timeout), err)
		}
		return nil, nil, wrap(ErrReceive, "", err)
	}
	return s.buf[:n], from, nil
}
