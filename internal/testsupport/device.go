package testsupport

import (
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"akari/internal/wire"
)

// Responder decides which raw frames the fake device sends back for a
// command. Returning nil keeps the device silent.
type Responder func(cmd wire.Command) [][]byte

// Reply answers every command with the same frames.
func Reply(frames ...[]byte) Responder {
	return func(wire.Command) [][]byte { return frames }
}

// Silent never answers.
func Silent() Responder {
	return func(wire.Command) [][]byte { return nil }
}

// Firmware answers the way the controller does: Pong for Ping, Result(0)
// for the setters and Pulse, and the given colour updates for Listen.
func Firmware(updates ...wire.Color) Responder {
	return func(cmd wire.Command) [][]byte {
		switch cmd.(type) {
		case wire.Ping:
			return [][]byte{wire.EncodeResponse(wire.Pong{})}
		case wire.SetHue, wire.SetBaseValue, wire.Pulse:
			return [][]byte{wire.EncodeResponse(wire.Result{Code: 0})}
		case wire.Listen:
			frames := make([][]byte, 0, len(updates))
			for _, c := range updates {
				frames = append(frames, wire.EncodeResponse(c))
			}
			return frames
		default:
			return nil
		}
	}
}

// Device is a UDP peer on loopback standing in for the LED controller.
// Every datagram it receives is recorded and answered by its Responder.
type Device struct {
	conn     *net.UDPConn
	respond  Responder
	received chan []byte
	done     chan struct{}

	mu   sync.Mutex
	peer *net.UDPAddr
}

// NewDevice starts a fake device and stops it when the test ends.
func NewDevice(t testing.TB, respond Responder) *Device {
	t.Helper()

	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatalf("listen fake device: %v", err)
	}
	if respond == nil {
		respond = Silent()
	}
	d := &Device{
		conn:     conn,
		respond:  respond,
		received: make(chan []byte, 64),
		done:     make(chan struct{}),
	}
	go d.serve()
	t.Cleanup(func() {
		conn.Close()
		<-d.done
	})
	return d
}

// Addr returns the host:port the device listens on.
func (d *Device) Addr() string {
	return d.conn.LocalAddr().String()
}

// NextCommand waits for the next datagram the device received and decodes
// it as a command.
func (d *Device) NextCommand(t testing.TB) wire.Command {
	t.Helper()
	frame := d.NextFrame(t)
	cmd, err := wire.DecodeCommand(frame)
	if err != nil {
		t.Fatalf("fake device received undecodable frame %v: %v", frame, err)
	}
	return cmd
}

// NextFrame waits for the next raw datagram the device received.
func (d *Device) NextFrame(t testing.TB) []byte {
	t.Helper()
	select {
	case frame := <-d.received:
		return frame
	case <-time.After(2 * time.Second):
		t.Fatalf("fake device received nothing")
		return nil
	}
}

// Push sends frames to the last peer that contacted the device. It is safe
// to call from any goroutine.
func (d *Device) Push(frames ...[]byte) error {
	d.mu.Lock()
	peer := d.peer
	d.mu.Unlock()
	if peer == nil {
		return errors.New("fake device has no peer to push to")
	}
	for _, frame := range frames {
		if _, err := d.conn.WriteToUDP(frame, peer); err != nil {
			return err
		}
	}
	return nil
}

func (d *Device) serve() {
	defer close(d.done)
	buf := make([]byte, 512)
	for {
		n, from, err := d.conn.ReadFromUDP(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			continue
		}
		frame := append([]byte(nil), buf[:n]...)

		d.mu.Lock()
		d.peer = from
		d.mu.Unlock()

		var replies [][]byte
		if cmd, err := wire.DecodeCommand(frame); err == nil {
			replies = d.respond(cmd)
		}
		select {
		case d.received <- frame:
		default:
		}
		for _, reply := range replies {
			if _, err := d.conn.WriteToUDP(reply, from); err != nil {
				return
			}
		}
	}
}
