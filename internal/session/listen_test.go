package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"akari/internal/testsupport"
	"akari/internal/wire"
)

func collect(t *testing.T, seq func(func(wire.Response, error) bool), limit int) ([]wire.Response, error) {
	t.Helper()
	var got []wire.Response
	for resp, err := range seq {
		if err != nil {
			return got, err
		}
		got = append(got, resp)
		if len(got) == limit {
			break
		}
	}
	return got, nil
}

func TestListenYieldsEveryUpdate(t *testing.T) {
	device := testsupport.NewDevice(t, testsupport.Firmware(
		wire.Color{R: 255},
		wire.Color{G: 255},
		wire.Color{B: 255},
	))
	s := openSession(t, Options{})

	seq, err := s.Listen(context.Background(), device.Addr(), DecodeFail)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	got, err := collect(t, seq, 3)
	if err != nil {
		t.Fatalf("unexpected stream error: %v", err)
	}
	want := []wire.Response{wire.Color{R: 255}, wire.Color{G: 255}, wire.Color{B: 255}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected response %d: got %v want %v", i, got[i], want[i])
		}
	}
	if cmd := device.NextCommand(t); cmd != (wire.Listen{}) {
		t.Fatalf("unexpected command: got %v want Listen", cmd)
	}
}

func TestListenKeepsGoingAfterQuietPeriod(t *testing.T) {
	device := testsupport.NewDevice(t, testsupport.Silent())
	s := openSession(t, Options{ReplyTimeout: 10 * time.Millisecond})

	seq, err := s.Listen(context.Background(), device.Addr(), DecodeFail)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	device.NextCommand(t)
	time.AfterFunc(50*time.Millisecond, func() {
		if err := device.Push(wire.EncodeResponse(wire.Color{R: 1, G: 2, B: 3})); err != nil {
			t.Errorf("push: %v", err)
		}
	})

	got, err := collect(t, seq, 1)
	if err != nil {
		t.Fatalf("unexpected stream error: %v", err)
	}
	if got[0] != (wire.Color{R: 1, G: 2, B: 3}) {
		t.Fatalf("unexpected response: got %v", got[0])
	}
}

func TestListenDecodeFailEndsStream(t *testing.T) {
	device := testsupport.NewDevice(t, testsupport.Reply(
		wire.EncodeResponse(wire.Color{R: 9}),
		[]byte{7},
		wire.EncodeResponse(wire.Color{G: 9}),
	))
	s := openSession(t, Options{})

	seq, err := s.Listen(context.Background(), device.Addr(), DecodeFail)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	got, err := collect(t, seq, 0)
	if !errors.Is(err, wire.ErrUnknownTag) || !errors.Is(err, ErrReceive) {
		t.Fatalf("expected unknown tag receive error, got %v", err)
	}
	if len(got) != 1 || got[0] != (wire.Color{R: 9}) {
		t.Fatalf("unexpected responses before failure: %v", got)
	}
}

func TestListenDecodeSkipContinues(t *testing.T) {
	device := testsupport.NewDevice(t, testsupport.Reply(
		[]byte{7},
		wire.EncodeResponse(wire.Color{G: 9}),
	))
	s := openSession(t, Options{})

	seq, err := s.Listen(context.Background(), device.Addr(), DecodeSkip)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	got, err := collect(t, seq, 1)
	if err != nil {
		t.Fatalf("unexpected stream error: %v", err)
	}
	if got[0] != (wire.Color{G: 9}) {
		t.Fatalf("unexpected response: got %v", got[0])
	}
}

func TestListenCancelled(t *testing.T) {
	device := testsupport.NewDevice(t, testsupport.Silent())
	s := openSession(t, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	seq, err := s.Listen(ctx, device.Addr(), DecodeSkip)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	time.AfterFunc(50*time.Millisecond, cancel)

	_, err = collect(t, seq, 0)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestListenSendFailure(t *testing.T) {
	s := openSession(t, Options{})
	if _, err := s.Listen(context.Background(), "no-port-here", DecodeFail); !errors.Is(err, ErrSend) {
		t.Fatalf("expected ErrSend, got %v", err)
	}
}
