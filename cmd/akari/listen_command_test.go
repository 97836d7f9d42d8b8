package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"akari/internal/testsupport"
	"akari/internal/wire"
)

func TestListenStopsOnDecodeError(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.Reply(
		wire.EncodeResponse(wire.Color{R: 255}),
		[]byte{7},
	))

	out, _, err := runCLI(t, []string{"listen"}, env.configPath)
	if !errors.Is(err, wire.ErrUnknownTag) {
		t.Fatalf("expected unknown tag error, got %v", err)
	}
	want := "Listening...\nReceived Color([255, 0, 0])\n"
	if out != want {
		t.Fatalf("unexpected output: got %q want %q", out, want)
	}
	if cmd := env.device.NextCommand(t); cmd != (wire.Listen{}) {
		t.Fatalf("unexpected command: got %v want Listen", cmd)
	}
}

func TestListenSkipsBadFramesUntilCancelled(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.Reply(
		[]byte{7},
		wire.EncodeResponse(wire.Color{G: 255}),
		wire.EncodeResponse(wire.Color{G: 255}),
	))

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	out, _, err := runCLIContext(t, ctx, []string{"listen", "--skip-bad-frames", "--summary"}, env.configPath)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected the listen to run until the context ended, got %v", err)
	}
	requireContains(t, out, "Received Color([0, 255, 0])")
	requireContains(t, out, "Response")
}

func TestListenSkipFromConfig(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.Reply(
		[]byte{7},
		wire.EncodeResponse(wire.Color{B: 255}),
	), testsupport.WithSkipBadFrames())

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(300*time.Millisecond, cancel)

	out, _, err := runCLIContext(t, ctx, []string{"listen", "--summary"}, env.configPath)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
	requireContains(t, out, "Received Color([0, 0, 255])")
	requireContains(t, out, "Count")
}

func TestListenTallyRender(t *testing.T) {
	tally := newListenTally()
	if got := tally.render(); got != "No responses received" {
		t.Fatalf("unexpected empty render: %q", got)
	}
	tally.add(wire.Color{R: 1})
	tally.add(wire.Color{R: 2})
	tally.add(wire.Pong{})
	if tally.counts["Color"] != 2 || tally.counts["Pong"] != 1 {
		t.Fatalf("unexpected counts: %v", tally.counts)
	}
	if len(tally.order) != 2 || tally.order[0] != "Color" {
		t.Fatalf("unexpected order: %v", tally.order)
	}
	requireContains(t, tally.render(), "Color([2, 0, 0])")
}
