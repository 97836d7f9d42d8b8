package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewFanoutHandlerCollapses(t *testing.T) {
	if _, ok := newFanoutHandler(nil, nil).(NoopHandler); !ok {
		t.Fatal("expected NoopHandler when every handler is nil")
	}
	var buf bytes.Buffer
	inner := slog.NewTextHandler(&buf, nil)
	if h := newFanoutHandler(nil, inner); h != inner {
		t.Fatal("expected a single handler to be returned unwrapped")
	}
}

func TestFanoutHandlerRespectsEachLevel(t *testing.T) {
	var warnBuf, debugBuf bytes.Buffer
	warn := slog.NewTextHandler(&warnBuf, &slog.HandlerOptions{Level: slog.LevelWarn})
	debug := slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug})

	logger := slog.New(newFanoutHandler(warn, debug)).With(slog.String(FieldDevice, "10.0.0.9:4210"))
	logger.Debug("sent command")
	logger.Warn("reply dropped")

	if strings.Contains(warnBuf.String(), "sent command") {
		t.Fatalf("warn handler received a debug record: %q", warnBuf.String())
	}
	if !strings.Contains(warnBuf.String(), "reply dropped") {
		t.Fatalf("warn handler missed the warning: %q", warnBuf.String())
	}
	for _, want := range []string{"sent command", "reply dropped", "device=10.0.0.9:4210"} {
		if !strings.Contains(debugBuf.String(), want) {
			t.Fatalf("expected %q in %q", want, debugBuf.String())
		}
	}
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected debug to be enabled through the verbose handler")
	}
}

func TestTeeLoggerNilBase(t *testing.T) {
	var buf bytes.Buffer
	logger := TeeLogger(nil, slog.NewTextHandler(&buf, nil))
	logger.Info("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("expected record in tee output, got %q", buf.String())
	}
}
