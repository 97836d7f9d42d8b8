package hue_test

import (
	"errors"
	"math"
	"testing"

	"akari/internal/hue"
)

func TestFromHex(t *testing.T) {
	cases := []struct {
		input string
		want  float32
	}{
		{"#ff0000", 0},
		{"ff0000", 0},
		{"#00ff00", 1.0 / 3},
		{"#0000FF", 2.0 / 3},
		{"#0f0", 1.0 / 3},
		{"  #ffff00 ", 1.0 / 6},
		{"#00ffff80", 0.5},
		{"#f0f8", 5.0 / 6},
		{"#ffffff", 0},
		{"#808080", 0},
		{"#000", 0},
	}
	for _, tc := range cases {
		got, err := hue.FromHex(tc.input)
		if err != nil {
			t.Fatalf("%q: FromHex returned error: %v", tc.input, err)
		}
		if math.Abs(float64(got-tc.want)) > 1e-4 {
			t.Fatalf("%q: unexpected hue: got %v want %v", tc.input, got, tc.want)
		}
		if got < 0 || got >= 1 {
			t.Fatalf("%q: hue %v outside [0, 1)", tc.input, got)
		}
	}
}

func TestFromHexNearRedWrapsBelowOne(t *testing.T) {
	got, err := hue.FromHex("#ff0001")
	if err != nil {
		t.Fatalf("FromHex returned error: %v", err)
	}
	if got < 0.99 || got >= 1 {
		t.Fatalf("expected hue just below 1, got %v", got)
	}
}

func TestFromHexRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "#", "xyz", "#12345", "#gggggg", "#12345g", "red"} {
		if _, err := hue.FromHex(input); !errors.Is(err, hue.ErrInvalidHex) {
			t.Fatalf("%q: expected ErrInvalidHex, got %v", input, err)
		}
	}
}
