package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"akari/internal/wire"
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

// renderReceived formats one response the way the tool always has. Colour
// responses get a truecolor swatch when writing to a terminal.
func renderReceived(resp wire.Response, colorize bool) string {
	line := "Received " + resp.String()
	if !colorize {
		return line
	}
	switch r := resp.(type) {
	case wire.Pong:
		return ansiGreen + line + ansiReset
	case wire.Result:
		if r.Code == 0 {
			return ansiGreen + line + ansiReset
		}
		return ansiYellow + line + ansiReset
	case wire.Color:
		swatch := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  %s", r.R, r.G, r.B, ansiReset)
		return line + " " + swatch
	default:
		return line
	}
}

func renderNotice(message string, colorize bool) string {
	if colorize {
		return ansiBlue + message + ansiReset
	}
	return message
}

// variantName is the bare variant name of a wire value, e.g. "Color".
func variantName(v fmt.Stringer) string {
	name, _, _ := strings.Cut(v.String(), "(")
	return name
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
