package main

import (
	"fmt"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"akari/internal/hue"
	"akari/internal/session"
	"akari/internal/wire"
)

// buildFunc turns positional arguments into the command to send.
type buildFunc func(args []string) (wire.Command, error)

func newDeviceCommands(ctx *commandContext) []*cobra.Command {
	return []*cobra.Command{
		newDeviceCommand(ctx, "ping", "Check that the device answers", cobra.NoArgs,
			func([]string) (wire.Command, error) { return wire.Ping{}, nil }),
		newDeviceCommand(ctx, "hue <fraction>", "Set the hue as a fraction of the colour wheel", cobra.ExactArgs(1),
			func(args []string) (wire.Command, error) {
				v, err := parseFraction("hue", args[0])
				if err != nil {
					return nil, err
				}
				return wire.SetHue{Hue: v}, nil
			}),
		newDeviceCommand(ctx, "color <hex>", "Set the hue from a hex colour such as #ff8800", cobra.ExactArgs(1),
			func(args []string) (wire.Command, error) {
				v, err := hue.FromHex(args[0])
				if err != nil {
					return nil, err
				}
				return wire.SetHue{Hue: v}, nil
			}),
		newDeviceCommand(ctx, "value <fraction>", "Set the brightness base value", cobra.ExactArgs(1),
			func(args []string) (wire.Command, error) {
				v, err := parseFraction("value", args[0])
				if err != nil {
					return nil, err
				}
				return wire.SetBaseValue{Value: v}, nil
			}),
		newDeviceCommand(ctx, "pulse", "Trigger a pulse effect", cobra.NoArgs,
			func([]string) (wire.Command, error) { return wire.Pulse{}, nil }),
	}
}

func newDeviceCommand(ctx *commandContext, use, short string, args cobra.PositionalArgs, build buildFunc) *cobra.Command {
	var jsonOutput bool
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			command, err := build(args)
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return ctx.withSession(runCtx, timeout, func(s *session.Session, address string) error {
				resp, err := s.Exchange(runCtx, address, command)
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, responseJSON(resp))
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderReceived(resp, shouldColorize(out)))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the response as JSON")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Give up when no reply arrives within this duration (default: wait forever)")
	return cmd
}

func parseFraction(name, raw string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 32)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", name, raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s: %q is not a finite number", name, raw)
	}
	return float32(v), nil
}
