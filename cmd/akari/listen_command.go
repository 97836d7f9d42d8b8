package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"akari/internal/session"
	"akari/internal/wire"
)

func newListenCommand(ctx *commandContext) *cobra.Command {
	var skipBadFrames bool
	var summary bool

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Subscribe to the device's colour updates and print them until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			policy := session.DecodeFail
			if skipBadFrames || cfg.SkipBadFrames() {
				policy = session.DecodeSkip
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// Listen waits indefinitely between updates; no reply timeout.
			return ctx.withSession(runCtx, 0, func(s *session.Session, address string) error {
				stream, err := s.Listen(runCtx, address, policy)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				fmt.Fprintln(out, renderNotice("Listening...", colorize))

				tally := newListenTally()
				for resp, err := range stream {
					if err != nil {
						if summary && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
							fmt.Fprintln(out, tally.render())
						}
						return err
					}
					tally.add(resp)
					fmt.Fprintln(out, renderReceived(resp, colorize))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&skipBadFrames, "skip-bad-frames", false, "Log and skip datagrams that fail to decode instead of stopping")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print a table of received responses when interrupted")
	return cmd
}

// listenTally counts responses per variant in first-seen order.
type listenTally struct {
	order  []string
	counts map[string]int
	last   map[string]wire.Response
}

func newListenTally() *listenTally {
	return &listenTally{
		counts: make(map[string]int),
		last:   make(map[string]wire.Response),
	}
}

func (t *listenTally) add(resp wire.Response) {
	name := variantName(resp)
	if _, seen := t.counts[name]; !seen {
		t.order = append(t.order, name)
	}
	t.counts[name]++
	t.last[name] = resp
}

func (t *listenTally) render() string {
	if len(t.order) == 0 {
		return "No responses received"
	}
	rows := make([][]string, 0, len(t.order))
	for _, name := range t.order {
		rows = append(rows, []string{name, strconv.Itoa(t.counts[name]), t.last[name].String()})
	}
	return renderTable(
		[]string{"Response", "Count", "Last"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft},
	)
}
