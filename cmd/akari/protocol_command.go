package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"akari/internal/wire"
)

var (
	protocolCommands = []wire.Command{
		wire.Ping{}, wire.SetHue{}, wire.SetBaseValue{}, wire.Pulse{}, wire.Listen{},
	}
	protocolResponses = []wire.Response{
		wire.Pong{}, wire.Result{}, wire.Color{},
	}
	payloadLayout = map[string]string{
		"SetHue":       "f32 LE hue fraction",
		"SetBaseValue": "f32 LE brightness base",
		"Result":       "u8 result code",
		"Color":        "u8 R, u8 G, u8 B",
	}
)

func newProtocolCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "protocol",
		Short:       "Show the wire format of every command and response",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), renderProtocolTable())
			return nil
		},
	}
}

func renderProtocolTable() string {
	rows := make([][]string, 0, len(protocolCommands)+len(protocolResponses))
	for _, c := range protocolCommands {
		size, _ := wire.CommandPayloadSize(c.Tag())
		rows = append(rows, protocolRow("command", c.Tag(), variantName(c), size))
	}
	for _, r := range protocolResponses {
		size, _ := wire.ResponsePayloadSize(r.Tag())
		rows = append(rows, protocolRow("response", r.Tag(), variantName(r), size))
	}
	return renderTable(
		[]string{"Direction", "Tag", "Name", "Payload", "Frame bytes"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft, alignRight},
	)
}

func protocolRow(direction string, tag wire.Tag, name string, payloadSize int) []string {
	layout := payloadLayout[name]
	if layout == "" {
		layout = "-"
	}
	return []string{direction, strconv.Itoa(int(tag)), name, layout, strconv.Itoa(1 + payloadSize)}
}
