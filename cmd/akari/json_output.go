package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"akari/internal/wire"
)

type responseView struct {
	Type string `json:"type"`
	Code *uint8 `json:"code,omitempty"`
	RGB  []int  `json:"rgb,omitempty"`
	Hex  string `json:"hex,omitempty"`
}

func responseJSON(resp wire.Response) responseView {
	switch r := resp.(type) {
	case wire.Result:
		code := r.Code
		return responseView{Type: "Result", Code: &code}
	case wire.Color:
		return responseView{Type: "Color", RGB: []int{int(r.R), int(r.G), int(r.B)}, Hex: r.Hex()}
	default:
		return responseView{Type: variantName(resp)}
	}
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
