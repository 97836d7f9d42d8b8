package wire

import (
	"encoding/binary"
	"math"
	"strconv"
)

// Tag is the leading discriminant byte of every message.
type Tag uint8

// Command tags.
const (
	TagPing         Tag = 0
	TagSetHue       Tag = 1
	TagSetBaseValue Tag = 2
	TagPulse        Tag = 3
	TagListen       Tag = 255
)

// Command is an outbound control message. The set of implementations is
// closed: Ping, SetHue, SetBaseValue, Pulse and Listen.
type Command interface {
	Tag() Tag
	String() string
	appendPayload(dst []byte) []byte
}

// Ping asks the device for a Pong.
type Ping struct{}

// SetHue sets the strip hue as a fraction in [0, 1).
type SetHue struct {
	Hue float32
}

// SetBaseValue sets the brightness base value.
type SetBaseValue struct {
	Value float32
}

// Pulse triggers a single brightness pulse.
type Pulse struct{}

// Listen subscribes the sender to the device's stream of colour updates.
type Listen struct{}

func (Ping) Tag() Tag         { return TagPing }
func (SetHue) Tag() Tag       { return TagSetHue }
func (SetBaseValue) Tag() Tag { return TagSetBaseValue }
func (Pulse) Tag() Tag        { return TagPulse }
func (Listen) Tag() Tag       { return TagListen }

func (Ping) String() string           { return "Ping" }
func (c SetHue) String() string       { return "SetHue(" + formatFloat(c.Hue) + ")" }
func (c SetBaseValue) String() string { return "SetBaseValue(" + formatFloat(c.Value) + ")" }
func (Pulse) String() string          { return "Pulse" }
func (Listen) String() string         { return "Listen" }

func (Ping) appendPayload(dst []byte) []byte           { return dst }
func (c SetHue) appendPayload(dst []byte) []byte       { return appendFloat32(dst, c.Hue) }
func (c SetBaseValue) appendPayload(dst []byte) []byte { return appendFloat32(dst, c.Value) }
func (Pulse) appendPayload(dst []byte) []byte          { return dst }
func (Listen) appendPayload(dst []byte) []byte         { return dst }

// CommandPayloadSize reports the payload width for a command tag and whether
// the tag is known.
func CommandPayloadSize(tag Tag) (int, bool) {
	switch tag {
	case TagPing, TagPulse, TagListen:
		return 0, true
	case TagSetHue, TagSetBaseValue:
		return 4, true
	default:
		return 0, false
	}
}

// Encode serializes a command into its wire form: the tag byte followed by
// the little-endian payload.
func Encode(cmd Command) []byte {
	size, _ := CommandPayloadSize(cmd.Tag())
	buf := make([]byte, 0, 1+size)
	buf = append(buf, byte(cmd.Tag()))
	return cmd.appendPayload(buf)
}

// DecodeCommand parses a command frame. The client never receives commands;
// this exists for the device side of tests and for checking that Encode is
// self-consistent.
func DecodeCommand(frame []byte) (Command, error) {
	if len(frame) == 0 {
		return nil, truncated(0, 0, 0)
	}
	tag := Tag(frame[0])
	size, ok := CommandPayloadSize(tag)
	if !ok {
		return nil, unknownTag(tag)
	}
	payload := frame[1:]
	if len(payload) < size {
		return nil, truncated(tag, size, len(payload))
	}
	switch tag {
	case TagPing:
		return Ping{}, nil
	case TagSetHue:
		return SetHue{Hue: readFloat32(payload)}, nil
	case TagSetBaseValue:
		return SetBaseValue{Value: readFloat32(payload)}, nil
	case TagPulse:
		return Pulse{}, nil
	default:
		return Listen{}, nil
	}
}

func appendFloat32(dst []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
}

func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
