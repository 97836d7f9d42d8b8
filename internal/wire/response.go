package wire

import "fmt"

// Response tags.
const (
	TagPong   Tag = 0
	TagResult Tag = 1
	TagColor  Tag = 255
)

// Response is an inbound message from the device. The set of
// implementations is closed: Pong, Result and Color.
type Response interface {
	Tag() Tag
	String() string
	isResponse()
}

// Pong answers a Ping.
type Pong struct{}

// Result carries the device's status code for a command.
type Result struct {
	Code uint8
}

// Color is a colour update pushed while listening.
type Color struct {
	R, G, B uint8
}

func (Pong) Tag() Tag   { return TagPong }
func (Result) Tag() Tag { return TagResult }
func (Color) Tag() Tag  { return TagColor }

func (Pong) String() string     { return "Pong" }
func (r Result) String() string { return fmt.Sprintf("Result(%d)", r.Code) }
func (c Color) String() string  { return fmt.Sprintf("Color([%d, %d, %d])", c.R, c.G, c.B) }

func (Pong) isResponse()   {}
func (Result) isResponse() {}
func (Color) isResponse()  {}

// Hex renders the colour as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ResponsePayloadSize reports the payload width for a response tag and
// whether the tag is known.
func ResponsePayloadSize(tag Tag) (int, bool) {
	switch tag {
	case TagPong:
		return 0, true
	case TagResult:
		return 1, true
	case TagColor:
		return 3, true
	default:
		return 0, false
	}
}

// MaxResponseSize is the length of the largest legal response frame.
const MaxResponseSize = 1 + 3

// Decode parses a response frame. Only the bytes the matched variant needs
// are consumed; anything after them is ignored.
func Decode(frame []byte) (Response, error) {
	if len(frame) == 0 {
		return nil, truncated(0, 0, 0)
	}
	tag := Tag(frame[0])
	size, ok := ResponsePayloadSize(tag)
	if !ok {
		return nil, unknownTag(tag)
	}
	payload := frame[1:]
	if len(payload) < size {
		return nil, truncated(tag, size, len(payload))
	}
	switch tag {
	case TagPong:
		return Pong{}, nil
	case TagResult:
		return Result{Code: payload[0]}, nil
	default:
		return Color{R: payload[0], G: payload[1], B: payload[2]}, nil
	}
}

// EncodeResponse serializes a response. The client never sends responses;
// the fake device used in tests does.
func EncodeResponse(resp Response) []byte {
	switch r := resp.(type) {
	case Pong:
		return []byte{byte(TagPong)}
	case Result:
		return []byte{byte(TagResult), r.Code}
	case Color:
		return []byte{byte(TagColor), r.R, r.G, r.B}
	default:
		panic(fmt.Sprintf("wire: unhandled response %T", resp))
	}
}
