// Package wire implements the binary message format spoken by the LED
// controller firmware.
//
// Every datagram carries exactly one message: a single tag byte followed by
// a fixed-width, little-endian payload whose shape is determined by the tag.
// Commands flow from the client to the device and responses flow back; the
// two tag spaces are independent and both are closed sets. Adding a message
// means adding a tag on both ends, so the constants here must stay in sync
// with the firmware by hand.
//
// Encoding is total over the Command variants. Decoding rejects unknown tags
// and short payloads with a *DecodeError and ignores trailing bytes, since a
// frame read into an oversized buffer may carry padding.
package wire
