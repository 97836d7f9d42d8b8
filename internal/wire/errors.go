package wire

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownTag marks a frame whose leading byte matches no known variant.
	ErrUnknownTag = errors.New("unknown tag")
	// ErrTruncated marks a frame shorter than its variant's payload requires.
	ErrTruncated = errors.New("truncated frame")
)

// DecodeError describes why a frame could not be decoded. It matches
// ErrUnknownTag or ErrTruncated through errors.Is.
type DecodeError struct {
	Kind error
	Tag  Tag
	// Need and Have count payload bytes after the tag; both are zero for
	// unknown tags.
	Need int
	Have int
}

func (e *DecodeError) Error() string {
	switch {
	case e.Kind == ErrTruncated && e.Need == 0:
		return "decode: empty frame"
	case e.Kind == ErrTruncated:
		return fmt.Sprintf("decode: tag %d needs %d payload bytes, got %d", e.Tag, e.Need, e.Have)
	default:
		return fmt.Sprintf("decode: %v %d", e.Kind, e.Tag)
	}
}

func (e *DecodeError) Unwrap() error { return e.Kind }

func unknownTag(tag Tag) error {
	return &DecodeError{Kind: ErrUnknownTag, Tag: tag}
}

func truncated(tag Tag, need, have int) error {
	return &DecodeError{Kind: ErrTruncated, Tag: tag, Need: need, Have: have}
}
