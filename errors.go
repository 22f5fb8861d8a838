package huffman

import (
	"github.com/pkg/errors"
)

// ErrEmptyInput is returned when there are no symbols to build a code from.
var ErrEmptyInput = errors.New("huffman: empty input")

// ErrMissingSymbol is returned by Encoder.Encode when the text contains a
// symbol that the code table has no code for.
var ErrMissingSymbol = errors.New("huffman: symbol missing from code table")

// ErrMalformedArtifact is returned when a compressed artifact or its code
// table cannot be parsed, or when a code table is not a valid prefix code.
var ErrMalformedArtifact = errors.New("huffman: malformed artifact")

// ErrUnmatchedBits is returned by Decoder.Decode when the bit string runs
// into a sequence that no code matches, or ends in the middle of a code.
var ErrUnmatchedBits = errors.New("huffman: bits match no code")
