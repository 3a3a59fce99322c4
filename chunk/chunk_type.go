package chunk

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidChunkTypeSize is returned when a chunk type is being constructed
	// from a string that is not exactly four bytes long.
	ErrInvalidChunkTypeSize = errors.New("chunk type must be exactly 4 bytes")

	// ErrInvalidByte is returned when a chunk type byte is outside of the allowed
	// range. The byte constructor allows any ASCII byte, the string constructor
	// only allows ASCII letters.
	ErrInvalidByte = errors.New("invalid byte in chunk type")
)

// ChunkType is the four byte identifier of a chunk.
// The case of each of its four characters encodes one classification bit:
// an uppercase character means that bit 5 of that byte is 0.
// Two chunk types are equal if their four bytes are equal.
type ChunkType struct {
	bytes [4]byte
}

// NewChunkType constructs a chunk type from raw wire bytes.
// Every ASCII byte is accepted here, not only letters, so that uncommon or
// corrupt type names read from a stream can still be represented and
// inspected. Returns ErrInvalidByte for any byte that is not ASCII.
func NewChunkType(b [4]byte) (ChunkType, error) {
	for _, c := range b {
		if c >= 0x80 {
			return ChunkType{}, fmt.Errorf("%w: 0x%02x is not ascii", ErrInvalidByte, c)
		}
	}
	return ChunkType{bytes: b}, nil
}

// NewChunkTypeFromString constructs a chunk type from its textual name.
// This path is stricter than NewChunkType: the string must be exactly four
// bytes long and every byte must be an ASCII letter (A-Z or a-z).
func NewChunkTypeFromString(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, fmt.Errorf("%w: got %d", ErrInvalidChunkTypeSize, len(s))
	}

	var t ChunkType
	for i := 0; i < len(t.bytes); i++ {
		c := s[i]
		if !isASCIILetter(c) {
			return ChunkType{}, fmt.Errorf("%w: %q is not an ascii letter", ErrInvalidByte, c)
		}
		t.bytes[i] = c
	}
	return t, nil
}

func isASCIILetter(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

// Bytes returns a copy of the four raw bytes of the identifier.
func (t ChunkType) Bytes() [4]byte {
	return t.bytes
}

// IsCritical reports whether bit 5 of the first byte is 0
// (first character is uppercase). Critical chunks must be
// understood by a decoder for the file to be usable.
func (t ChunkType) IsCritical() bool {
	return t.bytes[0]&(1<<5) == 0
}

// IsPublic reports whether bit 5 of the second byte is 0
// (second character is uppercase), meaning the type is part of the
// public registry rather than application private.
func (t ChunkType) IsPublic() bool {
	return t.bytes[1]&(1<<5) == 0
}

// IsReservedBitValid reports whether bit 5 of the third byte is 0
// (third character is uppercase). The third character is reserved
// and must be uppercase for the type to conform to the current format version.
func (t ChunkType) IsReservedBitValid() bool {
	return t.bytes[2]&(1<<5) == 0
}

// IsSafeToCopy reports whether bit 5 of the fourth byte is 1
// (fourth character is lowercase), meaning an editor that does not
// recognize the chunk may copy it to a modified file.
func (t ChunkType) IsSafeToCopy() bool {
	return t.bytes[3]&(1<<5) != 0
}

// IsValid reports whether the reserved bit is valid. The other three flags
// classify the chunk but do not affect validity.
func (t ChunkType) IsValid() bool {
	return t.IsReservedBitValid()
}

// String renders the identifier as text. Both constructors only admit bytes
// below 0x80, so the four bytes are always valid UTF-8.
func (t ChunkType) String() string {
	return string(t.bytes[:])
}
