// Package chunk implements the binary codec for PNG chunks, the
// length-prefixed, type-tagged and CRC32-checksummed records that a PNG
// file is composed of. It only deals with single chunks as byte buffers;
// reading files, walking a chunk sequence and the PNG signature are left
// to the caller.
package chunk

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"unicode/utf8"
)

const (
	// headerSize is the size of the length and type fields preceding the payload.
	headerSize = 8

	// crcSize is the size of the trailing checksum field.
	crcSize = 4

	// MinChunkSize is the size of a serialized chunk with an empty payload:
	// the length, type and crc fields alone.
	MinChunkSize = headerSize + crcSize
)

var (
	// ErrChunkTooShort is returned if a too short byte slice is passed to ParseChunk,
	// shorter than the MinChunkSize bytes that the fixed fields occupy.
	ErrChunkTooShort = errors.New("chunk data too short")

	// ErrInvalidChunkLength is returned when the declared length field does not
	// equal the actual payload size of the passed buffer.
	ErrInvalidChunkLength = errors.New("invalid chunk length")

	// ErrInvalidChecksum is returned when the checksum computed over the type and
	// payload bytes does not equal the trailing crc field, which indicates
	// corrupted or tampered data.
	ErrInvalidChecksum = errors.New("invalid chunk checksum")

	// ErrInvalidUTF8 is returned by DataAsString when the payload is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("chunk data is not valid utf-8")
)

// Chunk is a single record of the wire format
//
//	[length 4 bytes big endian][type 4 bytes][data][crc 4 bytes big endian]
//
// where crc is the CRC-32/IEEE checksum over the type and data bytes.
// A Chunk is immutable once constructed, owns its payload exclusively and
// upholds length == len(data) as well as crc == checksum(type, data).
type Chunk struct {
	length    uint32
	chunkType ChunkType
	data      []byte
	crc       uint32
}

// NewChunk constructs a chunk from a type and a payload.
// Length and checksum are derived, the payload is copied.
// Payloads larger than the length field's numeric range are outside of the
// wire format's own limit and not handled here.
func NewChunk(chunkType ChunkType, data []byte) Chunk {
	owned := make([]byte, len(data))
	copy(owned, data)

	return Chunk{
		length:    uint32(len(owned)),
		chunkType: chunkType,
		data:      owned,
		crc:       checksum(chunkType, owned),
	}
}

// ParseChunk parses and validates a single serialized chunk.
// The passed buffer must contain exactly one chunk, nothing more.
func ParseChunk(data []byte) (Chunk, error) {
	var c Chunk
	if err := c.UnmarshalBinary(data); err != nil {
		return Chunk{}, err
	}
	return c, nil
}

// UnmarshalBinary parses a serialized chunk, validating the declared length
// against the actual payload size and the trailing crc against the checksum
// computed over the type and payload bytes. On any error the receiver is
// left untouched.
func (c *Chunk) UnmarshalBinary(data []byte) error {
	if len(data) < MinChunkSize {
		return fmt.Errorf("%w: %d bytes, expected at least %d", ErrChunkTooShort, len(data), MinChunkSize)
	}

	length := binary.BigEndian.Uint32(data[:4])

	var typeBytes [4]byte
	copy(typeBytes[:], data[4:headerSize])
	chunkType, err := NewChunkType(typeBytes)
	if err != nil {
		return err
	}

	// The payload boundary is derived from the buffer size alone.
	// The declared length field is checked against it below, never
	// trusted for slicing.
	payload := data[headerSize : len(data)-crcSize]
	crc := binary.BigEndian.Uint32(data[len(data)-crcSize:])

	if length != uint32(len(payload)) {
		return fmt.Errorf("%w: declared %d, got %d bytes of payload", ErrInvalidChunkLength, length, len(payload))
	}

	if sum := checksum(chunkType, payload); sum != crc {
		return fmt.Errorf("%w: computed %d, got %d", ErrInvalidChecksum, sum, crc)
	}

	owned := make([]byte, len(payload))
	copy(owned, payload)

	*c = Chunk{
		length:    length,
		chunkType: chunkType,
		data:      owned,
		crc:       crc,
	}
	return nil
}

// Bytes serializes the chunk back into its wire format.
// Parsing the returned bytes yields a chunk equal to c.
func (c Chunk) Bytes() []byte {
	b := make([]byte, 0, MinChunkSize+len(c.data))
	b = binary.BigEndian.AppendUint32(b, c.length)
	b = append(b, c.chunkType.bytes[:]...)
	b = append(b, c.data...)
	b = binary.BigEndian.AppendUint32(b, c.crc)
	return b
}

// MarshalBinary serializes the chunk into its wire format. It never fails.
func (c Chunk) MarshalBinary() ([]byte, error) {
	return c.Bytes(), nil
}

// Length returns the payload size in bytes as carried by the length field.
func (c Chunk) Length() uint32 {
	return c.length
}

// ChunkType returns the chunk's four byte type identifier.
func (c Chunk) ChunkType() ChunkType {
	return c.chunkType
}

// CRC returns the CRC-32/IEEE checksum over the type and payload bytes.
func (c Chunk) CRC() uint32 {
	return c.crc
}

// Data returns a copy of the payload.
func (c Chunk) Data() []byte {
	data := make([]byte, len(c.data))
	copy(data, c.data)
	return data
}

// DataAsString returns the payload decoded as text.
// Unlike the chunk type, the payload is arbitrary bytes, so this
// genuinely fails with ErrInvalidUTF8 for non-text payloads.
func (c Chunk) DataAsString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", ErrInvalidUTF8
	}
	return string(c.data), nil
}

// String renders the raw bytes of the chunk's type for diagnostics.
// It is not part of the wire format.
func (c Chunk) String() string {
	return fmt.Sprintf("%v", c.chunkType.Bytes())
}

// checksum computes the CRC-32/IEEE checksum over the chunk type bytes
// followed by the payload bytes.
func checksum(chunkType ChunkType, data []byte) uint32 {
	crc := crc32.Update(0, crc32.IEEETable, chunkType.bytes[:])
	return crc32.Update(crc, crc32.IEEETable, data)
}
