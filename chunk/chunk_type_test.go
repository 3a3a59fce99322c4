package chunk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewChunkType(t *testing.T) {
	require := require.New(t)

	expected := [4]byte{82, 117, 83, 116} // "RuSt"
	actual, err := NewChunkType(expected)
	require.NoError(err)
	require.Equal(expected, actual.Bytes())

	_, err = NewChunkType([4]byte{82, 117, 0xFF, 116})
	require.ErrorIs(err, ErrInvalidByte)
}

func TestNewChunkTypeFromString(t *testing.T) {
	require := require.New(t)

	expected, err := NewChunkType([4]byte{82, 117, 83, 116})
	require.NoError(err)

	actual, err := NewChunkTypeFromString("RuSt")
	require.NoError(err)
	require.Equal(expected, actual)

	_, err = NewChunkTypeFromString("RuS")
	require.ErrorIs(err, ErrInvalidChunkTypeSize)

	_, err = NewChunkTypeFromString("RuSty")
	require.ErrorIs(err, ErrInvalidChunkTypeSize)
}

// The string constructor only admits letters, while the byte constructor
// admits any ASCII byte, so the same four bytes may be rejected by one
// path and accepted by the other.
func TestChunkTypeConstructionAsymmetry(t *testing.T) {
	require := require.New(t)

	_, err := NewChunkTypeFromString("Ru1t")
	require.ErrorIs(err, ErrInvalidByte)

	ct, err := NewChunkType([4]byte{'R', 'u', '1', 't'})
	require.NoError(err)
	require.Equal("Ru1t", ct.String())
}

func TestChunkTypeFlags(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		name     string
		critical bool
		public   bool
		reserved bool
		safe     bool
		valid    bool
	}{
		{"RuSt", true, false, true, true, true},
		{"ruSt", false, false, true, true, true},
		{"RUSt", true, true, true, true, true},
		{"Rust", true, false, false, true, false},
		{"RuST", true, false, true, false, true},
		{"IHDR", true, true, true, false, true},
		{"tEXt", false, true, true, true, true},
	}

	for _, test := range tests {
		ct, err := NewChunkTypeFromString(test.name)
		require.NoError(err, test.name)

		require.Equal(test.critical, ct.IsCritical(), "%s critical", test.name)
		require.Equal(test.public, ct.IsPublic(), "%s public", test.name)
		require.Equal(test.reserved, ct.IsReservedBitValid(), "%s reserved", test.name)
		require.Equal(test.safe, ct.IsSafeToCopy(), "%s safe to copy", test.name)
		require.Equal(test.valid, ct.IsValid(), "%s valid", test.name)
	}
}

func TestChunkTypeString(t *testing.T) {
	require := require.New(t)

	ct, err := NewChunkTypeFromString("RuSt")
	require.NoError(err)
	require.Equal("RuSt", ct.String())
}

func TestChunkTypeEquality(t *testing.T) {
	require := require.New(t)

	a, err := NewChunkType([4]byte{82, 117, 83, 116})
	require.NoError(err)
	b, err := NewChunkTypeFromString("RuSt")
	require.NoError(err)
	c, err := NewChunkTypeFromString("ruSt")
	require.NoError(err)

	require.True(a == b)
	require.False(a == c)
}

func TestWellKnownChunkTypes(t *testing.T) {
	require := require.New(t)

	require.True(TypeIHDR.IsCritical())
	require.True(TypeIHDR.IsPublic())
	require.True(TypeIHDR.IsValid())
	require.False(TypeIHDR.IsSafeToCopy())

	require.False(TypeTEXT.IsCritical())
	require.True(TypeTEXT.IsPublic())
	require.True(TypeTEXT.IsValid())
	require.True(TypeTEXT.IsSafeToCopy())

	require.Equal("IEND", TypeIEND.String())
	require.Equal("pHYs", TypePHYS.String())
}
