package hexdecode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgtpuzzles/puzzlecore/hexdecode"
)

func TestDecodeNibbleAllValidDigits(t *testing.T) {
	cases := map[byte]byte{
		'0': 0, '5': 5, '9': 9,
		'a': 10, 'f': 15,
		'A': 10, 'F': 15,
	}
	for c, want := range cases {
		got, err := hexdecode.DecodeNibble(c)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestDecodeNibbleInvalid(t *testing.T) {
	_, err := hexdecode.DecodeNibble('g')
	require.Error(t, err)
	var nerr *hexdecode.InvalidNibbleError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, byte('g'), nerr.Char)
}

func TestDecodeRoundTrip(t *testing.T) {
	got, err := hexdecode.Decode("deadbeef")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, got)
}

func TestDecodeOddLength(t *testing.T) {
	_, err := hexdecode.Decode("abc")
	assert.ErrorIs(t, err, hexdecode.ErrOddLength)
}

func TestDecodeReportsPosition(t *testing.T) {
	_, err := hexdecode.Decode("ffzz")
	var nerr *hexdecode.InvalidNibbleError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, 2, nerr.Pos)
}

func TestDecodeEmpty(t *testing.T) {
	got, err := hexdecode.Decode("")
	require.NoError(t, err)
	assert.Empty(t, got)
}
