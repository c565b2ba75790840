package rle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mixed replicate and literal runs covering both control-byte arms.
func TestDecodeSegment_PackBitsExample(t *testing.T) {
	encoded := []byte{
		0xFE, 0xAA, 0x02, 0x80, 0x00, 0x2A, 0xFD, 0xAA, 0x03, 0x80, 0x00, 0x2A, 0x22,
		0xF7, 0xAA,
	}
	expected := []byte{
		0xAA, 0xAA, 0xAA, 0x80, 0x00, 0x2A, 0xAA, 0xAA, 0xAA, 0xAA, 0x80, 0x00, 0x2A, 0x22,
		0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA,
	}

	dst := make([]byte, len(expected))
	require.NoError(t, decodeSegment(encoded, dst))
	assert.Equal(t, expected, dst)
}

func TestDecodeSegment_NoOpByte(t *testing.T) {
	dst := make([]byte, 1)
	data := []byte{0x80, 0x00, 0x7F} // -128 no-op, then literal run of 1 (0x7F)
	require.NoError(t, decodeSegment(data, dst))
	assert.Equal(t, []byte{0x7F}, dst)
}

func TestDecodeSegment_TruncatedLiteralRun(t *testing.T) {
	dst := make([]byte, 5)
	data := []byte{0x04, 0x01, 0x02} // literal run of 5 announced, only 2 bytes follow
	err := decodeSegment(data, dst)
	assert.ErrorIs(t, err, ErrUnexpectedEndOfInput)
}

func TestDecodeSegment_TruncatedReplicateRun(t *testing.T) {
	dst := make([]byte, 5)
	data := []byte{0xFE} // replicate header with no following data byte
	err := decodeSegment(data, dst)
	assert.ErrorIs(t, err, ErrUnexpectedEndOfInput)
}

func TestDecodeSegment_Underflow(t *testing.T) {
	dst := make([]byte, 10)
	data := []byte{0x01, 0xAA, 0xBB} // only fills 3 of 10 bytes, then input ends cleanly
	err := decodeSegment(data, dst)
	var underflow *SegmentUnderflowError
	assert.ErrorAs(t, err, &underflow)
}

func TestDecodeSegment_Overflow(t *testing.T) {
	dst := make([]byte, 2)
	data := []byte{0x04, 1, 2, 3, 4, 5} // literal run of 5 into a 2-byte destination
	err := decodeSegment(data, dst)
	var overflow *SegmentOverflowError
	assert.ErrorAs(t, err, &overflow)
}
