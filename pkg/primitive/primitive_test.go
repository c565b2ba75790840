package primitive

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Asymmetric byte pattern so a byte-order mixup can't produce the same
// value under both endiannesses.
func TestReadIntegers(t *testing.T) {
	raw := []byte{0xC3, 0x3C, 0x33, 0xCC}

	le := NewDecoder(bytes.NewReader(raw), LittleEndian)
	u16, err := le.ReadU16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x3CC3), u16)

	be := NewDecoder(bytes.NewReader(raw), BigEndian)
	u16be, err := be.ReadU16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0xC33C), u16be)

	leU32 := NewDecoder(bytes.NewReader(raw), LittleEndian)
	u32, err := leU32.ReadU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xCC333CC3), u32)

	beU32 := NewDecoder(bytes.NewReader(raw), BigEndian)
	u32be, err := beU32.ReadU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xC33C33CC), u32be)
}

func TestReadSignedAndFloat(t *testing.T) {
	// -1 as SS/SL in both byte orders is all-0xFF regardless of order.
	allFF := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	d := NewDecoder(bytes.NewReader(allFF), LittleEndian)
	i16, err := d.ReadI16()
	require.NoError(t, err)
	assert.Equal(t, int16(-1), i16)

	d32 := NewDecoder(bytes.NewReader(allFF), BigEndian)
	i32, err := d32.ReadI32()
	require.NoError(t, err)
	assert.Equal(t, int32(-1), i32)

	// 1.0f32 little endian bit pattern: 0x3F800000
	f32bytes := []byte{0x00, 0x00, 0x80, 0x3F}
	df := NewDecoder(bytes.NewReader(f32bytes), LittleEndian)
	f32, err := df.ReadF32()
	require.NoError(t, err)
	assert.Equal(t, float32(1.0), f32)

	// 1.0f64 little endian bit pattern: 0x3FF0000000000000
	f64bytes := []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF0, 0x3F}
	df64 := NewDecoder(bytes.NewReader(f64bytes), LittleEndian)
	f64, err := df64.ReadF64()
	require.NoError(t, err)
	assert.Equal(t, 1.0, f64)
}

func TestReadUnexpectedEOF(t *testing.T) {
	d := NewDecoder(bytes.NewReader([]byte{0x01}), LittleEndian)
	_, err := d.ReadU16()
	assert.ErrorIs(t, err, ErrUnexpectedEOF)

	_, err = NewDecoder(bytes.NewReader(nil), LittleEndian).ReadU32()
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestDecodeHelpersShortBuffer(t *testing.T) {
	_, err := DecodeU16([]byte{0x01}, LittleEndian)
	assert.ErrorIs(t, err, ErrUnexpectedEOF)

	_, err = DecodeF64([]byte{1, 2, 3}, LittleEndian)
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}
