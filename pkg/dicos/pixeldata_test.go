package dicos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixelData_FrameAccessors(t *testing.T) {
	pd := &PixelData{
		Frames: []Frame{
			{Data: []uint16{1, 2, 3, 4}},
			{Data: []uint16{5, 6, 7, 8}},
		},
	}

	assert.Equal(t, 2, pd.NumFrames())
	assert.True(t, pd.HasFrames())
	assert.False(t, pd.IsCompressed())

	frame, err := pd.GetFrame(1)
	require.NoError(t, err)
	assert.Equal(t, []uint16{5, 6, 7, 8}, frame.Data)

	_, err = pd.GetFrame(-1)
	assert.Error(t, err)
	_, err = pd.GetFrame(2)
	assert.Error(t, err)
}

func TestPixelData_Empty(t *testing.T) {
	pd := &PixelData{}
	assert.Equal(t, 0, pd.NumFrames())
	assert.False(t, pd.HasFrames())
}

func TestPixelData_GetFlatData(t *testing.T) {
	pd := &PixelData{
		Frames: []Frame{
			{Data: []uint16{1, 2, 3}},
			{Data: []uint16{4, 5, 6}},
		},
	}
	assert.Equal(t, []uint16{1, 2, 3, 4, 5, 6}, pd.GetFlatData())

	// Encapsulated data has no flat sample view until decoded.
	encapsulated := &PixelData{
		IsEncapsulated: true,
		Frames:         []Frame{{CompressedData: []byte{1, 2, 3}}},
	}
	assert.True(t, encapsulated.IsCompressed())
	assert.Nil(t, encapsulated.GetFlatData())
}

func TestEncodeNativeFrames(t *testing.T) {
	pd := &PixelData{
		Frames: []Frame{
			{Data: []uint16{0x0102, 0x0304}},
			{Data: []uint16{0x0506, 0x0708}},
		},
	}

	// 16-bit samples come out little-endian, frames concatenated.
	out := encodeNativeFrames(pd, 16)
	assert.Equal(t, []byte{0x02, 0x01, 0x04, 0x03, 0x06, 0x05, 0x08, 0x07}, out)

	// 8-bit samples keep only the low byte.
	out = encodeNativeFrames(pd, 8)
	assert.Equal(t, []byte{0x02, 0x04, 0x06, 0x08}, out)
}
