package dicos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicomgo/dcmcodec/pkg/dicos/tag"
	"github.com/dicomgo/dcmcodec/pkg/dicos/transfer"
)

// buildRLEFragment assembles a 64-byte RLE header followed by the given raw
// segment byte slices, computing the offset table automatically. Mirrors
// pkg/compress/rle's own test helper since that package's unexported
// buildFragment isn't reachable from here.
func buildRLEFragment(segments ...[]byte) []byte {
	const headerSize = 64
	header := make([]byte, headerSize)
	putU32 := func(buf []byte, off int, v uint32) {
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
		buf[off+2] = byte(v >> 16)
		buf[off+3] = byte(v >> 24)
	}
	putU32(header, 0, uint32(len(segments)))

	fragment := append([]byte{}, header...)
	offset := uint32(headerSize)
	for i, seg := range segments {
		putU32(header, 4+4*i, offset)
		fragment = append(fragment, seg...)
		offset += uint32(len(seg))
	}
	copy(fragment[:headerSize], header)
	return fragment
}

// TestDecodeFrames_RLEEndToEnd builds a minimal synthetic dataset (no wire
// parsing involved) carrying RLE Lossless encapsulated pixel data and drives
// it through Dataset.PixelDataObject -> CodecByTransferSyntax -> DecodeFrames,
// exercising the full dataset-to-codec wiring the RLE decoder depends on.
func TestDecodeFrames_RLEEndToEnd(t *testing.T) {
	// 2x2 8-bit grayscale frame, single literal-run segment: pixels 1,2,3,4.
	fragment := buildRLEFragment([]byte{0x03, 1, 2, 3, 4})

	ds := &Dataset{
		Elements: map[Tag]*Element{
			tag.Columns:         {Tag: tag.Columns, VR: "US", Value: uint16(2)},
			tag.Rows:            {Tag: tag.Rows, VR: "US", Value: uint16(2)},
			tag.SamplesPerPixel: {Tag: tag.SamplesPerPixel, VR: "US", Value: uint16(1)},
			tag.BitsAllocated:   {Tag: tag.BitsAllocated, VR: "US", Value: uint16(8)},
			tag.TransferSyntaxUID: {
				Tag: tag.TransferSyntaxUID, VR: "UI", Value: string(transfer.RLELossless),
			},
			tag.PixelData: {
				Tag: tag.PixelData,
				VR:  "OB",
				Value: &PixelData{
					IsEncapsulated: true,
					Frames:         []Frame{{CompressedData: fragment}},
				},
			},
		},
	}

	require.True(t, ds.IsEncapsulated())
	assert.Equal(t, transfer.RLELossless, ds.TransferSyntax())

	out, err := DecodeFrames(ds)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, out)

	frame0, err := DecodeFrameData(ds, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, frame0)
}

// TestDecodeFrames_UnsupportedTransferSyntax verifies encapsulated pixel
// data under a transfer syntax this module has no codec for (e.g. one of
// the JPEG families dropped as a Non-goal) surfaces a clear error instead
// of silently returning garbage.
func TestDecodeFrames_UnsupportedTransferSyntax(t *testing.T) {
	ds := &Dataset{
		Elements: map[Tag]*Element{
			tag.TransferSyntaxUID: {
				Tag: tag.TransferSyntaxUID, VR: "UI", Value: "1.2.840.10008.1.2.4.90",
			},
			tag.PixelData: {
				Tag: tag.PixelData,
				VR:  "OB",
				Value: &PixelData{
					IsEncapsulated: true,
					Frames:         []Frame{{CompressedData: []byte{0x00}}},
				},
			},
		},
	}

	_, err := DecodeFrames(ds)
	assert.ErrorIs(t, err, ErrUnsupportedTransferSyntax)
}
