package rle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePixelDataObject is a minimal in-memory PixelDataObject test double.
type fakePixelDataObject struct {
	cols, rows             uint16
	samplesPerPixel        uint16
	bitsAllocated          uint16
	fragments              [][]byte
	missing                map[string]bool
}

func (f *fakePixelDataObject) Columns() (uint16, bool) {
	return f.cols, !f.missing["Columns"]
}

func (f *fakePixelDataObject) Rows() (uint16, bool) {
	return f.rows, !f.missing["Rows"]
}

func (f *fakePixelDataObject) SamplesPerPixel() (uint16, bool) {
	return f.samplesPerPixel, !f.missing["SamplesPerPixel"]
}

func (f *fakePixelDataObject) BitsAllocated() (uint16, bool) {
	return f.bitsAllocated, !f.missing["BitsAllocated"]
}

func (f *fakePixelDataObject) NumberOfFragments() (int, bool) {
	return len(f.fragments), !f.missing["NumberOfFragments"]
}

func (f *fakePixelDataObject) Fragment(i int) ([]byte, bool) {
	if f.missing["Fragment"] || i < 0 || i >= len(f.fragments) {
		return nil, false
	}
	return f.fragments[i], true
}

// buildFragment assembles a 64-byte RLE header followed by the given raw
// segment byte slices, computing the offset table automatically.
func buildFragment(segments ...[]byte) []byte {
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

func TestDecode_SingleSampleEightBit(t *testing.T) {
	// One 2x2 grayscale frame, literal run of the four pixel bytes.
	segment := []byte{0x03, 1, 2, 3, 4}
	fragment := buildFragment(segment)

	src := &fakePixelDataObject{
		cols: 2, rows: 2, samplesPerPixel: 1, bitsAllocated: 8,
		fragments: [][]byte{fragment},
		missing:   map[string]bool{},
	}

	var out []byte
	require.NoError(t, Decode(src, &out))
	assert.Equal(t, []byte{1, 2, 3, 4}, out)
}

func TestDecode_SixteenBitInterleaving(t *testing.T) {
	// One 1x2 frame, 16-bit samples: two byte-plane segments exercise the
	// ii/inv interleaving math.
	segIndex0 := []byte{0x01, 0xAA, 0xBB} // byteOffset 0 plane
	segIndex1 := []byte{0x01, 0x11, 0x22} // byteOffset 1 plane
	fragment := buildFragment(segIndex0, segIndex1)

	src := &fakePixelDataObject{
		cols: 2, rows: 1, samplesPerPixel: 1, bitsAllocated: 16,
		fragments: [][]byte{fragment},
		missing:   map[string]bool{},
	}

	var out []byte
	require.NoError(t, Decode(src, &out))
	assert.Equal(t, []byte{0x11, 0xAA, 0x22, 0xBB}, out)
}

func TestDecode_MultiFrame(t *testing.T) {
	frame0 := buildFragment([]byte{0x01, 0x01, 0x02})
	frame1 := buildFragment([]byte{0x01, 0x03, 0x04})

	src := &fakePixelDataObject{
		cols: 2, rows: 1, samplesPerPixel: 1, bitsAllocated: 8,
		fragments: [][]byte{frame0, frame1},
		missing:   map[string]bool{},
	}

	var out []byte
	require.NoError(t, Decode(src, &out))
	assert.Equal(t, []byte{1, 2, 3, 4}, out)
}

func TestDecode_MissingAttribute(t *testing.T) {
	src := &fakePixelDataObject{
		missing: map[string]bool{"Columns": true},
	}
	var out []byte
	err := Decode(src, &out)
	var missingErr *MissingAttributeError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "Columns", missingErr.Name)
}

func TestDecode_UnsupportedBitDepth(t *testing.T) {
	src := &fakePixelDataObject{
		cols: 2, rows: 2, samplesPerPixel: 1, bitsAllocated: 12,
		missing: map[string]bool{},
	}
	var out []byte
	err := Decode(src, &out)
	var bitErr *UnsupportedBitDepthError
	require.ErrorAs(t, err, &bitErr)
	assert.Equal(t, 12, bitErr.BitsAllocated)
}

func TestDecode_MissingFragment(t *testing.T) {
	src := &fakePixelDataObject{
		cols: 2, rows: 2, samplesPerPixel: 1, bitsAllocated: 8,
		fragments: [][]byte{},
		missing:   map[string]bool{},
	}
	var out []byte
	err := Decode(src, &out)
	assert.ErrorIs(t, err, ErrMissingPixelData)
}

func TestDecode_CorruptSegmentOffsets(t *testing.T) {
	// Header claims one segment starting past the end of the fragment.
	fragment := buildFragment([]byte{0x03, 1, 2, 3, 4})
	fragment[4] = 0xFF
	fragment[5] = 0xFF

	src := &fakePixelDataObject{
		cols: 2, rows: 2, samplesPerPixel: 1, bitsAllocated: 8,
		fragments: [][]byte{fragment},
		missing:   map[string]bool{},
	}
	var out []byte
	err := Decode(src, &out)
	var decodeErr *SegmentDecodeFailureError
	require.ErrorAs(t, err, &decodeErr)
}

func TestDecode_SegmentDecodeFailureWraps(t *testing.T) {
	// The only segment is a one-byte literal run, short of the 4-byte destination.
	fragment := buildFragment([]byte{0x00, 0xAA})
	src := &fakePixelDataObject{
		cols: 2, rows: 2, samplesPerPixel: 1, bitsAllocated: 8,
		fragments: [][]byte{fragment},
		missing:   map[string]bool{},
	}
	var out []byte
	err := Decode(src, &out)
	var decodeErr *SegmentDecodeFailureError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, 0, decodeErr.Frame)
	var underflow *SegmentUnderflowError
	assert.ErrorAs(t, decodeErr.Unwrap(), &underflow)
}
