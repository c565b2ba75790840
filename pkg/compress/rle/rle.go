// Package rle decodes DICOM RLE Lossless (transfer syntax
// 1.2.840.10008.1.2.5) pixel data fragments.
//
// Each fragment corresponds to one frame and begins with a 64-byte header
// (see readHeader) followed by up to 15 PackBits-variant segments, one per
// byte-plane of one sample. Decode reassembles the segments into a single
// interleaved-by-pixel output buffer regardless of the dataset's Planar
// Configuration attribute — this is a deliberate normalization so callers
// always see the same layout.
package rle

import (
	"fmt"

	"github.com/dicomgo/dcmcodec/pkg/primitive"
)

// PixelDataObject is the capability set Decode needs from a DICOM dataset.
// Each accessor's second return value reports attribute presence; false
// produces a MissingAttributeError.
type PixelDataObject interface {
	Columns() (uint16, bool)
	Rows() (uint16, bool)
	SamplesPerPixel() (uint16, bool)
	BitsAllocated() (uint16, bool)
	NumberOfFragments() (int, bool)
	Fragment(i int) ([]byte, bool)
}

const headerSize = 64

// readHeader parses a fragment's 64-byte RLE header, returning the N
// segment start offsets plus a sentinel trailing offset equal to the
// fragment's total length, so segment i's bytes are always
// fragment[offsets[i]:offsets[i+1]].
func readHeader(fragment []byte) ([]uint32, error) {
	if len(fragment) < headerSize {
		return nil, fmt.Errorf("rle: fragment shorter than header (%d bytes)", len(fragment))
	}
	n, err := primitive.DecodeU32(fragment[0:4], primitive.LittleEndian)
	if err != nil {
		return nil, err
	}
	if n < 1 || n > 15 {
		return nil, fmt.Errorf("rle: invalid segment count %d", n)
	}
	offsets := make([]uint32, n+1)
	for i := 0; i < int(n); i++ {
		off, err := primitive.DecodeU32(fragment[4+4*i:8+4*i], primitive.LittleEndian)
		if err != nil {
			return nil, err
		}
		offsets[i] = off
	}
	offsets[n] = uint32(len(fragment))
	for i := 0; i < int(n); i++ {
		if offsets[i] < headerSize || offsets[i] > offsets[i+1] {
			return nil, fmt.Errorf("rle: segment %d offset %d out of bounds", i, offsets[i])
		}
	}
	return offsets, nil
}

// Decode decodes every fragment of src into dst, resizing dst as needed to
// numberOfFragments * samplesPerPixel * rows * cols * (bitsAllocated/8)
// bytes.
func Decode(src PixelDataObject, dst *[]byte) error {
	cols, ok := src.Columns()
	if !ok {
		return &MissingAttributeError{Name: "Columns"}
	}
	rows, ok := src.Rows()
	if !ok {
		return &MissingAttributeError{Name: "Rows"}
	}
	samplesPerPixel, ok := src.SamplesPerPixel()
	if !ok {
		return &MissingAttributeError{Name: "SamplesPerPixel"}
	}
	bitsAllocated, ok := src.BitsAllocated()
	if !ok {
		return &MissingAttributeError{Name: "BitsAllocated"}
	}
	if bitsAllocated != 8 && bitsAllocated != 16 {
		return &UnsupportedBitDepthError{BitsAllocated: int(bitsAllocated)}
	}
	numFrames, ok := src.NumberOfFragments()
	if !ok {
		return &MissingAttributeError{Name: "NumberOfFragments"}
	}

	bytesPerSample := int(bitsAllocated) / 8
	stride := bytesPerSample * int(cols) * int(rows)
	frameSize := int(samplesPerPixel) * stride

	out := make([]byte, frameSize*numFrames)
	scratch := make([]byte, int(rows)*int(cols))

	for i := 0; i < numFrames; i++ {
		fragment, ok := src.Fragment(i)
		if !ok {
			return ErrMissingPixelData
		}
		offsets, err := readHeader(fragment)
		if err != nil {
			return &SegmentDecodeFailureError{Frame: i, Err: err}
		}

		for sample := 0; sample < int(samplesPerPixel); sample++ {
			for byteOffset := bytesPerSample - 1; byteOffset >= 0; byteOffset-- {
				ii := sample*bytesPerSample + byteOffset
				if ii+1 >= len(offsets) {
					return &SegmentDecodeFailureError{Frame: i, Segment: ii, Err: fmt.Errorf("rle: segment index out of range")}
				}
				segment := fragment[offsets[ii]:offsets[ii+1]]
				if err := decodeSegment(segment, scratch); err != nil {
					return &SegmentDecodeFailureError{Frame: i, Segment: ii, Err: err}
				}

				inv := bytesPerSample - byteOffset - 1
				sampleOffset := sample * bytesPerSample
				frameBase := frameSize * i
				step := bytesPerSample * int(samplesPerPixel)
				start := frameBase + sampleOffset + inv
				for k := 0; k < len(scratch); k++ {
					out[start+k*step] = scratch[k]
				}
			}
		}
	}

	*dst = out
	return nil
}
