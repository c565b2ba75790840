package dicos

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrUnsupportedTransferSyntax is returned when a dataset's encapsulated
// pixel data uses a transfer syntax this module has no decoder for.
var ErrUnsupportedTransferSyntax = errors.New("dicos: unsupported transfer syntax for pixel data decode")

// DecodeFrames decodes every frame of a dataset's pixel data into a single
// byte buffer, laid out frame-major; within a frame, pixels are in
// row-major order and RLE-decoded samples of one pixel are adjacent. For
// native (uncompressed) pixel data this is a direct repacking of the
// element's values; for encapsulated data the dataset's transfer syntax
// must be RLE Lossless.
func DecodeFrames(ds *Dataset) ([]byte, error) {
	pd, err := ds.GetPixelData()
	if err != nil {
		return nil, err
	}

	if !pd.IsCompressed() {
		return encodeNativeFrames(pd, ds.BitsAllocated()), nil
	}

	ts := ds.TransferSyntax()
	codec := CodecByTransferSyntax(ts)
	if codec == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTransferSyntax, ts)
	}

	out, err := codec.Decode(ds)
	if err != nil {
		return nil, fmt.Errorf("decoding %s pixel data: %w", codec.Name(), err)
	}
	return out, nil
}

// encodeNativeFrames packs the already-decoded uint16 frame values back
// into a row-major byte buffer matching the sample width implied by
// bitsAllocated.
func encodeNativeFrames(pd *PixelData, bitsAllocated int) []byte {
	bytesPerSample := (bitsAllocated + 7) / 8
	if bytesPerSample < 1 {
		bytesPerSample = 1
	}

	flat := pd.GetFlatData()
	out := make([]byte, 0, len(flat)*bytesPerSample)
	for _, v := range flat {
		if bytesPerSample == 1 {
			out = append(out, byte(v))
		} else {
			out = append(out, byte(v), byte(v>>8))
		}
	}
	return out
}

// DecodeFrameData decodes a single frame of pixel data, returning raw
// sample bytes for that frame only.
func DecodeFrameData(ds *Dataset, frameIndex int) ([]byte, error) {
	frames, err := DecodeFrames(ds)
	if err != nil {
		return nil, err
	}

	numFrames := ds.NumberOfFrames()
	if numFrames <= 0 {
		numFrames = 1
	}
	if len(frames)%numFrames != 0 {
		slog.Warn("frame buffer size not evenly divisible by frame count",
			"bufferLen", len(frames), "numFrames", numFrames)
	}
	frameSize := len(frames) / numFrames

	if frameIndex < 0 || frameIndex >= numFrames {
		return nil, fmt.Errorf("frame index %d out of range (0-%d)", frameIndex, numFrames-1)
	}

	start := frameIndex * frameSize
	end := start + frameSize
	if end > len(frames) {
		return nil, fmt.Errorf("frame %d extends past decoded buffer", frameIndex)
	}
	return frames[start:end], nil
}
