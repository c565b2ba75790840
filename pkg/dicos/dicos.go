// Package dicos provides a native Go implementation for reading DICOM
// streams and decoding the primitive values they carry.
//
// It covers:
//   - Low-level DICOM tag/element parsing (implicit and explicit VR)
//   - Numeric, date, time and date-time value decoding via pkg/primitive
//     and pkg/dtvalue
//   - RLE Lossless pixel data decompression via pkg/compress/rle
//
// Basic usage:
//
//	// Read a DICOM file
//	ds, err := dicos.ReadFile("/path/to/file.dcm")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Access pixel data
//	frames, err := dicos.DecodeFrames(ds)
package dicos

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dicomgo/dcmcodec/pkg/dicos/tag"
	"github.com/dicomgo/dcmcodec/pkg/dicos/transfer"
)

// Re-export commonly used types from subpackages
type (
	// TransferSyntax represents a DICOM transfer syntax
	TransferSyntax = transfer.Syntax
)

// Transfer syntax constants
const (
	ExplicitVRLittleEndian = transfer.ExplicitVRLittleEndian
	ImplicitVRLittleEndian = transfer.ImplicitVRLittleEndian
	RLELossless            = transfer.RLELossless
)

// ReadFile reads a DICOM/DICOS file from disk
func ReadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	return Parse(bytes.NewReader(data))
}

// ReadBuffer reads a DICOM/DICOS file from a byte slice
func ReadBuffer(data []byte) (*Dataset, error) {
	return Parse(bytes.NewReader(data))
}

// GetExtension returns the standard DICOS file extension
func GetExtension() string {
	return ".dcs"
}

// GetModality returns the modality string from the dataset
func GetModality(ds *Dataset) string {
	if elem, ok := ds.FindElement(tag.Modality.Group, tag.Modality.Element); ok {
		if s, ok := elem.GetString(); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// GetTransferSyntax returns the transfer syntax from the dataset
func GetTransferSyntax(ds *Dataset) TransferSyntax {
	if elem, ok := ds.FindElement(tag.TransferSyntaxUID.Group, tag.TransferSyntaxUID.Element); ok {
		if s, ok := elem.GetString(); ok {
			return transfer.FromUID(strings.TrimSpace(s))
		}
	}
	return ExplicitVRLittleEndian // Default
}

// IsEncapsulated returns true if the pixel data is encapsulated (compressed)
func IsEncapsulated(ds *Dataset) bool {
	syntax := GetTransferSyntax(ds)
	return syntax.IsEncapsulated()
}

// GetRows returns the number of rows in the image
func GetRows(ds *Dataset) int {
	if elem, ok := ds.FindElement(tag.Rows.Group, tag.Rows.Element); ok {
		if v, ok := elem.GetInt(); ok {
			return v
		}
	}
	return 0
}

// GetColumns returns the number of columns in the image
func GetColumns(ds *Dataset) int {
	if elem, ok := ds.FindElement(tag.Columns.Group, tag.Columns.Element); ok {
		if v, ok := elem.GetInt(); ok {
			return v
		}
	}
	return 0
}

// GetNumberOfFrames returns the number of frames in the image
func GetNumberOfFrames(ds *Dataset) int {
	if elem, ok := ds.FindElement(tag.NumberOfFrames.Group, tag.NumberOfFrames.Element); ok {
		if v, ok := elem.GetInt(); ok {
			return v
		}
		// Number of Frames can be a string (IS VR)
		if s, ok := elem.GetString(); ok {
			var n int
			fmt.Sscanf(strings.TrimSpace(s), "%d", &n)
			return n
		}
	}
	return 1 // Default to 1 if not specified
}

// GetBitsAllocated returns the bits allocated per sample
func GetBitsAllocated(ds *Dataset) int {
	if elem, ok := ds.FindElement(tag.BitsAllocated.Group, tag.BitsAllocated.Element); ok {
		if v, ok := elem.GetInt(); ok {
			return v
		}
	}
	return 16 // Default
}

// GetPixelRepresentation returns 0 for unsigned, 1 for signed
func GetPixelRepresentation(ds *Dataset) int {
	if elem, ok := ds.FindElement(tag.PixelRepresentation.Group, tag.PixelRepresentation.Element); ok {
		if v, ok := elem.GetInt(); ok {
			return v
		}
	}
	return 0 // Default to unsigned
}

// GetPixelData extracts and returns pixel data from the dataset
func (ds *Dataset) GetPixelData() (*PixelData, error) {
	elem, ok := ds.FindElement(tag.PixelData.Group, tag.PixelData.Element)
	if !ok {
		return nil, fmt.Errorf("no pixel data element found")
	}

	// Case 1: Already converted to *PixelData (encapsulated)
	if pd, ok := elem.GetPixelData(); ok {
		return pd, nil
	}

	// Case 2: Uncompressed data
	var u16Raw []uint16
	var byteRaw []byte

	switch v := elem.Value.(type) {
	case []byte:
		byteRaw = v
	case []uint16:
		u16Raw = v
	default:
		return nil, fmt.Errorf("pixel data element has unexpected type: %T", elem.Value)
	}

	// Get dimensions for conversion
	rows := GetRows(ds)
	cols := GetColumns(ds)
	numFrames := GetNumberOfFrames(ds)
	bitsAllocated := GetBitsAllocated(ds)

	slog.Debug("Converting uncompressed pixel data",
		slog.Int("rows", rows),
		slog.Int("cols", cols),
		slog.Int("numFrames", numFrames),
		slog.Int("bitsAllocated", bitsAllocated),
		slog.String("type", fmt.Sprintf("%T", elem.Value)))

	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("invalid dimensions for pixel data conversion: %dx%d", rows, cols)
	}

	pd := &PixelData{
		IsEncapsulated: false,
		Frames:         make([]Frame, numFrames),
	}

	bytesPerPixel := (bitsAllocated + 7) / 8
	pixelsPerFrame := rows * cols
	frameSizeInBytes := pixelsPerFrame * bytesPerPixel

	slog.Debug("Calculated frame metrics",
		slog.Int("bytesPerPixel", bytesPerPixel),
		slog.Int("frameSizeInBytes", frameSizeInBytes),
		slog.Int("pixelsPerFrame", pixelsPerFrame))

	for i := 0; i < numFrames; i++ {
		u16Data := make([]uint16, pixelsPerFrame)

		if len(u16Raw) > 0 {
			start := i * pixelsPerFrame
			end := start + pixelsPerFrame
			if end > len(u16Raw) {
				return nil, fmt.Errorf("pixel data truncated: expected %d pixels for %d frames, got %d", numFrames*pixelsPerFrame, numFrames, len(u16Raw))
			}
			copy(u16Data, u16Raw[start:end])
		} else if len(byteRaw) > 0 {
			start := i * frameSizeInBytes
			end := start + frameSizeInBytes
			if end > len(byteRaw) {
				return nil, fmt.Errorf("pixel data truncated: expected %d bytes for %d frames, got %d", numFrames*frameSizeInBytes, numFrames, len(byteRaw))
			}

			frameData := byteRaw[start:end]
			if bytesPerPixel == 2 {
				for j := 0; j < pixelsPerFrame; j++ {
					if j*2+1 < len(frameData) {
						u16Data[j] = uint16(frameData[j*2]) | (uint16(frameData[j*2+1]) << 8)
					}
				}
			} else {
				for j := 0; j < pixelsPerFrame; j++ {
					if j < len(frameData) {
						u16Data[j] = uint16(frameData[j])
					}
				}
			}
		}

		pd.Frames[i] = Frame{
			Data: u16Data,
		}
	}

	return pd, nil
}

