package dicos

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/dicomgo/dcmcodec/pkg/compress/rle"
	"github.com/dicomgo/dcmcodec/pkg/dicos/tag"
	"github.com/dicomgo/dcmcodec/pkg/dicos/transfer"
	"github.com/dicomgo/dcmcodec/pkg/dtvalue"
)

// Dataset represents a complete DICOM/DICOS dataset as a map of Tags to Elements.
// A Dataset contains all DICOM data elements from a file or constructed programmatically.
// The Elements map uses Tag (group, element) as the key for efficient lookup.
//
// Example:
//
//	ds, err := dicos.ReadFile("scan.dcs")
//	if err != nil {
//		log.Fatal(err)
//	}
//	elem, ok := ds.FindElement(tag.PatientID.Group, tag.PatientID.Element)
type Dataset struct {
	Elements map[Tag]*Element
}

// Element represents a single DICOM data element with its tag, Value Representation (VR),
// and typed value.
//
// The VR field indicates the data type (e.g., "US" for unsigned short, "CS" for code string,
// "UI" for unique identifier). See the DICOM standard Part 5 for complete VR definitions.
//
// The Value field contains the parsed element value with Go types:
//   - String values: string
//   - Numeric values: uint16, uint32, int16, int32, []uint16, []uint32
//   - Floating point: float32, float64
//   - Pixel data: *PixelData
//   - Anything else (multi-valued SS/SL/FL/FD, AT, OB/OW/UN, defined-length
//     sequences): []byte; undefined-length sequences are skipped (nil)
//
// A programmatically built Dataset may also hold []*Dataset as a sequence.
//
// Use the typed getter methods (GetString, GetInt, GetInts, etc.) to safely extract values.
type Element struct {
	Tag   Tag
	VR    string      // Value Representation
	Value interface{} // Parsed value
}

// Tag alias to avoid duplication
type Tag = tag.Tag

// PixelData holds a dataset's pixel data in one of two forms, selected by
// IsEncapsulated. Native data carries each frame's samples as []uint16 in
// row-major order; encapsulated data carries each frame's compressed
// bitstream (for RLE Lossless, one fragment per frame starting with the
// 64-byte segment offset header) plus the Basic Offset Table when the
// stream carried one.
type PixelData struct {
	IsEncapsulated bool
	Frames         []Frame
	Offsets        []uint32 // Basic Offset Table
}

// Frame is one image slice: Data for native pixel data, CompressedData for
// encapsulated. The other field is nil.
type Frame struct {
	Data           []uint16
	CompressedData []byte
}

// GetFlatData concatenates every native frame's samples into one slice, in
// frame order. Returns nil for encapsulated data, which has to go through
// DecodeFrames first.
func (pd *PixelData) GetFlatData() []uint16 {
	if pd.IsEncapsulated {
		return nil
	}
	var totalPixels int
	for _, f := range pd.Frames {
		totalPixels += len(f.Data)
	}
	res := make([]uint16, totalPixels)
	offset := 0
	for _, f := range pd.Frames {
		copy(res[offset:], f.Data)
		offset += len(f.Data)
	}
	return res
}

// GetFrame returns the frame at index, or an error when index is out of
// bounds.
func (pd *PixelData) GetFrame(index int) (*Frame, error) {
	if index < 0 || index >= len(pd.Frames) {
		return nil, fmt.Errorf("frame index %d out of bounds (0-%d)", index, len(pd.Frames)-1)
	}
	return &pd.Frames[index], nil
}

// NumFrames returns the number of frames carried, native or encapsulated.
func (pd *PixelData) NumFrames() int {
	return len(pd.Frames)
}

// IsCompressed reports whether the pixel data is encapsulated and needs a
// codec before its samples are usable.
func (pd *PixelData) IsCompressed() bool {
	return pd.IsEncapsulated
}

// HasFrames reports whether at least one frame is present.
func (pd *PixelData) HasFrames() bool {
	return len(pd.Frames) > 0
}

// FindElement returns an element by tag
func (ds *Dataset) FindElement(group, element uint16) (*Element, bool) {
	elem, ok := ds.Elements[Tag{Group: group, Element: element}]
	return elem, ok
}

// Rows returns the number of rows (image height) from Rows (0028,0010).
// Returns 0 if the element is not present.
func (ds *Dataset) Rows() int {
	if elem, ok := ds.FindElement(0x0028, 0x0010); ok {
		if v, ok := elem.GetInt(); ok {
			return v
		}
	}
	return 0
}

// Columns returns the number of columns (image width) from Columns (0028,0011).
// Returns 0 if the element is not present.
func (ds *Dataset) Columns() int {
	if elem, ok := ds.FindElement(0x0028, 0x0011); ok {
		if v, ok := elem.GetInt(); ok {
			return v
		}
	}
	return 0
}

// NumberOfFrames returns the number of frames from NumberOfFrames (0028,0008).
// Returns 1 if not specified (single-frame image).
func (ds *Dataset) NumberOfFrames() int {
	if elem, ok := ds.FindElement(0x0028, 0x0008); ok {
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
	return 1
}

// SamplesPerPixel returns the samples per pixel from SamplesPerPixel (0028,0002).
// Returns 1 as default (grayscale) if not specified.
func (ds *Dataset) SamplesPerPixel() int {
	if elem, ok := ds.FindElement(0x0028, 0x0002); ok {
		if v, ok := elem.GetInt(); ok {
			return v
		}
	}
	return 1
}

// BitsAllocated returns the bits allocated per sample from BitsAllocated (0028,0100).
// Returns 16 as default if not specified.
func (ds *Dataset) BitsAllocated() int {
	if elem, ok := ds.FindElement(0x0028, 0x0100); ok {
		if v, ok := elem.GetInt(); ok {
			return v
		}
	}
	return 16
}

// PixelRepresentation returns the pixel representation from PixelRepresentation (0028,0103).
// Returns 0 (unsigned) as default if not specified.
func (ds *Dataset) PixelRepresentation() int {
	if elem, ok := ds.FindElement(0x0028, 0x0103); ok {
		if v, ok := elem.GetInt(); ok {
			return v
		}
	}
	return 0
}

// Modality returns the Modality (0008,0060) value from the dataset.
// Returns an empty string if the Modality element is not present.
func (ds *Dataset) Modality() string {
	if elem, ok := ds.FindElement(0x0008, 0x0060); ok {
		if s, ok := elem.GetString(); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// TransferSyntax returns the Transfer Syntax UID (0002,0010) from the dataset.
// Returns Explicit VR Little Endian as default if not specified.
func (ds *Dataset) TransferSyntax() transfer.Syntax {
	if elem, ok := ds.FindElement(0x0002, 0x0010); ok {
		if s, ok := elem.GetString(); ok {
			return transfer.FromUID(strings.TrimSpace(s))
		}
	}
	return transfer.ExplicitVRLittleEndian
}

// IsEncapsulated returns true if the dataset's pixel data is encapsulated (compressed).
func (ds *Dataset) IsEncapsulated() bool {
	syntax := ds.TransferSyntax()
	return syntax.IsEncapsulated()
}

// GetString returns a string value from an element
func (elem *Element) GetString() (string, bool) {
	if s, ok := elem.Value.(string); ok {
		return s, true
	}
	return "", false
}

// GetUint16 returns a uint16 value from an element
func (elem *Element) GetUint16() (uint16, bool) {
	if u, ok := elem.Value.(uint16); ok {
		return u, true
	}
	return 0, false
}

// GetUint32 returns a uint32 value from an element
func (elem *Element) GetUint32() (uint32, bool) {
	if u, ok := elem.Value.(uint32); ok {
		return u, true
	}
	return 0, false
}

// GetInt returns an int value from an element
func (elem *Element) GetInt() (int, bool) {
	switch v := elem.Value.(type) {
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case int:
		return v, true
	case int32:
		return int(v), true
	case string:
		var i int
		if _, err := fmt.Sscanf(v, "%d", &i); err == nil {
			return i, true
		}
	case []byte:
		if len(v) == 2 {
			return int(binary.LittleEndian.Uint16(v)), true
		}
		if len(v) == 4 {
			return int(binary.LittleEndian.Uint32(v)), true
		}
	}
	return 0, false
}

// GetInts returns a slice of ints from an element
func (elem *Element) GetInts() ([]int, bool) {
	switch v := elem.Value.(type) {
	case []uint16:
		res := make([]int, len(v))
		for i, val := range v {
			res[i] = int(val)
		}
		return res, true
	case []uint32:
		res := make([]int, len(v))
		for i, val := range v {
			res[i] = int(val)
		}
		return res, true
	case []int:
		return v, true
	case []byte:
		if len(v)%2 == 0 {
			res := make([]int, len(v)/2)
			for i := 0; i < len(res); i++ {
				res[i] = int(binary.LittleEndian.Uint16(v[i*2:]))
			}
			return res, true
		}
	}
	return nil, false
}

// GetFloats returns a slice of float64s from an element
func (elem *Element) GetFloats() ([]float64, bool) {
	switch v := elem.Value.(type) {
	case []float32:
		res := make([]float64, len(v))
		for i, val := range v {
			res[i] = float64(val)
		}
		return res, true
	case []float64:
		return v, true
	case float32:
		return []float64{float64(v)}, true
	case float64:
		return []float64{v}, true
	}
	return nil, false
}

// GetPixelData returns pixel data from an element if the element value is *PixelData.
// Returns (pixelData, true) if successful, (nil, false) otherwise.
//
// This method is typically used internally when extracting pixel data from the
// PixelData (7FE0,0010) element. Most users should call Dataset.GetPixelData() instead,
// which handles both encapsulated and native formats automatically.
func (elem *Element) GetPixelData() (*PixelData, bool) {
	if pd, ok := elem.Value.(*PixelData); ok {
		return pd, true
	}
	return nil, false
}

// datasetPixelData adapts a Dataset and its encapsulated PixelData element
// to rle.PixelDataObject so the RLE decoder can pull dimensions and
// fragments straight from the parsed dataset.
type datasetPixelData struct {
	ds *Dataset
	pd *PixelData
}

func (d *datasetPixelData) Columns() (uint16, bool) {
	if c := d.ds.Columns(); c > 0 {
		return uint16(c), true
	}
	return 0, false
}

func (d *datasetPixelData) Rows() (uint16, bool) {
	if r := d.ds.Rows(); r > 0 {
		return uint16(r), true
	}
	return 0, false
}

func (d *datasetPixelData) SamplesPerPixel() (uint16, bool) {
	return uint16(d.ds.SamplesPerPixel()), true
}

func (d *datasetPixelData) BitsAllocated() (uint16, bool) {
	if b := d.ds.BitsAllocated(); b > 0 {
		return uint16(b), true
	}
	return 0, false
}

func (d *datasetPixelData) NumberOfFragments() (int, bool) {
	return d.pd.NumFrames(), true
}

func (d *datasetPixelData) Fragment(i int) ([]byte, bool) {
	frame, err := d.pd.GetFrame(i)
	if err != nil {
		return nil, false
	}
	return frame.CompressedData, true
}

// PixelDataObject returns an rle.PixelDataObject view of the dataset's
// encapsulated pixel data, suitable for passing to rle.Decode. It returns
// an error if the pixel data is absent or not encapsulated.
func (ds *Dataset) PixelDataObject() (rle.PixelDataObject, error) {
	pd, err := ds.GetPixelData()
	if err != nil {
		return nil, err
	}
	if !pd.IsCompressed() {
		return nil, fmt.Errorf("pixel data is not encapsulated")
	}
	return &datasetPixelData{ds: ds, pd: pd}, nil
}

// GetDate parses the element's value as a partial DICOM date (VR DA).
func (elem *Element) GetDate() (dtvalue.PartialDate, bool) {
	s, ok := elem.GetString()
	if !ok {
		return dtvalue.PartialDate{}, false
	}
	date, _, err := dtvalue.ParseDatePartial([]byte(strings.TrimSpace(s)))
	if err != nil {
		return dtvalue.PartialDate{}, false
	}
	return date, true
}

// GetTime parses the element's value as a partial DICOM time (VR TM).
func (elem *Element) GetTime() (dtvalue.PartialTime, bool) {
	s, ok := elem.GetString()
	if !ok {
		return dtvalue.PartialTime{}, false
	}
	t, _, err := dtvalue.ParseTimePartial([]byte(strings.TrimSpace(s)))
	if err != nil {
		return dtvalue.PartialTime{}, false
	}
	return t, true
}

// GetDateTime parses the element's value as a partial DICOM date-time (VR
// DT), applying defaultOffsetSeconds when no explicit zone offset is
// present in the value.
func (elem *Element) GetDateTime(defaultOffsetSeconds int) (dtvalue.PartialDateTime, bool) {
	s, ok := elem.GetString()
	if !ok {
		return dtvalue.PartialDateTime{}, false
	}
	dt, err := dtvalue.ParseDateTimePartial([]byte(strings.TrimSpace(s)), defaultOffsetSeconds)
	if err != nil {
		return dtvalue.PartialDateTime{}, false
	}
	return dt, true
}
