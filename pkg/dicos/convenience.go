package dicos

import (
	"fmt"

	"github.com/dicomgo/dcmcodec/pkg/dicos/tag"
)

// QuickValidate performs basic structural validation of a DICOM dataset.
//
// This is a lightweight check for common issues, not a full DICOM
// compliance check. Beyond identifier presence it verifies the attributes
// the pixel data decode path needs: Rows, Columns, and for encapsulated
// data under RLE Lossless a BitsAllocated of 8 or 16, which is all
// DecodeFrames can feed to the RLE codec.
//
// Returns an empty slice if valid, or a slice of errors describing issues.
func QuickValidate(ds *Dataset) []error {
	var errs []error

	if !HasElement(ds, tag.SOPClassUID) {
		errs = append(errs, fmt.Errorf("missing required element: SOP Class UID (0008,0016)"))
	}
	if !HasElement(ds, tag.SOPInstanceUID) {
		errs = append(errs, fmt.Errorf("missing required element: SOP Instance UID (0008,0018)"))
	}
	if !HasElement(ds, tag.TransferSyntaxUID) {
		errs = append(errs, fmt.Errorf("missing required element: Transfer Syntax UID (0002,0010)"))
	}

	pixelElem, ok := ds.FindElement(tag.PixelData.Group, tag.PixelData.Element)
	if !ok || pixelElem.Value == nil {
		return errs
	}

	if ds.Rows() == 0 {
		errs = append(errs, fmt.Errorf("pixel data present but Rows (0028,0010) is missing or zero"))
	}
	if ds.Columns() == 0 {
		errs = append(errs, fmt.Errorf("pixel data present but Columns (0028,0011) is missing or zero"))
	}
	if ds.TransferSyntax() == RLELossless {
		if ba := ds.BitsAllocated(); ba != 8 && ba != 16 {
			errs = append(errs, fmt.Errorf("RLE Lossless pixel data with unsupported Bits Allocated %d (must be 8 or 16)", ba))
		}
	}

	return errs
}

// HasElement returns true if the dataset contains the specified element.
func HasElement(ds *Dataset, t Tag) bool {
	_, ok := ds.FindElement(t.Group, t.Element)
	return ok
}
