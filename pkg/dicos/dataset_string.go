package dicos

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// String renders the element as one human-readable line:
// [Tag] VR Name: value. Bulk values (pixel data, long numeric arrays,
// binary blobs) are summarized rather than dumped.
func (e *Element) String() string {
	tagName := e.Tag.LookupName()
	if tagName != "" {
		tagName = " " + tagName
	}

	var valStr string
	switch v := e.Value.(type) {
	case *PixelData:
		kind := "native"
		if v.IsCompressed() {
			kind = "encapsulated"
		}
		valStr = fmt.Sprintf("Pixel Data (%d %s frames)", v.NumFrames(), kind)
	case []uint16:
		if len(v) > 10 {
			valStr = fmt.Sprintf("Array of %d values", len(v))
		} else {
			valStr = fmt.Sprintf("%v", v)
		}
	case []uint32:
		if len(v) > 10 {
			valStr = fmt.Sprintf("Array of %d values", len(v))
		} else {
			valStr = fmt.Sprintf("%v", v)
		}
	case []byte:
		if len(v) > 20 {
			valStr = fmt.Sprintf("Binary Data (%d bytes)", len(v))
		} else {
			valStr = fmt.Sprintf("%v", v)
		}
	case []*Dataset:
		valStr = fmt.Sprintf("Sequence (%d items)", len(v))
	default:
		valStr = fmt.Sprintf("%v", v)
	}

	return fmt.Sprintf("[%s] %s%s: %s", e.Tag, e.VR, tagName, valStr)
}

// MarshalJSON flattens the element into a tag/name/vr/value object so the
// CLI's JSON output stays readable.
func (e *Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Tag   string      `json:"tag"`
		Name  string      `json:"name,omitempty"`
		VR    string      `json:"vr"`
		Value interface{} `json:"value"`
	}{
		Tag:   e.Tag.String(),
		Name:  e.Tag.LookupName(),
		VR:    e.VR,
		Value: e.Value,
	})
}

// sortedTags returns the dataset's tags in (group, element) order, so both
// renderings below are deterministic.
func (ds *Dataset) sortedTags() []Tag {
	keys := make([]Tag, 0, len(ds.Elements))
	for k := range ds.Elements {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Group != keys[j].Group {
			return keys[i].Group < keys[j].Group
		}
		return keys[i].Element < keys[j].Element
	})
	return keys
}

// String renders the dataset as one element per line, sorted by tag.
func (ds *Dataset) String() string {
	if ds == nil {
		return "<nil>"
	}
	var b strings.Builder
	for _, k := range ds.sortedTags() {
		b.WriteString(ds.Elements[k].String())
		b.WriteString("\n")
	}
	return b.String()
}

// MarshalJSON encodes the dataset as a tag-sorted array of elements rather
// than a map, since the Tag map key has no text form JSON object keys could
// carry.
func (ds *Dataset) MarshalJSON() ([]byte, error) {
	var elements []*Element
	for _, k := range ds.sortedTags() {
		elements = append(elements, ds.Elements[k])
	}
	return json.Marshal(elements)
}
