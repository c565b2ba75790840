package dicos

import (
	"github.com/dicomgo/dcmcodec/pkg/compress/rle"
	"github.com/dicomgo/dcmcodec/pkg/dicos/transfer"
)

// Codec decompresses one dataset's encapsulated pixel data into a flat,
// frame-major byte buffer. Name and TransferSyntaxUID let a registry look
// a codec up either way.
type Codec interface {
	Decode(ds *Dataset) ([]byte, error)
	Name() string
	TransferSyntaxUID() transfer.Syntax
}

// rleCodec implements Codec for RLE Lossless, the only pixel data
// compression this module decodes.
type rleCodec struct{}

func (c *rleCodec) Decode(ds *Dataset) ([]byte, error) {
	src, err := ds.PixelDataObject()
	if err != nil {
		return nil, err
	}
	var out []byte
	if err := rle.Decode(src, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rleCodec) Name() string {
	return "rle"
}

func (c *rleCodec) TransferSyntaxUID() transfer.Syntax {
	return transfer.RLELossless
}

// codecsByName maps codec names to implementations.
var codecsByName = map[string]Codec{
	"rle": &rleCodec{},
}

// codecsByTS maps transfer syntax UIDs to implementations.
var codecsByTS = map[transfer.Syntax]Codec{
	transfer.RLELossless: &rleCodec{},
}

// CodecRLE is the predefined RLE Lossless codec.
var CodecRLE Codec = codecsByName["rle"]

// CodecByName returns a codec by name, or nil if not found.
func CodecByName(name string) Codec {
	return codecsByName[name]
}

// CodecByTransferSyntax returns a codec for a transfer syntax, or nil if
// not found.
func CodecByTransferSyntax(ts transfer.Syntax) Codec {
	return codecsByTS[ts]
}
