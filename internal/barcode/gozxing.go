package barcode

import (
	"context"
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/datamatrix"
)

// GozxingBackend decodes Data Matrix symbols with the gozxing port of
// the ZXing engine. The engine reads one symbol per image; MaxSymbols
// values above 1 are accepted but the result list never exceeds one
// entry.
type GozxingBackend struct{}

// NewBackend returns the default backend implementation.
func NewBackend() Backend { return &GozxingBackend{} }

func (b *GozxingBackend) Decode(ctx context.Context, img image.Image, opts Options) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source := gozxing.NewLuminanceSourceFromImage(img)
	bitmap, err := gozxing.NewBinaryBitmap(gozxing.NewHybridBinarizer(source))
	if err != nil {
		return nil, fmt.Errorf("barcode: building bitmap: %w", err)
	}

	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_POSSIBLE_FORMATS: []gozxing.BarcodeFormat{
			gozxing.BarcodeFormat_DATA_MATRIX,
		},
	}
	if opts.TryHarder {
		hints[gozxing.DecodeHintType_TRY_HARDER] = true
	}

	r, err := datamatrix.NewDataMatrixReader().Decode(bitmap, hints)
	if err != nil {
		// NotFoundException and friends: nothing decodable here.
		return nil, err
	}

	return []Result{{
		Format: mapFormat(r.GetBarcodeFormat()),
		Text:   r.GetText(),
	}}, nil
}

func mapFormat(bf gozxing.BarcodeFormat) Format {
	if bf == gozxing.BarcodeFormat_DATA_MATRIX {
		return FormatDataMatrix
	}
	return FormatUnknown
}
