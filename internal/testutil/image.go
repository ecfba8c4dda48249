// Package testutil generates synthetic Data Matrix fixtures for tests.
package testutil

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/datamatrix"
	"github.com/stretchr/testify/require"
)

// GenerateDataMatrix encodes the payload as a size x size Data Matrix
// symbol on a white quiet-zone background.
func GenerateDataMatrix(payload string, size int) (image.Image, error) {
	writer := datamatrix.NewDataMatrixWriter()
	matrix, err := writer.Encode(payload, gozxing.BarcodeFormat_DATA_MATRIX, size, size, nil)
	if err != nil {
		return nil, fmt.Errorf("testutil: encoding data matrix: %w", err)
	}
	return matrix, nil
}

// GenerateDataMatrixOnCanvas places the symbol centered on a larger
// white canvas, roughly how a label photograph frames it.
func GenerateDataMatrixOnCanvas(payload string, symbolSize, canvasW, canvasH int) (image.Image, error) {
	sym, err := GenerateDataMatrix(payload, symbolSize)
	if err != nil {
		return nil, err
	}
	canvas := image.NewRGBA(image.Rect(0, 0, canvasW, canvasH))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	offset := image.Pt((canvasW-symbolSize)/2, (canvasH-symbolSize)/2)
	draw.Draw(canvas, sym.Bounds().Add(offset), sym, image.Point{}, draw.Over)
	return canvas, nil
}

// Blur degrades the fixture to simulate a defocused capture.
func Blur(img image.Image, sigma float64) image.Image {
	return imaging.Blur(img, sigma)
}

// RotateCW rotates the fixture clockwise by a right angle.
func RotateCW(img image.Image, angle int) image.Image {
	switch angle {
	case 90:
		return imaging.Rotate270(img)
	case 180:
		return imaging.Rotate180(img)
	case 270:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

// WritePNG saves the image under dir and returns its path.
func WritePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path) //nolint:gosec // test fixture path
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()
	require.NoError(t, png.Encode(f, img))
	return path
}
