package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDataMatrix(t *testing.T) {
	img, err := GenerateDataMatrix("010034928158905810LOT1", 160)
	require.NoError(t, err)
	b := img.Bounds()
	assert.GreaterOrEqual(t, b.Dx(), 160)
	assert.GreaterOrEqual(t, b.Dy(), 160)
}

func TestGenerateDataMatrixOnCanvas(t *testing.T) {
	img, err := GenerateDataMatrixOnCanvas("17251231", 120, 320, 240)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())
}

func TestWritePNG(t *testing.T) {
	img, err := GenerateDataMatrix("10ABC", 80)
	require.NoError(t, err)
	path := WritePNG(t, t.TempDir(), "symbol.png", img)
	assert.FileExists(t, path)
}
