package barcode_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxscan/rxscan/internal/barcode"
	"github.com/rxscan/rxscan/internal/testutil"
)

func TestGozxingBackend_RoundTrip(t *testing.T) {
	const payload = "010034928158905817131028100U42275AA"
	img, err := testutil.GenerateDataMatrixOnCanvas(payload, 160, 320, 320)
	require.NoError(t, err)

	backend := barcode.NewBackend()
	results, err := backend.Decode(context.Background(), img, barcode.Options{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, payload, results[0].Text)
	assert.Equal(t, barcode.FormatDataMatrix, results[0].Format)
	assert.True(t, results[0].Valid())
}

func TestGozxingBackend_TryHarder(t *testing.T) {
	const payload = "10BATCH42"
	img, err := testutil.GenerateDataMatrixOnCanvas(payload, 120, 400, 300)
	require.NoError(t, err)

	backend := barcode.NewBackend()
	results, err := backend.Decode(context.Background(), img, barcode.Options{TryHarder: true, MaxSymbols: 1})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, payload, results[0].Text)
}

func TestGozxingBackend_MaxSymbolsAboveOne(t *testing.T) {
	// The engine reads a single symbol per image; a larger cap must
	// still decode and never promise more than one result.
	const payload = "0100349281589058"
	img, err := testutil.GenerateDataMatrixOnCanvas(payload, 160, 320, 320)
	require.NoError(t, err)

	backend := barcode.NewBackend()
	results, err := backend.Decode(context.Background(), img, barcode.Options{TryHarder: true, MaxSymbols: 4})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, payload, results[0].Text)
	assert.True(t, results[0].Valid())
}

func TestGozxingBackend_NoSymbol(t *testing.T) {
	img, err := testutil.GenerateDataMatrixOnCanvas("10X", 80, 200, 200)
	require.NoError(t, err)
	// Blur hard enough that the modules are unreadable.
	ruined := testutil.Blur(img, 12)

	backend := barcode.NewBackend()
	results, decErr := backend.Decode(context.Background(), ruined, barcode.Options{})
	if decErr == nil {
		// Engines occasionally still find something; then it must at
		// least be a Data Matrix result.
		for _, r := range results {
			assert.Equal(t, barcode.FormatDataMatrix, r.Format)
		}
		return
	}
	assert.Empty(t, results)
}

func TestGozxingBackend_CancelledContext(t *testing.T) {
	img, err := testutil.GenerateDataMatrix("10X", 80)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, decErr := barcode.NewBackend().Decode(ctx, img, barcode.Options{})
	require.ErrorIs(t, decErr, context.Canceled)
}

func TestResultValid(t *testing.T) {
	assert.False(t, barcode.Result{Format: barcode.FormatDataMatrix}.Valid())
	assert.False(t, barcode.Result{Format: barcode.FormatUnknown, Text: "x"}.Valid())
	assert.True(t, barcode.Result{Format: barcode.FormatDataMatrix, Text: "x"}.Valid())
}
