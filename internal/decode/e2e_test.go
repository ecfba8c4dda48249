package decode_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxscan/rxscan/internal/barcode"
	"github.com/rxscan/rxscan/internal/decode"
	"github.com/rxscan/rxscan/internal/testutil"
)

func TestPipeline_EndToEnd_CleanSymbol(t *testing.T) {
	const payload = "010034928158905817131028100U42275AA"
	img, err := testutil.GenerateDataMatrixOnCanvas(payload, 160, 320, 320)
	require.NoError(t, err)

	p := decode.New(barcode.NewBackend(), decode.DefaultConfig())
	out, err := p.Decode(context.Background(), img)
	require.NoError(t, err)
	assert.Equal(t, decode.StateSucceeded, out.State)
	assert.Equal(t, payload, out.Payload)
	assert.GreaterOrEqual(t, out.Attempts, 1)
}

func TestPipeline_EndToEnd_FromFile(t *testing.T) {
	const payload = "0100349281589058"
	img, err := testutil.GenerateDataMatrixOnCanvas(payload, 140, 280, 280)
	require.NoError(t, err)
	path := testutil.WritePNG(t, t.TempDir(), "label.png", img)

	p := decode.New(barcode.NewBackend(), decode.DefaultConfig())
	out, err := p.DecodeFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, payload, out.Payload)
}

func TestPipeline_EndToEnd_FromBytes(t *testing.T) {
	const payload = "10LOT7"
	img, err := testutil.GenerateDataMatrixOnCanvas(payload, 120, 240, 240)
	require.NoError(t, err)
	path := testutil.WritePNG(t, t.TempDir(), "label.png", img)
	data, err := os.ReadFile(path) //nolint:gosec // test fixture
	require.NoError(t, err)

	p := decode.New(barcode.NewBackend(), decode.DefaultConfig())
	out, err := p.DecodeBytes(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, payload, out.Payload)
}

func TestPipeline_EndToEnd_NoSymbol(t *testing.T) {
	// A blank canvas has nothing to find; the cascade must exhaust.
	img, err := testutil.GenerateDataMatrixOnCanvas("10X", 80, 400, 400)
	require.NoError(t, err)
	ruined := testutil.Blur(img, 16)

	p := decode.New(barcode.NewBackend(), decode.DefaultConfig())
	out, err := p.Decode(context.Background(), ruined)
	if err == nil {
		// If the engine somehow still reads it, the payload must match.
		assert.Equal(t, "10X", out.Payload)
		return
	}
	require.ErrorIs(t, err, decode.ErrNoSymbol)
	assert.Equal(t, decode.StateExhausted, out.State)
	assert.Equal(t, 6, out.Attempts)
}
