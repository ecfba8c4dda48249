package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxscan/rxscan/internal/testutil"
)

func TestDecodeCommand_Usage(t *testing.T) {
	_, errOut, err := execute(t, "decode")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, errOut, "Usage:")
}

func TestDecodeCommand_MissingFile(t *testing.T) {
	_, errOut, err := execute(t, "decode", "/nonexistent/vial.png")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err), "nonexistent file is a usage error")
	assert.Contains(t, errOut, "no such file")
}

func TestDecodeCommand_EndToEnd(t *testing.T) {
	const payload = "010034928158905817131028100U42275AA"
	img, err := testutil.GenerateDataMatrixOnCanvas(payload, 160, 320, 320)
	require.NoError(t, err)
	path := testutil.WritePNG(t, t.TempDir(), "vial.png", img)

	out, _, err := execute(t, "decode", path)
	require.NoError(t, err)
	assert.Equal(t, payload, strings.TrimSpace(out))
}

func TestScanCommand_EndToEnd(t *testing.T) {
	const payload = "010034928158905810LOT99"
	img, err := testutil.GenerateDataMatrixOnCanvas(payload, 160, 320, 320)
	require.NoError(t, err)
	path := testutil.WritePNG(t, t.TempDir(), "vial.png", img)

	out, _, err := execute(t, "scan", path)
	require.NoError(t, err)
	assert.Contains(t, out, "NDC:        49281-5890-58")
	assert.Contains(t, out, "Lot:        LOT99")
	assert.Contains(t, out, "Strategy:")
}

func TestRecipesCommand(t *testing.T) {
	out, _, err := execute(t, "recipes")
	require.NoError(t, err)
	assert.Contains(t, out, "name: standard")
	assert.Contains(t, out, "name: enhanced")
	assert.Contains(t, out, "op: threshold")
	assert.Contains(t, out, "strategy_order:")
	assert.Contains(t, out, "6. raw")
}
