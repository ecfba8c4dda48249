package gs1

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGTINToNDC(t *testing.T) {
	ndc, err := GTINToNDC("00349281589058")
	require.NoError(t, err)
	assert.Equal(t, "49281-5890-58", ndc)
}

func TestGTINToNDC_Groups(t *testing.T) {
	// Digits 4-8, 9-12 and 13-14 of the GTIN become the three groups.
	ndc, err := GTINToNDC("00312345678901")
	require.NoError(t, err)
	assert.Equal(t, "12345-6789-01", ndc)

	parts := strings.Split(ndc, "-")
	require.Len(t, parts, 3)
	assert.Len(t, parts[0], 5)
	assert.Len(t, parts[1], 4)
	assert.Len(t, parts[2], 2)
}

func TestGTINToNDC_RejectsWrongLength(t *testing.T) {
	for _, in := range []string{"", "1234567890123", "123456789012345", "49281-5890-58"} {
		ndc, err := GTINToNDC(in)
		require.Error(t, err, "input %q", in)
		assert.Empty(t, ndc)

		var ife *InvalidFormatError
		require.ErrorAs(t, err, &ife)
		assert.Equal(t, in, ife.Value)
	}
}
