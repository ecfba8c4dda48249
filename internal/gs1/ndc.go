package gs1

import "fmt"

// gtinLength is the exact length GTINToNDC requires.
const gtinLength = 14

// InvalidFormatError reports a GTIN that cannot be converted to an NDC.
type InvalidFormatError struct {
	Value string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("gs1: gtin must be exactly %d characters, got %q (%d)", gtinLength, e.Value, len(e.Value))
}

// GTINToNDC derives a National Drug Code from a 14-digit GTIN.
//
// The first three characters (packaging indicator plus the GS1 "003"
// pharma prefix) are dropped and the remaining eleven are split into
// 5-4-2 groups joined with hyphens: LLLLL-PPPP-SS. The 5-4-2 layout is
// a fixed assumption; the alternative 4-4-2 and 5-3-2 NDC layouts are
// not detected or supported.
func GTINToNDC(gtin string) (string, error) {
	if len(gtin) != gtinLength {
		return "", &InvalidFormatError{Value: gtin}
	}
	core := gtin[3:]
	return core[0:5] + "-" + core[5:9] + "-" + core[9:11], nil
}
