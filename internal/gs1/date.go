package gs1

import (
	"fmt"
	"strconv"
	"time"
)

// Two-digit years at or below the cutoff resolve to 2000+YY; years
// above it resolve to 1900+YY. The 30/31 boundary is a compatibility
// contract, not a derived value.
const centuryCutoff = 30

// InvalidDateError reports a YYMMDD value that does not name a real
// calendar date.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("gs1: %q is not a valid YYMMDD date", e.Value)
}

// FormatExpiration renders a 6-digit YYMMDD expiration as a
// human-readable date. Inputs that are not exactly 6 characters are
// returned unchanged. Impossible calendar dates (month 13, day 32,
// Feb 30) fail with InvalidDateError instead of rolling over into an
// adjacent month the way naive date arithmetic would.
func FormatExpiration(yymmdd string) (string, error) {
	if len(yymmdd) != 6 {
		return yymmdd, nil
	}
	yy, err := strconv.Atoi(yymmdd[0:2])
	if err != nil {
		return "", &InvalidDateError{Value: yymmdd}
	}
	mm, err := strconv.Atoi(yymmdd[2:4])
	if err != nil {
		return "", &InvalidDateError{Value: yymmdd}
	}
	dd, err := strconv.Atoi(yymmdd[4:6])
	if err != nil {
		return "", &InvalidDateError{Value: yymmdd}
	}

	year := 1900 + yy
	if yy <= centuryCutoff {
		year = 2000 + yy
	}

	t := time.Date(year, time.Month(mm), dd, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components; a changed field
	// means the input was not a real date.
	if t.Year() != year || int(t.Month()) != mm || t.Day() != dd {
		return "", &InvalidDateError{Value: yymmdd}
	}
	return t.Format("January 2, 2006"), nil
}
