package decode

import (
	"errors"
	"fmt"
)

// ErrNoSymbol reports that every strategy ran without producing a
// valid Data Matrix decode. This is an expected outcome for images
// that simply contain no readable symbol, not a system fault.
var ErrNoSymbol = errors.New("no valid data matrix symbol found")

// ProcessingError reports that the source image itself could not be
// read or decoded. Unlike per-attempt failures it aborts the whole
// cascade.
type ProcessingError struct {
	Stage string
	Err   error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("processing error in %s: %v", e.Stage, e.Err)
}

func (e *ProcessingError) Unwrap() error { return e.Err }
