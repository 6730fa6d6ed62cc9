package bjpeg

import "fmt"

var (
	// ErrInvalidDimensions is returned when width or height is out of the
	// [1,65535] range, or doesn't match the supplied pixel buffer length.
	ErrInvalidDimensions = fmt.Errorf("bjpeg: invalid image dimensions")
	// ErrInvalidQuality is returned when quality is outside [1,100].
	ErrInvalidQuality = fmt.Errorf("bjpeg: quality must be in [1,100]")
	// ErrInvalidComment is returned when a comment contains a 0xFF byte,
	// which would be indistinguishable from a marker on the wire.
	ErrInvalidComment = fmt.Errorf("bjpeg: comment must not contain 0xFF")
	// ErrNilPixels is returned when the pixel buffer is nil.
	ErrNilPixels = fmt.Errorf("bjpeg: pixels must not be nil")
)

// SinkError wraps the error returned by a Sink. Encode returns one of
// these, rather than the bare sink error, so callers can distinguish a
// sink failure from argument validation with errors.As.
type SinkError struct {
	Err error
}

func (e *SinkError) Error() string { return fmt.Sprintf("bjpeg: sink write failed: %v", e.Err) }

// Unwrap lets errors.Is/errors.As reach the sink's own error.
func (e *SinkError) Unwrap() error { return e.Err }

// InvariantError indicates a DCT coefficient landed outside the codeword
// table's range, which can only happen if the scaled dequant table is
// broken. It is never a user-reachable condition; Encode recovers the
// panic it's raised with and returns it as an ordinary error so a caller
// doesn't need to deal with panics, but its presence always indicates a
// bug in this package, not in caller input.
type InvariantError struct {
	Coefficient int32
	Limit       int32
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("bjpeg: internal invariant violated: coefficient %d exceeds codeword limit %d", e.Coefficient, e.Limit)
}
