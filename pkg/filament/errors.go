package filament

import "errors"

// Sentinel errors - Pre-allocated for zero runtime allocation
var (
	// ErrInvalidName indicates malformed header-name bytes.
	// Header names must be non-empty token sequences no longer than
	// MaxNameLen bytes: letters, digits and !#$%&'*+-.^_`|~ per
	// RFC 9110 §5.1.
	ErrInvalidName = errors.New("filament: invalid header name")

	// ErrInvalidValue indicates a disallowed control byte in a header value.
	// Legal value bytes are horizontal tab (0x09), visible ASCII plus space
	// (0x20-0x7E), and opaque octets (0x80-0xFF).
	ErrInvalidValue = errors.New("filament: invalid header value")

	// ErrNotText indicates a header value that is not representable as
	// visible-ASCII text. The stored bytes remain accessible through Bytes.
	ErrNotText = errors.New("filament: header value is not visible-ASCII text")

	// ErrCapacityExceeded indicates the internal addressing limit was reached.
	// A HeaderMap addresses entries with 16-bit indices and holds at most
	// MaxEntries stored values. The insert is rejected, never truncated.
	ErrCapacityExceeded = errors.New("filament: header map at capacity")
)
