package httpmsg

import "errors"

// Sentinel errors - Pre-allocated for zero runtime allocation
var (
	// ErrInvalidMethod indicates a method that is not a token per
	// RFC 9110 §9.
	ErrInvalidMethod = errors.New("httpmsg: invalid method")

	// ErrInvalidStatusCode indicates a status code outside 100-999.
	ErrInvalidStatusCode = errors.New("httpmsg: invalid status code")

	// ErrInvalidURI indicates a request target that fits none of the
	// RFC 9112 §3.2 forms or contains an illegal byte.
	ErrInvalidURI = errors.New("httpmsg: invalid uri")
)
