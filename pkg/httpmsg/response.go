package httpmsg

import (
	"github.com/valyala/bytebufferpool"

	"github.com/watt-toolkit/filament/pkg/filament"
)

// Response is a response head: status, version and headers.
type Response struct {
	status  StatusCode
	version Version
	headers *filament.HeaderMap
}

// ResponseBuilder accumulates the parts of a response head, keeping the
// first error like RequestBuilder does.
type ResponseBuilder struct {
	resp Response
	err  error
}

// NewResponse starts a builder for a 200 / HTTP/1.1 response with empty
// headers.
func NewResponse() *ResponseBuilder {
	return &ResponseBuilder{
		resp: Response{
			status:  StatusOK,
			headers: filament.NewHeaderMap(),
		},
	}
}

// Status sets the status code.
func (b *ResponseBuilder) Status(s StatusCode) *ResponseBuilder {
	if b.err == nil {
		b.resp.status = s
	}
	return b
}

// StatusInt validates and sets a numeric status code.
func (b *ResponseBuilder) StatusInt(code int) *ResponseBuilder {
	if b.err != nil {
		return b
	}
	s, err := NewStatusCode(code)
	if err != nil {
		b.err = err
		return b
	}
	b.resp.status = s
	return b
}

// Version sets the protocol version.
func (b *ResponseBuilder) Version(v Version) *ResponseBuilder {
	if b.err == nil {
		b.resp.version = v
	}
	return b
}

// Header parses a name/value pair and appends it.
func (b *ResponseBuilder) Header(name, value string) *ResponseBuilder {
	if b.err != nil {
		return b
	}
	n, err := filament.ParseNameString(name)
	if err != nil {
		b.err = err
		return b
	}
	v, err := filament.NewValueString(value)
	if err != nil {
		b.err = err
		return b
	}
	b.err = b.resp.headers.Append(n, v)
	return b
}

// Build returns the assembled response head, or the first error any
// setter recorded.
func (b *ResponseBuilder) Build() (*Response, error) {
	if b.err != nil {
		return nil, b.err
	}
	resp := b.resp
	return &resp, nil
}

// Status returns the status code.
func (r *Response) Status() StatusCode { return r.status }

// Version returns the protocol version.
func (r *Response) Version() Version { return r.version }

// Headers returns the response's header map, shared rather than copied.
func (r *Response) Headers() *filament.HeaderMap { return r.headers }

// String renders the response head for diagnostics.
func (r *Response) String() string {
	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)

	b.WriteString("Response{")
	b.WriteString(r.version.String())
	b.WriteString(" ")
	b.WriteString(r.status.String())
	if reason := r.status.CanonicalReason(); reason != "" {
		b.WriteString(" ")
		b.WriteString(reason)
	}
	writeHeaderBlock(b, r.headers)
	b.WriteString("}")
	return b.String()
}
