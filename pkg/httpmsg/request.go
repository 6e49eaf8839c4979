package httpmsg

import (
	"github.com/valyala/bytebufferpool"

	"github.com/watt-toolkit/filament/pkg/filament"
)

// Request is a request head: method, target, version and headers. It is a
// plain value holder; nothing here reads or writes a connection.
type Request struct {
	method  Method
	uri     URI
	version Version
	headers *filament.HeaderMap
}

// RequestBuilder accumulates the parts of a request head. Setters keep the
// first error and make the rest of the chain a no-op, so a whole chain
// needs a single check at Build.
type RequestBuilder struct {
	req Request
	err error
}

// NewRequest starts a builder for a GET / HTTP/1.1 request with empty
// headers.
func NewRequest() *RequestBuilder {
	return &RequestBuilder{
		req: Request{
			uri:     URI{path: "/"},
			headers: filament.NewHeaderMap(),
		},
	}
}

// Method sets the request method.
func (b *RequestBuilder) Method(m Method) *RequestBuilder {
	if b.err == nil {
		b.req.method = m
	}
	return b
}

// MethodString parses and sets the request method.
func (b *RequestBuilder) MethodString(s string) *RequestBuilder {
	if b.err != nil {
		return b
	}
	m, err := ParseMethodString(s)
	if err != nil {
		b.err = err
		return b
	}
	b.req.method = m
	return b
}

// URI parses and sets the request target.
func (b *RequestBuilder) URI(target string) *RequestBuilder {
	if b.err != nil {
		return b
	}
	u, err := ParseURI(target)
	if err != nil {
		b.err = err
		return b
	}
	b.req.uri = u
	return b
}

// Version sets the protocol version.
func (b *RequestBuilder) Version(v Version) *RequestBuilder {
	if b.err == nil {
		b.req.version = v
	}
	return b
}

// Header parses a name/value pair and appends it, preserving any values
// already present for the name.
func (b *RequestBuilder) Header(name, value string) *RequestBuilder {
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
	b.err = b.req.headers.Append(n, v)
	return b
}

// Build returns the assembled request head, or the first error any setter
// recorded.
func (b *RequestBuilder) Build() (*Request, error) {
	if b.err != nil {
		return nil, b.err
	}
	req := b.req
	return &req, nil
}

// Method returns the request method.
func (r *Request) Method() Method { return r.method }

// URI returns the request target.
func (r *Request) URI() URI { return r.uri }

// Version returns the protocol version.
func (r *Request) Version() Version { return r.version }

// Headers returns the request's header map. The map is shared, not
// copied: mutations through it are visible in the request.
func (r *Request) Headers() *filament.HeaderMap { return r.headers }

// String renders the request head for diagnostics. Sensitive header
// values stay redacted.
func (r *Request) String() string {
	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)

	b.WriteString("Request{")
	b.WriteString(r.method.String())
	b.WriteString(" ")
	b.WriteString(r.uri.String())
	b.WriteString(" ")
	b.WriteString(r.version.String())
	writeHeaderBlock(b, r.headers)
	b.WriteString("}")
	return b.String()
}

// writeHeaderBlock renders ", name: value, ..." for a non-empty map.
func writeHeaderBlock(b *bytebufferpool.ByteBuffer, m *filament.HeaderMap) {
	m.VisitAll(func(n filament.Name, v filament.Value) bool {
		b.WriteString(", ")
		b.WriteString(n.String())
		b.WriteString(": ")
		b.WriteString(v.String())
		return true
	})
}
