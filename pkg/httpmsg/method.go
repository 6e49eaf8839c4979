// Package httpmsg provides the value types surrounding a header block:
// request methods, status codes, protocol versions, request targets and the
// request/response heads that tie them to a filament.HeaderMap. Everything
// here is in-memory representation; there is no wire format and no I/O.
package httpmsg

// methodID numbers the registered methods; extension methods carry their
// spelling instead.
type methodID uint8

const (
	methodGet methodID = iota
	methodHead
	methodPost
	methodPut
	methodDelete
	methodConnect
	methodOptions
	methodTrace
	methodPatch
	methodExtension
)

// Method is a validated HTTP request method. The registered methods are
// interned: comparing or stringifying them never allocates. The zero
// Method is GET, matching the most common request shape.
type Method struct {
	id  methodID
	ext string // spelling of an extension method
}

// The registered methods.
var (
	Get     = Method{id: methodGet}
	Head    = Method{id: methodHead}
	Post    = Method{id: methodPost}
	Put     = Method{id: methodPut}
	Delete  = Method{id: methodDelete}
	Connect = Method{id: methodConnect}
	Options = Method{id: methodOptions}
	Trace   = Method{id: methodTrace}
	Patch   = Method{id: methodPatch}
)

var methodNames = [...]string{
	methodGet:     "GET",
	methodHead:    "HEAD",
	methodPost:    "POST",
	methodPut:     "PUT",
	methodDelete:  "DELETE",
	methodConnect: "CONNECT",
	methodOptions: "OPTIONS",
	methodTrace:   "TRACE",
	methodPatch:   "PATCH",
}

// methodChars marks the bytes legal in a method token. Methods share the
// token grammar of header names but are compared case-sensitively, so
// there is no lowercase folding here.
var methodChars = [256]bool{
	'!': true, '#': true, '$': true, '%': true, '&': true, '\'': true,
	'*': true, '+': true, '-': true, '.': true, '^': true, '_': true,
	'`': true, '|': true, '~': true,
}

func init() {
	for b := '0'; b <= '9'; b++ {
		methodChars[b] = true
	}
	for b := 'a'; b <= 'z'; b++ {
		methodChars[b] = true
		methodChars[b-0x20] = true
	}
}

// ParseMethod converts a byte slice to a Method. Registered methods are
// matched with a length-keyed fast path; anything else that is a valid
// token becomes an extension method with its spelling preserved.
//
// Allocation behavior: 0 allocs/op for registered methods
func ParseMethod(src []byte) (Method, error) {
	switch len(src) {
	case 3:
		if src[0] == 'G' && src[1] == 'E' && src[2] == 'T' {
			return Get, nil
		}
		if src[0] == 'P' && src[1] == 'U' && src[2] == 'T' {
			return Put, nil
		}
	case 4:
		if src[0] == 'P' && src[1] == 'O' && src[2] == 'S' && src[3] == 'T' {
			return Post, nil
		}
		if src[0] == 'H' && src[1] == 'E' && src[2] == 'A' && src[3] == 'D' {
			return Head, nil
		}
	case 5:
		if src[0] == 'P' && src[1] == 'A' && src[2] == 'T' && src[3] == 'C' && src[4] == 'H' {
			return Patch, nil
		}
		if src[0] == 'T' && src[1] == 'R' && src[2] == 'A' && src[3] == 'C' && src[4] == 'E' {
			return Trace, nil
		}
	case 6:
		if string(src) == "DELETE" {
			return Delete, nil
		}
	case 7:
		if string(src) == "OPTIONS" {
			return Options, nil
		}
		if string(src) == "CONNECT" {
			return Connect, nil
		}
	}
	return parseExtensionMethod(src)
}

// ParseMethodString is ParseMethod for string input.
func ParseMethodString(src string) (Method, error) {
	return ParseMethod([]byte(src))
}

func parseExtensionMethod(src []byte) (Method, error) {
	if len(src) == 0 {
		return Method{}, ErrInvalidMethod
	}
	for _, b := range src {
		if !methodChars[b] {
			return Method{}, ErrInvalidMethod
		}
	}
	return Method{id: methodExtension, ext: string(src)}, nil
}

// String returns the method's spelling.
//
// Allocation behavior: 0 allocs/op
func (m Method) String() string {
	if m.id == methodExtension {
		return m.ext
	}
	return methodNames[m.id]
}

// Equal compares methods case-sensitively.
func (m Method) Equal(o Method) bool {
	if m.id != o.id {
		return false
	}
	return m.id != methodExtension || m.ext == o.ext
}

// IsSafe reports whether the method is safe per RFC 9110 §9.2.1: it
// requests no state change on the target.
func (m Method) IsSafe() bool {
	switch m.id {
	case methodGet, methodHead, methodOptions, methodTrace:
		return true
	}
	return false
}

// IsIdempotent reports whether the method is idempotent per RFC 9110
// §9.2.2.
func (m Method) IsIdempotent() bool {
	switch m.id {
	case methodPut, methodDelete:
		return true
	}
	return m.IsSafe()
}
