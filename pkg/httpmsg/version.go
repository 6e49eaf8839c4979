package httpmsg

// Version tags the HTTP protocol version of a message head. It is a label,
// not behavior: nothing in this package changes semantics by version. The
// zero Version is HTTP/1.1.
type Version uint8

const (
	HTTP11 Version = iota // HTTP/1.1
	HTTP09                // HTTP/0.9
	HTTP10                // HTTP/1.0
	HTTP2                 // HTTP/2
	HTTP3                 // HTTP/3
)

var versionNames = [...]string{
	HTTP11: "HTTP/1.1",
	HTTP09: "HTTP/0.9",
	HTTP10: "HTTP/1.0",
	HTTP2:  "HTTP/2",
	HTTP3:  "HTTP/3",
}

// String returns the protocol-name form of the version.
//
// Allocation behavior: 0 allocs/op
func (v Version) String() string {
	if int(v) >= len(versionNames) {
		return "HTTP/?"
	}
	return versionNames[v]
}
