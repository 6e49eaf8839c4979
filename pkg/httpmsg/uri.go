package httpmsg

import "strings"

// URI is a validated request target, broken into its components. Parsing
// accepts the four RFC 9112 §3.2 target forms:
//
//	origin-form     /where?q=now
//	absolute-form   http://example.com/where?q=now
//	authority-form  example.com:80
//	asterisk-form   *
//
// Components are validated and stored, nothing more: no percent-decoding,
// no normalization, no resolution against a base. The zero URI is "/".
type URI struct {
	scheme    string
	authority string
	path      string
	query     string
}

// uriChars marks the bytes accepted anywhere in a request target:
// unreserved, sub-delims, the general delimiters that appear inside
// components, and '%' for percent-escapes (which are not decoded here).
var uriChars = [256]bool{
	'!': true, '$': true, '&': true, '\'': true, '(': true, ')': true,
	'*': true, '+': true, ',': true, '-': true, '.': true, '/': true,
	':': true, ';': true, '=': true, '?': true, '@': true, '_': true,
	'~': true, '%': true, '[': true, ']': true,
}

func init() {
	for b := '0'; b <= '9'; b++ {
		uriChars[b] = true
	}
	for b := 'a'; b <= 'z'; b++ {
		uriChars[b] = true
		uriChars[b-0x20] = true
	}
}

// ParseURI converts a string to a URI.
//
// Returns ErrInvalidURI when the input is empty, contains a byte outside
// the target grammar (fragments included: a request target carries none),
// or fits no target form.
func ParseURI(src string) (URI, error) {
	if src == "" {
		return URI{}, ErrInvalidURI
	}
	for i := 0; i < len(src); i++ {
		if !uriChars[src[i]] {
			return URI{}, ErrInvalidURI
		}
	}

	if src == "*" {
		return URI{path: "*"}, nil
	}

	if src[0] == '/' {
		u := URI{}
		u.path, u.query = splitQuery(src)
		return u, nil
	}

	if scheme, rest, ok := splitScheme(src); ok {
		u := URI{scheme: scheme}
		end := strings.IndexAny(rest, "/?")
		if end < 0 {
			u.authority = rest
			u.path = "/"
		} else {
			u.authority = rest[:end]
			if rest[end] == '?' {
				u.path = "/"
				u.query = rest[end+1:]
			} else {
				u.path, u.query = splitQuery(rest[end:])
			}
		}
		if u.authority == "" {
			return URI{}, ErrInvalidURI
		}
		return u, nil
	}

	// authority-form: a bare host[:port], nothing else.
	if strings.ContainsAny(src, "/?") {
		return URI{}, ErrInvalidURI
	}
	return URI{authority: src}, nil
}

// splitQuery separates a path-and-query at the first '?'.
func splitQuery(s string) (path, query string) {
	if i := strings.IndexByte(s, '?'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

// splitScheme recognizes "scheme://" and returns the scheme and what
// follows it. The scheme grammar is ALPHA *( ALPHA / DIGIT / "+" / "-"
// / "." ).
func splitScheme(s string) (scheme, rest string, ok bool) {
	i := strings.Index(s, "://")
	if i <= 0 {
		return "", "", false
	}
	if !isAlpha(s[0]) {
		return "", "", false
	}
	for j := 1; j < i; j++ {
		b := s[j]
		if !isAlpha(b) && !isDigit(b) && b != '+' && b != '-' && b != '.' {
			return "", "", false
		}
	}
	return s[:i], s[i+3:], true
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Scheme returns the scheme component, "" when absent.
func (u URI) Scheme() string { return u.scheme }

// Authority returns the authority component, "" when absent.
func (u URI) Authority() string { return u.authority }

// Host returns the authority without port or userinfo. IPv6 literals keep
// their brackets.
func (u URI) Host() string {
	host := u.authority
	if i := strings.LastIndexByte(host, '@'); i >= 0 {
		host = host[i+1:]
	}
	if strings.HasPrefix(host, "[") {
		if i := strings.IndexByte(host, ']'); i >= 0 {
			return host[:i+1]
		}
		return host
	}
	if i := strings.LastIndexByte(host, ':'); i >= 0 {
		return host[:i]
	}
	return host
}

// Port returns the decimal port of the authority, "" when absent.
func (u URI) Port() string {
	host := u.authority
	if i := strings.LastIndexByte(host, '@'); i >= 0 {
		host = host[i+1:]
	}
	i := strings.LastIndexByte(host, ':')
	if i < 0 || strings.HasSuffix(host, "]") {
		return ""
	}
	port := host[i+1:]
	for j := 0; j < len(port); j++ {
		if !isDigit(port[j]) {
			return ""
		}
	}
	return port
}

// Path returns the path component. The zero URI and authority-form targets
// report "/".
func (u URI) Path() string {
	if u.path == "" {
		return "/"
	}
	return u.path
}

// Query returns the query component without its '?', "" when absent.
func (u URI) Query() string { return u.query }

// IsAsterisk reports the asterisk-form target.
func (u URI) IsAsterisk() bool { return u.path == "*" }

// String reassembles the target from its components.
func (u URI) String() string {
	var b strings.Builder
	if u.scheme != "" {
		b.WriteString(u.scheme)
		b.WriteString("://")
	}
	b.WriteString(u.authority)
	if u.scheme != "" || u.authority == "" {
		b.WriteString(u.Path())
	}
	if u.query != "" {
		b.WriteString("?")
		b.WriteString(u.query)
	}
	return b.String()
}
