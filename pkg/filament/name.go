package filament

// MaxNameLen is the longest header name Parse accepts. 64KB is far beyond
// anything seen in practice; the bound exists so name lengths always fit the
// map's 16-bit offset arithmetic.
const MaxNameLen = 1 << 16

// Name is a validated, case-insensitively compared header name.
//
// Two representations share the type: well-known names are interned
// singletons (see names_standard.go) that carry no heap data at all, and
// arbitrary names own their validated bytes plus a cached content hash.
// Equality and hashing are defined on the case-normalized lowercase form;
// String preserves the canonical lowercase spelling for standard names and
// the original bytes for custom names.
//
// The zero Name is invalid and must not be used as a map key.
type Name struct {
	std  standardID
	raw  string // original bytes as given, custom names only
	norm string // normalized lowercase form, custom names only
	hash uint64 // cached contentHash(norm), custom names only
}

// nameChars maps a legal header-name byte to its lowercase form and an
// illegal byte to zero. Legal bytes are the RFC 9110 token set:
//
//	field-name = token
//	token      = 1*tchar
//	tchar      = "!" / "#" / "$" / "%" / "&" / "'" / "*" / "+" / "-" / "."
//	           / "^" / "_" / "`" / "|" / "~" / DIGIT / ALPHA
var nameChars = [256]byte{
	'!': '!', '#': '#', '$': '$', '%': '%', '&': '&', '\'': '\'',
	'*': '*', '+': '+', '-': '-', '.': '.', '^': '^', '_': '_',
	'`': '`', '|': '|', '~': '~',
	'0': '0', '1': '1', '2': '2', '3': '3', '4': '4',
	'5': '5', '6': '6', '7': '7', '8': '8', '9': '9',
	'a': 'a', 'b': 'b', 'c': 'c', 'd': 'd', 'e': 'e', 'f': 'f',
	'g': 'g', 'h': 'h', 'i': 'i', 'j': 'j', 'k': 'k', 'l': 'l',
	'm': 'm', 'n': 'n', 'o': 'o', 'p': 'p', 'q': 'q', 'r': 'r',
	's': 's', 't': 't', 'u': 'u', 'v': 'v', 'w': 'w', 'x': 'x',
	'y': 'y', 'z': 'z',
	'A': 'a', 'B': 'b', 'C': 'c', 'D': 'd', 'E': 'e', 'F': 'f',
	'G': 'g', 'H': 'h', 'I': 'i', 'J': 'j', 'K': 'k', 'L': 'l',
	'M': 'm', 'N': 'n', 'O': 'o', 'P': 'p', 'Q': 'q', 'R': 'r',
	'S': 's', 'T': 't', 'U': 'u', 'V': 'v', 'W': 'w', 'X': 'x',
	'Y': 'y', 'Z': 'z',
}

// longest standard name is 35 bytes; anything longer goes straight to the
// custom path without consulting the intern table.
const maxStandardLen = 40

// ParseName converts a byte slice to a header Name, normalizing ASCII
// letters to lowercase. Well-known names are returned as interned
// singletons.
//
// Returns ErrInvalidName if the input is empty, longer than MaxNameLen, or
// contains a byte outside the token grammar.
//
// Allocation behavior: 0 allocs/op for well-known names; custom names
// allocate their owned normalized copy.
func ParseName(src []byte) (Name, error) {
	n := len(src)
	if n == 0 || n > MaxNameLen {
		return Name{}, ErrInvalidName
	}

	// Fast path: normalize into a stack buffer and consult the intern
	// table. The map lookup on string(buf) does not allocate.
	if n <= maxStandardLen {
		var buf [maxStandardLen]byte
		for i := 0; i < n; i++ {
			b := nameChars[src[i]]
			if b == 0 {
				return Name{}, ErrInvalidName
			}
			buf[i] = b
		}
		if id, ok := standardIndex[string(buf[:n])]; ok {
			return Name{std: id}, nil
		}
		return newCustomName(src, buf[:n]), nil
	}

	norm := make([]byte, n)
	for i := 0; i < n; i++ {
		b := nameChars[src[i]]
		if b == 0 {
			return Name{}, ErrInvalidName
		}
		norm[i] = b
	}
	return newCustomName(src, norm), nil
}

// ParseNameString is ParseName for string input.
func ParseNameString(src string) (Name, error) {
	// The conversion does not escape: ParseName only reads the bytes.
	return ParseName([]byte(src))
}

// newCustomName builds a custom Name from original and normalized bytes.
// When the input was already lowercase the two forms share one string.
func newCustomName(src, norm []byte) Name {
	ns := string(norm)
	rs := ns
	if string(src) != ns {
		rs = string(src)
	}
	return Name{
		raw:  rs,
		norm: ns,
		hash: contentHash(ns),
	}
}

// TrustedName converts a string to a Name without validation. The caller
// guarantees the input is a non-empty, already-lowercase token sequence;
// this is intended for compile-time-known literals. Passing anything else
// breaks the map's comparison and hashing contracts.
//
// Well-known names are still interned so that TrustedName("host") and
// parsed "Host" compare equal cheaply.
func TrustedName(src string) Name {
	if id, ok := standardIndex[src]; ok {
		return Name{std: id}
	}
	return Name{
		raw:  src,
		norm: src,
		hash: contentHash(src),
	}
}

// IsStandard reports whether the name is one of the interned well-known
// header names.
func (n Name) IsStandard() bool {
	return n.std != stdNone
}

// Common returns the normalized lowercase form. For standard names this is
// the canonical spelling; for custom names it is the lowercased input.
func (n Name) Common() string {
	if n.std != stdNone {
		return standardNames[n.std]
	}
	return n.norm
}

// String returns the display form: the canonical lowercase spelling for
// standard names, the original bytes for custom names.
func (n Name) String() string {
	if n.std != stdNone {
		return standardNames[n.std]
	}
	return n.raw
}

// Bytes returns the display form as a fresh byte slice.
func (n Name) Bytes() []byte {
	return []byte(n.String())
}

// Equal reports whether two names compare equal under case-insensitive
// comparison. Standard-to-standard comparison is a single byte compare.
//
// Allocation behavior: 0 allocs/op
func (n Name) Equal(o Name) bool {
	if n.std != stdNone || o.std != stdNone {
		if n.std != stdNone && o.std != stdNone {
			return n.std == o.std
		}
		// A custom name can spell a standard one only through
		// TrustedName; fall back to comparing normalized forms.
		return n.Common() == o.Common()
	}
	return n.norm == o.norm
}

// cachedHash returns the cached seed-independent hash of the normalized
// form.
func (n Name) cachedHash() uint64 {
	if n.std != stdNone {
		return standardHashes[n.std]
	}
	return n.hash
}
