package filament

// Value is an immutable, validated header value.
//
// In practice header values are visible ASCII, but the protocol permits
// opaque octets (0x80-0xFF) as well; those are stored but cannot be viewed
// as text. A value can additionally be marked sensitive, which suppresses
// its content from diagnostic output without affecting the stored bytes or
// equality.
type Value struct {
	raw       string
	sensitive bool
	text      bool // raw is visible-ASCII text, fixed at construction
}

// legalValueByte reports whether b may appear in a header value: horizontal
// tab, space through tilde, or an opaque octet.
//
// Allocation behavior: 0 allocs/op
func legalValueByte(b byte) bool {
	return b == '\t' || (b >= 0x20 && b <= 0x7e) || b >= 0x80
}

// visibleASCII reports whether b is representable in the text view of a
// value. Opaque octets are legal to store but have no text form.
func visibleASCII(b byte) bool {
	return b == '\t' || (b >= 0x20 && b <= 0x7e)
}

// NewValue converts a byte slice to a header Value, copying the bytes.
//
// Returns ErrInvalidValue if the input contains a control byte other than
// horizontal tab. The text view is classified once here; ToText never
// re-validates.
func NewValue(src []byte) (Value, error) {
	text := true
	for _, b := range src {
		if !legalValueByte(b) {
			return Value{}, ErrInvalidValue
		}
		if b >= 0x80 {
			text = false
		}
	}
	return Value{raw: string(src), text: text}, nil
}

// NewValueString is NewValue for string input.
func NewValueString(src string) (Value, error) {
	text := true
	for i := 0; i < len(src); i++ {
		b := src[i]
		if !legalValueByte(b) {
			return Value{}, ErrInvalidValue
		}
		if b >= 0x80 {
			text = false
		}
	}
	return Value{raw: src, text: text}, nil
}

// TrustedValue converts a string to a Value without validation. The caller
// guarantees every byte is legal; intended for compile-time-known literals.
func TrustedValue(src string) Value {
	text := true
	for i := 0; i < len(src); i++ {
		if src[i] >= 0x80 {
			text = false
			break
		}
	}
	return Value{raw: src, text: text}
}

// ToText returns the value as visible-ASCII text.
//
// Returns ErrNotText if the stored bytes contain opaque octets. The
// classification was fixed at construction; repeated calls do no scanning.
func (v Value) ToText() (string, error) {
	if !v.text {
		return "", ErrNotText
	}
	return v.raw, nil
}

// Bytes returns a fresh copy of the stored bytes.
func (v Value) Bytes() []byte {
	return []byte(v.raw)
}

// Len returns the number of stored bytes.
func (v Value) Len() int {
	return len(v.raw)
}

// IsEmpty reports whether the value holds no bytes.
func (v Value) IsEmpty() bool {
	return len(v.raw) == 0
}

// Equal compares stored bytes only; the sensitive flag does not take part.
//
// Allocation behavior: 0 allocs/op
func (v Value) Equal(o Value) bool {
	return v.raw == o.raw
}

// WithSensitive returns a copy of the value with the sensitive flag set as
// given. Sensitive values render as a placeholder in all diagnostic output.
func (v Value) WithSensitive(sensitive bool) Value {
	v.sensitive = sensitive
	return v
}

// IsSensitive reports whether the value is marked sensitive.
func (v Value) IsSensitive() bool {
	return v.sensitive
}

// sensitivePlaceholder is what diagnostic output shows instead of the bytes
// of a sensitive value.
const sensitivePlaceholder = "Sensitive"

// String renders the value for diagnostics. Sensitive values are redacted;
// values with opaque octets are rendered quoted so control output stays
// printable.
func (v Value) String() string {
	if v.sensitive {
		return sensitivePlaceholder
	}
	if v.text {
		return v.raw
	}
	return quoteOpaque(v.raw)
}

// quoteOpaque renders a value containing opaque octets as a quoted Go
// string so logs stay printable ASCII.
func quoteOpaque(s string) string {
	buf := make([]byte, 0, len(s)+16)
	buf = append(buf, '"')
	for i := 0; i < len(s); i++ {
		b := s[i]
		if visibleASCII(b) && b != '"' && b != '\\' {
			buf = append(buf, b)
			continue
		}
		const hex = "0123456789abcdef"
		buf = append(buf, '\\', 'x', hex[b>>4], hex[b&0xf])
	}
	buf = append(buf, '"')
	return string(buf)
}
