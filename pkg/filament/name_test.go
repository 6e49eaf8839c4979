package filament

import (
	"errors"
	"strings"
	"testing"
)

func TestParseNameStandard(t *testing.T) {
	tests := []struct {
		input string
		want  Name
	}{
		{"host", Host},
		{"Host", Host},
		{"HOST", Host},
		{"content-type", ContentType},
		{"Content-Type", ContentType},
		{"CONTENT-TYPE", ContentType},
		{"set-cookie", SetCookie},
		{"etag", ETag},
		{"te", TE},
		{"www-authenticate", WWWAuthenticate},
		{"access-control-allow-credentials", AccessControlAllowCredentials},
	}

	for _, tc := range tests {
		got, err := ParseNameString(tc.input)
		if err != nil {
			t.Fatalf("ParseNameString(%q) failed: %v", tc.input, err)
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParseNameString(%q) = %v, want %v", tc.input, got, tc.want)
		}
		if !got.IsStandard() {
			t.Errorf("ParseNameString(%q).IsStandard() = false, want true", tc.input)
		}
	}
}

func TestParseNameCustom(t *testing.T) {
	got, err := ParseNameString("X-Request-Id")
	if err != nil {
		t.Fatalf("ParseNameString failed: %v", err)
	}
	if got.IsStandard() {
		t.Error("IsStandard() = true for custom name")
	}
	if got.Common() != "x-request-id" {
		t.Errorf("Common() = %q, want %q", got.Common(), "x-request-id")
	}
	// Display form preserves the original spelling for custom names.
	if got.String() != "X-Request-Id" {
		t.Errorf("String() = %q, want %q", got.String(), "X-Request-Id")
	}
}

func TestParseNameCaseInsensitiveEqual(t *testing.T) {
	a, err := ParseNameString("X-Custom-Header")
	if err != nil {
		t.Fatalf("ParseNameString failed: %v", err)
	}
	b, err := ParseNameString("x-custom-header")
	if err != nil {
		t.Fatalf("ParseNameString failed: %v", err)
	}
	if !a.Equal(b) {
		t.Error("names differing only in case should compare equal")
	}
	if a.cachedHash() != b.cachedHash() {
		t.Error("names differing only in case should hash equal")
	}
}

func TestParseNameNormalizationIdempotent(t *testing.T) {
	// Re-parsing a name's normalized form yields the same name.
	for _, input := range []string{"Host", "X-Request-Id", "WEIRD-Casing-HEADER"} {
		first, err := ParseNameString(input)
		if err != nil {
			t.Fatalf("ParseNameString(%q) failed: %v", input, err)
		}
		second, err := ParseNameString(first.Common())
		if err != nil {
			t.Fatalf("ParseNameString(%q) failed: %v", first.Common(), err)
		}
		if !first.Equal(second) {
			t.Errorf("parse(%q) != parse(parse(%q).Common())", input, input)
		}
		if second.Common() != first.Common() {
			t.Errorf("Common() changed: %q -> %q", first.Common(), second.Common())
		}
	}
}

func TestParseNameInvalid(t *testing.T) {
	tests := []string{
		"",
		" host",
		"host ",
		"ho st",
		"host:",
		"host\r\n",
		"hos\tt",
		"héader",
		"(paren)",
		"head\x00er",
		strings.Repeat("a", MaxNameLen+1),
	}

	for _, input := range tests {
		if _, err := ParseNameString(input); !errors.Is(err, ErrInvalidName) {
			t.Errorf("ParseNameString(%q) err = %v, want ErrInvalidName", input, err)
		}
	}
}

func TestParseNameTokenSymbols(t *testing.T) {
	// Every tchar symbol is legal in a name.
	got, err := ParseNameString("!#$%&'*+-.^_`|~09az")
	if err != nil {
		t.Fatalf("ParseNameString failed: %v", err)
	}
	if got.Common() != "!#$%&'*+-.^_`|~09az" {
		t.Errorf("Common() = %q", got.Common())
	}
}

func TestParseNameLong(t *testing.T) {
	// Longer than any interned name, still valid.
	long := strings.Repeat("x", maxStandardLen+1)
	got, err := ParseNameString(long)
	if err != nil {
		t.Fatalf("ParseNameString failed: %v", err)
	}
	if got.IsStandard() {
		t.Error("IsStandard() = true for long custom name")
	}
	if got.Common() != long {
		t.Error("long name not preserved")
	}
}

func TestTrustedNameIntern(t *testing.T) {
	n := TrustedName("host")
	if !n.IsStandard() {
		t.Error("TrustedName(host) should intern to the standard name")
	}
	parsed, err := ParseNameString("HOST")
	if err != nil {
		t.Fatalf("ParseNameString failed: %v", err)
	}
	if !n.Equal(parsed) {
		t.Error("TrustedName(host) != ParseNameString(HOST)")
	}
}

func TestTrustedNameCustomEqualsStandardSpelling(t *testing.T) {
	// A custom Name spelling a standard one still compares equal to it.
	custom := Name{raw: "host", norm: "host", hash: contentHash("host")}
	if !custom.Equal(Host) {
		t.Error("custom spelling of a standard name should compare equal to it")
	}
	if !Host.Equal(custom) {
		t.Error("Equal should be symmetric")
	}
}

func TestStandardNamesRoundTrip(t *testing.T) {
	// Every interned name parses back to itself.
	for id := standardID(1); id < stdCount; id++ {
		s := standardNames[id]
		n, err := ParseNameString(s)
		if err != nil {
			t.Fatalf("ParseNameString(%q) failed: %v", s, err)
		}
		if n.std != id {
			t.Errorf("ParseNameString(%q).std = %d, want %d", s, n.std, id)
		}
		if n.String() != s {
			t.Errorf("String() = %q, want %q", n.String(), s)
		}
	}
}

func TestNameBytes(t *testing.T) {
	n, err := ParseName([]byte("Accept"))
	if err != nil {
		t.Fatalf("ParseName failed: %v", err)
	}
	if string(n.Bytes()) != "accept" {
		t.Errorf("Bytes() = %q, want %q", n.Bytes(), "accept")
	}
}
