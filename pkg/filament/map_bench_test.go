package filament

import (
	"fmt"
	"testing"
)

func BenchmarkParseNameStandard(b *testing.B) {
	src := []byte("Content-Type")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParseName(src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseNameCustom(b *testing.B) {
	src := []byte("X-Request-Id")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParseName(src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGetStandard(b *testing.B) {
	m := NewHeaderMap()
	for _, n := range []Name{Host, ContentType, ContentLength, Accept, UserAgent} {
		if err := m.Append(n, TrustedValue("v")); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := m.Get(ContentType); !ok {
			b.Fatal("not found")
		}
	}
}

func BenchmarkGetCustom(b *testing.B) {
	m := NewHeaderMap()
	name := TrustedName("x-request-id")
	if err := m.Append(name, TrustedValue("abc123")); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := m.Get(name); !ok {
			b.Fatal("not found")
		}
	}
}

func BenchmarkAppendDistinct(b *testing.B) {
	names := make([]Name, 512)
	for i := range names {
		names[i] = TrustedName(fmt.Sprintf("x-bench-%d", i))
	}
	v := TrustedValue("v")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := NewHeaderMapCapacity(len(names))
		for _, n := range names {
			if err := m.Append(n, v); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkInsertReplace(b *testing.B) {
	m := NewHeaderMap()
	if _, err := m.Insert(ContentType, TrustedValue("text/plain")); err != nil {
		b.Fatal(err)
	}
	v := TrustedValue("application/json")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Insert(ContentType, v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGetAll(b *testing.B) {
	m := NewHeaderMap()
	for i := 0; i < 8; i++ {
		if err := m.Append(SetCookie, TrustedValue(fmt.Sprintf("c%d=1", i))); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for range m.GetAll(SetCookie) {
			n++
		}
		if n != 8 {
			b.Fatal("short chain")
		}
	}
}

func BenchmarkVisitAll(b *testing.B) {
	m := NewHeaderMap()
	for i := 0; i < 32; i++ {
		if err := m.Append(TrustedName(fmt.Sprintf("x-bench-%d", i)), TrustedValue("v")); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		m.VisitAll(func(Name, Value) bool {
			n++
			return true
		})
		if n != 32 {
			b.Fatal("short visit")
		}
	}
}
