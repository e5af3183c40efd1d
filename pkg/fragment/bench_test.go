package fragment

import (
	"fmt"
	"io"
	"testing"
)

func BenchmarkWriteRuneASCII(b *testing.B) {
	buf := NewBuffer(nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		for _, r := range "hello, world" {
			buf.WriteRune(r)
		}
	}
}

func BenchmarkWriteString(b *testing.B) {
	buf := NewBuffer(nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		buf.WriteString("<div class=\"card\">")
		buf.WriteString("content")
		buf.WriteString("</div>")
	}
}

func BenchmarkWriteBytes(b *testing.B) {
	buf := NewBuffer(nil)
	chunk := []byte("<li>item</li>")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		for j := 0; j < 100; j++ {
			buf.WriteBytes(chunk)
		}
	}
}

func BenchmarkWriteSpan(b *testing.B) {
	buf := NewBuffer(nil)
	span := []byte("transient scratch data")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		buf.WriteSpan(span)
	}
}

func BenchmarkWriteToLargePage(b *testing.B) {
	buf := NewBuffer(nil)
	for i := 0; i < 1000; i++ {
		buf.WriteString(fmt.Sprintf("<li>Item %d</li>", i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.WriteTo(io.Discard)
	}
}

func BenchmarkStringMixedKinds(b *testing.B) {
	buf := NewBuffer(nil)
	backing := []byte("0123456789")
	for i := 0; i < 100; i++ {
		buf.WriteRune('<')
		buf.WriteString("span")
		buf.WriteByteRange(backing, 2, 5)
		buf.WriteSpan(backing[:4])
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.String()
	}
}
