package fragment

import (
	"fmt"
	"io"

	"github.com/vango-dev/taghelper/internal/errors"
)

// Kind is the fragment type discriminator.
type Kind uint8

const (
	KindChar  Kind = iota // Interned single character
	KindText              // Owned string
	KindBytes             // View into a caller-retained byte slice
	KindCopy              // Independent copy of transient data
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindChar:
		return "Char"
	case KindText:
		return "Text"
	case KindBytes:
		return "Bytes"
	case KindCopy:
		return "Copy"
	default:
		return "Unknown"
	}
}

// Fragment is one immutable unit of already-formatted output awaiting
// emission. Construct fragments with Char, Text, Bytes, or Range; the zero
// value is an empty fragment.
type Fragment struct {
	kind Kind
	text string // KindChar, KindText, KindCopy
	buf  []byte // KindBytes backing slice, caller-retained
	off  int
	n    int
}

// interned holds the shared singleton fragments for character codes below
// 256. Built once at startup, read-only afterwards.
var interned = buildInterned()

func buildInterned() [256]*Fragment {
	var table [256]*Fragment
	for i := range table {
		table[i] = &Fragment{kind: KindChar, text: string(rune(i))}
	}
	return table
}

// internedBytes holds singleton fragments for raw byte values 128..255,
// which differ from the interned characters: the character is two bytes
// of UTF-8, the raw byte is itself. Values below 128 share interned.
var internedBytes = buildInternedBytes()

func buildInternedBytes() [128]*Fragment {
	var table [128]*Fragment
	for i := range table {
		table[i] = &Fragment{kind: KindChar, text: string([]byte{byte(i + 128)})}
	}
	return table
}

// Char returns a fragment holding the single character r. Codes below 256
// share process-lifetime interned singletons: two calls with the same such
// code return the identical *Fragment. Larger runes allocate an owned
// single-character text fragment.
func Char(r rune) *Fragment {
	if r >= 0 && r < 256 {
		return interned[r]
	}
	return &Fragment{kind: KindText, text: string(r)}
}

// Text returns a fragment that owns the string s.
func Text(s string) *Fragment {
	return &Fragment{kind: KindText, text: s}
}

// Bytes returns a fragment viewing the whole of buf. The slice is retained
// by reference, not copied: it must be a stable allocation and must not be
// mutated after the call. A nil buf is rejected eagerly.
func Bytes(buf []byte) (*Fragment, error) {
	return Range(buf, 0, len(buf))
}

// Range returns a fragment viewing n bytes of buf starting at off, under
// the same retention rules as Bytes. Range(buf, 0, len(buf)) is exactly
// equivalent to Bytes(buf).
func Range(buf []byte, off, n int) (*Fragment, error) {
	if buf == nil {
		return nil, errors.New("E001")
	}
	// n > len(buf)-off rather than off+n > len(buf): the sum can overflow.
	if off < 0 || n < 0 || off > len(buf) || n > len(buf)-off {
		return nil, errors.New("E002").
			WithDetail(fmt.Sprintf("offset %d length %d against buffer of %d bytes", off, n, len(buf)))
	}
	return &Fragment{kind: KindBytes, buf: buf, off: off, n: n}, nil
}

// Kind returns the fragment's discriminator.
func (f *Fragment) Kind() Kind {
	return f.kind
}

// Len returns the fragment's size in bytes.
func (f *Fragment) Len() int {
	if f.kind == KindBytes {
		return f.n
	}
	return len(f.text)
}

// String materializes the fragment's content. For KindBytes this copies;
// emission through WriteTo avoids that copy.
func (f *Fragment) String() string {
	if f.kind == KindBytes {
		return string(f.buf[f.off : f.off+f.n])
	}
	return f.text
}

// WriteTo emits the fragment's content to w. It is the single dispatch
// point over the closed set of kinds; empty fragments write nothing.
func (f *Fragment) WriteTo(w io.Writer) (int64, error) {
	if f.Len() == 0 {
		return 0, nil
	}
	switch f.kind {
	case KindChar, KindText, KindCopy:
		n, err := io.WriteString(w, f.text)
		return int64(n), err
	case KindBytes:
		n, err := w.Write(f.buf[f.off : f.off+f.n])
		return int64(n), err
	default:
		return 0, errors.New("E007").
			WithDetail("kind " + f.kind.String())
	}
}

// Sink receives fragments in write order during emission. Implementations
// are supplied by the hosting pipeline; see package emit for common ones.
type Sink interface {
	RawWrite(f *Fragment) error
}

// Pool supplies reusable scratch memory for transient span copies.
// Acquire returns a slice of length at least size; Release returns a slice
// previously handed out by Acquire. Implementations must be safe for
// concurrent use across render passes.
type Pool interface {
	Acquire(size int) []byte
	Release(buf []byte)
}

// heapPool is the fallback when no external pool is supplied. Acquire
// allocates fresh memory and Release is a no-op, leaving reclamation to
// the garbage collector.
type heapPool struct{}

func (heapPool) Acquire(size int) []byte { return make([]byte, size) }

func (heapPool) Release([]byte) {}
