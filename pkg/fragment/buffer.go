package fragment

import (
	"io"

	"github.com/vango-dev/taghelper/internal/errors"
)

// Buffer accumulates an ordered sequence of fragments written by a
// template evaluator and later emits them, in write order, to a Sink.
//
// A Buffer is owned by a single render pass and requires no locking. It
// additionally implements io.Writer, io.StringWriter, and io.ByteWriter so
// it drops into pipelines that expect incremental writes; every write
// completes synchronously on the calling goroutine. The zero value is
// ready to use and takes scratch memory from the heap.
type Buffer struct {
	pool    Pool
	frags   []*Fragment
	scratch [][]byte
	closed  bool
}

// NewBuffer creates a buffer that takes span-copy scratch memory from
// pool. A nil pool falls back to plain heap allocation.
func NewBuffer(pool Pool) *Buffer {
	if pool == nil {
		pool = heapPool{}
	}
	return &Buffer{pool: pool}
}

// WriteRune appends a single-character fragment for r. Codes below 256
// reuse the interned singletons and allocate nothing. It returns the
// number of bytes the character occupies in the output.
func (b *Buffer) WriteRune(r rune) (int, error) {
	f := Char(r)
	b.frags = append(b.frags, f)
	return f.Len(), nil
}

// WriteByte appends the single byte c, implementing io.ByteWriter. The
// fragment is always an interned singleton. Note the io.ByteWriter
// contract: c >= 128 is written as the raw byte, not as the UTF-8
// encoding of the code point; use WriteRune for character semantics.
func (b *Buffer) WriteByte(c byte) error {
	if c < 128 {
		b.frags = append(b.frags, interned[c])
	} else {
		b.frags = append(b.frags, internedBytes[c-128])
	}
	return nil
}

// WriteString appends s as a single owned-text fragment. The string is
// never split.
func (b *Buffer) WriteString(s string) (int, error) {
	b.frags = append(b.frags, Text(s))
	return len(s), nil
}

// WriteBytes appends a fragment viewing the whole of buf. The slice is
// retained by reference: it must be a stable allocation and must not be
// mutated afterwards.
func (b *Buffer) WriteBytes(buf []byte) error {
	f, err := Bytes(buf)
	if err != nil {
		return err
	}
	b.frags = append(b.frags, f)
	return nil
}

// WriteByteRange appends a fragment viewing n bytes of buf starting at
// off, under the same retention rules as WriteBytes. Passing the whole
// range is equivalent to WriteBytes(buf).
func (b *Buffer) WriteByteRange(buf []byte, off, n int) error {
	f, err := Range(buf, off, n)
	if err != nil {
		return err
	}
	b.frags = append(b.frags, f)
	return nil
}

// WriteSpan appends an independent copy of span. Unlike WriteBytes the
// backing memory is not trusted to outlive the call: the bytes are copied
// into pooled scratch memory, which the buffer retains until Close, and
// the stored fragment holds its own durable copy of the data. On any
// failure the scratch buffer is released before the error propagates and
// no fragment is appended.
func (b *Buffer) WriteSpan(span []byte) error {
	if span == nil {
		return errors.New("E001")
	}
	if b.closed {
		return errors.New("E008")
	}
	if len(span) == 0 {
		b.frags = append(b.frags, &Fragment{kind: KindCopy})
		return nil
	}

	// A zero-value Buffer has no pool; Write must still work on it.
	if b.pool == nil {
		b.pool = heapPool{}
	}

	scratch := b.pool.Acquire(len(span))
	stored := false
	defer func() {
		if !stored {
			b.pool.Release(scratch)
		}
	}()

	if len(scratch) < len(span) {
		return errors.New("E003")
	}
	copy(scratch, span)

	// The pooled slice is released at Close, so the public fragment gets
	// its own copy rather than aliasing scratch.
	f := &Fragment{kind: KindCopy, text: string(scratch[:len(span)])}
	b.scratch = append(b.scratch, scratch)
	stored = true
	b.frags = append(b.frags, f)
	return nil
}

// Write implements io.Writer. The io.Writer contract forbids retaining p,
// so Write takes the copying WriteSpan path.
func (b *Buffer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := b.WriteSpan(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Emit writes every fragment, in write order, to the sink. It does not
// clear the buffer; emitting twice produces the output twice.
func (b *Buffer) Emit(s Sink) error {
	for _, f := range b.frags {
		if err := s.RawWrite(f); err != nil {
			return err
		}
	}
	return nil
}

// WriteTo drains the buffer's content to w in write order without
// clearing it, implementing io.WriterTo.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, f := range b.frags {
		n, err := f.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String materializes the buffered content as one string.
func (b *Buffer) String() string {
	sb := make([]byte, 0, b.Len())
	for _, f := range b.frags {
		if f.kind == KindBytes {
			sb = append(sb, f.buf[f.off:f.off+f.n]...)
		} else {
			sb = append(sb, f.text...)
		}
	}
	return string(sb)
}

// Len returns the total byte length of the buffered content.
func (b *Buffer) Len() int {
	total := 0
	for _, f := range b.frags {
		total += f.Len()
	}
	return total
}

// Fragments returns the buffered fragments in write order. The slice is a
// copy; the fragments themselves are immutable and shared.
func (b *Buffer) Fragments() []*Fragment {
	out := make([]*Fragment, len(b.frags))
	copy(out, b.frags)
	return out
}

// Reset releases pooled scratch memory and truncates the buffer so it can
// be reused for another render pass. A closed buffer is reopened.
func (b *Buffer) Reset() {
	b.releaseScratch()
	b.frags = b.frags[:0]
	b.closed = false
}

// Close releases every pooled scratch buffer acquired by WriteSpan,
// exactly once each. Closing an already-closed buffer, or one that never
// acquired scratch memory, is a no-op.
func (b *Buffer) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.releaseScratch()
	return nil
}

func (b *Buffer) releaseScratch() {
	for _, s := range b.scratch {
		b.pool.Release(s)
	}
	b.scratch = nil
}
