package emit

import (
	"io"
	"net/http"

	"github.com/vango-dev/taghelper/pkg/fragment"
)

// WriterSink drains fragments to an io.Writer. Byte-view fragments pass
// through without materializing intermediate strings.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// RawWrite implements fragment.Sink.
func (s *WriterSink) RawWrite(f *fragment.Fragment) error {
	_, err := f.WriteTo(s.w)
	return err
}

// StreamingSink drains fragments to an http.ResponseWriter (or any
// writer), flushing after each fragment when the writer implements
// http.Flusher. Useful for chunked responses where time-to-first-byte
// matters more than syscall count.
type StreamingSink struct {
	w       io.Writer
	flusher http.Flusher
}

// NewStreamingSink creates a streaming sink. If w implements
// http.Flusher, every fragment is flushed as it is written.
func NewStreamingSink(w io.Writer) *StreamingSink {
	flusher, _ := w.(http.Flusher)
	return &StreamingSink{w: w, flusher: flusher}
}

// RawWrite implements fragment.Sink.
func (s *StreamingSink) RawWrite(f *fragment.Fragment) error {
	if _, err := f.WriteTo(s.w); err != nil {
		return err
	}
	if s.flusher != nil {
		s.flusher.Flush()
	}
	return nil
}

// CollectSink accumulates fragments for inspection in tests.
type CollectSink struct {
	Fragments []*fragment.Fragment
}

// RawWrite implements fragment.Sink.
func (s *CollectSink) RawWrite(f *fragment.Fragment) error {
	s.Fragments = append(s.Fragments, f)
	return nil
}

// String concatenates the collected fragments.
func (s *CollectSink) String() string {
	total := 0
	for _, f := range s.Fragments {
		total += f.Len()
	}
	out := make([]byte, 0, total)
	for _, f := range s.Fragments {
		out = append(out, f.String()...)
	}
	return string(out)
}

// FlushableWriter wraps an io.Writer with flush counting. It exists for
// testing streaming behavior without an http.ResponseWriter.
type FlushableWriter struct {
	io.Writer
	FlushCount int
}

// Flush implements http.Flusher.
func (w *FlushableWriter) Flush() {
	w.FlushCount++
}
