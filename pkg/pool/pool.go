package pool

import (
	"sync"
)

// sizeClasses are the scratch slice lengths kept by Sized, smallest first.
var sizeClasses = []int{64, 256, 1024, 4096, 16384, 65536}

// Sized is a size-classed scratch pool. Acquire rounds the request up to
// the nearest class and reuses slices of that class; requests beyond the
// largest class are served by plain allocation and dropped on release.
// Sized is safe for concurrent use across render passes.
type Sized struct {
	pools []*sync.Pool
}

// NewSized creates an empty size-classed pool.
func NewSized() *Sized {
	s := &Sized{pools: make([]*sync.Pool, len(sizeClasses))}
	for i, class := range sizeClasses {
		size := class
		s.pools[i] = &sync.Pool{
			New: func() any {
				buf := make([]byte, size)
				return &buf
			},
		}
	}
	return s
}

// Acquire returns a slice of length at least size.
func (s *Sized) Acquire(size int) []byte {
	for i, class := range sizeClasses {
		if size <= class {
			return *s.pools[i].Get().(*[]byte)
		}
	}
	return make([]byte, size)
}

// Release returns a slice previously handed out by Acquire. Slices that
// do not correspond to a size class are discarded.
func (s *Sized) Release(buf []byte) {
	for i, class := range sizeClasses {
		if cap(buf) == class {
			full := buf[:class]
			s.pools[i].Put(&full)
			return
		}
	}
}

// defaultPool is the process-wide shared pool. Initialized on first use,
// never torn down.
var (
	defaultPool     *Sized
	defaultPoolOnce sync.Once
)

// Default returns the process-wide shared scratch pool.
func Default() *Sized {
	defaultPoolOnce.Do(func() {
		defaultPool = NewSized()
	})
	return defaultPool
}
