package tombola

import (
	"cmp"
	"sync"
)

// Synchronized guards every operation of the wrapped tombola with one
// mutex.
type Synchronized[T cmp.Ordered] struct {
	mu    sync.Mutex
	inner Tombola[T]
}

var _ Tombola[int] = (*Synchronized[int])(nil)

func Synchronize[T cmp.Ordered](t Tombola[T]) *Synchronized[T] {
	if s, ok := t.(*Synchronized[T]); ok {
		return s
	}
	return &Synchronized[T]{inner: t}
}

func (s *Synchronized[T]) Load(items ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Load(items...)
}

func (s *Synchronized[T]) Pick() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Pick()
}

func (s *Synchronized[T]) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Loaded()
}

func (s *Synchronized[T]) Inspect() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Inspect()
}

// Unwrap returns the guarded tombola.
func (s *Synchronized[T]) Unwrap() Tombola[T] {
	return s.inner
}
