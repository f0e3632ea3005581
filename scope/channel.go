package scope

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ErrNoPublisher is returned when a channel is read at a scope with no
// publisher above it. This is a hard failure on purpose: a silently
// defaulted value would mask the integration bug that caused the read.
var ErrNoPublisher = errors.New("no publisher above this scope")

// Key identifies one channel. Distinct names give distinct ids, so nested
// unrelated channels never collide.
type Key[T any] struct {
	id   uint64
	name string
}

func NewKey[T any](name string) Key[T] {
	return Key[T]{
		id:   xxhash.Sum64String(name),
		name: name,
	}
}

func (k Key[T]) Name() string { return k.name }

// Publish creates a child scope beneath s that carries v. Everything
// rendered under the returned scope can read v, nothing above it can.
func (k Key[T]) Publish(s *Scope, v T) *Scope {
	child := s.Child()
	child.set(k.id, v)
	return child
}

// Update replaces the value previously published at s, so already-mounted
// descendants observe the fresh value on their next read.
func (k Key[T]) Update(s *Scope, v T) {
	s.set(k.id, v)
}

// Read returns the value published by the nearest enclosing publisher of
// this channel, or ErrNoPublisher if there is none.
func (k Key[T]) Read(s *Scope) (T, error) {
	x, ok := s.lookup(k.id)
	if !ok {
		var zero T
		return zero, fmt.Errorf("channel %q: %w", k.name, ErrNoPublisher)
	}
	t, ok := x.(T)
	if !ok {
		panic("invalid type")
	}
	return t, nil
}
