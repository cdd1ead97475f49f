// Package dlist is a mutex-guarded, double-ended linked list. Entries pair
// a payload with a caller-declared byte size, and a configurable release
// policy decides who frees payloads when entries leave the list.
package dlist

import (
	"sync"

	"github.com/graxinc/dlist/internal/chain"
)

// SizeAuto tells an insertion to infer the entry size from the payload:
// length for string and []byte payloads, else Options.SizeOf, else 0.
// All negative sizes are reserved and rejected as explicit sizes.
const SizeAuto = -1

type entry[T any] struct {
	val  T
	size int
}

type Options[T any] struct {
	// Applied to removed payloads when the removal call does not supply
	// its own release func. Nil leaves payload ownership with the caller.
	Release func(T)

	// Resolves SizeAuto for payload types without an inherent length.
	SizeOf func(T) int
}

// Concurrent safe. Operations on the same list are serialized by one
// mutex held for the duration of each call, bulk traversals included.
// A nil *List behaves as an immutable empty list.
type List[T any] struct {
	mu      sync.Mutex
	ch      *chain.Chain[entry[T]]
	release func(T)
	sizeOf  func(T) int
	version uint64 // bumped on structural mutation, validates cursors
}

func New[T any](o Options[T]) *List[T] {
	return &List[T]{
		ch:      chain.New[entry[T]](),
		release: o.Release,
		sizeOf:  o.SizeOf,
	}
}

func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ch.Len()
}

// PushS appends v at the tail with an explicit size, or SizeAuto.
// False when the list is nil or the size is negative.
func (l *List[T]) PushS(v T, size int) bool { return l.insertEnd(v, size, true) }

// Alias for PushS(v, 0), for callers that do not track sizes.
func (l *List[T]) Push(v T) bool { return l.PushS(v, 0) }

// UnshiftS prepends v at the head. Same size handling as PushS.
func (l *List[T]) UnshiftS(v T, size int) bool { return l.insertEnd(v, size, false) }

// Alias for UnshiftS(v, 0).
func (l *List[T]) Unshift(v T) bool { return l.UnshiftS(v, 0) }

// EnqueueS/Enqueue and Dequeue spell out FIFO use: tail insert, head remove.
func (l *List[T]) EnqueueS(v T, size int) bool { return l.PushS(v, size) }
func (l *List[T]) Enqueue(v T) bool            { return l.Push(v) }
func (l *List[T]) Dequeue() (T, int, bool)     { return l.Shift() }

// Pop removes the tail entry, returning its payload and size.
// ok is false when the list is empty or nil. No release func runs; the
// payload goes back to the caller.
func (l *List[T]) Pop() (T, int, bool) { return l.removeEnd(true) }

// Shift removes the head entry. Same contract as Pop.
func (l *List[T]) Shift() (T, int, bool) { return l.removeEnd(false) }

// First peeks at the head entry without removing it.
func (l *List[T]) First() (T, int, bool) { return l.peek(false) }

// Last peeks at the tail entry without removing it.
func (l *List[T]) Last() (T, int, bool) { return l.peek(true) }

// Nth walks forward to the zero-based n-th entry. False when n is out of
// range. O(n).
func (l *List[T]) Nth(n int) (T, int, bool) {
	return l.nth(n, false)
}

// NthRelative is Nth with negative n counting back from the tail, -1
// being the last entry. False when n underflows past the head.
func (l *List[T]) NthRelative(n int) (T, int, bool) {
	return l.nth(n, true)
}

// RemoveNth removes the n-th entry. release, or the list's Release when
// release is nil, is applied to the payload; if either ran, the returned
// payload and size are zeroed since the payload was surrendered.
func (l *List[T]) RemoveNth(n int, release func(T)) (T, int, bool) {
	var zero T
	if l == nil {
		return zero, 0, false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.ch.Find(n)
	if i == chain.None {
		return zero, 0, false
	}
	e := l.ch.Remove(i)
	l.version++
	if ff := l.resolveRelease(release); ff != nil {
		ff(e.val)
		return zero, 0, true
	}
	return e.val, e.size, true
}

// Clear is ClearWith(nil).
func (l *List[T]) Clear() { l.ClearWith(nil) }

// ClearWith removes every entry, applying release (or, when release is
// nil, the list's Release) to each payload head to tail. The emptied list
// stays usable.
func (l *List[T]) ClearWith(release func(T)) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if ff := l.resolveRelease(release); ff != nil {
		for i := l.ch.Head(); i != chain.None; i = l.ch.Next(i) {
			ff(l.ch.Value(i).val)
		}
	}
	l.ch.Clear()
	l.version++
}

func (l *List[T]) insertEnd(v T, size int, atTail bool) bool {
	if l == nil {
		return false
	}
	size = l.entrySize(v, size)
	if size < 0 {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if atTail {
		l.ch.PushTail(entry[T]{v, size})
	} else {
		l.ch.PushHead(entry[T]{v, size})
	}
	l.version++
	return true
}

func (l *List[T]) entrySize(v T, size int) int {
	if size != SizeAuto {
		return size
	}
	switch v := any(v).(type) {
	case string:
		return len(v)
	case []byte:
		return len(v)
	}
	if l.sizeOf != nil {
		return l.sizeOf(v)
	}
	return 0
}

func (l *List[T]) removeEnd(tail bool) (T, int, bool) {
	var zero T
	if l == nil {
		return zero, 0, false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.ch.Head()
	if tail {
		i = l.ch.Tail()
	}
	if i == chain.None {
		return zero, 0, false
	}
	e := l.ch.Remove(i)
	l.version++
	return e.val, e.size, true
}

func (l *List[T]) peek(tail bool) (T, int, bool) {
	var zero T
	if l == nil {
		return zero, 0, false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.ch.Head()
	if tail {
		i = l.ch.Tail()
	}
	if i == chain.None {
		return zero, 0, false
	}
	e := l.ch.Value(i)
	return e.val, e.size, true
}

func (l *List[T]) nth(n int, relative bool) (T, int, bool) {
	var zero T
	if l == nil {
		return zero, 0, false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	var i int
	if relative {
		i = l.ch.FindRelative(n)
	} else {
		i = l.ch.Find(n)
	}
	if i == chain.None {
		return zero, 0, false
	}
	e := l.ch.Value(i)
	return e.val, e.size, true
}

func (l *List[T]) resolveRelease(override func(T)) func(T) {
	if override != nil {
		return override
	}
	return l.release
}
