package dlist

import (
	"iter"

	"github.com/graxinc/dlist/internal/chain"
)

// ForEach walks head to tail under a single lock acquisition, calling fn
// with each payload and size. fn returning false stops the walk early.
// Returns the number of entries visited, the stopping one included.
// fn must not call back into l.
func (l *List[T]) ForEach(fn func(v T, size int) bool) int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	visited := 0
	for i := l.ch.Head(); i != chain.None; i = l.ch.Next(i) {
		e := l.ch.Value(i)
		visited++
		if !fn(e.val, e.size) {
			break
		}
	}
	return visited
}

// All ranges over payloads and sizes, head to tail. The list lock is held
// for the entire walk. The body must not call back into l.
func (l *List[T]) All() iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		l.ForEach(yield)
	}
}

// All without the sizes.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.ForEach(func(v T, _ int) bool { return yield(v) })
	}
}

// RemoveFunc removes every entry whose payload matches pred, applying
// release (or, when release is nil, the list's Release) to each removed
// payload. Every entry is visited exactly once under a single lock
// acquisition, the successor captured before any unlink so removing the
// current entry, the tail included, cannot derail the walk.
// Returns the number removed.
func (l *List[T]) RemoveFunc(pred func(v T, size int) bool, release func(T)) int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	ff := l.resolveRelease(release)
	removed := 0
	for i := l.ch.Head(); i != chain.None; {
		next := l.ch.Next(i)
		e := l.ch.Value(i)
		if pred(e.val, e.size) {
			l.ch.Remove(i)
			if ff != nil {
				ff(e.val)
			}
			removed++
		}
		i = next
	}
	if removed > 0 {
		l.version++
	}
	return removed
}

// Map builds a new list, no Release func set, holding fn applied to each
// of l's entries in order. The source is walked read-only.
func Map[T, U any](l *List[T], fn func(v T, size int) (U, int)) *List[U] {
	out := New[U](Options[U]{})
	l.ForEach(func(v T, size int) bool {
		out.PushS(fn(v, size))
		return true
	})
	return out
}
