package dlist

import "github.com/graxinc/dlist/internal/chain"

// Cursor is a stateful head-to-tail traversal over a List. It is
// restartable via Reset but not isolated: any structural mutation of the
// list, by this goroutine or another, invalidates it and later Next calls
// report exhaustion instead of touching stale entries.
type Cursor[T any] struct {
	l       *List[T]
	at      int
	version uint64
	invalid bool
}

// Cursor begins a traversal positioned at the current head.
func (l *List[T]) Cursor() *Cursor[T] {
	c := &Cursor[T]{l: l, at: chain.None}
	c.Reset()
	return c
}

// Reset repositions the cursor at the list's current head and revalidates it.
func (c *Cursor[T]) Reset() {
	if c.l == nil {
		return
	}
	c.l.mu.Lock()
	defer c.l.mu.Unlock()
	c.at = c.l.ch.Head()
	c.version = c.l.version
	c.invalid = false
}

// Next yields the payload and size under the cursor and advances it.
// ok is false once the traversal is exhausted or the cursor invalidated.
func (c *Cursor[T]) Next() (T, int, bool) {
	var zero T
	if c.l == nil || c.invalid || c.at == chain.None {
		return zero, 0, false
	}
	c.l.mu.Lock()
	defer c.l.mu.Unlock()
	if c.version != c.l.version {
		c.invalid = true
		return zero, 0, false
	}
	e := c.l.ch.Value(c.at)
	c.at = c.l.ch.Next(c.at)
	return e.val, e.size, true
}

// Invalidated reports whether a structural mutation cut the traversal
// short. Reset clears it.
func (c *Cursor[T]) Invalidated() bool { return c.invalid }
