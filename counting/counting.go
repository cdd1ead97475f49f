// Package counting refcounts list payloads. A payload shared by several
// lists, or by a list and outside readers, is released exactly once: after
// every Handle and the owning Node itself have been released.
package counting

import (
	"iter"
	"sync/atomic"

	"github.com/graxinc/dlist"
	"github.com/graxinc/errutil"
)

type Releaser interface {
	// Idempotent.
	Release()
}

type Handle[T any] interface {
	Releaser
	Value() T
}

// A node that tracks Releases from its Handles and only releases the
// underlying value once all Handles and the node itself have been released.
// Concurrent safe.
type Node[T Releaser] struct {
	value T

	// First to hit -1 runs the Value.Release.
	handles atomic.Int64

	released atomic.Bool // for the node release
}

// v is Released after all Handles have been Released plus the node Release.
func NewNode[T Releaser](v T) *Node[T] {
	return &Node[T]{value: v}
}

func (n *Node[T]) Release() {
	if !n.released.Swap(true) {
		n.dec()
	}
}

// Node already released when !ok.
// Caller must release Handle.
func (n *Node[T]) Handle() (_ Handle[T], ok bool) {
	if !n.inc() {
		return nil, false
	}
	return &handle[T]{n: n}, true
}

// Intended for metrics.
func (n *Node[T]) Handles() int {
	return int(n.handles.Load())
}

func (n *Node[T]) Value() T {
	return n.value
}

func (n *Node[T]) inc() (ok bool) {
	for {
		old := n.handles.Load()
		if old < 0 {
			return false
		}
		if !n.handles.CompareAndSwap(old, old+1) {
			continue // concurrent, try again
		}
		return true
	}
}

func (n *Node[T]) dec() {
	// going past -1 protected via bool swaps
	if v := n.handles.Add(-1); v < 0 {
		n.value.Release()
	}
}

type handle[T Releaser] struct {
	n        *Node[T]
	released atomic.Bool
}

func (h *handle[T]) Value() T {
	return h.n.Value()
}

func (h *handle[T]) Release() {
	if !h.released.Swap(true) {
		h.n.dec()
	}
}

// Similar to dlist.List except each entry holds a node reference to its
// payload, which is Released when the entry is removed but only after all
// outstanding Handles of that payload are released. Useful when payloads
// track reusable items and the list must know all callers are done.
// Concurrent safe.
type List[V Releaser] struct {
	list *dlist.List[*Node[V]]
}

func NewList[V Releaser]() List[V] {
	release := func(n *Node[V]) {
		n.Release()
	}
	return List[V]{dlist.New(dlist.Options[*Node[V]]{Release: release})}
}

// PushS appends v at the tail. Caller must release Handle.
func (l List[V]) PushS(v V, size int) Handle[V] {
	n := NewNode(v)
	h, _ := n.Handle()
	l.list.PushS(n, size)
	return h
}

// Alias for PushS(v, 0).
func (l List[V]) Push(v V) Handle[V] {
	return l.PushS(v, 0)
}

// UnshiftS prepends v at the head. Caller must release Handle.
func (l List[V]) UnshiftS(v V, size int) Handle[V] {
	n := NewNode(v)
	h, _ := n.Handle()
	l.list.UnshiftS(n, size)
	return h
}

// Pop removes the tail entry. The entry's node reference is released;
// the payload survives until the returned Handle (and any others) go.
// Caller must release Handle.
func (l List[V]) Pop() (Handle[V], bool) { return l.removeEnd(true) }

// Shift removes the head entry. Same contract as Pop.
func (l List[V]) Shift() (Handle[V], bool) { return l.removeEnd(false) }

func (l List[V]) removeEnd(tail bool) (Handle[V], bool) {
	var n *Node[V]
	var ok bool
	if tail {
		n, _, ok = l.list.Pop()
	} else {
		n, _, ok = l.list.Shift()
	}
	if !ok {
		return nil, false
	}
	// nodes are never handed out, so the list's reference must still hold.
	h, ok := n.Handle()
	if !ok {
		panic(errutil.New(errutil.Tags{"alreadyReleased": n.Value()}))
	}
	n.Release() // the list's reference
	return h, true
}

// RemoveFunc removes entries whose payload matches pred, releasing each
// removed entry's node reference. Returns the number removed.
func (l List[V]) RemoveFunc(pred func(v V, size int) bool) int {
	return l.list.RemoveFunc(func(n *Node[V], size int) bool {
		return pred(n.Value(), size)
	}, nil)
}

// All ranges head to tail, handing out a Handle per entry.
// Caller must release each Handle.
func (l List[V]) All() iter.Seq[Handle[V]] {
	return func(yield func(Handle[V]) bool) {
		for n := range l.list.Values() {
			h, ok := n.Handle()
			if !ok { // already released, skip
				continue
			}
			if !yield(h) {
				return
			}
		}
	}
}

func (l List[V]) Len() int {
	return l.list.Len()
}

// Clear removes every entry, releasing each node reference.
func (l List[V]) Clear() {
	l.list.Clear()
}

// Intended for metrics.
func (l List[V]) Handles() int {
	var c int
	for n := range l.list.Values() {
		if h := n.Handles(); h > 0 {
			c += h
		}
	}
	return c
}
