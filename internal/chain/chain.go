// Package chain is a doubly linked chain backed by an arena of slots.
// Neighbor relations are slot indices instead of pointers, and removed
// slots are recycled through a free list, so splice and unsplice stay O(1)
// without entries ever dangling.
//
// Not concurrent safe. Callers serialize access themselves.
package chain

// None marks the absence of a neighboring slot.
const None = -1

type slot[T any] struct {
	value T
	prev  int
	next  int // doubles as the free-list link while the slot is recycled
}

type Chain[T any] struct {
	slots  []slot[T]
	free   int // head of the free-slot list
	head   int
	tail   int
	length int
}

func New[T any]() *Chain[T] {
	return &Chain[T]{free: None, head: None, tail: None}
}

// Len is the number of linked slots. The complexity is O(1).
func (c *Chain[T]) Len() int { return c.length }

// Head returns the first linked slot, or None when empty.
func (c *Chain[T]) Head() int { return c.head }

// Tail returns the last linked slot, or None when empty.
func (c *Chain[T]) Tail() int { return c.tail }

// Next returns the slot after i, or None at the tail.
func (c *Chain[T]) Next(i int) int { return c.slots[i].next }

// Prev returns the slot before i, or None at the head.
func (c *Chain[T]) Prev(i int) int { return c.slots[i].prev }

// Value returns the value stored in slot i.
func (c *Chain[T]) Value(i int) T { return c.slots[i].value }

func (c *Chain[T]) alloc(v T) int {
	if c.free != None {
		i := c.free
		c.free = c.slots[i].next
		c.slots[i] = slot[T]{value: v, prev: None, next: None}
		return i
	}
	c.slots = append(c.slots, slot[T]{value: v, prev: None, next: None})
	return len(c.slots) - 1
}

func (c *Chain[T]) recycle(i int) {
	var zero T
	c.slots[i] = slot[T]{value: zero, prev: None, next: c.free}
	c.free = i
}

// PushTail appends v and returns its slot.
func (c *Chain[T]) PushTail(v T) int { return c.InsertAt(v, None, true) }

// PushHead prepends v and returns its slot.
func (c *Chain[T]) PushHead(v T) int { return c.InsertAt(v, None, false) }

// InsertAt splices a new slot holding v next to ref: toward the tail when
// after is true, toward the head otherwise. A ref of None means the tail
// when after, the head otherwise, so an insert into an empty chain becomes
// both ends. Returns the new slot.
func (c *Chain[T]) InsertAt(v T, ref int, after bool) int {
	i := c.alloc(v)
	if after {
		if ref == None {
			ref = c.tail
		}
		if ref == None {
			c.head, c.tail = i, i
		} else {
			next := c.slots[ref].next
			c.slots[i].prev = ref
			c.slots[i].next = next
			if next != None {
				c.slots[next].prev = i
			} else {
				c.tail = i
			}
			c.slots[ref].next = i
		}
	} else {
		if ref == None {
			ref = c.head
		}
		if ref == None {
			c.head, c.tail = i, i
		} else {
			prev := c.slots[ref].prev
			c.slots[i].next = ref
			c.slots[i].prev = prev
			if prev != None {
				c.slots[prev].next = i
			} else {
				c.head = i
			}
			c.slots[ref].prev = i
		}
	}
	c.length++
	c.check()
	return i
}

// Unlink detaches slot i from the chain without recycling it, repairing
// neighbor links and the head/tail ends.
func (c *Chain[T]) Unlink(i int) {
	s := c.slots[i]
	if s.next != None {
		c.slots[s.next].prev = s.prev
	} else {
		c.tail = s.prev
	}
	if s.prev != None {
		c.slots[s.prev].next = s.next
	} else {
		c.head = s.next
	}
	c.slots[i].prev = None
	c.slots[i].next = None
	c.length--
	c.check()
}

// Remove unlinks slot i and recycles it, returning the stored value.
func (c *Chain[T]) Remove(i int) T {
	v := c.slots[i].value
	c.Unlink(i)
	c.recycle(i)
	return v
}

// Find walks forward from the head to the n-th linked slot, zero based.
// Returns None when n is out of range.
func (c *Chain[T]) Find(n int) int {
	if n < 0 || n >= c.length {
		return None
	}
	i := c.head
	for ; n > 0; n-- {
		i = c.slots[i].next
	}
	return i
}

// FindRelative is Find with negative n counting back from the tail,
// -1 being the last slot. Returns None when n underflows past the head.
func (c *Chain[T]) FindRelative(n int) int {
	if n < 0 {
		n += c.length
	}
	if n < 0 {
		return None
	}
	return c.Find(n)
}

// Clear drops every slot, linked and free.
func (c *Chain[T]) Clear() {
	c.slots = nil
	c.free = None
	c.head, c.tail = None, None
	c.length = 0
}
