//go:build dlistcheck

package chain

import "github.com/graxinc/errutil"

// check walks the chain and the free list and panics when the link
// structure no longer accounts for every slot.
func (c *Chain[T]) check() {
	linked := 0
	prev := None
	for i := c.head; i != None; i = c.slots[i].next {
		if c.slots[i].prev != prev {
			panic(errutil.New(errutil.Tags{"badPrev": i, "want": prev, "got": c.slots[i].prev}))
		}
		prev = i
		linked++
		if linked > c.length {
			panic(errutil.New(errutil.Tags{"cycleAt": i, "length": c.length}))
		}
	}
	if linked != c.length {
		panic(errutil.New(errutil.Tags{"walked": linked, "length": c.length}))
	}
	if prev != c.tail {
		panic(errutil.New(errutil.Tags{"badTail": c.tail, "walkedTo": prev}))
	}
	// unlinked-but-unrecycled slots are in neither walk, so the two can
	// only be bounded by the arena, not required to cover it.
	free := 0
	for i := c.free; i != None; i = c.slots[i].next {
		free++
		if free > len(c.slots) {
			panic(errutil.New(errutil.Tags{"freeCycleAt": i}))
		}
	}
	if linked+free > len(c.slots) {
		panic(errutil.New(errutil.Tags{"linked": linked, "free": free, "slots": len(c.slots)}))
	}
}
