//go:build !dlistcheck

package chain

func (c *Chain[T]) check() {}
