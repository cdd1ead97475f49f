// Package strbuf is a minimal string accumulator: construct empty, append
// pieces, materialize the contents as an independently owned string.
package strbuf

import "strings"

// Not concurrent safe.
type Buffer struct {
	b strings.Builder
}

func New() *Buffer { return &Buffer{} }

// Append adds s at the end of the buffer.
func (b *Buffer) Append(s string) { b.b.WriteString(s) }

// Len is the accumulated byte length.
func (b *Buffer) Len() int { return b.b.Len() }

// String materializes the contents. The result is independent of later
// Appends or Resets.
func (b *Buffer) String() string { return b.b.String() }

// Reset empties the buffer for reuse.
func (b *Buffer) Reset() { b.b.Reset() }
