package dlist

import "github.com/graxinc/dlist/strbuf"

// String convenience wrappers. Insertions pass SizeAuto so entry sizes
// track the text length.

func PushString(l *List[string], s string) bool    { return l.PushS(s, SizeAuto) }
func UnshiftString(l *List[string], s string) bool { return l.UnshiftS(s, SizeAuto) }
func EnqueueString(l *List[string], s string) bool { return PushString(l, s) }

// PopString removes and returns the tail string, "" when the list is
// empty or nil.
func PopString(l *List[string]) string {
	v, _, _ := l.Pop()
	return v
}

// ShiftString removes and returns the head string, "" when the list is
// empty or nil.
func ShiftString(l *List[string]) string {
	v, _, _ := l.Shift()
	return v
}

func DequeueString(l *List[string]) string { return ShiftString(l) }

// Join concatenates the list's strings head to tail with delim between
// neighbors, as one locked walk. An empty or nil list yields "".
func Join(l *List[string], delim string) string {
	b := strbuf.New()
	first := true
	l.ForEach(func(v string, _ int) bool {
		if !first {
			b.Append(delim)
		}
		first = false
		b.Append(v)
		return true
	})
	return b.String()
}
