package bem

import (
	"reflect"
	"strings"
)

// ClassList is an ordered sequence of class items. It renders as the items'
// string forms joined by a single space, skipping items that are not
// renderable. A ClassList is never mutated after creation; Concat returns a
// new list.
type ClassList struct {
	items []Item
}

// NewList builds a list from the given items. Nested lists are spliced in,
// not nested; nil items are dropped.
func NewList(items ...Item) ClassList {
	return ClassList{items: flattenItems(items)}
}

func (l ClassList) class()           {}
func (l ClassList) renderable() bool { return true }

// Len returns the number of items.
func (l ClassList) Len() int { return len(l.items) }

// At returns the item at index i. It panics when i is out of range, matching
// slice indexing.
func (l ClassList) At(i int) Item { return l.items[i] }

// Items returns a copy of the contained items.
func (l ClassList) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// Concat returns a new list of the receiver's items followed by the incoming
// items, flattened and deduped by value. Existing contents are not deduped.
func (l ClassList) Concat(items ...Item) ClassList {
	in := dedupItems(flattenItems(items))
	out := make([]Item, 0, len(l.items)+len(in))
	out = append(out, l.items...)
	out = append(out, in...)
	return ClassList{items: out}
}

// String renders the list: non-renderable items are filtered, the rest are
// stringified and joined with a single space.
func (l ClassList) String() string {
	var b strings.Builder
	first := true
	for _, it := range l.items {
		if it == nil || !it.renderable() {
			continue
		}
		if !first {
			b.WriteByte(' ')
		}
		b.WriteString(it.String())
		first = false
	}
	return b.String()
}

func flattenItems(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		switch v := it.(type) {
		case nil:
			continue
		case ClassList:
			out = append(out, flattenItems(v.items)...)
		default:
			out = append(out, it)
		}
	}
	return out
}

func dedupItems(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		dup := false
		for _, e := range out {
			if itemEqual(e, it) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, it)
		}
	}
	return out
}

func itemEqual(a, b Item) bool {
	switch x := a.(type) {
	case ClassName:
		y, ok := b.(ClassName)
		return ok && x == y
	case Raw:
		y, ok := b.(Raw)
		return ok && x == y
	default:
		return reflect.DeepEqual(a, b)
	}
}
