package bem

import "reflect"

// Mod is a modifier input consumed by Modifier/WithMod/Element. It is a closed
// sum: a literal Part, a Seq of further inputs, or an ordered condition map
// (Conds/Cond). Normalization walks the structure, keeps valid literals and
// the names of conditions that hold, and removes duplicates keeping the first
// occurrence.
type Mod interface {
	normalizeInto(dst []Part, seen map[Part]struct{}) []Part
}

// Seq is an ordered sequence of modifier inputs, flattened recursively.
type Seq []Mod

func (s Seq) normalizeInto(dst []Part, seen map[Part]struct{}) []Part {
	for _, m := range s {
		if m == nil {
			continue
		}
		dst = m.normalizeInto(dst, seen)
	}
	return dst
}

// Cond is a single conditional modifier: Name contributes when On is true.
type Cond struct {
	Name string
	On   bool
}

// When builds a Cond. Callers decide truthiness; a condition backed by a
// non-empty collection, for example, should pass len > 0.
func When(name string, on bool) Cond { return Cond{Name: name, On: on} }

func (c Cond) normalizeInto(dst []Part, seen map[Part]struct{}) []Part {
	if !c.On {
		return dst
	}
	return S(c.Name).normalizeInto(dst, seen)
}

// Conds is an ordered condition map. Entry order is the contribution order.
type Conds []Cond

func (cs Conds) normalizeInto(dst []Part, seen map[Part]struct{}) []Part {
	for _, c := range cs {
		dst = c.normalizeInto(dst, seen)
	}
	return dst
}

// normalizeMods merges contributions across arguments, deduped in first
// occurrence order.
func normalizeMods(mods []Mod) []Part {
	var out []Part
	seen := make(map[Part]struct{})
	for _, m := range mods {
		if m == nil {
			continue
		}
		out = m.normalizeInto(out, seen)
	}
	return out
}

// dedupMods removes duplicate raw inputs before any normalization, comparing
// whole arguments by value. First occurrence wins.
func dedupMods(mods []Mod) []Mod {
	out := make([]Mod, 0, len(mods))
	for _, m := range mods {
		if m == nil {
			continue
		}
		dup := false
		for _, e := range out {
			if modEqual(e, m) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, m)
		}
	}
	return out
}

func modEqual(a, b Mod) bool {
	switch x := a.(type) {
	case Part:
		y, ok := b.(Part)
		return ok && x == y
	case Cond:
		y, ok := b.(Cond)
		return ok && x == y
	default:
		// Seq and Conds carry slices; fall back to structural equality.
		return reflect.DeepEqual(a, b)
	}
}
