package bem

import "strings"

// Item is a value a ClassList can hold: a ClassName, a nested ClassList, or a
// Raw token. The interface is sealed; rendering filters items by renderable.
type Item interface {
	String() string
	renderable() bool
}

// Class is a renderable class value: a single ClassName or a ClassList. It is
// the return type of operations that yield one or many class names depending
// on their inputs.
type Class interface {
	Item
	class()
}

// Raw is a literal class token carried through lists unchanged. The empty Raw
// is filtered from rendering.
type Raw string

func (r Raw) String() string   { return string(r) }
func (r Raw) renderable() bool { return r != "" }

// ClassName is one BEM class name: a block with an optional element and an
// optional modifier, rendered with the separators of its dialect. ClassName
// is an immutable value; every derivation returns a new value and never
// mutates the receiver.
type ClassName struct {
	block    string
	element  Part
	modifier Part
	dialect  Dialect
}

func (c ClassName) class()           {}
func (c ClassName) renderable() bool { return true }

// Block returns the block name.
func (c ClassName) Block() string { return c.block }

// ElementPart returns the element part (absent when unset).
func (c ClassName) ElementPart() Part { return c.element }

// ModifierPart returns the modifier part (absent when unset).
func (c ClassName) ModifierPart() Part { return c.modifier }

// Dialect returns the separator pair in effect for this value.
func (c ClassName) Dialect() Dialect { return c.dialect }

// String renders the class name: block, then separator+element when the
// element is valid, then separator+modifier when the modifier is valid.
func (c ClassName) String() string {
	var b strings.Builder
	b.WriteString(c.block)
	if c.element.Valid() {
		b.WriteString(c.dialect.ElementSeparator())
		b.WriteString(c.element.String())
	}
	if c.modifier.Valid() {
		b.WriteString(c.dialect.ModifierSeparator())
		b.WriteString(c.modifier.String())
	}
	return b.String()
}

// derive returns a copy with element set and modifier cleared.
func (c ClassName) derive(name Part) ClassName {
	c.element = name
	c.modifier = Part{}
	return c
}

// withModifier returns a copy with modifier set; element is kept.
func (c ClassName) withModifier(p Part) ClassName {
	c.modifier = p
	return c
}

// Element derives a class for an element of the block: the element part is
// replaced and any modifier cleared. With modifier inputs supplied, the
// result is the element class followed by its modified variants, as produced
// by WithMod on the intermediate element class.
func (c ClassName) Element(name Part, mods ...Mod) Class {
	next := c.derive(name)
	if len(mods) == 0 {
		return next
	}
	return next.WithMod(mods...)
}

// Elem is an alias for Element.
func (c ClassName) Elem(name Part, mods ...Mod) Class { return c.Element(name, mods...) }

// Modifier derives modified variants of the receiver. With no valid modifier
// after normalization the receiver itself is returned unchanged. One valid
// modifier yields a single ClassName; several yield a ClassList with one
// entry per modifier, in first-occurrence order.
func (c ClassName) Modifier(mods ...Mod) Class {
	parts := normalizeMods(mods)
	switch len(parts) {
	case 0:
		return c
	case 1:
		return c.withModifier(parts[0])
	}
	items := make([]Item, 0, len(parts))
	for _, p := range parts {
		items = append(items, c.withModifier(p))
	}
	return ClassList{items: items}
}

// Mod is an alias for Modifier.
func (c ClassName) Mod(mods ...Mod) Class { return c.Modifier(mods...) }

// Elements derives one element class per name, in input order. The receiver
// is not part of the result.
func (c ClassName) Elements(names ...Part) ClassList {
	items := make([]Item, 0, len(names))
	for _, n := range names {
		items = append(items, c.derive(n))
	}
	return ClassList{items: items}
}

// WithElem returns the receiver followed by one element class per name.
func (c ClassName) WithElem(names ...Part) ClassList {
	els := c.Elements(names...)
	items := make([]Item, 0, len(els.items)+1)
	items = append(items, c)
	items = append(items, els.items...)
	return ClassList{items: items}
}

// WithMod returns the receiver followed by its modified variants. Raw inputs
// are deduped by value before normalization; inputs that normalize to nothing
// are dropped rather than repeating the receiver.
func (c ClassName) WithMod(mods ...Mod) ClassList {
	items := []Item{c}
	for _, m := range dedupMods(mods) {
		switch v := c.Modifier(m).(type) {
		case ClassName:
			if !v.modifier.Valid() {
				continue
			}
			items = append(items, v)
		case ClassList:
			items = append(items, v.items...)
		}
	}
	return ClassList{items: items}
}

// Concat returns a list of the receiver followed by the given items, with
// duplicates removed from the incoming items only.
func (c ClassName) Concat(items ...Item) ClassList {
	return ClassList{items: []Item{c}}.Concat(items...)
}
