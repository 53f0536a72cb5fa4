package bem

import (
	"math"
	"strconv"
)

type partKind uint8

const (
	partAbsent partKind = iota
	partString
	partNumber
)

// Part is an optional element/modifier value: absent, a string, or a number.
// The zero value is absent. Part is comparable; equal parts compare equal
// with ==, which the de-duplication rules rely on.
type Part struct {
	kind partKind
	str  string
	num  float64
}

// S returns a string Part.
func S(v string) Part { return Part{kind: partString, str: v} }

// N returns a numeric Part. The number zero is a valid part value.
func N(v float64) Part { return Part{kind: partNumber, num: v} }

// Valid reports whether the part counts as present for rendering purposes:
// a non-empty string, or any number except NaN. Absent parts are invalid.
func (p Part) Valid() bool {
	switch p.kind {
	case partString:
		return p.str != ""
	case partNumber:
		return !math.IsNaN(p.num)
	}
	return false
}

// IsZero reports whether p is the absent part.
func (p Part) IsZero() bool { return p.kind == partAbsent }

// String renders the part value. Absent parts render as "". Numbers use the
// shortest representation that round-trips ("0", "2", "2.5").
func (p Part) String() string {
	switch p.kind {
	case partString:
		return p.str
	case partNumber:
		return strconv.FormatFloat(p.num, 'g', -1, 64)
	}
	return ""
}

// normalizeInto makes Part a literal modifier input.
func (p Part) normalizeInto(dst []Part, seen map[Part]struct{}) []Part {
	if !p.Valid() {
		return dst
	}
	if _, dup := seen[p]; dup {
		return dst
	}
	seen[p] = struct{}{}
	return append(dst, p)
}
