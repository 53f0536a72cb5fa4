package bem

import (
	"strings"

	"github.com/reoring/bem/i18n"
)

// Kind classifies values accepted or rejected by the validators.
type Kind string

const (
	KindString    Kind = "string"
	KindNumber    Kind = "number"
	KindBool      Kind = "bool"
	KindPart      Kind = "part"
	KindRaw       Kind = "raw"
	KindClassName Kind = "className"
	KindClassList Kind = "classList"
	KindSeq       Kind = "seq"
	KindCond      Kind = "cond"
	KindConds     Kind = "conds"
	KindNil       Kind = "nil"
	KindUnknown   Kind = "unknown"
)

// KindOf classifies an arbitrary value.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNil
	case string:
		return KindString
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return KindNumber
	case bool:
		return KindBool
	case Part:
		return KindPart
	case Raw:
		return KindRaw
	case ClassName:
		return KindClassName
	case ClassList:
		return KindClassList
	case Seq:
		return KindSeq
	case Cond:
		return KindCond
	case Conds:
		return KindConds
	}
	return KindUnknown
}

// Accepted kind sets per validator.
var (
	classKinds    = []Kind{KindString, KindNumber, KindPart, KindRaw, KindClassName, KindClassList}
	instanceKinds = []Kind{KindClassName, KindClassList}
	elementKinds  = []Kind{KindString, KindNumber, KindPart}
	modifierKinds = []Kind{KindString, KindNumber, KindPart, KindSeq, KindCond, KindConds}
)

// CheckClassValue reports whether v can serve as a class-name value on prop of
// owner: a string, number, Part, Raw, ClassName or ClassList. A nil value is
// acceptable; use CheckClassValueRequired to reject it. A nil return means the
// value is acceptable.
func CheckClassValue(owner, prop string, v any) Issues {
	return checkKind(owner, prop, v, classKinds, false)
}

// CheckClassValueRequired is CheckClassValue rejecting nil.
func CheckClassValueRequired(owner, prop string, v any) Issues {
	return checkKind(owner, prop, v, classKinds, true)
}

// CheckInstance reports whether v is a ClassName or ClassList instance.
func CheckInstance(owner, prop string, v any) Issues {
	return checkKind(owner, prop, v, instanceKinds, false)
}

// CheckInstanceRequired is CheckInstance rejecting nil.
func CheckInstanceRequired(owner, prop string, v any) Issues {
	return checkKind(owner, prop, v, instanceKinds, true)
}

// CheckElementValue reports whether v can serve as an element value: a string,
// number or Part.
func CheckElementValue(owner, prop string, v any) Issues {
	return checkKind(owner, prop, v, elementKinds, false)
}

// CheckElementValueRequired is CheckElementValue rejecting nil.
func CheckElementValueRequired(owner, prop string, v any) Issues {
	return checkKind(owner, prop, v, elementKinds, true)
}

// CheckModifierValue reports whether v can serve as a modifier input: a
// string, number, Part, Seq, Cond or Conds.
func CheckModifierValue(owner, prop string, v any) Issues {
	return checkKind(owner, prop, v, modifierKinds, false)
}

// CheckModifierValueRequired is CheckModifierValue rejecting nil.
func CheckModifierValueRequired(owner, prop string, v any) Issues {
	return checkKind(owner, prop, v, modifierKinds, true)
}

func checkKind(owner, prop string, v any, expected []Kind, required bool) Issues {
	path := "/" + prop
	if v == nil {
		if !required {
			return nil
		}
		return Issues{{
			Path:    path,
			Code:    CodeRequired,
			Message: i18n.T(CodeRequired, map[string]string{"owner": owner, "prop": prop}),
			Params:  map[string]any{"owner": owner, "prop": prop, "expected": kindNames(expected)},
		}}
	}
	got := KindOf(v)
	for _, k := range expected {
		if k == got {
			return nil
		}
	}
	return Issues{{
		Path:    path,
		Code:    CodeInvalidKind,
		Message: i18n.T(CodeInvalidKind, map[string]string{"owner": owner, "prop": prop, "got": string(got)}),
		Hint:    "expected one of: " + strings.Join(kindNames(expected), ", "),
		Params:  map[string]any{"owner": owner, "prop": prop, "expected": kindNames(expected), "got": string(got)},
	}}
}

func kindNames(kinds []Kind) []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}
