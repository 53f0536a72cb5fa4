package bem_test

import (
	"math"
	"testing"

	bem "github.com/reoring/bem"
)

func TestModifier_NoValidInputIsIdentity(t *testing.T) {
	base := bem.New("block")
	got := base.Modifier(bem.Part{}, bem.S(""), bem.N(math.NaN()), nil)
	cn, ok := got.(bem.ClassName)
	if !ok {
		t.Fatalf("expected ClassName, got %T", got)
	}
	if cn != base {
		t.Fatalf("identity case must return the receiver unchanged")
	}
	if cn.String() != "block" {
		t.Fatalf("got %q", cn.String())
	}
}

func TestModifier_SingleInput(t *testing.T) {
	got := bem.New("block").Modifier(bem.S("active"))
	cn, ok := got.(bem.ClassName)
	if !ok {
		t.Fatalf("expected ClassName, got %T", got)
	}
	if cn.String() != "block--active" {
		t.Fatalf("got %q", cn.String())
	}
}

func TestModifier_KeepsElement(t *testing.T) {
	title := bem.New("card").Elem(bem.S("title")).(bem.ClassName)
	got := title.Modifier(bem.S("bold"))
	if got.String() != "card__title--bold" {
		t.Fatalf("got %q", got)
	}
}

func TestModifier_MultipleInputsDeduped(t *testing.T) {
	got := bem.New("block").Modifier(bem.S("a"), bem.S("b"), bem.S("a"))
	list, ok := got.(bem.ClassList)
	if !ok {
		t.Fatalf("expected ClassList, got %T", got)
	}
	if want := "block--a block--b"; list.String() != want {
		t.Fatalf("got %q, want %q", list.String(), want)
	}
}

func TestModifier_ConditionMapOrder(t *testing.T) {
	got := bem.New("block").Modifier(bem.Conds{
		bem.When("a", true),
		bem.When("b", false),
		bem.When("c", true),
	})
	if want := "block--a block--c"; got.String() != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestModifier_NestedSequencesFlatten(t *testing.T) {
	got := bem.New("block").Modifier(bem.Seq{
		bem.S("x"),
		bem.Seq{bem.N(0), bem.Conds{bem.When("y", true)}},
		bem.S("x"), // duplicate, first occurrence wins
	})
	if want := "block--x block--0 block--y"; got.String() != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestModifier_ModAlias(t *testing.T) {
	a := bem.New("b").Mod(bem.S("m"))
	b := bem.New("b").Modifier(bem.S("m"))
	if a.String() != b.String() {
		t.Fatalf("alias mismatch: %q vs %q", a, b)
	}
}

func TestModifier_StringAndNumberLiteralsStayDistinct(t *testing.T) {
	// "2" and 2 are different raw values even though they render alike.
	got := bem.New("b").Modifier(bem.S("2"), bem.N(2))
	list, ok := got.(bem.ClassList)
	if !ok {
		t.Fatalf("expected ClassList, got %T", got)
	}
	if want := "b--2 b--2"; list.String() != want {
		t.Fatalf("got %q, want %q", list.String(), want)
	}
}

func TestWithMod_BaseFirstThenVariants(t *testing.T) {
	base := bem.New("card")
	list := base.WithMod(bem.S("wide"), bem.S("tall"))
	if list.Len() != 3 {
		t.Fatalf("expected 3 items, got %d", list.Len())
	}
	first, ok := list.At(0).(bem.ClassName)
	if !ok || first != base {
		t.Fatalf("first item must be the receiver")
	}
	if want := "card card--wide card--tall"; list.String() != want {
		t.Fatalf("got %q, want %q", list.String(), want)
	}
}

func TestWithMod_AllFalsyConditionsYieldBaseOnly(t *testing.T) {
	base := bem.New("card")
	list := base.WithMod(bem.Conds{bem.When("a", false), bem.When("b", false)})
	if list.Len() != 1 {
		t.Fatalf("expected 1 item, got %d", list.Len())
	}
	if list.String() != "card" {
		t.Fatalf("got %q", list.String())
	}
}

func TestWithMod_DedupsRawInputsBeforeNormalization(t *testing.T) {
	base := bem.New("card")
	c := bem.Conds{bem.When("on", true)}
	list := base.WithMod(c, c, bem.S("x"), bem.S("x"))
	if want := "card card--on card--x"; list.String() != want {
		t.Fatalf("got %q, want %q", list.String(), want)
	}
}

func TestElements_AndWithElem(t *testing.T) {
	base := bem.New("card")
	els := base.Elements(bem.S("hdr"), bem.S("body"))
	if els.Len() != 2 {
		t.Fatalf("Elements len = %d", els.Len())
	}
	if want := "card__hdr card__body"; els.String() != want {
		t.Fatalf("got %q, want %q", els.String(), want)
	}

	list := base.WithElem(bem.S("hdr"), bem.S("body"))
	if list.Len() != 3 {
		t.Fatalf("WithElem len = %d", list.Len())
	}
	first, ok := list.At(0).(bem.ClassName)
	if !ok || first != base {
		t.Fatalf("WithElem must keep the original instance first")
	}
	if want := "card card__hdr card__body"; list.String() != want {
		t.Fatalf("got %q, want %q", list.String(), want)
	}
}
