package bem_test

import (
	"strings"
	"testing"

	bem "github.com/reoring/bem"
)

func TestClassList_ConcatDedupsIncoming(t *testing.T) {
	got := bem.New("b1").Concat(bem.Raw("x"), bem.Raw("x"))
	if want := "b1 x"; got.String() != want {
		t.Fatalf("got %q, want %q", got.String(), want)
	}
}

func TestClassList_ConcatKeepsExistingDuplicates(t *testing.T) {
	l := bem.NewList(bem.Raw("x"), bem.Raw("x"))
	got := l.Concat(bem.Raw("x"))
	// existing contents are not deduped; the incoming duplicate is a new
	// occurrence appended once
	if want := "x x x"; got.String() != want {
		t.Fatalf("got %q, want %q", got.String(), want)
	}
}

func TestClassList_ConcatDoesNotMutateReceiver(t *testing.T) {
	l := bem.NewList(bem.Raw("a"))
	before := l.String()
	l.Concat(bem.Raw("b"))
	if l.String() != before {
		t.Fatalf("receiver mutated: %q -> %q", before, l.String())
	}
}

func TestClassList_NestedListsSplicedIn(t *testing.T) {
	inner := bem.NewList(bem.Raw("b"), bem.Raw("c"))
	l := bem.NewList(bem.Raw("a"), inner)
	if l.Len() != 3 {
		t.Fatalf("expected spliced items, len = %d", l.Len())
	}
	if want := "a b c"; l.String() != want {
		t.Fatalf("got %q, want %q", l.String(), want)
	}
}

func TestClassList_RenderFiltersInvalidEntries(t *testing.T) {
	l := bem.NewList(bem.Raw("a"), bem.Raw(""), bem.New("b"), nil, bem.Raw("c"))
	if want := "a b c"; l.String() != want {
		t.Fatalf("got %q, want %q", l.String(), want)
	}
}

func TestClassList_RoundTripJoin(t *testing.T) {
	l := bem.New("card").WithMod(bem.S("wide")).Concat(bem.Raw(""), bem.Raw("extra"))
	var parts []string
	for i := 0; i < l.Len(); i++ {
		it := l.At(i)
		if it.String() == "" {
			continue
		}
		parts = append(parts, it.String())
	}
	if joined := strings.Join(parts, " "); joined != l.String() {
		t.Fatalf("join %q != render %q", joined, l.String())
	}
}

func TestClassList_ItemsReturnsCopy(t *testing.T) {
	l := bem.NewList(bem.Raw("a"), bem.Raw("b"))
	items := l.Items()
	items[0] = bem.Raw("z")
	if l.String() != "a b" {
		t.Fatalf("Items() must be a defensive copy, list now %q", l.String())
	}
}

func TestClassList_MixedItemsRender(t *testing.T) {
	card := bem.New("card")
	l := card.Concat(
		bem.Raw("shadow"),
		card.WithMod(bem.S("wide")), // nested list splices in
	)
	if want := "card shadow card card--wide"; l.String() != want {
		t.Fatalf("got %q, want %q", l.String(), want)
	}
}

func TestClassName_ConcatValueDedupOfEqualInstances(t *testing.T) {
	a := bem.New("b").Modifier(bem.S("m"))
	b := bem.New("b").Modifier(bem.S("m"))
	got := bem.New("base").Concat(a, b)
	// equal derived values collapse; value equality replaces JS reference identity
	if want := "base b--m"; got.String() != want {
		t.Fatalf("got %q, want %q", got.String(), want)
	}
}
