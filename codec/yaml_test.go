package codec_test

import (
	"testing"

	bem "github.com/reoring/bem"
	"github.com/reoring/bem/codec"
)

func TestModifierFromYAML_Scalar(t *testing.T) {
	m, err := codec.ModifierFromYAML([]byte(`active`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := applyMod(t, m); got != "block--active" {
		t.Fatalf("got %q", got)
	}
}

func TestModifierFromYAML_MappingKeepsSourceOrder(t *testing.T) {
	in := "a: true\nb: false\nc: 1\n"
	m, err := codec.ModifierFromYAML([]byte(in))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := applyMod(t, m); got != "block--a block--c" {
		t.Fatalf("got %q", got)
	}
}

func TestModifierFromYAML_SequenceOfMixedInputs(t *testing.T) {
	in := "- wide\n- 0\n- tall: true\n  flat: false\n"
	m, err := codec.ModifierFromYAML([]byte(in))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := applyMod(t, m); got != "block--wide block--0 block--tall" {
		t.Fatalf("got %q", got)
	}
}

func TestModifierFromYAML_EmptyInput(t *testing.T) {
	m, err := codec.ModifierFromYAML(nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m != nil {
		t.Fatalf("expected no contribution, got %v", m)
	}
}

func TestModifierFromYAML_ParseErrorIsIssue(t *testing.T) {
	_, err := codec.ModifierFromYAML([]byte("a: [unclosed"))
	if err == nil {
		t.Fatalf("expected error")
	}
	iss, ok := bem.AsIssues(err)
	if !ok || iss[0].Code != bem.CodeParseError {
		t.Fatalf("expected parse_error issues, got %v", err)
	}
}
