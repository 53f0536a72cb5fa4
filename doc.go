package bem

// Package bem provides:
//
// - Composition of BEM (Block-Element-Modifier) class-name strings without repeating the block name
// - Immutable ClassName values with derivation methods (Element/Modifier/Elements/WithElem/WithMod/Concat)
// - ClassList, an ordered sequence that renders as a space-joined class string
// - A typed modifier-input model (Part/Seq/Conds) replacing ad-hoc runtime inspection
// - Separator configuration via Configure/Dialect so several dialects can coexist
// - Non-throwing validators reporting through a stable Issues error model
//
// Design policy:
// - Keep only public APIs in the root package.
// - Place wire decoding (ordered JSON/YAML) under codec/ and the CLI under cmd/bem.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  card := bem.New("card")
//  title := card.Elem(bem.S("title"))                  // "card__title"
//  state := card.Modifier(bem.S("active"))             // "card--active"
//  set := card.WithMod(bem.S("wide"), bem.S("tall"))   // "card card--wide card--tall"
//
//  fmt.Println(title, state, set)
//
