package codec

import (
	"fmt"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	bem "github.com/reoring/bem"
	"github.com/reoring/bem/i18n"
)

// Document is a declarative class-name description decoded from JSON or YAML.
// Exactly one derivation axis may be used: Elements fans out element classes,
// Mods fans out modified variants, Modifier applies a single modifier input.
type Document struct {
	Block    string
	Element  bem.Part
	Modifier bem.Mod
	Elements []bem.Part
	Mods     []bem.Mod
}

// Build renders the document into a class value using the given dialect.
func (d Document) Build(dl bem.Dialect) (bem.Class, error) {
	var iss bem.Issues
	if d.Block == "" {
		iss = bem.AppendIssues(iss, bem.Issue{
			Path:    "/block",
			Code:    bem.CodeRequired,
			Message: i18n.T(bem.CodeRequired, nil),
		})
	}
	if d.Modifier != nil && len(d.Mods) > 0 {
		iss = bem.AppendIssues(iss, conflictIssue("/mods", "modifier"))
	}
	if len(d.Elements) > 0 && (d.Modifier != nil || len(d.Mods) > 0) {
		iss = bem.AppendIssues(iss, conflictIssue("/elements", "modifier"))
	}
	if len(iss) > 0 {
		return nil, iss
	}
	base := dl.New(d.Block, d.Element)
	switch {
	case len(d.Elements) > 0:
		return base.WithElem(d.Elements...), nil
	case len(d.Mods) > 0:
		return base.WithMod(d.Mods...), nil
	case d.Modifier != nil:
		return base.Modifier(d.Modifier), nil
	}
	return base, nil
}

func conflictIssue(path, other string) bem.Issue {
	return bem.Issue{
		Path:    path,
		Code:    bem.CodeConflict,
		Message: i18n.T(bem.CodeConflict, nil),
		Hint:    "use only one of elements, mods, " + other,
	}
}

// DocumentFromJSON decodes a document object. Unknown keys are rejected,
// matching the strict default elsewhere in the error model.
func DocumentFromJSON(data []byte) (Document, error) {
	var doc Document
	dec := newJSONDecoder(data)
	if err := expectDelim(dec, '{'); err != nil {
		return doc, err
	}
	var iss bem.Issues
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return doc, parseIssue(err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return doc, parseIssue(fmt.Errorf("codec: unexpected object key token %v", keyTok))
		}
		switch key {
		case "block":
			tok, err := dec.Token()
			if err != nil {
				return doc, parseIssue(err)
			}
			s, ok := tok.(string)
			if !ok {
				iss = bem.AppendIssues(iss, invalidKindIssue("/block", fmt.Sprintf("%T", tok)))
				continue
			}
			doc.Block = s
		case "element":
			p, err := readPartValue(dec, "/element", &iss)
			if err != nil {
				return doc, err
			}
			doc.Element = p
		case "modifier":
			m, _, err := readModValue(dec)
			if err != nil {
				return doc, err
			}
			doc.Modifier = m
		case "elements":
			if err := expectDelim(dec, '['); err != nil {
				return doc, err
			}
			for dec.More() {
				p, err := readPartValue(dec, "/elements", &iss)
				if err != nil {
					return doc, err
				}
				doc.Elements = append(doc.Elements, p)
			}
			if err := expectDelim(dec, ']'); err != nil {
				return doc, err
			}
		case "mods":
			if err := expectDelim(dec, '['); err != nil {
				return doc, err
			}
			for dec.More() {
				m, _, err := readModValue(dec)
				if err != nil {
					return doc, err
				}
				if m != nil {
					doc.Mods = append(doc.Mods, m)
				}
			}
			if err := expectDelim(dec, ']'); err != nil {
				return doc, err
			}
		default:
			iss = bem.AppendIssues(iss, unknownKeyIssue("/"+key))
			if err := skipJSONValue(dec); err != nil {
				return doc, err
			}
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return doc, err
	}
	if len(iss) > 0 {
		return doc, iss
	}
	return doc, nil
}

// readPartValue consumes one scalar and converts it to a Part. Non-scalar
// values record an invalid_kind issue and contribute the absent part.
func readPartValue(dec *j.Decoder, path string, iss *bem.Issues) (bem.Part, error) {
	m, _, err := readModValue(dec)
	if err != nil {
		return bem.Part{}, err
	}
	switch v := m.(type) {
	case nil:
		return bem.Part{}, nil
	case bem.Part:
		return v, nil
	}
	*iss = bem.AppendIssues(*iss, invalidKindIssue(path, string(bem.KindOf(m))))
	return bem.Part{}, nil
}

func invalidKindIssue(path, got string) bem.Issue {
	return bem.Issue{
		Path:    path,
		Code:    bem.CodeInvalidKind,
		Message: i18n.T(bem.CodeInvalidKind, map[string]string{"got": got}),
		Params:  map[string]any{"got": got},
	}
}

func unknownKeyIssue(path string) bem.Issue {
	return bem.Issue{
		Path:    path,
		Code:    bem.CodeUnknownKey,
		Message: i18n.T(bem.CodeUnknownKey, nil),
	}
}

// DocumentFromYAML decodes a document from a YAML mapping, with the same key
// set and strictness as DocumentFromJSON.
func DocumentFromYAML(data []byte) (Document, error) {
	var doc Document
	root, err := yamlRoot(data)
	if err != nil {
		return doc, err
	}
	if root == nil {
		return doc, parseIssue(fmt.Errorf("codec: empty document"))
	}
	if root.Kind != yaml.MappingNode {
		return doc, parseIssue(fmt.Errorf("codec: document must be a mapping, got node kind %d", root.Kind))
	}
	var iss bem.Issues
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		val := root.Content[i+1]
		switch key {
		case "block":
			if val.Kind != yaml.ScalarNode || val.Tag == "!!null" {
				iss = bem.AppendIssues(iss, invalidKindIssue("/block", val.Tag))
				continue
			}
			doc.Block = val.Value
		case "element":
			p, err := partFromNode(val, "/element", &iss)
			if err != nil {
				return doc, err
			}
			doc.Element = p
		case "modifier":
			m, _, err := modFromNode(val)
			if err != nil {
				return doc, err
			}
			doc.Modifier = m
		case "elements":
			if val.Kind != yaml.SequenceNode {
				iss = bem.AppendIssues(iss, invalidKindIssue("/elements", val.Tag))
				continue
			}
			for _, c := range val.Content {
				p, err := partFromNode(c, "/elements", &iss)
				if err != nil {
					return doc, err
				}
				doc.Elements = append(doc.Elements, p)
			}
		case "mods":
			if val.Kind != yaml.SequenceNode {
				iss = bem.AppendIssues(iss, invalidKindIssue("/mods", val.Tag))
				continue
			}
			for _, c := range val.Content {
				m, _, err := modFromNode(c)
				if err != nil {
					return doc, err
				}
				if m != nil {
					doc.Mods = append(doc.Mods, m)
				}
			}
		default:
			iss = bem.AppendIssues(iss, unknownKeyIssue("/"+key))
		}
	}
	if len(iss) > 0 {
		return doc, iss
	}
	return doc, nil
}

func partFromNode(n *yaml.Node, path string, iss *bem.Issues) (bem.Part, error) {
	m, _, err := modFromNode(n)
	if err != nil {
		return bem.Part{}, err
	}
	switch v := m.(type) {
	case nil:
		return bem.Part{}, nil
	case bem.Part:
		return v, nil
	}
	*iss = bem.AppendIssues(*iss, invalidKindIssue(path, string(bem.KindOf(m))))
	return bem.Part{}, nil
}
