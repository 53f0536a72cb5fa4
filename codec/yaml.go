package codec

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	bem "github.com/reoring/bem"
)

// ModifierFromYAML decodes one YAML document into a modifier input. Mapping
// nodes keep their source key order, which is what makes condition maps
// deterministic. See ModifierFromJSON for the value rules.
func ModifierFromYAML(data []byte) (bem.Mod, error) {
	root, err := yamlRoot(data)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, nil
	}
	m, _, err := modFromNode(root)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func yamlRoot(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, parseIssue(err)
	}
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil, nil
		}
		return doc.Content[0], nil
	}
	if doc.Kind == 0 { // empty input
		return nil, nil
	}
	return &doc, nil
}

func modFromNode(n *yaml.Node) (bem.Mod, bool, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return modFromNode(n.Alias)
	case yaml.ScalarNode:
		return modFromScalar(n)
	case yaml.SequenceNode:
		var seq bem.Seq
		for _, c := range n.Content {
			m, _, err := modFromNode(c)
			if err != nil {
				return nil, false, err
			}
			if m != nil {
				seq = append(seq, m)
			}
		}
		return seq, true, nil
	case yaml.MappingNode:
		var conds bem.Conds
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			_, on, err := modFromNode(n.Content[i+1])
			if err != nil {
				return nil, false, err
			}
			conds = append(conds, bem.When(key, on))
		}
		return conds, true, nil
	}
	return nil, false, parseIssue(fmt.Errorf("codec: unexpected yaml node kind %d at line %d", n.Kind, n.Line))
}

func modFromScalar(n *yaml.Node) (bem.Mod, bool, error) {
	switch n.Tag {
	case "!!null":
		return nil, false, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, false, parseIssue(err)
		}
		return nil, b, nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, false, parseIssue(err)
		}
		return bem.N(f), f != 0 && !math.IsNaN(f), nil
	default: // "!!str" and anything scalar-ish
		return bem.S(n.Value), n.Value != "", nil
	}
}
