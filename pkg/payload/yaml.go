package payload

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/getmockd/fixturegen/pkg/model"
)

// WriteYAML writes tree as a YAML document. Quoted leaves are double-quoted.
func WriteYAML(w io.Writer, tree *model.Value) error {
	node, err := yamlNode(tree)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("payload: encode yaml: %w", err)
	}
	return enc.Close()
}

func yamlNode(n any) (*yaml.Node, error) {
	switch v := n.(type) {
	case nil:
		return nullNode(), nil
	case *model.Value:
		if v == nil || v.IsEmpty() {
			return nullNode(), nil
		}
		return yamlNode(v.Payload())
	case model.Leaf:
		if v.Quoted {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.DoubleQuotedStyle, Value: v.Expr}, nil
		}
		if v.Expr == "" {
			return nullNode(), nil
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Value: v.Expr}, nil
	case *model.Object:
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range v.Keys() {
			child, _ := v.Get(key)
			cn, err := yamlNode(child)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, cn)
		}
		return m, nil
	case *model.List:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i, item := range v.Items() {
			cn, err := yamlNode(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			seq.Content = append(seq.Content, cn)
		}
		return seq, nil
	default:
		return nil, fmt.Errorf("payload: unexpected node %T", n)
	}
}

func nullNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}
