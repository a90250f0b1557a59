package toon

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/vexpera-br/toon-go/toonparser"
)

// FromYAML decodes a YAML document into a Value. The walk goes over
// yaml.Node instead of map[string]any so mapping key order survives.
func FromYAML(data []byte) (Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Value{}, err
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return toonparser.MappingValue(), nil
	}
	return yamlNodeValue(root.Content[0])
}

func yamlNodeValue(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.MappingNode:
		result := toonparser.MappingValue()
		for i := 0; i+1 < len(node.Content); i += 2 {
			value, err := yamlNodeValue(node.Content[i+1])
			if err != nil {
				return Value{}, err
			}
			result.Fields = append(result.Fields, toonparser.KV(node.Content[i].Value, value))
		}
		return result, nil
	case yaml.SequenceNode:
		result := toonparser.SequenceValue()
		for _, item := range node.Content {
			value, err := yamlNodeValue(item)
			if err != nil {
				return Value{}, err
			}
			result.Items = append(result.Items, value)
		}
		return result, nil
	case yaml.ScalarNode:
		return yamlScalarValue(node)
	case yaml.AliasNode:
		return yamlNodeValue(node.Alias)
	default:
		return Value{}, fmt.Errorf("unsupported YAML node kind %d at line %d", node.Kind, node.Line)
	}
}

func yamlScalarValue(node *yaml.Node) (Value, error) {
	switch node.Tag {
	case "!!null":
		return toonparser.NullValue(), nil
	case "!!bool":
		b, err := strconv.ParseBool(node.Value)
		if err != nil {
			return Value{}, fmt.Errorf("bad bool at line %d: %w", node.Line, err)
		}
		return toonparser.BoolValue(b), nil
	case "!!int":
		if i, err := strconv.ParseInt(node.Value, 10, 64); err == nil {
			return toonparser.IntValue(i), nil
		}
		d, err := decimal.NewFromString(node.Value)
		if err != nil {
			return Value{}, fmt.Errorf("bad integer at line %d: %w", node.Line, err)
		}
		return toonparser.DecimalValue(d), nil
	case "!!float":
		switch strings.ToLower(strings.TrimPrefix(node.Value, "+")) {
		case ".inf", "-.inf", ".nan":
			return toonparser.NullValue(), nil
		}
		d, err := decimal.NewFromString(node.Value)
		if err != nil {
			return Value{}, fmt.Errorf("bad float at line %d: %w", node.Line, err)
		}
		return toonparser.DecimalValue(d), nil
	default:
		return toonparser.StringValue(node.Value), nil
	}
}

// ValueToYAML renders a Value as YAML in mapping key order.
func ValueToYAML(v Value) ([]byte, error) {
	node, err := yamlNode(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

func yamlNode(v Value) (*yaml.Node, error) {
	switch v.Kind {
	case toonparser.NullKind:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case toonparser.BoolKind:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.Bool)}, nil
	case toonparser.IntegerKind:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v.Integer, 10)}, nil
	case toonparser.DecimalKind:
		rendered := formatDecimal(v.Decimal)
		tag := "!!float"
		if !strings.Contains(rendered, ".") {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: rendered}, nil
	case toonparser.StringKind:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Str}, nil
	case toonparser.SequenceKind:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.Items {
			child, err := yamlNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case toonparser.MappingKind:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, field := range v.Fields {
			child, err := yamlNode(field.Value)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field.Key},
				child)
		}
		return node, nil
	default:
		return nil, fmt.Errorf("invalid value kind")
	}
}
