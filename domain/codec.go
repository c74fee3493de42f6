package domain

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// decodeJSONString decodes a JSON string and runs it through parse.
func decodeJSONString[T any](data []byte, parse func(string) (T, error)) (T, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var zero T
		return zero, err
	}
	return parse(s)
}

// decodeYAMLString decodes a YAML scalar and runs it through parse.
func decodeYAMLString[T any](node *yaml.Node, parse func(string) (T, error)) (T, error) {
	var zero T
	if node.Kind != yaml.ScalarNode {
		return zero, fmt.Errorf("line %d: expected a scalar, got %s", node.Line, kindName(node.Kind))
	}
	return parse(node.Value)
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	default:
		return "scalar"
	}
}
