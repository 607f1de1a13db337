package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/justyntemme/frei0rgo/pkg/framework/param"
	f0r "github.com/justyntemme/frei0rgo/pkg/plugin"
)

// assignment is one parameter value decoded from a parameter file
type assignment struct {
	index int
	value param.Value
}

// readParamFile decodes a YAML mapping of parameter names to values:
//
//	xshift: 0.25
//	color: {r: 1, g: 0, b: 0}
//	center: {x: 0.5, y: 0.5}
func readParamFile(path string, params []param.Info) ([]assignment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decodeParams(data, params)
}

func decodeParams(data []byte, params []param.Info) ([]assignment, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: parameters must be a mapping", root.Line)
	}

	index := make(map[string]int, len(params))
	for i, p := range params {
		index[p.Name] = i
	}

	var result []assignment
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, node := root.Content[i], root.Content[i+1]
		pos, ok := index[key.Value]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown parameter %q", key.Line, key.Value)
		}
		v, err := decodeValue(node, params[pos].Kind)
		if err != nil {
			return nil, fmt.Errorf("line %d: parameter %q: %w", node.Line, key.Value, err)
		}
		result = append(result, assignment{index: pos, value: v})
	}
	return result, nil
}

func decodeValue(node *yaml.Node, kind param.Kind) (param.Value, error) {
	switch kind {
	case param.KindBool:
		var v bool
		err := node.Decode(&v)
		return param.Bool(v), err
	case param.KindDouble:
		var v float64
		err := node.Decode(&v)
		return param.Double(v), err
	case param.KindColor:
		var v param.Color
		err := node.Decode(&v)
		return v, err
	case param.KindPosition:
		var v param.Position
		err := node.Decode(&v)
		return v, err
	case param.KindString:
		var v string
		err := node.Decode(&v)
		return param.String(v), err
	default:
		return nil, fmt.Errorf("unsupported parameter kind %s", kind)
	}
}

// parseSetFlags decodes name=value pairs with param.Parse
func parseSetFlags(pairs []string, params []param.Info) ([]assignment, error) {
	var result []assignment
	for _, pair := range pairs {
		name, text, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set %q: want name=value", pair)
		}
		index := slices.IndexFunc(params, func(p param.Info) bool { return p.Name == name })
		if index < 0 {
			return nil, fmt.Errorf("unknown parameter %q", name)
		}
		v, err := param.Parse(params[index].Kind, text)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", name, err)
		}
		result = append(result, assignment{index: index, value: v})
	}
	return result, nil
}

// apply sets every assignment on the instance behind h
func apply(h f0r.Handle, assignments []assignment) error {
	for _, a := range assignments {
		if err := f0r.SetParam(h, a.index, a.value); err != nil {
			return err
		}
	}
	return nil
}
