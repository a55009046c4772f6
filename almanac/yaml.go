package almanac

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rangeflow/stage"
)

// LoadYAML parses a YAML almanac document.
func LoadYAML(data []byte) (*Almanac, error) {
	var a Almanac
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("almanac: parse YAML: %w", err)
	}

	return &a, nil
}

// LoadYAMLFile reads and parses the YAML almanac at path.
func LoadYAMLFile(path string) (*Almanac, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("almanac: read %s: %w", path, err)
	}
	a, err := LoadYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return a, nil
}

// MarshalYAML serializes a to a YAML document; rows are written as
// flow sequences [dest, source, length].
func MarshalYAML(a *Almanac) ([]byte, error) {
	return yaml.Marshal(a)
}

// WriteYAMLFile writes a to path as YAML.
func WriteYAMLFile(a *Almanac, path string) error {
	data, err := MarshalYAML(a)
	if err != nil {
		return fmt.Errorf("almanac: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("almanac: write %s: %w", path, err)
	}

	return nil
}

// UnmarshalYAML accepts a three-element sequence [dest, source, length].
func (r *Row) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) != 3 {
		return fmt.Errorf("%w: line %d: want [dest, source, length]", stage.ErrMalformedMapping, node.Line)
	}
	var vals [3]uint64
	for i, n := range node.Content {
		if err := n.Decode(&vals[i]); err != nil {
			return fmt.Errorf("%w: line %d: %q is not a non-negative integer", stage.ErrMalformedMapping, n.Line, n.Value)
		}
	}
	*r = Row{Dest: vals[0], Source: vals[1], Length: vals[2]}

	return nil
}

// MarshalYAML writes r as a flow sequence [dest, source, length].
func (r Row) MarshalYAML() (any, error) {
	scalar := func(v uint64) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatUint(v, 10)}
	}

	return &yaml.Node{
		Kind:    yaml.SequenceNode,
		Style:   yaml.FlowStyle,
		Content: []*yaml.Node{scalar(r.Dest), scalar(r.Source), scalar(r.Length)},
	}, nil
}
