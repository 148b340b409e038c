// Package freqtable reads frequency tables:
// how many times each of a set of targets occurs.
//
// Frequency tables are YAML mappings from target to count.
//
//	the: 120
//	of: 64
//	"and": 52
//
// Targets are always read as strings,
// so the keys "1" and 1 name the same target.
package freqtable

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Table maps targets to the number of times they occur.
type Table map[string]int

// Total reports the sum of all counts in the table.
func (t Table) Total() (total int) {
	for _, c := range t {
		total += c
	}
	return total
}

// Parse reads a frequency table from the given YAML document.
//
// An empty document or a null document is an empty table.
// Counts must be integers, and targets must not repeat.
// Counts are not otherwise validated.
func Parse(r io.Reader) (Table, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Table{}, nil
		}
		return nil, fmt.Errorf("decode YAML: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	root = resolve(root)

	switch {
	case root.Kind == yaml.MappingNode:
		// ok
	case root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null":
		return Table{}, nil
	default:
		return nil, fmt.Errorf("line %d: frequency table must be a mapping, got %v",
			root.Line, kindName(root))
	}

	tbl := make(Table, len(root.Content)/2)
	seen := make(map[string]int, len(root.Content)/2) // target -> line
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := resolve(root.Content[i]), resolve(root.Content[i+1])
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: target must be a scalar, got %v",
				key.Line, kindName(key))
		}

		target := key.Value
		if line, ok := seen[target]; ok {
			return nil, fmt.Errorf("line %d: target %q already defined on line %d",
				key.Line, target, line)
		}
		seen[target] = key.Line

		if value.Kind != yaml.ScalarNode || value.ShortTag() != "!!int" {
			return nil, fmt.Errorf("line %d: count for %q must be an integer, got %v",
				value.Line, target, kindName(value))
		}

		var count int
		if err := value.Decode(&count); err != nil {
			return nil, fmt.Errorf("line %d: count for %q: %w", value.Line, target, err)
		}
		tbl[target] = count
	}

	return tbl, nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return fmt.Sprintf("%v %q", n.ShortTag(), n.Value)
	default:
		return fmt.Sprintf("node kind %v", n.Kind)
	}
}
