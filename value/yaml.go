package value

import (
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	eng "github.com/reoring/jayson/internal/engine"
	"github.com/reoring/jayson/internal/jsonpath"
)

// DecodeYAML decodes the first YAML document in data. Mapping order is kept;
// scalars resolve through their YAML tags (!!null, !!bool, !!int, !!float,
// everything else is a string).
func DecodeYAML(data []byte, opt DecodeOptions) (Value, error) {
	if err := opt.checkSize(data); err != nil {
		return Value{}, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Value{}, fmt.Errorf("invalid YAML: %w", err)
	}
	if doc.Kind == 0 || (doc.Kind == yaml.DocumentNode && len(doc.Content) == 0) {
		return Value{}, errors.New("empty YAML document")
	}
	d := yamlDecoder{opt: opt, active: map[*yaml.Node]bool{}}
	return d.node(&doc, "", 0)
}

// maxAliasNodes bounds the nodes produced by alias expansion in one document.
const maxAliasNodes = 100_000

type yamlDecoder struct {
	opt DecodeOptions

	// active holds the alias targets being expanded on the current path;
	// aliasDepth > 0 while decoding inside any alias expansion.
	active     map[*yaml.Node]bool
	aliasDepth int
	expanded   int
}

func (d *yamlDecoder) alias(n *yaml.Node, path string, depth int) (Value, error) {
	if n.Alias == nil {
		return Value{}, fmt.Errorf("line %d: unresolved alias %q", n.Line, n.Value)
	}
	if d.active[n.Alias] {
		return Value{}, eng.IssueError{SimpleIssue: eng.SimpleIssue{Code: eng.CodeParseError, Path: jsonpath.Render(path), Message: fmt.Sprintf("line %d: alias *%s refers to itself", n.Line, n.Value)}}
	}
	d.active[n.Alias] = true
	d.aliasDepth++
	defer func() {
		delete(d.active, n.Alias)
		d.aliasDepth--
	}()
	return d.node(n.Alias, path, depth)
}

func (d *yamlDecoder) node(n *yaml.Node, path string, depth int) (Value, error) {
	if d.aliasDepth > 0 {
		d.expanded++
		if d.expanded > maxAliasNodes {
			return Value{}, eng.IssueError{SimpleIssue: eng.SimpleIssue{Code: eng.CodeParseError, Path: jsonpath.Render(path), Message: fmt.Sprintf("alias expansion exceeds %d nodes", maxAliasNodes)}}
		}
	}
	switch n.Kind {
	case yaml.DocumentNode:
		return d.node(n.Content[0], path, depth)
	case yaml.AliasNode:
		return d.alias(n, path, depth)
	case yaml.MappingNode:
		if err := d.checkDepth(path, depth+1); err != nil {
			return Value{}, err
		}
		var b ObjectBuilder
		seen := make(map[string]struct{}, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			kp := jsonpath.Field(path, key)
			if _, dup := seen[key]; dup && d.opt.RejectDuplicateKeys {
				return Value{}, eng.IssueError{SimpleIssue: eng.SimpleIssue{Code: eng.CodeDuplicateKey, Path: kp, Message: "duplicate key \"" + key + "\""}}
			}
			seen[key] = struct{}{}
			v, err := d.node(n.Content[i+1], kp, depth+1)
			if err != nil {
				return Value{}, err
			}
			b.Set(key, v)
		}
		return b.Build(), nil
	case yaml.SequenceNode:
		if err := d.checkDepth(path, depth+1); err != nil {
			return Value{}, err
		}
		items := make([]Value, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := d.node(c, jsonpath.Index(path, i), depth+1)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return Array(items...), nil
	case yaml.ScalarNode:
		return scalar(n)
	}
	return Value{}, fmt.Errorf("unsupported YAML node kind %d at %s", n.Kind, jsonpath.Render(path))
}

func (d *yamlDecoder) checkDepth(path string, depth int) error {
	if d.opt.MaxDepth > 0 && depth > d.opt.MaxDepth {
		return eng.IssueError{SimpleIssue: eng.SimpleIssue{Code: eng.CodeParseError, Path: jsonpath.Render(path), Message: "max depth exceeded"}}
	}
	return nil
}

func scalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return Int(i), nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, err
		}
		return Number(f), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Value{}, fmt.Errorf("line %d: %q has no JSON representation", n.Line, n.Value)
		}
		return Number(f), nil
	default:
		return String(n.Value), nil
	}
}
