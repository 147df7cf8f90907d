// Package generate renders the live.yml resource descriptor and the
// Dockerfile from a project.Config. Both generators are pure: the same record
// always produces the same bytes.
package generate

import (
	"bytes"

	"github.com/RevCBH/livegen/internal/project"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultCommand replaces an empty run command in both artifacts.
	DefaultCommand = "python app.py"

	// MemoryUnit is appended to the unit-less memory value.
	MemoryUnit = "Mi"
)

const (
	intTag   = "!!int"
	floatTag = "!!float"
	strTag   = "!!str"
)

// LiveYAML renders the resource descriptor: resources, env and command, in
// that order.
func LiveYAML(cfg project.Config) string {
	doc := mapping(
		"resources", mapping(
			"cpu", number(cfg.Resources.CPU),
			"memory", str(cfg.Resources.Memory+MemoryUnit),
		),
		"env", mapping(
			"PYTHON_VERSION", str(cfg.PythonVersion),
		),
		"command", str(commandOrDefault(cfg.Command)),
	)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	// Encoding a tree of scalar and mapping nodes with explicit tags cannot fail.
	_ = enc.Encode(doc)
	_ = enc.Close()
	return buf.String()
}

func commandOrDefault(command string) string {
	if command == "" {
		return DefaultCommand
	}
	return command
}

// mapping builds a mapping node from alternating keys and values.
func mapping(pairs ...any) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i := 0; i+1 < len(pairs); i += 2 {
		n.Content = append(n.Content, str(pairs[i].(string)), pairs[i+1].(*yaml.Node))
	}
	return n
}

func str(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: strTag, Value: v}
}

// number keeps v as a YAML number when YAML itself would read it as one, and
// falls back to a string otherwise.
func number(v string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Value: v}
	switch tag := n.ShortTag(); tag {
	case intTag, floatTag:
		n.Tag = tag
	default:
		n.Tag = strTag
	}
	return n
}
