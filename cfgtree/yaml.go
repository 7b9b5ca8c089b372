package cfgtree

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cmcutils/frame"
)

// YAML tags for tabular values.
//
//	mean: !series {name: mean, index: [age, bmi], values: [31.0, 24.5]}
//	stats: !table {index: [r0, r1], columns: {min: [0, 1], max: [5, 9]}}
const (
	TagSeries = "!series"
	TagTable  = "!table"
)

// ParseYAML decodes a YAML document whose root is a mapping. Document order
// is kept; keys tagged !!int become integer keys. An empty document yields
// an empty mapping.
func ParseYAML(data []byte) (*Mapping, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return NewMapping(), nil
	}
	d := &nodeDecoder{active: make(map[*yaml.Node]bool)}
	v, err := d.fromNode(doc.Content[0])
	if err != nil {
		return nil, err
	}
	m, ok := v.AsMapping()
	if !ok {
		return nil, fmt.Errorf("yaml root is %s: %w", v.Kind(), ErrNotMapping)
	}
	return m, nil
}

// maxAliasNodes caps the nodes decoded through aliases in one document.
const maxAliasNodes = 100_000

// nodeDecoder expands aliases by hand, so it guards against anchors that
// contain themselves and against exponential alias fan-out.
type nodeDecoder struct {
	active   map[*yaml.Node]bool // anchors being expanded right now
	depth    int                 // alias nesting of the current node
	expanded int                 // nodes decoded under an alias so far
}

func (d *nodeDecoder) fromNode(n *yaml.Node) (Value, error) {
	if d.depth > 0 {
		d.expanded++
		if d.expanded > maxAliasNodes {
			return Null(), fmt.Errorf("line %d: aliases expand past %d nodes: %w", n.Line, maxAliasNodes, ErrSyntax)
		}
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return d.fromNode(n.Content[0])
	case yaml.AliasNode:
		return d.fromAlias(n)
	case yaml.ScalarNode:
		return fromScalar(n)
	case yaml.SequenceNode:
		out := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := d.fromNode(c)
			if err != nil {
				return Null(), err
			}
			out = append(out, v)
		}
		return Seq(out...), nil
	case yaml.MappingNode:
		switch n.Tag {
		case TagSeries:
			return seriesFromNode(n)
		case TagTable:
			return tableFromNode(n)
		}
		m, err := d.mappingFromNode(n)
		if err != nil {
			return Null(), err
		}
		return Nested(m), nil
	}
	return Null(), fmt.Errorf("line %d: yaml node kind %d: %w", n.Line, n.Kind, ErrUnsupportedType)
}

func (d *nodeDecoder) fromAlias(n *yaml.Node) (Value, error) {
	target := n.Alias
	if target == nil {
		return Null(), fmt.Errorf("line %d: dangling alias: %w", n.Line, ErrSyntax)
	}
	if d.active[target] {
		return Null(), fmt.Errorf("line %d: alias cycle: %w", n.Line, ErrSyntax)
	}
	d.active[target] = true
	d.depth++
	v, err := d.fromNode(target)
	d.depth--
	delete(d.active, target)
	return v, err
}

func fromScalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Null(), fmt.Errorf("line %d: %w", n.Line, err)
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return Null(), fmt.Errorf("line %d: %w", n.Line, err)
		}
		return Int(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Null(), fmt.Errorf("line %d: %w", n.Line, err)
		}
		return Float(f), nil
	}
	return String(n.Value), nil
}

func (d *nodeDecoder) mappingFromNode(n *yaml.Node) (*Mapping, error) {
	m := NewMapping()
	for i := 0; i+1 < len(n.Content); i += 2 {
		kn, vn := n.Content[i], n.Content[i+1]
		if kn.ShortTag() == "!!merge" {
			if err := d.mergeInto(m, vn); err != nil {
				return nil, err
			}
			continue
		}
		k, err := keyFromNode(kn)
		if err != nil {
			return nil, err
		}
		v, err := d.fromNode(vn)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		m.Set(k, v)
	}
	return m, nil
}

// mergeInto applies a YAML "<<" merge: entries already present win.
func (d *nodeDecoder) mergeInto(m *Mapping, n *yaml.Node) error {
	srcs := []*yaml.Node{n}
	if n.Kind == yaml.SequenceNode {
		srcs = n.Content
	}
	for _, s := range srcs {
		v, err := d.fromNode(s)
		if err != nil {
			return err
		}
		src, ok := v.AsMapping()
		if !ok {
			return fmt.Errorf("line %d: merge source: %w", s.Line, ErrNotMapping)
		}
		src.Range(func(k Key, v Value) bool {
			if !m.Has(k) {
				m.Set(k, v)
			}
			return true
		})
	}
	return nil
}

func keyFromNode(n *yaml.Node) (Key, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n.Kind != yaml.ScalarNode {
		return Key{}, fmt.Errorf("line %d: non-scalar mapping key: %w", n.Line, ErrUnsupportedType)
	}
	if n.ShortTag() == "!!int" {
		var i int
		if err := n.Decode(&i); err != nil {
			return Key{}, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return IntKey(i), nil
	}
	return StrKey(n.Value), nil
}

func seriesFromNode(n *yaml.Node) (Value, error) {
	var raw struct {
		Name   string    `yaml:"name"`
		Index  []string  `yaml:"index"`
		Values []float64 `yaml:"values"`
	}
	plain := *n
	plain.Tag = "!!map"
	if err := plain.Decode(&raw); err != nil {
		return Null(), fmt.Errorf("line %d: %w: %v", n.Line, ErrBadTag, err)
	}
	s, err := frame.NewSeries(raw.Name, raw.Index, raw.Values)
	if err != nil {
		return Null(), fmt.Errorf("line %d: %w: %v", n.Line, ErrBadTag, err)
	}
	return FromSeries(s), nil
}

func tableFromNode(n *yaml.Node) (Value, error) {
	var (
		index   []string
		names   []string
		columns [][]float64
	)
	for i := 0; i+1 < len(n.Content); i += 2 {
		kn, vn := n.Content[i], n.Content[i+1]
		switch kn.Value {
		case "index":
			if err := vn.Decode(&index); err != nil {
				return Null(), fmt.Errorf("line %d: %w: %v", vn.Line, ErrBadTag, err)
			}
		case "columns":
			if vn.Kind != yaml.MappingNode {
				return Null(), fmt.Errorf("line %d: table columns: %w", vn.Line, ErrBadTag)
			}
			for j := 0; j+1 < len(vn.Content); j += 2 {
				var col []float64
				if err := vn.Content[j+1].Decode(&col); err != nil {
					return Null(), fmt.Errorf("line %d: %w: %v", vn.Content[j+1].Line, ErrBadTag, err)
				}
				names = append(names, vn.Content[j].Value)
				columns = append(columns, col)
			}
		default:
			return Null(), fmt.Errorf("line %d: unknown table field %q: %w", kn.Line, kn.Value, ErrBadTag)
		}
	}
	t, err := frame.NewTable(index, names, columns)
	if err != nil {
		return Null(), fmt.Errorf("line %d: %w: %v", n.Line, ErrBadTag, err)
	}
	return FromTable(t), nil
}

// MarshalYAML encodes m as a YAML document in insertion order, using
// !series / !table for tabular values.
func MarshalYAML(m *Mapping) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(mappingNode(m)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func mappingNode(m *Mapping) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	m.Range(func(k Key, v Value) bool {
		kn := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k.String()}
		if k.IsInt() {
			kn.Tag = "!!int"
		}
		n.Content = append(n.Content, kn, toNode(v))
		return true
	})
	return n
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func floatText(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") { // keep it a float on the way back in
		s += ".0"
	}
	return s
}

func floatSeq(fs []float64) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	for _, f := range fs {
		n.Content = append(n.Content, scalarNode("!!float", floatText(f)))
	}
	return n
}

func stringSeq(ss []string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	for _, s := range ss {
		n.Content = append(n.Content, scalarNode("!!str", s))
	}
	return n
}

func toNode(v Value) *yaml.Node {
	switch v.kind {
	case KindBool:
		return scalarNode("!!bool", strconv.FormatBool(v.b))
	case KindInt:
		return scalarNode("!!int", strconv.FormatInt(v.i, 10))
	case KindFloat:
		return scalarNode("!!float", floatText(v.f))
	case KindString:
		return scalarNode("!!str", v.s)
	case KindSequence:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range v.seq {
			n.Content = append(n.Content, toNode(e))
		}
		return n
	case KindMapping:
		return mappingNode(v.m)
	case KindSeries:
		s := v.series
		return &yaml.Node{Kind: yaml.MappingNode, Tag: TagSeries, Content: []*yaml.Node{
			scalarNode("!!str", "name"), scalarNode("!!str", s.Name()),
			scalarNode("!!str", "index"), stringSeq(s.Index()),
			scalarNode("!!str", "values"), floatSeq(s.Values()),
		}}
	case KindTable:
		t := v.table
		cols := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for j, name := range t.Columns() {
			vals, _ := t.ColumnAt(j)
			cols.Content = append(cols.Content, scalarNode("!!str", name), floatSeq(vals))
		}
		return &yaml.Node{Kind: yaml.MappingNode, Tag: TagTable, Content: []*yaml.Node{
			scalarNode("!!str", "index"), stringSeq(t.Index()),
			scalarNode("!!str", "columns"), cols,
		}}
	}
	return scalarNode("!!null", "null")
}
