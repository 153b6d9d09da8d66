package navdoc

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PagesKey is the navigation key whose value lists page paths.
const PagesKey = "pages"

// Kind identifies which variant a Node holds.
type Kind int

// Node kinds.
const (
	KindLeaf Kind = iota
	KindMapping
	KindSequence
)

// Field is a single key/value pair of a mapping node.
type Field struct {
	Key   string
	Value Node
}

// Node is one value of a site's navigation configuration: a mapping,
// a sequence or a scalar leaf. Mappings keep the key order of the source
// document, which determines the order pages are exported in.
type Node struct {
	Kind   Kind
	Fields []Field // KindMapping
	Items  []Node  // KindSequence

	// Value holds the scalar of a KindLeaf node: a string, json.Number,
	// bool or nil.
	Value any
}

// Mapping returns a mapping node with the given fields in order.
func Mapping(fields ...Field) Node {
	return Node{Kind: KindMapping, Fields: fields}
}

// Sequence returns a sequence node with the given items in order.
func Sequence(items ...Node) Node {
	return Node{Kind: KindSequence, Items: items}
}

// Leaf returns a scalar node.
func Leaf(v any) Node {
	return Node{Kind: KindLeaf, Value: v}
}

// Strings returns a sequence of string leaves.
func Strings(ss ...string) Node {
	items := make([]Node, len(ss))
	for i, s := range ss {
		items[i] = Leaf(s)
	}
	return Sequence(items...)
}

// Get returns the value stored under key in a mapping node.
// It reports false for missing keys and for non-mapping nodes.
func (n Node) Get(key string) (Node, bool) {
	if n.Kind != KindMapping {
		return Node{}, false
	}
	for _, f := range n.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Node{}, false
}

// Lookup follows a chain of mapping keys from n.
func (n Node) Lookup(path ...string) (Node, bool) {
	cur := n
	for _, key := range path {
		next, ok := cur.Get(key)
		if !ok {
			return Node{}, false
		}
		cur = next
	}
	return cur, true
}

// UnmarshalJSON decodes any JSON value into n, preserving object key order.
func (n *Node) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	node, err := decodeNode(dec)
	if err != nil {
		return err
	}
	*n = node
	return nil
}

func decodeNode(dec *json.Decoder) (Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return Node{}, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return Leaf(tok), nil
	}

	switch delim {
	case '{':
		node := Node{Kind: KindMapping}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return Node{}, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return Node{}, fmt.Errorf("unexpected object key %v", keyTok)
			}
			value, err := decodeNode(dec)
			if err != nil {
				return Node{}, err
			}
			node.Fields = append(node.Fields, Field{Key: key, Value: value})
		}
		// Consume the closing '}'.
		if _, err := dec.Token(); err != nil {
			return Node{}, err
		}
		return node, nil
	case '[':
		node := Node{Kind: KindSequence}
		for dec.More() {
			item, err := decodeNode(dec)
			if err != nil {
				return Node{}, err
			}
			node.Items = append(node.Items, item)
		}
		// Consume the closing ']'.
		if _, err := dec.Token(); err != nil {
			return Node{}, err
		}
		return node, nil
	default:
		return Node{}, fmt.Errorf("unexpected delimiter %q", rune(delim))
	}
}

// ExtractPages collects every page path found under a "pages" key anywhere
// in the navigation tree, in traversal order. Duplicates are kept.
func ExtractPages(n Node) []string {
	var pages []string
	switch n.Kind {
	case KindMapping:
		for _, f := range n.Fields {
			if f.Key == PagesKey {
				pages = append(pages, flattenPages(f.Value)...)
			} else {
				pages = append(pages, ExtractPages(f.Value)...)
			}
		}
	case KindSequence:
		for _, item := range n.Items {
			pages = append(pages, ExtractPages(item)...)
		}
	}
	return pages
}

// flattenPages reads the value of a "pages" key. String items are page
// paths; mapping items are groups whose own "pages" are flattened in place.
// Anything else is ignored.
func flattenPages(n Node) []string {
	var pages []string
	for _, item := range n.Items {
		switch item.Kind {
		case KindLeaf:
			if s, ok := item.Value.(string); ok {
				pages = append(pages, s)
			}
		case KindMapping:
			if nested, ok := item.Get(PagesKey); ok {
				pages = append(pages, flattenPages(nested)...)
			}
		}
	}
	return pages
}
