// Package xmltree provides defensive accessors over the generic map produced
// by parsing an XML document with mxj. In that representation a repeated
// element becomes a []interface{} while a singleton element stays a scalar or
// a map, so every potentially-repeated field must be normalized through
// ToSequence before iteration.
package xmltree

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Node is one value inside a parsed XML document: a map of child elements,
// a sequence of repeated siblings, or a scalar leaf.
type Node interface{}

// Lookup walks the given element path and returns the node it ends at.
// Any missing or non-map intermediate yields (nil, false), never a panic.
func Lookup(node Node, path ...string) (Node, bool) {
	current := node
	for _, key := range path {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// String resolves the path to a scalar leaf and returns its text.
// Missing nodes and non-scalar nodes yield the empty string.
func String(node Node, path ...string) string {
	v, ok := Lookup(node, path...)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// Decimal resolves the path to a numeric leaf. Absent or non-numeric values
// yield zero.
func Decimal(node Node, path ...string) decimal.Decimal {
	s := strings.TrimSpace(String(node, path...))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Int resolves the path to an integer leaf. Absent or non-numeric values
// yield zero; fractional values are truncated toward zero.
func Int(node Node, path ...string) int {
	return int(Decimal(node, path...).IntPart())
}

// ToSequence normalizes the scalar-vs-array ambiguity of repeated elements:
// a nil node becomes an empty sequence, a sequence is returned as-is and any
// other node becomes a one-element sequence.
func ToSequence(node Node) []Node {
	if node == nil {
		return []Node{}
	}
	if seq, ok := node.([]interface{}); ok {
		out := make([]Node, len(seq))
		for i, v := range seq {
			out[i] = v
		}
		return out
	}
	return []Node{node}
}
