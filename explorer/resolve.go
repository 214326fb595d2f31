package explorer

import (
	"errors"
	"strconv"

	"github.com/bpbin/rawexplorer"
	"github.com/bpbin/rawexplorer/cursor"
	"github.com/bpbin/rawexplorer/dedup"
)

// ErrNotFound is the cause of a Resolve failure on a missing key or index.
var ErrNotFound = errors.New("not found")

// SkipChildren returned from a WalkFunc prunes the subtree below the node.
var SkipChildren = errors.New("skip children")

// Resolve descends root and c along p. Object members step the cursor by
// property, array elements by index with the array's length. A missing
// member yields rawexplorer.Issues with code not_found whose cause is
// ErrNotFound; the cursor never causes an error.
func Resolve(root dedup.Value, c cursor.Cursor, p Path) (dedup.Value, cursor.Cursor, error) {
	v := root
	for i, st := range p {
		switch v.Kind() {
		case dedup.KindObject:
			child, ok := v.Get(st.Key)
			if !ok {
				return dedup.Value{}, c, notFound(p[:i+1], "no member "+strconv.Quote(st.Key))
			}
			c = c.StepProperty(st.Key)
			v = child
		case dedup.KindArray:
			child, ok := v.Index(st.Index)
			if !st.IsIndex || !ok {
				return dedup.Value{}, c, notFound(p[:i+1], "no element "+strconv.Quote(st.Key))
			}
			c = c.StepIndex(st.Index, v.Len())
			v = child
		default:
			return dedup.Value{}, c, notFound(p[:i+1], "cannot descend into "+v.Kind().String())
		}
	}
	return v, c, nil
}

func notFound(at Path, msg string) error {
	return rawexplorer.Issues{{
		Path:    at.Pointer(),
		Code:    rawexplorer.CodeNotFound,
		Message: msg,
		Cause:   ErrNotFound,
		Offset:  -1,
	}}
}

// Node is a value visited by Walk together with its cursor.
type Node struct {
	Path   Path
	Value  dedup.Value
	Cursor cursor.Cursor
	Depth  int
}

// Key returns the last path token, or "" for the root.
func (n Node) Key() string {
	if len(n.Path) == 0 {
		return ""
	}
	return n.Path[len(n.Path)-1].Key
}

// WalkFunc is called for every visited node. Returning SkipChildren prunes
// the node's subtree; any other error stops the walk.
type WalkFunc func(Node) error

// Walk visits root and its descendants depth first in pre-order, objects in
// key order and arrays in index order. Nodes deeper than maxDepth are not
// visited; a negative maxDepth means no limit.
func Walk(root dedup.Value, c cursor.Cursor, maxDepth int, fn WalkFunc) error {
	err := walk(Node{Value: root, Cursor: c}, maxDepth, fn)
	if errors.Is(err, SkipChildren) {
		return nil
	}
	return err
}

func walk(n Node, maxDepth int, fn WalkFunc) error {
	if err := fn(n); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	if maxDepth >= 0 && n.Depth >= maxDepth {
		return nil
	}
	switch n.Value.Kind() {
	case dedup.KindObject:
		for k, child := range n.Value.Members() {
			next := Node{Path: n.Path.Field(k), Value: child, Cursor: n.Cursor.StepProperty(k), Depth: n.Depth + 1}
			if err := walk(next, maxDepth, fn); err != nil {
				return err
			}
		}
	case dedup.KindArray:
		length := n.Value.Len()
		for i, child := range n.Value.Items() {
			next := Node{Path: n.Path.Index(i), Value: child, Cursor: n.Cursor.StepIndex(i, length), Depth: n.Depth + 1}
			if err := walk(next, maxDepth, fn); err != nil {
				return err
			}
		}
	}
	return nil
}
