package bplus

import (
	"fmt"
	"io"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
)

// Stats summarises the shape of a tree.
type Stats struct {
	Order         int
	Height        int
	InternalNodes int
	LeafNodes     int
	Keys          int
	Values        int
}

// Stats walks the tree and counts nodes, keys and values.
func (t *BPlusTree) Stats() Stats {
	s := Stats{Order: t.order, Height: t.height, Keys: t.size}
	queue := []Node{}
	if t.root != nil {
		queue = append(queue, t.root)
	}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		switch n := node.(type) {
		case *InternalNode:
			s.InternalNodes++
			queue = append(queue, n.children...)
		case *LeafNode:
			s.LeafNodes++
			for _, vals := range n.values {
				s.Values += len(vals)
			}
		}
	}
	return s
}

// Digest hashes the keys and values in chain order. Two trees holding the
// same entries have the same digest whatever order they were built in.
func (t *BPlusTree) Digest() uint64 {
	d := xxhash.New()
	for leaf := t.FirstLeaf(); leaf != nil; leaf = leaf.next {
		for i, k := range leaf.keys {
			_, _ = d.WriteString(k)
			_, _ = d.Write([]byte{0x1e})
			for _, v := range leaf.values[i] {
				_, _ = d.WriteString(v)
				_, _ = d.Write([]byte{0x1f})
			}
		}
	}
	return d.Sum64()
}

// Inspect writes a level-by-level dump of the tree to w: separators for
// internal nodes, key -> values for leaves.
func (t *BPlusTree) Inspect(w io.Writer) error {
	var werr error
	p := func(format string, args ...interface{}) {
		if werr == nil {
			_, werr = fmt.Fprintf(w, format, args...)
		}
	}
	pln := func(s string) { p("%s\n", s) }

	p("B+ tree: order=%d height=%d keys=%d\n", t.order, t.height, t.size)
	if t.root == nil {
		pln("  (empty tree)")
		return werr
	}

	queue := []Node{t.root}
	level := 0
	for len(queue) > 0 {
		size := len(queue)
		p("  Level %d:\n", level)
		for i := 0; i < size; i++ {
			switch n := queue[i].(type) {
			case *InternalNode:
				p("    [%s] keys=[%s]\n", n.Type(), strings.Join(n.keys, " "))
				queue = append(queue, n.children...)
			case *LeafNode:
				entries := make([]string, len(n.keys))
				for j, k := range n.keys {
					entries[j] = k + " -> " + strings.Join(n.values[j], ",")
				}
				p("    [%s] %s\n", n.Type(), strings.Join(entries, " | "))
			default:
				return errors.AssertionFailedf("Inspect: unexpected node type %T", queue[i])
			}
		}
		queue = queue[size:]
		level++
	}
	pln("  ---")
	return werr
}
