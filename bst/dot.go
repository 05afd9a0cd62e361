package bst

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"
)

// WriteDot outputs the structure of a tree in Graphviz DOT format (for
// debugging purposes). Nodes are enumerated in pre-order; missing children
// are drawn as unlabeled points, so left and right children stay
// distinguishable. label formats keys; if it is nil, keys are printed
// with fmt's %v.
func (t *Tree[K]) WriteDot(w io.Writer, label func(K) string) error {
	if label == nil {
		label = func(k K) string { return fmt.Sprintf("%v", k) }
	}
	var nodelist, edgelist bytes.Buffer
	nils := 0
	edge := func(from, to NodeID) {
		if to == NoNode {
			nils++
			fmt.Fprintf(&nodelist, "\tnil%d [label=\"\",shape=point];\n", nils)
			fmt.Fprintf(&edgelist, "\tn%d -> nil%d;\n", from, nils)
			return
		}
		fmt.Fprintf(&edgelist, "\tn%d -> n%d;\n", from, to)
	}
	var visit func(n NodeID)
	visit = func(n NodeID) {
		node := t.mem.at(n)
		fmt.Fprintf(&nodelist, "\tn%d [label=<%s>];\n", n, html.EscapeString(label(node.key)))
		edge(n, node.left)
		edge(n, node.right)
		if node.left != NoNode {
			visit(node.left)
		}
		if node.right != NoNode {
			visit(node.right)
		}
	}
	if !t.IsEmpty() {
		visit(t.root)
	}
	var out bytes.Buffer
	out.WriteString("digraph G {\n")
	out.WriteString("\tgraph [ordering=\"out\"];\n")
	out.WriteString("\tnode [fontname=Arial,fontsize=12,shape=circle];\n")
	out.Write(nodelist.Bytes())
	out.Write(edgelist.Bytes())
	out.WriteString("}\n")
	_, err := out.WriteTo(w)
	return err
}
