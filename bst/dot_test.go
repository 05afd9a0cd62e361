package bst

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteDot(t *testing.T) {
	tree := buildStringTree(t, "b", "a", "<c>")
	var buf bytes.Buffer
	if err := tree.WriteDot(&buf, nil); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "digraph G {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("not a digraph")
	}
	if !strings.Contains(dot, "&lt;c&gt;") {
		t.Errorf("expected labels to be escaped")
	}
	// 3 nodes with 4 missing children
	if n := strings.Count(dot, "shape=point"); n != 4 {
		t.Errorf("expected 4 null children, found %d", n)
	}
	if n := strings.Count(dot, "->"); n != 6 {
		t.Errorf("expected 6 edges, found %d", n)
	}
	// pre-order enumeration: root label comes first
	if strings.Index(dot, "label=<b>") > strings.Index(dot, "label=<a>") {
		t.Errorf("expected nodes in pre-order")
	}
}

func TestWriteDotEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewOrdered[int]().WriteDot(&buf, func(k int) string { return "x" }); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "->") {
		t.Errorf("expected no edges for empty tree")
	}
}
