/*
Package bst provides the plain binary search tree underneath the scapegoat
tree of the parent package.

The tree is not self-balancing. It offers ordered insertion, search, deletion
by in-order predecessor promotion, the classic traversals and a rebuild
primitive which reconstructs a subtree (or the whole tree) into a
median-split, perfectly weight-balanced shape. Balancing policies are left to
clients; package scapegoat decides when to call RebuildSubtree.

Nodes live in an arena and reference each other by NodeID. Every node carries
a parent link, which is never used to transfer ownership. NodeIDs are only
valid until the next mutating call: deletion and reconstruction release arena
slots and reuse them later.

Equal keys are allowed. They are always routed to the left subtree, so for
every node all keys of its left subtree compare ≤ its key and all keys of its
right subtree compare > its key.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bst

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'scapegoat'
func tracer() tracing.Trace {
	return tracing.Select("scapegoat")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
