package scapegoat

import "fmt"

// Criterion names a balance criterion of a scapegoat tree.
type Criterion uint8

const (
	// NoCriterion marks rebuilds requested by a client (see Tree.Balance).
	NoCriterion Criterion = iota
	// WeightCriterion is violated if size < ⅔ · upperBound.
	WeightCriterion
	// HeightCriterion is violated if height > log_{3/2}(upperBound).
	HeightCriterion
)

func (c Criterion) String() string {
	switch c {
	case WeightCriterion:
		return "weight"
	case HeightCriterion:
		return "height"
	}
	return "none"
}

// RebuildKind distinguishes scapegoat rebuilds from full rebuilds.
type RebuildKind uint8

const (
	PartialRebuild RebuildKind = iota // subtree of a scapegoat, after insertion
	FullRebuild                       // complete tree, after deletion or on request
)

func (k RebuildKind) String() string {
	if k == PartialRebuild {
		return "partial"
	}
	return "full"
}

// RebuildEvent describes a completed rebuild.
type RebuildEvent struct {
	Kind       RebuildKind
	Cause      Criterion // criterion found violated, NoCriterion for Balance
	Nodes      int       // number of nodes rebuilt
	Depth      int       // depth of the rebuilt subtree's root
	Size       int       // size of the tree
	UpperBound int       // upper bound before it has been reset to Size
}

func (ev RebuildEvent) String() string {
	return fmt.Sprintf("%s rebuild of %d/%d nodes at depth %d (%s criterion, upper bound %d)",
		ev.Kind, ev.Nodes, ev.Size, ev.Depth, ev.Cause, ev.UpperBound)
}

// Stats counts operations and rebuilds of a tree.
type Stats struct {
	Inserts         int
	Removals        int
	PartialRebuilds int
	FullRebuilds    int
	RebuiltNodes    int // total number of nodes touched by rebuilds
}
