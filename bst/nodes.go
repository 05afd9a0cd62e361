package bst

// NodeID addresses a node in the arena of a tree.
type NodeID int32

// NoNode is the null link. Slot 0 of every arena is reserved for it.
const NoNode NodeID = 0

type node[K any] struct {
	key    K
	left   NodeID
	right  NodeID
	parent NodeID // non-owning back-reference
}

// arena holds the node storage of a tree. Released slots are kept on a free
// list and handed out again by alloc.
type arena[K any] struct {
	nodes []node[K] // nodes[0] is the NoNode sentinel and never used
	free  []NodeID
	count int // number of live nodes
}

func (a *arena[K]) init() {
	a.nodes = make([]node[K], 1, 16)
	a.free = a.free[:0]
	a.count = 0
}

func (a *arena[K]) alloc(key K, parent NodeID) NodeID {
	var id NodeID
	if l := len(a.free); l > 0 {
		id = a.free[l-1]
		a.free = a.free[:l-1]
		a.nodes[id] = node[K]{key: key, parent: parent}
	} else {
		id = NodeID(len(a.nodes))
		a.nodes = append(a.nodes, node[K]{key: key, parent: parent})
	}
	a.count++
	return id
}

func (a *arena[K]) release(id NodeID) {
	assert(id != NoNode, "release called with NoNode")
	a.nodes[id] = node[K]{}
	a.free = append(a.free, id)
	a.count--
}

// at returns a pointer into the arena. It must not be held across a call
// to alloc, which may grow the backing slice.
func (a *arena[K]) at(id NodeID) *node[K] {
	return &a.nodes[id]
}
