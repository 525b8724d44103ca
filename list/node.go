package list

// handle addresses a node slot in the arena.
// The zero handle is the nil link.
type handle int

// node is a list node.
type node[V any] struct {
	value      V
	next, prev handle
	live       bool
}

// arena is a growable node table. Released slots are kept on a free list
// and reused before the table grows.
type arena[V any] struct {
	nodes []node[V]
	free  []handle
	max   int
}

// get returns the node at h. The pointer is invalidated by the next alloc.
func (a *arena[V]) get(h handle) *node[V] {
	return &a.nodes[h-1]
}

// alloc stores v in an unlinked node.
func (a *arena[V]) alloc(v V) (handle, error) {
	if a.max > 0 && a.live() >= a.max {
		return 0, ErrAllocationFailure
	}

	var h handle
	if n := len(a.free); n > 0 {
		h = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.nodes = append(a.nodes, node[V]{})
		h = handle(len(a.nodes))
	}

	a.nodes[h-1] = node[V]{
		value: v,
		live:  true,
	}

	return h, nil
}

// release frees the slot at h and returns the value it held.
func (a *arena[V]) release(h handle) V {
	n := a.get(h)
	if !n.live {
		panic("list: node released twice")
	}

	v := n.value
	*n = node[V]{}
	a.free = append(a.free, h)

	return v
}

func (a *arena[V]) live() int {
	return len(a.nodes) - len(a.free)
}

// reset releases every slot at once, keeping the allocated storage.
func (a *arena[V]) reset() {
	clear(a.nodes)
	a.nodes = a.nodes[:0]
	a.free = a.free[:0]
}
