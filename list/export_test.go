package list

// Verify exposes the link invariant checker to tests.
func (l *List[V]) Verify() error {
	return l.verify()
}

// FreeSlots returns the number of reclaimed arena slots awaiting reuse.
func (l *List[V]) FreeSlots() int {
	return len(l.arena.free)
}

// Slots returns the size of the arena table.
func (l *List[V]) Slots() int {
	return len(l.arena.nodes)
}
