package arena

// Pool is a generic slot arena: records of type T are allocated by index,
// and freed indices are recycled by an embedded IDPool rather than left for
// the garbage collector. This is the Go re-expression (spec §9, "An indexed
// arena of subject nodes eliminates raw pointers; all references are NodeId
// indices") of the original's fixed-block allocator with per-size
// free-lists — since Go's slice growth already amortizes the "coarse
// blocks" behavior, Pool only needs to manage index reuse.
//
// Slots are held as *T, not T, so that a pointer returned by Get or Alloc
// stays valid across later Alloc calls: growing the index slice reallocates
// the slice of pointers, never the records they point to. Callers such as
// expr.Mgr rely on this — they hold a *node across recursive calls that may
// themselves allocate.
//
// Concurrency: not safe for concurrent use.
type Pool[T any] struct {
	ids   *IDPool
	slots []*T
}

// New returns an empty Pool.
func New[T any]() *Pool[T] {
	return &Pool[T]{ids: NewIDPool()}
}

// Alloc reserves a new slot, zero-valued, and returns its id together with a
// pointer to the slot for in-place initialization.
func (p *Pool[T]) Alloc() (int, *T) {
	id := p.ids.Alloc()
	if id == len(p.slots) {
		p.slots = append(p.slots, new(T))
	}
	return id, p.slots[id]
}

// Get returns a pointer to the slot at id. The caller must only pass ids
// returned by Alloc and not yet Free'd.
func (p *Pool[T]) Get(id int) *T {
	return p.slots[id]
}

// Free releases the slot at id, resetting it to the zero value so that any
// stale pointer obtained via Get before the Free does not observe a
// resurrected record from a later Alloc.
func (p *Pool[T]) Free(id int) {
	var zero T
	*p.slots[id] = zero
	p.ids.Free(id)
}

// Len reports the number of live (allocated, not yet freed) slots.
func (p *Pool[T]) Len() int {
	return p.ids.Len()
}

// Cap reports the number of slots ever allocated (including currently-freed
// ones still occupying backing storage).
func (p *Pool[T]) Cap() int {
	return len(p.slots)
}
