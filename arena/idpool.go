package arena

import "container/heap"

// IDPool hands out the smallest nonnegative integer not currently in use.
// Freed ids are recycled before the high-water mark is advanced, so a
// long-running manager that allocates and frees nodes does not grow its id
// space without bound.
//
// Complexity: Alloc is O(1) amortized when the free-heap is empty (bump the
// mark), O(log n) when recycling a freed id. Free is O(log n).
// Concurrency: not safe for concurrent use.
type IDPool struct {
	next int
	free minHeap
	live int
}

// NewIDPool returns an empty pool; the first Alloc returns 0.
func NewIDPool() *IDPool {
	return &IDPool{}
}

// Alloc reserves and returns the smallest unused id.
func (p *IDPool) Alloc() int {
	if len(p.free) > 0 {
		id := heap.Pop(&p.free).(int)
		p.live++
		return id
	}
	id := p.next
	p.next++
	p.live++
	return id
}

// Free releases id back to the pool so a later Alloc may reuse it.
// Freeing an id that was never allocated, or freeing it twice, corrupts the
// pool's bookkeeping; callers own that invariant the same way a manual
// allocator's caller owns not double-freeing a pointer.
func (p *IDPool) Free(id int) {
	heap.Push(&p.free, id)
	p.live--
}

// Len reports the number of currently-live (allocated, not yet freed) ids.
func (p *IDPool) Len() int {
	return p.live
}

// minHeap is a container/heap of ints, smallest first.
type minHeap []int

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
