package field

import "container/heap"

// heapItem is one (dist, tile) entry in the build's priority queue. seq
// breaks ties deterministically in insertion order, giving the "stable
// binary heap" behavior spec §4.3 asks for without relying on
// container/heap's pop order among equal keys.
type heapItem struct {
	dist float32
	tile int32
	seq  uint64
}

// itemHeap is a binary min-heap of heapItem ordered by (dist, seq).
type itemHeap []heapItem

func (h itemHeap) Len() int { return len(h) }
func (h itemHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return h[i].seq < h[j].seq
}
func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }

func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// buildHeap wraps itemHeap with an injectable allocation-failure hook
// (growAllowed), mirroring costmodel's dirtyQueue: Go slices do not
// normally fail to grow, but spec §4.3's failure semantics require a
// push-can-fail path, so tests can install a hook that refuses growth at a
// chosen capacity.
type buildHeap struct {
	items       itemHeap
	nextSeq     uint64
	growAllowed func(newCap int) bool
}

func newBuildHeap() buildHeap {
	return buildHeap{items: make(itemHeap, 0, 16)}
}

func (h *buildHeap) push(dist float32, tile int32) error {
	if h.growAllowed != nil && len(h.items) == cap(h.items) {
		if !h.growAllowed(growCap(cap(h.items))) {
			return ErrHeapAllocFailed
		}
	}
	heap.Push(&h.items, heapItem{dist: dist, tile: tile, seq: h.nextSeq})
	h.nextSeq++
	return nil
}

func growCap(c int) int {
	if c == 0 {
		return 16
	}
	return c * 2
}

func (h *buildHeap) popMin() (heapItem, bool) {
	if len(h.items) == 0 {
		return heapItem{}, false
	}
	return heap.Pop(&h.items).(heapItem), true
}

func (h *buildHeap) len() int { return len(h.items) }

func (h *buildHeap) reset() {
	h.items = h.items[:0]
	h.nextSeq = 0
}
