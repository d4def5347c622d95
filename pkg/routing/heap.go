package routing

import "access_router/pkg/graph"

// frontier is a concrete-typed min-heap for the search priority queue.
// Avoids interface boxing overhead of container/heap.
type frontier struct {
	items []frontierItem
}

// frontierItem is one priority queue entry.
type frontierItem struct {
	node graph.NodeID
	f    float64 // priority: cost-so-far plus heuristic estimate
	g    float64 // cost-so-far; breaks f ties in favor of progress
}

// less orders by f, then by smaller g among equal f. The tie-break is what
// makes path selection reproducible when multiple minimum-cost routes exist.
func (a frontierItem) less(b frontierItem) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.g < b.g
}

func (h *frontier) Len() int { return len(h.items) }

func (h *frontier) Push(it frontierItem) {
	h.items = append(h.items, it)
	h.siftUp(len(h.items) - 1)
}

func (h *frontier) Pop() frontierItem {
	n := len(h.items)
	item := h.items[0]
	h.items[0] = h.items[n-1]
	h.items = h.items[:n-1]
	if len(h.items) > 0 {
		h.siftDown(0)
	}
	return item
}

func (h *frontier) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.items[i].less(h.items[parent]) {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *frontier) siftDown(i int) {
	n := len(h.items)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2
		if left < n && h.items[left].less(h.items[smallest]) {
			smallest = left
		}
		if right < n && h.items[right].less(h.items[smallest]) {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
