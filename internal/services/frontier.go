package services

import "container/heap"

type frontierItem struct {
	cell int
	f    float64
	seq  uint64
}

// frontierHeap orders by evaluation, then by push order.
type frontierHeap []frontierItem

func (h frontierHeap) Len() int { return len(h) }
func (h frontierHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *frontierHeap) Push(x any) {
	*h = append(*h, x.(frontierItem))
}

func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// frontier is the A* open set. Equal evaluations pop first-in first-out, so a
// cell re-pushed with a better cost never jumps ahead of an older entry with
// the same evaluation.
type frontier struct {
	items frontierHeap
	seq   uint64
}

func (q *frontier) Len() int { return q.items.Len() }

func (q *frontier) push(cell int, f float64) {
	heap.Push(&q.items, frontierItem{cell: cell, f: f, seq: q.seq})
	q.seq++
}

func (q *frontier) pop() frontierItem {
	return heap.Pop(&q.items).(frontierItem)
}
