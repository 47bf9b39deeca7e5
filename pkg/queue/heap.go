package queue

import (
	"container/heap"
	"strings"
)

// Items of a MinHeap. The heap keeps Index in sync with the position of the item, -1 once it left the heap
type Priorizable interface {
	Priority() float64
	Index() int
	SetIndex(index int)
	String() string
}

// Binary min-heap ordered by Priority
type MinHeap[T Priorizable] struct {
	items entries[T]
}

func NewMinHeap[T Priorizable](items []T) *MinHeap[T] {
	h := &MinHeap[T]{items: make(entries[T], len(items))}
	for i, item := range items {
		h.items[i] = item
		item.SetIndex(i)
	}
	heap.Init(&h.items)
	return h
}

func (h *MinHeap[T]) Len() int    { return len(h.items) }
func (h *MinHeap[T]) Push(item T) { heap.Push(&h.items, item) }
func (h *MinHeap[T]) Pop() T      { return heap.Pop(&h.items).(T) }
func (h *MinHeap[T]) Peek() T     { return h.items[0] }

// Restore the order after the priority of a queued item changed
func (h *MinHeap[T]) Update(item T) { heap.Fix(&h.items, item.Index()) }

// Whether the item is currently queued
func (h *MinHeap[T]) Contains(item T) bool {
	i := item.Index()
	return i >= 0 && i < len(h.items)
}

// Update the item if it is queued, push it otherwise
func (h *MinHeap[T]) PushOrUpdate(item T) {
	if h.Contains(item) {
		h.Update(item)
	} else {
		h.Push(item)
	}
}

func (h *MinHeap[T]) Remove(index int) { heap.Remove(&h.items, index) }

func (h *MinHeap[T]) String() string {
	var sb strings.Builder
	for _, item := range h.items {
		sb.WriteString(item.String())
	}
	return sb.String()
}

// heap.Interface over the typed items
type entries[T Priorizable] []T

func (e entries[T]) Len() int           { return len(e) }
func (e entries[T]) Less(i, j int) bool { return e[i].Priority() < e[j].Priority() }
func (e entries[T]) Swap(i, j int) {
	e[i], e[j] = e[j], e[i]
	e[i].SetIndex(i)
	e[j].SetIndex(j)
}

func (e *entries[T]) Push(x any) {
	item := x.(T)
	item.SetIndex(len(*e))
	*e = append(*e, item)
}

func (e *entries[T]) Pop() any {
	old := *e
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero
	item.SetIndex(-1)
	*e = old[:n-1]
	return item
}
