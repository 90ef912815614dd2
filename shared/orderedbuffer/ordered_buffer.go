package orderedbuffer

import (
	"sort"
)

// CompareFunc orders two elements: negative when a sorts before b.
type CompareFunc[T any] func(a, b T) int

// OrderedBuffer accumulates out-of-order insertions and drains them in
// sorted order. It restores submission order for a fan-in that observes
// completions in wall-clock order.
//
// Not safe for concurrent use: one coordinator goroutine owns the
// buffer.
type OrderedBuffer[T any] struct {
	data    []T
	compare CompareFunc[T]
}

func New[T any](capacity int, compare CompareFunc[T]) *OrderedBuffer[T] {
	return &OrderedBuffer[T]{
		data:    make([]T, 0, capacity),
		compare: compare,
	}
}

// Insert places val at its sorted position.
func (b *OrderedBuffer[T]) Insert(val T) {
	idx := sort.Search(len(b.data), func(i int) bool {
		return b.compare(val, b.data[i]) < 0
	})

	b.data = append(b.data, val)
	copy(b.data[idx+1:], b.data[idx:])
	b.data[idx] = val
}

// Len reports how many elements are buffered.
func (b *OrderedBuffer[T]) Len() int { return len(b.data) }

// Drain returns the buffered elements in sorted order and empties the
// buffer.
func (b *OrderedBuffer[T]) Drain() []T {
	out := b.data
	b.data = nil
	return out
}
