package queue

// maxPrealloc caps the up-front allocation; k may far exceed the number of
// items ever offered.
const maxPrealloc = 1024

// Bounded retains the k items with the largest Distance seen so far.
// The smallest retained item sits at the top so it can be evicted in O(log k).
type Bounded[T any] struct {
	k  int
	pq *PriorityQueue[T]
}

// NewBounded returns an empty queue retaining at most k items.
// It panics if k < 1.
func NewBounded[T any](k int) *Bounded[T] {
	if k < 1 {
		panic("queue: bounded capacity must be positive")
	}
	return &Bounded[T]{k: k, pq: NewMin[T](min(k, maxPrealloc) + 1)}
}

// Offer inserts item and, if that overflows the capacity, evicts the minimum.
// Once full, an item not larger than the current minimum is rejected without
// touching the heap. Offer reports whether the retained set changed.
func (b *Bounded[T]) Offer(item Item[T]) bool {
	if b.pq.Len() < b.k {
		b.pq.PushItem(item)
		return true
	}
	if top, _ := b.pq.TopItem(); item.Distance <= top.Distance {
		return false
	}
	b.pq.PushItem(item)
	b.pq.PopItem()
	return true
}

// Min returns the smallest retained item.
func (b *Bounded[T]) Min() (Item[T], bool) { return b.pq.TopItem() }

// Len returns the number of genuine items retained.
func (b *Bounded[T]) Len() int { return b.pq.Len() }

// Cap returns the capacity k.
func (b *Bounded[T]) Cap() int { return b.k }

// Full reports whether k items are retained.
func (b *Bounded[T]) Full() bool { return b.pq.Len() >= b.k }

// Items returns the retained items in no particular order.
func (b *Bounded[T]) Items() []Item[T] { return b.pq.Items() }
