// Package arena provides an owning collection addressed by generational
// handles. A handle keeps resolving until its value is removed; after that it
// never resolves again, even when the slot is reused for a new value.
package arena

// Handle is a stable, non-owning reference into an Arena.
// The zero Handle never resolves.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero handle.
func (h Handle) IsZero() bool { return h.gen == 0 }

type slot[T any] struct {
	gen  uint32
	live bool
	val  T
}

// Entry pairs a live value with its handle.
type Entry[T any] struct {
	Handle Handle
	Value  T
}

// Arena owns values of type T. Iteration follows insertion order.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	order []uint32
}

// New creates an empty arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert stores v and returns its handle.
func (a *Arena[T]) Insert(v T) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot[T]{})
		idx = uint32(len(a.slots) - 1)
	}
	s := &a.slots[idx]
	s.gen++
	s.live = true
	s.val = v
	a.order = append(a.order, idx)
	return Handle{index: idx, gen: s.gen}
}

// Get resolves h. The second result is false for stale or zero handles.
func (a *Arena[T]) Get(h Handle) (T, bool) {
	var zero T
	if !a.valid(h) {
		return zero, false
	}
	return a.slots[h.index].val, true
}

// Contains reports whether h still resolves.
func (a *Arena[T]) Contains(h Handle) bool {
	return a.valid(h)
}

func (a *Arena[T]) valid(h Handle) bool {
	if h.gen == 0 || int(h.index) >= len(a.slots) {
		return false
	}
	s := a.slots[h.index]
	return s.live && s.gen == h.gen
}

// Remove drops the value behind h. It returns false if h was already stale.
func (a *Arena[T]) Remove(h Handle) bool {
	if !a.valid(h) {
		return false
	}
	a.release(h.index)
	for i, idx := range a.order {
		if idx == h.index {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	return true
}

func (a *Arena[T]) release(idx uint32) {
	var zero T
	s := &a.slots[idx]
	s.live = false
	s.val = zero
	a.free = append(a.free, idx)
}

// RemoveFunc removes every value for which fn returns true, keeping the
// insertion order of the survivors, and returns the removed entries.
func (a *Arena[T]) RemoveFunc(fn func(Handle, T) bool) []Entry[T] {
	var removed []Entry[T]
	kept := a.order[:0]
	for _, idx := range a.order {
		s := a.slots[idx]
		h := Handle{index: idx, gen: s.gen}
		if fn(h, s.val) {
			removed = append(removed, Entry[T]{Handle: h, Value: s.val})
			a.release(idx)
			continue
		}
		kept = append(kept, idx)
	}
	a.order = kept
	return removed
}

// Entries returns the live values in insertion order.
func (a *Arena[T]) Entries() []Entry[T] {
	out := make([]Entry[T], 0, len(a.order))
	for _, idx := range a.order {
		s := a.slots[idx]
		out = append(out, Entry[T]{Handle: Handle{index: idx, gen: s.gen}, Value: s.val})
	}
	return out
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int { return len(a.order) }

// Clear removes every value. Outstanding handles become stale.
func (a *Arena[T]) Clear() {
	for _, idx := range a.order {
		a.release(idx)
	}
	a.order = a.order[:0]
}
