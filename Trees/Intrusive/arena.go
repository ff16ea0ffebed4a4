package Intrusive

// Handle addresses an element stored in an Arena. Handles stay valid for as long
// as the element is alive, regardless of how many other elements are added or
// removed; a freed handle may later be handed out again.
type Handle uint32

// Nil is the absent handle. It resolves to the reserved zero slot of an Arena.
const Nil Handle = 0

type slot[E any] struct {
	v    E
	next Handle // next free slot; only meaningful while the slot is on the free list.
}

// Arena owns the storage of intrusive elements. slots[0] is the zero value and is
// never handed out, so resolving Nil is always safe and yields zero links.
// The zero value is not usable, create it with NewArena.
type Arena[E any] struct {
	slots []slot[E]
	free  Handle // head of the free list threaded through slot.next.
	live  int
}

// NewArena creates an Arena with room for hint elements before it has to grow.
func NewArena[E any](hint int) *Arena[E] {
	if hint < 0 {
		hint = 0
	}
	return &Arena[E]{slots: make([]slot[E], 1, hint+1)}
}

// addFree pushes a onto the free list.
func (u *Arena[E]) addFree(a Handle) {
	u.slots[a].next = u.free
	u.free = a
}

// popFree removes a handle from the free list. Returns Nil when the list is empty.
func (u *Arena[E]) popFree() Handle {
	b := u.free
	if b != Nil {
		u.free = u.slots[b].next
		u.slots[b].next = Nil
	}
	return b
}

// Alloc stores v and returns its handle. Freed slots are reused before the
// underlying array is grown.
// Time: amortized O(1)
func (u *Arena[E]) Alloc(v E) Handle {
	u.live++
	if h := u.popFree(); h != Nil {
		u.slots[h].v = v
		return h
	}
	u.slots = append(u.slots, slot[E]{v: v})
	return Handle(len(u.slots) - 1)
}

// Free releases h. The slot is zeroed so the element no longer retains memory.
// Freeing Nil or an already freed handle corrupts the arena.
func (u *Arena[E]) Free(h Handle) {
	u.slots[h].v = *new(E)
	u.addFree(h)
	u.live--
}

// Get the element addressed by h. The pointer is invalidated by the next Alloc.
func (u *Arena[E]) Get(h Handle) *E {
	return &u.slots[h].v
}

// Len is the number of live elements.
func (u *Arena[E]) Len() int {
	return u.live
}

// Cap is the number of elements the arena holds before it has to grow.
func (u *Arena[E]) Cap() int {
	return cap(u.slots) - 1
}

// Reset drops every element. Every handle previously returned becomes invalid.
func (u *Arena[E]) Reset() {
	clear(u.slots)
	u.slots = u.slots[:1]
	u.free, u.live = Nil, 0
}
