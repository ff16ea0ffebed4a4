// Package Intrusive implements an unbalanced binary search tree whose links are
// embedded in the elements it orders, so one element can sit in several trees.
package Intrusive

import "iter"

// Tree is an unbalanced binary search tree over elements that live in an Arena
// and embed a Link for side S. The tree never allocates or frees elements: it
// only links and unlinks them. Keys are unique under less.
// The tree keeps no balance information, so D, the depth of the tree, is
// O(log n) on average for random insertion orders and O(n) in the worst case.
// A tree isn't safe for concurrent use.
type Tree[E any, S Side, K any] struct {
	arena *Arena[E]
	proj  Projection[E, K]
	less  LessFunc[K]
	r     Resolver
	root  Handle
}

// New creates an empty tree over the elements of a, linking them through p.Link
// and ordering them by p.Key under less.
func New[E any, S Side, K any](a *Arena[E], p Projection[E, K], less LessFunc[K]) *Tree[E, S, K] {
	u := &Tree[E, S, K]{arena: a, proj: p, less: less}
	u.r = func(h Handle) *Link { return p.Link(a.Get(h)) }
	return u
}

func (u *Tree[E, S, K]) key(h Handle) K {
	return u.proj.Key(u.arena.Get(h))
}

// Resolver of the links of this tree.
func (u *Tree[E, S, K]) Resolver() Resolver {
	return u.r
}

// Less is the ordering of the tree.
func (u *Tree[E, S, K]) Less() LessFunc[K] {
	return u.less
}

// Root handle, Nil when empty.
func (u *Tree[E, S, K]) Root() Handle {
	return u.root
}

// Empty reports whether no element is linked.
func (u *Tree[E, S, K]) Empty() bool {
	return u.root == Nil
}

// IteratorAt returns the position of h, which must be linked into u.
func (u *Tree[E, S, K]) IteratorAt(h Handle) Iterator[E, S, K] {
	return Iterator[E, S, K]{u, h}
}

// Begin is the position of the minimum, or End if u is empty.
// Time: O(D)
func (u *Tree[E, S, K]) Begin() Iterator[E, S, K] {
	if u.root == Nil {
		return u.End()
	}
	return Iterator[E, S, K]{u, Min(u.r, u.root)}
}

// Last is the position of the maximum, or End if u is empty.
// Time: O(D)
func (u *Tree[E, S, K]) Last() Iterator[E, S, K] {
	if u.root == Nil {
		return u.End()
	}
	return Iterator[E, S, K]{u, Max(u.r, u.root)}
}

// End is the position past the maximum. It doesn't address any element.
func (u *Tree[E, S, K]) End() Iterator[E, S, K] {
	return Iterator[E, S, K]{u, Nil}
}

// Find the element whose key equals k.
// Time: O(D); Space: O(1)
func (u *Tree[E, S, K]) Find(k K) Iterator[E, S, K] {
	for cur := u.root; cur != Nil; {
		if ck := u.key(cur); u.less(ck, k) {
			cur = u.r(cur).right
		} else if u.less(k, ck) {
			cur = u.r(cur).left
		} else {
			return Iterator[E, S, K]{u, cur}
		}
	}
	return u.End()
}

// Insert links h, whose Link for S must be detached. If an element with an equal
// key is already linked, nothing changes and End is returned.
// Time: O(D); Space: O(1)
func (u *Tree[E, S, K]) Insert(h Handle) Iterator[E, S, K] {
	if u.root == Nil {
		u.root = h
		return Iterator[E, S, K]{u, h}
	}
	k := u.key(h)
	for cur := u.root; ; {
		if ck := u.key(cur); u.less(ck, k) {
			if rc := u.r(cur).right; rc != Nil {
				cur = rc
			} else {
				AttachRight(u.r, cur, h)
				break
			}
		} else if u.less(k, ck) {
			if lc := u.r(cur).left; lc != Nil {
				cur = lc
			} else {
				AttachLeft(u.r, cur, h)
				break
			}
		} else {
			return u.End()
		}
	}
	return Iterator[E, S, K]{u, h}
}

// Erase unlinks h and returns the position that followed it. The successor is
// determined before any link changes, so it is correct whether h had zero, one,
// or two children.
// Time: O(D)
func (u *Tree[E, S, K]) Erase(h Handle) Iterator[E, S, K] {
	next := Successor(u.r, h)
	Detach(u.r, &u.root, h)
	return Iterator[E, S, K]{u, next}
}

// Unlink is Erase for callers that don't need the following position.
// Time: O(D)
func (u *Tree[E, S, K]) Unlink(h Handle) {
	Detach(u.r, &u.root, h)
}

// LowerBound is the position of the first element whose key isn't less than k.
// Time: O(D); Space: O(1)
func (u *Tree[E, S, K]) LowerBound(k K) Iterator[E, S, K] {
	res := Nil
	for cur := u.root; cur != Nil; {
		if u.less(u.key(cur), k) {
			cur = u.r(cur).right
		} else {
			res = cur
			cur = u.r(cur).left
		}
	}
	return Iterator[E, S, K]{u, res}
}

// UpperBound is the position of the first element whose key is greater than k.
// Time: O(D); Space: O(1)
func (u *Tree[E, S, K]) UpperBound(k K) Iterator[E, S, K] {
	res := Nil
	for cur := u.root; cur != Nil; {
		if u.less(k, u.key(cur)) {
			res = cur
			cur = u.r(cur).left
		} else {
			cur = u.r(cur).right
		}
	}
	return Iterator[E, S, K]{u, res}
}

// All handles in ascending key order. u must not be modified during the iteration.
func (u *Tree[E, S, K]) All() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		if u.root == Nil {
			return
		}
		for h := Min(u.r, u.root); h != Nil; h = Successor(u.r, h) {
			if !yield(h) {
				return
			}
		}
	}
}

// Clear unlinks every element, leaving all of them detached. The elements
// themselves stay in the arena.
// Time: O(n); Space: O(n)
func (u *Tree[E, S, K]) Clear() {
	var all []Handle
	for h := range u.All() {
		all = append(all, h)
	}
	for _, h := range all {
		*u.r(h) = Link{}
	}
	u.root = Nil
}

// Swap the contents of u and o, arenas included. Iterators keep pointing at the
// tree value they came from, so they must be re-created with IteratorAt.
func (u *Tree[E, S, K]) Swap(o *Tree[E, S, K]) {
	*u, *o = *o, *u
}

// MoveFrom clears u and takes over every element of o, along with o's arena and
// ordering. o is left empty. Elements keep their handles, so positions taken from o
// stay meaningful when re-created with u.IteratorAt.
func (u *Tree[E, S, K]) MoveFrom(o *Tree[E, S, K]) {
	if u == o {
		return
	}
	u.Clear()
	u.arena, u.proj, u.less, u.r, u.root = o.arena, o.proj, o.less, o.r, o.root
	o.root = Nil
}

// Corrupt reports whether the tree is structurally broken: a parent/child relation
// that isn't mirrored, a cycle, or keys out of order. It's meant for tests and
// debugging and doesn't change the tree.
// Time: O(n); Space: O(D)
func (u *Tree[E, S, K]) Corrupt() bool {
	if u.root == Nil {
		return false
	}
	if u.r(u.root).parent != Nil {
		return true
	}
	limit, seen := len(u.arena.slots), 0
	st := []Handle{u.root}
	for len(st) > 0 {
		h := st[len(st)-1]
		st = st[:len(st)-1]
		if seen++; seen > limit {
			return true
		}
		l := u.r(h)
		for _, c := range [2]Handle{l.left, l.right} {
			if c != Nil {
				if u.r(c).parent != h {
					return true
				}
				st = append(st, c)
			}
		}
	}
	prev, first := Nil, true
	for h := range u.All() {
		if !first && !u.less(u.key(prev), u.key(h)) {
			return true
		}
		prev, first = h, false
	}
	return false
}

// Iterator is a position in a Tree: an element or End. It stays valid while its
// element is linked, no matter what else is inserted or erased.
type Iterator[E any, S Side, K any] struct {
	t *Tree[E, S, K]
	h Handle
}

// Next moves to the in-order successor. Next on End stays at End.
// Time: amortized O(1)
func (it *Iterator[E, S, K]) Next() {
	it.h = Successor(it.t.r, it.h)
}

// Prev moves to the in-order predecessor. Prev on End moves to the maximum, Prev on
// the minimum moves to End.
// Time: amortized O(1)
func (it *Iterator[E, S, K]) Prev() {
	if it.h == Nil {
		*it = it.t.Last()
		return
	}
	it.h = Predecessor(it.t.r, it.h)
}

// Valid reports whether it addresses an element, i.e. isn't End.
func (it Iterator[E, S, K]) Valid() bool {
	return it.h != Nil
}

// Handle of the element, Nil for End.
func (it Iterator[E, S, K]) Handle() Handle {
	return it.h
}

// Elem is the element at it. The pointer is invalidated by the next Arena.Alloc.
// Calling it on End returns the arena's reserved zero element.
func (it Iterator[E, S, K]) Elem() *E {
	return it.t.arena.Get(it.h)
}

// Key of the element at it.
func (it Iterator[E, S, K]) Key() K {
	return it.t.key(it.h)
}

// Equal reports whether it and o are the same position of the same tree.
func (it Iterator[E, S, K]) Equal(o Iterator[E, S, K]) bool {
	return it.t == o.t && it.h == o.h
}
