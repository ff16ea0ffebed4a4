// Package BiMap implements an ordered bidirectional map. Every pair is stored once
// and indexed by two unbalanced intrusive trees, one keyed by the left value and one
// keyed by the right value, so either value looks up the other.
package BiMap

import (
	"iter"
	"log/slog"

	"github.com/g-m-twostay/go-bimap/Trees/Intrusive"
	"golang.org/x/exp/constraints"
)

// core is everything iterators resolve through. It moves between maps as a unit,
// which is what keeps iterators meaningful across MoveFrom, Move and Swap.
type core[L, R any] struct {
	nodes *Intrusive.Arena[node[L, R]]
	left  *Intrusive.Tree[node[L, R], Intrusive.Left, L]
	right *Intrusive.Tree[node[L, R], Intrusive.Right, R]
	size  int
}

func newCore[L, R any](lessL Intrusive.LessFunc[L], lessR Intrusive.LessFunc[R], capacity int) *core[L, R] {
	nodes := Intrusive.NewArena[node[L, R]](capacity)
	return &core[L, R]{
		nodes: nodes,
		left:  Intrusive.New[node[L, R], Intrusive.Left, L](nodes, leftSide[L, R](), lessL),
		right: Intrusive.New[node[L, R], Intrusive.Right, R](nodes, rightSide[L, R](), lessR),
	}
}

// empty is a new core with the same orderings as c.
func (c *core[L, R]) empty() *core[L, R] {
	return newCore[L, R](c.left.Less(), c.right.Less(), 0)
}

// BiMap holds (left, right) pairs where no two pairs share a left value and no two
// pairs share a right value. Both sides are kept in order and can be iterated,
// searched and bounded independently.
// D, the depth of either tree, is O(log n) on average and O(n) in the worst case:
// the trees are never rebalanced.
// A BiMap isn't safe for concurrent use.
type BiMap[L, R any] struct {
	c   *core[L, R]
	log *slog.Logger
}

// New creates an empty BiMap ordering the left side by lessL and the right side by
// lessR. Panics if either ordering is nil after applying opts.
func New[L, R any](lessL Intrusive.LessFunc[L], lessR Intrusive.LessFunc[R], opts ...Option[L, R]) *BiMap[L, R] {
	cfg := config[L, R]{lessL: lessL, lessR: lessR, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.lessL == nil || cfg.lessR == nil {
		panic("bimap: nil ordering")
	}
	return &BiMap[L, R]{newCore(cfg.lessL, cfg.lessR, cfg.capacity), cfg.logger}
}

// NewOrdered creates an empty BiMap with both sides in natural order.
func NewOrdered[L, R constraints.Ordered](opts ...Option[L, R]) *BiMap[L, R] {
	return New(Intrusive.Ordered[L](), Intrusive.Ordered[R](), opts...)
}

// Len is the number of pairs.
func (m *BiMap[L, R]) Len() int {
	return m.c.size
}

// Empty reports whether Len is 0.
func (m *BiMap[L, R]) Empty() bool {
	return m.c.size == 0
}

// Insert the pair (l, r) and return its left position. If l is already a left value
// or r is already a right value, nothing changes and EndLeft is returned.
// Time: O(D)
func (m *BiMap[L, R]) Insert(l L, r R) LeftIterator[L, R] {
	if m.c.left.Find(l).Valid() {
		m.log.Debug("insert rejected", "side", "left", "key", l)
		return m.EndLeft()
	}
	if m.c.right.Find(r).Valid() {
		m.log.Debug("insert rejected", "side", "right", "key", r)
		return m.EndLeft()
	}
	return m.insert(l, r)
}

// insert assumes neither l nor r is present.
func (m *BiMap[L, R]) insert(l L, r R) LeftIterator[L, R] {
	h := m.c.nodes.Alloc(node[L, R]{left: l, right: r})
	m.c.left.Insert(h)
	m.c.right.Insert(h)
	m.c.size++
	return LeftIterator[L, R]{m.c.left.IteratorAt(h), m.c}
}

// release unlinks h from both trees and frees it. The node must not be freed while
// either tree still references it.
func (c *core[L, R]) release(h Intrusive.Handle) {
	c.left.Unlink(h)
	c.right.Unlink(h)
	c.nodes.Free(h)
	c.size--
}

// EraseLeft removes the pair at it and returns the left position that followed it.
// it must address a live pair of m or be EndLeft, which is returned unchanged.
// Time: O(D)
func (m *BiMap[L, R]) EraseLeft(it LeftIterator[L, R]) LeftIterator[L, R] {
	if !it.Valid() {
		return it
	}
	next := it
	next.Next()
	m.c.release(it.it.Handle())
	return next
}

// EraseRight removes the pair at it and returns the right position that followed it.
// it must address a live pair of m or be EndRight, which is returned unchanged.
// Time: O(D)
func (m *BiMap[L, R]) EraseRight(it RightIterator[L, R]) RightIterator[L, R] {
	if !it.Valid() {
		return it
	}
	next := it
	next.Next()
	m.c.release(it.it.Handle())
	return next
}

// EraseLeftKey removes the pair whose left value is l. Reports whether it existed.
// Time: O(D)
func (m *BiMap[L, R]) EraseLeftKey(l L) bool {
	it := m.FindLeft(l)
	found := it.Valid()
	if found {
		m.EraseLeft(it)
	} else {
		m.log.Debug("erase missed", "side", "left", "key", l)
	}
	return found
}

// EraseRightKey removes the pair whose right value is r. Reports whether it existed.
// Time: O(D)
func (m *BiMap[L, R]) EraseRightKey(r R) bool {
	it := m.FindRight(r)
	found := it.Valid()
	if found {
		m.EraseRight(it)
	} else {
		m.log.Debug("erase missed", "side", "right", "key", r)
	}
	return found
}

// EraseLeftRange removes the pairs in [first, last) of the left order and returns last.
// Time: O(k*D) for k removed pairs.
func (m *BiMap[L, R]) EraseLeftRange(first, last LeftIterator[L, R]) LeftIterator[L, R] {
	for first.Valid() && !first.Equal(last) {
		first = m.EraseLeft(first)
	}
	return first
}

// EraseRightRange removes the pairs in [first, last) of the right order and returns last.
// Time: O(k*D) for k removed pairs.
func (m *BiMap[L, R]) EraseRightRange(first, last RightIterator[L, R]) RightIterator[L, R] {
	for first.Valid() && !first.Equal(last) {
		first = m.EraseRight(first)
	}
	return first
}

// FindLeft returns the position of the pair whose left value is l, or EndLeft.
// Time: O(D)
func (m *BiMap[L, R]) FindLeft(l L) LeftIterator[L, R] {
	return LeftIterator[L, R]{m.c.left.Find(l), m.c}
}

// FindRight returns the position of the pair whose right value is r, or EndRight.
// Time: O(D)
func (m *BiMap[L, R]) FindRight(r R) RightIterator[L, R] {
	return RightIterator[L, R]{m.c.right.Find(r), m.c}
}

// GetLeft returns the right value paired with l.
func (m *BiMap[L, R]) GetLeft(l L) (R, bool) {
	if it := m.c.left.Find(l); it.Valid() {
		return it.Elem().right, true
	}
	return *new(R), false
}

// GetRight returns the left value paired with r.
func (m *BiMap[L, R]) GetRight(r R) (L, bool) {
	if it := m.c.right.Find(r); it.Valid() {
		return it.Elem().left, true
	}
	return *new(L), false
}

// AtLeft returns the right value paired with l. The error matches ErrKeyNotFound
// if l isn't present.
func (m *BiMap[L, R]) AtLeft(l L) (R, error) {
	if r, ok := m.GetLeft(l); ok {
		return r, nil
	}
	return *new(R), &KeyNotFoundError{Side: "left", Key: l}
}

// AtRight returns the left value paired with r. The error matches ErrKeyNotFound
// if r isn't present.
func (m *BiMap[L, R]) AtRight(r R) (L, error) {
	if l, ok := m.GetRight(r); ok {
		return l, nil
	}
	return *new(L), &KeyNotFoundError{Side: "right", Key: r}
}

// AtLeftOrDefault returns the right value paired with l. When l is absent, l ends up
// paired with the zero R: if some pair already has the zero R as its right value, its
// left value is replaced by l; otherwise (l, zero R) is inserted. Either way at most
// one pair holds the zero R.
// Time: O(D)
func (m *BiMap[L, R]) AtLeftOrDefault(l L) R {
	if it := m.c.left.Find(l); it.Valid() {
		return it.Elem().right
	}
	var zero R
	if it := m.c.right.Find(zero); it.Valid() {
		h := it.Handle()
		m.log.Debug("default reused", "side", "left", "from", it.Elem().left, "to", l)
		// the right tree is keyed by the unchanged zero value, only the left tree moves.
		m.c.left.Unlink(h)
		m.c.nodes.Get(h).left = l
		m.c.left.Insert(h)
		return zero
	}
	m.insert(l, zero)
	return zero
}

// AtRightOrDefault returns the left value paired with r. When r is absent, r ends up
// paired with the zero L: if some pair already has the zero L as its left value, its
// right value is replaced by r; otherwise (zero L, r) is inserted. Either way at most
// one pair holds the zero L.
// Time: O(D)
func (m *BiMap[L, R]) AtRightOrDefault(r R) L {
	if it := m.c.right.Find(r); it.Valid() {
		return it.Elem().left
	}
	var zero L
	if it := m.c.left.Find(zero); it.Valid() {
		h := it.Handle()
		m.log.Debug("default reused", "side", "right", "from", it.Elem().right, "to", r)
		m.c.right.Unlink(h)
		m.c.nodes.Get(h).right = r
		m.c.right.Insert(h)
		return zero
	}
	m.insert(zero, r)
	return zero
}

// LowerBoundLeft is the first left position whose value isn't less than l.
func (m *BiMap[L, R]) LowerBoundLeft(l L) LeftIterator[L, R] {
	return LeftIterator[L, R]{m.c.left.LowerBound(l), m.c}
}

// UpperBoundLeft is the first left position whose value is greater than l.
func (m *BiMap[L, R]) UpperBoundLeft(l L) LeftIterator[L, R] {
	return LeftIterator[L, R]{m.c.left.UpperBound(l), m.c}
}

// LowerBoundRight is the first right position whose value isn't less than r.
func (m *BiMap[L, R]) LowerBoundRight(r R) RightIterator[L, R] {
	return RightIterator[L, R]{m.c.right.LowerBound(r), m.c}
}

// UpperBoundRight is the first right position whose value is greater than r.
func (m *BiMap[L, R]) UpperBoundRight(r R) RightIterator[L, R] {
	return RightIterator[L, R]{m.c.right.UpperBound(r), m.c}
}

func (m *BiMap[L, R]) BeginLeft() LeftIterator[L, R] {
	return LeftIterator[L, R]{m.c.left.Begin(), m.c}
}

func (m *BiMap[L, R]) EndLeft() LeftIterator[L, R] {
	return LeftIterator[L, R]{m.c.left.End(), m.c}
}

func (m *BiMap[L, R]) BeginRight() RightIterator[L, R] {
	return RightIterator[L, R]{m.c.right.Begin(), m.c}
}

func (m *BiMap[L, R]) EndRight() RightIterator[L, R] {
	return RightIterator[L, R]{m.c.right.End(), m.c}
}

// AllLeft yields the pairs in left order. m must not be modified during the iteration.
func (m *BiMap[L, R]) AllLeft() iter.Seq2[L, R] {
	return func(yield func(L, R) bool) {
		for h := range m.c.left.All() {
			if n := m.c.nodes.Get(h); !yield(n.left, n.right) {
				return
			}
		}
	}
}

// AllRight yields the pairs in right order, right value first. m must not be
// modified during the iteration.
func (m *BiMap[L, R]) AllRight() iter.Seq2[R, L] {
	return func(yield func(R, L) bool) {
		for h := range m.c.right.All() {
			if n := m.c.nodes.Get(h); !yield(n.right, n.left) {
				return
			}
		}
	}
}

// Clear removes every pair. Every iterator of m is invalidated.
// Time: O(n)
func (m *BiMap[L, R]) Clear() {
	n := m.c.size
	m.c.left.Clear()
	m.c.right.Clear()
	m.c.nodes.Reset()
	m.c.size = 0
	m.log.Debug("cleared", "pairs", n)
}

// copyFrom inserts every pair of o in left order. m must be empty.
func (m *BiMap[L, R]) copyFrom(o *BiMap[L, R]) {
	for l, r := range o.AllLeft() {
		m.Insert(l, r)
	}
	m.log.Debug("copied", "pairs", m.c.size)
}

// Clone returns an independent BiMap with the pairs, orderings and logger of m.
// Time: O(n*D)
func (m *BiMap[L, R]) Clone() *BiMap[L, R] {
	n := &BiMap[L, R]{newCore(m.c.left.Less(), m.c.right.Less(), m.c.size), m.log}
	n.copyFrom(m)
	return n
}

// CopyFrom replaces the contents and orderings of m with copies of o's.
// Time: O(n*D)
func (m *BiMap[L, R]) CopyFrom(o *BiMap[L, R]) {
	if m == o {
		return
	}
	m.Clear()
	m.c = newCore(o.c.left.Less(), o.c.right.Less(), o.c.size)
	m.copyFrom(o)
}

// MoveFrom replaces the contents of m with those of o and leaves o empty. No pair is
// copied: iterators taken from o before the move keep addressing the same pairs,
// now owned by m. Iterators of m's previous contents are invalidated.
// Time: O(n) to drop m's previous contents.
func (m *BiMap[L, R]) MoveFrom(o *BiMap[L, R]) {
	if m == o {
		return
	}
	m.Clear()
	m.c, o.c = o.c, o.c.empty()
	m.log.Debug("moved", "pairs", m.c.size)
}

// Move returns a new BiMap holding the contents of m and leaves m empty, like MoveFrom.
func (m *BiMap[L, R]) Move() *BiMap[L, R] {
	n := &BiMap[L, R]{m.c, m.log}
	m.c = m.c.empty()
	n.log.Debug("moved", "pairs", n.c.size)
	return n
}

// Swap the contents of m and o. Iterators follow their pairs.
func (m *BiMap[L, R]) Swap(o *BiMap[L, R]) {
	m.c, o.c = o.c, m.c
}

// Corrupt reports whether either tree is broken or the two trees disagree about
// which pairs exist. It's meant for tests and debugging.
// Time: O(n*D)
func (m *BiMap[L, R]) Corrupt() bool {
	c := m.c
	if c.left.Corrupt() || c.right.Corrupt() || c.nodes.Len() != c.size {
		return true
	}
	nl, nr := 0, 0
	for h := range c.left.All() {
		if c.right.Find(c.nodes.Get(h).right).Handle() != h {
			return true
		}
		nl++
	}
	for range c.right.All() {
		nr++
	}
	return nl != c.size || nr != c.size
}

// Equal reports whether a and b hold the same pairs.
// Time: O(n)
func Equal[L, R comparable](a, b *BiMap[L, R]) bool {
	return EqualFunc(a, b, func(x, y L) bool { return x == y }, func(x, y R) bool { return x == y })
}

// EqualFunc is like Equal, comparing values with eqL and eqR. The pairs are compared
// in the left order of each map.
// Time: O(n)
func EqualFunc[L, R any](a, b *BiMap[L, R], eqL func(L, L) bool, eqR func(R, R) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for x, y := a.BeginLeft(), b.BeginLeft(); x.Valid(); x, y = x.next(), y.next() {
		if !eqL(x.Left(), y.Left()) || !eqR(x.Right(), y.Right()) {
			return false
		}
	}
	return true
}
