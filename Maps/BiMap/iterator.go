package BiMap

import "github.com/g-m-twostay/go-bimap/Trees/Intrusive"

// LeftIterator is a position in the left order of a BiMap. It stays valid until
// its own pair is erased or the map is cleared; inserting or erasing other pairs
// doesn't affect it. Reading through EndLeft returns zero values.
type LeftIterator[L, R any] struct {
	it Intrusive.Iterator[node[L, R], Intrusive.Left, L]
	c  *core[L, R]
}

// Next moves to the following left position. Next on EndLeft stays at EndLeft.
func (it *LeftIterator[L, R]) Next() { it.it.Next() }

// Prev moves to the preceding left position. Prev on EndLeft moves to the greatest
// left value.
func (it *LeftIterator[L, R]) Prev() { it.it.Prev() }

func (it LeftIterator[L, R]) next() LeftIterator[L, R] {
	it.it.Next()
	return it
}

// Valid reports whether it addresses a pair, i.e. isn't EndLeft.
func (it LeftIterator[L, R]) Valid() bool { return it.it.Valid() }

// Key is the left value, the one this side is ordered by.
func (it LeftIterator[L, R]) Key() L { return it.it.Elem().left }

// Value is the right value paired with Key.
func (it LeftIterator[L, R]) Value() R { return it.it.Elem().right }

func (it LeftIterator[L, R]) Left() L  { return it.it.Elem().left }
func (it LeftIterator[L, R]) Right() R { return it.it.Elem().right }

// Flip returns the right position of the same pair. Flipping EndLeft gives EndRight.
// Time: O(1)
func (it LeftIterator[L, R]) Flip() RightIterator[L, R] {
	return RightIterator[L, R]{it.c.right.IteratorAt(it.it.Handle()), it.c}
}

// Equal reports whether it and o are the same position.
func (it LeftIterator[L, R]) Equal(o LeftIterator[L, R]) bool { return it.it.Equal(o.it) }

// RightIterator is LeftIterator for the right order.
type RightIterator[L, R any] struct {
	it Intrusive.Iterator[node[L, R], Intrusive.Right, R]
	c  *core[L, R]
}

func (it *RightIterator[L, R]) Next() { it.it.Next() }
func (it *RightIterator[L, R]) Prev() { it.it.Prev() }

func (it RightIterator[L, R]) Valid() bool { return it.it.Valid() }

// Key is the right value, the one this side is ordered by.
func (it RightIterator[L, R]) Key() R { return it.it.Elem().right }

// Value is the left value paired with Key.
func (it RightIterator[L, R]) Value() L { return it.it.Elem().left }

func (it RightIterator[L, R]) Left() L  { return it.it.Elem().left }
func (it RightIterator[L, R]) Right() R { return it.it.Elem().right }

// Flip returns the left position of the same pair. Flipping EndRight gives EndLeft.
// Time: O(1)
func (it RightIterator[L, R]) Flip() LeftIterator[L, R] {
	return LeftIterator[L, R]{it.c.left.IteratorAt(it.it.Handle()), it.c}
}

func (it RightIterator[L, R]) Equal(o RightIterator[L, R]) bool { return it.it.Equal(o.it) }
