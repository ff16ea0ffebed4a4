package BiMap

import (
	"github.com/g-m-twostay/go-bimap/Trees/Intrusive"
)

// node is the single allocation behind one pair. It sits in the left tree through
// leftLink and in the right tree through rightLink; both trees address it with the
// same Handle, which is what makes flipping between sides a plain handle copy.
type node[L, R any] struct {
	leftLink, rightLink Intrusive.Link
	left                L
	right               R
}

func leftSide[L, R any]() Intrusive.Projection[node[L, R], L] {
	return Intrusive.Projection[node[L, R], L]{
		Link: func(n *node[L, R]) *Intrusive.Link { return &n.leftLink },
		Key:  func(n *node[L, R]) L { return n.left },
	}
}

func rightSide[L, R any]() Intrusive.Projection[node[L, R], R] {
	return Intrusive.Projection[node[L, R], R]{
		Link: func(n *node[L, R]) *Intrusive.Link { return &n.rightLink },
		Key:  func(n *node[L, R]) R { return n.right },
	}
}
