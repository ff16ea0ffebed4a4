package Intrusive

import (
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// Left and Right tag the tree a Link, key or comparator belongs to. They carry no
// data; two trees over the same element type are distinct types when their tags differ.
type (
	Left  struct{}
	Right struct{}
)

// Side is satisfied by the tags only.
type Side interface {
	Left | Right
}

// LessFunc reports whether a sorts strictly before b. Two keys are equal when
// neither is less than the other.
type LessFunc[K any] func(a, b K) bool

// Ordered is the natural ordering of K.
func Ordered[K constraints.Ordered]() LessFunc[K] {
	return func(a, b K) bool {
		return a < b
	}
}

// FromComparator adapts a gods three-way comparator. c receives K values boxed as interface{}.
func FromComparator[K any](c utils.Comparator) LessFunc[K] {
	return func(a, b K) bool {
		return c(a, b) < 0
	}
}

// Projection selects the Link and key an element uses in one tree.
type Projection[E, K any] struct {
	Link func(*E) *Link
	Key  func(*E) K
}
