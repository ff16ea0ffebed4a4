package Intrusive

// Link is embedded into elements to make them members of one tree. An element
// that belongs to several trees embeds one Link per tree.
// The zero value is a detached link.
type Link struct {
	parent, left, right Handle
}

// Resolver maps a handle to the Link it embeds for one particular tree.
// Resolving Nil must return a link with no relations.
type Resolver func(Handle) *Link

func (l *Link) Parent() Handle { return l.parent }
func (l *Link) Left() Handle   { return l.left }
func (l *Link) Right() Handle  { return l.right }

// IsDetached reports whether l has no parent and no children.
func (l *Link) IsDetached() bool {
	return l.parent == Nil && l.left == Nil && l.right == Nil
}

// AttachLeft makes child the left child of parent. No-op if parent is Nil.
func AttachLeft(r Resolver, parent, child Handle) {
	if parent != Nil {
		r(parent).left = child
		if child != Nil {
			r(child).parent = parent
		}
	}
}

// AttachRight makes child the right child of parent. No-op if parent is Nil.
func AttachRight(r Resolver, parent, child Handle) {
	if parent != Nil {
		r(parent).right = child
		if child != Nil {
			r(child).parent = parent
		}
	}
}

// Min of the subtree rooted at h. h must not be Nil.
// Time: O(D)
func Min(r Resolver, h Handle) Handle {
	for l := r(h).left; l != Nil; l = r(h).left {
		h = l
	}
	return h
}

// Max of the subtree rooted at h. h must not be Nil.
// Time: O(D)
func Max(r Resolver, h Handle) Handle {
	for rc := r(h).right; rc != Nil; rc = r(h).right {
		h = rc
	}
	return h
}

// Successor of h in in-order traversal, Nil if h is the maximum.
// Time: O(D), amortized O(1) over a full traversal.
func Successor(r Resolver, h Handle) Handle {
	if rc := r(h).right; rc != Nil {
		return Min(r, rc)
	}
	for {
		p := r(h).parent
		if p == Nil || r(p).left == h {
			return p
		}
		h = p
	}
}

// Predecessor of h in in-order traversal, Nil if h is the minimum.
// Time: O(D), amortized O(1) over a full traversal.
func Predecessor(r Resolver, h Handle) Handle {
	if lc := r(h).left; lc != Nil {
		return Max(r, lc)
	}
	for {
		p := r(h).parent
		if p == Nil || r(p).right == h {
			return p
		}
		h = p
	}
}

// replace puts n into the slot of h's parent, or makes n the root when h has no parent.
func replace(r Resolver, root *Handle, h, n Handle) {
	if p := r(h).parent; p == Nil {
		*root = n
		if n != Nil {
			r(n).parent = Nil
		}
	} else if r(p).left == h {
		AttachLeft(r, p, n)
	} else {
		AttachRight(r, p, n)
	}
}

// Detach removes h from the tree whose root handle is *root. Other elements are
// never copied or moved: when h has two children its successor is spliced into
// the position h occupied. h is left detached.
// Detaching an already detached element that isn't the root is a no-op.
// Time: O(D)
func Detach(r Resolver, root *Handle, h Handle) {
	l := r(h)
	if l.IsDetached() && *root != h {
		return
	}
	if l.left == Nil || l.right == Nil {
		c := l.left
		if c == Nil {
			c = l.right
		}
		replace(r, root, h, c)
	} else {
		s := Min(r, l.right) // has no left child.
		Detach(r, root, s)
		AttachLeft(r, s, l.left)
		AttachRight(r, s, l.right)
		replace(r, root, h, s)
	}
	*l = Link{}
}
