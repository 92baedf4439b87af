package set

import (
	"fmt"
	"iter"

	"github.com/gevorghari/jcabi/assert"
	"github.com/gevorghari/jcabi/compare"
	"github.com/gevorghari/jcabi/errors"
	"github.com/gevorghari/jcabi/zero"
)

// visitor defines the interface for tree traversal using the visitor pattern.
// Implementations should return true to continue traversal, false to stop.
type visitor[T any] interface {
	Visit(node *treeNode[T]) bool
}

// countingVisitor is a visitor implementation that counts the total number of nodes in the tree.
// It performs an in-order traversal and increments Count for each non-nil node visited.
type countingVisitor[T any] struct {
	Count int
}

// Visit performs an in-order traversal of the tree, incrementing the count for each node.
// It recursively visits the left subtree, increments the count, then visits the right subtree.
func (v *countingVisitor[T]) Visit(node *treeNode[T]) bool {
	if node == nil {
		return true
	}

	if !v.Visit(node.left) {
		return false
	}

	v.Count++

	return v.Visit(node.right)
}

// color represents the color of a node in the red-black tree.
// Red-black trees maintain balance by coloring nodes either red or black
// and enforcing specific color properties during insertions and deletions.
type color bool

// direction represents the relationship between a parent and child node (left, right, or none).
type direction byte

// String returns a human-readable representation of the node color.
func (c color) String() string {
	switch c {
	case true:
		return "Black"
	default:
		return "Red"
	}
}

// String returns a human-readable representation of the direction.
func (d direction) String() string {
	switch d {
	case left:
		return "left"
	case right:
		return "right"
	case nodir:
		return "center"
	default:
		return "not recognized"
	}
}

const (
	// black and red represent the two possible node colors in a red-black tree.
	// Black is represented as true for efficient nil checks (nil nodes are considered black).
	black, red color = true, false

	// left, right, and nodir represent the directional relationship between nodes.
	// nodir is used when there is no directional relationship (e.g., for the root node).
	left direction = iota
	right
	nodir
)

// treeNode represents a single node in the red-black tree.
// Each node contains an element, color, and pointers to its parent and children.
type treeNode[T any] struct {
	key    T
	color  color
	left   *treeNode[T]
	right  *treeNode[T]
	parent *treeNode[T]
}

// String returns a string representation of the node showing its key and color.
func (n *treeNode[T]) String() string {
	return fmt.Sprintf("(%#v : %s)", n.key, n.color)
}

// TreeSet is a mutable Set implementation backed by a red-black tree and
// ordered by a comparator. Element identity inside the tree is order-equality
// under the comparator: two elements comparing to zero occupy the same slot,
// and a comparator that never returns zero (such as compare.Neutral) makes
// every insertion land in a fresh slot.
//
// Red-black trees are self-balancing binary search trees that maintain the following properties:
//  1. Every node is either red or black.
//  2. The root is black.
//  3. All leaves (nil) are black.
//  4. If a node is red, then both its children are black (no two red nodes in a row).
//  5. Every path from a node to its descendant nil nodes contains the same number of black nodes.
//
// These properties ensure the tree remains approximately balanced, guaranteeing O(log n)
// time complexity for insertions, deletions, and lookups.
//
// The implementation follows the algorithms from "Introduction to Algorithms" (CLRS).
type TreeSet[T any] struct {
	root *treeNode[T]
	cmp  compare.Func[T]
}

var (
	_ Set[int]    = (*TreeSet[int])(nil)
	_ Sorted[int] = (*TreeSet[int])(nil)
)

// NewTreeSet creates a new empty tree set ordered by the given comparator.
// A nil comparator is a precondition violation.
func NewTreeSet[T any](cmp compare.Func[T]) *TreeSet[T] {
	assert.False(cmp == nil, "set: tree set needs a comparator")

	return &TreeSet[T]{cmp: cmp}
}

// Comparator returns the ordering the tree set was created with.
func (t *TreeSet[T]) Comparator() compare.Func[T] {
	return t.cmp
}

// AddAll adds multiple elements to the set, in argument order.
func (t *TreeSet[T]) AddAll(elements ...T) error {
	for _, element := range elements {
		if err := t.Add(element); err != nil {
			return err
		}
	}

	return nil
}

// Add inserts a new element into the set.
// If an order-equal element already exists, the set remains unchanged and
// the existing element is retained.
// After insertion, the tree is rebalanced using fixupPut to maintain red-black properties.
// Time complexity: O(log n).
func (t *TreeSet[T]) Add(element T) error {
	if t.root == nil {
		t.root = &treeNode[T]{key: element, color: black}

		return nil
	}

	found, parent, dir := t.internalLookup(nil, t.root, element, nodir)
	if found {
		return nil
	}

	if parent != nil {
		newNode := &treeNode[T]{key: element, parent: parent}

		switch dir {
		case left:
			parent.left = newNode
		case right:
			parent.right = newNode
		case nodir:
		}

		t.fixupPut(newNode)
	}

	return nil
}

// Remove deletes the element order-equal to the given one from the set.
// If no such element exists, the set remains unchanged.
// After deletion, the tree is rebalanced using fixupDelete to maintain red-black properties.
// Time complexity: O(log n)
//
// The algorithm follows CLRS chapter 13:
//  1. Find the node to delete (z)
//  2. Identify the node that will be moved or removed (y)
//  3. Track y's original color and the node that takes y's place (x)
//  4. Perform the deletion using transplant operations
//  5. If a black node was removed, rebalance the tree with fixupDelete
func (t *TreeSet[T]) Remove(element T) error {
	z, found := t.getNode(element) //nolint:varnamelen // Standard red-black tree variable names from CLRS
	if !found {
		return nil
	}

	y := z //nolint:varnamelen // Standard red-black tree variable names from CLRS
	yOriginalColor := y.color

	var x *treeNode[T] //nolint:varnamelen // Standard red-black tree variable names from CLRS

	switch {
	case z.left == nil:
		x = z.right
		t.transplant(z, z.right)
	case z.right == nil:
		x = z.left
		t.transplant(z, z.left)
	default:
		y = t.getMinimum(z.right)
		yOriginalColor = y.color
		x = y.right

		if y.parent == z {
			if x != nil {
				x.parent = y
			}
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}

		t.transplant(z, y)

		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yOriginalColor == black {
		t.fixupDelete(x)
	}

	return nil
}

// RemoveAll removes every element order-equal to one of the given elements.
func (t *TreeSet[T]) RemoveAll(elements ...T) error {
	for _, element := range elements {
		if err := t.Remove(element); err != nil {
			return err
		}
	}

	return nil
}

// RetainAll removes every element that is not order-equal to one of the
// given elements.
func (t *TreeSet[T]) RetainAll(elements ...T) error {
	keep := NewTreeSet[T](t.cmp)
	if err := keep.AddAll(elements...); err != nil {
		return err
	}

	for _, element := range t.Entries() {
		found, err := keep.Contains(element)
		if err != nil {
			return err
		}

		if !found {
			if err := t.Remove(element); err != nil {
				return err
			}
		}
	}

	return nil
}

// Clear removes all elements from the set by setting the root to nil.
// Time complexity: O(1).
func (t *TreeSet[T]) Clear() error {
	t.root = nil

	return nil
}

// Contains checks if an element order-equal to the given one exists in the set.
// Time complexity: O(log n).
func (t *TreeSet[T]) Contains(element T) (bool, error) {
	found, _, _ := t.internalLookup(nil, t.root, element, nodir)

	return found, nil
}

// Size returns the number of elements in the set.
// It performs a full tree traversal using a counting visitor.
// Time complexity: O(n).
func (t *TreeSet[T]) Size() int {
	vis := &countingVisitor[T]{}
	t.walk(vis)

	return vis.Count
}

// IsEmpty reports whether the set has no elements.
func (t *TreeSet[T]) IsEmpty() bool {
	return t.root == nil
}

// Entries returns all elements in the set as a slice, in sorted order.
// Time complexity: O(n).
func (t *TreeSet[T]) Entries() []T {
	num := t.Size()

	if num == 0 {
		return nil
	}

	entries := make([]T, 0, num)

	for k := range t.Seq() {
		entries = append(entries, k)
	}

	return entries
}

// First returns the smallest element by sort order.
// Returns errors.ErrNoSuchElement when the set is empty.
func (t *TreeSet[T]) First() (T, error) {
	if t.root == nil {
		return zero.Value[T](), fmt.Errorf("%w: tree set is empty", errors.ErrNoSuchElement)
	}

	return t.getMinimum(t.root).key, nil
}

// Last returns the largest element by sort order.
// Returns errors.ErrNoSuchElement when the set is empty.
func (t *TreeSet[T]) Last() (T, error) {
	if t.root == nil {
		return zero.Value[T](), fmt.Errorf("%w: tree set is empty", errors.ErrNoSuchElement)
	}

	node := t.root
	for node.right != nil {
		node = node.right
	}

	return node.key, nil
}

// seqVisitor is a visitor implementation that yields elements to an iterator function.
// It enables range-over-func iteration support.
type seqVisitor[T any] struct {
	yield func(T) bool
}

// Visit performs an in-order traversal, yielding each element to the iterator function.
// Traversal stops early if the yield function returns false.
func (s *seqVisitor[T]) Visit(node *treeNode[T]) bool {
	if node == nil {
		return true
	}

	if !s.Visit(node.left) {
		return false
	}

	if !s.yield(node.key) {
		return false
	}

	return s.Visit(node.right)
}

// Seq returns an iterator that yields elements in sorted order (in-order traversal).
// This enables range-over-func syntax: for element := range set.Seq() { ... }
// Time complexity: O(n) to iterate all elements.
func (t *TreeSet[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		visit := &seqVisitor[T]{yield: yield}

		t.walk(visit)
	}
}

// walk performs a traversal of the tree using the provided visitor.
// The visitor controls the traversal order and termination.
func (t *TreeSet[T]) walk(visitor visitor[T]) {
	visitor.Visit(t.root)
}

// internalLookup recursively searches for an order-equal element in the tree.
// Returns:
//   - bool: true if an order-equal element was found, false otherwise
//   - *treeNode[T]: the parent of the found/insertion node
//   - direction: the direction from parent to the found/insertion node
//
// This is the core search algorithm used by Add, Remove, and Contains.
func (t *TreeSet[T]) internalLookup(
	parent *treeNode[T], this *treeNode[T], key T, dir direction,
) (bool, *treeNode[T], direction) {
	if this == nil {
		return false, parent, dir
	}

	switch ordering := t.cmp(key, this.key); {
	case ordering == 0:
		return true, parent, dir
	case ordering < 0:
		return t.internalLookup(this, this.left, key, left)
	default:
		return t.internalLookup(this, this.right, key, right)
	}
}

// getParent finds the parent node for a given element.
// Returns the same values as internalLookup.
func (t *TreeSet[T]) getParent(key T) (found bool, parent *treeNode[T], dir direction) {
	if t.root == nil {
		return false, nil, nodir
	}

	return t.internalLookup(nil, t.root, key, nodir)
}

// getNode retrieves the node holding an element order-equal to the given one.
// Returns the node and true if found, nil and false otherwise.
func (t *TreeSet[T]) getNode(key T) (*treeNode[T], bool) {
	found, parent, dir := t.getParent(key)
	if found {
		if parent == nil {
			return t.root, true
		}

		var node *treeNode[T]

		switch dir {
		case left:
			node = parent.left
		case right:
			node = parent.right
		case nodir:
			node = nil
		}

		if node != nil {
			return node, true
		}
	}

	return nil, false
}

// rotateRight performs a right rotation around node y.
//
// Before:        y              After:         x
//
//	   / \                           / \
//	  x   c                         a   y
//	 / \              =>               / \
//	a   b                            b   c
//
// This operation maintains the binary search tree property while restructuring
// the tree for rebalancing. Used during insertion and deletion fixup.
//
//nolint:varnamelen,dupword // Standard red-black tree variable names; ASCII diagram
func (t *TreeSet[T]) rotateRight(y *treeNode[T]) {
	if y == nil {
		return
	}

	if y.left == nil {
		return
	}

	x := y.left //nolint:varnamelen // Standard red-black tree variable names from CLRS
	y.left = x.right

	if x.right != nil {
		x.right.parent = y
	}

	x.parent = y.parent

	if y.parent == nil {
		t.root = x
	} else {
		if y == y.parent.left {
			y.parent.left = x
		} else {
			y.parent.right = x
		}
	}

	x.right = y
	y.parent = x
}

// rotateLeft performs a left rotation around node x.
//
// Before:                       After:
//
//	  x                             y
//	 / \                           / \
//	a   y                         x   c
//	   / \            =>         / \
//	  b   c                     a   b
//
// This operation maintains the binary search tree property while restructuring
// the tree for rebalancing. Used during insertion and deletion fixup.
//
// nolint:varnamelen // Standard red-black tree variable names
func (t *TreeSet[T]) rotateLeft(x *treeNode[T]) {
	if x == nil {
		return
	}

	if x.right == nil {
		return
	}

	y := x.right //nolint:varnamelen // Standard red-black tree variable names from CLRS
	x.right = y.left

	if y.left != nil {
		y.left.parent = x
	}

	y.parent = x.parent

	if x.parent == nil {
		t.root = y
	} else {
		if x == x.parent.left {
			x.parent.left = y
		} else {
			x.parent.right = y
		}
	}

	y.left = x
	x.parent = y
}

// transplant replaces subtree rooted at u with subtree rooted at v.
// This is a helper function used during deletion to replace nodes in the tree.
// The parent pointers are updated, but v's children are not modified.
func (t *TreeSet[T]) transplant(u *treeNode[T], v *treeNode[T]) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}

	if v != nil {
		v.parent = u.parent
	}
}

// fixupPut restores red-black tree properties after insertion.
//
// After a standard BST insertion (where new nodes are colored red), the tree may violate
// red-black property #4 (no two consecutive red nodes). This method fixes violations by
// recoloring nodes and performing rotations.
//
// The algorithm handles three cases based on the color of the uncle node (y):
//
//	Case 1: Uncle is red → Recolor parent, uncle, and grandparent
//	Case 2: Uncle is black and z is a "middle child" → Rotate to convert to Case 3
//	Case 3: Uncle is black and z is an "outer child" → Rotate and recolor
//
// The loop terminates when z's parent is black or z becomes the root.
// Finally, the root is always colored black to maintain property #2.
//
// nolint:varnamelen // Standard red-black tree variable names
func (t *TreeSet[T]) fixupPut(z *treeNode[T]) {
loop:
	for {
		switch {
		case z.parent == nil:
			fallthrough
		case z.parent.color == black:
			// When the loop terminates, it does so because p[z] is black.
			break loop
		case z.parent.color == red:
			grandparent := z.parent.parent
			if z.parent == grandparent.left { //nolint:nestif // Red-black tree algorithm complexity
				y := grandparent.right
				if isRed(y) {
					z.parent.color = black
					y.color = black
					grandparent.color = red
					z = grandparent
				} else {
					if z == z.parent.right {
						z = z.parent
						t.rotateLeft(z)
					}

					z.parent.color = black
					grandparent.color = red
					t.rotateRight(grandparent)
				}
			} else {
				y := grandparent.left
				if isRed(y) {
					// case 1 - y is RED
					z.parent.color = black
					y.color = black
					grandparent.color = red
					z = grandparent
				} else {
					if z == z.parent.left {
						z = z.parent
						t.rotateRight(z)
					}

					z.parent.color = black
					grandparent.color = red
					t.rotateLeft(grandparent)
				}
			}
		}
	}

	t.root.color = black
}

// fixupDelete restores red-black tree properties after deletion.
//
// After a standard BST deletion, if a black node was removed, the tree may violate
// red-black property #5 (equal black height on all paths). This method fixes violations
// by recoloring nodes and performing rotations.
//
// The algorithm maintains an "extra black" on node x and pushes it up the tree until:
//   - x becomes the root (extra black can be removed)
//   - x is red (color it black to absorb the extra black)
//
// For each iteration, there are four symmetric cases based on x's sibling (w):
//
//	Case 1: Sibling w is red → Convert to Case 2, 3, or 4 by rotating and recoloring
//	Case 2: Sibling w is black with two black children → Push black up the tree
//	Case 3: Sibling w is black with red far child and black near child → Convert to Case 4
//	Case 4: Sibling w is black with red near child → Rotate, recolor, and terminate
//
// The implementation handles both left and right symmetric cases.
//
// nolint:varnamelen,dupl // Standard red-black tree variable names; symmetric cases
func (t *TreeSet[T]) fixupDelete(x *treeNode[T]) {
	if x == nil {
		return
	}

loop:
	for {
		switch {
		case x == t.root:
			break loop
		case x.color == red:
			break loop
		case x == x.parent.right:
			w := x.parent.left //nolint:varnamelen // Standard red-black tree variable names
			if isRed(w) {
				w.color = black
				x.parent.color = red
				t.rotateRight(x.parent)
				w = x.parent.left
			}
			if w != nil {
				switch {
				case !isRed(w.left) && !isRed(w.right):
					w.color = red
					x = x.parent // recurse up tree
				case isRed(w.right) && !isRed(w.left):
					w.right.color = black
					w.color = red
					t.rotateLeft(w)
					w = x.parent.left
				}
				if isRed(w.left) {
					w.color = x.parent.color
					x.parent.color = black
					w.left.color = black
					t.rotateRight(x.parent)
					x = t.root
				}
			}
		case x == x.parent.left:
			w := x.parent.right //nolint:varnamelen // Standard red-black tree variable names from CLRS
			if isRed(w) {
				w.color = black
				x.parent.color = red
				t.rotateLeft(x.parent)
				w = x.parent.right
			}
			if w != nil {
				switch {
				case !isRed(w.left) && !isRed(w.right):
					w.color = red
					x = x.parent // recurse up tree
				case isRed(w.left) && !isRed(w.right):
					w.left.color = black
					w.color = red
					t.rotateRight(w)
					w = x.parent.right
				}
				if isRed(w.right) {
					w.color = x.parent.color
					x.parent.color = black
					w.right.color = black
					t.rotateLeft(x.parent)
					x = t.root
				}
			}
		}
	}

	x.color = black
}

// isRed checks if a node is red.
// Nil nodes are considered black (following red-black tree convention).
func isRed[T any](n *treeNode[T]) bool {
	if n == nil {
		return false
	}

	return n.color == red
}

// getMinimum finds the node with the smallest key in the subtree rooted at x.
// This is always the leftmost node in the subtree.
// Used during deletion to find the in-order successor.
func (t *TreeSet[T]) getMinimum(x *treeNode[T]) *treeNode[T] {
	for {
		if x.left != nil {
			x = x.left
		} else {
			return x
		}
	}
}
