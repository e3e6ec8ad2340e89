package Trees

import (
	"fmt"
	"io"
	"strings"
)

// margin added per level of depth by the pre and post order printers.
const indentStep = 3

// PrintInOrder writes one "[ v ]" line per element in ascending order.
func (u *AVLTree[T]) PrintInOrder(w io.Writer) {
	var print func(nodePtr[T])
	print = func(c nodePtr[T]) {
		if c == nil {
			return
		}
		print(c.l)
		fmt.Fprintf(w, "[ %v ]\n", c.v)
		print(c.r)
	}
	print(u.root)
}

// PrintPreOrder writes the tree in preorder, each line indented by dashes in
// proportion to the depth of the node. Missing children are written as nil.
func (u *AVLTree[T]) PrintPreOrder(w io.Writer) {
	var print func(nodePtr[T], int)
	print = func(c nodePtr[T], d int) {
		pad := strings.Repeat("-", d)
		if c == nil {
			fmt.Fprintf(w, "%s nil\n", pad)
			return
		}
		fmt.Fprintf(w, "%s[ %v ]\n", pad, c.v)
		print(c.l, d+indentStep)
		print(c.r, d+indentStep)
	}
	print(u.root, 0)
}

// PrintPostOrder is PrintPreOrder with every node written after its children.
func (u *AVLTree[T]) PrintPostOrder(w io.Writer) {
	var print func(nodePtr[T], int)
	print = func(c nodePtr[T], d int) {
		pad := strings.Repeat("-", d)
		if c == nil {
			fmt.Fprintf(w, "%s nil\n", pad)
			return
		}
		print(c.l, d+indentStep)
		print(c.r, d+indentStep)
		fmt.Fprintf(w, "%s[ %v ]\n", pad, c.v)
	}
	print(u.root, 0)
}
