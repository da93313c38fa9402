package trie

// Alphabet is the number of child slots of every node.
const Alphabet = 26

// Node is a single position in the trie. The path from the root to a node
// spells a prefix; count is how many times exactly that prefix was inserted
// as a whole word.
type Node struct {
	children [Alphabet]*Node
	count    int
}

// slot maps a letter to its child index, ok is false outside 'a'..'z'.
func slot(letter byte) (index int, ok bool) {
	if letter < 'a' || letter > 'z' {
		return 0, false
	}
	return int(letter - 'a'), true
}

// Child returns the child reached through letter, or nil when the slot is
// empty or letter is not a lowercase ASCII letter.
func (n *Node) Child(letter byte) *Node {
	index, ok := slot(letter)
	if !ok {
		return nil
	}
	return n.children[index]
}

// attachChild returns the child at index, creating it if the slot is empty.
// The new node is fully built before it is linked to its parent.
func (n *Node) attachChild(index int) (child *Node, created bool) {
	if n.children[index] != nil {
		return n.children[index], false
	}
	child = &Node{}
	n.children[index] = child
	return child, true
}

// Count returns how many times the word ending at this node was inserted.
func (n *Node) Count() int {
	return n.count
}

// IsTerminal reports whether at least one word ends at this node.
func (n *Node) IsTerminal() bool {
	return n.count > 0
}

// checks if the node has no children.
func (n *Node) IsLeaf() bool {
	for _, child := range n.children {
		if child != nil {
			return false
		}
	}
	return true
}

// applies a function to each non-nil child in alphabetical order.
// will return the original node n
func (n *Node) ForEachChild(f func(letter byte, child *Node)) *Node {
	for i, child := range n.children {
		if child != nil {
			f(byte('a'+i), child)
		}
	}
	return n
}
