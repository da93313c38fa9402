package trie

import (
	"strconv"
	"strings"
)

// Trie is a rooted prefix tree. The zero value is not usable, create one
// with New.
type Trie struct {
	root     *Node
	words    int // total successful inserts
	distinct int // nodes with a non-zero count
	nodes    int // allocated nodes, root included
}

// New creates an empty trie: a root with every slot absent and count 0.
func New() *Trie {
	return &Trie{
		root:  &Node{},
		nodes: 1,
	}
}

// Validate checks that word can be inserted: it must be non-empty and made
// only of the bytes 'a'..'z'. The returned error wraps ErrEmptyWord or
// ErrInvalidCharacter.
func Validate(word string) error {
	if len(word) == 0 {
		return ErrEmptyWord
	}
	for i := 0; i < len(word); i++ {
		if _, ok := slot(word[i]); !ok {
			return &CharacterError{Word: word, Offset: i, Char: word[i]}
		}
	}
	return nil
}

// Insert adds one occurrence of word, allocating the nodes of any prefix
// seen for the first time. The word is validated before the trie is
// touched, so a failed insert leaves no partial path behind.
func (t *Trie) Insert(word string) error {
	if t.root == nil {
		return ErrDestroyed
	}
	if err := Validate(word); err != nil {
		return err
	}

	current := t.root
	for i := 0; i < len(word); i++ {
		index, _ := slot(word[i])
		next, created := current.attachChild(index)
		if created {
			t.nodes++
		}
		current = next
	}

	if current.count == 0 {
		t.distinct++
	}
	current.count++
	t.words++
	return nil
}

// InsertAll inserts words in order and stops at the first failure. Words
// before the failing one stay inserted.
func (t *Trie) InsertAll(words ...string) error {
	for _, word := range words {
		if err := t.Insert(word); err != nil {
			return err
		}
	}
	return nil
}

// Occurrences returns how many times exactly word was inserted. Missing
// paths, prefixes of inserted words, invalid words and a destroyed trie all
// yield 0.
func (t *Trie) Occurrences(word string) int {
	node := t.find(word)
	if node == nil {
		return 0
	}
	return node.count
}

// find follows word from the root and returns the last node, or nil.
func (t *Trie) find(word string) *Node {
	if t.root == nil || len(word) == 0 {
		return nil
	}
	current := t.root
	for i := 0; i < len(word); i++ {
		current = current.Child(word[i])
		if current == nil {
			return nil
		}
	}
	return current
}

// Destroy releases every node. Nodes are detached post-order with an
// explicit stack, so arbitrarily long words cannot exhaust the goroutine
// stack. Calling Destroy again is a no-op; afterwards Insert returns
// ErrDestroyed and Occurrences returns 0.
func (t *Trie) Destroy() {
	if t.root == nil {
		return
	}

	type frame struct {
		node *Node
		next int // next child slot to visit
	}
	stack := []frame{{node: t.root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < Alphabet {
			index := top.next
			top.next++
			if child := top.node.children[index]; child != nil {
				stack = append(stack, frame{node: child})
			}
			continue
		}
		// every child of top is released, detach it from its parent
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			parent.node.children[parent.next-1] = nil
		}
		top.node.count = 0
	}

	t.root = nil
	t.words, t.distinct, t.nodes = 0, 0, 0
}

// IsDestroyed reports whether Destroy has been called.
func (t *Trie) IsDestroyed() bool {
	return t.root == nil
}

// Root returns the root node, nil after Destroy.
func (t *Trie) Root() *Node {
	return t.root
}

// Len returns the number of successful inserts, duplicates included.
func (t *Trie) Len() int {
	return t.words
}

// Distinct returns the number of different words inserted.
func (t *Trie) Distinct() int {
	return t.distinct
}

// Size returns the number of allocated nodes, root included.
func (t *Trie) Size() int {
	return t.nodes
}

// Walk calls fn for every distinct word in lexicographic order, a word
// before its extensions. Returning false from fn stops the walk.
func (t *Trie) Walk(fn func(word string, count int) bool) {
	if t.root == nil {
		return
	}
	var path []byte
	t.root.walk(&path, fn)
}

// walk is the recursive helper of Walk, it returns false once fn asked to
// stop.
func (n *Node) walk(path *[]byte, fn func(word string, count int) bool) bool {
	if n.count > 0 && !fn(string(*path), n.count) {
		return false
	}
	for i, child := range n.children {
		if child == nil {
			continue
		}
		*path = append(*path, byte('a'+i))
		more := child.walk(path, fn)
		*path = (*path)[:len(*path)-1]
		if !more {
			return false
		}
	}
	return true
}

// Words returns every distinct word once, sorted.
func (t *Trie) Words() []string {
	words := make([]string, 0, t.distinct)
	t.Walk(func(word string, _ int) bool {
		words = append(words, word)
		return true
	})
	return words
}

// String renders the trie as "word:count" pairs, mostly for debugging.
func (t *Trie) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	t.Walk(func(word string, count int) bool {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(word)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(count))
		return true
	})
	b.WriteByte(']')
	return b.String()
}
