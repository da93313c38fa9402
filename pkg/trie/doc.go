// ## Overview
// Package trie implements a 26-ary prefix tree over lowercase ASCII words.
// Every node owns one slot per letter 'a'..'z' and an occurrence count, so
// inserting the same word several times accumulates instead of flagging.
// Nodes are allocated lazily, the first time a prefix is traversed.
//
// ## Example usage:
//
//	t := trie.New()
//	if err := t.InsertAll("note", "ucf", "no"); err != nil {
//	    return err
//	}
//	fmt.Println(t.Occurrences("no"))   // 1
//	fmt.Println(t.Occurrences("not"))  // 0, internal node
//	fmt.Println(t.Occurrences("NOTE")) // 0, not a valid word
//	t.Destroy()
//
// Insert is strict and Occurrences is tolerant: a word that fails Validate
// can never have been inserted, so looking it up reports 0 instead of an
// error. A Trie is not safe for concurrent use; callers that share one must
// hold a write lock around Insert and Destroy.
package trie
