package lexicon

import (
	"fmt"
	"strings"
)

// Rejection records a dictionary word that could not be inserted.
type Rejection struct {
	Index int    // position of the word in the loaded sequence
	Word  string // the word as read
	Err   error  // why the trie refused it
}

func (r Rejection) String() string {
	return fmt.Sprintf("#%d %q: %v", r.Index, r.Word, r.Err)
}

// records the outcome of loading a word sequence for reporting
type LoadResult struct {
	Inserted int         // words added to the trie, duplicates included
	Skipped  int         // words rejected under the Skip policy
	Rejected []Rejection // one entry per skipped word
}

func (lr *LoadResult) String() string {
	str := fmt.Sprintf("Inserted: %d, Skipped: %d", lr.Inserted, lr.Skipped)
	if len(lr.Rejected) == 0 {
		return str
	}
	rejected := make([]string, 0, len(lr.Rejected))
	for _, r := range lr.Rejected {
		rejected = append(rejected, r.String())
	}
	return str + " | Rejected: [" + strings.Join(rejected, ", ") + "]"
}

// QueryResult is the occurrence count of one queried word.
type QueryResult struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

func (qr QueryResult) String() string {
	return fmt.Sprintf("\t%s : %d", qr.Word, qr.Count)
}
