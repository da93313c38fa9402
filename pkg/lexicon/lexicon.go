package lexicon

import (
	"fmt"
	"log/slog"

	"github.com/khalid-nowaf/wordtrie/pkg/trie"
)

// Lexicon owns a word trie and applies a load policy on top of it. It is the
// piece a dictionary loader talks to: words go in through Load, counts come
// out through Query.
type Lexicon struct {
	words  *trie.Trie
	policy Policy
	logger *slog.Logger
}

// New creates an empty lexicon.
//
// Parameters:
//   - opts: options applied in order over DefaultOptions.
//
// Returns:
//   - A pointer to a lexicon backed by a freshly created trie.
func New(opts ...Option) *Lexicon {
	l := DefaultOptions()
	for _, opt := range opts {
		l = opt(l)
	}
	return l
}

// Load inserts words into the trie in the order given.
//
// Parameters:
//   - words: the ordered dictionary sequence.
//
// Returns:
//   - A LoadResult with how many words went in and which were rejected.
//   - Under Abort, the first rejection wrapped with its position. The result
//     still counts the words inserted before it.
func (l *Lexicon) Load(words []string) (*LoadResult, error) {
	result := &LoadResult{}
	for i, word := range words {
		err := l.words.Insert(word)
		if err == nil {
			result.Inserted++
			continue
		}
		if l.policy == Abort {
			return result, fmt.Errorf("word #%d: %w", i, err)
		}
		l.logger.Warn("skipping dictionary word", "index", i, "word", word, "error", err)
		result.Skipped++
		result.Rejected = append(result.Rejected, Rejection{Index: i, Word: word, Err: err})
	}
	l.logger.Debug("dictionary loaded",
		"inserted", result.Inserted,
		"skipped", result.Skipped,
		"distinct", l.words.Distinct(),
		"nodes", l.words.Size())
	return result, nil
}

// Occurrences returns how many times word was loaded.
func (l *Lexicon) Occurrences(word string) int {
	return l.words.Occurrences(word)
}

// Query looks up every word and returns the counts in the order asked.
func (l *Lexicon) Query(words ...string) []QueryResult {
	results := make([]QueryResult, 0, len(words))
	for _, word := range words {
		results = append(results, QueryResult{Word: word, Count: l.words.Occurrences(word)})
	}
	return results
}

// Trie exposes the underlying trie for read access.
func (l *Lexicon) Trie() *trie.Trie {
	return l.words
}

// Policy returns the load policy in effect.
func (l *Lexicon) Policy() Policy {
	return l.policy
}

// Close destroys the trie. It is safe to call more than once.
func (l *Lexicon) Close() {
	if l.words.IsDestroyed() {
		return
	}
	l.logger.Debug("destroying trie", "nodes", l.words.Size())
	l.words.Destroy()
}
