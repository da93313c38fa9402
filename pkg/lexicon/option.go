package lexicon

import (
	"log/slog"

	"github.com/khalid-nowaf/wordtrie/pkg/trie"
)

type Option func(*Lexicon) *Lexicon

// Policy decides what Load does with a word the trie rejects.
type Policy int

const (
	// Abort stops the load at the first rejected word and returns its error.
	Abort Policy = iota
	// Skip logs the rejected word, records it in the LoadResult and goes on.
	Skip
)

func (p Policy) String() string {
	switch p {
	case Abort:
		return "abort"
	case Skip:
		return "skip"
	default:
		return "unknown"
	}
}

func DefaultOptions() *Lexicon {
	return &Lexicon{
		words:  trie.New(),
		policy: Abort,
		logger: slog.Default(),
	}
}

func WithPolicy(policy Policy) Option {
	return func(l *Lexicon) *Lexicon {
		l.policy = policy
		return l
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Lexicon) *Lexicon {
		if logger != nil {
			l.logger = logger
		}
		return l
	}
}
