package trie

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCharacter is wrapped by every *CharacterError.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrEmptyWord is returned when inserting the empty string.
	ErrEmptyWord = errors.New("empty word")
	// ErrDestroyed is returned by Insert after Destroy has been called.
	ErrDestroyed = errors.New("trie is destroyed")
)

// CharacterError reports the first byte of a word outside 'a'..'z'.
type CharacterError struct {
	Word   string
	Offset int  // byte offset of the offending character
	Char   byte // the offending byte
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("%s %q at offset %d of word %q", ErrInvalidCharacter, e.Char, e.Offset, e.Word)
}

func (e *CharacterError) Unwrap() error {
	return ErrInvalidCharacter
}
