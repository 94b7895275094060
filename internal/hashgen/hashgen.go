// Package hashgen produces the random identifiers used as short link hashes.
package hashgen

import (
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// Alphabet is lowercase hex, so a hash carries 4 bits per character.
	Alphabet = "0123456789abcdef"
	// Length of every hash: 8 characters, 32 bits of entropy.
	Length = 8
)

// Generator draws hashes from a cryptographically secure source.
// Uniqueness is not guaranteed here; callers check against storage.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// Generate returns a fresh 8-character lowercase hex hash.
func (g *Generator) Generate() (string, error) {
	return gonanoid.Generate(Alphabet, Length)
}

// Valid reports whether s has the shape of a generated hash.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(Alphabet, rune(s[i])) {
			return false
		}
	}
	return true
}
