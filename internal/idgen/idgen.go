// Package idgen produces short human-readable reservation identifiers:
// one uppercase letter followed by a three-digit number, e.g. "K457".
// That space holds only 23,400 values, so callers supply a collision
// check; after a bounded number of taken candidates the generator falls
// back to the UUID space. Identifiers are not cryptographic.
package idgen

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

const maxShortAttempts = 10

type Generator struct {
	rng *rand.Rand
}

func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Next returns an identifier for which taken reports false. Short IDs are
// retried maxShortAttempts times before switching to a UUID, which is
// treated as collision-free.
func (g *Generator) Next(taken func(id string) bool) string {
	for i := 0; i < maxShortAttempts; i++ {
		id := g.short()
		if !taken(id) {
			return id
		}
	}
	return uuid.NewString()
}

func (g *Generator) short() string {
	letter := 'A' + rune(g.rng.Intn(26))
	num := g.rng.Intn(900) + 100
	return fmt.Sprintf("%c%d", letter, num)
}
