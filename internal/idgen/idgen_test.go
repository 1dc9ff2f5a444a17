package idgen

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var shortIDPattern = regexp.MustCompile(`^[A-Z][1-9][0-9]{2}$`)

func TestNext_ShortFormat(t *testing.T) {
	gen := New(1)

	for i := 0; i < 100; i++ {
		id := gen.Next(func(string) bool { return false })
		assert.Regexp(t, shortIDPattern, id)
	}
}

func TestNext_RegeneratesOnCollision(t *testing.T) {
	gen := New(1)
	first := New(1).Next(func(string) bool { return false })

	id := gen.Next(func(candidate string) bool { return candidate == first })

	assert.NotEqual(t, first, id)
	assert.Regexp(t, shortIDPattern, id)
}

func TestNext_FallsBackToUUIDWhenExhausted(t *testing.T) {
	gen := New(1)

	id := gen.Next(func(candidate string) bool {
		return shortIDPattern.MatchString(candidate)
	})

	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}
