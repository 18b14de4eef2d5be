package identity

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestResolveIsDeterministic(t *testing.T) {
	names := []string{"Alice", "Bob", "Acme Corp", "éclair", "客户"}

	for _, name := range names {
		id1, color1 := Resolve(name)
		id2, color2 := Resolve(name)

		assert.Equal(t, id1, id2, "client id changed between calls for %q", name)
		assert.Equal(t, color1, color2, "client color changed between calls for %q", name)
	}
}

func TestClientIDDistinctNames(t *testing.T) {
	a := ClientID("Alice")
	b := ClientID("Bob")

	assert.NotEqual(t, uuid.Nil, a)
	assert.NotEqual(t, a, b, "different names must not share an id")
}

func TestClientIDIsCaseSensitive(t *testing.T) {
	// Renaming a client (including a case change) produces a new identity;
	// only byte-identical names map to the same id.
	assert.NotEqual(t, ClientID("alice"), ClientID("Alice"))
}

func TestClientColorFormat(t *testing.T) {
	for _, name := range []string{"Alice", "Bob", "x", "a much longer client name"} {
		color := ClientColor(name)
		assert.Regexp(t, hexColor, color, "color for %q", name)
	}
}
