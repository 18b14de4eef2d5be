// Package identity derives client identifiers and display colors from
// client names. There is no clients table: identity is denormalized onto
// every task row, so both derivations must be pure functions of the name.
// The derivation is versioned by clientNamespace; changing it would give
// new names different ids while existing rows keep their stored values.
package identity

import (
	"hash/fnv"

	"github.com/google/uuid"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// clientNamespace is the fixed namespace for name-based client ids.
// Never change this value: the same name must map to the same id for
// the life of the database.
var clientNamespace = uuid.MustParse("3f1aab42-2f6b-4b21-9b84-5a3bd8e1a7c6")

// Fixed saturation and lightness keep derived colors readable on a light
// background; only the hue varies per client.
const (
	colorSaturation = 0.65
	colorLightness  = 0.55
)

// Resolve maps a client name to its stable (id, color) pair. Callers
// pass names already trimmed and non-empty.
func Resolve(name string) (uuid.UUID, string) {
	return ClientID(name), ClientColor(name)
}

// ClientID returns the name-based UUID for a client. Repeated calls for
// the same name always return the same id, so no lookup table is needed.
func ClientID(name string) uuid.UUID {
	return uuid.NewSHA1(clientNamespace, []byte(name))
}

// ClientColor returns a hex color ("#rrggbb") for a client name. The hue
// comes from an FNV-1a hash of the name; two names may share a color but
// a given name never changes.
func ClientColor(name string) string {
	h := fnv.New32a()
	h.Write([]byte(name))
	hue := float64(h.Sum32() % 360)
	return colorful.Hsl(hue, colorSaturation, colorLightness).Hex()
}
