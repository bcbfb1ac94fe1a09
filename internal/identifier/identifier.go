package identifier

import (
	"strings"

	"github.com/google/uuid"
)

// Length is the fixed size of an account identifier.
const Length = 16

// New issues a fresh opaque identifier: a random UUID with hyphens
// stripped, truncated to 16 characters. The result carries no embedded
// information.
func New() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:Length]
}

// Valid reports whether s has the shape of an identifier:
// exactly 16 characters, all alphanumeric.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}
