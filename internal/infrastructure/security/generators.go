package security

import "github.com/oklog/ulid/v2"

// GenerateULID returns a new lexicographically sortable unique identifier,
// used for owner keys and snapshot ids.
func GenerateULID() string {
	return ulid.Make().String()
}
