package rules

import (
	"fmt"

	"github.com/google/uuid"

	vouch "github.com/vouch-dev/vouch"
)

// NonNilID fails for the all-zero UUID, the identifier type's canonical
// "empty" value.
func NonNilID() vouch.Rule[uuid.UUID] {
	return func(v uuid.UUID, name string) string {
		if v != uuid.Nil {
			return ""
		}
		return fmt.Sprintf("%s must not be the nil UUID", name)
	}
}

// NilID fails for any identifier other than the all-zero UUID.
func NilID() vouch.Rule[uuid.UUID] {
	return func(v uuid.UUID, name string) string {
		if v == uuid.Nil {
			return ""
		}
		return fmt.Sprintf("%s must be the nil UUID", name)
	}
}

// WellFormedID fails for strings that do not parse as a canonical UUID. Length
// and hyphen positions are checked before parsing to reject garbage cheaply.
func WellFormedID() vouch.Rule[string] {
	return func(v, name string) string {
		if len(v) == 36 &&
			v[8] == '-' && v[13] == '-' && v[18] == '-' && v[23] == '-' {
			if _, err := uuid.Parse(v); err == nil {
				return ""
			}
		}
		return fmt.Sprintf("%s must be a valid UUID", name)
	}
}
