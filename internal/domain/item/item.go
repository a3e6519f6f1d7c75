// Package item models the catalog item as this engine sees it. The catalog
// itself is maintained elsewhere; circulation only flips availability and
// reads the cached display fields.
package item

import (
	"github.com/google/uuid"
)

type Item struct {
	ID        uuid.UUID
	Title     string
	Author    string
	Available bool
	HeldBy    *uuid.UUID
}

// ConsistentWith reports whether the availability flag agrees with the
// holder field: an unavailable item must name its holder and vice versa.
func (i Item) ConsistentWith() bool {
	if i.Available {
		return i.HeldBy == nil
	}
	return i.HeldBy != nil
}

func (i Item) IsHeldBy(patronID uuid.UUID) bool {
	return i.HeldBy != nil && *i.HeldBy == patronID
}
