//go:build unit || e2e

package builder

import (
	domitem "circulation/internal/domain/item"
	"circulation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemBuilder struct {
	ID        uuid.UUID
	Title     string
	Author    string
	Available bool
	HeldBy    *uuid.UUID
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:        uuid.New(),
		Title:     "The Go Programming Language",
		Author:    "Alan A. A. Donovan",
		Available: true,
	}
}

func (i *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(i)
	return i
}

func (i *ItemBuilder) BuildDomain() *domitem.Item {
	return &domitem.Item{
		ID:        i.ID,
		Title:     i.Title,
		Author:    i.Author,
		Available: i.Available,
		HeldBy:    i.HeldBy,
	}
}

func (i *ItemBuilder) BuildView() *queries.ItemView {
	return &queries.ItemView{
		ID:        i.ID,
		Title:     i.Title,
		Author:    i.Author,
		Available: i.Available,
		HeldBy:    i.HeldBy,
	}
}

// Fluent builder methods

func (i *ItemBuilder) WithID(id uuid.UUID) *ItemBuilder {
	i.ID = id
	return i
}

func (i *ItemBuilder) AsHeldBy(patronID uuid.UUID) *ItemBuilder {
	i.Available = false
	p := patronID
	i.HeldBy = &p
	return i
}
