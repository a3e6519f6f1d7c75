//go:build unit

package item_test

import (
	"testing"

	"circulation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestItem_ConsistentWith(t *testing.T) {
	patronID := uuid.New()

	t.Run("available item with no holder", func(t *testing.T) {
		it := builder.NewItemBuilder().BuildDomain()
		assert.True(t, it.ConsistentWith())
	})

	t.Run("held item names its holder", func(t *testing.T) {
		it := builder.NewItemBuilder().AsHeldBy(patronID).BuildDomain()
		assert.True(t, it.ConsistentWith())
	})

	t.Run("available item with a holder is inconsistent", func(t *testing.T) {
		it := builder.NewItemBuilder().AsHeldBy(patronID).BuildDomain()
		it.Available = true
		assert.False(t, it.ConsistentWith())
	})

	t.Run("unavailable item without a holder is inconsistent", func(t *testing.T) {
		it := builder.NewItemBuilder().BuildDomain()
		it.Available = false
		assert.False(t, it.ConsistentWith())
	})
}

func TestItem_IsHeldBy(t *testing.T) {
	patronID := uuid.New()
	it := builder.NewItemBuilder().AsHeldBy(patronID).BuildDomain()

	assert.True(t, it.IsHeldBy(patronID))
	assert.False(t, it.IsHeldBy(uuid.New()))

	free := builder.NewItemBuilder().BuildDomain()
	assert.False(t, free.IsHeldBy(patronID))
}
