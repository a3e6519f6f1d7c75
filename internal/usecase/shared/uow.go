package shared

import (
	"context"
	"time"

	"circulation/internal/domain/borrow"
	"circulation/internal/domain/item"
	"circulation/internal/domain/reservation"
	"circulation/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Items() ItemRepository
	Borrows() BorrowRepository
	Reservations() ReservationRepository
	Patrons() PatronRepository
	Notifications() NotificationRepository
	DB() db.DBTX
}

type CommandReads interface {
	ItemByID(ctx context.Context, id uuid.UUID) (*item.Item, error)
}

type ItemRepository interface {
	// FindByIDForUpdate locks the item row for the rest of the transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*item.Item, error)
	// Claim flips available to false for the given patron. Returns false
	// when another transaction claimed the item first.
	Claim(ctx context.Context, itemID, patronID uuid.UUID) (bool, error)
	// Release makes the item available again and clears the holder.
	Release(ctx context.Context, itemID uuid.UUID) error
	UpdateMetadata(ctx context.Context, itemID uuid.UUID, title, author string) (bool, error)
}

type BorrowRepository interface {
	Create(ctx context.Context, b *borrow.Borrow) error
	Update(ctx context.Context, b *borrow.Borrow) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*borrow.Borrow, error)
	// SyncItemSnapshot rewrites stale denormalized title/author on up to
	// limit rows referencing the item. Returns the number of rows touched.
	SyncItemSnapshot(ctx context.Context, itemID uuid.UUID, title, author string, limit int) (int64, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	Update(ctx context.Context, r *reservation.Reservation) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// OldestActiveByItemForUpdate returns the head of the queue for the item,
	// or a NotFound repository error when the queue is empty.
	OldestActiveByItemForUpdate(ctx context.Context, itemID uuid.UUID) (*reservation.Reservation, error)
	FindActiveByPatronAndItemForUpdate(ctx context.Context, patronID, itemID uuid.UUID) (*reservation.Reservation, error)
	HasActiveByItem(ctx context.Context, itemID uuid.UUID) (bool, error)
	SyncItemSnapshot(ctx context.Context, itemID uuid.UUID, title, author string, limit int) (int64, error)
}

type PatronRepository interface {
	// ActiveCountForUpdate reads the patron's active-borrow counter under a
	// row lock, creating the counter row when the patron is new.
	ActiveCountForUpdate(ctx context.Context, patronID uuid.UUID) (int, error)
	IncrementActive(ctx context.Context, patronID uuid.UUID) error
	DecrementActive(ctx context.Context, patronID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
