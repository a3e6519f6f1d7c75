package readstore

import (
	"context"
	"errors"

	"circulation/internal/infra"
	"circulation/internal/infra/db"
	"circulation/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var dialect = goqu.Dialect("postgres")

type ItemReadStore struct {
	db db.DBTX
}

func NewItemReadStore(dbtx db.DBTX) *ItemReadStore {
	return &ItemReadStore{db: dbtx}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	query, args, err := dialect.From("items").
		Select("id", "title", "author", "available", "held_by").
		Where(goqu.C("id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item query", err)
	}

	var view queries.ItemView
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&view.ID, &view.Title, &view.Author, &view.Available, &view.HeldBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}

	return &view, nil
}
