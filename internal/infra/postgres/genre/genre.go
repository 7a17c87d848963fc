package infra_postgres_genre

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	infra_pg_tx "github.com/ysn7199/yourmovies/core/internal/infra/postgres/tx"
	"github.com/ysn7199/yourmovies/core/internal/model"
)

type GenreDB struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
}

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) LoadAll(ctx context.Context) ([]model.Genre, error) {
	query := `SELECT id, name FROM genres ORDER BY name`

	var genresDB []GenreDB
	if err := infra_pg_tx.ExecutorFrom(ctx, r.db).SelectContext(ctx, &genresDB, query); err != nil {
		return nil, fmt.Errorf("failed to load genres: %w", err)
	}

	genres := make([]model.Genre, len(genresDB))
	for i, g := range genresDB {
		genres[i] = model.Genre{ID: g.ID, Name: g.Name}
	}
	return genres, nil
}

func (r *Repository) Store(ctx context.Context, g model.Genre) error {
	query := `INSERT INTO genres (id, name) VALUES ($1, $2)`

	if _, err := infra_pg_tx.ExecutorFrom(ctx, r.db).ExecContext(ctx, query, g.ID, g.Name); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("genre %s: %w", g.Name, model.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to store genre: %w", err)
	}
	return nil
}
