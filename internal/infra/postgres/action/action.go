package infra_postgres_action

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	infra_pg_tx "github.com/ysn7199/yourmovies/core/internal/infra/postgres/tx"
	"github.com/ysn7199/yourmovies/core/internal/model"
)

type ActionDB struct {
	UserID      uuid.UUID `db:"user_id"`
	MovieID     uuid.UUID `db:"movie_id"`
	Liked       bool      `db:"liked"`
	Watched     bool      `db:"watched"`
	InWatchlist bool      `db:"in_watchlist"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`

	LikedAt       *time.Time `db:"liked_at"`
	WatchedAt     *time.Time `db:"watched_at"`
	WatchlistedAt *time.Time `db:"watchlisted_at"`
}

func (a *ActionDB) ToDomain() model.MovieAction {
	return model.MovieAction{
		UserID:      a.UserID,
		MovieID:     a.MovieID,
		Liked:       a.Liked,
		Watched:     a.Watched,
		InWatchlist: a.InWatchlist,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,

		LikedAt:       a.LikedAt,
		WatchedAt:     a.WatchedAt,
		WatchlistedAt: a.WatchlistedAt,
	}
}

const selectColumns = `user_id, movie_id, liked, watched, in_watchlist,
	liked_at, watched_at, watchlisted_at, created_at, updated_at`

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Load returns the action record of the pair and locks it for the rest of
// the transaction.
func (r *Repository) Load(ctx context.Context, userID, movieID uuid.UUID) (model.MovieAction, error) {
	query := `
		SELECT ` + selectColumns + `
		FROM movie_actions
		WHERE user_id = $1 AND movie_id = $2
		FOR UPDATE
	`

	var actionDB ActionDB
	err := infra_pg_tx.ExecutorFrom(ctx, r.db).GetContext(ctx, &actionDB, query, userID, movieID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.MovieAction{}, fmt.Errorf("action %s/%s: %w", userID, movieID, model.ErrNotFound)
		}
		return model.MovieAction{}, fmt.Errorf("failed to load movie action: %w", err)
	}
	return actionDB.ToDomain(), nil
}

// Save upserts the record. created_at of an existing record is kept. A flag
// turned on gets a fresh stamp, a flag turned off loses it. clock_timestamp
// keeps stamps of one transaction in save order.
func (r *Repository) Save(ctx context.Context, a model.MovieAction) (model.MovieAction, error) {
	query := `
		INSERT INTO movie_actions (user_id, movie_id, liked, watched, in_watchlist,
			liked_at, watched_at, watchlisted_at)
		VALUES ($1, $2, $3, $4, $5,
			CASE WHEN $3::boolean THEN clock_timestamp() END,
			CASE WHEN $4::boolean THEN clock_timestamp() END,
			CASE WHEN $5::boolean THEN clock_timestamp() END)
		ON CONFLICT (user_id, movie_id) DO UPDATE
		SET liked = EXCLUDED.liked,
			watched = EXCLUDED.watched,
			in_watchlist = EXCLUDED.in_watchlist,
			liked_at = CASE
				WHEN NOT EXCLUDED.liked THEN NULL
				WHEN movie_actions.liked THEN movie_actions.liked_at
				ELSE clock_timestamp() END,
			watched_at = CASE
				WHEN NOT EXCLUDED.watched THEN NULL
				WHEN movie_actions.watched THEN movie_actions.watched_at
				ELSE clock_timestamp() END,
			watchlisted_at = CASE
				WHEN NOT EXCLUDED.in_watchlist THEN NULL
				WHEN movie_actions.in_watchlist THEN movie_actions.watchlisted_at
				ELSE clock_timestamp() END,
			updated_at = now()
		RETURNING ` + selectColumns + `
	`

	var actionDB ActionDB
	err := infra_pg_tx.ExecutorFrom(ctx, r.db).GetContext(ctx, &actionDB, query,
		a.UserID, a.MovieID, a.Liked, a.Watched, a.InWatchlist)
	if err != nil {
		return model.MovieAction{}, fmt.Errorf("failed to save movie action: %w", err)
	}
	return actionDB.ToDomain(), nil
}

// LoadAll returns every action record of the user in creation order. List
// order comes from the flag stamps, see model.ListsFromActions.
func (r *Repository) LoadAll(ctx context.Context, userID uuid.UUID) ([]model.MovieAction, error) {
	query := `
		SELECT ` + selectColumns + `
		FROM movie_actions
		WHERE user_id = $1
		ORDER BY created_at, movie_id
	`

	var actionsDB []ActionDB
	if err := infra_pg_tx.ExecutorFrom(ctx, r.db).SelectContext(ctx, &actionsDB, query, userID); err != nil {
		return nil, fmt.Errorf("failed to load movie actions: %w", err)
	}

	actions := make([]model.MovieAction, len(actionsDB))
	for i := range actionsDB {
		actions[i] = actionsDB[i].ToDomain()
	}
	return actions, nil
}
