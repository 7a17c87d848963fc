package infra_postgres_movie

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	infra_pg_tx "github.com/ysn7199/yourmovies/core/internal/infra/postgres/tx"
	"github.com/ysn7199/yourmovies/core/internal/model"
)

const movieColumns = `
	m.id, m.title, m.description, m.director, m.release_date, m.genres,
	m.poster, m.backdrop, m.imdb_rating, m.actors, m.runtime, m.average_rating,
	m.created_at, m.updated_at,
	ARRAY(
		SELECT l.user_id::text FROM movie_likes l
		WHERE l.movie_id = m.id
		ORDER BY l.created_at, l.user_id
	) AS likes
`

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Store(ctx context.Context, m model.Movie) error {
	movieDB := FromDomain(m)

	query := `
		INSERT INTO movies (id, title, description, director, release_date, genres,
			poster, backdrop, imdb_rating, actors, runtime, average_rating)
		VALUES (:id, :title, :description, :director, :release_date, :genres,
			:poster, :backdrop, :imdb_rating, :actors, :runtime, :average_rating)
	`

	_, err := infra_pg_tx.ExecutorFrom(ctx, r.db).NamedExecContext(ctx, query, movieDB)
	if err != nil {
		return fmt.Errorf("failed to store movie: %w", err)
	}

	return nil
}

func (r *Repository) LoadByID(ctx context.Context, ID uuid.UUID) (model.Movie, error) {
	ex := infra_pg_tx.ExecutorFrom(ctx, r.db)
	query := `SELECT ` + movieColumns + ` FROM movies m WHERE m.id = $1`

	var movieDB MovieDB
	err := ex.GetContext(ctx, &movieDB, query, ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Movie{}, fmt.Errorf("movie %s: %w", ID, model.ErrNotFound)
		}
		return model.Movie{}, fmt.Errorf("failed to load movie by id: %w", err)
	}

	movie := movieDB.ToDomain()
	reviews, err := r.reviews(ctx, ex, []uuid.UUID{ID})
	if err != nil {
		return model.Movie{}, err
	}
	movie.Reviews = append(movie.Reviews, reviews[ID]...)

	return movie, nil
}

func (r *Repository) Exists(ctx context.Context, ID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM movies WHERE id = $1)`

	var exists bool
	if err := infra_pg_tx.ExecutorFrom(ctx, r.db).GetContext(ctx, &exists, query, ID); err != nil {
		return false, fmt.Errorf("failed to check movie existence: %w", err)
	}
	return exists, nil
}

// Lock takes a row lock on the movie for the rest of the transaction.
func (r *Repository) Lock(ctx context.Context, ID uuid.UUID) error {
	query := `SELECT id FROM movies WHERE id = $1 FOR UPDATE`

	var id uuid.UUID
	err := infra_pg_tx.ExecutorFrom(ctx, r.db).GetContext(ctx, &id, query, ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("movie %s: %w", ID, model.ErrNotFound)
		}
		return fmt.Errorf("failed to lock movie: %w", err)
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, m model.Movie) error {
	movieDB := FromDomain(m)
	query := `
		UPDATE movies
		SET title = :title, description = :description, director = :director,
			release_date = :release_date, genres = :genres, poster = :poster,
			backdrop = :backdrop, imdb_rating = :imdb_rating, actors = :actors,
			runtime = :runtime, updated_at = now()
		WHERE id = :id
	`

	result, err := infra_pg_tx.ExecutorFrom(ctx, r.db).NamedExecContext(ctx, query, movieDB)
	if err != nil {
		return fmt.Errorf("failed to update movie: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("movie %s: %w", m.ID, model.ErrNotFound)
	}

	return nil
}

// List returns one page of movies in insertion order and the number of
// movies matching the filter.
func (r *Repository) List(ctx context.Context, filter model.MovieFilter) ([]model.Movie, int, error) {
	ex := infra_pg_tx.ExecutorFrom(ctx, r.db)
	where, args := buildFilter(filter)

	var total int
	if err := ex.GetContext(ctx, &total, `SELECT COUNT(*) FROM movies m`+where, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count movies: %w", err)
	}

	query := `SELECT ` + movieColumns + ` FROM movies m` + where +
		fmt.Sprintf(` ORDER BY m.created_at, m.id LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	var moviesDB []MovieDB
	if err := ex.SelectContext(ctx, &moviesDB, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to query movies: %w", err)
	}

	ids := make([]uuid.UUID, len(moviesDB))
	for i := range moviesDB {
		ids[i] = moviesDB[i].ID
	}
	reviews, err := r.reviews(ctx, ex, ids)
	if err != nil {
		return nil, 0, err
	}

	movies := make([]model.Movie, len(moviesDB))
	for i, movieDB := range moviesDB {
		movies[i] = movieDB.ToDomain()
		movies[i].Reviews = append(movies[i].Reviews, reviews[movieDB.ID]...)
	}

	return movies, total, nil
}

func buildFilter(filter model.MovieFilter) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)

	if filter.Genre != "" {
		args = append(args, filter.Genre)
		conds = append(conds, fmt.Sprintf("$%d = ANY(m.genres)", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		conds = append(conds, fmt.Sprintf("m.title ILIKE $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *Repository) LoadSummaries(ctx context.Context, IDs []uuid.UUID) ([]model.MovieSummary, error) {
	if len(IDs) == 0 {
		return []model.MovieSummary{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, title, poster, description
		FROM movies
		WHERE id IN (?)
	`, IDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	ex := infra_pg_tx.ExecutorFrom(ctx, r.db)
	query = ex.Rebind(query)
	var summariesDB []SummaryDB
	if err := ex.SelectContext(ctx, &summariesDB, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query movie summaries: %w", err)
	}

	summaries := make([]model.MovieSummary, len(summariesDB))
	for i := range summariesDB {
		summaries[i] = summariesDB[i].ToDomain()
	}
	return summaries, nil
}

func (r *Repository) AddLike(ctx context.Context, movieID, userID uuid.UUID) error {
	query := `
		INSERT INTO movie_likes (movie_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (movie_id, user_id) DO NOTHING
	`

	if _, err := infra_pg_tx.ExecutorFrom(ctx, r.db).ExecContext(ctx, query, movieID, userID); err != nil {
		return fmt.Errorf("failed to add like: %w", err)
	}
	return nil
}

func (r *Repository) RemoveLike(ctx context.Context, movieID, userID uuid.UUID) error {
	query := `DELETE FROM movie_likes WHERE movie_id = $1 AND user_id = $2`

	if _, err := infra_pg_tx.ExecutorFrom(ctx, r.db).ExecContext(ctx, query, movieID, userID); err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}
	return nil
}

func (r *Repository) LikesCount(ctx context.Context, movieID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM movie_likes WHERE movie_id = $1`

	var count int
	if err := infra_pg_tx.ExecutorFrom(ctx, r.db).GetContext(ctx, &count, query, movieID); err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

func (r *Repository) AddReview(ctx context.Context, review model.Review) error {
	query := `
		INSERT INTO reviews (id, movie_id, user_id, username, body, rating, created_at)
		VALUES (:id, :movie_id, :user_id, :username, :body, :rating, :created_at)
	`

	if _, err := infra_pg_tx.ExecutorFrom(ctx, r.db).NamedExecContext(ctx, query, ReviewFromDomain(review)); err != nil {
		return fmt.Errorf("failed to store review: %w", err)
	}
	return nil
}

func (r *Repository) Ratings(ctx context.Context, movieID uuid.UUID) ([]float64, error) {
	query := `SELECT rating FROM reviews WHERE movie_id = $1`

	ratings := make([]float64, 0)
	if err := infra_pg_tx.ExecutorFrom(ctx, r.db).SelectContext(ctx, &ratings, query, movieID); err != nil {
		return nil, fmt.Errorf("failed to load ratings: %w", err)
	}
	return ratings, nil
}

func (r *Repository) SetAverageRating(ctx context.Context, movieID uuid.UUID, avg float64) error {
	query := `UPDATE movies SET average_rating = $2, updated_at = now() WHERE id = $1`

	result, err := infra_pg_tx.ExecutorFrom(ctx, r.db).ExecContext(ctx, query, movieID, avg)
	if err != nil {
		return fmt.Errorf("failed to update average rating: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("movie %s: %w", movieID, model.ErrNotFound)
	}
	return nil
}

func (r *Repository) reviews(ctx context.Context, ex infra_pg_tx.Executor, movieIDs []uuid.UUID) (map[uuid.UUID][]model.Review, error) {
	byMovie := make(map[uuid.UUID][]model.Review, len(movieIDs))
	if len(movieIDs) == 0 {
		return byMovie, nil
	}

	ids := make([]string, len(movieIDs))
	for i, id := range movieIDs {
		ids[i] = id.String()
	}

	query := `
		SELECT id, movie_id, user_id, username, body, rating, created_at
		FROM reviews
		WHERE movie_id = ANY($1::uuid[])
		ORDER BY created_at, id
	`

	var reviewsDB []ReviewDB
	if err := ex.SelectContext(ctx, &reviewsDB, query, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("failed to load reviews: %w", err)
	}

	for i := range reviewsDB {
		review := reviewsDB[i].ToDomain()
		byMovie[review.MovieID] = append(byMovie[review.MovieID], review)
	}
	return byMovie, nil
}
