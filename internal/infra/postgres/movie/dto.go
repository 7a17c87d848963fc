package infra_postgres_movie

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/ysn7199/yourmovies/core/internal/model"
)

type MovieDB struct {
	ID            uuid.UUID      `db:"id"`
	Title         string         `db:"title"`
	Description   string         `db:"description"`
	Director      string         `db:"director"`
	ReleaseDate   sql.NullTime   `db:"release_date"`
	Genres        pq.StringArray `db:"genres"`
	Poster        string         `db:"poster"`
	Backdrop      string         `db:"backdrop"`
	IMDbRating    float64        `db:"imdb_rating"`
	Actors        pq.StringArray `db:"actors"`
	Runtime       string         `db:"runtime"`
	AverageRating float64        `db:"average_rating"`
	Likes         pq.StringArray `db:"likes"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func (m *MovieDB) ToDomain() model.Movie {
	movie := model.Movie{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		Director:      m.Director,
		Genres:        nonNil(m.Genres),
		Poster:        m.Poster,
		Backdrop:      m.Backdrop,
		IMDbRating:    m.IMDbRating,
		Actors:        nonNil(m.Actors),
		Runtime:       m.Runtime,
		Reviews:       make([]model.Review, 0),
		AverageRating: m.AverageRating,
		Likes:         make([]uuid.UUID, 0, len(m.Likes)),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.ReleaseDate.Valid {
		d := m.ReleaseDate.Time
		movie.ReleaseDate = &d
	}
	for _, raw := range m.Likes {
		if id, err := uuid.Parse(raw); err == nil {
			movie.Likes = append(movie.Likes, id)
		}
	}
	return movie
}

func FromDomain(m model.Movie) MovieDB {
	movieDB := MovieDB{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		Director:      m.Director,
		Genres:        pq.StringArray(nonNil(m.Genres)),
		Poster:        m.Poster,
		Backdrop:      m.Backdrop,
		IMDbRating:    m.IMDbRating,
		Actors:        pq.StringArray(nonNil(m.Actors)),
		Runtime:       m.Runtime,
		AverageRating: m.AverageRating,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.ReleaseDate != nil {
		movieDB.ReleaseDate = sql.NullTime{Time: *m.ReleaseDate, Valid: true}
	}
	return movieDB
}

type ReviewDB struct {
	ID        uuid.UUID `db:"id"`
	MovieID   uuid.UUID `db:"movie_id"`
	UserID    uuid.UUID `db:"user_id"`
	Username  string    `db:"username"`
	Body      string    `db:"body"`
	Rating    float64   `db:"rating"`
	CreatedAt time.Time `db:"created_at"`
}

func (r *ReviewDB) ToDomain() model.Review {
	return model.Review{
		ID:        r.ID,
		MovieID:   r.MovieID,
		UserID:    r.UserID,
		Username:  r.Username,
		Body:      r.Body,
		Rating:    r.Rating,
		CreatedAt: r.CreatedAt,
	}
}

func ReviewFromDomain(r model.Review) ReviewDB {
	return ReviewDB{
		ID:        r.ID,
		MovieID:   r.MovieID,
		UserID:    r.UserID,
		Username:  r.Username,
		Body:      r.Body,
		Rating:    r.Rating,
		CreatedAt: r.CreatedAt,
	}
}

type SummaryDB struct {
	ID          uuid.UUID `db:"id"`
	Title       string    `db:"title"`
	Poster      string    `db:"poster"`
	Description string    `db:"description"`
}

func (s *SummaryDB) ToDomain() model.MovieSummary {
	return model.MovieSummary{
		ID:          s.ID,
		Title:       s.Title,
		Poster:      s.Poster,
		Description: s.Description,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
