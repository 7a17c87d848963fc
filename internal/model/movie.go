package model

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const EmptyTitle string = ""

// Ratings are half stars from MinRating to MaxRating.
const (
	MinRating  = 0.5
	MaxRating  = 5.0
	RatingStep = 0.5
)

type Movie struct {
	ID            uuid.UUID
	Title         string
	Description   string
	Director      string
	ReleaseDate   *time.Time
	Genres        []string
	Poster        string
	Backdrop      string
	IMDbRating    float64
	Actors        []string
	Runtime       string
	Reviews       []Review
	AverageRating float64
	Likes         []uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (m Movie) LikesCount() int {
	return len(m.Likes)
}

type Review struct {
	ID        uuid.UUID
	MovieID   uuid.UUID
	UserID    uuid.UUID
	Username  string
	Body      string
	Rating    float64
	CreatedAt time.Time
}

type MovieSummary struct {
	ID          uuid.UUID
	Title       string
	Poster      string
	Description string
}

// AverageRating is the mean of ratings rounded to one decimal place, 0 for
// no ratings.
func AverageRating(ratings []float64) float64 {
	if len(ratings) == 0 {
		return 0
	}

	var sum float64
	for _, r := range ratings {
		sum += r
	}
	return math.Round(sum/float64(len(ratings))*10) / 10
}

func ValidRating(r float64) bool {
	if r < MinRating || r > MaxRating {
		return false
	}
	steps := r / RatingStep
	return steps == math.Trunc(steps)
}

type MovieFilter struct {
	Genre  string
	Search string
	Offset int
	Limit  int
}

// MoviePatch is a partial update of a Movie's catalog fields. Nil fields keep
// the stored value.
type MoviePatch struct {
	Title       *string
	Description *string
	Director    *string
	ReleaseDate *time.Time
	Genres      *[]string
	Poster      *string
	Backdrop    *string
	IMDbRating  *float64
	Actors      *[]string
	Runtime     *string
}

func (p MoviePatch) ApplyTo(m Movie) Movie {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Director != nil {
		m.Director = *p.Director
	}
	if p.ReleaseDate != nil {
		m.ReleaseDate = p.ReleaseDate
	}
	if p.Genres != nil {
		m.Genres = *p.Genres
	}
	if p.Poster != nil {
		m.Poster = *p.Poster
	}
	if p.Backdrop != nil {
		m.Backdrop = *p.Backdrop
	}
	if p.IMDbRating != nil {
		m.IMDbRating = *p.IMDbRating
	}
	if p.Actors != nil {
		m.Actors = *p.Actors
	}
	if p.Runtime != nil {
		m.Runtime = *p.Runtime
	}
	return m
}

type Genre struct {
	ID   uuid.UUID
	Name string
}

type Poster struct {
	Filename    string
	ContentType string
	Content     []byte

	MovieID string
}

func (r Poster) GetFilename() string {
	return r.Filename
}

func (r Poster) GetContent() []byte {
	return r.Content
}

func (r Poster) GetParent() string {
	return r.MovieID
}

