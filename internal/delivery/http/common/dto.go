package http_common

import (
	"github.com/google/uuid"
	"github.com/ysn7199/yourmovies/core/internal/model"
)

// MovieSummaryDTO краткое представление фильма в списках пользователя
type MovieSummaryDTO struct {
	ID          uuid.UUID `json:"_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Title       string    `json:"title" example:"Interstellar"`
	Poster      string    `json:"poster" example:"https://movie-posters.s3.amazonaws.com/movie_posters/interstellar.jpg"`
	Description string    `json:"description" example:"A team of explorers travel through a wormhole in space."`
}

func SummariesFromDomain(summaries []model.MovieSummary) []MovieSummaryDTO {
	out := make([]MovieSummaryDTO, len(summaries))
	for i, s := range summaries {
		out[i] = MovieSummaryDTO{
			ID:          s.ID,
			Title:       s.Title,
			Poster:      s.Poster,
			Description: s.Description,
		}
	}
	return out
}

// NonNilIDs keeps empty lists as [] in JSON.
func NonNilIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
