package http_movie

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	http_common "github.com/ysn7199/yourmovies/core/internal/delivery/http/common"
	"github.com/ysn7199/yourmovies/core/internal/model"
)

const releaseDateLayout = "2006-01-02"

// MovieRequestDTO данные фильма для создания и обновления.
// Принимается как JSON или multipart/form-data (с файлом poster).
// При обновлении отсутствующие поля не изменяются
type MovieRequestDTO struct {
	Title       *string  `json:"title" form:"title" example:"Interstellar"`
	Description *string  `json:"description" form:"description" example:"A team of explorers travel through a wormhole in space."`
	Director    *string  `json:"director" form:"director" example:"Christopher Nolan"`
	ReleaseDate *string  `json:"releaseDate" form:"releaseDate" example:"2014-11-07"`
	Genres      []string `json:"genres" form:"genres" example:"Sci-Fi,Drama"`
	Backdrop    *string  `json:"backdrop" form:"backdrop" example:"https://image.tmdb.org/t/p/original/backdrop.jpg"`
	IMDbRating  *float64 `json:"imdbRating" form:"imdbRating" example:"8.7"`
	Actors      []string `json:"actors" form:"actors" example:"Matthew McConaughey,Anne Hathaway"`
	Runtime     *string  `json:"runtime" form:"runtime" example:"169 min"`
}

func (r *MovieRequestDTO) ToPatch() (model.MoviePatch, error) {
	patch := model.MoviePatch{
		Title:       r.Title,
		Description: r.Description,
		Director:    r.Director,
		Backdrop:    r.Backdrop,
		IMDbRating:  r.IMDbRating,
		Runtime:     r.Runtime,
	}

	if r.ReleaseDate != nil && strings.TrimSpace(*r.ReleaseDate) != "" {
		date, err := parseReleaseDate(*r.ReleaseDate)
		if err != nil {
			return model.MoviePatch{}, err
		}
		patch.ReleaseDate = &date
	}
	if r.Genres != nil {
		genres := splitList(r.Genres)
		patch.Genres = &genres
	}
	if r.Actors != nil {
		actors := splitList(r.Actors)
		patch.Actors = &actors
	}

	return patch, nil
}

func (r *MovieRequestDTO) ToMovie() (model.Movie, error) {
	patch, err := r.ToPatch()
	if err != nil {
		return model.Movie{}, err
	}
	return patch.ApplyTo(model.Movie{
		Genres: []string{},
		Actors: []string{},
	}), nil
}

func parseReleaseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if date, err := time.Parse(releaseDateLayout, raw); err == nil {
		return date, nil
	}
	date, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("release date %q: expected YYYY-MM-DD or RFC3339", raw)
	}
	return date, nil
}

// splitList accepts both repeated form values and a single comma separated
// value.
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// ReviewDTO отзыв пользователя о фильме
type ReviewDTO struct {
	ID        uuid.UUID `json:"_id" example:"550e8400-e29b-41d4-a716-446655440001"`
	UserID    uuid.UUID `json:"userId" example:"550e8400-e29b-41d4-a716-446655440002"`
	Username  string    `json:"username" example:"alice"`
	Review    string    `json:"review" example:"Stunning visuals."`
	Rating    float64   `json:"rating" example:"4.5"`
	CreatedAt time.Time `json:"createdAt"`
}

// MovieBaseDTO общие поля фильма
type MovieBaseDTO struct {
	ID            uuid.UUID   `json:"_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Title         string      `json:"title" example:"Interstellar"`
	Description   string      `json:"description" example:"A team of explorers travel through a wormhole in space."`
	Director      string      `json:"director" example:"Christopher Nolan"`
	ReleaseDate   *time.Time  `json:"releaseDate"`
	Genres        []string    `json:"genres" example:"Sci-Fi,Drama"`
	Poster        string      `json:"poster" example:"https://movie-posters.s3.amazonaws.com/movie_posters/poster.jpg"`
	Backdrop      string      `json:"backdrop"`
	Reviews       []ReviewDTO `json:"reviews"`
	AverageRating float64     `json:"averageRating" example:"4.5"`
	IMDbRating    float64     `json:"imdbRating" example:"8.7"`
	Actors        []string    `json:"actors" example:"Matthew McConaughey,Anne Hathaway"`
	Runtime       string      `json:"runtime" example:"169 min"`
}

// MovieResponseDTO фильм со списком поставивших лайк пользователей
type MovieResponseDTO struct {
	MovieBaseDTO
	Likes     []uuid.UUID `json:"likes"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// MovieDetailsResponseDTO фильм с количеством лайков
type MovieDetailsResponseDTO struct {
	MovieBaseDTO
	Likes int `json:"likes" example:"42"`
}

// MoviesListResponseDTO страница каталога
type MoviesListResponseDTO struct {
	Movies     []MovieResponseDTO `json:"movies"`
	TotalPages int                `json:"totalPages" example:"3"`
}

func baseFromDomain(m model.Movie) MovieBaseDTO {
	reviews := make([]ReviewDTO, len(m.Reviews))
	for i, r := range m.Reviews {
		reviews[i] = ReviewDTO{
			ID:        r.ID,
			UserID:    r.UserID,
			Username:  r.Username,
			Review:    r.Body,
			Rating:    r.Rating,
			CreatedAt: r.CreatedAt,
		}
	}

	return MovieBaseDTO{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		Director:      m.Director,
		ReleaseDate:   m.ReleaseDate,
		Genres:        nonNilStrings(m.Genres),
		Poster:        m.Poster,
		Backdrop:      m.Backdrop,
		Reviews:       reviews,
		AverageRating: m.AverageRating,
		IMDbRating:    m.IMDbRating,
		Actors:        nonNilStrings(m.Actors),
		Runtime:       m.Runtime,
	}
}

func ConvertFromMovie(m model.Movie) MovieResponseDTO {
	likes := m.Likes
	if likes == nil {
		likes = []uuid.UUID{}
	}
	return MovieResponseDTO{
		MovieBaseDTO: baseFromDomain(m),
		Likes:        likes,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ConvertFromMovieList(movies []model.Movie) []MovieResponseDTO {
	out := make([]MovieResponseDTO, len(movies))
	for i, m := range movies {
		out[i] = ConvertFromMovie(m)
	}
	return out
}

func ConvertToDetails(m model.Movie) MovieDetailsResponseDTO {
	return MovieDetailsResponseDTO{
		MovieBaseDTO: baseFromDomain(m),
		Likes:        m.LikesCount(),
	}
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ReviewRequestDTO новый отзыв
type ReviewRequestDTO struct {
	Review string  `json:"review" example:"Stunning visuals."`
	Rating float64 `json:"rating" example:"4.5"`
}

// LikeResponseDTO результат лайка
type LikeResponseDTO struct {
	Message     string      `json:"message" example:"Movie liked"`
	LikedMovies []uuid.UUID `json:"likedMovies"`
	MovieLikes  int         `json:"movieLikes" example:"1"`
}

// WatchlistResponseDTO список "посмотреть позже" после изменения
type WatchlistResponseDTO struct {
	Message   string      `json:"message" example:"Movie added to watchlist"`
	Watchlist []uuid.UUID `json:"watchlist"`
}

// WatchedResponseDTO список просмотренных после изменения
type WatchedResponseDTO struct {
	Message       string      `json:"message" example:"Movie marked as watched"`
	WatchedMovies []uuid.UUID `json:"watchedMovies"`
}

// MovieActionDTO отношение пользователя к фильму
type MovieActionDTO struct {
	MovieID     uuid.UUID `json:"movieId" example:"550e8400-e29b-41d4-a716-446655440000"`
	Liked       bool      `json:"liked" example:"true"`
	Watched     bool      `json:"watched" example:"false"`
	InWatchlist bool      `json:"inWatchlist" example:"false"`
}

func ConvertFromAction(a model.MovieAction) MovieActionDTO {
	return MovieActionDTO{
		MovieID:     a.MovieID,
		Liked:       a.Liked,
		Watched:     a.Watched,
		InWatchlist: a.InWatchlist,
	}
}

// MovieActionPatchDTO изменение отношения к фильму. Отсутствующие поля не изменяются
type MovieActionPatchDTO struct {
	Liked       *bool `json:"liked" example:"true"`
	Watched     *bool `json:"watched"`
	InWatchlist *bool `json:"inWatchlist"`
}

func (p MovieActionPatchDTO) ToDomain() model.ActionPatch {
	return model.ActionPatch{
		Liked:       p.Liked,
		Watched:     p.Watched,
		InWatchlist: p.InWatchlist,
	}
}

// MovieActionsResponseDTO все записи пользователя после изменения
type MovieActionsResponseDTO struct {
	Message string           `json:"message" example:"User actions updated successfully"`
	Actions []MovieActionDTO `json:"actions"`
}

// UserMovieListsResponseDTO списки фильмов, построенные по записям пользователя
type UserMovieListsResponseDTO struct {
	LikedMovies     []http_common.MovieSummaryDTO `json:"likedMovies"`
	WatchedMovies   []http_common.MovieSummaryDTO `json:"watchedMovies"`
	WatchlistMovies []http_common.MovieSummaryDTO `json:"watchlistMovies"`
}
