package usecase_movie

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/ysn7199/yourmovies/core/internal/model"
)

const (
	DefaultPage  = 1
	DefaultLimit = 24
	MaxLimit     = 100
)

var (
	ErrMovieNotFound = errors.New("movie not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrPosterUpload  = errors.New("failed to upload poster")
	ErrInternal      = errors.New("internal error")
)

//go:generate mockery --name=Repository --output=./mocks --filename=repository.go
type Repository interface {
	Store(ctx context.Context, m model.Movie) error
	LoadByID(ctx context.Context, ID uuid.UUID) (model.Movie, error)
	Update(ctx context.Context, m model.Movie) error
	List(ctx context.Context, filter model.MovieFilter) ([]model.Movie, int, error)
}

//go:generate mockery --name=PosterStorage --output=./mocks --filename=poster_storage.go
type PosterStorage interface {
	Save(ctx context.Context, obj model.FileObject, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
}

type ListQuery struct {
	Page   int
	Limit  int
	Genre  string
	Search string
}

// Normalize replaces missing or out of range paging values with defaults.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	q.Genre = strings.TrimSpace(q.Genre)
	q.Search = strings.TrimSpace(q.Search)
	return q
}

type Page struct {
	Movies     []model.Movie
	TotalPages int
}

type Usecase struct {
	repository    Repository
	posterStorage PosterStorage
	logger        *slog.Logger
}

func New(
	repository Repository,
	posterStorage PosterStorage,
) *Usecase {
	return &Usecase{
		repository:    repository,
		posterStorage: posterStorage,
		logger:        slog.Default(),
	}
}

func (u *Usecase) List(ctx context.Context, q ListQuery) (Page, error) {
	q = q.Normalize()

	movies, total, err := u.repository.List(ctx, model.MovieFilter{
		Genre:  q.Genre,
		Search: q.Search,
		Offset: (q.Page - 1) * q.Limit,
		Limit:  q.Limit,
	})
	if err != nil {
		return Page{}, errors.Join(ErrInternal, err)
	}

	return Page{
		Movies:     movies,
		TotalPages: (total + q.Limit - 1) / q.Limit,
	}, nil
}

func (u *Usecase) GetByID(ctx context.Context, ID uuid.UUID) (model.Movie, error) {
	movie, err := u.repository.LoadByID(ctx, ID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Movie{}, fmt.Errorf("%w: %w", ErrMovieNotFound, err)
		}
		return model.Movie{}, errors.Join(ErrInternal, err)
	}
	return movie, nil
}

// Create stores a new movie. poster is optional.
func (u *Usecase) Create(ctx context.Context, m model.Movie, poster *model.Poster) (model.Movie, error) {
	if err := validate(m); err != nil {
		return model.Movie{}, err
	}

	m.ID = uuid.New()
	m.Reviews = make([]model.Review, 0)
	m.Likes = make([]uuid.UUID, 0)
	m.AverageRating = 0

	if poster != nil {
		url, err := u.uploadPoster(ctx, m.ID, poster)
		if err != nil {
			return model.Movie{}, err
		}
		m.Poster = url
	}

	if err := u.repository.Store(ctx, m); err != nil {
		if poster != nil {
			u.discardPoster(ctx, m.ID, m.Poster)
		}
		return model.Movie{}, errors.Join(ErrInternal, err)
	}

	return u.GetByID(ctx, m.ID)
}

// Update applies the supplied fields. A new poster replaces the stored one.
func (u *Usecase) Update(ctx context.Context, ID uuid.UUID, patch model.MoviePatch, poster *model.Poster) (model.Movie, error) {
	current, err := u.GetByID(ctx, ID)
	if err != nil {
		return model.Movie{}, err
	}

	next := patch.ApplyTo(current)
	if err := validate(next); err != nil {
		return model.Movie{}, err
	}

	if poster != nil {
		url, err := u.uploadPoster(ctx, ID, poster)
		if err != nil {
			return model.Movie{}, err
		}
		next.Poster = url
	}

	if err := u.repository.Update(ctx, next); err != nil {
		if poster != nil {
			u.discardPoster(ctx, ID, next.Poster)
		}
		if errors.Is(err, model.ErrNotFound) {
			return model.Movie{}, fmt.Errorf("%w: %w", ErrMovieNotFound, err)
		}
		return model.Movie{}, errors.Join(ErrInternal, err)
	}

	if poster != nil && current.Poster != "" && current.Poster != next.Poster {
		if err := u.posterStorage.Delete(ctx, current.Poster); err != nil {
			u.logger.Warn("failed to delete replaced poster", "movie_id", ID, "poster", current.Poster, "error", err)
		}
	}

	return u.GetByID(ctx, ID)
}

func (u *Usecase) uploadPoster(ctx context.Context, movieID uuid.UUID, poster *model.Poster) (string, error) {
	poster.MovieID = movieID.String()
	url, err := u.posterStorage.Save(ctx, *poster, poster.ContentType)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPosterUpload, err)
	}
	return url, nil
}

// discardPoster removes an upload that no stored movie refers to.
func (u *Usecase) discardPoster(ctx context.Context, movieID uuid.UUID, url string) {
	if err := u.posterStorage.Delete(ctx, url); err != nil {
		u.logger.Warn("failed to delete orphaned poster", "movie_id", movieID, "poster", url, "error", err)
	}
}

func validate(m model.Movie) error {
	if strings.TrimSpace(m.Title) == model.EmptyTitle {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(m.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	return nil
}
