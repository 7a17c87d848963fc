package usecase_genre

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ysn7199/yourmovies/core/internal/model"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrGenreAlreadyExists = errors.New("genre already exists")
	ErrInternal           = errors.New("internal error")
)

//go:generate mockery --name=Repository --output=./mocks --filename=repository.go
type Repository interface {
	LoadAll(ctx context.Context) ([]model.Genre, error)
	Store(ctx context.Context, g model.Genre) error
}

type Usecase struct {
	repository Repository
}

func New(repository Repository) *Usecase {
	return &Usecase{repository: repository}
}

// List returns all genres sorted by name.
func (u *Usecase) List(ctx context.Context) ([]model.Genre, error) {
	genres, err := u.repository.LoadAll(ctx)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	return genres, nil
}

func (u *Usecase) Add(ctx context.Context, name string) (model.Genre, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Genre{}, fmt.Errorf("%w: genre name is required", ErrInvalidInput)
	}

	genre := model.Genre{ID: uuid.New(), Name: name}
	if err := u.repository.Store(ctx, genre); err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			return model.Genre{}, fmt.Errorf("%w: %w", ErrGenreAlreadyExists, err)
		}
		return model.Genre{}, errors.Join(ErrInternal, err)
	}

	return genre, nil
}
