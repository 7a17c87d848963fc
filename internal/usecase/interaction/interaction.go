package usecase_interaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ysn7199/yourmovies/core/internal/model"
)

var (
	ErrMovieNotFound      = errors.New("movie not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrAlreadyInWatchlist = errors.New("movie already in watchlist")
	ErrAlreadyWatched     = errors.New("movie already marked as watched")
	ErrNotInWatchlist     = errors.New("movie not in watchlist")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
)

//go:generate mockery --name=UserRepository --output=./mocks --filename=user_repository.go
type UserRepository interface {
	Exists(ctx context.Context, ID uuid.UUID) (bool, error)
}

//go:generate mockery --name=MovieRepository --output=./mocks --filename=movie_repository.go
type MovieRepository interface {
	Lock(ctx context.Context, ID uuid.UUID) error
	LoadByID(ctx context.Context, ID uuid.UUID) (model.Movie, error)
	LoadSummaries(ctx context.Context, IDs []uuid.UUID) ([]model.MovieSummary, error)
	AddLike(ctx context.Context, movieID, userID uuid.UUID) error
	RemoveLike(ctx context.Context, movieID, userID uuid.UUID) error
	LikesCount(ctx context.Context, movieID uuid.UUID) (int, error)
	AddReview(ctx context.Context, review model.Review) error
	Ratings(ctx context.Context, movieID uuid.UUID) ([]float64, error)
	SetAverageRating(ctx context.Context, movieID uuid.UUID, avg float64) error
}

//go:generate mockery --name=ActionRepository --output=./mocks --filename=action_repository.go
type ActionRepository interface {
	Load(ctx context.Context, userID, movieID uuid.UUID) (model.MovieAction, error)
	Save(ctx context.Context, a model.MovieAction) (model.MovieAction, error)
	LoadAll(ctx context.Context, userID uuid.UUID) ([]model.MovieAction, error)
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// LikeResult is the outcome of ToggleLike.
type LikeResult struct {
	Liked       bool
	LikedMovies []uuid.UUID
	MovieLikes  int
}

type ReviewInput struct {
	MovieID uuid.UUID
	Author  model.Identity
	Body    string
	Rating  float64
}

type Usecase struct {
	users   UserRepository
	movies  MovieRepository
	actions ActionRepository
	tx      Transactor
	now     func() time.Time
}

func New(
	users UserRepository,
	movies MovieRepository,
	actions ActionRepository,
	tx Transactor,
) *Usecase {
	return &Usecase{
		users:   users,
		movies:  movies,
		actions: actions,
		tx:      tx,
		now:     time.Now,
	}
}

func (u *Usecase) ToggleLike(ctx context.Context, userID, movieID uuid.UUID) (LikeResult, error) {
	var result LikeResult
	err := u.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := u.ensureUser(ctx, userID); err != nil {
			return err
		}
		if err := u.lockMovie(ctx, movieID); err != nil {
			return err
		}

		action, err := u.loadAction(ctx, userID, movieID)
		if err != nil {
			return err
		}

		action.Liked = !action.Liked
		if _, err := u.actions.Save(ctx, action); err != nil {
			return errors.Join(ErrInternal, err)
		}
		if err := u.syncLike(ctx, movieID, userID, action.Liked); err != nil {
			return err
		}

		count, err := u.movies.LikesCount(ctx, movieID)
		if err != nil {
			return errors.Join(ErrInternal, err)
		}
		lists, err := u.lists(ctx, userID)
		if err != nil {
			return err
		}

		result = LikeResult{
			Liked:       action.Liked,
			LikedMovies: lists.Liked,
			MovieLikes:  count,
		}
		return nil
	})
	if err != nil {
		return LikeResult{}, err
	}

	return result, nil
}

func (u *Usecase) AddToWatchlist(ctx context.Context, userID, movieID uuid.UUID) ([]uuid.UUID, error) {
	var watchlist []uuid.UUID
	err := u.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := u.lockMovie(ctx, movieID); err != nil {
			return err
		}

		action, err := u.loadAction(ctx, userID, movieID)
		if err != nil {
			return err
		}
		if action.InWatchlist {
			return ErrAlreadyInWatchlist
		}

		action.InWatchlist = true
		if _, err := u.actions.Save(ctx, action); err != nil {
			return errors.Join(ErrInternal, err)
		}

		lists, err := u.lists(ctx, userID)
		if err != nil {
			return err
		}
		watchlist = lists.Watchlist
		return nil
	})
	if err != nil {
		return nil, err
	}

	return watchlist, nil
}

// MarkAsWatched also takes the movie off the watchlist.
func (u *Usecase) MarkAsWatched(ctx context.Context, userID, movieID uuid.UUID) ([]uuid.UUID, error) {
	var watched []uuid.UUID
	err := u.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := u.lockMovie(ctx, movieID); err != nil {
			return err
		}

		action, err := u.loadAction(ctx, userID, movieID)
		if err != nil {
			return err
		}
		if action.Watched {
			return ErrAlreadyWatched
		}

		action.InWatchlist = false
		action.Watched = true
		if _, err := u.actions.Save(ctx, action); err != nil {
			return errors.Join(ErrInternal, err)
		}

		lists, err := u.lists(ctx, userID)
		if err != nil {
			return err
		}
		watched = lists.Watched
		return nil
	})
	if err != nil {
		return nil, err
	}

	return watched, nil
}

func (u *Usecase) RemoveFromWatchlist(ctx context.Context, userID, movieID uuid.UUID) ([]uuid.UUID, error) {
	var watchlist []uuid.UUID
	err := u.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := u.lockMovie(ctx, movieID); err != nil {
			return err
		}

		action, err := u.loadAction(ctx, userID, movieID)
		if err != nil {
			return err
		}
		if !action.InWatchlist {
			return ErrNotInWatchlist
		}

		action.InWatchlist = false
		if _, err := u.actions.Save(ctx, action); err != nil {
			return errors.Join(ErrInternal, err)
		}

		lists, err := u.lists(ctx, userID)
		if err != nil {
			return err
		}
		watchlist = lists.Watchlist
		return nil
	})
	if err != nil {
		return nil, err
	}

	return watchlist, nil
}

// AddReview appends a review and recomputes the movie's average rating
// from all of its reviews.
func (u *Usecase) AddReview(ctx context.Context, in ReviewInput) (model.Movie, error) {
	body := strings.TrimSpace(in.Body)
	if body == "" {
		return model.Movie{}, fmt.Errorf("%w: review text is required", ErrInvalidInput)
	}
	if !model.ValidRating(in.Rating) {
		return model.Movie{}, fmt.Errorf("%w: rating must be from %v to %v in steps of %v",
			ErrInvalidInput, model.MinRating, model.MaxRating, model.RatingStep)
	}

	var movie model.Movie
	err := u.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := u.lockMovie(ctx, in.MovieID); err != nil {
			return err
		}

		review := model.Review{
			ID:        uuid.New(),
			MovieID:   in.MovieID,
			UserID:    in.Author.ID,
			Username:  in.Author.Username,
			Body:      body,
			Rating:    in.Rating,
			CreatedAt: u.now().UTC(),
		}
		if err := u.movies.AddReview(ctx, review); err != nil {
			return errors.Join(ErrInternal, err)
		}

		ratings, err := u.movies.Ratings(ctx, in.MovieID)
		if err != nil {
			return errors.Join(ErrInternal, err)
		}
		if err := u.movies.SetAverageRating(ctx, in.MovieID, model.AverageRating(ratings)); err != nil {
			return errors.Join(ErrInternal, err)
		}

		movie, err = u.movies.LoadByID(ctx, in.MovieID)
		if err != nil {
			return errors.Join(ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return model.Movie{}, err
	}

	return movie, nil
}

// GetMovieAction returns a record with all flags unset when the user never
// interacted with the movie.
func (u *Usecase) GetMovieAction(ctx context.Context, userID, movieID uuid.UUID) (model.MovieAction, error) {
	return u.loadAction(ctx, userID, movieID)
}

// SetMovieAction merges the supplied flags over the stored record and
// returns all records of the user. A change of the liked flag is mirrored
// to the movie's likes.
func (u *Usecase) SetMovieAction(ctx context.Context, userID, movieID uuid.UUID, patch model.ActionPatch) ([]model.MovieAction, error) {
	var actions []model.MovieAction
	err := u.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := u.lockMovie(ctx, movieID); err != nil {
			return err
		}

		current, err := u.loadAction(ctx, userID, movieID)
		if err != nil {
			return err
		}

		next := patch.ApplyTo(current)
		if _, err := u.actions.Save(ctx, next); err != nil {
			return errors.Join(ErrInternal, err)
		}
		if next.Liked != current.Liked {
			if err := u.syncLike(ctx, movieID, userID, next.Liked); err != nil {
				return err
			}
		}

		actions, err = u.actions.LoadAll(ctx, userID)
		if err != nil {
			return errors.Join(ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return actions, nil
}

// UserMovieLists returns the user's lists populated with movie summaries.
func (u *Usecase) UserMovieLists(ctx context.Context, userID uuid.UUID) (model.MovieSummaryLists, error) {
	if err := u.ensureUser(ctx, userID); err != nil {
		return model.MovieSummaryLists{}, err
	}

	lists, err := u.lists(ctx, userID)
	if err != nil {
		return model.MovieSummaryLists{}, err
	}

	ids := uniqueIDs(lists.Liked, lists.Watched, lists.Watchlist)
	summaries, err := u.movies.LoadSummaries(ctx, ids)
	if err != nil {
		return model.MovieSummaryLists{}, errors.Join(ErrInternal, err)
	}

	byID := make(map[uuid.UUID]model.MovieSummary, len(summaries))
	for _, s := range summaries {
		byID[s.ID] = s
	}

	return model.MovieSummaryLists{
		Liked:     populate(lists.Liked, byID),
		Watched:   populate(lists.Watched, byID),
		Watchlist: populate(lists.Watchlist, byID),
	}, nil
}

func (u *Usecase) ensureUser(ctx context.Context, userID uuid.UUID) error {
	exists, err := u.users.Exists(ctx, userID)
	if err != nil {
		return errors.Join(ErrInternal, err)
	}
	if !exists {
		return ErrUserNotFound
	}
	return nil
}

func (u *Usecase) lockMovie(ctx context.Context, movieID uuid.UUID) error {
	if err := u.movies.Lock(ctx, movieID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("%w: %w", ErrMovieNotFound, err)
		}
		return errors.Join(ErrInternal, err)
	}
	return nil
}

func (u *Usecase) loadAction(ctx context.Context, userID, movieID uuid.UUID) (model.MovieAction, error) {
	action, err := u.actions.Load(ctx, userID, movieID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewMovieAction(userID, movieID), nil
		}
		return model.MovieAction{}, errors.Join(ErrInternal, err)
	}
	return action, nil
}

func (u *Usecase) syncLike(ctx context.Context, movieID, userID uuid.UUID, liked bool) error {
	var err error
	if liked {
		err = u.movies.AddLike(ctx, movieID, userID)
	} else {
		err = u.movies.RemoveLike(ctx, movieID, userID)
	}
	if err != nil {
		return errors.Join(ErrInternal, err)
	}
	return nil
}

func (u *Usecase) lists(ctx context.Context, userID uuid.UUID) (model.MovieLists, error) {
	actions, err := u.actions.LoadAll(ctx, userID)
	if err != nil {
		return model.MovieLists{}, errors.Join(ErrInternal, err)
	}
	return model.ListsFromActions(actions), nil
}

func uniqueIDs(lists ...[]uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0)
	for _, list := range lists {
		for _, id := range list {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

// populate skips ids whose movie no longer resolves.
func populate(ids []uuid.UUID, byID map[uuid.UUID]model.MovieSummary) []model.MovieSummary {
	out := make([]model.MovieSummary, 0, len(ids))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			out = append(out, s)
		}
	}
	return out
}
