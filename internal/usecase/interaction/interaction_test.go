//go:build !integration

package usecase_interaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ysn7199/yourmovies/core/internal/model"
	"github.com/ysn7199/yourmovies/core/internal/usecase/interaction/mocks"
)

type UsecaseInteractionUnitSuite struct {
	suite.Suite
}

type passthroughTx struct{}

func (passthroughTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type resources struct {
	usecase *Usecase
	users   *mocks.UserRepository
	movies  *mocks.MovieRepository
	actions *mocks.ActionRepository
	ctx     context.Context

	userID  uuid.UUID
	movieID uuid.UUID
}

func initResources(t provider.T) *resources {
	users := mocks.NewUserRepository(t)
	movies := mocks.NewMovieRepository(t)
	actions := mocks.NewActionRepository(t)

	return &resources{
		usecase: New(users, movies, actions, passthroughTx{}),
		users:   users,
		movies:  movies,
		actions: actions,
		ctx:     context.Background(),
		userID:  uuid.New(),
		movieID: uuid.New(),
	}
}

func (r *resources) action(liked, watched, inWatchlist bool) model.MovieAction {
	return model.MovieAction{
		UserID:      r.userID,
		MovieID:     r.movieID,
		Liked:       liked,
		Watched:     watched,
		InWatchlist: inWatchlist,
	}
}

func notFound() error {
	return errors.Join(errors.New("row missing"), model.ErrNotFound)
}

func (suite *UsecaseInteractionUnitSuite) TestToggleLike(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		setupMocks  func(r *resources)
		expectedErr error
		check       func(t provider.T, r *resources, res LikeResult)
	}{
		{
			name: "Should like a movie the user never touched",
			setupMocks: func(r *resources) {
				r.users.On("Exists", r.ctx, r.userID).Return(true, nil).Once()
				r.movies.On("Lock", r.ctx, r.movieID).Return(nil).Once()
				r.actions.On("Load", r.ctx, r.userID, r.movieID).Return(model.MovieAction{}, notFound()).Once()
				r.actions.On("Save", r.ctx, r.action(true, false, false)).Return(r.action(true, false, false), nil).Once()
				r.movies.On("AddLike", r.ctx, r.movieID, r.userID).Return(nil).Once()
				r.movies.On("LikesCount", r.ctx, r.movieID).Return(1, nil).Once()
				r.actions.On("LoadAll", r.ctx, r.userID).Return([]model.MovieAction{r.action(true, false, false)}, nil).Once()
			},
			check: func(t provider.T, r *resources, res LikeResult) {
				assert.True(t, res.Liked)
				assert.Equal(t, 1, res.MovieLikes)
				assert.Equal(t, []uuid.UUID{r.movieID}, res.LikedMovies)
			},
		},
		{
			name: "Should unlike a liked movie",
			setupMocks: func(r *resources) {
				r.users.On("Exists", r.ctx, r.userID).Return(true, nil).Once()
				r.movies.On("Lock", r.ctx, r.movieID).Return(nil).Once()
				r.actions.On("Load", r.ctx, r.userID, r.movieID).Return(r.action(true, true, false), nil).Once()
				r.actions.On("Save", r.ctx, r.action(false, true, false)).Return(r.action(false, true, false), nil).Once()
				r.movies.On("RemoveLike", r.ctx, r.movieID, r.userID).Return(nil).Once()
				r.movies.On("LikesCount", r.ctx, r.movieID).Return(0, nil).Once()
				r.actions.On("LoadAll", r.ctx, r.userID).Return([]model.MovieAction{r.action(false, true, false)}, nil).Once()
			},
			check: func(t provider.T, r *resources, res LikeResult) {
				assert.False(t, res.Liked)
				assert.Equal(t, 0, res.MovieLikes)
				assert.Empty(t, res.LikedMovies)
				assert.NotNil(t, res.LikedMovies)
			},
		},
		{
			name: "Should fail for unknown user",
			setupMocks: func(r *resources) {
				r.users.On("Exists", r.ctx, r.userID).Return(false, nil).Once()
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name: "Should fail for unknown movie",
			setupMocks: func(r *resources) {
				r.users.On("Exists", r.ctx, r.userID).Return(true, nil).Once()
				r.movies.On("Lock", r.ctx, r.movieID).Return(notFound()).Once()
			},
			expectedErr: ErrMovieNotFound,
		},
		{
			name: "Should wrap storage failure as internal",
			setupMocks: func(r *resources) {
				r.users.On("Exists", r.ctx, r.userID).Return(true, nil).Once()
				r.movies.On("Lock", r.ctx, r.movieID).Return(nil).Once()
				r.actions.On("Load", r.ctx, r.userID, r.movieID).Return(model.MovieAction{}, errors.New("conn reset")).Once()
			},
			expectedErr: ErrInternal,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			res, err := r.usecase.ToggleLike(r.ctx, r.userID, r.movieID)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			tc.check(t, r, res)
		})
	}
}

func (suite *UsecaseInteractionUnitSuite) TestAddToWatchlist(t provider.T) {
	t.Parallel()

	t.Run("Should add movie to watchlist", func(t provider.T) {
		r := initResources(t)
		r.movies.On("Lock", r.ctx, r.movieID).Return(nil).Once()
		r.actions.On("Load", r.ctx, r.userID, r.movieID).Return(model.MovieAction{}, notFound()).Once()
		r.actions.On("Save", r.ctx, r.action(false, false, true)).Return(r.action(false, false, true), nil).Once()
		r.actions.On("LoadAll", r.ctx, r.userID).Return([]model.MovieAction{r.action(false, false, true)}, nil).Once()

		watchlist, err := r.usecase.AddToWatchlist(r.ctx, r.userID, r.movieID)
		assert.NoError(t, err)
		assert.Equal(t, []uuid.UUID{r.movieID}, watchlist)
	})

	t.Run("Should reject duplicate without writing", func(t provider.T) {
		r := initResources(t)
		r.movies.On("Lock", r.ctx, r.movieID).Return(nil).Once()
		r.actions.On("Load", r.ctx, r.userID, r.movieID).Return(r.action(false, false, true), nil).Once()

		_, err := r.usecase.AddToWatchlist(r.ctx, r.userID, r.movieID)
		assert.ErrorIs(t, err, ErrAlreadyInWatchlist)
		r.actions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Should fail for unknown movie", func(t provider.T) {
		r := initResources(t)
		r.movies.On("Lock", r.ctx, r.movieID).Return(notFound()).Once()

		_, err := r.usecase.AddToWatchlist(r.ctx, r.userID, r.movieID)
		assert.ErrorIs(t, err, ErrMovieNotFound)
	})
}

func (suite *UsecaseInteractionUnitSuite) TestMarkAsWatched(t provider.T) {
	t.Parallel()

	t.Run("Should mark watched and clear watchlist", func(t provider.T) {
		r := initResources(t)
		r.movies.On("Lock", r.ctx, r.movieID).Return(nil).Once()
		r.actions.On("Load", r.ctx, r.userID, r.movieID).Return(r.action(false, false, true), nil).Once()
		r.actions.On("Save", r.ctx, r.action(false, true, false)).Return(r.action(false, true, false), nil).Once()
		r.actions.On("LoadAll", r.ctx, r.userID).Return([]model.MovieAction{r.action(false, true, false)}, nil).Once()

		watched, err := r.usecase.MarkAsWatched(r.ctx, r.userID, r.movieID)
		assert.NoError(t, err)
		assert.Equal(t, []uuid.UUID{r.movieID}, watched)
	})

	t.Run("Should reject already watched movie", func(t provider.T) {
		r := initResources(t)
		r.movies.On("Lock", r.ctx, r.movieID).Return(nil).Once()
		r.actions.On("Load", r.ctx, r.userID, r.movieID).Return(r.action(false, true, false), nil).Once()

		_, err := r.usecase.MarkAsWatched(r.ctx, r.userID, r.movieID)
		assert.ErrorIs(t, err, ErrAlreadyWatched)
	})
}

func (suite *UsecaseInteractionUnitSuite) TestRemoveFromWatchlist(t provider.T) {
	t.Parallel()

	t.Run("Should remove movie", func(t provider.T) {
		r := initResources(t)
		r.movies.On("Lock", r.ctx, r.movieID).Return(nil).Once()
		r.actions.On("Load", r.ctx, r.userID, r.movieID).Return(r.action(true, false, true), nil).Once()
		r.actions.On("Save", r.ctx, r.action(true, false, false)).Return(r.action(true, false, false), nil).Once()
		r.actions.On("LoadAll", r.ctx, r.userID).Return([]model.MovieAction{r.action(true, false, false)}, nil).Once()

		watchlist, err := r.usecase.RemoveFromWatchlist(r.ctx, r.userID, r.movieID)
		assert.NoError(t, err)
		assert.Empty(t, watchlist)
	})

	t.Run("Should reject movie not in watchlist without writing", func(t provider.T) {
		r := initResources(t)
		r.movies.On("Lock", r.ctx, r.movieID).Return(nil).Once()
		r.actions.On("Load", r.ctx, r.userID, r.movieID).Return(model.MovieAction{}, notFound()).Once()

		_, err := r.usecase.RemoveFromWatchlist(r.ctx, r.userID, r.movieID)
		assert.ErrorIs(t, err, ErrNotInWatchlist)
		r.actions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func (suite *UsecaseInteractionUnitSuite) TestAddReview(t provider.T) {
	t.Parallel()

	author := model.Identity{ID: uuid.New(), Username: "alice"}

	testCases := []struct {
		name        string
		input       func(r *resources) ReviewInput
		setupMocks  func(r *resources)
		expectedErr error
	}{
		{
			name: "Should store review and recompute average",
			input: func(r *resources) ReviewInput {
				return ReviewInput{MovieID: r.movieID, Author: author, Body: " good ", Rating: 3}
			},
			setupMocks: func(r *resources) {
				r.movies.On("Lock", r.ctx, r.movieID).Return(nil).Once()
				r.movies.On("AddReview", r.ctx, mock.MatchedBy(func(rv model.Review) bool {
					return rv.MovieID == r.movieID && rv.UserID == author.ID &&
						rv.Username == "alice" && rv.Body == "good" && rv.Rating == 3
				})).Return(nil).Once()
				r.movies.On("Ratings", r.ctx, r.movieID).Return([]float64{4, 5, 3}, nil).Once()
				r.movies.On("SetAverageRating", r.ctx, r.movieID, 4.0).Return(nil).Once()
				r.movies.On("LoadByID", r.ctx, r.movieID).Return(model.Movie{ID: r.movieID, AverageRating: 4}, nil).Once()
			},
		},
		{
			name: "Should reject empty body",
			input: func(r *resources) ReviewInput {
				return ReviewInput{MovieID: r.movieID, Author: author, Body: "   ", Rating: 3}
			},
			setupMocks:  func(r *resources) {},
			expectedErr: ErrInvalidInput,
		},
		{
			name: "Should reject zero rating",
			input: func(r *resources) ReviewInput {
				return ReviewInput{MovieID: r.movieID, Author: author, Body: "ok", Rating: 0}
			},
			setupMocks:  func(r *resources) {},
			expectedErr: ErrInvalidInput,
		},
		{
			name: "Should reject rating off the half star grid",
			input: func(r *resources) ReviewInput {
				return ReviewInput{MovieID: r.movieID, Author: author, Body: "ok", Rating: 0.1}
			},
			setupMocks:  func(r *resources) {},
			expectedErr: ErrInvalidInput,
		},
		{
			name: "Should reject rating above five",
			input: func(r *resources) ReviewInput {
				return ReviewInput{MovieID: r.movieID, Author: author, Body: "ok", Rating: 5.5}
			},
			setupMocks:  func(r *resources) {},
			expectedErr: ErrInvalidInput,
		},
		{
			name: "Should fail for unknown movie",
			input: func(r *resources) ReviewInput {
				return ReviewInput{MovieID: r.movieID, Author: author, Body: "ok", Rating: 4.5}
			},
			setupMocks: func(r *resources) {
				r.movies.On("Lock", r.ctx, r.movieID).Return(notFound()).Once()
			},
			expectedErr: ErrMovieNotFound,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			movie, err := r.usecase.AddReview(r.ctx, tc.input(r))

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 4.0, movie.AverageRating)
		})
	}
}

func (suite *UsecaseInteractionUnitSuite) TestGetMovieAction(t provider.T) {
	t.Parallel()

	t.Run("Should return defaults when no record", func(t provider.T) {
		r := initResources(t)
		r.actions.On("Load", r.ctx, r.userID, r.movieID).Return(model.MovieAction{}, notFound()).Once()

		action, err := r.usecase.GetMovieAction(r.ctx, r.userID, r.movieID)
		assert.NoError(t, err)
		assert.Equal(t, r.action(false, false, false), action)
	})

	t.Run("Should return stored record", func(t provider.T) {
		r := initResources(t)
		r.actions.On("Load", r.ctx, r.userID, r.movieID).Return(r.action(true, true, false), nil).Once()

		action, err := r.usecase.GetMovieAction(r.ctx, r.userID, r.movieID)
		assert.NoError(t, err)
		assert.True(t, action.Liked)
		assert.True(t, action.Watched)
	})
}

func (suite *UsecaseInteractionUnitSuite) TestSetMovieAction(t provider.T) {
	t.Parallel()

	yes, no := true, false

	t.Run("Should merge supplied flags and add like", func(t provider.T) {
		r := initResources(t)
		r.movies.On("Lock", r.ctx, r.movieID).Return(nil).Once()
		r.actions.On("Load", r.ctx, r.userID, r.movieID).Return(r.action(false, true, false), nil).Once()
		r.actions.On("Save", r.ctx, r.action(true, true, false)).Return(r.action(true, true, false), nil).Once()
		r.movies.On("AddLike", r.ctx, r.movieID, r.userID).Return(nil).Once()
		r.actions.On("LoadAll", r.ctx, r.userID).Return([]model.MovieAction{r.action(true, true, false)}, nil).Once()

		actions, err := r.usecase.SetMovieAction(r.ctx, r.userID, r.movieID, model.ActionPatch{Liked: &yes})
		assert.NoError(t, err)
		assert.Len(t, actions, 1)
	})

	t.Run("Should keep likes untouched when liked does not change", func(t provider.T) {
		r := initResources(t)
		r.movies.On("Lock", r.ctx, r.movieID).Return(nil).Once()
		r.actions.On("Load", r.ctx, r.userID, r.movieID).Return(model.MovieAction{}, notFound()).Once()
		r.actions.On("Save", r.ctx, r.action(false, false, false)).Return(r.action(false, false, false), nil).Once()
		r.actions.On("LoadAll", r.ctx, r.userID).Return([]model.MovieAction{r.action(false, false, false)}, nil).Once()

		_, err := r.usecase.SetMovieAction(r.ctx, r.userID, r.movieID, model.ActionPatch{Liked: &no, InWatchlist: &no})
		assert.NoError(t, err)
		r.movies.AssertNotCalled(t, "AddLike", mock.Anything, mock.Anything, mock.Anything)
		r.movies.AssertNotCalled(t, "RemoveLike", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should fail for unknown movie", func(t provider.T) {
		r := initResources(t)
		r.movies.On("Lock", r.ctx, r.movieID).Return(notFound()).Once()

		_, err := r.usecase.SetMovieAction(r.ctx, r.userID, r.movieID, model.ActionPatch{Watched: &yes})
		assert.ErrorIs(t, err, ErrMovieNotFound)
	})
}

func (suite *UsecaseInteractionUnitSuite) TestUserMovieLists(t provider.T) {
	t.Parallel()

	t.Run("Should populate lists in order", func(t provider.T) {
		r := initResources(t)
		m1, m2 := uuid.New(), uuid.New()
		r.users.On("Exists", r.ctx, r.userID).Return(true, nil).Once()
		r.actions.On("LoadAll", r.ctx, r.userID).Return([]model.MovieAction{
			{UserID: r.userID, MovieID: m1, Liked: true, Watched: true},
			{UserID: r.userID, MovieID: m2, Liked: true, InWatchlist: true},
		}, nil).Once()
		r.movies.On("LoadSummaries", r.ctx, []uuid.UUID{m1, m2}).Return([]model.MovieSummary{
			{ID: m2, Title: "Two"},
			{ID: m1, Title: "One"},
		}, nil).Once()

		lists, err := r.usecase.UserMovieLists(r.ctx, r.userID)
		require.NoError(t, err)
		assert.Equal(t, []model.MovieSummary{{ID: m1, Title: "One"}, {ID: m2, Title: "Two"}}, lists.Liked)
		assert.Equal(t, []model.MovieSummary{{ID: m1, Title: "One"}}, lists.Watched)
		assert.Equal(t, []model.MovieSummary{{ID: m2, Title: "Two"}}, lists.Watchlist)
	})

	t.Run("Should fail for unknown user", func(t provider.T) {
		r := initResources(t)
		r.users.On("Exists", r.ctx, r.userID).Return(false, nil).Once()

		_, err := r.usecase.UserMovieLists(r.ctx, r.userID)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

// memoryStore backs the scenario tests with real state instead of
// scripted mock answers.
type memoryStore struct {
	users   map[uuid.UUID]bool
	movies  map[uuid.UUID]*model.Movie
	actions map[[2]uuid.UUID]model.MovieAction
	order   []model.MovieAction
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:   make(map[uuid.UUID]bool),
		movies:  make(map[uuid.UUID]*model.Movie),
		actions: make(map[[2]uuid.UUID]model.MovieAction),
	}
}

func (s *memoryStore) Exists(ctx context.Context, ID uuid.UUID) (bool, error) {
	return s.users[ID], nil
}

func (s *memoryStore) Lock(ctx context.Context, ID uuid.UUID) error {
	if _, ok := s.movies[ID]; !ok {
		return model.ErrNotFound
	}
	return nil
}

func (s *memoryStore) LoadByID(ctx context.Context, ID uuid.UUID) (model.Movie, error) {
	m, ok := s.movies[ID]
	if !ok {
		return model.Movie{}, model.ErrNotFound
	}
	return *m, nil
}

func (s *memoryStore) LoadSummaries(ctx context.Context, IDs []uuid.UUID) ([]model.MovieSummary, error) {
	out := make([]model.MovieSummary, 0)
	for _, id := range IDs {
		if m, ok := s.movies[id]; ok {
			out = append(out, model.MovieSummary{ID: m.ID, Title: m.Title})
		}
	}
	return out, nil
}

func (s *memoryStore) AddLike(ctx context.Context, movieID, userID uuid.UUID) error {
	m := s.movies[movieID]
	for _, id := range m.Likes {
		if id == userID {
			return nil
		}
	}
	m.Likes = append(m.Likes, userID)
	return nil
}

func (s *memoryStore) RemoveLike(ctx context.Context, movieID, userID uuid.UUID) error {
	m := s.movies[movieID]
	likes := make([]uuid.UUID, 0, len(m.Likes))
	for _, id := range m.Likes {
		if id != userID {
			likes = append(likes, id)
		}
	}
	m.Likes = likes
	return nil
}

func (s *memoryStore) LikesCount(ctx context.Context, movieID uuid.UUID) (int, error) {
	return len(s.movies[movieID].Likes), nil
}

func (s *memoryStore) AddReview(ctx context.Context, review model.Review) error {
	m := s.movies[review.MovieID]
	m.Reviews = append(m.Reviews, review)
	return nil
}

func (s *memoryStore) Ratings(ctx context.Context, movieID uuid.UUID) ([]float64, error) {
	ratings := make([]float64, 0)
	for _, r := range s.movies[movieID].Reviews {
		ratings = append(ratings, r.Rating)
	}
	return ratings, nil
}

func (s *memoryStore) SetAverageRating(ctx context.Context, movieID uuid.UUID, avg float64) error {
	s.movies[movieID].AverageRating = avg
	return nil
}

func (s *memoryStore) Load(ctx context.Context, userID, movieID uuid.UUID) (model.MovieAction, error) {
	a, ok := s.actions[[2]uuid.UUID{userID, movieID}]
	if !ok {
		return model.MovieAction{}, model.ErrNotFound
	}
	return a, nil
}

func (s *memoryStore) Save(ctx context.Context, a model.MovieAction) (model.MovieAction, error) {
	key := [2]uuid.UUID{a.UserID, a.MovieID}
	if _, ok := s.actions[key]; !ok {
		s.order = append(s.order, a)
	}
	s.actions[key] = a
	return a, nil
}

func (s *memoryStore) LoadAll(ctx context.Context, userID uuid.UUID) ([]model.MovieAction, error) {
	out := make([]model.MovieAction, 0)
	for _, a := range s.order {
		if a.UserID == userID {
			out = append(out, s.actions[[2]uuid.UUID{a.UserID, a.MovieID}])
		}
	}
	return out, nil
}

func newScenario() (*Usecase, *memoryStore, uuid.UUID, uuid.UUID) {
	store := newMemoryStore()
	userID, movieID := uuid.New(), uuid.New()
	store.users[userID] = true
	store.movies[movieID] = &model.Movie{ID: movieID, Title: "Dune", Likes: []uuid.UUID{}, CreatedAt: time.Now()}
	return New(store, store, store, passthroughTx{}), store, userID, movieID
}

func (suite *UsecaseInteractionUnitSuite) TestLikeUnlikeScenario(t provider.T) {
	t.Parallel()

	u, store, userID, movieID := newScenario()
	ctx := context.Background()

	first, err := u.ToggleLike(ctx, userID, movieID)
	require.NoError(t, err)
	assert.True(t, first.Liked)
	assert.Equal(t, 1, first.MovieLikes)
	assert.Equal(t, []uuid.UUID{movieID}, first.LikedMovies)

	second, err := u.ToggleLike(ctx, userID, movieID)
	require.NoError(t, err)
	assert.False(t, second.Liked)
	assert.Equal(t, 0, second.MovieLikes)
	assert.Empty(t, second.LikedMovies)
	assert.Empty(t, store.movies[movieID].Likes)
}

func (suite *UsecaseInteractionUnitSuite) TestWatchedClearsWatchlist(t provider.T) {
	t.Parallel()

	u, _, userID, movieID := newScenario()
	ctx := context.Background()

	watchlist, err := u.AddToWatchlist(ctx, userID, movieID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{movieID}, watchlist)

	_, err = u.AddToWatchlist(ctx, userID, movieID)
	assert.ErrorIs(t, err, ErrAlreadyInWatchlist)

	watched, err := u.MarkAsWatched(ctx, userID, movieID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{movieID}, watched)

	action, err := u.GetMovieAction(ctx, userID, movieID)
	require.NoError(t, err)
	assert.False(t, action.InWatchlist)
	assert.True(t, action.Watched)

	_, err = u.RemoveFromWatchlist(ctx, userID, movieID)
	assert.ErrorIs(t, err, ErrNotInWatchlist)
}

func (suite *UsecaseInteractionUnitSuite) TestSetMovieActionKeepsLikesInSync(t provider.T) {
	t.Parallel()

	u, store, userID, movieID := newScenario()
	ctx := context.Background()
	yes, no := true, false

	_, err := u.SetMovieAction(ctx, userID, movieID, model.ActionPatch{Liked: &yes})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{userID}, store.movies[movieID].Likes)

	res, err := u.ToggleLike(ctx, userID, movieID)
	require.NoError(t, err)
	assert.False(t, res.Liked)

	actions, err := u.SetMovieAction(ctx, userID, movieID, model.ActionPatch{Liked: &no, Watched: &yes})
	require.NoError(t, err)
	assert.Empty(t, store.movies[movieID].Likes)
	if assert.Len(t, actions, 1) {
		assert.True(t, actions[0].Watched)
		assert.False(t, actions[0].Liked)
	}
}

func (suite *UsecaseInteractionUnitSuite) TestAverageRatingScenario(t provider.T) {
	t.Parallel()

	u, _, _, movieID := newScenario()
	ctx := context.Background()
	author := model.Identity{ID: uuid.New(), Username: "bob"}

	var movie model.Movie
	for _, rating := range []float64{4, 5, 3} {
		var err error
		movie, err = u.AddReview(ctx, ReviewInput{MovieID: movieID, Author: author, Body: "text", Rating: rating})
		require.NoError(t, err)
	}

	assert.Equal(t, 4.0, movie.AverageRating)
	assert.Len(t, movie.Reviews, 3)
}

func TestUsecaseInteractionUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseInteractionUnitSuite))
}
