package usecase_account

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ysn7199/yourmovies/core/internal/model"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 6
	// bcrypt rejects longer passwords.
	MaxPasswordBytes = 72
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnknownMovie       = errors.New("unknown movie")
	ErrInternal           = errors.New("internal error")
)

//go:generate mockery --name=UserRepository --output=./mocks --filename=user_repository.go
type UserRepository interface {
	Store(ctx context.Context, u model.User) error
	LoadByEmail(ctx context.Context, email string) (model.User, error)
	LoadByID(ctx context.Context, ID uuid.UUID) (model.User, error)
}

//go:generate mockery --name=ActionRepository --output=./mocks --filename=action_repository.go
type ActionRepository interface {
	Save(ctx context.Context, a model.MovieAction) (model.MovieAction, error)
	LoadAll(ctx context.Context, userID uuid.UUID) ([]model.MovieAction, error)
}

//go:generate mockery --name=MovieRepository --output=./mocks --filename=movie_repository.go
type MovieRepository interface {
	Exists(ctx context.Context, ID uuid.UUID) (bool, error)
	AddLike(ctx context.Context, movieID, userID uuid.UUID) error
}

//go:generate mockery --name=TokenIssuer --output=./mocks --filename=token_issuer.go
type TokenIssuer interface {
	Issue(u model.User, lists model.MovieLists) (string, error)
}

//go:generate mockery --name=RevocationCache --output=./mocks --filename=revocation_cache.go
type RevocationCache interface {
	Revoke(tokenID string, ttl time.Duration) error
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type RegisterInput struct {
	Username string
	Email    string
	Password string

	LikedMovies   []uuid.UUID
	WatchedMovies []uuid.UUID
	Watchlist     []uuid.UUID
}

// Session is a signed-in user with the lists embedded in its token.
type Session struct {
	User  model.User
	Lists model.MovieLists
	Token string
}

type Usecase struct {
	users   UserRepository
	actions ActionRepository
	movies  MovieRepository
	tokens  TokenIssuer
	revoked RevocationCache
	tx      Transactor
	now     func() time.Time
}

func New(
	users UserRepository,
	actions ActionRepository,
	movies MovieRepository,
	tokens TokenIssuer,
	revoked RevocationCache,
	tx Transactor,
) *Usecase {
	return &Usecase{
		users:   users,
		actions: actions,
		movies:  movies,
		tokens:  tokens,
		revoked: revoked,
		tx:      tx,
		now:     time.Now,
	}
}

// Register creates a non-admin user. The optional initial lists become
// action records in the same transaction.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (Session, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = normalizeEmail(in.Email)
	if err := validateRegistration(in); err != nil {
		return Session{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, errors.Join(ErrInternal, err)
	}

	user := model.User{
		ID:        uuid.New(),
		Username:  in.Username,
		Email:     in.Email,
		Password:  hash,
		CreatedAt: u.now().UTC(),
	}

	var lists model.MovieLists
	err = u.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := u.users.Store(ctx, user); err != nil {
			if errors.Is(err, model.ErrAlreadyExists) {
				return fmt.Errorf("%w: %w", ErrUserAlreadyExists, err)
			}
			return errors.Join(ErrInternal, err)
		}

		if err := u.seedActions(ctx, user.ID, in); err != nil {
			return err
		}

		lists, err = u.lists(ctx, user.ID)
		return err
	})
	if err != nil {
		return Session{}, err
	}

	return u.session(user, lists)
}

func (u *Usecase) Login(ctx context.Context, email, password string) (Session, error) {
	user, err := u.users.LoadByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, errors.Join(ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	lists, err := u.lists(ctx, user.ID)
	if err != nil {
		return Session{}, err
	}

	return u.session(user, lists)
}

// Logout revokes the token until it would have expired.
func (u *Usecase) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return fmt.Errorf("%w: token has no id", ErrInvalidInput)
	}

	if err := u.revoked.Revoke(tokenID, expiresAt.Sub(u.now())); err != nil {
		return errors.Join(ErrInternal, err)
	}
	return nil
}

// Resolve returns the user's identity without credentials.
func (u *Usecase) Resolve(ctx context.Context, userID uuid.UUID) (model.Identity, error) {
	user, err := u.users.LoadByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Identity{}, fmt.Errorf("%w: %w", ErrUserNotFound, err)
		}
		return model.Identity{}, errors.Join(ErrInternal, err)
	}
	return user.Identity(), nil
}

func (u *Usecase) seedActions(ctx context.Context, userID uuid.UUID, in RegisterInput) error {
	order := make([]uuid.UUID, 0)
	byMovie := make(map[uuid.UUID]*model.MovieAction)
	mark := func(ids []uuid.UUID, set func(a *model.MovieAction)) {
		for _, id := range ids {
			a, ok := byMovie[id]
			if !ok {
				action := model.NewMovieAction(userID, id)
				a = &action
				byMovie[id] = a
				order = append(order, id)
			}
			set(a)
		}
	}
	mark(in.LikedMovies, func(a *model.MovieAction) { a.Liked = true })
	mark(in.WatchedMovies, func(a *model.MovieAction) { a.Watched = true })
	mark(in.Watchlist, func(a *model.MovieAction) { a.InWatchlist = true })

	for _, movieID := range order {
		exists, err := u.movies.Exists(ctx, movieID)
		if err != nil {
			return errors.Join(ErrInternal, err)
		}
		if !exists {
			return fmt.Errorf("%w: %s", ErrUnknownMovie, movieID)
		}

		action := *byMovie[movieID]
		if _, err := u.actions.Save(ctx, action); err != nil {
			return errors.Join(ErrInternal, err)
		}
		if action.Liked {
			if err := u.movies.AddLike(ctx, movieID, userID); err != nil {
				return errors.Join(ErrInternal, err)
			}
		}
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

func (u *Usecase) session(user model.User, lists model.MovieLists) (Session, error) {
	token, err := u.tokens.Issue(user, lists)
	if err != nil {
		return Session{}, errors.Join(ErrInternal, err)
	}
	return Session{User: user, Lists: lists, Token: token}, nil
}

func validateRegistration(in RegisterInput) error {
	if in.Username == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if addr, err := mail.ParseAddress(in.Email); err != nil || addr.Address != in.Email {
		return fmt.Errorf("%w: email is not valid", ErrInvalidInput)
	}
	if len(in.Password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, MinPasswordLength)
	}
	if len(in.Password) > MaxPasswordBytes {
		return fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidInput, MaxPasswordBytes)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
