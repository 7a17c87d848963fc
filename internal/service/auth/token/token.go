package service_token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ysn7199/yourmovies/core/internal/model"
)

const DefaultTTL = 30 * 24 * time.Hour

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims carry the identity and a snapshot of the user's lists at issue
// time. The lists are not kept in sync with later changes.
type Claims struct {
	UserID        string   `json:"id"`
	Username      string   `json:"username"`
	Email         string   `json:"email"`
	LikedMovies   []string `json:"likedMovies"`
	WatchedMovies []string `json:"watchedMovies"`
	Watchlist     []string `json:"watchlist"`
	IsAdmin       bool     `json:"isAdmin"`
	jwt.RegisteredClaims
}

// TokenID is the jti used for revocation.
func (c *Claims) TokenID() string {
	return c.ID
}

type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *Service) Issue(u model.User, lists model.MovieLists) (string, error) {
	now := s.now()
	claims := Claims{
		UserID:        u.ID.String(),
		Username:      u.Username,
		Email:         u.Email,
		LikedMovies:   idsToStrings(lists.Liked),
		WatchedMovies: idsToStrings(lists.Watched),
		Watchlist:     idsToStrings(lists.Watchlist),
		IsAdmin:       u.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

func (s *Service) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	if _, err := uuid.Parse(claims.UserID); err != nil {
		return nil, fmt.Errorf("%w: bad user id: %w", ErrTokenInvalid, err)
	}
	return claims, nil
}

func idsToStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
