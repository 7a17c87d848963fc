package http_auth_middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/ysn7199/yourmovies/core/internal/delivery/http/common"
	"github.com/ysn7199/yourmovies/core/internal/model"
	service_token "github.com/ysn7199/yourmovies/core/internal/service/auth/token"
	usecase_account "github.com/ysn7199/yourmovies/core/internal/usecase/account"
)

const (
	identityKey = "identity"
	claimsKey   = "claims"
)

const (
	MsgNoToken      = "Not authorized, no token"
	MsgTokenExpired = "Token expired"
	MsgTokenInvalid = "Invalid token"
	MsgTokenRevoked = "Token revoked"
	MsgUserNotFound = "User not found"
	MsgNotAdmin     = "Not authorized as an admin"
)

//go:generate mockery --name=TokenVerifier --output=./mocks --filename=token_verifier.go
type TokenVerifier interface {
	Verify(raw string) (*service_token.Claims, error)
}

//go:generate mockery --name=RevocationChecker --output=./mocks --filename=revocation_checker.go
type RevocationChecker interface {
	IsRevoked(tokenID string) (bool, error)
}

//go:generate mockery --name=IdentityResolver --output=./mocks --filename=identity_resolver.go
type IdentityResolver interface {
	Resolve(ctx context.Context, userID uuid.UUID) (model.Identity, error)
}

type Middleware struct {
	tokens     TokenVerifier
	revocation RevocationChecker
	identities IdentityResolver
	logger     *slog.Logger
}

func New(
	tokens TokenVerifier,
	revocation RevocationChecker,
	identities IdentityResolver,
) *Middleware {
	return &Middleware{
		tokens:     tokens,
		revocation: revocation,
		identities: identities,
		logger:     slog.Default(),
	}
}

// Authenticate requires a valid bearer token of an existing user and puts
// the user's identity on the context.
func (m *Middleware) Authenticate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		raw, ok := bearerToken(ctx.GetHeader("Authorization"))
		if !ok {
			http_common.Abort(ctx, http.StatusUnauthorized, MsgNoToken)
			return
		}

		claims, err := m.tokens.Verify(raw)
		if err != nil {
			m.logger.Warn("token rejected", slog.String("error", err.Error()))
			if errors.Is(err, service_token.ErrTokenExpired) {
				http_common.Abort(ctx, http.StatusUnauthorized, MsgTokenExpired)
				return
			}
			http_common.Abort(ctx, http.StatusUnauthorized, MsgTokenInvalid)
			return
		}

		revoked, err := m.revocation.IsRevoked(claims.TokenID())
		if err != nil {
			m.logger.Error("failed to check token revocation", slog.String("error", err.Error()))
			http_common.AbortInternal(ctx)
			return
		}
		if revoked {
			http_common.Abort(ctx, http.StatusUnauthorized, MsgTokenRevoked)
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			http_common.Abort(ctx, http.StatusUnauthorized, MsgTokenInvalid)
			return
		}

		identity, err := m.identities.Resolve(ctx.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, usecase_account.ErrUserNotFound) {
				http_common.Abort(ctx, http.StatusUnauthorized, MsgUserNotFound)
				return
			}
			m.logger.Error("failed to resolve user",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()),
			)
			http_common.AbortInternal(ctx)
			return
		}

		SetIdentity(ctx, identity, claims)
		ctx.Next()
	}
}

// AdminOnly must run after Authenticate.
func (m *Middleware) AdminOnly() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity, ok := IdentityFrom(ctx)
		if !ok || !identity.IsAdmin {
			http_common.Abort(ctx, http.StatusForbidden, MsgNotAdmin)
			return
		}
		ctx.Next()
	}
}

func SetIdentity(ctx *gin.Context, identity model.Identity, claims *service_token.Claims) {
	ctx.Set(identityKey, identity)
	ctx.Set(claimsKey, claims)
}

func IdentityFrom(ctx *gin.Context) (model.Identity, bool) {
	v, ok := ctx.Get(identityKey)
	if !ok {
		return model.Identity{}, false
	}
	identity, ok := v.(model.Identity)
	return identity, ok
}

func ClaimsFrom(ctx *gin.Context) (*service_token.Claims, bool) {
	v, ok := ctx.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*service_token.Claims)
	return claims, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
