package http_auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/ysn7199/yourmovies/core/internal/delivery/http/common"
	http_auth_middleware "github.com/ysn7199/yourmovies/core/internal/delivery/http/middleware/auth"
	"github.com/ysn7199/yourmovies/core/internal/model"
	usecase_account "github.com/ysn7199/yourmovies/core/internal/usecase/account"
	usecase_interaction "github.com/ysn7199/yourmovies/core/internal/usecase/interaction"
)

//go:generate mockery --name=AccountUsecase --output=./mocks --filename=account_usecase.go
type AccountUsecase interface {
	Register(ctx context.Context, in usecase_account.RegisterInput) (usecase_account.Session, error)
	Login(ctx context.Context, email, password string) (usecase_account.Session, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

//go:generate mockery --name=ListsUsecase --output=./mocks --filename=lists_usecase.go
type ListsUsecase interface {
	UserMovieLists(ctx context.Context, userID uuid.UUID) (model.MovieSummaryLists, error)
}

type Gate interface {
	Authenticate() gin.HandlerFunc
}

type Controller struct {
	accounts  AccountUsecase
	lists     ListsUsecase
	gate      Gate
	rateLimit gin.HandlerFunc

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithRateLimit guards register and login.
func WithRateLimit(mw gin.HandlerFunc) ControllerOption {
	return func(c *Controller) {
		c.rateLimit = mw
	}
}

func New(
	accounts AccountUsecase,
	lists ListsUsecase,
	gate Gate,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		accounts: accounts,
		lists:    lists,
		gate:     gate,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")

	auth.POST("/register", c.limited(c.register)...)
	auth.POST("/login", c.limited(c.login)...)

	auth.POST("/logout", c.gate.Authenticate(), c.logout)
	auth.GET("/usermovies", c.gate.Authenticate(), c.userMovies)
}

func (c *Controller) limited(h gin.HandlerFunc) []gin.HandlerFunc {
	if c.rateLimit == nil {
		return []gin.HandlerFunc{h}
	}
	return []gin.HandlerFunc{c.rateLimit, h}
}

// RegisterRequestDTO запрос на регистрацию
type RegisterRequestDTO struct {
	Username      string   `json:"username" example:"alice"`
	Email         string   `json:"email" example:"alice@example.com"`
	Password      string   `json:"password" example:"secret123"`
	LikedMovies   []string `json:"likedMovies"`
	WatchedMovies []string `json:"watchedMovies"`
	Watchlist     []string `json:"watchlist"`
}

// LoginRequestDTO запрос на вход
type LoginRequestDTO struct {
	Email    string `json:"email" binding:"required" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// UserResponseDTO пользователь и выданный ему токен
type UserResponseDTO struct {
	ID            uuid.UUID   `json:"_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Username      string      `json:"username" example:"alice"`
	Email         string      `json:"email" example:"alice@example.com"`
	IsAdmin       bool        `json:"isAdmin" example:"false"`
	LikedMovies   []uuid.UUID `json:"likedMovies"`
	WatchedMovies []uuid.UUID `json:"watchedMovies"`
	Watchlist     []uuid.UUID `json:"watchlist"`
	Token         string      `json:"token"`
}

// UserMoviesResponseDTO списки фильмов пользователя
type UserMoviesResponseDTO struct {
	LikedMovies   []http_common.MovieSummaryDTO `json:"likedMovies"`
	Watchlist     []http_common.MovieSummaryDTO `json:"watchlist"`
	WatchedMovies []http_common.MovieSummaryDTO `json:"watchedMovies"`
}

func sessionToDTO(s usecase_account.Session) UserResponseDTO {
	return UserResponseDTO{
		ID:            s.User.ID,
		Username:      s.User.Username,
		Email:         s.User.Email,
		IsAdmin:       s.User.IsAdmin,
		LikedMovies:   http_common.NonNilIDs(s.Lists.Liked),
		WatchedMovies: http_common.NonNilIDs(s.Lists.Watched),
		Watchlist:     http_common.NonNilIDs(s.Lists.Watchlist),
		Token:         s.Token,
	}
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// @Summary Регистрация пользователя
// @Description Создает пользователя и возвращает его данные вместе с токеном. Начальные списки фильмов необязательны
// @Tags Auth operations
// @Accept json
// @Produce json
// @Param request body RegisterRequestDTO true "Данные пользователя"
// @Success 201 {object} UserResponseDTO "Пользователь создан"
// @Failure 400 {object} http_common.ErrorResponse "Некорректные данные или пользователь уже существует"
// @Failure 429 {object} http_common.ErrorResponse "Слишком много запросов"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/register [post]
func (c *Controller) register(ctx *gin.Context) {
	var req RegisterRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		http_common.Abort(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	in := usecase_account.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
	var err error
	for _, l := range []struct {
		dst *[]uuid.UUID
		src []string
	}{
		{&in.LikedMovies, req.LikedMovies},
		{&in.WatchedMovies, req.WatchedMovies},
		{&in.Watchlist, req.Watchlist},
	} {
		if *l.dst, err = parseIDs(l.src); err != nil {
			http_common.Abort(ctx, http.StatusBadRequest, "Invalid movie ID")
			return
		}
	}

	session, err := c.accounts.Register(ctx.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase_account.ErrUserAlreadyExists):
			http_common.Abort(ctx, http.StatusBadRequest, "User already exists")
		case errors.Is(err, usecase_account.ErrInvalidInput),
			errors.Is(err, usecase_account.ErrUnknownMovie):
			http_common.Abort(ctx, http.StatusBadRequest, err.Error())
		default:
			c.logger.Error("failed to register user", slog.String("error", err.Error()))
			http_common.AbortInternal(ctx)
		}
		return
	}

	c.logger.Info("user registered", slog.String("user_id", session.User.ID.String()))
	ctx.JSON(http.StatusCreated, sessionToDTO(session))
}

// @Summary Вход пользователя
// @Description Проверяет email и пароль и возвращает данные пользователя с новым токеном
// @Tags Auth operations
// @Accept json
// @Produce json
// @Param request body LoginRequestDTO true "Email и пароль"
// @Success 200 {object} UserResponseDTO "Успешный вход"
// @Failure 400 {object} http_common.ErrorResponse "Неверный формат запроса"
// @Failure 401 {object} http_common.ErrorResponse "Неверный email или пароль"
// @Failure 429 {object} http_common.ErrorResponse "Слишком много запросов"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/login [post]
func (c *Controller) login(ctx *gin.Context) {
	var req LoginRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request format", slog.String("error", err.Error()))
		http_common.Abort(ctx, http.StatusBadRequest, "Email and password are required")
		return
	}

	session, err := c.accounts.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase_account.ErrInvalidCredentials) {
			http_common.Abort(ctx, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		c.logger.Error("failed to login", slog.String("error", err.Error()))
		http_common.AbortInternal(ctx)
		return
	}

	ctx.JSON(http.StatusOK, sessionToDTO(session))
}

// @Summary Выход пользователя
// @Description Отзывает текущий токен до истечения его срока действия
// @Tags Auth operations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} http_common.MessageResponse "Токен отозван"
// @Failure 401 {object} http_common.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/logout [post]
func (c *Controller) logout(ctx *gin.Context) {
	claims, ok := http_auth_middleware.ClaimsFrom(ctx)
	if !ok {
		http_common.Abort(ctx, http.StatusUnauthorized, http_auth_middleware.MsgNoToken)
		return
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	if err := c.accounts.Logout(ctx.Request.Context(), claims.TokenID(), expiresAt); err != nil {
		if errors.Is(err, usecase_account.ErrInvalidInput) {
			http_common.Abort(ctx, http.StatusUnauthorized, http_auth_middleware.MsgTokenInvalid)
			return
		}
		c.logger.Error("failed to logout", slog.String("error", err.Error()))
		http_common.AbortInternal(ctx)
		return
	}

	ctx.JSON(http.StatusOK, http_common.MessageResponse{Message: "Logged out"})
}

// @Summary Списки фильмов пользователя
// @Description Возвращает понравившиеся, отложенные и просмотренные фильмы текущего пользователя
// @Tags Auth operations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserMoviesResponseDTO "Списки фильмов"
// @Failure 401 {object} http_common.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/usermovies [get]
func (c *Controller) userMovies(ctx *gin.Context) {
	identity, ok := http_auth_middleware.IdentityFrom(ctx)
	if !ok {
		http_common.Abort(ctx, http.StatusUnauthorized, http_auth_middleware.MsgNoToken)
		return
	}

	lists, err := c.lists.UserMovieLists(ctx.Request.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, usecase_interaction.ErrUserNotFound) {
			http_common.Abort(ctx, http.StatusNotFound, http_auth_middleware.MsgUserNotFound)
			return
		}
		c.logger.Error("failed to load user movies",
			slog.String("user_id", identity.ID.String()),
			slog.String("error", err.Error()),
		)
		http_common.AbortInternal(ctx)
		return
	}

	ctx.JSON(http.StatusOK, UserMoviesResponseDTO{
		LikedMovies:   http_common.SummariesFromDomain(lists.Liked),
		Watchlist:     http_common.SummariesFromDomain(lists.Watchlist),
		WatchedMovies: http_common.SummariesFromDomain(lists.Watched),
	})
}
