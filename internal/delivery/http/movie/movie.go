package http_movie

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	http_common "github.com/ysn7199/yourmovies/core/internal/delivery/http/common"
	"github.com/ysn7199/yourmovies/core/internal/model"
	usecase_interaction "github.com/ysn7199/yourmovies/core/internal/usecase/interaction"
	usecase_movie "github.com/ysn7199/yourmovies/core/internal/usecase/movie"
)

const (
	MsgMovieNotFound   = "Movie not found"
	MsgInvalidMovieID  = "Invalid movie ID"
	MsgInvalidBody     = "Invalid request body"
	MsgPosterUpload    = "Failed to upload poster"
	maxPosterSizeBytes = 10 << 20
)

//go:generate mockery --name=MovieUsecase --output=./mocks --filename=movie_usecase.go
type MovieUsecase interface {
	List(ctx context.Context, q usecase_movie.ListQuery) (usecase_movie.Page, error)
	GetByID(ctx context.Context, ID uuid.UUID) (model.Movie, error)
	Create(ctx context.Context, m model.Movie, poster *model.Poster) (model.Movie, error)
	Update(ctx context.Context, ID uuid.UUID, patch model.MoviePatch, poster *model.Poster) (model.Movie, error)
}

//go:generate mockery --name=InteractionUsecase --output=./mocks --filename=interaction_usecase.go
type InteractionUsecase interface {
	ToggleLike(ctx context.Context, userID, movieID uuid.UUID) (usecase_interaction.LikeResult, error)
	AddToWatchlist(ctx context.Context, userID, movieID uuid.UUID) ([]uuid.UUID, error)
	MarkAsWatched(ctx context.Context, userID, movieID uuid.UUID) ([]uuid.UUID, error)
	RemoveFromWatchlist(ctx context.Context, userID, movieID uuid.UUID) ([]uuid.UUID, error)
	AddReview(ctx context.Context, in usecase_interaction.ReviewInput) (model.Movie, error)
	GetMovieAction(ctx context.Context, userID, movieID uuid.UUID) (model.MovieAction, error)
	SetMovieAction(ctx context.Context, userID, movieID uuid.UUID, patch model.ActionPatch) ([]model.MovieAction, error)
	UserMovieLists(ctx context.Context, userID uuid.UUID) (model.MovieSummaryLists, error)
}

type Gate interface {
	Authenticate() gin.HandlerFunc
	AdminOnly() gin.HandlerFunc
}

type Controller struct {
	movies       MovieUsecase
	interactions InteractionUsecase
	gate         Gate

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(
	movies MovieUsecase,
	interactions InteractionUsecase,
	gate Gate,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		movies:       movies,
		interactions: interactions,
		gate:         gate,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	authenticated := c.gate.Authenticate()

	movies := router.Group("/movies")
	movies.GET("", c.getMovies)
	movies.GET("/:id", c.getMovie)
	movies.POST("", authenticated, c.createMovie)
	movies.PUT("/:id", authenticated, c.gate.AdminOnly(), c.updateMovie)

	movies.POST("/:id/like", authenticated, c.toggleLike)
	movies.POST("/:id/review", authenticated, c.addReview)
	movies.POST("/:id/watchlist", authenticated, c.addToWatchlist)
	movies.POST("/:id/watched", authenticated, c.markAsWatched)
	movies.DELETE("/:id/watchlist", authenticated, c.removeFromWatchlist)
	movies.GET("/:id/user-actions", authenticated, c.getMovieAction)
	movies.POST("/:id/user-actions", authenticated, c.setMovieAction)

	movies.GET("/user/movies", authenticated, c.userMovieLists)
}

// @Summary Получение списка фильмов
// @Description Возвращает страницу каталога. Фильмы отсортированы в порядке добавления
// @Tags Movies operations
// @Produce json
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы (не больше 100)" default(24)
// @Param genre query string false "Точное совпадение жанра"
// @Param search query string false "Подстрока названия без учета регистра"
// @Success 200 {object} MoviesListResponseDTO "Страница каталога"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /movies [get]
func (c *Controller) getMovies(ctx *gin.Context) {
	q := usecase_movie.ListQuery{
		Page:   queryInt(ctx, "page"),
		Limit:  queryInt(ctx, "limit"),
		Genre:  ctx.Query("genre"),
		Search: ctx.Query("search"),
	}

	page, err := c.movies.List(ctx.Request.Context(), q)
	if err != nil {
		c.logger.Error("failed to load movies", slog.String("error", err.Error()))
		http_common.AbortInternal(ctx)
		return
	}

	ctx.JSON(http.StatusOK, MoviesListResponseDTO{
		Movies:     ConvertFromMovieList(page.Movies),
		TotalPages: page.TotalPages,
	})
}

// @Summary Получение фильма
// @Description Возвращает фильм с отзывами и количеством лайков
// @Tags Movies operations
// @Produce json
// @Param id path string true "UUID фильма" example("550e8400-e29b-41d4-a716-446655440000")
// @Success 200 {object} MovieDetailsResponseDTO "Фильм"
// @Failure 400 {object} http_common.ErrorResponse "Некорректный UUID фильма"
// @Failure 404 {object} http_common.ErrorResponse "Фильм не найден"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /movies/{id} [get]
func (c *Controller) getMovie(ctx *gin.Context) {
	movieID, ok := c.movieID(ctx)
	if !ok {
		return
	}

	movie, err := c.movies.GetByID(ctx.Request.Context(), movieID)
	if err != nil {
		c.respondError(ctx, err, "failed to load movie")
		return
	}

	ctx.JSON(http.StatusOK, ConvertToDetails(movie))
}

// @Summary Создание фильма
// @Description Создает фильм. Доступно любому авторизованному пользователю. Постер можно передать файлом poster в multipart/form-data
// @Tags Movies operations
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param request body MovieRequestDTO true "Данные фильма"
// @Param poster formData file false "Постер"
// @Success 201 {object} MovieResponseDTO "Фильм создан"
// @Failure 400 {object} http_common.ErrorResponse "Некорректные данные запроса"
// @Failure 401 {object} http_common.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /movies [post]
func (c *Controller) createMovie(ctx *gin.Context) {
	req, poster, ok := c.bindMovie(ctx)
	if !ok {
		return
	}

	movie, err := req.ToMovie()
	if err != nil {
		http_common.Abort(ctx, http.StatusBadRequest, err.Error())
		return
	}

	created, err := c.movies.Create(ctx.Request.Context(), movie, poster)
	if err != nil {
		c.respondError(ctx, err, "failed to create movie")
		return
	}

	c.logger.Info("movie created",
		slog.String("movie_id", created.ID.String()),
		slog.String("title", created.Title),
	)
	ctx.JSON(http.StatusCreated, ConvertFromMovie(created))
}

// @Summary Обновление фильма
// @Description Частично обновляет фильм. Отсутствующие поля сохраняют прежние значения. Только для администраторов
// @Tags Movies operations
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "UUID фильма" example("550e8400-e29b-41d4-a716-446655440000")
// @Param request body MovieRequestDTO true "Изменяемые поля"
// @Param poster formData file false "Новый постер"
// @Success 200 {object} MovieResponseDTO "Фильм обновлен"
// @Failure 400 {object} http_common.ErrorResponse "Некорректные данные запроса"
// @Failure 401 {object} http_common.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} http_common.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} http_common.ErrorResponse "Фильм не найден"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /movies/{id} [put]
func (c *Controller) updateMovie(ctx *gin.Context) {
	movieID, ok := c.movieID(ctx)
	if !ok {
		return
	}

	req, poster, ok := c.bindMovie(ctx)
	if !ok {
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		http_common.Abort(ctx, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := c.movies.Update(ctx.Request.Context(), movieID, patch, poster)
	if err != nil {
		c.respondError(ctx, err, "failed to update movie")
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromMovie(updated))
}

// bindMovie reads the movie fields from JSON or multipart form, and the
// optional poster file from the latter.
func (c *Controller) bindMovie(ctx *gin.Context) (MovieRequestDTO, *model.Poster, bool) {
	var req MovieRequestDTO

	if ctx.ContentType() != binding.MIMEMultipartPOSTForm {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			c.logger.Warn("invalid request body", slog.String("error", err.Error()))
			http_common.Abort(ctx, http.StatusBadRequest, MsgInvalidBody)
			return req, nil, false
		}
		return req, nil, true
	}

	if err := ctx.ShouldBindWith(&req, binding.FormMultipart); err != nil {
		c.logger.Warn("invalid form", slog.String("error", err.Error()))
		http_common.Abort(ctx, http.StatusBadRequest, MsgInvalidBody)
		return req, nil, false
	}

	header, err := ctx.FormFile("poster")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return req, nil, true
		}
		http_common.Abort(ctx, http.StatusBadRequest, MsgInvalidBody)
		return req, nil, false
	}
	if header.Size > maxPosterSizeBytes {
		http_common.Abort(ctx, http.StatusBadRequest, "Poster is too large")
		return req, nil, false
	}

	file, err := header.Open()
	if err != nil {
		c.logger.Error("failed to open poster", slog.String("error", err.Error()))
		http_common.AbortInternal(ctx)
		return req, nil, false
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.logger.Error("failed to read poster", slog.String("error", err.Error()))
		http_common.AbortInternal(ctx)
		return req, nil, false
	}

	return req, &model.Poster{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	}, true
}

func (c *Controller) movieID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := http_common.ParamUUID(ctx, "id")
	if err != nil {
		c.logger.Warn("invalid movie ID", slog.String("error", err.Error()))
		http_common.Abort(ctx, http.StatusBadRequest, MsgInvalidMovieID)
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps usecase errors onto statuses. Unexpected errors are
// logged and answered with a generic message.
func (c *Controller) respondError(ctx *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, usecase_movie.ErrMovieNotFound),
		errors.Is(err, usecase_interaction.ErrMovieNotFound):
		http_common.Abort(ctx, http.StatusNotFound, MsgMovieNotFound)
	case errors.Is(err, usecase_interaction.ErrUserNotFound):
		http_common.Abort(ctx, http.StatusNotFound, "User not found")
	case errors.Is(err, usecase_interaction.ErrAlreadyInWatchlist):
		http_common.Abort(ctx, http.StatusBadRequest, "Movie already in watchlist")
	case errors.Is(err, usecase_interaction.ErrAlreadyWatched):
		http_common.Abort(ctx, http.StatusBadRequest, "Movie already marked as watched")
	case errors.Is(err, usecase_interaction.ErrNotInWatchlist):
		http_common.Abort(ctx, http.StatusBadRequest, "Movie not in watchlist")
	case errors.Is(err, usecase_movie.ErrInvalidInput),
		errors.Is(err, usecase_interaction.ErrInvalidInput):
		http_common.Abort(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase_movie.ErrPosterUpload):
		c.logger.Error(msg, slog.String("error", err.Error()))
		http_common.Abort(ctx, http.StatusInternalServerError, MsgPosterUpload)
	default:
		c.logger.Error(msg, slog.String("error", err.Error()))
		http_common.AbortInternal(ctx)
	}
}

// queryInt returns 0 for a missing or malformed value, which the usecase
// replaces with its default.
func queryInt(ctx *gin.Context, key string) int {
	v, err := strconv.Atoi(strings.TrimSpace(ctx.Query(key)))
	if err != nil {
		return 0
	}
	return v
}
