package http_genre

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/ysn7199/yourmovies/core/internal/delivery/http/common"
	"github.com/ysn7199/yourmovies/core/internal/model"
	usecase_genre "github.com/ysn7199/yourmovies/core/internal/usecase/genre"
)

//go:generate mockery --name=GenreUsecase --output=./mocks --filename=genre_usecase.go
type GenreUsecase interface {
	List(ctx context.Context) ([]model.Genre, error)
	Add(ctx context.Context, name string) (model.Genre, error)
}

type Gate interface {
	Authenticate() gin.HandlerFunc
	AdminOnly() gin.HandlerFunc
}

type Controller struct {
	uc     GenreUsecase
	gate   Gate
	logger *slog.Logger
}

func New(
	uc GenreUsecase,
	gate Gate,
) *Controller {
	return &Controller{
		uc:     uc,
		gate:   gate,
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	genres := router.Group("/genres")
	genres.GET("", c.list)
	genres.POST("", c.gate.Authenticate(), c.gate.AdminOnly(), c.add)
}

// GenreDTO жанр
type GenreDTO struct {
	ID   uuid.UUID `json:"_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name string    `json:"name" example:"Drama"`
}

// AddGenreRequestDTO новый жанр
type AddGenreRequestDTO struct {
	Name string `json:"name" example:"Drama"`
}

// @Summary Список жанров
// @Description Возвращает все жанры в алфавитном порядке
// @Tags Genres operations
// @Produce json
// @Success 200 {array} GenreDTO "Жанры"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /genres [get]
func (c *Controller) list(ctx *gin.Context) {
	genres, err := c.uc.List(ctx.Request.Context())
	if err != nil {
		c.logger.Error("failed to load genres", slog.String("error", err.Error()))
		http_common.AbortInternal(ctx)
		return
	}

	out := make([]GenreDTO, len(genres))
	for i, g := range genres {
		out[i] = GenreDTO{ID: g.ID, Name: g.Name}
	}
	ctx.JSON(http.StatusOK, out)
}

// @Summary Добавление жанра
// @Description Только для администраторов
// @Tags Genres operations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddGenreRequestDTO true "Название жанра"
// @Success 201 {object} GenreDTO "Жанр добавлен"
// @Failure 400 {object} http_common.ErrorResponse "Пустое название или жанр уже существует"
// @Failure 401 {object} http_common.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} http_common.ErrorResponse "Недостаточно прав"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /genres [post]
func (c *Controller) add(ctx *gin.Context) {
	var req AddGenreRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.Abort(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	genre, err := c.uc.Add(ctx.Request.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, usecase_genre.ErrGenreAlreadyExists):
			http_common.Abort(ctx, http.StatusBadRequest, "Genre already exists")
		case errors.Is(err, usecase_genre.ErrInvalidInput):
			http_common.Abort(ctx, http.StatusBadRequest, err.Error())
		default:
			c.logger.Error("failed to add genre", slog.String("error", err.Error()))
			http_common.AbortInternal(ctx)
		}
		return
	}

	ctx.JSON(http.StatusCreated, GenreDTO{ID: genre.ID, Name: genre.Name})
}
