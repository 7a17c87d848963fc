package http_movie

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/ysn7199/yourmovies/core/internal/delivery/http/common"
	http_auth_middleware "github.com/ysn7199/yourmovies/core/internal/delivery/http/middleware/auth"
	"github.com/ysn7199/yourmovies/core/internal/model"
	usecase_interaction "github.com/ysn7199/yourmovies/core/internal/usecase/interaction"
)

// target resolves the current user and the movie from the path.
func (c *Controller) target(ctx *gin.Context) (model.Identity, uuid.UUID, bool) {
	identity, ok := http_auth_middleware.IdentityFrom(ctx)
	if !ok {
		http_common.Abort(ctx, http.StatusUnauthorized, http_auth_middleware.MsgNoToken)
		return model.Identity{}, uuid.Nil, false
	}

	movieID, ok := c.movieID(ctx)
	if !ok {
		return model.Identity{}, uuid.Nil, false
	}
	return identity, movieID, true
}

// @Summary Лайк фильма
// @Description Ставит лайк или снимает его, если он уже стоит
// @Tags Interactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "UUID фильма"
// @Success 200 {object} LikeResponseDTO "Movie liked или Movie unliked"
// @Failure 400 {object} http_common.ErrorResponse "Некорректный UUID фильма"
// @Failure 401 {object} http_common.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} http_common.ErrorResponse "Фильм или пользователь не найден"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /movies/{id}/like [post]
func (c *Controller) toggleLike(ctx *gin.Context) {
	identity, movieID, ok := c.target(ctx)
	if !ok {
		return
	}

	result, err := c.interactions.ToggleLike(ctx.Request.Context(), identity.ID, movieID)
	if err != nil {
		c.respondError(ctx, err, "failed to toggle like")
		return
	}

	message := "Movie unliked"
	if result.Liked {
		message = "Movie liked"
	}
	ctx.JSON(http.StatusOK, LikeResponseDTO{
		Message:     message,
		LikedMovies: http_common.NonNilIDs(result.LikedMovies),
		MovieLikes:  result.MovieLikes,
	})
}

// @Summary Отзыв о фильме
// @Description Добавляет отзыв с оценкой от 0.5 до 5 с шагом 0.5 и пересчитывает средний рейтинг фильма
// @Tags Interactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "UUID фильма"
// @Param request body ReviewRequestDTO true "Отзыв"
// @Success 200 {object} MovieResponseDTO "Фильм с новым отзывом"
// @Failure 400 {object} http_common.ErrorResponse "Некорректные данные запроса"
// @Failure 401 {object} http_common.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} http_common.ErrorResponse "Фильм не найден"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /movies/{id}/review [post]
func (c *Controller) addReview(ctx *gin.Context) {
	identity, movieID, ok := c.target(ctx)
	if !ok {
		return
	}

	var req ReviewRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid review body", slog.String("error", err.Error()))
		http_common.Abort(ctx, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	movie, err := c.interactions.AddReview(ctx.Request.Context(), usecase_interaction.ReviewInput{
		MovieID: movieID,
		Author:  identity,
		Body:    req.Review,
		Rating:  req.Rating,
	})
	if err != nil {
		c.respondError(ctx, err, "failed to add review")
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromMovie(movie))
}

// @Summary Добавление в список "посмотреть позже"
// @Tags Interactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "UUID фильма"
// @Success 200 {object} WatchlistResponseDTO "Фильм добавлен"
// @Failure 400 {object} http_common.ErrorResponse "Фильм уже в списке"
// @Failure 401 {object} http_common.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} http_common.ErrorResponse "Фильм не найден"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /movies/{id}/watchlist [post]
func (c *Controller) addToWatchlist(ctx *gin.Context) {
	identity, movieID, ok := c.target(ctx)
	if !ok {
		return
	}

	watchlist, err := c.interactions.AddToWatchlist(ctx.Request.Context(), identity.ID, movieID)
	if err != nil {
		c.respondError(ctx, err, "failed to add to watchlist")
		return
	}

	ctx.JSON(http.StatusOK, WatchlistResponseDTO{
		Message:   "Movie added to watchlist",
		Watchlist: http_common.NonNilIDs(watchlist),
	})
}

// @Summary Отметка о просмотре
// @Description Отмечает фильм просмотренным и убирает его из списка "посмотреть позже"
// @Tags Interactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "UUID фильма"
// @Success 200 {object} WatchedResponseDTO "Фильм отмечен"
// @Failure 400 {object} http_common.ErrorResponse "Фильм уже отмечен"
// @Failure 401 {object} http_common.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} http_common.ErrorResponse "Фильм не найден"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /movies/{id}/watched [post]
func (c *Controller) markAsWatched(ctx *gin.Context) {
	identity, movieID, ok := c.target(ctx)
	if !ok {
		return
	}

	watched, err := c.interactions.MarkAsWatched(ctx.Request.Context(), identity.ID, movieID)
	if err != nil {
		c.respondError(ctx, err, "failed to mark as watched")
		return
	}

	ctx.JSON(http.StatusOK, WatchedResponseDTO{
		Message:       "Movie marked as watched",
		WatchedMovies: http_common.NonNilIDs(watched),
	})
}

// @Summary Удаление из списка "посмотреть позже"
// @Tags Interactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "UUID фильма"
// @Success 200 {object} WatchlistResponseDTO "Фильм удален из списка"
// @Failure 400 {object} http_common.ErrorResponse "Фильма нет в списке"
// @Failure 401 {object} http_common.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} http_common.ErrorResponse "Фильм не найден"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /movies/{id}/watchlist [delete]
func (c *Controller) removeFromWatchlist(ctx *gin.Context) {
	identity, movieID, ok := c.target(ctx)
	if !ok {
		return
	}

	watchlist, err := c.interactions.RemoveFromWatchlist(ctx.Request.Context(), identity.ID, movieID)
	if err != nil {
		c.respondError(ctx, err, "failed to remove from watchlist")
		return
	}

	ctx.JSON(http.StatusOK, WatchlistResponseDTO{
		Message:   "Movie removed from watchlist",
		Watchlist: http_common.NonNilIDs(watchlist),
	})
}

// @Summary Отношение пользователя к фильму
// @Description Если пользователь еще не взаимодействовал с фильмом, все флаги false
// @Tags Interactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "UUID фильма"
// @Success 200 {object} MovieActionDTO "Флаги liked, watched, inWatchlist"
// @Failure 400 {object} http_common.ErrorResponse "Некорректный UUID фильма"
// @Failure 401 {object} http_common.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /movies/{id}/user-actions [get]
func (c *Controller) getMovieAction(ctx *gin.Context) {
	identity, movieID, ok := c.target(ctx)
	if !ok {
		return
	}

	action, err := c.interactions.GetMovieAction(ctx.Request.Context(), identity.ID, movieID)
	if err != nil {
		c.respondError(ctx, err, "failed to load movie action")
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromAction(action))
}

// @Summary Изменение отношения пользователя к фильму
// @Description Применяет переданные флаги поверх текущих. Изменение liked отражается на лайках фильма
// @Tags Interactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "UUID фильма"
// @Param request body MovieActionPatchDTO true "Изменяемые флаги"
// @Success 200 {object} MovieActionsResponseDTO "Все записи пользователя"
// @Failure 400 {object} http_common.ErrorResponse "Некорректные данные запроса"
// @Failure 401 {object} http_common.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} http_common.ErrorResponse "Фильм не найден"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /movies/{id}/user-actions [post]
func (c *Controller) setMovieAction(ctx *gin.Context) {
	identity, movieID, ok := c.target(ctx)
	if !ok {
		return
	}

	var req MovieActionPatchDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid user actions body", slog.String("error", err.Error()))
		http_common.Abort(ctx, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	actions, err := c.interactions.SetMovieAction(ctx.Request.Context(), identity.ID, movieID, req.ToDomain())
	if err != nil {
		c.respondError(ctx, err, "failed to update movie action")
		return
	}

	dtos := make([]MovieActionDTO, len(actions))
	for i, a := range actions {
		dtos[i] = ConvertFromAction(a)
	}
	ctx.JSON(http.StatusOK, MovieActionsResponseDTO{
		Message: "User actions updated successfully",
		Actions: dtos,
	})
}

// @Summary Списки фильмов пользователя
// @Description Понравившиеся, просмотренные и отложенные фильмы текущего пользователя
// @Tags Interactions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserMovieListsResponseDTO "Списки фильмов"
// @Failure 401 {object} http_common.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /movies/user/movies [get]
func (c *Controller) userMovieLists(ctx *gin.Context) {
	identity, ok := http_auth_middleware.IdentityFrom(ctx)
	if !ok {
		http_common.Abort(ctx, http.StatusUnauthorized, http_auth_middleware.MsgNoToken)
		return
	}

	lists, err := c.interactions.UserMovieLists(ctx.Request.Context(), identity.ID)
	if err != nil {
		c.respondError(ctx, err, "failed to load user movie lists")
		return
	}

	ctx.JSON(http.StatusOK, UserMovieListsResponseDTO{
		LikedMovies:     http_common.SummariesFromDomain(lists.Liked),
		WatchedMovies:   http_common.SummariesFromDomain(lists.Watched),
		WatchlistMovies: http_common.SummariesFromDomain(lists.Watchlist),
	})
}
