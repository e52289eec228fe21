// Package exerciselog реализует HTTP-обработчик выборки журнала упражнений.
package exerciselog

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/exercise-tracker/internal/http/response"
	"github.com/magabrotheeeer/exercise-tracker/internal/models"
	"github.com/magabrotheeeer/exercise-tracker/internal/services/exercise"
)

const msgUserNotFound = "Not user with that ID is found."

// Service описывает выборку журнала.
type Service interface {
	Log(ctx context.Context, q models.LogQuery) (*models.UserLog, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
	loc     *time.Location
}

// New создает новый Handler. Если loc равен nil, даты печатаются в UTC.
func New(log *slog.Logger, service Service, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		log:     log,
		service: service,
		loc:     loc,
	}
}

// ServeHTTP godoc
// @Summary Журнал упражнений
// @Description Возвращает журнал пользователя по возрастанию даты. from и to включительно, limit ограничивает число записей.
// @Tags Exercise
// @Produce json
// @Param userId query string true "Идентификатор пользователя"
// @Param from query string false "Начальная дата, например 2024-01-01"
// @Param to query string false "Конечная дата"
// @Param limit query int false "Максимальное число записей"
// @Success 200 {object} response.Log
// @Failure 400 {object} response.Errors "Некорректная дата"
// @Failure 404 {string} string "Not user with that ID is found."
// @Failure 500 {string} string "Internal Server Error"
// @Router /exercise/log [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.exercise.exerciselog"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	query := r.URL.Query()
	q := models.LogQuery{
		UserID: query.Get("userId"),
		From:   query.Get("from"),
		To:     query.Get("to"),
		Limit:  query.Get("limit"),
	}

	userLog, err := h.service.Log(r.Context(), q)
	if err != nil {
		var invalid *exercise.ValidationError
		switch {
		case errors.Is(err, exercise.ErrUserNotFound):
			log.Info("user not found", slog.String("user_id", q.UserID))
			response.JSON(w, r, http.StatusNotFound, msgUserNotFound)
		case errors.As(err, &invalid):
			log.Info("invalid filter", slog.Any("errors", invalid.Messages))
			response.JSON(w, r, http.StatusBadRequest, response.Errors{Error: invalid.Messages})
		default:
			response.Fail(w, r, log, err)
		}
		return
	}

	log.Debug("log fetched", slog.Int("count", len(userLog.Log)))
	response.JSON(w, r, http.StatusOK, response.FromLog(userLog, h.loc))
}
