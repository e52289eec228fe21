// Package add реализует HTTP-обработчик добавления упражнения в журнал.
//
// Ответ отправляется только после того, как запись сохранена.
package add

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/exercise-tracker/internal/http/request"
	"github.com/magabrotheeeer/exercise-tracker/internal/http/response"
	"github.com/magabrotheeeer/exercise-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/exercise-tracker/internal/models"
	"github.com/magabrotheeeer/exercise-tracker/internal/services/exercise"
)

const msgUserNotFound = "No user found..."

// Service описывает добавление упражнения.
type Service interface {
	AddExercise(ctx context.Context, req models.AddExerciseRequest) (*models.AddedExercise, error)
}

// Handler обрабатывает POST /api/exercise/add.
type Handler struct {
	log     *slog.Logger
	service Service
	loc     *time.Location // Часовой пояс для вывода даты
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
// @Summary Добавить упражнение
// @Description Добавляет запись в журнал пользователя. Дата необязательна, по умолчанию текущий момент.
// @Tags Exercise
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body models.AddExerciseRequest true "Данные упражнения"
// @Success 200 {object} response.AddedExercise
// @Failure 400 {object} response.Missing "Не заполнены обязательные поля"
// @Failure 400 {object} response.Errors "Ошибки формата"
// @Failure 404 {object} response.Msg "Пользователь не найден"
// @Failure 500 {string} string "Internal Server Error"
// @Router /exercise/add [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.exercise.add"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.AddExerciseRequest
	if err := request.Decode(r, &req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		response.Text(w, r, http.StatusBadRequest, response.MsgInvalidRequest)
		return
	}

	added, err := h.service.AddExercise(r.Context(), req)
	if err != nil {
		var (
			missing *exercise.MissingFieldError
			invalid *exercise.ValidationError
		)
		switch {
		case errors.Is(err, exercise.ErrUserNotFound):
			log.Info("user not found", slog.String("user_id", req.UserID))
			response.JSON(w, r, http.StatusNotFound, response.Msg{Msg: msgUserNotFound})
		case errors.As(err, &missing):
			log.Info("missing fields", slog.Any("fields", missing.Fields))
			response.JSON(w, r, http.StatusBadRequest, response.Missing{Missing: missing.Fields})
		case errors.As(err, &invalid):
			log.Info("invalid fields", slog.Any("errors", invalid.Messages))
			response.JSON(w, r, http.StatusBadRequest, response.Errors{Error: invalid.Messages})
		default:
			response.Fail(w, r, log, err)
		}
		return
	}

	log.Info("exercise added", slog.String("user_id", added.UserID))
	response.JSON(w, r, http.StatusOK, response.FromAdded(added, h.loc))
}
