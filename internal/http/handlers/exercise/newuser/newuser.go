// Package newuser реализует HTTP-обработчик регистрации пользователя.
package newuser

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/exercise-tracker/internal/http/request"
	"github.com/magabrotheeeer/exercise-tracker/internal/http/response"
	"github.com/magabrotheeeer/exercise-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/exercise-tracker/internal/models"
	"github.com/magabrotheeeer/exercise-tracker/internal/services/exercise"
)

const (
	msgInvalidUsername = "Please enter a valid username."
	msgUsernameTaken   = "Username already taken..."
)

// Service описывает регистрацию пользователя.
type Service interface {
	Register(ctx context.Context, username string) (*models.User, error)
}

// Handler обрабатывает POST /api/exercise/new-user.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Зарегистрировать пользователя
// @Description Создает пользователя с пустым журналом и возвращает его идентификатор.
// @Tags Exercise
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body models.NewUserRequest true "Имя пользователя"
// @Success 200 {object} response.NewUser
// @Failure 400 {string} string "Please enter a valid username."
// @Failure 409 {string} string "Username already taken..."
// @Failure 500 {string} string "Internal Server Error"
// @Router /exercise/new-user [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.exercise.newuser"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.NewUserRequest
	if err := request.Decode(r, &req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		response.Text(w, r, http.StatusBadRequest, response.MsgInvalidRequest)
		return
	}

	user, err := h.service.Register(r.Context(), req.Username)
	switch {
	case errors.Is(err, exercise.ErrInvalidUsername):
		log.Info("empty username")
		response.JSON(w, r, http.StatusBadRequest, msgInvalidUsername)
		return
	case errors.Is(err, exercise.ErrUsernameTaken):
		log.Info("username taken", slog.String("username", req.Username))
		response.JSON(w, r, http.StatusConflict, msgUsernameTaken)
		return
	case err != nil:
		response.Fail(w, r, log, err)
		return
	}

	log.Info("user created", slog.String("user_id", user.UserID))
	response.JSON(w, r, http.StatusOK, response.NewUser{
		Username: user.Username,
		ID:       user.UserID,
	})
}
