// Package health отвечает на проверки живости сервиса.
package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/magabrotheeeer/exercise-tracker/internal/http/response"
	"github.com/magabrotheeeer/exercise-tracker/internal/lib/sl"
)

// Pinger проверяет доступность зависимости.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	log     *slog.Logger
	db      Pinger
	timeout time.Duration
}

type Status struct {
	Status string `json:"status" example:"ok"`
}

func New(log *slog.Logger, db Pinger) *Handler {
	return &Handler{log: log, db: db, timeout: 2 * time.Second}
}

// ServeHTTP godoc
// @Summary Проверка состояния
// @Tags Service
// @Produce json
// @Success 200 {object} health.Status
// @Failure 503 {object} health.Status
// @Router /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.log.Error("storage ping failed", sl.Err(err))
		response.JSON(w, r, http.StatusServiceUnavailable, Status{Status: "unavailable"})
		return
	}
	response.JSON(w, r, http.StatusOK, Status{Status: "ok"})
}
