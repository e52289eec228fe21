// Package response содержит типы JSON-ответов трекера и общие функции
// для ответов с ошибками.
package response

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/exercise-tracker/internal/lib/dateformat"
	"github.com/magabrotheeeer/exercise-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/exercise-tracker/internal/models"
)

const (
	MsgNotFound       = "not found"
	MsgInternal       = "Internal Server Error"
	MsgInvalidRequest = "invalid request body"
)

// NewUser — ответ на регистрацию.
type NewUser struct {
	Username string `json:"username" example:"alice"`
	ID       string `json:"id" example:"Hk3x9Qp_aZ"`
}

// AddedExercise — ответ на добавление упражнения.
type AddedExercise struct {
	Username    string `json:"username" example:"alice"`
	ID          string `json:"id" example:"Hk3x9Qp_aZ"`
	Description string `json:"description" example:"run"`
	Duration    string `json:"duration" example:"30"`
	Date        string `json:"date" example:"Jan 1st 2024 Monday"`
}

type LogEntry struct {
	Description string `json:"description" example:"run"`
	Duration    string `json:"duration" example:"30"`
	Date        string `json:"date" example:"Jan 1st 2024 Monday"`
}

// Log — ответ на запрос журнала. Count равен длине Log после фильтрации.
type Log struct {
	Username string     `json:"username" example:"alice"`
	ID       string     `json:"id" example:"Hk3x9Qp_aZ"`
	Count    int        `json:"count" example:"1"`
	Log      []LogEntry `json:"log"`
}

type Msg struct {
	Msg string `json:"msg" example:"No user found..."`
}

// Missing перечисляет отсутствующие обязательные поля.
type Missing struct {
	Missing []string `json:"Missing" example:"Description,Duration"`
}

// Errors перечисляет все ошибки формата.
type Errors struct {
	Error []string `json:"Error" example:"Description is too long"`
}

// FromAdded формирует ответ на добавление, дата печатается в loc.
func FromAdded(e *models.AddedExercise, loc *time.Location) AddedExercise {
	return AddedExercise{
		Username:    e.Username,
		ID:          e.UserID,
		Description: e.Description,
		Duration:    e.Duration,
		Date:        dateformat.Format(e.Date, loc),
	}
}

// FromLog формирует ответ с журналом, даты печатаются в loc.
func FromLog(l *models.UserLog, loc *time.Location) Log {
	entries := make([]LogEntry, 0, len(l.Log))
	for _, e := range l.Log {
		entries = append(entries, LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        dateformat.Format(e.Date, loc),
		})
	}
	return Log{
		Username: l.Username,
		ID:       l.UserID,
		Count:    len(entries),
		Log:      entries,
	}
}

// JSON пишет v со статусом status.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// Text пишет msg как text/plain со статусом status.
func Text(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.PlainText(w, r, msg)
}

// NotFound отвечает на неизвестные маршруты и методы.
func NotFound(w http.ResponseWriter, r *http.Request) {
	Text(w, r, http.StatusNotFound, MsgNotFound)
}

// Fail отвечает на ошибку, не относящуюся к предметной области:
// ошибки валидации хранилища дают 400 с первым сообщением, остальное 500.
func Fail(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		log.Warn("record rejected by storage validation", sl.Err(err))
		Text(w, r, http.StatusBadRequest, ValidationMessage(verrs[0]))
		return
	}
	log.Error("request failed", sl.Err(err))
	Text(w, r, http.StatusInternalServerError, MsgInternal)
}

// ValidationMessage переводит ошибку поля в читаемый текст.
func ValidationMessage(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("field %s is a required field", fe.Field())
	case "max":
		return fmt.Sprintf("field %s must be at most %s characters long", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("field %s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("field %s is not valid", fe.Field())
	}
}
