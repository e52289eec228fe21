// Package models содержит доменные структуры трекера упражнений:
// пользователя с его журналом, запись упражнения и параметры выборки журнала,
// а также структуры для приёма данных из HTTP-запросов.
package models

import "time"

// User представляет зарегистрированного пользователя вместе с журналом упражнений.
// Count всегда равен числу записей в журнале после успешного добавления.
type User struct {
	UserID    string     `json:"user_id" validate:"required"`  // Короткий внешний идентификатор
	Username  string     `json:"username" validate:"required"` // Имя пользователя
	Count     int        `json:"count" validate:"min=0"`       // Количество записей в журнале
	Log       []Exercise `json:"log"`                          // Записи в порядке добавления
	CreatedAt time.Time  `json:"created_at"`
}

// NewUserRequest — тело запроса на регистрацию (JSON или form).
type NewUserRequest struct {
	Username string `json:"username" form:"username"`
}
