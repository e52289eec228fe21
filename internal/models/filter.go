package models

import "time"

// LogFilter задаёт выборку журнала. Нулевые From/To и Limit <= 0 не ограничивают выборку.
type LogFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// LogQuery содержит сырые параметры запроса журнала до разбора.
type LogQuery struct {
	UserID string
	From   string
	To     string
	Limit  string
}

// UserLog — журнал пользователя после сортировки и фильтрации.
type UserLog struct {
	Username string
	UserID   string
	Log      []Exercise
}
