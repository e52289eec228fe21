package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// Exercise — одна запись журнала. Собственного идентификатора наружу не имеет.
type Exercise struct {
	Description string    `json:"description" validate:"required,max=48"`
	Duration    string    `json:"duration" validate:"required"` // Строка из цифр, хранится как введена
	Date        time.Time `json:"date" validate:"required"`
}

// AddExerciseRequest — тело запроса на добавление упражнения (JSON или form).
// Теги validate описывают проверки формата; обязательность полей
// проверяется отдельно, до них.
type AddExerciseRequest struct {
	UserID      string        `json:"userId" form:"userId"`
	Description string        `json:"description" form:"description" validate:"max=48"`
	Duration    DurationInput `json:"duration" form:"duration" validate:"digits"`
	Date        string        `json:"date" form:"date" validate:"omitempty,exercisedate"`
}

// DurationInput — длительность в том виде, в каком её прислал клиент.
// В JSON допускается и строка, и число: число сохраняется своей записью,
// так что 30 и "30" дают одно и то же.
type DurationInput string

// UnmarshalJSON принимает строку, число или null.
func (d *DurationInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*d = DurationInput(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*d = DurationInput(n.String())
	return nil
}

// AddedExercise — результат успешного добавления.
type AddedExercise struct {
	Username    string
	UserID      string
	Description string
	Duration    string
	Date        time.Time
}
