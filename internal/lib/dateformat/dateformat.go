// Package dateformat разбирает даты упражнений из пользовательского ввода
// и печатает их в виде "Jan 1st 2024 Monday".
package dateformat

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate возвращается, если строку не удалось разобрать ни по одному формату.
var ErrInvalidDate = errors.New("invalid date")

// layouts перечислены от самых частых к редким. Форматы без зоны разбираются в loc.
var layouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"Mon Jan 2 2006",
	"Mon Jan 02 2006 15:04:05",
	"Mon, 02 Jan 2006 15:04:05 MST",
	"2006-01",
	"2006",
}

// Parse разбирает s. Пустая строка считается ошибкой, подстановку
// «сейчас» делает вызывающая сторона.
func Parse(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// Valid сообщает, разбирается ли s.
func Valid(s string) bool {
	_, err := Parse(s, time.UTC)
	return err == nil
}

// Format печатает t в loc как "Jan 1st 2024 Monday".
func Format(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)

	var b strings.Builder
	b.WriteString(t.Format("Jan"))
	b.WriteByte(' ')
	b.WriteString(Ordinal(t.Day()))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(t.Year()))
	b.WriteByte(' ')
	b.WriteString(t.Weekday().String())
	return b.String()
}

// Ordinal возвращает число с английским порядковым суффиксом: 1st, 2nd, 11th, 23rd.
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
