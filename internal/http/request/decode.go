// Package request разбирает тела запросов, пришедшие в JSON или как форма.
package request

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/ajg/form"
	"github.com/go-chi/render"
)

const maxMemory = 1 << 20

// Decode заполняет v из тела запроса. Поддерживаются JSON,
// application/x-www-form-urlencoded и multipart/form-data.
// Пустое тело не считается ошибкой: поля остаются нулевыми.
// Лишние поля формы пропускаются.
func Decode(r *http.Request, v any) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxMemory); err != nil {
			return err
		}
		d := form.NewDecoder(nil)
		d.IgnoreUnknownKeys(true)
		return d.DecodeValues(v, r.MultipartForm.Value)
	case "application/x-www-form-urlencoded":
		d := form.NewDecoder(r.Body)
		d.IgnoreUnknownKeys(true)
		return d.Decode(v)
	case "":
		if r.ContentLength == 0 {
			return nil
		}
		if err := render.DecodeJSON(r.Body, v); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	}

	err := render.Decode(r, v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
