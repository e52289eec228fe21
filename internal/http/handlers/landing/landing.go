// Package landing отдает стартовую страницу с формами для ручной проверки API.
package landing

import (
	_ "embed"
	"fmt"
	"net/http"
	"os"
)

//go:embed views/index.html
var defaultPage []byte

type Handler struct {
	page []byte
}

// New возвращает обработчик встроенной страницы. Если path не пуст,
// страница читается из файла один раз при старте.
func New(path string) (*Handler, error) {
	const op = "handlers.landing.New"
	if path == "" {
		return &Handler{page: defaultPage}, nil
	}
	page, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Handler{page: page}, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.page)
}
