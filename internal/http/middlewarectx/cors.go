package middlewarectx

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS разрешает запросы с любых источников, как это нужно для
// проверочных клиентов. Preflight-запросы получают 200.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	})
}
