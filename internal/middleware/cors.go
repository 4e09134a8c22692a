package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors allows any origin: the API serves local UIs and test harnesses,
// not browsers with credentials worth protecting.
func Cors() Middleware {
	return cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedHeaders: []string{"*"},
	}).Handler
}
