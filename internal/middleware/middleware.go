// Package middleware holds the HTTP middleware shared by the server:
// request logging and CORS.
package middleware

import "net/http"

type Middleware func(http.Handler) http.Handler

// Wrap applies middlewares so the first listed runs outermost.
func Wrap(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
