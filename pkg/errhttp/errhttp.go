// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to StatusFor for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/mediashelf/pkg/httpx"
	mediadomain "github.com/ghuser/mediashelf/services/media/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Wrapped sentinels are matched with errors.Is. Unrecognized errors become
// 500, and in production their message is replaced by the status text.
func WriteError(w http.ResponseWriter, err error, isProduction bool) {
	status := StatusFor(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, isProduction))
}

// StatusFor returns the HTTP status for err.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, mediadomain.ErrUnknownShelf),
		errors.Is(err, mediadomain.ErrShelfEmpty),
		errors.Is(err, mediadomain.ErrNothingToPlay):
		return http.StatusNotFound // 404
	case errors.Is(err, mediadomain.ErrInvalidItem):
		return http.StatusUnprocessableEntity // 422
	default:
		// ErrEncodingFailed lands here too.
		return http.StatusInternalServerError // 500
	}
}
