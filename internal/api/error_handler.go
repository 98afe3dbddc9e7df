package api

import (
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/userhub/account-api/internal/core/domain"
)

// validationResponse is the envelope for 422 responses:
// {"errors": {"email": ["...", "..."]}}.
type validationResponse struct {
	Errors map[string][]string `json:"errors"`
}

// unauthenticatedResponse is the uniform 401 body. The message never varies,
// whether the email was unknown, the password wrong, or the token missing or
// revoked.
type unauthenticatedResponse struct {
	Message string `json:"message"`
}

// internalResponse is the envelope for unexpected failures. Error detail is
// included only outside production.
type internalResponse struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Error      string `json:"error,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders validation failures as 422 with the per-field error bag.
//   - Renders every authentication failure as 401 {"message":"Unauthenticated."}.
//   - Logs unexpected errors and converts them to a structured 500 body,
//     never a stack trace. exposeDetail controls whether the underlying
//     error string is echoed back (off in production).
func NewHTTPErrorHandler(log zerolog.Logger, exposeDetail bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			_ = c.JSON(http.StatusUnprocessableEntity, validationResponse{Errors: verr.Fields})
			return
		case errors.Is(err, domain.ErrUnauthenticated):
			_ = c.JSON(http.StatusUnauthorized, unauthenticatedResponse{Message: "Unauthenticated."})
			return
		}

		// Echo's own errors (404 from the router, 405, oversized bodies...).
		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Code == http.StatusUnauthorized {
				_ = c.JSON(http.StatusUnauthorized, unauthenticatedResponse{Message: "Unauthenticated."})
				return
			}
			_ = c.JSON(he.Code, map[string]string{"error": fmt.Sprintf("%v", he.Message)})
			return
		}

		// Unexpected error: log the real cause, return the structured body.
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")

		resp := internalResponse{
			StatusCode: http.StatusInternalServerError,
			Message:    "Error in " + operationName(c.Path()),
		}
		if exposeDetail {
			resp.Error = err.Error()
		}
		_ = c.JSON(http.StatusInternalServerError, resp)
	}
}

// operationName derives the operation label for the 500 envelope from the
// route path: "/api/register" → "register".
func operationName(routePath string) string {
	op := strings.TrimSuffix(path.Base(routePath), "/")
	if op == "" || op == "." || op == "/" {
		return "request"
	}
	return op
}
