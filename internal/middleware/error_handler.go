package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"github.com/ianSurii/optimus-lead-management-dashboard/internal/analytics"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// ErrBadRequest marks request validation failures raised by handlers.
var ErrBadRequest = errors.New("bad request")

func MapError(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, analytics.ErrInvalidWindow):
		return http.StatusBadRequest, ErrorResponse{Error: "invalid date window", Code: "INVALID_WINDOW", Details: err.Error()}
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, ErrorResponse{Error: "invalid request", Code: "BAD_REQUEST", Details: err.Error()}
	case errors.Is(err, analytics.ErrDataUnavailable):
		log.Error().Err(err).Msg("data source unavailable")
		return http.StatusServiceUnavailable, ErrorResponse{Error: "data unavailable", Code: "DATA_UNAVAILABLE"}
	case errors.Is(err, pgx.ErrNoRows):
		return http.StatusNotFound, ErrorResponse{Error: "resource not found", Code: "NOT_FOUND"}
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) {
		log.Error().Err(err).Msg("database unreachable")
		return http.StatusServiceUnavailable, ErrorResponse{Error: "data unavailable", Code: "DATA_UNAVAILABLE"}
	}

	log.Error().Err(err).Msg("unhandled error")
	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: "INTERNAL"}
}

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last().Err
			status, resp := MapError(err)
			c.JSON(status, resp)
		}
	}
}
