// Package respond provides utilities for sending HTTP responses in JSON format.
// Error responses run through an ordered normalization chain so that every
// failure leaves the service as a well-formed {"msg": ...} body and nothing
// internal leaks to the client.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/pathutil"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already out; all we can do is log.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Msg writes a JSON error body of the form {"msg": "..."} with the given
// status code. Every error response the service produces goes through here.
func Msg(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, map[string]string{"msg": msg})
}

// pgInvalidTextRepresentation is the SQLSTATE Postgres raises when a value
// cannot be cast to the column type, e.g. a non-numeric string bound to an
// integer parameter.
const pgInvalidTextRepresentation = "22P02"

// interceptor inspects an error and, if it recognizes it, returns the status
// code and client-facing message to respond with.
type interceptor func(err error) (code int, msg string, ok bool)

// interceptors is the normalization chain. Order matters: type errors are
// classified before request errors so that a malformed ID is always reported
// as a 400 regardless of what else went wrong downstream.
var interceptors = []interceptor{
	invalidType,
	requestError,
}

// invalidType catches malformed identifiers, whether rejected at parse time
// or by Postgres as an invalid text representation.
func invalidType(err error) (int, string, bool) {
	if errors.Is(err, pathutil.ErrInvalidID) {
		return http.StatusBadRequest, "Invalid data type", true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextRepresentation {
		return http.StatusBadRequest, "Invalid data type", true
	}
	return 0, "", false
}

// requestError passes through errors that already carry a status and a
// client-safe message.
func requestError(err error) (int, string, bool) {
	var reqErr *entity.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Status, reqErr.Msg, true
	}
	return 0, "", false
}

// Err normalizes err and writes the corresponding error response. Errors no
// interceptor claims are treated as internal: the detail is logged with
// sensitive fragments masked and the client sees only a generic message.
func Err(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	for _, intercept := range interceptors {
		if code, msg, ok := intercept(err); ok {
			Msg(w, code, msg)
			return
		}
	}

	slog.Default().Error("internal server error",
		slog.String("error", SanitizeError(err)))
	Msg(w, http.StatusInternalServerError, "Internal server error")
}
