// Package respond writes the JSON envelopes returned by the HTTP API.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/estate-crm/internal/apperr"
	"github.com/aliskhannn/estate-crm/internal/locale"
)

// Error codes the dashboard branches on.
const (
	CodeUnauthorized = "unauthorized"
	CodeValidation   = "validation"
	CodeNotFound     = "not_found"
	CodeBlocked      = "blocked"
	CodeInternal     = "internal"
)

type success struct {
	Result interface{} `json:"result"`
}

type failure struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

func OK(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, success{Result: v})
}

func Created(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusCreated, success{Result: v})
}

func Fail(w http.ResponseWriter, status int, err error) {
	JSON(w, status, failure{Error: err.Error()})
}

// FailCode is Fail with a machine-readable code.
func FailCode(w http.ResponseWriter, status int, code string, msg string) {
	JSON(w, status, failure{Error: msg, Code: code})
}

// AppError maps a classified error to its status, code and user-facing text in lang.
// Validation messages are passed through; backend details never are.
func AppError(w http.ResponseWriter, lang locale.Lang, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		FailCode(w, http.StatusUnprocessableEntity, CodeValidation, err.Error())
	case apperr.KindAuthorization:
		FailCode(w, http.StatusUnauthorized, CodeUnauthorized, locale.Unauthorized(lang))
	case apperr.KindNotFound:
		FailCode(w, http.StatusNotFound, CodeNotFound, err.Error())
	case apperr.KindBlocked:
		FailCode(w, http.StatusServiceUnavailable, CodeBlocked, locale.BlockedRemediation(lang))
	default:
		FailCode(w, http.StatusInternalServerError, CodeInternal, locale.GenericError(lang))
	}
}
