package response

import (
	"encoding/json"
	"facttodo/shared/constant"
	"facttodo/shared/failure"
	"facttodo/shared/logger"
	"net/http"

	"github.com/rs/zerolog/log"
)

// HandlerFunc is an http handler that leaves error rendering to WithError.
type HandlerFunc func(writer http.ResponseWriter, request *http.Request) error

type Error struct {
	Error *string `json:"error,omitempty"`
}

// Handle adapts fn to net/http, sending any returned error through WithError.
func Handle(fn HandlerFunc) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		if err := fn(writer, request); err != nil {
			WithError(writer, err)
		}
	}
}

// WithJSON sends the payload itself as the JSON body
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, jsonPayload)
}

// WithText sends a plain text body
func WithText(writer http.ResponseWriter, code int, text string) {
	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypePlain)
	writer.WriteHeader(code)

	if _, err := writer.Write([]byte(text)); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithError translates any error into a response. Server errors get a generic body,
// their cause only goes to the log.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := failure.PublicMessage(err)

	event := log.Warn()
	if code >= http.StatusInternalServerError {
		event = log.Error()
	}

	event.Err(err).Int("status", code).Str("kind", failure.KindOf(err).String()).Msg("request failed")

	response(writer, code, Error{Error: &errMsg})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithError(writer, failure.TooManyRequests(constant.ResponseErrorRequestLimitExceeded))
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
