package failure

import (
	"errors"
	"net/http"
)

// Kind classifies a Failure raised by the persistence and fact lookup layers.
type Kind int

const (
	KindUnknown Kind = iota
	KindConfig
	KindPool
	KindQuery
	KindInit
	KindUpstream
	KindDecode
)

var kindNames = map[Kind]string{
	KindUnknown:  "unknown",
	KindConfig:   "config",
	KindPool:     "pool",
	KindQuery:    "query",
	KindInit:     "init",
	KindUpstream: "upstream",
	KindDecode:   "decode",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return kindNames[KindUnknown]
}

// Fatal reports whether the kind must stop the process at startup.
func (k Kind) Fatal() bool {
	return k == KindConfig || k == KindInit
}

const (
	MessageInternalError    = "internal server error"
	MessageNotFound         = "resource not found"
	MessageMethodNotAllowed = "method not allowed"
	MessageTooManyRequests  = "too many requests"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Message is safe to show to clients, the wrapped cause is not.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Kind    Kind   `json:"-"`
	cause   error
}

// Error returns the message, followed by the cause when there is one.
func (e *Failure) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}

	return e.Message
}

func (e *Failure) Unwrap() error {
	return e.cause
}

func newInternal(kind Kind, message string, err error) error {
	return &Failure{
		Code:    http.StatusInternalServerError,
		Message: message,
		Kind:    kind,
		cause:   err,
	}
}

// ConfigError is returned when a required startup resource cannot be loaded.
func ConfigError(err error) error {
	return newInternal(KindConfig, "config error", err)
}

// PoolError is returned when no pooled connection could be checked out in time.
func PoolError(err error) error {
	return newInternal(KindPool, "pool error", err)
}

// QueryError is returned when the store rejected or failed a statement.
func QueryError(err error) error {
	return newInternal(KindQuery, "query error", err)
}

// InitError is returned when the schema script failed to execute.
func InitError(err error) error {
	return newInternal(KindInit, "init error", err)
}

// UpstreamError is returned when the fact lookup call failed or answered with a non-success status.
func UpstreamError(err error) error {
	return newInternal(KindUpstream, "upstream error", err)
}

// DecodeError is returned when the upstream body does not have the expected shape.
func DecodeError(err error) error {
	return newInternal(KindDecode, "decode error", err)
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

func MethodNotAllowed(method string) error {
	return &Failure{
		Code:    http.StatusMethodNotAllowed,
		Message: method,
	}
}

func TooManyRequests(msg string) error {
	return &Failure{
		Code:    http.StatusTooManyRequests,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// KindOf returns the kind of the first Failure in the chain, or KindUnknown.
func KindOf(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindUnknown
}

// PublicMessage returns the text that may be sent to a client for err.
// Server errors never expose their message.
func PublicMessage(err error) string {
	var fail *Failure
	if errors.As(err, &fail) && fail.Code < http.StatusInternalServerError {
		return fail.Message
	}

	return MessageInternalError
}
