package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/club-website/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const (
	msgInternal         = "Internal server error"
	msgMalformedPayload = "Invalid request payload"
)

type errorBody struct {
	Error string `json:"error"`
}

type successBody struct {
	Success bool `json:"success"`
}

type messageBody struct {
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	// Expose reports whether the error text is safe to send to the client.
	Expose bool
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + msgInternal + `"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, status, data)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	msg := clientMessage(err)
	switch {
	case errors.Is(err, usecase.ErrMalformedPayload):
		msg = msgMalformedPayload
	case !mapped.Expose:
		msg = msgInternal
	}
	writeJSON(ctx, w, mapped.HTTPStatus, errorBody{Error: msg})
}

// writeStoreError answers 500 with prefix plus the underlying error text.
// Blog creation reports store failures this way so the admin form can show them.
func writeStoreError(ctx context.Context, w http.ResponseWriter, prefix string, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeStoreError")
	defer span.End()

	mapped := mapError(ctx, err)
	if mapped.Expose || errors.Is(err, usecase.ErrMalformedPayload) {
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, mapped.HTTPStatus, errorBody{Error: prefix + ": " + err.Error()})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, errorBody{Error: msgInternal})
}

func mapError(ctx context.Context, err error) mappedError {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, usecase.ErrConflict):
		return mappedError{HTTPStatus: http.StatusBadRequest, Expose: true}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{HTTPStatus: http.StatusNotFound, Expose: true}
	case errors.Is(err, usecase.ErrUnauthorized):
		return mappedError{HTTPStatus: http.StatusUnauthorized, Expose: true}
	case errors.Is(err, usecase.ErrRateLimited):
		return mappedError{HTTPStatus: http.StatusTooManyRequests, Expose: true}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{HTTPStatus: http.StatusServiceUnavailable, Expose: true}
	default:
		return mappedError{HTTPStatus: http.StatusInternalServerError}
	}
}

// clientMessage strips the sentinel prefix ("invalid input: ") that usecases add,
// leaving the human readable detail.
func clientMessage(err error) string {
	for _, sentinel := range []error{
		usecase.ErrInvalidInput,
		usecase.ErrConflict,
		usecase.ErrNotFound,
		usecase.ErrUnauthorized,
		usecase.ErrRateLimited,
		usecase.ErrDependencyUnavailable,
	} {
		if !errors.Is(err, sentinel) {
			continue
		}
		msg := err.Error()
		prefix := sentinel.Error() + ": "
		if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
			return msg[len(prefix):]
		}
		return msg
	}
	return err.Error()
}
