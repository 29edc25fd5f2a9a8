package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/club-website/internal/usecase"
)

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	msg, ok := body["error"].(string)
	if !ok {
		t.Fatalf("expected error key in response, got %s", rec.Body.String())
	}
	return msg
}

func TestWriteSuccess_PlainJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusCreated, successBody{Success: true})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type %q", got)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body["success"] != true {
		t.Fatalf("expected success=true, got %v", body)
	}
}

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "invalid input", err: fmt.Errorf("%w: %s", usecase.ErrInvalidInput, usecase.MsgMissingFields), status: http.StatusBadRequest, message: usecase.MsgMissingFields},
		{name: "conflict", err: fmt.Errorf("%w: %s", usecase.ErrConflict, usecase.MsgSquadNumberTaken), status: http.StatusBadRequest, message: usecase.MsgSquadNumberTaken},
		{name: "not found", err: fmt.Errorf("%w: post slug=x", usecase.ErrNotFound), status: http.StatusNotFound, message: "post slug=x"},
		{name: "unauthorized", err: usecase.ErrUnauthorized, status: http.StatusUnauthorized, message: "unauthorized"},
		{name: "rate limited", err: fmt.Errorf("%w: slow down", usecase.ErrRateLimited), status: http.StatusTooManyRequests, message: "slow down"},
		{name: "malformed", err: fmt.Errorf("%w: eof", usecase.ErrMalformedPayload), status: http.StatusInternalServerError, message: msgMalformedPayload},
		{name: "internal hidden", err: errors.New("pq: connection refused"), status: http.StatusInternalServerError, message: msgInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, tt.err)

			if rec.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, rec.Code)
			}
			if got := decodeErrorBody(t, rec); got != tt.message {
				t.Fatalf("expected message %q, got %q", tt.message, got)
			}
		})
	}
}

func TestWriteStoreError_EchoesStoreMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	writeStoreError(context.Background(), rec, "Error creating blog post", errors.New("create post: relation blog_posts does not exist"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	want := "Error creating blog post: create post: relation blog_posts does not exist"
	if got := decodeErrorBody(t, rec); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	rec = httptest.NewRecorder()
	writeStoreError(context.Background(), rec, "Error creating blog post", fmt.Errorf("%w: title is required", usecase.ErrInvalidInput))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected client errors to keep their status, got %d", rec.Code)
	}
}
