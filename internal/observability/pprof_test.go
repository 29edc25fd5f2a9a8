package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/club-website/internal/config"
	"github.com/riskibarqy/club-website/internal/platform/logging"
)

func TestStartPprofServer_Disabled(t *testing.T) {
	srv, err := StartPprofServer(config.Config{PprofEnabled: false}, logging.NewNop())
	if err != nil {
		t.Fatalf("start pprof: %v", err)
	}
	if srv != nil {
		t.Fatalf("expected no server when pprof is disabled")
	}
	if err := StopPprofServer(srv, logging.NewNop(), time.Second); err != nil {
		t.Fatalf("stop nil pprof server: %v", err)
	}
}

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{PyroscopeEnabled: false}, logging.NewNop())
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}

func TestPprofMux_Routes(t *testing.T) {
	mux := newPprofMux()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{method: http.MethodGet, path: "/debug/pprof/", want: http.StatusOK},
		{method: http.MethodGet, path: "/debug/pprof/cmdline", want: http.StatusOK},
		{method: http.MethodGet, path: "/healthz", want: http.StatusNoContent},
		{method: http.MethodPost, path: "/debug/pprof/cmdline", want: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: "/api/blog", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		if rec.Code != tt.want {
			t.Fatalf("%s %s: expected %d, got %d", tt.method, tt.path, tt.want, rec.Code)
		}
	}
}

func TestPyroscopeTags(t *testing.T) {
	tags := pyroscopeTags(config.Config{AppEnv: "production", ServiceName: "club-website-api", StorageDriver: config.StorageMemory})
	if tags["storage"] != "memory" || tags["env"] != "production" || tags["service"] != "club-website-api" {
		t.Fatalf("unexpected tags: %v", tags)
	}
}
