package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/club-website/internal/domain/visit"
	"github.com/riskibarqy/club-website/internal/infrastructure/repository/memory"
	visitmock "github.com/riskibarqy/club-website/internal/mocks/domain/visit"
	"github.com/riskibarqy/club-website/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

const desktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

func TestVisitService_RecordThenStats(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewVisitRepository()
	service, err := NewVisitService(repo, VisitServiceConfig{Workers: 2}, logging.NewNop())
	if err != nil {
		t.Fatalf("new visit service: %v", err)
	}

	for _, page := range []string{"/", "/blog", "/plantilla"} {
		if err := service.Record(ctx, VisitInput{PageURL: page, UserAgent: desktopUA}); err != nil {
			t.Fatalf("record visit: %v", err)
		}
	}
	if err := service.Close(time.Second); err != nil {
		t.Fatalf("close visit service: %v", err)
	}

	if repo.Len() != 3 {
		t.Fatalf("expected 3 stored visits, got %d", repo.Len())
	}
	stats, err := service.Stats(ctx)
	if err != nil {
		t.Fatalf("visit stats: %v", err)
	}
	if stats.Total != 3 || stats.Today != 3 || stats.ThisWeek != 3 || stats.ThisMonth != 3 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestVisitService_RecordRejectsBlankPage(t *testing.T) {
	t.Parallel()

	repo := memory.NewVisitRepository()
	service, err := NewVisitService(repo, VisitServiceConfig{}, logging.NewNop())
	if err != nil {
		t.Fatalf("new visit service: %v", err)
	}
	defer service.Close(time.Second)

	if err := service.Record(context.Background(), VisitInput{PageURL: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestVisitService_StoreFailureIsSwallowedUsingMockery(t *testing.T) {
	t.Parallel()

	repo := visitmock.NewRepository(t)
	repo.
		On("Create", mock.Anything, mock.MatchedBy(func(v visit.Visit) bool { return v.PageURL == "/resultados" })).
		Return(errors.New("db down")).
		Once()

	service, err := NewVisitService(repo, VisitServiceConfig{Workers: 1}, logging.NewNop())
	if err != nil {
		t.Fatalf("new visit service: %v", err)
	}

	if err := service.Record(context.Background(), VisitInput{PageURL: "/resultados"}); err != nil {
		t.Fatalf("expected store failure to be hidden from caller, got %v", err)
	}
	if err := service.Close(time.Second); err != nil {
		t.Fatalf("close visit service: %v", err)
	}
}

func TestVisitFromInput_DeviceType(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		ua   string
		want string
	}{
		{ua: "", want: visit.DeviceUnknown},
		{ua: desktopUA, want: visit.DeviceDesktop},
		{ua: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Mobile/15E148 Safari/604.1", want: visit.DeviceMobile},
		{ua: "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", want: visit.DeviceBot},
	}
	for _, tt := range tests {
		got := visitFromInput(VisitInput{PageURL: "/", UserAgent: tt.ua}, at)
		if got.DeviceType != tt.want {
			t.Fatalf("device type for %q: want %s, got %s", tt.ua, tt.want, got.DeviceType)
		}
		if !got.CreatedAt.Equal(at) {
			t.Fatalf("expected created_at to be kept")
		}
	}

	desktop := visitFromInput(VisitInput{PageURL: "/", UserAgent: desktopUA}, at)
	if desktop.Browser != "Chrome" || desktop.OS != "Windows" {
		t.Fatalf("unexpected browser/os: %s/%s", desktop.Browser, desktop.OS)
	}
}
