package session

import (
	"testing"
	"time"
)

func TestSession_Expired(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := Session{ExpiresAt: now.Add(time.Minute)}

	if s.Expired(now) {
		t.Fatalf("expected session to be valid")
	}
	if !s.Expired(now.Add(time.Minute)) {
		t.Fatalf("expected session to expire at ExpiresAt")
	}
}
