package services

import (
	"errors"
	"testing"
	"time"

	"apartment-rental-portal/internal/domain/models"
)

func TestMemorySessionLifecycle(t *testing.T) {
	svc := NewMemorySessionService(time.Hour)

	user := &models.User{Username: "john", IsAdmin: true}
	user.ID = 7

	session, err := svc.Create(user)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if session.Token == "" {
		t.Fatal("expected a session token")
	}

	got, err := svc.Get(session.Token)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.UserID != 7 || got.Username != "john" || !got.IsAdmin {
		t.Fatalf("unexpected session payload: %+v", got)
	}

	if err := svc.Destroy(session.Token); err != nil {
		t.Fatalf("destroy session: %v", err)
	}
	if _, err := svc.Get(session.Token); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after destroy, got %v", err)
	}
}

func TestMemorySessionTokensAreUnique(t *testing.T) {
	svc := NewMemorySessionService(time.Hour)

	user := &models.User{Username: "john"}
	user.ID = 1

	first, err := svc.Create(user)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	second, err := svc.Create(user)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if first.Token == second.Token {
		t.Fatal("two logins must not share a token")
	}

	// 两个会话同时有效
	if _, err := svc.Get(first.Token); err != nil {
		t.Fatalf("first session should remain valid: %v", err)
	}
	if _, err := svc.Get(second.Token); err != nil {
		t.Fatalf("second session should remain valid: %v", err)
	}
}

func TestMemorySessionExpires(t *testing.T) {
	svc := NewMemorySessionService(10 * time.Millisecond)

	user := &models.User{Username: "john"}
	user.ID = 1

	session, err := svc.Create(user)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	time.Sleep(30 * time.Millisecond)

	if _, err := svc.Get(session.Token); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected expired session to be gone, got %v", err)
	}
}

func TestUnknownTokenRejected(t *testing.T) {
	svc := NewMemorySessionService(time.Hour)

	if _, err := svc.Get("not-a-real-token"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
