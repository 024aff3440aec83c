package services

import (
	"errors"
	"testing"

	"apartment-rental-portal/internal/domain/models"
)

func TestRegisterAndVerifyCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	user := &models.User{
		Username: "john_doe",
		Email:    "john@example.com",
		Password: "secret123",
		FullName: "John Doe",
	}
	if err := svc.Register(user); err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected user ID to be assigned")
	}
	if user.Password == "secret123" {
		t.Fatal("password should be hashed on create")
	}
	// 创建路径只允许哈希一次：存储的哈希必须能直接校验明文
	if !models.CheckPasswordHash("secret123", user.Password) {
		t.Fatal("stored hash must verify the plaintext password")
	}

	got, err := svc.VerifyCredentials("john_doe", "secret123")
	if err != nil {
		t.Fatalf("verify credentials: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, got.ID)
	}

	if _, err := svc.VerifyCredentials("john_doe", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials for wrong password, got %v", err)
	}
	if _, err := svc.VerifyCredentials("nobody", "secret123"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials for unknown user, got %v", err)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	first := &models.User{Username: "jane", Email: "jane@example.com", Password: "secret123"}
	if err := svc.Register(first); err != nil {
		t.Fatalf("register: %v", err)
	}

	sameName := &models.User{Username: "jane", Email: "other@example.com", Password: "secret123"}
	if err := svc.Register(sameName); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	sameEmail := &models.User{Username: "jane2", Email: "jane@example.com", Password: "secret123"}
	if err := svc.Register(sameEmail); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestGetUserByID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	user := &models.User{Username: "bob", Email: "bob@example.com", Password: "secret123"}
	if err := svc.Register(user); err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := svc.GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got.Username != "bob" {
		t.Fatalf("expected username bob, got %s", got.Username)
	}

	if _, err := svc.GetUserByID(9999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
