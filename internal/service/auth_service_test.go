package service

import (
	"errors"
	"testing"
	"time"

	"vidya_backend/internal/config"
	"vidya_backend/internal/util"
)

func newAuthService(env *testEnv) *AuthService {
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			ExpireTime: time.Hour,
		},
	}
	return NewAuthService(env.userRepo, env.currRepo, cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuthService(env)

	user, err := auth.Register("student@example.com", "secret-password", nil, nil)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == "" {
		t.Error("registered user has no ID")
	}
	if user.Password == "secret-password" {
		t.Error("password stored in plain text")
	}

	token, loggedIn, err := auth.Login("student@example.com", "secret-password")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Error("login returned empty token")
	}
	if loggedIn.ID != user.ID {
		t.Errorf("login user ID = %s, want %s", loggedIn.ID, user.ID)
	}

	claims, err := util.ParseJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("token user ID = %s, want %s", claims.UserID, user.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuthService(env)

	if _, err := auth.Register("student@example.com", "secret-password", nil, nil); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := auth.Register("student@example.com", "another-password", nil, nil)
	if !errors.Is(err, util.ErrEmailRegistered) {
		t.Errorf("error = %v, want ErrEmailRegistered", err)
	}
}

func TestRegisterWithSelection(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuthService(env)

	boardID := testBoardID
	classID := testClassID
	user, err := auth.Register("student@example.com", "secret-password", &boardID, &classID)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.SelectedBoardID == nil || *user.SelectedBoardID != testBoardID {
		t.Errorf("selected board = %v", user.SelectedBoardID)
	}
	if user.SelectedClassID == nil || *user.SelectedClassID != testClassID {
		t.Errorf("selected class = %v", user.SelectedClassID)
	}
}

func TestRegisterInvalidSelection(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuthService(env)

	boardID := testBoardID
	classID := testClassID
	bogus := "no-such-id"

	tests := []struct {
		name    string
		boardID *string
		classID *string
	}{
		{"board without class", &boardID, nil},
		{"class without board", nil, &classID},
		{"unknown board", &bogus, &classID},
		{"class not in board", &boardID, &bogus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Register("x@example.com", "secret-password", tt.boardID, tt.classID)
			if !errors.Is(err, util.ErrInvalidSelection) {
				t.Errorf("error = %v, want ErrInvalidSelection", err)
			}
		})
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuthService(env)

	if _, err := auth.Register("student@example.com", "secret-password", nil, nil); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := auth.Login("student@example.com", "wrong"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := auth.Login("nobody@example.com", "secret-password"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want ErrInvalidCredentials", err)
	}
}

func TestUpdateSelection(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuthService(env)

	user, err := auth.Register("student@example.com", "secret-password", nil, nil)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	updated, err := auth.UpdateSelection(user.ID, testBoardID, testClassID)
	if err != nil {
		t.Fatalf("UpdateSelection: %v", err)
	}
	if updated.SelectedClassID == nil || *updated.SelectedClassID != testClassID {
		t.Errorf("selected class = %v", updated.SelectedClassID)
	}

	if _, err := auth.UpdateSelection(user.ID, testBoardID, "no-such-class"); !errors.Is(err, util.ErrInvalidSelection) {
		t.Errorf("error = %v, want ErrInvalidSelection", err)
	}
	if _, err := auth.UpdateSelection(user.ID, "", ""); !errors.Is(err, util.ErrInvalidSelection) {
		t.Errorf("empty selection error = %v, want ErrInvalidSelection", err)
	}
}
