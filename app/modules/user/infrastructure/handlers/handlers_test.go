package userhandlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userservice "github.com/artfest/gallery-api/app/modules/user/application"
	userdb "github.com/artfest/gallery-api/app/modules/user/infrastructure/repositories"
	"github.com/artfest/gallery-api/app/shared"
)

type fakeUserService struct {
	signUpErr error
	signInErr error
}

func (f *fakeUserService) SignUp(ctx context.Context, email, username, password string) (*userservice.Session, error) {
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return &userservice.Session{Token: "tok", UserID: "user-1", Username: username, Role: "member"}, nil
}

func (f *fakeUserService) SignIn(ctx context.Context, email, password string) (*userservice.Session, error) {
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	return &userservice.Session{Token: "tok", UserID: "user-1", Username: "alice", Role: "member"}, nil
}

func (f *fakeUserService) Profile(ctx context.Context, userID string) (*userdb.Profile, error) {
	return &userdb.Profile{UserID: userID, Username: "alice"}, nil
}

func newTestHandlers(svc userservice.Service) *Handlers {
	return NewHandlers(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSignUp(t *testing.T) {
	h := newTestHandlers(&fakeUserService{})

	body := strings.NewReader(`{"email":"a@b.com","username":"alice","password":"long enough"}`)
	rec := httptest.NewRecorder()
	h.SignUp(rec, httptest.NewRequest(http.MethodPost, "/api/signup", body))

	require.Equal(t, http.StatusCreated, rec.Code)

	var session userservice.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.Equal(t, "tok", session.Token)
}

func TestSignUp_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "validation", err: fmt.Errorf("bad email: %w", shared.ErrValidation), wantStatus: http.StatusBadRequest},
		{name: "duplicate", err: fmt.Errorf("taken: %w", shared.ErrConflict), wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandlers(&fakeUserService{signUpErr: tt.err})

			body := strings.NewReader(`{"email":"a@b.com","username":"alice","password":"pw"}`)
			rec := httptest.NewRecorder()
			h.SignUp(rec, httptest.NewRequest(http.MethodPost, "/api/signup", body))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestSignIn_BadCredentials(t *testing.T) {
	h := newTestHandlers(&fakeUserService{signInErr: userservice.ErrBadCredentials})

	body := strings.NewReader(`{"email":"a@b.com","password":"wrong"}`)
	rec := httptest.NewRecorder()
	h.SignIn(rec, httptest.NewRequest(http.MethodPost, "/api/login", body))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
