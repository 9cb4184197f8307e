package userhandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/artfest/gallery-api/app/httputil"
	userservice "github.com/artfest/gallery-api/app/modules/user/application"
)

// Handlers exposes signup and login.
type Handlers struct {
	service userservice.Service
	logger  *slog.Logger
}

func NewHandlers(service userservice.Service, logger *slog.Logger) *Handlers {
	return &Handlers{service: service, logger: logger}
}

type signUpRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handlers) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.service.SignUp(r.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		httputil.ServiceError(w, err)
		return
	}

	httputil.Respond(w, http.StatusCreated, session)
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handlers) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.service.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, userservice.ErrBadCredentials) {
			httputil.Error(w, http.StatusUnauthorized, err.Error())
			return
		}
		h.logger.Error("Sign-in failed", slog.Any("error", err))
		httputil.ServiceError(w, err)
		return
	}

	httputil.Respond(w, http.StatusOK, session)
}
