package authhandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"ems/internal/domain/auth"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
)

type Handler struct {
	Auth *auth.Service
}

func NewHandler(service *auth.Service) *Handler {
	return &Handler{Auth: service}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// HandleLogin exchanges a username/password pair for a bearer token. The 401
// message never reveals which part of the credential was wrong.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	token, err := h.Auth.Authenticate(r.Context(), payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			api.Fail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slog.Error("login failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.FailWithDetail(w, http.StatusInternalServerError, "An error occurred", err.Error())
		return
	}

	api.WriteJSON(w, http.StatusOK, loginResponse{Token: token})
}
