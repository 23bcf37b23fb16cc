package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/foliohub/foliohub/internal/app/system/httpjson"
	"github.com/foliohub/foliohub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	OK       bool   `json:"ok"`
	Username string `json:"username"`
}

// HandleLogin handles POST /auth/login.
//
// Success requires a user whose username and password_hash both exactly
// equal the supplied values. Every mismatch, wrong password or unknown
// username alike, answers 401 with the same message. No session or token
// is issued.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByCredentials(ctx, req.Username, req.Password)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			h.Log.Error("login: credential lookup failed", zap.Error(err))
		}
		httpjson.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	httpjson.Respond(w, http.StatusOK, loginResponse{
		OK:       true,
		Username: user.Username,
	})
}
