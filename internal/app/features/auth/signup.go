package auth

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/foliohub/foliohub/internal/app/store/users"
	"github.com/foliohub/foliohub/internal/app/system/httpjson"
	"github.com/foliohub/foliohub/internal/app/system/inputval"
	"github.com/foliohub/foliohub/internal/app/system/timeouts"
	"github.com/foliohub/foliohub/internal/domain/models"
	"go.uber.org/zap"
)

type signupRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type signupResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// HandleSignup handles POST /auth/signup.
//
// Username and email are checked in that order so a request that collides
// on both reports the username conflict. The caller is responsible for
// hashing: password is stored as supplied, and login later compares it
// byte-for-byte.
//
// The user and profile writes are not transactional. A crash between them
// leaves a user without a profile; the profiles feature heals that gap on
// first read.
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := inputval.Username(req.Username); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := inputval.Email(req.Email); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := inputval.Password(req.Password); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if taken, err := h.Users.UsernameExists(ctx, req.Username); err != nil {
		h.Log.Error("signup: username lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "signup failed")
		return
	} else if taken {
		httpjson.Error(w, http.StatusBadRequest, "Username already exists")
		return
	}
	if taken, err := h.Users.EmailExists(ctx, req.Email); err != nil {
		h.Log.Error("signup: email lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "signup failed")
		return
	} else if taken {
		httpjson.Error(w, http.StatusBadRequest, "Email already registered")
		return
	}

	user, err := h.Users.Create(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: req.Password,
		DisplayName:  req.DisplayName,
		Verified:     false,
	})
	if err != nil {
		switch {
		case errors.Is(err, userstore.ErrDuplicateUsername):
			httpjson.Error(w, http.StatusBadRequest, "Username already exists")
		case errors.Is(err, userstore.ErrDuplicateEmail):
			httpjson.Error(w, http.StatusBadRequest, "Email already registered")
		default:
			h.Log.Error("signup: user insert failed", zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, "signup failed")
		}
		return
	}

	if _, err := h.Profiles.Create(ctx, user.Username); err != nil {
		// The user exists but the profile write failed; the first profile
		// read will provision it. Log loudly and still report success.
		h.Log.Error("signup: profile provisioning failed",
			zap.String("username", user.Username), zap.Error(err))
	}

	httpjson.Respond(w, http.StatusOK, signupResponse{
		ID:       user.ID.Hex(),
		Username: user.Username,
	})
}
