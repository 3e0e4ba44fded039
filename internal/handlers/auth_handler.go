package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/scancare/backend/internal/models"
	"github.com/scancare/backend/internal/services"
)

type AuthHandler struct {
	accounts Accounts
	signIn   SignIn
	profiles ProfileStore
}

func NewAuthHandler(accounts Accounts, signIn SignIn, profiles ProfileStore) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		signIn:   signIn,
		profiles: profiles,
	}
}

// Signup creates the Firebase account, then the profile document keyed
// by the new UID. If the document write fails the account is left
// behind with no rollback; the failure is logged for reconciliation.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, models.NewValidationErrorResponse(errs))
		return
	}

	ctx, cancel := contextWithTimeout(r.Context(), downstreamTimeout)
	defer cancel()

	uid, err := h.accounts.CreateAccount(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailInUse) {
			writeJSON(w, http.StatusBadRequest, models.NewErrorResponse(
				fmt.Sprintf("email %s is already in use", req.Email)))
			return
		}
		log.Printf("[Signup] email=%s error=%v", req.Email, err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("internal server error"))
		return
	}

	profile := &models.UserProfile{
		UserID:   uid,
		Email:    req.Email,
		Username: req.Username,
		Address:  req.Address,
		Photo:    models.PhotoNone,
	}
	if err := h.profiles.Create(ctx, profile); err != nil {
		// Account exists without a profile now; surface nothing to the caller.
		log.Printf("[Signup] orphaned account uid=%s email=%s error=%v", uid, req.Email, err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, models.SignupResponse{
		UserID:  uid,
		Message: fmt.Sprintf("account %s created", uid),
	})
}

// Login exchanges credentials for a Firebase ID token. Every failure
// mode produces the same body so callers cannot probe for accounts.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("invalid email or password"))
		return
	}

	ctx, cancel := contextWithTimeout(r.Context(), downstreamTimeout)
	defer cancel()

	token, uid, err := h.signIn.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("invalid email or password"))
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{
		Token:  token,
		UserID: uid,
	})
}

// Ping verifies the ID token from the Authorization header and returns
// its decoded claims.
func (h *AuthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	idToken := r.Header.Get("Authorization")
	if idToken == "" {
		writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Authorization header required"))
		return
	}

	ctx, cancel := contextWithTimeout(r.Context(), downstreamTimeout)
	defer cancel()

	claims, err := h.accounts.VerifyToken(ctx, idToken)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse(
			fmt.Sprintf("invalid token: %v", err)))
		return
	}

	writeJSON(w, http.StatusOK, claims)
}
