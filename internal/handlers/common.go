package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/scancare/backend/internal/models"
)

// Timeout applied to each downstream call (Firebase, Firestore, GCS).
const downstreamTimeout = 10 * time.Second

// Interfaces over internal/services, kept narrow so tests can inject fakes.

type Accounts interface {
	CreateAccount(ctx context.Context, email, password string) (string, error)
	VerifyToken(ctx context.Context, idToken string) (map[string]interface{}, error)
}

type SignIn interface {
	SignIn(ctx context.Context, email, password string) (token, userID string, err error)
}

type ProfileStore interface {
	Create(ctx context.Context, p *models.UserProfile) error
	GetByUserID(ctx context.Context, userID string) (*models.UserProfile, error)
	Patch(ctx context.Context, userID string, fields map[string]interface{}) error
}

type PhotoStore interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func contextWithTimeout(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, d)
}
