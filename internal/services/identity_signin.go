package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"
)

// ErrInvalidCredentials covers every sign-in failure mode: wrong
// password, unknown account, disabled account, provider errors. Callers
// must not learn which one occurred.
var ErrInvalidCredentials = errors.New("invalid email or password")

const defaultSignInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// IdentitySignIn exchanges email/password credentials for a Firebase ID
// token via the Identity Toolkit REST API, keyed by the web API key
// from the Firebase client config.
type IdentitySignIn struct {
	APIKey     string
	Endpoint   string
	HTTPClient *http.Client
}

func NewIdentitySignIn(apiKey string) *IdentitySignIn {
	return &IdentitySignIn{
		APIKey:   apiKey,
		Endpoint: defaultSignInEndpoint,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	IDToken string `json:"idToken"`
	LocalID string `json:"localId"`
}

// SignIn returns (token, userID) on success and ErrInvalidCredentials
// on any failure.
func (c *IdentitySignIn) SignIn(ctx context.Context, email, password string) (string, string, error) {
	payload, err := json.Marshal(signInRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return "", "", err
	}

	endpoint := c.Endpoint + "?key=" + url.QueryEscape(c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Content-Type", "application/json")

	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", ErrInvalidCredentials
	}

	var out signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", "", ErrInvalidCredentials
	}
	if out.IDToken == "" || out.LocalID == "" {
		return "", "", ErrInvalidCredentials
	}
	return out.IDToken, out.LocalID, nil
}
