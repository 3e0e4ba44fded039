package services

import (
	"context"
	"errors"

	"firebase.google.com/go/v4/auth"
)

var ErrEmailInUse = errors.New("email already in use")

// FirebaseAuth wraps the Admin SDK auth client for account creation and
// ID-token verification. Password sign-in lives in IdentitySignIn; the
// Admin SDK does not expose it.
type FirebaseAuth struct {
	client *auth.Client
}

func NewFirebaseAuth(client *auth.Client) *FirebaseAuth {
	return &FirebaseAuth{client: client}
}

func (s *FirebaseAuth) CreateAccount(ctx context.Context, email, password string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password)

	user, err := s.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", ErrEmailInUse
		}
		return "", err
	}
	return user.UID, nil
}

// VerifyToken verifies a Firebase ID token and returns its decoded claims.
func (s *FirebaseAuth) VerifyToken(ctx context.Context, idToken string) (map[string]interface{}, error) {
	token, err := s.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}
	return token.Claims, nil
}
