package services

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/scancare/backend/internal/models"
)

var ErrProfileNotFound = errors.New("user profile not found")

const profileCollection = "userProfile"

// FirestoreProfiles stores profile documents keyed by Firebase UID.
// Firestore owns the data; every read re-fetches.
type FirestoreProfiles struct {
	col *firestore.CollectionRef
}

func NewFirestoreProfiles(client *firestore.Client) *FirestoreProfiles {
	return &FirestoreProfiles{col: client.Collection(profileCollection)}
}

// Create writes the initial profile document. creationDate is assigned
// server-side; the CreationDate field of p is ignored.
func (s *FirestoreProfiles) Create(ctx context.Context, p *models.UserProfile) error {
	_, err := s.col.Doc(p.UserID).Set(ctx, map[string]interface{}{
		"user_id":      p.UserID,
		"email":        p.Email,
		"creationDate": firestore.ServerTimestamp,
		"username":     p.Username,
		"address":      p.Address,
		"photo":        p.Photo,
	})
	return err
}

func (s *FirestoreProfiles) GetByUserID(ctx context.Context, userID string) (*models.UserProfile, error) {
	snap, err := s.col.Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	var p models.UserProfile
	if err := snap.DataTo(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Patch merges the given fields into an existing document. Fields not
// listed are left untouched. An empty set is a no-op.
func (s *FirestoreProfiles) Patch(ctx context.Context, userID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	_, err := s.col.Doc(userID).Set(ctx, fields, firestore.MergeAll)
	return err
}
