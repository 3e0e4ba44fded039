package handlers

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/scancare/backend/internal/models"
	"github.com/scancare/backend/internal/services"
)

const testBucket = "scancare_user_profile"

type fakeAccounts struct {
	users     map[string]string // email -> uid
	createErr error
	claims    map[string]interface{}
	verifyErr error
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{users: make(map[string]string)}
}

func (f *fakeAccounts) CreateAccount(_ context.Context, email, _ string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	if _, exists := f.users[email]; exists {
		return "", services.ErrEmailInUse
	}
	uid := uuid.New().String()
	f.users[email] = uid
	return uid, nil
}

func (f *fakeAccounts) VerifyToken(_ context.Context, _ string) (map[string]interface{}, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return f.claims, nil
}

type fakeSignIn struct {
	email    string
	password string
	token    string
	userID   string
}

func (f *fakeSignIn) SignIn(_ context.Context, email, password string) (string, string, error) {
	if email == f.email && password == f.password {
		return f.token, f.userID, nil
	}
	return "", "", services.ErrInvalidCredentials
}

type fakeProfiles struct {
	docs      map[string]*models.UserProfile
	patches   []map[string]interface{}
	createErr error
	getErr    error
	patchErr  error
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{docs: make(map[string]*models.UserProfile)}
}

func (f *fakeProfiles) Create(_ context.Context, p *models.UserProfile) error {
	if f.createErr != nil {
		return f.createErr
	}
	doc := *p
	doc.CreationDate = time.Now()
	f.docs[p.UserID] = &doc
	return nil
}

func (f *fakeProfiles) GetByUserID(_ context.Context, userID string) (*models.UserProfile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	doc, ok := f.docs[userID]
	if !ok {
		return nil, services.ErrProfileNotFound
	}
	copied := *doc
	return &copied, nil
}

func (f *fakeProfiles) Patch(_ context.Context, userID string, fields map[string]interface{}) error {
	if f.patchErr != nil {
		return f.patchErr
	}
	doc, ok := f.docs[userID]
	if !ok {
		return services.ErrProfileNotFound
	}
	f.patches = append(f.patches, fields)
	for k, v := range fields {
		s, _ := v.(string)
		switch k {
		case "username":
			doc.Username = s
		case "address":
			doc.Address = s
		case "photo":
			doc.Photo = s
		}
	}
	return nil
}

type fakePhotos struct {
	uploaded map[string][]byte
	err      error
}

func newFakePhotos() *fakePhotos {
	return &fakePhotos{uploaded: make(map[string][]byte)}
}

func (f *fakePhotos) Upload(_ context.Context, filename string, r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.uploaded[filename] = data
	return services.PublicURL(testBucket, filename), nil
}
