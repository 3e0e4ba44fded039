package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/scancare/backend/internal/models"
	"github.com/scancare/backend/internal/services"
)

type ProfileHandler struct {
	profiles  ProfileStore
	photos    PhotoStore
	maxSizeMB int64
}

func NewProfileHandler(profiles ProfileStore, photos PhotoStore, maxSizeMB int64) *ProfileHandler {
	return &ProfileHandler{
		profiles:  profiles,
		photos:    photos,
		maxSizeMB: maxSizeMB,
	}
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	ctx, cancel := contextWithTimeout(r.Context(), downstreamTimeout)
	defer cancel()

	profile, err := h.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			writeJSON(w, http.StatusNotFound, models.NewErrorResponse("user profile not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse(
			fmt.Sprintf("failed to load user profile: %v", err)))
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// UpdateProfile applies a partial update: username and address are
// taken only if the multipart field is present (present-but-empty is a
// real value), and an attached file replaces the photo. An update with
// nothing to change is a no-op success.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	ctx, cancel := contextWithTimeout(r.Context(), downstreamTimeout)
	defer cancel()

	if _, err := h.profiles.GetByUserID(ctx, userID); err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			writeJSON(w, http.StatusNotFound, models.NewErrorResponse("user profile not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse(
			fmt.Sprintf("failed to update user profile: %v", err)))
		return
	}

	maxBytes := h.maxSizeMB * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	// A body without multipart content is a valid empty update. A
	// multipart body that does not parse (oversized, bad boundary) is
	// a client error, not an empty update.
	isMultipart := strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/")
	if err := r.ParseMultipartForm(maxBytes); err != nil && isMultipart {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("File too large or invalid form data"))
		return
	}

	updates := make(map[string]interface{})
	if r.MultipartForm != nil {
		if v, ok := r.MultipartForm.Value["username"]; ok && len(v) > 0 {
			updates["username"] = v[0]
		}
		if v, ok := r.MultipartForm.Value["address"]; ok && len(v) > 0 {
			updates["address"] = v[0]
		}
	}

	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()

		url, err := h.photos.Upload(ctx, header.Filename, file)
		if err != nil {
			log.Printf("[UpdateProfile] user=%s upload error=%v", userID, err)
			writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse(
				fmt.Sprintf("failed to update user profile: %v", err)))
			return
		}
		updates["photo"] = url
	}

	if len(updates) > 0 {
		if err := h.profiles.Patch(ctx, userID, updates); err != nil {
			log.Printf("[UpdateProfile] user=%s patch error=%v", userID, err)
			writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse(
				fmt.Sprintf("failed to update user profile: %v", err)))
			return
		}
	}

	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "user profile updated"})
}

// Upload stores a photo without touching any profile document and
// returns the public URL.
func (h *ProfileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	maxBytes := h.maxSizeMB * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("File too large or invalid form data"))
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("No photo file provided"))
		return
	}
	defer file.Close()

	ctx, cancel := contextWithTimeout(r.Context(), downstreamTimeout)
	defer cancel()

	url, err := h.photos.Upload(ctx, header.Filename, file)
	if err != nil {
		log.Printf("[Upload] file=%s error=%v", header.Filename, err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to upload photo"))
		return
	}

	writeJSON(w, http.StatusOK, models.UploadResponse{FilePath: url})
}
