package handlers

import (
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/SHOEB091/code-IDE/internal/services"
	"github.com/SHOEB091/code-IDE/internal/storage"
	"github.com/go-chi/chi/v5"
)

const (
	maxAvatarMemory = 8 << 20
	maxAvatarBytes  = 5 << 20
	formFieldToken  = "token"
	formFieldImage  = "image"
)

// ProfileHandler manages user profile images backed by object storage.
type ProfileHandler struct {
	users   *services.UserService
	avatars *storage.Avatars
}

func NewProfileHandler(users *services.UserService, avatars *storage.Avatars) *ProfileHandler {
	return &ProfileHandler{users: users, avatars: avatars}
}

// ProfileRouter registers profile-image routes. Call only when an
// object storage backend is configured.
func ProfileRouter(r chi.Router, users *services.UserService, avatars *storage.Avatars) {
	handler := NewProfileHandler(users, avatars)

	r.Post("/uploadProfileImage", handler.UploadProfileImage)
	r.Get("/profileImage/*", handler.GetProfileImage)
}

type UploadProfileImageResponse struct {
	statusResponse
	ProfileImage string `json:"profileImage,omitempty"`
}

// UploadProfileImage accepts a multipart form with the bearer token
// and an image file, stores the image, and records its object key on
// the user. A previous avatar, if any, is removed afterwards.
func (h *ProfileHandler) UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAvatarMemory); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	user, ok := resolveUser(w, r, h.users, r.FormValue(formFieldToken))
	if !ok {
		return
	}

	file, header, err := r.FormFile(formFieldImage)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "Image file is required")
		return
	}
	data, err := readFileLimited(file, maxAvatarBytes)
	_ = file.Close()
	if err != nil {
		writeFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(path.Ext(header.Filename))
	}

	key, err := h.avatars.Upload(r.Context(), user.ID, header.Filename, contentType, data)
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, "Failed to store profile image")
		return
	}

	if err := h.users.SetProfileImage(r.Context(), user.ID, key); err != nil {
		_ = h.avatars.Remove(r.Context(), key)
		writeFailure(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	if user.ProfileImage != "" && user.ProfileImage != key {
		_ = h.avatars.Remove(r.Context(), user.ProfileImage)
	}

	writeJSON(w, http.StatusOK, UploadProfileImageResponse{
		statusResponse: statusResponse{Success: true, Msg: "Profile image updated successfully"},
		ProfileImage:   key,
	})
}

// GetProfileImage streams a stored avatar by its object key.
func (h *ProfileHandler) GetProfileImage(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	if !strings.HasPrefix(key, "avatars/") {
		writeFailure(w, http.StatusNotFound, "Image not found")
		return
	}

	reader, err := h.avatars.Open(r.Context(), key)
	if err != nil {
		writeFailure(w, http.StatusNotFound, "Image not found")
		return
	}
	defer reader.Close()

	if contentType := mime.TypeByExtension(path.Ext(key)); contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	_, _ = io.Copy(w, reader)
}
