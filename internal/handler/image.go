package handler

import (
	"errors"
	"net/http"
	"path"

	"github.com/waypost/api/internal/model"
	"github.com/waypost/api/internal/storage"
)

// ImageHandler handles image upload endpoints
type ImageHandler struct {
	store      *storage.ImageStore
	publicPath string
	maxBytes   int64
}

// NewImageHandler creates a new image handler
func NewImageHandler(store *storage.ImageStore, publicPath string, maxSizeMB int64) *ImageHandler {
	return &ImageHandler{
		store:      store,
		publicPath: publicPath,
		maxBytes:   maxSizeMB << 20,
	}
}

// imageResponse is the response body for a successful upload
type imageResponse struct {
	Image string `json:"image"`
	URL   string `json:"url"`
}

// Upload handles POST /v1/images. The image arrives as a multipart form
// field named "image"; the response carries the stored filename to include
// in a subsequent place creation request.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+1024)

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, model.NewBadRequestError("missing image file"))
		return
	}
	defer file.Close()

	name, err := h.store.Save(file, header)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrUnsupportedType):
			WriteError(w, model.NewValidationError([]model.FieldError{
				{Field: "image", Message: "only jpg, jpeg and png images are accepted"},
			}))
		case errors.Is(err, storage.ErrFileTooLarge):
			WriteError(w, model.NewValidationError([]model.FieldError{
				{Field: "image", Message: "image exceeds maximum size"},
			}))
		default:
			WriteError(w, model.NewInternalError(""))
		}
		return
	}

	WriteData(w, http.StatusCreated, imageResponse{
		Image: name,
		URL:   path.Join(h.publicPath, name),
	})
}
