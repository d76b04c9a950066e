package http

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"propdesk-backend/internal/service"
	"propdesk-backend/internal/storage"
)

// ChequeImageHandler stores scanned cheque images and serves them back.
type ChequeImageHandler struct {
	store       storage.Storage
	contracts   service.ContractService
	maxFileSize int64
}

func NewChequeImageHandler(store storage.Storage, contracts service.ContractService, maxFileSizeMB int64) *ChequeImageHandler {
	if maxFileSizeMB <= 0 {
		maxFileSizeMB = 10
	}
	return &ChequeImageHandler{
		store:       store,
		contracts:   contracts,
		maxFileSize: maxFileSizeMB << 20,
	}
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// Upload saves the request body as the cheque image and records its URL on
// the check record.
func (h *ChequeImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid contract id"})
		return
	}
	position, ok := pathPosition(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid check position"})
		return
	}

	ext, ok := imageExtensions[r.Header.Get("Content-Type")]
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unsupported content type"})
		return
	}

	key := fmt.Sprintf("contracts/%d/cheques/%d-%s%s", id, position, uuid.NewString(), ext)
	body := http.MaxBytesReader(w, r.Body, h.maxFileSize)
	if err := h.store.SaveFile(r.Context(), key, body); err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "failed to store image"})
		return
	}

	imageURL := h.store.URLFor(key)
	checks, err := h.contracts.UpdateCheckRecord(r.Context(), id, position, service.CheckUpdate{ImageURL: &imageURL}, editMode(r))
	if err != nil {
		_ = h.store.DeleteFile(r.Context(), key)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"image_url": imageURL, "checks": checks})
}

// Download streams a stored image. The key is the escaped tail of the URL
// produced by URLFor.
func (h *ChequeImageHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if key == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing file key"})
		return
	}

	file, err := h.store.ReadFile(r.Context(), key)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "file not found"})
		return
	}
	defer file.Close()

	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		w.Header().Set("Content-Type", "image/jpeg")
	case ".png":
		w.Header().Set("Content-Type", "image/png")
	case ".gif":
		w.Header().Set("Content-Type", "image/gif")
	default:
		w.Header().Set("Content-Type", "application/octet-stream")
	}
	_, _ = io.Copy(w, file)
}
