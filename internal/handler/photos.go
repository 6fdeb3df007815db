package handler

import (
	"database/sql"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"slices"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/oakmont-hospitality/frontdesk/backend/internal/domain"
)

var allowedPhotoTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

func (h *Handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	rec := r.Context().Value(GuestRecordCtx).(*domain.GuestRecord)

	count, err := h.repository.CountPhotosByRecordID(rec.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if count >= h.config.Uploads.MaxPhotosPerRecord {
		h.errorResponse(w, r, "photo limit reached for this record")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.config.Uploads.MaxBytes)
	if err := r.ParseMultipartForm(h.config.Uploads.MaxBytes); err != nil {
		h.errorResponse(w, r, "file too large or malformed upload")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		h.errorResponse(w, r, "missing photo field")
		return
	}
	defer file.Close()

	// Sniff the real content type, the client-provided one is not trusted.
	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !slices.Contains(allowedPhotoTypes, mtype.String()) {
		h.errorResponse(w, r, "unsupported file type "+mtype.String())
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	filename := uuid.NewString() + mtype.Extension()
	dstPath := filepath.Join(h.config.Uploads.Dir, filename)

	if err := os.MkdirAll(h.config.Uploads.Dir, 0o755); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(dstPath)
		h.internalServerError(w, r, err)
		return
	}

	photo := &domain.Photo{
		RecordID:     rec.ID,
		Filename:     filename,
		OriginalName: header.Filename,
	}
	if err := h.repository.CreatePhoto(photo); err != nil {
		os.Remove(dstPath)
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "photo uploaded", photo)
}

func (h *Handler) ServePhoto(w http.ResponseWriter, r *http.Request) {
	rec := r.Context().Value(GuestRecordCtx).(*domain.GuestRecord)

	photoID, err := idParam(r, "photoID")
	if err != nil {
		h.errorResponse(w, r, "invalid photo ID")
		return
	}

	photo, err := h.repository.GetPhotoByID(photoID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "photo not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}
	if photo.RecordID != rec.ID {
		h.errorResponse(w, r, "photo not found")
		return
	}

	http.ServeFile(w, r, filepath.Join(h.config.Uploads.Dir, photo.Filename))
}

func (h *Handler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	rec := r.Context().Value(GuestRecordCtx).(*domain.GuestRecord)

	photoID, err := idParam(r, "photoID")
	if err != nil {
		h.errorResponse(w, r, "invalid photo ID")
		return
	}

	photo, err := h.repository.GetPhotoByID(photoID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "photo not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}
	if photo.RecordID != rec.ID {
		h.errorResponse(w, r, "photo not found")
		return
	}

	if err := h.repository.DeletePhoto(photoID); err != nil {
		h.internalServerError(w, r, err)
		return
	}
	os.Remove(filepath.Join(h.config.Uploads.Dir, photo.Filename))

	h.successResponse(w, r, "photo deleted", nil)
}
