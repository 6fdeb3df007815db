package handler

import (
	"net/http"
	"strconv"

	"github.com/oakmont-hospitality/frontdesk/backend/internal/domain"
	"github.com/oakmont-hospitality/frontdesk/backend/internal/shifts"
)

func (h *Handler) CreateLogEntry(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		Note                 string `json:"note" validate:"required"`
		RelatedRecordID      *int64 `json:"relatedRecordID"`
		RelatedMaintenanceID *int64 `json:"relatedMaintenanceID"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// Stamp with the logical shift, so a note written at 01:30 stays with
	// the previous day's night shift.
	now := h.clock.Now()
	entry := &domain.LogEntry{
		AuthorName:           myInfo.FullName,
		Note:                 req.Note,
		RelatedRecordID:      req.RelatedRecordID,
		RelatedMaintenanceID: req.RelatedMaintenanceID,
		ShiftID:              shifts.CurrentShift(now),
		ShiftDate:            shifts.ShiftDate(now).Format("2006-01-02"),
	}

	if err := h.repository.CreateLogEntry(entry); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "note logged", entry)
}

func (h *Handler) ListLogEntries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if date := q.Get("date"); date != "" {
		entries, err := h.repository.ListLogEntriesByShiftDate(date)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		h.successResponse(w, r, "ok", entries)
		return
	}

	limit := 100
	if raw := q.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	entries, err := h.repository.ListRecentLogEntries(limit)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "ok", entries)
}
