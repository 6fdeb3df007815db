package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/oakmont-hospitality/frontdesk/backend/internal/domain"
	"github.com/oakmont-hospitality/frontdesk/backend/internal/repository"
)

func (h *Handler) ListBanReasons(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "ok", domain.BanReasons)
}

func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	// Expire first so listings never show a temporary ban past its date.
	today := h.clock.Now().Format("2006-01-02")
	if expired, err := h.repository.ExpireDueRecords(today); err != nil {
		h.internalServerError(w, r, err)
		return
	} else if expired > 0 {
		slog.Info("temporary bans expired", "count", expired)
	}

	q := r.URL.Query()
	filter := repository.RecordFilter{
		Status:    domain.RecordStatus(q.Get("status")),
		BanType:   domain.BanType(q.Get("banType")),
		NameQuery: q.Get("q"),
		SortBy:    q.Get("sortBy"),
		SortDesc:  q.Get("sortDir") == "desc",
	}

	records, err := h.repository.ListRecords(filter)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "ok", records)
}

func (h *Handler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GuestName      string   `json:"guestName" validate:"required"`
		BanType        string   `json:"banType" validate:"required,oneof=temporary permanent"`
		Reasons        []string `json:"reasons" validate:"required,min=1"`
		ReasonDetail   string   `json:"reasonDetail"`
		IncidentDate   string   `json:"incidentDate" validate:"omitempty,datetime=2006-01-02"`
		ExpirationType string   `json:"expirationType" validate:"omitempty,oneof=date resolved manager_review"`
		ExpirationDate string   `json:"expirationDate" validate:"omitempty,datetime=2006-01-02"`
		StaffInitials  string   `json:"staffInitials"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// Reasons come from the fixed intake list only.
	for _, reason := range req.Reasons {
		if !slices.Contains(domain.BanReasons, reason) {
			h.errorResponse(w, r, "unknown ban reason: "+reason)
			return
		}
	}

	if req.BanType == string(domain.BanTemporary) {
		if req.ExpirationType == "" {
			h.errorResponse(w, r, "temporary bans need an expiration type")
			return
		}
		if req.ExpirationType == string(domain.ExpireByDate) && req.ExpirationDate == "" {
			h.errorResponse(w, r, "date-based bans need an expiration date")
			return
		}
	}

	rec := &domain.GuestRecord{
		GuestName:      req.GuestName,
		Status:         domain.RecordActive,
		BanType:        domain.BanType(req.BanType),
		Reasons:        req.Reasons,
		ReasonDetail:   req.ReasonDetail,
		DateAdded:      h.clock.Now().Format("2006-01-02"),
		IncidentDate:   req.IncidentDate,
		ExpirationType: domain.ExpirationType(req.ExpirationType),
		ExpirationDate: req.ExpirationDate,
	}

	if err := h.repository.CreateRecord(rec, req.StaffInitials); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "record created", rec)
}

func (h *Handler) GetRecord(w http.ResponseWriter, r *http.Request) {
	rec := r.Context().Value(GuestRecordCtx).(*domain.GuestRecord)
	h.successResponse(w, r, "ok", rec)
}

func (h *Handler) AddTimelineEntry(w http.ResponseWriter, r *http.Request) {
	rec := r.Context().Value(GuestRecordCtx).(*domain.GuestRecord)

	var req struct {
		Note          string `json:"note" validate:"required"`
		StaffInitials string `json:"staffInitials"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	entry := &domain.TimelineEntry{
		RecordID:      rec.ID,
		EntryDate:     h.clock.Now().Format("2006-01-02"),
		StaffInitials: req.StaffInitials,
		Note:          req.Note,
	}

	if err := h.repository.AddTimelineEntry(entry); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "note added", entry)
}

func (h *Handler) LiftRecord(w http.ResponseWriter, r *http.Request) {
	rec := r.Context().Value(GuestRecordCtx).(*domain.GuestRecord)

	var req struct {
		LiftType      string `json:"liftType" validate:"required,oneof=manager_override issue_resolved error_entry"`
		Reason        string `json:"reason" validate:"required"`
		StaffInitials string `json:"staffInitials" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if rec.Status != domain.RecordActive {
		h.errorResponse(w, r, "only active records can be lifted")
		return
	}

	today := h.clock.Now().Format("2006-01-02")
	err := h.repository.LiftRecord(rec.ID, domain.LiftType(req.LiftType), req.Reason, req.StaffInitials, today)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			// lost a race with another lift or the auto-expiry pass; leave a
			// trace on the record
			failNote := &domain.TimelineEntry{
				RecordID:      rec.ID,
				EntryDate:     today,
				StaffInitials: req.StaffInitials,
				Note:          "Lift attempt failed: record no longer active",
				IsSystem:      true,
			}
			if err := h.repository.AddTimelineEntry(failNote); err != nil {
				slog.Error("failed to log lift attempt", "error", err, "recordID", rec.ID)
			}
			h.errorResponse(w, r, "record is no longer active")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	rec, err = h.repository.GetRecordByID(rec.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "ban lifted", rec)
}

