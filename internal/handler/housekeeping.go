package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/oakmont-hospitality/frontdesk/backend/internal/domain"
)

func (h *Handler) CreateHousekeepingRequest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RoomNumber    string `json:"roomNumber" validate:"required"`
		GuestName     string `json:"guestName"`
		StartDate     string `json:"startDate" validate:"required,datetime=2006-01-02"`
		EndDate       string `json:"endDate" validate:"required,datetime=2006-01-02"`
		Frequency     string `json:"frequency" validate:"required,oneof=none daily every_3rd_day custom"`
		FrequencyDays int    `json:"frequencyDays" validate:"omitempty,min=1,max=30"`
		Notes         string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.EndDate <= req.StartDate {
		h.errorResponse(w, r, "check-out must be after check-in")
		return
	}
	if req.Frequency == string(domain.FrequencyCustom) && req.FrequencyDays == 0 {
		h.errorResponse(w, r, "custom frequency needs frequencyDays")
		return
	}

	hk := &domain.HousekeepingRequest{
		RoomNumber:    req.RoomNumber,
		GuestName:     req.GuestName,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Frequency:     domain.HousekeepingFrequency(req.Frequency),
		FrequencyDays: req.FrequencyDays,
		Notes:         req.Notes,
	}

	if err := h.repository.CreateHousekeepingRequest(hk); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	created, err := h.repository.GetHousekeepingRequestByID(hk.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "housekeeping request created", created)
}

func (h *Handler) ListHousekeepingRequests(w http.ResponseWriter, r *http.Request) {
	includeArchived := r.URL.Query().Get("includeArchived") == "true"

	requests, err := h.repository.ListHousekeepingRequests(includeArchived)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "ok", requests)
}

// ListTodayHousekeeping resolves the rooms due for service on a given day,
// defaulting to today in the property's timezone.
func (h *Handler) ListTodayHousekeeping(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("date")
	if day == "" {
		day = h.clock.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", day); err != nil {
		h.errorResponse(w, r, "invalid date")
		return
	}

	requests, err := h.repository.ListServiceDatesForDay(day)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "ok", requests)
}

func (h *Handler) GetHousekeepingRequest(w http.ResponseWriter, r *http.Request) {
	req := r.Context().Value(HousekeepingCtx).(*domain.HousekeepingRequest)
	h.successResponse(w, r, "ok", req)
}

func (h *Handler) UpdateHousekeepingRequest(w http.ResponseWriter, r *http.Request) {
	hk := r.Context().Value(HousekeepingCtx).(*domain.HousekeepingRequest)

	if hk.ArchivedAt != nil {
		h.errorResponse(w, r, "request is archived")
		return
	}

	var req struct {
		RoomNumber    *string `json:"roomNumber"`
		GuestName     *string `json:"guestName"`
		StartDate     *string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
		EndDate       *string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
		Frequency     *string `json:"frequency" validate:"omitempty,oneof=none daily every_3rd_day custom"`
		FrequencyDays *int    `json:"frequencyDays" validate:"omitempty,min=1,max=30"`
		Notes         *string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.RoomNumber != nil {
		hk.RoomNumber = *req.RoomNumber
	}
	if req.GuestName != nil {
		hk.GuestName = *req.GuestName
	}
	if req.StartDate != nil {
		hk.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		hk.EndDate = *req.EndDate
	}
	if req.Frequency != nil {
		hk.Frequency = domain.HousekeepingFrequency(*req.Frequency)
	}
	if req.FrequencyDays != nil {
		hk.FrequencyDays = *req.FrequencyDays
	}
	if req.Notes != nil {
		hk.Notes = *req.Notes
	}

	if hk.EndDate <= hk.StartDate {
		h.errorResponse(w, r, "check-out must be after check-in")
		return
	}

	// Editing the stay regenerates the service calendar, dropping manual
	// toggles.
	if err := h.repository.UpdateHousekeepingRequest(hk); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "request no longer exists")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	updated, err := h.repository.GetHousekeepingRequestByID(hk.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "housekeeping request updated", updated)
}

func (h *Handler) ArchiveHousekeepingRequest(w http.ResponseWriter, r *http.Request) {
	hk := r.Context().Value(HousekeepingCtx).(*domain.HousekeepingRequest)

	if err := h.repository.ArchiveHousekeepingRequest(hk.ID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "request is already archived")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "housekeeping request archived", nil)
}

func (h *Handler) ToggleServiceDate(w http.ResponseWriter, r *http.Request) {
	dateID, err := idParam(r, "dateID")
	if err != nil {
		h.errorResponse(w, r, "invalid service date ID")
		return
	}

	active, err := h.repository.ToggleServiceDate(dateID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "service date not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "service date toggled", map[string]bool{"isActive": active})
}
