package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/oakmont-hospitality/frontdesk/backend/internal/domain"
)

func (h *Handler) CreateMaintenanceItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title" validate:"required"`
		Description string `json:"description"`
		Location    string `json:"location"`
		Priority    string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Priority == "" {
		req.Priority = string(domain.PriorityMedium)
	}

	item := &domain.MaintenanceItem{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Priority:    domain.MaintenancePriority(req.Priority),
		Status:      domain.MaintenanceOpen,
	}

	if err := h.repository.CreateMaintenanceItem(item); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "maintenance item created", item)
}

func (h *Handler) ListMaintenanceItems(w http.ResponseWriter, r *http.Request) {
	includeCompleted := r.URL.Query().Get("includeCompleted") == "true"

	items, err := h.repository.ListMaintenanceItems(includeCompleted)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "ok", items)
}

func (h *Handler) GetMaintenanceItem(w http.ResponseWriter, r *http.Request) {
	item := r.Context().Value(MaintenanceItemCtx).(*domain.MaintenanceItem)
	h.successResponse(w, r, "ok", item)
}

func (h *Handler) UpdateMaintenanceItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Location    *string `json:"location"`
		Priority    *string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
		Status      *string `json:"status" validate:"omitempty,oneof=open in_progress blocked completed"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	item := r.Context().Value(MaintenanceItemCtx).(*domain.MaintenanceItem)

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Location != nil {
		item.Location = *req.Location
	}
	if req.Priority != nil {
		item.Priority = domain.MaintenancePriority(*req.Priority)
	}
	if req.Status != nil {
		item.Status = domain.MaintenanceStatus(*req.Status)
	}

	if err := h.repository.UpdateMaintenanceItem(item); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "maintenance item no longer exists")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "maintenance item updated", item)
}

func (h *Handler) DeleteMaintenanceItem(w http.ResponseWriter, r *http.Request) {
	item := r.Context().Value(MaintenanceItemCtx).(*domain.MaintenanceItem)

	if err := h.repository.DeleteMaintenanceItem(item.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "maintenance item deleted", nil)
}
