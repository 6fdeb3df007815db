package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/oakmont-hospitality/frontdesk/backend/internal/domain"
)

func (h *Handler) CreateRoomIssue(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RoomNumber string `json:"roomNumber" validate:"required"`
		IssueType  string `json:"issueType" validate:"required,oneof='Hot Water' HVAC Plumbing Other"`
		Status     string `json:"status" validate:"required,oneof=out_of_order use_if_needed"`
		Note       string `json:"note"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	issue := &domain.RoomIssue{
		RoomNumber: req.RoomNumber,
		IssueType:  domain.RoomIssueType(req.IssueType),
		Status:     domain.RoomIssueStatus(req.Status),
		Note:       req.Note,
		State:      domain.IssueActive,
	}

	if err := h.repository.CreateRoomIssue(issue); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "room issue created", issue)
}

func (h *Handler) ListRoomIssues(w http.ResponseWriter, r *http.Request) {
	includeResolved := r.URL.Query().Get("includeResolved") == "true"

	issues, err := h.repository.ListRoomIssues(includeResolved)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "ok", issues)
}

func (h *Handler) GetRoomIssue(w http.ResponseWriter, r *http.Request) {
	issue := r.Context().Value(RoomIssueCtx).(*domain.RoomIssue)
	h.successResponse(w, r, "ok", issue)
}

func (h *Handler) UpdateRoomIssue(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RoomNumber *string `json:"roomNumber"`
		IssueType  *string `json:"issueType" validate:"omitempty,oneof='Hot Water' HVAC Plumbing Other"`
		Status     *string `json:"status" validate:"omitempty,oneof=out_of_order use_if_needed"`
		Note       *string `json:"note"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	issue := r.Context().Value(RoomIssueCtx).(*domain.RoomIssue)

	if req.RoomNumber != nil {
		issue.RoomNumber = *req.RoomNumber
	}
	if req.IssueType != nil {
		issue.IssueType = domain.RoomIssueType(*req.IssueType)
	}
	if req.Status != nil {
		issue.Status = domain.RoomIssueStatus(*req.Status)
	}
	if req.Note != nil {
		issue.Note = *req.Note
	}

	if err := h.repository.UpdateRoomIssue(issue); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "room issue no longer exists")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "room issue updated", issue)
}

func (h *Handler) ResolveRoomIssue(w http.ResponseWriter, r *http.Request) {
	issue := r.Context().Value(RoomIssueCtx).(*domain.RoomIssue)

	if issue.State == domain.IssueResolved {
		h.errorResponse(w, r, "room issue is already resolved")
		return
	}

	issue.State = domain.IssueResolved
	if err := h.repository.UpdateRoomIssue(issue); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "room issue resolved", issue)
}
