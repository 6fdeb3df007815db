package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/oakmont-hospitality/frontdesk/backend/internal/domain"
)

func (h *Handler) CreateWakeupCall(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		RoomNumber    string `json:"roomNumber" validate:"required"`
		CallDate      string `json:"callDate" validate:"required,datetime=2006-01-02"`
		CallTime      string `json:"callTime" validate:"required,datetime=15:04"`
		RequestSource string `json:"requestSource"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	call := &domain.WakeupCall{
		RoomNumber:     req.RoomNumber,
		CallDate:       req.CallDate,
		CallTime:       req.CallTime,
		RequestSource:  req.RequestSource,
		Status:         domain.WakeupPending,
		LoggedByUserID: &myInfo.ID,
	}

	if err := h.repository.CreateWakeupCall(call); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// Tell the front desk inbox so the next shift sees it even without
	// opening the app.
	mailMessage := domain.MailMessage{
		Type: "wakeup_scheduled",
		To:   h.config.Email.FrontDeskAddress,
		Data: domain.WakeupScheduledMailData{
			RoomNumber: call.RoomNumber,
			CallDate:   call.CallDate,
			CallTime:   call.CallTime,
			LoggedBy:   myInfo.FullName,
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.notifyChannel.PublishWithContext(
		ctx,
		"",
		"notification_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "wake-up call scheduled", call)
}

func (h *Handler) ListWakeupCalls(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if q.Get("pending") == "true" {
		calls, err := h.repository.ListPendingWakeupCalls()
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		h.successResponse(w, r, "ok", calls)
		return
	}

	date := q.Get("date")
	if date == "" {
		date = h.clock.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		h.errorResponse(w, r, "invalid date")
		return
	}

	calls, err := h.repository.ListWakeupCallsForDate(date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "ok", calls)
}

func (h *Handler) GetWakeupCall(w http.ResponseWriter, r *http.Request) {
	call := r.Context().Value(WakeupCallCtx).(*domain.WakeupCall)
	h.successResponse(w, r, "ok", call)
}

func (h *Handler) ResolveWakeupCall(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	call := r.Context().Value(WakeupCallCtx).(*domain.WakeupCall)

	var req struct {
		Status      string `json:"status" validate:"required,oneof=completed failed cancelled"`
		OutcomeNote string `json:"outcomeNote"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if call.Status != domain.WakeupPending {
		h.errorResponse(w, r, "wake-up call is already resolved")
		return
	}

	err := h.repository.ResolveWakeupCall(call.ID, domain.WakeupStatus(req.Status), req.OutcomeNote, &myInfo.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "wake-up call is already resolved")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	resolved, err := h.repository.GetWakeupCallByID(call.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "wake-up call resolved", resolved)
}
