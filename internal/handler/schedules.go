package handler

import (
	"database/sql"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/oakmont-hospitality/frontdesk/backend/internal/domain"
	"github.com/oakmont-hospitality/frontdesk/backend/internal/extract"
	"github.com/oakmont-hospitality/frontdesk/backend/internal/schedule"
)

func (h *Handler) CreateScheduleEntry(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StaffName   string `json:"staff_name" validate:"required"`
		ShiftDate   string `json:"shift_date" validate:"required,datetime=2006-01-02"`
		ShiftTime   string `json:"shift_time" validate:"required"`
		Department  string `json:"department"`
		PhoneNumber string `json:"phone_number"`
		Note        string `json:"note"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	entry := &domain.ScheduleEntry{
		StaffName:   req.StaffName,
		ShiftDate:   req.ShiftDate,
		ShiftTime:   req.ShiftTime,
		Department:  req.Department,
		PhoneNumber: req.PhoneNumber,
		Note:        req.Note,
	}

	if err := h.repository.CreateScheduleEntry(entry); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "schedule entry created", entry)
}

type scheduleWeekDepartment struct {
	Department string                  `json:"department"`
	Entries    []*domain.ScheduleEntry `json:"entries"`
}

type scheduleWeekView struct {
	WeekStart   string                   `json:"weekStart"`
	Days        []string                 `json:"days"`
	Departments []scheduleWeekDepartment `json:"departments"`
}

// GetScheduleWeek returns one week of entries grouped by department. With no
// weekStart parameter it serves the week containing today.
func (h *Handler) GetScheduleWeek(w http.ResponseWriter, r *http.Request) {
	weekStart := r.URL.Query().Get("weekStart")
	if weekStart == "" {
		now := h.clock.Now()
		monday := now.AddDate(0, 0, -((int(now.Weekday()) + 6) % 7))
		weekStart = monday.Format("2006-01-02")
	}

	start, err := time.Parse("2006-01-02", weekStart)
	if err != nil {
		h.errorResponse(w, r, "invalid weekStart")
		return
	}

	entries, err := h.repository.ListScheduleWeek(weekStart)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	byDept := make(map[string][]*domain.ScheduleEntry)
	for _, entry := range entries {
		dept := entry.Department
		if dept == "" {
			dept = string(schedule.DepartmentUnknown)
		}
		byDept[dept] = append(byDept[dept], entry)
	}

	depts := make([]string, 0, len(byDept))
	for dept := range byDept {
		depts = append(depts, dept)
	}
	sort.Strings(depts)

	view := scheduleWeekView{
		WeekStart: weekStart,
		Days:      make([]string, 7),
	}
	for i := range view.Days {
		view.Days[i] = start.AddDate(0, 0, i).Format("2006-01-02")
	}
	for _, dept := range depts {
		view.Departments = append(view.Departments, scheduleWeekDepartment{
			Department: dept,
			Entries:    byDept[dept],
		})
	}

	h.successResponse(w, r, "ok", view)
}

func (h *Handler) UpdateScheduleEntry(w http.ResponseWriter, r *http.Request) {
	entry := r.Context().Value(ScheduleEntryCtx).(*domain.ScheduleEntry)

	var req struct {
		StaffName   *string `json:"staff_name"`
		ShiftDate   *string `json:"shift_date" validate:"omitempty,datetime=2006-01-02"`
		ShiftTime   *string `json:"shift_time"`
		Department  *string `json:"department"`
		PhoneNumber *string `json:"phone_number"`
		Note        *string `json:"note"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.StaffName != nil {
		entry.StaffName = *req.StaffName
	}
	if req.ShiftDate != nil {
		entry.ShiftDate = *req.ShiftDate
	}
	if req.ShiftTime != nil {
		entry.ShiftTime = *req.ShiftTime
	}
	if req.Department != nil {
		entry.Department = *req.Department
	}
	if req.PhoneNumber != nil {
		entry.PhoneNumber = *req.PhoneNumber
	}
	if req.Note != nil {
		entry.Note = *req.Note
	}

	if err := h.repository.UpdateScheduleEntry(entry); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "schedule entry no longer exists")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "schedule entry updated", entry)
}

func (h *Handler) DeleteScheduleEntry(w http.ResponseWriter, r *http.Request) {
	entry := r.Context().Value(ScheduleEntryCtx).(*domain.ScheduleEntry)

	if err := h.repository.DeleteScheduleEntry(entry.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "schedule entry deleted", nil)
}

var scheduleDocTypes = map[extract.Format]string{
	extract.FormatPDF:  "application/pdf",
	extract.FormatDocx: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

type schedulePreview struct {
	Upload   *domain.ScheduleUpload  `json:"upload"`
	Entries  []*domain.ScheduleEntry `json:"entries"`
	Warnings []schedule.Warning      `json:"warnings"`
}

// UploadSchedule accepts a PDF or DOCX schedule document, parses it and
// returns a preview. Nothing is written to the schedules table until the
// upload is confirmed.
func (h *Handler) UploadSchedule(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	r.Body = http.MaxBytesReader(w, r.Body, h.config.Uploads.MaxBytes)
	if err := r.ParseMultipartForm(h.config.Uploads.MaxBytes); err != nil {
		h.errorResponse(w, r, "file too large or malformed upload")
		return
	}

	weekStart := r.FormValue("weekStartDate")
	start, err := time.Parse("2006-01-02", weekStart)
	if err != nil {
		h.errorResponse(w, r, "invalid weekStartDate")
		return
	}
	if start.Weekday() != time.Monday {
		h.errorResponse(w, r, "weekStartDate must be a Monday")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.errorResponse(w, r, "missing file field")
		return
	}
	defer file.Close()

	format, err := extract.Detect(header.Filename)
	if err != nil {
		h.errorResponse(w, r, "unsupported file type, use PDF or DOCX")
		return
	}

	// Sniff the real content type, the client-provided one is not trusted.
	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !mtype.Is(scheduleDocTypes[format]) {
		h.errorResponse(w, r, "file content does not match its extension")
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := os.MkdirAll(h.config.Uploads.Dir, 0o755); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	stored := uuid.NewString() + extract.Extension(format)
	dstPath := filepath.Join(h.config.Uploads.Dir, stored)

	dst, err := os.Create(dstPath)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		os.Remove(dstPath)
		h.internalServerError(w, r, err)
		return
	}
	dst.Close()

	entries, warnings, err := h.parseScheduleFile(dstPath, start)
	if err != nil {
		os.Remove(dstPath)
		h.errorResponse(w, r, "could not read document: "+err.Error())
		return
	}
	// a document with no usable schedule never reaches the review workflow
	if schedule.Fatal(warnings) {
		os.Remove(dstPath)
		h.errorResponse(w, r, "could not parse a schedule from this document")
		return
	}

	upload := &domain.ScheduleUpload{
		Filename:           header.Filename,
		FilePath:           dstPath,
		WeekStartDate:      weekStart,
		UploadedByUserID:   &myInfo.ID,
		ParsedEntriesCount: len(entries),
		Status:             domain.UploadPending,
	}
	if err := h.repository.CreateScheduleUpload(upload); err != nil {
		os.Remove(dstPath)
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "schedule parsed, review before confirming", schedulePreview{
		Upload:   upload,
		Entries:  entries,
		Warnings: warnings,
	})
}

func (h *Handler) parseScheduleFile(path string, weekStart time.Time) ([]*domain.ScheduleEntry, []schedule.Warning, error) {
	tables, err := extract.Tables(path)
	if err != nil {
		return nil, nil, err
	}

	parsed, warnings := schedule.Parse(tables, weekStart)

	entries := make([]*domain.ScheduleEntry, 0, len(parsed))
	for _, p := range parsed {
		entries = append(entries, &domain.ScheduleEntry{
			StaffName:   p.StaffName,
			ShiftDate:   p.ShiftDate.Format("2006-01-02"),
			ShiftTime:   p.ShiftTime,
			Department:  string(p.Department),
			PhoneNumber: p.PhoneNumber,
		})
	}

	return entries, warnings, nil
}

func (h *Handler) ListScheduleUploads(w http.ResponseWriter, r *http.Request) {
	uploads, err := h.repository.ListScheduleUploads(50)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "ok", uploads)
}

// GetScheduleUpload re-parses the stored document so reviewers always see the
// entries that a confirm would write.
func (h *Handler) GetScheduleUpload(w http.ResponseWriter, r *http.Request) {
	upload := r.Context().Value(ScheduleUploadCtx).(*domain.ScheduleUpload)

	if upload.Status != domain.UploadPending {
		h.successResponse(w, r, "ok", schedulePreview{Upload: upload})
		return
	}

	start, err := time.Parse("2006-01-02", upload.WeekStartDate)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	entries, warnings, err := h.parseScheduleFile(upload.FilePath, start)
	if err != nil {
		h.errorResponse(w, r, "could not read document: "+err.Error())
		return
	}

	h.successResponse(w, r, "ok", schedulePreview{
		Upload:   upload,
		Entries:  entries,
		Warnings: warnings,
	})
}

func (h *Handler) ConfirmScheduleUpload(w http.ResponseWriter, r *http.Request) {
	upload := r.Context().Value(ScheduleUploadCtx).(*domain.ScheduleUpload)

	var req struct {
		ReplaceExistingWeek bool `json:"replaceExistingWeek"`
	}
	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if upload.Status != domain.UploadPending {
		h.errorResponse(w, r, "upload already "+string(upload.Status))
		return
	}

	start, err := time.Parse("2006-01-02", upload.WeekStartDate)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	entries, warnings, err := h.parseScheduleFile(upload.FilePath, start)
	if err != nil {
		h.errorResponse(w, r, "could not read document: "+err.Error())
		return
	}
	if schedule.Fatal(warnings) {
		h.errorResponse(w, r, "document no longer parses into any entries, cancel the upload instead")
		return
	}

	if err := h.repository.InsertScheduleWeek(upload.WeekStartDate, entries, req.ReplaceExistingWeek); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.repository.SetScheduleUploadStatus(upload.ID, domain.UploadConfirmed); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "upload already resolved")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "schedule confirmed", entries)
}

func (h *Handler) CancelScheduleUpload(w http.ResponseWriter, r *http.Request) {
	upload := r.Context().Value(ScheduleUploadCtx).(*domain.ScheduleUpload)

	if upload.Status != domain.UploadPending {
		h.errorResponse(w, r, "upload already "+string(upload.Status))
		return
	}

	if err := h.repository.SetScheduleUploadStatus(upload.ID, domain.UploadCancelled); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "upload already resolved")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}
	os.Remove(upload.FilePath)

	h.successResponse(w, r, "upload cancelled", nil)
}
