package handler

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakmont-hospitality/frontdesk/backend/internal/config"
	"github.com/oakmont-hospitality/frontdesk/backend/internal/domain"
	"github.com/oakmont-hospitality/frontdesk/backend/internal/repository"
	"github.com/oakmont-hospitality/frontdesk/backend/internal/shifts"
)

func newScheduleTestHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{}
	cfg.Database.QueryTimeout = 5
	cfg.Database.TransactionTimeout = 10
	cfg.Uploads.Dir = t.TempDir()
	cfg.Uploads.MaxBytes = 16 << 20

	clock, err := shifts.NewClock("UTC")
	require.NoError(t, err)

	h, err := NewHandler(cfg, repository.NewRepository(cfg, db), nil, nil, clock)
	require.NoError(t, err)

	return h, mock
}

const docxContentTypes = `<?xml version="1.0"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="xml" ContentType="application/xml"/>
</Types>`

const docxScheduleTable = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:tbl>
      <w:tr>
        <w:tc><w:p><w:r><w:t>NAME</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>MON</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>TUE</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>WED</w:t></w:r></w:p></w:tc>
      </w:tr>
      <w:tr><w:tc><w:p><w:r><w:t>FRONT DESK</w:t></w:r></w:p></w:tc></w:tr>
      <w:tr>
        <w:tc><w:p><w:r><w:t>Dana</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>7am-3pm</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t></w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t></w:t></w:r></w:p></w:tc>
      </w:tr>
    </w:tbl>
  </w:body>
</w:document>`

const docxNoTables = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body><w:p><w:r><w:t>See attached schedule.</w:t></w:r></w:p></w:body>
</w:document>`

func docxArchive(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range []struct{ name, body string }{
		{"[Content_Types].xml", docxContentTypes},
		{"word/document.xml", documentXML},
	} {
		w, err := zw.Create(f.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(f.body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func uploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("weekStartDate", "2026-01-05"))
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/schedules/uploads", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	user := &domain.User{ID: 1, FullName: "Front Desk Manager"}
	return r.WithContext(context.WithValue(r.Context(), MyInfoCtx, user))
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func uploadsDirEntries(t *testing.T, dir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return entries
}

func TestUploadScheduleCreatesPendingUpload(t *testing.T) {
	h, mock := newScheduleTestHandler(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO schedule_uploads")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	rec := httptest.NewRecorder()
	h.UploadSchedule(rec, uploadRequest(t, "week.docx", docxArchive(t, docxScheduleTable)))

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Len(t, uploadsDirEntries(t, h.config.Uploads.Dir), 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUploadScheduleRejectsUnparseableDocument(t *testing.T) {
	h, mock := newScheduleTestHandler(t)

	rec := httptest.NewRecorder()
	h.UploadSchedule(rec, uploadRequest(t, "week.docx", docxArchive(t, docxNoTables)))

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "could not parse")

	// no pending upload row, no stored file
	assert.Empty(t, uploadsDirEntries(t, h.config.Uploads.Dir))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUploadScheduleRejectsMismatchedContent(t *testing.T) {
	h, mock := newScheduleTestHandler(t)

	rec := httptest.NewRecorder()
	h.UploadSchedule(rec, uploadRequest(t, "week.docx", []byte("just a text file pretending")))

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "does not match")

	assert.Empty(t, uploadsDirEntries(t, h.config.Uploads.Dir))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmScheduleUploadRejectsEmptyReparse(t *testing.T) {
	h, mock := newScheduleTestHandler(t)

	path := filepath.Join(t.TempDir(), "week.docx")
	require.NoError(t, os.WriteFile(path, docxArchive(t, docxNoTables), 0o644))

	upload := &domain.ScheduleUpload{
		ID:            3,
		Filename:      "week.docx",
		FilePath:      path,
		WeekStartDate: "2026-01-05",
		Status:        domain.UploadPending,
	}

	body := strings.NewReader(`{"replaceExistingWeek": true}`)
	r := httptest.NewRequest(http.MethodPost, "/schedules/uploads/3/confirm", body)
	r = r.WithContext(context.WithValue(r.Context(), ScheduleUploadCtx, upload))

	rec := httptest.NewRecorder()
	h.ConfirmScheduleUpload(rec, r)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "cancel the upload")

	// the week must survive: no delete, no insert, no status change
	assert.NoError(t, mock.ExpectationsWereMet())
}
