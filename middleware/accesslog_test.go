package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mxchen/qrpanel/models"
)

// recordingAudit captures Log calls; Snapshot and ExportCSV are unused
// by the middleware
type recordingAudit struct {
	mu      sync.Mutex
	entries []models.AuditRecord
}

func (f *recordingAudit) Log(ip, action, details string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, models.AuditRecord{IP: ip, Action: action, Details: details})
}

func (f *recordingAudit) Snapshot() models.StatsSnapshot { return models.StatsSnapshot{} }

func (f *recordingAudit) ExportCSV(w io.Writer) error { return nil }

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestAccessLoggerRecordsVisit(t *testing.T) {
	audit := &recordingAudit{}
	handler := AccessLogger(audit, "/generate")(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	req.RemoteAddr = "192.0.2.1:54321"
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Len(t, audit.entries, 1)
	assert.Equal(t, models.ActionAccess, audit.entries[0].Action)
	assert.Equal(t, "192.0.2.1", audit.entries[0].IP)
	assert.Equal(t, "visited /stats", audit.entries[0].Details)
}

func TestAccessLoggerSkipsExcludedPaths(t *testing.T) {
	audit := &recordingAudit{}
	handler := AccessLogger(audit, "/generate", "/decode", "/ocr")(http.HandlerFunc(okHandler))

	for _, path := range []string{"/generate", "/decode", "/ocr"} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.RemoteAddr = "192.0.2.1:54321"
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Empty(t, audit.entries)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:54321"
	assert.Equal(t, "192.0.2.1", ClientIP(req))

	req.Header.Set("X-Real-IP", "198.51.100.7")
	assert.Equal(t, "198.51.100.7", ClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 198.51.100.7")
	assert.Equal(t, "203.0.113.9", ClientIP(req))
}
