package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"thermostat_dashboard/internal/models"
	"thermostat_dashboard/internal/service"
)

func TestActivityHandler_ListAndValidation(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	events := []models.ActivityEvent{
		{EventID: "e1", OccurredAt: now, Type: models.ActivityScheduleApplied, Description: "Wake"},
		{EventID: "e2", OccurredAt: now.Add(time.Second), Type: models.ActivityTargetSet, Description: "Target set to 73"},
	}
	logs := &mockEventLog{resp: events}
	r := newTestRouter(&service.Service{Auth: authAs(models.RoleGuest), EventLog: logs})

	if w := do(t, r, http.MethodGet, "/api/v1/activity?from=notatime", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid 'from', got %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/api/v1/activity?to=31/12/2025", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid 'to', got %d", w.Code)
	}

	q := url.Values{}
	q.Set("from", now.Format(time.RFC3339))
	q.Set("to", now.Add(2*time.Second).Format(time.RFC3339))
	q.Set("type", " target_set ")
	w := do(t, r, http.MethodGet, "/api/v1/activity?"+q.Encode(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("activity status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Count  int                    `json:"count"`
		Events []models.ActivityEvent `json:"events"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Count != 2 || len(out.Events) != 2 {
		t.Fatalf("unexpected response: %+v", out)
	}
	if logs.lastType != models.ActivityTargetSet {
		t.Fatalf("expected type TARGET_SET, got %q", logs.lastType)
	}
	if !logs.lastFrom.Equal(now) {
		t.Fatalf("from = %v", logs.lastFrom)
	}
}

func TestActivityHandler_DateOnlyToCoversDay(t *testing.T) {
	logs := &mockEventLog{}
	r := newTestRouter(&service.Service{Auth: authAs(models.RoleHomeowner), EventLog: logs})

	if w := do(t, r, http.MethodGet, "/api/v1/activity?from=2025-08-01&to=2025-08-31", ""); w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	want := time.Date(2025, 8, 31, 23, 59, 59, 999999999, time.UTC)
	if !logs.lastTo.Equal(want) {
		t.Fatalf("to = %v; want %v", logs.lastTo, want)
	}
}

func TestActivityHandler_Errors(t *testing.T) {
	logs := &mockEventLog{err: service.ErrInvalidTimeRange}
	r := newTestRouter(&service.Service{Auth: authAs(models.RoleHomeowner), EventLog: logs})
	if w := do(t, r, http.MethodGet, "/api/v1/activity?from=2025-09-01&to=2025-08-01", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("inverted range status=%d", w.Code)
	}

	logs.err = errors.New("disk I/O error")
	if w := do(t, r, http.MethodGet, "/api/v1/activity", ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("repo failure status=%d", w.Code)
	}
}
