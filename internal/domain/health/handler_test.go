package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestServer(fs *fakeStore) *echo.Echo {
	e := echo.New()
	h := NewHandler(newTestService(fs))
	h.RegisterRoutes(e.Group("/api/v1"))
	return e
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHandler_GetCollections(t *testing.T) {
	fs := &fakeStore{
		labResults:  []LabResult{{ID: "l1", TestName: "WBC"}},
		medications: []Medication{{ID: "m1", Name: "Vitamin D3"}},
	}
	e := newTestServer(fs)

	rec := doRequest(e, http.MethodGet, "/api/v1/lab-results", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var labs []LabResult
	if err := json.Unmarshal(rec.Body.Bytes(), &labs); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(labs) != 1 || labs[0].TestName != "WBC" {
		t.Errorf("unexpected body: %s", rec.Body)
	}
}

func TestHandler_EmptyCollectionIsJSONArray(t *testing.T) {
	e := newTestServer(&fakeStore{})

	rec := doRequest(e, http.MethodGet, "/api/v1/symptoms", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("expected [], got %s", rec.Body)
	}
}

func TestHandler_AnalyzeSymptom(t *testing.T) {
	e := newTestServer(&fakeStore{})

	rec := doRequest(e, http.MethodPost, "/api/v1/symptoms/analyze", `{"text":"sudden chest pain"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}

	var res struct {
		Category string `json:"category"`
		Urgency  int    `json:"urgency"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if res.Category != "Cardiovascular" || res.Urgency != 9 {
		t.Errorf("unexpected analysis: %+v", res)
	}
}

func TestHandler_LogSymptom(t *testing.T) {
	fs := &fakeStore{}
	e := newTestServer(fs)

	rec := doRequest(e, http.MethodPost, "/api/v1/symptoms", `{"text":"mild headache","severity":4}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body)
	}
	if len(fs.symptoms) != 1 {
		t.Errorf("expected symptom stored, got %d", len(fs.symptoms))
	}
}

func TestHandler_LogSymptom_Invalid(t *testing.T) {
	e := newTestServer(&fakeStore{})

	cases := []struct {
		name string
		body string
	}{
		{"blank text", `{"text":"  ","severity":5}`},
		{"severity too high", `{"text":"headache","severity":11}`},
		{"severity zero", `{"text":"headache","severity":0}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(e, http.MethodPost, "/api/v1/symptoms", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestHandler_AppointmentViews(t *testing.T) {
	fs := &fakeStore{appointments: []DoctorAppointment{
		{ID: "a1", Status: StatusScheduled},
		{ID: "a2", Status: StatusCompleted},
	}}
	e := newTestServer(fs)

	for _, tc := range []struct {
		view   string
		wantID string
	}{
		{"upcoming", "a1"},
		{"past", "a2"},
	} {
		rec := doRequest(e, http.MethodGet, "/api/v1/appointments?view="+tc.view, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("view %s: expected 200, got %d", tc.view, rec.Code)
		}
		var appts []DoctorAppointment
		if err := json.Unmarshal(rec.Body.Bytes(), &appts); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if len(appts) != 1 || appts[0].ID != tc.wantID {
			t.Errorf("view %s: unexpected body: %s", tc.view, rec.Body)
		}
	}

	rec := doRequest(e, http.MethodGet, "/api/v1/appointments?view=bogus", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown view, got %d", rec.Code)
	}
}

func TestHandler_ScheduleAppointment(t *testing.T) {
	fs := &fakeStore{}
	e := newTestServer(fs)

	body := `{"doctor":"Dr. Park","specialty":"Cardiology","date":"2026-03-05","time":"11:00 AM","reason":"Consult"}`
	rec := doRequest(e, http.MethodPost, "/api/v1/appointments", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body)
	}
	if len(fs.appointments) != 1 || fs.appointments[0].Status != StatusScheduled {
		t.Errorf("unexpected stored appointments: %+v", fs.appointments)
	}
}

func TestHandler_CompleteAndCancel(t *testing.T) {
	fs := &fakeStore{appointments: []DoctorAppointment{
		{ID: "a1", Status: StatusScheduled},
		{ID: "a2", Status: StatusScheduled},
	}}
	e := newTestServer(fs)

	rec := doRequest(e, http.MethodPost, "/api/v1/appointments/a1/complete", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	rec = doRequest(e, http.MethodPost, "/api/v1/appointments/a2/cancel", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}

	// Terminal states conflict on a second transition.
	rec = doRequest(e, http.MethodPost, "/api/v1/appointments/a1/cancel", "")
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}

	rec = doRequest(e, http.MethodPost, "/api/v1/appointments/nope/complete", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandler_HealthScore(t *testing.T) {
	fs := &fakeStore{healthScore: HealthScore{Overall: 72}}
	e := newTestServer(fs)

	rec := doRequest(e, http.MethodGet, "/api/v1/health-score", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doRequest(e, http.MethodPut, "/api/v1/health-score", `{"overall":80,"metabolic":60}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	if fs.healthScore.Overall != 80 {
		t.Errorf("expected replaced score, got %+v", fs.healthScore)
	}

	rec = doRequest(e, http.MethodPut, "/api/v1/health-score", `{"overall":150}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for out-of-range score, got %d", rec.Code)
	}
}
