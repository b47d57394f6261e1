package appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/invitro/booking/internal/domain/session"
)

func newTestHandler() (*Handler, *Service, *echo.Echo) {
	svc := NewService(NewMemRepo())
	return NewHandler(svc), svc, echo.New()
}

func TestHandler_ListAppointments(t *testing.T) {
	h, svc, e := newTestHandler()
	svc.Add(context.Background(), testAppointment("a1"))
	svc.Add(context.Background(), testAppointment("a2"))

	req := httptest.NewRequest(http.MethodGet, "/appointments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListAppointments(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var appts []Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &appts); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(appts) != 2 {
		t.Errorf("expected 2 appointments, got %d", len(appts))
	}
}

func TestHandler_ListAppointments_EmptyIsArray(t *testing.T) {
	h, _, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/appointments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListAppointments(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body := rec.Body.String(); body[0] != '[' {
		t.Errorf("expected JSON array, got %s", body)
	}
}

func TestHandler_ListAppointments_Mine(t *testing.T) {
	h, svc, e := newTestHandler()
	mine := testAppointment("a1")
	other := testAppointment("a2")
	other.PatientID = "patient-2"
	svc.Add(context.Background(), mine)
	svc.Add(context.Background(), other)

	req := httptest.NewRequest(http.MethodGet, "/appointments?mine=true", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	session.SetContextUser(c, &session.User{ID: "patient-1", Name: "Pat"})

	if err := h.ListAppointments(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var appts []Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &appts); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(appts) != 1 || appts[0].ID != "a1" {
		t.Errorf("expected only the session owner's booking, got %v", appts)
	}
}

func TestHandler_ListAppointments_MineWithoutSession(t *testing.T) {
	h, _, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/appointments?mine=true", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ListAppointments(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestHandler_GetAppointment_NotFound(t *testing.T) {
	h, _, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.GetAppointment(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandler_CancelAppointment(t *testing.T) {
	h, svc, e := newTestHandler()
	svc.Add(context.Background(), testAppointment("a1"))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("a1")

	if err := h.CancelAppointment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var appt Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &appt); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if appt.Status != StatusCancelled {
		t.Errorf("expected cancelled in response, got %s", appt.Status)
	}
}

func TestHandler_CancelAppointment_NotFound(t *testing.T) {
	h, _, e := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.CancelAppointment(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}
