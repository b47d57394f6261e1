package appointment

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/invitro/booking/internal/domain/session"
	"github.com/invitro/booking/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the appointment surface on a session-gated
// group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/appointments", h.ListAppointments)
	g.GET("/appointments/:id", h.GetAppointment)
	g.POST("/appointments/:id/cancel", h.CancelAppointment)
}

// ListAppointments handles GET /appointments. With mine=true only the
// session owner's bookings are returned; by default the whole collection
// is listed.
func (h *Handler) ListAppointments(c echo.Context) error {
	var (
		appts []Appointment
		err   error
	)
	if c.QueryParam("mine") == "true" {
		user := session.UserFromContext(c)
		if user == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "sign in required")
		}
		appts, err = h.svc.ListByPatient(c.Request().Context(), user.ID)
	} else {
		appts, err = h.svc.List(c.Request().Context())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if appts == nil {
		appts = []Appointment{}
	}
	lo, hi := pagination.FromContext(c).Bounds(len(appts))
	return c.JSON(http.StatusOK, appts[lo:hi])
}

func (h *Handler) GetAppointment(c echo.Context) error {
	appt, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, appt)
}

// CancelAppointment marks the appointment cancelled and returns the
// updated record.
func (h *Handler) CancelAppointment(c echo.Context) error {
	id := c.Param("id")
	if err := h.svc.Cancel(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	appt, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, appt)
}
