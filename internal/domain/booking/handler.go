package booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/invitro/booking/internal/domain/catalog"
	"github.com/invitro/booking/internal/domain/session"
)

// DateLayout is the wire format for appointment dates.
const DateLayout = "2006-01-02"

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the booking surface on a session-gated group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/slots", h.ListSlots)
	g.POST("/bookings", h.Book)
}

// ListSlots returns the fixed slot labels offered for every booking.
func (h *Handler) ListSlots(c echo.Context) error {
	return c.JSON(http.StatusOK, Slots)
}

type bookRequest struct {
	DoctorID string `json:"doctor_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// Book handles POST /bookings, driving one workflow end to end.
func (h *Handler) Book(c echo.Context) error {
	user := session.UserFromContext(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "sign in required")
	}

	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.DoctorID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "doctor_id is required")
	}
	date, err := time.Parse(DateLayout, req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be formatted as "+DateLayout)
	}

	appt, err := h.svc.Book(c.Request().Context(), user.ID, req.DoctorID, date, req.Time)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrDoctorNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, ErrDoctorUnavailable):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, ErrDateOutOfRange), errors.Is(err, ErrInvalidSlot), errors.Is(err, ErrNotReady):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusCreated, appt)
}
