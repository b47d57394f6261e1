package catalog

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/invitro/booking/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/doctors", h.ListDoctors)
	api.GET("/doctors/:id", h.GetDoctor)
	api.GET("/specialties", h.ListSpecialties)
}

// ListDoctors handles GET /doctors. Query params q, specialty and
// availability map onto the filter engine; all of them are optional.
func (h *Handler) ListDoctors(c echo.Context) error {
	avail := Availability(c.QueryParam("availability"))
	if avail != "" && !avail.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "availability must be all, available or unavailable")
	}

	params := FilterParams{
		Search:       c.QueryParam("q"),
		Specialty:    c.QueryParam("specialty"),
		Availability: avail,
	}
	doctors, err := h.svc.Search(c.Request().Context(), params)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if doctors == nil {
		doctors = []Doctor{}
	}
	lo, hi := pagination.FromContext(c).Bounds(len(doctors))
	return c.JSON(http.StatusOK, doctors[lo:hi])
}

func (h *Handler) GetDoctor(c echo.Context) error {
	d, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrDoctorNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) ListSpecialties(c echo.Context) error {
	specs, err := h.svc.Specialties(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, specs)
}
