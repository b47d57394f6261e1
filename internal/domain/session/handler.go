package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	store    *Store
	secret   []byte
	tokenTTL time.Duration
}

func NewHandler(store *Store, secret []byte) *Handler {
	return &Handler{store: store, secret: secret, tokenTTL: DefaultTokenTTL}
}

// RegisterRoutes registers the auth surface. Login and logout are open;
// me sits behind the session middleware.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/auth/login", h.Login)
	api.POST("/auth/logout", h.Logout)

	me := api.Group("", Middleware(h.secret))
	me.GET("/auth/me", h.Me)
}

type loginRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Login accepts the demo identity as-is and opens a session for it.
// There is deliberately no credential verification.
func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if req.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	user := User{
		ID:     uuid.New().String(),
		Name:   req.Name,
		Email:  req.Email,
		Avatar: req.Avatar,
	}
	h.store.Login(user)

	token, err := IssueToken(user, h.secret, h.tokenTTL)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

func (h *Handler) Logout(c echo.Context) error {
	h.store.Logout()
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Me(c echo.Context) error {
	user := UserFromContext(c)
	if user == nil {
		return redirectToLogin(c)
	}
	return c.JSON(http.StatusOK, user)
}
