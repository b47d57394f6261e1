package session

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// LoginPath is where unauthenticated requests are pointed at.
const LoginPath = "/api/v1/auth/login"

const userContextKey = "session_user"

// Middleware gates the booking and appointment surfaces behind a valid
// session token. Unauthenticated access is answered with 401 and a
// redirect hint to the login surface; it is not an application error.
func Middleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return redirectToLogin(c)
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return redirectToLogin(c)
			}
			user, err := VerifyToken(parts[1], secret)
			if err != nil {
				return redirectToLogin(c)
			}
			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

func redirectToLogin(c echo.Context) error {
	c.Response().Header().Set("Location", LoginPath)
	return echo.NewHTTPError(http.StatusUnauthorized, "sign in required")
}

// UserFromContext returns the session user set by Middleware, or nil when
// the request is unauthenticated.
func UserFromContext(c echo.Context) *User {
	u, _ := c.Get(userContextKey).(*User)
	return u
}

// SetContextUser places a user in the request context. Exported for tests
// that exercise handlers without the middleware.
func SetContextUser(c echo.Context, u *User) {
	c.Set(userContextKey, u)
}
