package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/servicedesk/service-desk/internal/api/middleware"
	"github.com/servicedesk/service-desk/internal/core/domain"
	"github.com/servicedesk/service-desk/internal/core/ports"
)

// LoginPath is where workers are sent to sign in.
const LoginPath = "/accounts/login/"

type AuthHandler struct {
	authService  ports.AuthService
	secureCookie bool
}

// NewAuthHandler wires login and logout. secureCookie marks the token cookie
// Secure, which production deployments behind TLS want.
func NewAuthHandler(authService ports.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookie: secureCookie}
}

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type loginUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type authResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

// WorkersLogin redirects to the login endpoint.
//
// @Summary      Worker login entry point
// @Tags         auth
// @Success      302
// @Router       /workers-login/ [get]
func (h *AuthHandler) WorkersLogin(c echo.Context) error {
	return c.Redirect(http.StatusFound, LoginPath)
}

// Login authenticates a user and returns a JWT token. The token is also set
// as an HttpOnly cookie for browser clients.
//
// @Summary      Login
// @Tags         auth
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      200       {object}  authResponse
// @Failure      401       {object}  map[string]string
// @Failure      422       {object}  map[string]string
// @Router       /accounts/login/ [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, authResponse{
		Token: token,
		User:  loginUser{ID: user.ID, Username: user.Username, Role: string(user.Role)},
	})
}

// Logout revokes the caller's token and clears the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /logout/ [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return domain.ErrUnauthenticated
	}
	if err := h.authService.Logout(c.Request().Context(), claims); err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return c.NoContent(http.StatusNoContent)
}
