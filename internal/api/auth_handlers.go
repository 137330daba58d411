package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"roost-backend/internal/auth"
	"roost-backend/internal/database"
	"roost-backend/internal/models"
)

// registerHandler handles POST /register
func registerHandler(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid request body")
	}

	user, err := authService.Register(req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingFields):
			return errJSON(c, http.StatusBadRequest, "name, email and password are required")
		case errors.Is(err, database.ErrEmailTaken):
			return errJSON(c, http.StatusConflict, "email already registered")
		default:
			c.Logger().Error("register error: ", err)
			return errJSON(c, http.StatusInternalServerError, "registration failed")
		}
	}

	audit(c, user.ID, models.ActionRegister, user.Email)

	// PasswordHash is json:"-", so the created record is safe to return.
	return c.JSON(http.StatusCreated, user)
}

// loginHandler handles POST /login
func loginHandler(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return errJSON(c, http.StatusBadRequest, "email and password are required")
	}

	user, token, err := authService.Login(req)
	if err != nil {
		switch {
		// Unknown email and wrong password are distinct on purpose;
		// the public contract has always separated them.
		case errors.Is(err, database.ErrUserNotFound):
			return errJSON(c, http.StatusNotFound, "user not found")
		case errors.Is(err, auth.ErrWrongPassword):
			audit(c, "", models.ActionLoginDenied, req.Email)
			return errJSON(c, http.StatusUnprocessableEntity, "password not correct")
		default:
			c.Logger().Error("login error: ", err)
			return errJSON(c, http.StatusInternalServerError, "login failed")
		}
	}

	loginLimiter.Reset(c.RealIP())
	audit(c, user.ID, models.ActionLogin, user.Email)
	c.SetCookie(sessionCookie(c, token))

	return c.JSON(http.StatusOK, user)
}

// profileHandler handles GET /profile. An anonymous caller is a valid,
// non-error state: the response is null, not 401.
func profileHandler(c echo.Context) error {
	identity := auth.IdentityFromContext(c)
	if identity == nil {
		return c.JSON(http.StatusOK, nil)
	}

	user, err := userRepo.GetByID(identity.UserID)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			// Token outlived the account; treat like no session.
			return c.JSON(http.StatusOK, nil)
		}
		c.Logger().Error("profile error: ", err)
		return errJSON(c, http.StatusInternalServerError, "failed to load profile")
	}

	return c.JSON(http.StatusOK, user)
}

// logoutHandler handles POST /logout
func logoutHandler(c echo.Context) error {
	cookie := sessionCookie(c, "")
	cookie.MaxAge = -1
	c.SetCookie(cookie)

	return c.JSON(http.StatusOK, true)
}

// sessionCookie builds the token cookie. HttpOnly keeps the credential
// away from page scripts.
func sessionCookie(c echo.Context, token string) *http.Cookie {
	return &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Request().TLS != nil,
		SameSite: http.SameSiteLaxMode,
	}
}
