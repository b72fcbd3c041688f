package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pageturner/pageturner-service/internal/errs"
	"github.com/pageturner/pageturner-service/internal/model"
	"github.com/pageturner/pageturner-service/internal/notify"
	"github.com/pageturner/pageturner-service/pkg/auth"
	"github.com/pkg/errors"
)

func (h *Handler) Login(c echo.Context) error {
	var credentials model.AuthRequest
	if err := c.Bind(&credentials); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&credentials); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	user, err := h.sessionSvc.Login(ctx, credentials.Email, credentials.Password)
	if err != nil {
		h.notifier.Notify(ctx, "Login failed", "Invalid email or password", notify.SeverityError)
		if errors.Is(err, errs.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp, err := h.authResponse(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.notifier.Notify(ctx, "Login successful",
		fmt.Sprintf("Welcome back, %s!", user.Name), notify.SeverityInfo)
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Register(c echo.Context) error {
	var userReq model.UserCreateRequest
	if err := c.Bind(&userReq); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&userReq); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	user, err := h.sessionSvc.Register(ctx, userReq.Name, userReq.Email, userReq.Password)
	if err != nil {
		h.notifier.Notify(ctx, "Registration failed", "Could not create account, please try again", notify.SeverityError)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp, err := h.authResponse(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.notifier.Notify(ctx, "Registration successful",
		fmt.Sprintf("Welcome to Page Turner, %s!", user.Name), notify.SeverityInfo)
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.sessionSvc.Logout(ctx); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.notifier.Notify(ctx, "Logged out", "You have been successfully logged out", notify.SeverityInfo)
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Me(c echo.Context) error {
	user, err := h.sessionSvc.Current(c.Request().Context())
	if err != nil {
		if errors.Is(err, errs.ErrNoSession) {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) authResponse(user model.User) (model.AuthResponse, error) {
	token, expiresAt, err := auth.NewToken(user.ID, user.Name, user.Email, h.tokenTTL)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{
		AccessToken: token,
		ExpiresIn:   int(expiresAt.Unix()),
		User:        user,
	}, nil
}
