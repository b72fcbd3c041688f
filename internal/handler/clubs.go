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

func (h *Handler) GetBookClubs(c echo.Context) error {
	clubs, err := h.catalogSvc.ListBookClubs(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, clubs)
}

func (h *Handler) GetBookClub(c echo.Context) error {
	club, err := h.catalogSvc.GetBookClub(c.Request().Context(), c.Param("clubId"))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, club)
}

func (h *Handler) GetClubMembers(c echo.Context) error {
	members, err := h.catalogSvc.ListClubMembers(c.Request().Context(), c.Param("clubId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, members)
}

func (h *Handler) JoinBookClub(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	club, err := h.catalogSvc.JoinBookClub(ctx, c.Param("clubId"), userID)
	if err != nil {
		h.notifier.Notify(ctx, "Join failed", "Could not join the club", notify.SeverityError)
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.notifier.Notify(ctx, "Club joined",
		fmt.Sprintf("Welcome to %s", club.Name), notify.SeverityInfo)
	return c.JSON(http.StatusOK, club)
}

func (h *Handler) GetClubMessages(c echo.Context) error {
	messages, err := h.catalogSvc.ListClubMessages(c.Request().Context(), c.Param("clubId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, messages)
}

func (h *Handler) SendMessage(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var req model.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.catalogSvc.SendMessage(ctx, c.Param("clubId"), userID, req.Content)
	if err != nil {
		h.notifier.Notify(ctx, "Message failed", "Could not send your message", notify.SeverityError)
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.notifier.Notify(ctx, "Message sent", "Your message has been posted", notify.SeverityInfo)
	return c.JSON(http.StatusCreated, msg)
}
