package handler

import (
	"fmt"
	"net/http"
	"time"

	md "github.com/pageturner/pageturner-service/pkg/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pageturner/pageturner-service/internal/errs"
	"github.com/pageturner/pageturner-service/internal/model"
	"github.com/pageturner/pageturner-service/internal/notify"
	"github.com/pageturner/pageturner-service/pkg/auth"
	"github.com/pageturner/pageturner-service/pkg/validate"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	catalogSvc CatalogService
	sessionSvc SessionService
	notifier   notify.Notifier
	tokenTTL   time.Duration
	log        *zap.Logger
}

func New(catalogSvc CatalogService, sessionSvc SessionService, notifier notify.Notifier, tokenTTL time.Duration, log *zap.Logger) *Handler {
	return &Handler{
		catalogSvc: catalogSvc,
		sessionSvc: sessionSvc,
		notifier:   notifier,
		tokenTTL:   tokenTTL,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/books", h.GetBooks)
	api.GET("/books/:bookId", h.GetBook)
	api.GET("/books/:bookId/reviews", h.GetReviews)

	api.GET("/clubs", h.GetBookClubs)
	api.GET("/clubs/:clubId", h.GetBookClub)
	api.GET("/clubs/:clubId/members", h.GetClubMembers)
	api.GET("/clubs/:clubId/messages", h.GetClubMessages)

	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)

	authed := api.Group("", md.JwtAuthentication)
	authed.GET("/auth/me", h.Me)
	authed.POST("/auth/logout", h.Logout)
	authed.POST("/books/:bookId/reviews", h.CreateReview)
	authed.GET("/shelves", h.GetShelves)
	authed.POST("/shelves/books", h.AddBookToShelf)
	authed.POST("/clubs/:clubId/join", h.JoinBookClub)
	authed.POST("/clubs/:clubId/messages", h.SendMessage)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) GetBooks(c echo.Context) error {
	books, err := h.catalogSvc.ListBooks(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	bookID := c.Param("bookId")
	book, err := h.catalogSvc.GetBook(c.Request().Context(), bookID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) GetReviews(c echo.Context) error {
	reviews, err := h.catalogSvc.ListReviews(c.Request().Context(), c.Param("bookId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *Handler) CreateReview(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var req model.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.catalogSvc.CreateReview(ctx, c.Param("bookId"), userID, req.Rating, req.Content)
	if err != nil {
		h.notifier.Notify(ctx, "Review failed", "Could not post your review", notify.SeverityError)
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.notifier.Notify(ctx, "Review posted", "Your review has been published", notify.SeverityInfo)
	return c.JSON(http.StatusCreated, review)
}

func (h *Handler) GetShelves(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	shelves, err := h.catalogSvc.ListShelves(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, shelves)
}

func (h *Handler) AddBookToShelf(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var req model.AddBookToShelfRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	shelf, err := h.catalogSvc.AddBookToShelf(ctx, userID, req.BookID, req.ShelfType)
	if err != nil {
		h.notifier.Notify(ctx, "Shelf update failed", "Could not add the book to your shelf", notify.SeverityError)
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.notifier.Notify(ctx, "Book shelved",
		fmt.Sprintf("Added to your %s shelf", shelf.Type), notify.SeverityInfo)
	return c.JSON(http.StatusOK, shelf)
}
