package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/shelfmate/shelfmate/internal/errs"
	"github.com/shelfmate/shelfmate/internal/model"
	"github.com/shelfmate/shelfmate/pkg/validate"
)

const XUserName = "X-User-Name"

type Handler struct {
	shelfSvc ShelfService
	log      *zap.Logger
}

func New(shelfSvc ShelfService, log *zap.Logger) *Handler {
	return &Handler{
		shelfSvc: shelfSvc,
		log:      log,
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

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig()),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
	)

	api.GET("/books", h.GetBooks)
	api.GET("/my-books", h.GetMyBooks)
	api.GET("/notifications/unread", h.GetUnread)

	api.POST("/books/:bookId/reserve", h.Reserve)
	api.POST("/reservations/:reservationId/take", h.Take)
	api.POST("/reservations/:reservationId/return", h.Return)
	api.POST("/reservations/:reservationId/cancel", h.Cancel)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) GetMyBooks(c echo.Context) error {
	username := c.Request().Header.Get(XUserName)
	if username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrUserName.Error())
	}
	books, err := h.shelfSvc.MyBooks(c.Request().Context(), username)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBooks(c echo.Context) error {
	books, err := h.shelfSvc.Books(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetUnread(c echo.Context) error {
	username := c.Request().Header.Get(XUserName)
	if username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrUserName.Error())
	}
	count, err := h.shelfSvc.Unread(c.Request().Context(), username)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, model.UnreadCount{Count: count})
}

type reserveRequest struct {
	BookID int `param:"bookId" validate:"required,gt=0"`
}

func (h *Handler) Reserve(c echo.Context) error {
	username := c.Request().Header.Get(XUserName)
	if username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrUserName.Error())
	}
	var req reserveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	rsv, err := h.shelfSvc.Reserve(c.Request().Context(), username, req.BookID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rsv)
}

type reservationRequest struct {
	ReservationID int `param:"reservationId" validate:"required,gt=0"`
}

func (h *Handler) Take(c echo.Context) error {
	return h.act(c, h.shelfSvc.Take)
}

func (h *Handler) Return(c echo.Context) error {
	return h.act(c, h.shelfSvc.Return)
}

func (h *Handler) Cancel(c echo.Context) error {
	return h.act(c, h.shelfSvc.Cancel)
}

func (h *Handler) act(c echo.Context, action func(ctx context.Context, username string, reservationID int) (model.Reservation, error)) error {
	username := c.Request().Header.Get(XUserName)
	if username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrUserName.Error())
	}
	var req reservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	rsv, err := action(c.Request().Context(), username, req.ReservationID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rsv)
}

func httpError(err error) *echo.HTTPError {
	var actErr *errs.ActionError
	if errors.As(err, &actErr) {
		return echo.NewHTTPError(actErr.HTTPStatus(), actErr.Message)
	}
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrActionNotAllowed):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
