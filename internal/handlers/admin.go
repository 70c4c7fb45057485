package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/crumbco/foodexpress/internal/admin"
	"github.com/crumbco/foodexpress/internal/auth"
	"github.com/crumbco/foodexpress/internal/logging"
	"github.com/crumbco/foodexpress/internal/models"
	"github.com/crumbco/foodexpress/internal/orderstore"
)

const sessionCookie = "adminSession"

type AdminHandler struct {
	Admin *admin.Service
	Auth  auth.Authenticator
}

func (h *AdminHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin_login")

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	session, err := h.Auth.Login(req.Username, req.Password)
	if err != nil {
		l.Warn("login_failed", "status", 401)
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid username or password")
	}

	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    session.Token,
		Expires:  session.ExpiresAt,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	l.Info("login_success", "status", 200)
	return c.JSON(http.StatusOK, echo.Map{"username": session.Username})
}

func (h *AdminHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Path:     "/",
		HttpOnly: true,
	})
	return c.NoContent(http.StatusNoContent)
}

// RequireSession guards the dashboard routes. A missing or invalid session
// cookie yields 401.
func (h *AdminHandler) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(sessionCookie)
		if err != nil || cookie.Value == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
		}
		if _, err := h.Auth.Verify(cookie.Value); err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
		}
		return next(c)
	}
}

// ListOrders returns every stored order, narrowed by ?q= when present. A store
// that never initialized reads as an empty book, not an error page.
func (h *AdminHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.Admin.SearchOrders(ctx, c.QueryParam("q"))
	if err != nil {
		if errors.Is(err, orderstore.ErrNotInitialized) {
			return c.JSON(http.StatusOK, []models.Order{})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *AdminHandler) GetOrder(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	order, err := h.Admin.FindOrder(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, admin.ErrNotFound) || errors.Is(err, orderstore.ErrNotInitialized) {
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, order)
}

// ExportOrders streams the order book as a download, CSV by default or an
// Excel workbook with ?format=xlsx.
func (h *AdminHandler) ExportOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin_export")

	orders, err := h.Admin.ListOrders(ctx)
	if err != nil && !errors.Is(err, orderstore.ErrNotInitialized) {
		l.Error("export failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	if c.QueryParam("format") == "xlsx" {
		file, err := admin.ExportXLSX(orders)
		if err != nil {
			l.Error("export failed", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
		var buf bytes.Buffer
		if err := file.Write(&buf); err != nil {
			l.Error("export failed", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
		c.Response().Header().Set(echo.HeaderContentDisposition,
			`attachment; filename="foodexpress_orders.xlsx"`)
		return c.Blob(http.StatusOK,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="foodexpress_orders.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(admin.ExportCSV(orders)))
}
