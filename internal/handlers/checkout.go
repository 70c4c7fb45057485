package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crumbco/foodexpress/internal/checkout"
	"github.com/crumbco/foodexpress/internal/logging"
	"github.com/crumbco/foodexpress/internal/orderstore"
)

type CheckoutHandler struct {
	Checkout *checkout.Service
}

// PlaceOrder submits the checkout form. On success the completed order, id
// assigned, comes back as the receipt payload and the cart is empty. On a
// store failure the cart is untouched and the customer is told to retry.
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout")

	var form checkout.Form
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Checkout.PlaceOrder(ctx, form)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrValidation):
			l.Warn("checkout rejected", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, orderstore.ErrWrite), errors.Is(err, orderstore.ErrNotInitialized):
			l.Error("checkout failed", "status", 502, "error", err)
			return echo.NewHTTPError(http.StatusBadGateway,
				"there was an error processing your order, please try again")
		default:
			l.Error("checkout failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
	}

	return c.JSON(http.StatusOK, order)
}
