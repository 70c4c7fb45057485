package main

import (
	"context"
	"crypto/rand"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/crumbco/foodexpress/internal/admin"
	"github.com/crumbco/foodexpress/internal/auth"
	"github.com/crumbco/foodexpress/internal/backup"
	"github.com/crumbco/foodexpress/internal/cart"
	"github.com/crumbco/foodexpress/internal/catalog"
	"github.com/crumbco/foodexpress/internal/checkout"
	"github.com/crumbco/foodexpress/internal/config"
	"github.com/crumbco/foodexpress/internal/handlers"
	"github.com/crumbco/foodexpress/internal/logging"
	"github.com/crumbco/foodexpress/internal/orderstore"
	httpserver "github.com/crumbco/foodexpress/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	// A failed open degrades the whole session to in-memory orders; the
	// warning fires once here, never again.
	var store orderstore.Store
	sqlStore, err := orderstore.Open(configuration.DB_PATH)
	if err != nil {
		logger.Warn("order store unavailable, orders will not survive a restart",
			"path", configuration.DB_PATH, "error", err)
		store = orderstore.NewEphemeral()
	} else {
		store = sqlStore
	}

	sessionSecret := []byte(configuration.SESSION_SECRET)
	if len(sessionSecret) == 0 {
		// No configured secret: sessions last until the process does.
		sessionSecret = make([]byte, 32)
		if _, err := rand.Read(sessionSecret); err != nil {
			log.Fatal(err)
		}
	}

	authenticator, err := auth.NewStatic(
		configuration.ADMIN_USERNAME, configuration.ADMIN_PASSWORD, sessionSecret)
	if err != nil {
		log.Fatal(err)
	}

	menu := catalog.Default()
	backupStore := backup.NewStore(configuration.CART_BACKUP_PATH)
	userCart := cart.New(menu, backupStore, logger)
	userCart.OnChange = func() {
		logger.Debug("cart changed")
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := logging.IntoContext(c.Request().Context(), logger)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})

	deps := httpserver.Deps{
		MenuHandler:     &handlers.MenuHandler{Catalog: menu},
		CartHandler:     &handlers.CartHandler{Cart: userCart},
		CheckoutHandler: &handlers.CheckoutHandler{Checkout: &checkout.Service{Cart: userCart, Store: store}},
		AdminHandler:    &handlers.AdminHandler{Admin: &admin.Service{Store: store}, Auth: authenticator},
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.HTTP_ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlStore != nil {
		if err := sqlStore.Close(); err != nil {
			log.Printf("store close error: %v", err)
		}
	}

	log.Println("shutdown complete")
}
