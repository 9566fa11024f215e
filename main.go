// Package main library lending API.
//
// @title           Library Lending API
// @version         1.0
// @description     library lending service (catalog, members, loans).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log/slog"
	"os"

	"booklending/app/echoServer"
	authctrl "booklending/app/echoServer/controller/auth"
	bookctrl "booklending/app/echoServer/controller/book"
	loanctrl "booklending/app/echoServer/controller/loan"
	"booklending/app/echoServer/validation"
	"booklending/config"
	bookrepo "booklending/repository/book"
	loanrepo "booklending/repository/loan"
	userrepo "booklending/repository/user"
	catalogsvc "booklending/service/catalog"
	identitysvc "booklending/service/identity"
	ledgersvc "booklending/service/ledger"
	"booklending/util/database"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// schema must exist before anything else runs
	if err := db.Migrate(ctx); err != nil {
		log.Error("migrate failed", "err", err)
		os.Exit(1)
	}
	if err := db.SeedIfEmpty(ctx, cfg.SeedDemoUser); err != nil {
		log.Error("seed failed", "err", err)
		os.Exit(1)
	}

	// repos
	ur := userrepo.New(db)
	br := bookrepo.New(db)
	lr := loanrepo.New(db)

	// services
	is := identitysvc.New(ur, cfg.JWTSecret)
	cs := catalogsvc.New(br)
	ls := ledgersvc.New(lr)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: is, V: v, Log: log}
	bookC := &bookctrl.Controller{Svc: cs, Log: log}
	loanC := &loanctrl.Controller{Svc: ls, Identity: is, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	echoServer.Register(e, echoServer.C{
		Auth:      authC,
		Book:      bookC,
		Loan:      loanC,
		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
