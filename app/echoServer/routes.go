package echoServer

import (
	"booklending/app/echoServer/controller/auth"
	"booklending/app/echoServer/controller/book"
	"booklending/app/echoServer/controller/loan"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Auth      *auth.Controller
	Book      *book.Controller
	Loan      *loan.Controller
	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/users/signup", c.Auth.Signup)
	pub.POST("/users/login", c.Auth.Login)
	pub.GET("/books", c.Book.List)
	pub.GET("/books/:id", c.Book.Detail)

	// Auth
	sec := e.Group("/v1")
	sec.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization",
	}))

	sec.GET("/users/me", c.Auth.Me)
	sec.POST("/books/:id/loan", c.Loan.Checkout)
	sec.GET("/loans", c.Loan.MyLoans)
}
