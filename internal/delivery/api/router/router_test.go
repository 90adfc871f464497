package router

import (
	"net/http"
	"testing"

	"vault/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRouter_RegisterRoutes(t *testing.T) {
	e := echo.New()
	r := NewRouter(RouterParams{
		PasswordHandler: handler.NewPasswordHandler(handler.PasswordHandlerParams{}),
	})
	r.RegisterRoutes(e)

	registered := make(map[string]bool)
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		http.MethodGet + " /health",
		http.MethodGet + " /api/v1/passwords/options",
		http.MethodPost + " /api/v1/passwords/analyze",
		http.MethodPost + " /api/v1/passwords/generate",
		http.MethodPost + " /api/v1/passwords/qr",
		http.MethodPost + " /api/v1/passwords/hash",
		http.MethodPost + " /api/v1/passwords/verify",
	} {
		assert.True(t, registered[want], "route %s not registered", want)
	}
}
