package main

import (
	"testing"

	"CareHub360/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRoutes_Registered(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.Routes(r)

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"POST /auth/register",
		"POST /auth/login",
		"GET /doctors",
		"GET /doctors/:id",
		"GET /doctors/:id/slots",
		"POST /doctors/availability",
		"POST /doctors",
		"PATCH /doctors/:id",
		"POST /appointments",
		"GET /appointments",
		"GET /appointments/:id",
		"PATCH /appointments/:id",
		"DELETE /appointments/:id",
		"GET /users",
		"POST /users",
		"PUT /users/:id",
		"DELETE /users/:id",
		"GET /reports",
		"POST /reports/upload",
		"GET /reports/:id/download",
		"DELETE /reports/:id",
		"GET /admin/audit",
		"GET /admin/appointments/export",
		"GET /metrics",
	}
	for _, want := range expected {
		assert.True(t, registered[want], "missing route %s", want)
	}
}
