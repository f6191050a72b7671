package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"CareHub360/controllers"
	"CareHub360/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	routes.RegisterValidators()
	return gin.New()
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAppointment_Validation(t *testing.T) {
	r := newRouter()
	controllers.PublicAppointment(r)

	w := doJSON(r, http.MethodPost, "/appointments", `{"date":"2026-09-14"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields")

	w = doJSON(r, http.MethodPost, "/appointments", `{
		"doctorId":"64f1a2b3c4d5e6f708192a3b",
		"date":"2026-09-14",
		"department":"Wellness",
		"name":"Rahul Verma",
		"email":"rahul.verma@example.com",
		"phone":"9876543210",
		"dateOfBirth":"1990-04-12"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid department")
}

func TestUpdateAppointmentStatus_Validation(t *testing.T) {
	r := newRouter()
	r.PATCH("/appointments/:id", controllers.UpdateAppointmentStatus)

	w := doJSON(r, http.MethodPatch, "/appointments/abc", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Status is required")

	w = doJSON(r, http.MethodPatch, "/appointments/abc", `{"status":"done"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid appointment status")
}

func TestCreateDoctor_Validation(t *testing.T) {
	r := newRouter()
	r.POST("/doctors", controllers.CreateDoctor)

	w := doJSON(r, http.MethodPost, "/doctors", `{
		"name":"Dr. Grey",
		"department":"Astrology",
		"qualification":"MD",
		"experience":5,
		"specialization":"General"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid department")

	w = doJSON(r, http.MethodPost, "/doctors", `{
		"name":"Dr. Grey",
		"department":"Cardiology",
		"qualification":"MD",
		"experience":-2,
		"specialization":"General"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "non-negative")
}

func TestSetAvailability_Validation(t *testing.T) {
	r := newRouter()
	r.POST("/doctors/availability", controllers.SetAvailability)

	w := doJSON(r, http.MethodPost, "/doctors/availability", `{"date":"2026-09-14"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields")
}

func TestRegister_Validation(t *testing.T) {
	r := newRouter()
	controllers.Auth(r)

	w := doJSON(r, http.MethodPost, "/auth/register", `{
		"name":"Asha Nair",
		"email":"asha.nair@example.com",
		"password":"abc",
		"userType":"patient"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "at least 6 characters")

	w = doJSON(r, http.MethodPost, "/auth/register", `{
		"name":"Asha Nair",
		"email":"asha.nair@example.com",
		"password":"longenough",
		"userType":"nurse"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid user type")

	w = doJSON(r, http.MethodPost, "/auth/register", `{"name":"Asha Nair"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields")
}

func TestLogin_Validation(t *testing.T) {
	r := newRouter()
	controllers.Auth(r)

	w := doJSON(r, http.MethodPost, "/auth/login", `{"email":"someone@example.com"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}
