package util

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ValidationError("x").Code)
	assert.Equal(t, http.StatusNotFound, NotFoundError("x").Code)
	assert.Equal(t, http.StatusUnauthorized, AuthError("x").Code)
	// the booking API reports conflicts as 400, not 409
	assert.Equal(t, http.StatusBadRequest, ConflictError("x").Code)
	assert.Equal(t, http.StatusInternalServerError, StoreError(errors.New("boom")).Code)
	assert.Equal(t, "x", ValidationError("x").Error())
}

func TestWriteError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	WriteError(c, NotFoundError(DOCTOR_NOT_FOUND))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Doctor not found"}`, w.Body.String())

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	WriteError(c, errors.New("raw failure"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}
