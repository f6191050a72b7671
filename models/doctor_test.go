package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDepartment(t *testing.T) {
	for _, d := range Departments {
		assert.True(t, IsValidDepartment(d))
	}
	assert.False(t, IsValidDepartment("cardiology"))
	assert.False(t, IsValidDepartment("Neurology"))
	assert.False(t, IsValidDepartment(""))
}

func TestIsValidUserType(t *testing.T) {
	assert.True(t, IsValidUserType(UserTypeDoctor))
	assert.True(t, IsValidUserType(UserTypePatient))
	assert.True(t, IsValidUserType(UserTypeAdmin))
	assert.False(t, IsValidUserType("nurse"))
	assert.False(t, IsValidUserType(""))
}
