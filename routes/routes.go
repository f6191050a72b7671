package routes

import (
	"CareHub360/authorization"
	"CareHub360/controllers"
	"CareHub360/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterValidators wires the custom binding tags into gin's validator.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("department", func(fl validator.FieldLevel) bool {
			return models.IsValidDepartment(fl.Field().String())
		})
	}
}

func Routes(r *gin.Engine) {
	RegisterValidators()

	// public
	controllers.Auth(r)
	controllers.PublicDoctor(r)
	controllers.PublicAppointment(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// private routes
	r.Use(authorization.JWTAuth())
	controllers.Doctor(r)
	controllers.Appointment(r)
	controllers.User(r)
	controllers.Report(r)
	controllers.Admin(r)
}
