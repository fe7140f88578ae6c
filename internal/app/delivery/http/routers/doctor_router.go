package routers

import (
	"mamacare-service/internal/app/delivery/http/controllers"
	"mamacare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Get("/", doctorController.FindAll)
	router.With(middlewares.Authenticate).Put("/{id}", doctorController.UpdateDoctor)
}
