package routers

import (
	"mamacare-service/internal/app/delivery/http/controllers"
	"mamacare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Use(middlewares.Authenticate)
	router.Post("/", appointmentController.CreateAppointment)
	router.Get("/", appointmentController.FindAll)
	router.Get("/dates-and-times", appointmentController.FindSchedule)
	router.Get("/{id}", appointmentController.FindByID)
	router.Put("/{id}", appointmentController.UpdateAppointment)
	router.Delete("/{id}", appointmentController.DeleteAppointment)
	router.Post("/counter/{id}", appointmentController.CounterAppointment)
	router.Post("/accept/{id}", appointmentController.AcceptAppointment)
	router.Post("/reject/{id}", appointmentController.RejectAppointment)
}
