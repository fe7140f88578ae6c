package routers

import (
	"mamacare-service/internal/app/delivery/http/controllers"
	"mamacare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, notificationController *controllers.NotificationController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", notificationController.FindAll)
	router.Get("/{id}", notificationController.FindByID)
	router.Put("/{id}/read", notificationController.MarkAsRead)
	router.Delete("/{id}", notificationController.DeleteNotification)
}
