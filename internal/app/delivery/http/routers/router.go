package routers

import (
	"fmt"
	"mamacare-service/internal/app/config"
	"mamacare-service/internal/app/delivery/http/controllers"
	"mamacare-service/internal/app/delivery/http/middlewares"
	"mamacare-service/internal/pkg/constvars"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Controllers struct {
	User         *controllers.UserController
	Doctor       *controllers.DoctorController
	Article      *controllers.ArticleController
	Notification *controllers.NotificationController
	Appointment  *controllers.AppointmentController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ctrls Controllers,
	websocketHandler http.Handler,
) {
	allowedOrigins := internalConfig.App.CORSAllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodPatch, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.RateLimit())
	router.Use(middlewares.ErrorHandler)

	router.Get("/check", controllers.HealthCheck)
	if websocketHandler != nil {
		router.Method(http.MethodGet, "/ws", websocketHandler)
	}

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, ctrls.User)
			})

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, middlewares, ctrls.Doctor)
			})

			r.Route("/articles", func(r chi.Router) {
				attachArticleRoutes(r, middlewares, ctrls.Article)
			})

			r.Route("/notifications", func(r chi.Router) {
				attachNotificationRoutes(r, middlewares, ctrls.Notification)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, ctrls.Appointment)
			})
		})
	})
}
