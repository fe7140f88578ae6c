package routers

import (
	"mamacare-service/internal/app/delivery/http/controllers"
	"mamacare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.Post("/register", userController.Register)
	router.Post("/login", userController.Login)

	router.With(middlewares.Authenticate).Post("/logout", userController.Logout)
	router.With(middlewares.Authenticate).Get("/me", userController.GetProfile)
	router.With(middlewares.Authenticate).Put("/me", userController.UpdateProfile)
	router.With(middlewares.Authenticate).Delete("/me", userController.DeleteAccount)
	router.With(middlewares.Authenticate).Post("/child", userController.CreateChild)
	router.With(middlewares.Authenticate).Get("/children", userController.FindChildren)
}
