package routers

import (
	"mamacare-service/internal/app/delivery/http/controllers"
	"mamacare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachArticleRoutes(router chi.Router, middlewares *middlewares.Middlewares, articleController *controllers.ArticleController) {
	router.Get("/", articleController.FindAll)
	router.Get("/{id}", articleController.FindByID)
	router.With(middlewares.Authenticate).Post("/", articleController.CreateArticle)
	router.With(middlewares.Authenticate).Put("/{id}", articleController.UpdateArticle)
	router.With(middlewares.Authenticate).Delete("/{id}", articleController.DeleteArticle)
}
