package routers

import (
	"symptomix-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, userController *controllers.UserController) {
	router.Post("/", userController.CreateUser)
	router.Get("/", userController.GetUserByEmail)
	router.Get("/{user_id}", userController.GetUser)
	router.Put("/{user_id}", userController.UpdateUser)
	router.Delete("/{user_id}", userController.DeleteUser)
}
