package routes

import (
	"github.com/gofiber/fiber/v2"

	userController "github.com/prithaChatterjee/food-delivary-rishabh-BE/controllers/user"
)

// UserRoutes registers the credential routes. The edit route is
// intentionally not auth-gated, matching the documented surface.
func UserRoutes(app *fiber.App, ctrl *userController.Controller, auth fiber.Handler) {
	app.Post("/users", ctrl.Register)
	app.Post("/users/login", ctrl.Login)
	app.Get("/users/profile", auth, ctrl.Profile)
	app.Put("/users/:id", ctrl.Edit)
}
