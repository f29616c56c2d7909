package routes

import (
	"github.com/gofiber/fiber/v2"

	restaurantController "github.com/prithaChatterjee/food-delivary-rishabh-BE/controllers/restaurants"
)

func RestaurantRoutes(app *fiber.App, ctrl *restaurantController.Controller, auth fiber.Handler) {
	// the static segment must be registered before the catch-all :id route
	app.Get("/restaurants/resturentById/:id", ctrl.ByID)
	app.Get("/restaurants/:id", ctrl.Search)
	app.Get("/restaurants", auth, ctrl.Own)
	app.Post("/restaurants", auth, ctrl.Create)
	app.Delete("/restaurants/:id", auth, ctrl.Delete)
}
