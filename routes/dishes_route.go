package routes

import (
	"github.com/gofiber/fiber/v2"

	dishController "github.com/prithaChatterjee/food-delivary-rishabh-BE/controllers/dishes"
)

func DishRoutes(app *fiber.App, ctrl *dishController.Controller, auth fiber.Handler) {
	app.Get("/dishes/:restaurantId", ctrl.ByRestaurant)
	app.Post("/dishes", auth, ctrl.Create)
	app.Put("/dishes/:id", auth, ctrl.Update)
	app.Delete("/dishes/:id", auth, ctrl.Delete)
}
