package routes

import (
	"github.com/gofiber/fiber/v2"

	cartController "github.com/prithaChatterjee/food-delivary-rishabh-BE/controllers/cart"
)

// CartRoutes registers the cart engine routes; PUT and DELETE on a cart
// item both decrement by one.
func CartRoutes(app *fiber.App, ctrl *cartController.Controller, auth fiber.Handler) {
	app.Get("/cart", auth, ctrl.GetCart)
	app.Post("/cart/items", auth, ctrl.AddItem)
	app.Put("/cart/items/:productId", auth, ctrl.RemoveItem)
	app.Delete("/cart/items/:productId", auth, ctrl.RemoveItem)
	app.Delete("/cart", auth, ctrl.ClearCart)
}
