package main

import (
	"os"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/prithaChatterjee/food-delivary-rishabh-BE/configs"
	cartController "github.com/prithaChatterjee/food-delivary-rishabh-BE/controllers/cart"
	dishController "github.com/prithaChatterjee/food-delivary-rishabh-BE/controllers/dishes"
	restaurantController "github.com/prithaChatterjee/food-delivary-rishabh-BE/controllers/restaurants"
	userController "github.com/prithaChatterjee/food-delivary-rishabh-BE/controllers/user"
	"github.com/prithaChatterjee/food-delivary-rishabh-BE/middlewares"
	"github.com/prithaChatterjee/food-delivary-rishabh-BE/models"
	"github.com/prithaChatterjee/food-delivary-rishabh-BE/responses"
	"github.com/prithaChatterjee/food-delivary-rishabh-BE/routes"
)

func main() {
	cfg := configs.LoadConfig()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	db := configs.ConnectDB(cfg.MongoURI)
	logger.Info().Msg("Connected to MongoDB")

	userStore := models.NewUserStore(db, cfg.JWTSecret, logger)
	restaurantStore := models.NewRestaurantStore(db, logger)
	dishStore := models.NewDishStore(db, logger)
	cartStore := models.NewCartStore(db, logger)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler(logger, cfg.AppEnv),
	})

	app.Use(cors.New(cors.Config{
		ExposeHeaders: "x-auth-token",
	}))
	app.Use(middlewares.RequestLogging(logger))
	app.Use(middlewares.RateLimit(rate.Limit(100), 200))

	auth := middlewares.Auth(userStore, cfg.JWTSecret)

	routes.UserRoutes(app, userController.NewController(userStore), auth)
	routes.RestaurantRoutes(app, restaurantController.NewController(restaurantStore), auth)
	routes.DishRoutes(app, dishController.NewController(dishStore), auth)
	routes.CartRoutes(app, cartController.NewController(cartStore), auth)

	logger.Info().Str("port", cfg.Port).Msg("Server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("Server stopped")
	}
}

// errorHandler catches anything a handler lets escape, logs it and answers
// with a 500. The stack trace is included outside production only.
func errorHandler(logger zerolog.Logger, appEnv string) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error().Err(err).Str("path", c.Path()).Msg("Unhandled error")

		resp := responses.ApiResponse{
			Status:  code,
			Message: err.Error(),
		}
		if appEnv == "development" {
			resp.Result = &fiber.Map{"stack": string(debug.Stack())}
		}
		return c.Status(code).JSON(resp)
	}
}
