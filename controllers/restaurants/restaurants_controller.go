package restaurantController

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prithaChatterjee/food-delivary-rishabh-BE/models"
	"github.com/prithaChatterjee/food-delivary-rishabh-BE/responses"
)

// RestaurantStore is the catalog store the handlers delegate to.
type RestaurantStore interface {
	Create(ctx context.Context, restaurant models.Restaurant, seller primitive.ObjectID) (int, interface{})
	SearchByCity(ctx context.Context, field string, cityID primitive.ObjectID) (int, interface{})
	ByUser(ctx context.Context, seller primitive.ObjectID) (int, interface{})
	ByID(ctx context.Context, id primitive.ObjectID) (int, interface{})
	Delete(ctx context.Context, id primitive.ObjectID) (int, interface{})
}

type Controller struct {
	store RestaurantStore
}

func NewController(store RestaurantStore) *Controller {
	return &Controller{store: store}
}

// Search filters restaurants by the field named in the search query
// parameter; only the enumerated city filter is supported.
func (ctrl *Controller) Search(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cityID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid city Id",
		})
	}

	code, result := ctrl.store.SearchByCity(ctx, c.Query("search"), cityID)
	return responses.Send(c, code, "Fetched restaurants", result)
}

// ByID looks up one restaurant by identifier.
func (ctrl *Controller) ByID(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	restaurantID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid restaurant Id",
		})
	}

	code, result := ctrl.store.ByID(ctx, restaurantID)
	return responses.Send(c, code, "Fetched restaurant", result)
}

// Own lists the authenticated seller's restaurants.
func (ctrl *Controller) Own(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found in request",
		})
	}

	code, result := ctrl.store.ByUser(ctx, user.Id)
	return responses.Send(c, code, "Fetched restaurants", result)
}

// Create persists a restaurant owned by the authenticated caller.
func (ctrl *Controller) Create(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found in request",
		})
	}

	var restaurant models.Restaurant
	if err := c.BodyParser(&restaurant); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	code, result := ctrl.store.Create(ctx, restaurant, user.Id)
	return responses.Send(c, code, "Restaurant created successfully", result)
}

// Delete removes a restaurant by identifier.
func (ctrl *Controller) Delete(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	restaurantID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid restaurant Id",
		})
	}

	code, result := ctrl.store.Delete(ctx, restaurantID)
	return responses.Send(c, code, "Restaurant deleted successfully", result)
}
