package dishController

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prithaChatterjee/food-delivary-rishabh-BE/models"
	"github.com/prithaChatterjee/food-delivary-rishabh-BE/responses"
)

// DishStore is the catalog store the handlers delegate to.
type DishStore interface {
	ByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) (int, interface{})
	Create(ctx context.Context, dish models.Dish) (int, interface{})
	Update(ctx context.Context, id primitive.ObjectID, edit models.DishEdit) (int, interface{})
	Delete(ctx context.Context, id primitive.ObjectID) (int, interface{})
}

type Controller struct {
	store DishStore
}

func NewController(store DishStore) *Controller {
	return &Controller{store: store}
}

// ByRestaurant lists a restaurant's dishes with categories expanded.
func (ctrl *Controller) ByRestaurant(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	restaurantID, err := primitive.ObjectIDFromHex(c.Params("restaurantId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid restaurant Id",
		})
	}

	code, result := ctrl.store.ByRestaurant(ctx, restaurantID)
	return responses.Send(c, code, "Fetched dishes", result)
}

// Create persists a dish.
func (ctrl *Controller) Create(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var dish models.Dish
	if err := c.BodyParser(&dish); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	code, result := ctrl.store.Create(ctx, dish)
	return responses.Send(c, code, "Dish created successfully", result)
}

// Update applies a partial update to a dish.
func (ctrl *Controller) Update(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dishID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid dish Id",
		})
	}

	var edit models.DishEdit
	if err := c.BodyParser(&edit); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	code, result := ctrl.store.Update(ctx, dishID, edit)
	return responses.Send(c, code, "Dish updated successfully", result)
}

// Delete removes a dish by identifier.
func (ctrl *Controller) Delete(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dishID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid dish Id",
		})
	}

	code, result := ctrl.store.Delete(ctx, dishID)
	return responses.Send(c, code, "Dish deleted successfully", result)
}
