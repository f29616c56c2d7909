package cartController

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prithaChatterjee/food-delivary-rishabh-BE/models"
	"github.com/prithaChatterjee/food-delivary-rishabh-BE/responses"
)

// CartStore is the cart engine the handlers delegate to.
type CartStore interface {
	GetOrCreate(ctx context.Context, userID primitive.ObjectID) (int, interface{})
	AddItem(ctx context.Context, userID, productID primitive.ObjectID) (int, interface{})
	RemoveItem(ctx context.Context, userID, productID primitive.ObjectID) (int, interface{})
	Clear(ctx context.Context, userID primitive.ObjectID) (int, interface{})
}

type Controller struct {
	store CartStore
}

func NewController(store CartStore) *Controller {
	return &Controller{store: store}
}

func caller(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals("user").(*models.User)
	return user, ok
}

// GetCart returns the caller's cart, creating an empty one on first access.
func (ctrl *Controller) GetCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, ok := caller(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found in request",
		})
	}

	code, result := ctrl.store.GetOrCreate(ctx, user.Id)
	return responses.Send(c, code, "Successfully fetched cart", result)
}

// AddItem adds one unit of the product in the request body to the caller's
// cart.
func (ctrl *Controller) AddItem(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, ok := caller(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found in request",
		})
	}

	var reqBody struct {
		ProductID string `json:"productId"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}
	productID, err := primitive.ObjectIDFromHex(reqBody.ProductID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product Id",
		})
	}

	code, result := ctrl.store.AddItem(ctx, user.Id, productID)
	return responses.Send(c, code, "Successfully added to cart", result)
}

// RemoveItem removes one unit of the product named in the path from the
// caller's cart. It backs both the PUT and DELETE item routes with the same
// decrement-by-one semantics.
func (ctrl *Controller) RemoveItem(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, ok := caller(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found in request",
		})
	}

	productID, err := primitive.ObjectIDFromHex(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product Id",
		})
	}

	code, result := ctrl.store.RemoveItem(ctx, user.Id, productID)
	return responses.Send(c, code, "Successfully removed item from cart", result)
}

// ClearCart deletes the caller's cart entirely.
func (ctrl *Controller) ClearCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, ok := caller(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found in request",
		})
	}

	code, result := ctrl.store.Clear(ctx, user.Id)
	return responses.Send(c, code, "Cart cleared successfully", result)
}
