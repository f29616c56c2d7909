package userController

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prithaChatterjee/food-delivary-rishabh-BE/models"
	"github.com/prithaChatterjee/food-delivary-rishabh-BE/responses"
)

// UserStore is the credential store the handlers delegate to. The extra
// string return is the token issued on success.
type UserStore interface {
	Register(ctx context.Context, user models.User) (int, interface{}, string)
	Login(ctx context.Context, email, password string) (int, interface{}, string)
	Edit(ctx context.Context, id primitive.ObjectID, edit models.UserEdit) (int, interface{}, string)
}

type Controller struct {
	store UserStore
}

func NewController(store UserStore) *Controller {
	return &Controller{store: store}
}

// Register creates a user and returns it stripped of the password hash,
// with the issued token in the x-auth-token response header.
func (ctrl *Controller) Register(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Name       string          `json:"name"`
		Email      string          `json:"email"`
		Phone      string          `json:"phone"`
		Password   string          `json:"password"`
		Role       string          `json:"role"`
		Preference string          `json:"preference"`
		Address    *models.Address `json:"address"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	code, result, token := ctrl.store.Register(ctx, models.User{
		Name:       reqBody.Name,
		Email:      reqBody.Email,
		Phone:      reqBody.Phone,
		Password:   reqBody.Password,
		Role:       reqBody.Role,
		Preference: reqBody.Preference,
		Address:    reqBody.Address,
	})
	if token != "" {
		c.Set("x-auth-token", token)
	}
	return responses.Send(c, code, "User created successfully", result)
}

// Login authenticates an email/password pair. Missing fields get a plain
// hint before the store is consulted.
func (ctrl *Controller) Login(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Can't find email",
		})
	}
	if reqBody.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Can't find email",
		})
	}
	if reqBody.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Can't find password",
		})
	}

	code, result, token := ctrl.store.Login(ctx, reqBody.Email, reqBody.Password)
	if token != "" {
		c.Set("x-auth-token", token)
	}
	return responses.Send(c, code, "User signed in successfully", result)
}

// Profile returns the authenticated caller's own record.
func (ctrl *Controller) Profile(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found in request",
		})
	}
	return responses.Send(c, fiber.StatusOK, "Fetched profile", user)
}

// Edit applies a partial update to the addressed user.
func (ctrl *Controller) Edit(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user Id",
		})
	}

	var edit models.UserEdit
	if err := c.BodyParser(&edit); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	code, result, token := ctrl.store.Edit(ctx, userID, edit)
	if token != "" {
		c.Set("x-auth-token", token)
	}
	return responses.Send(c, code, "User updated successfully", result)
}
