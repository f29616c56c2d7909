package middlewares

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/prithaChatterjee/food-delivary-rishabh-BE/models"
	"github.com/prithaChatterjee/food-delivary-rishabh-BE/responses"
)

// UserFinder loads the user a verified token refers to.
type UserFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// Auth reads the x-auth-token header, verifies the signature and expiry,
// loads the referenced user and attaches it to the request as
// Locals("user"). Every request re-verifies and re-fetches; nothing is
// cached.
func Auth(users UserFinder, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Get("x-auth-token")
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "Authentication failed: Token missing",
			})
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			message := "Invalid token"
			if err != nil {
				message = "Invalid token: " + err.Error()
			}
			return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: message,
			})
		}

		idHex, ok := claims["_id"].(string)
		if !ok || idHex == "" {
			return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid token: user id missing",
			})
		}
		userID, err := primitive.ObjectIDFromHex(idHex)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid token: " + err.Error(),
			})
		}

		user, err := users.FindByID(c.Context(), userID)
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "User not found",
			})
		}
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid token: " + err.Error(),
			})
		}

		c.Locals("user", user)
		return c.Next()
	}
}
