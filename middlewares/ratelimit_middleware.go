package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/prithaChatterjee/food-delivary-rishabh-BE/responses"
)

// RateLimit applies a process-wide token bucket to every request.
func RateLimit(r rate.Limit, burst int) fiber.Handler {
	limiter := rate.NewLimiter(r, burst)
	return func(c *fiber.Ctx) error {
		if !limiter.Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(responses.ApiResponse{
				Status:  fiber.StatusTooManyRequests,
				Message: "Too many requests. Please try again later.",
			})
		}
		return c.Next()
	}
}
