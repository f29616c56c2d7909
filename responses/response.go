package responses

import "github.com/gofiber/fiber/v2"

// ApiResponse is the envelope every handler returns.
type ApiResponse struct {
	Status  int        `json:"status"`
	Message string     `json:"message"`
	Result  *fiber.Map `json:"result,omitempty"`
}

// Send writes a (code, result) pair produced by a store operation. String
// results carry a message (errors, or the occasional plain confirmation);
// anything else is a payload returned under Result["data"].
func Send(c *fiber.Ctx, code int, message string, result interface{}) error {
	if msg, ok := result.(string); ok {
		return c.Status(code).JSON(ApiResponse{
			Status:  code,
			Message: msg,
		})
	}
	return c.Status(code).JSON(ApiResponse{
		Status:  code,
		Message: message,
		Result:  &fiber.Map{"data": result},
	})
}
