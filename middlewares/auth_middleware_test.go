package middlewares_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/prithaChatterjee/food-delivary-rishabh-BE/middlewares"
	"github.com/prithaChatterjee/food-delivary-rishabh-BE/models"
)

const testSecret = "test-secret"

type fakeFinder struct {
	users map[primitive.ObjectID]*models.User
}

func (f fakeFinder) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, mongo.ErrNoDocuments
}

func signToken(t *testing.T, id primitive.ObjectID, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"_id": id.Hex(), "exp": exp.Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func authApp(finder middlewares.UserFinder) *fiber.App {
	app := fiber.New()
	app.Get("/protected", middlewares.Auth(finder, testSecret), func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		return c.JSON(fiber.Map{"id": user.Id.Hex()})
	})
	return app
}

func TestAuthMissingToken(t *testing.T) {
	app := authApp(fakeFinder{})

	req := httptest.NewRequest("GET", "/protected", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", res.StatusCode)
	}
}

func TestAuthMalformedToken(t *testing.T) {
	app := authApp(fakeFinder{})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("x-auth-token", "not-a-token")
	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for malformed token, got %d", res.StatusCode)
	}
}

func TestAuthExpiredToken(t *testing.T) {
	userID := primitive.NewObjectID()
	app := authApp(fakeFinder{users: map[primitive.ObjectID]*models.User{
		userID: {Id: userID},
	}})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("x-auth-token", signToken(t, userID, time.Now().Add(-time.Hour)))
	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for expired token, got %d", res.StatusCode)
	}
}

func TestAuthUnknownUser(t *testing.T) {
	app := authApp(fakeFinder{})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("x-auth-token", signToken(t, primitive.NewObjectID(), time.Now().Add(time.Hour)))
	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for deleted user, got %d", res.StatusCode)
	}
}

func TestAuthValidToken(t *testing.T) {
	userID := primitive.NewObjectID()
	app := authApp(fakeFinder{users: map[primitive.ObjectID]*models.User{
		userID: {Id: userID, Email: "a@b.co"},
	}})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("x-auth-token", signToken(t, userID, time.Now().Add(time.Hour)))
	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for valid token, got %d", res.StatusCode)
	}
}

func TestAuthWrongSigningKey(t *testing.T) {
	userID := primitive.NewObjectID()
	app := authApp(fakeFinder{users: map[primitive.ObjectID]*models.User{
		userID: {Id: userID},
	}})

	claims := jwt.MapClaims{"_id": userID.Hex(), "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("x-auth-token", token)
	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for wrong signing key, got %d", res.StatusCode)
	}
}
