package cartController_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	cartController "github.com/prithaChatterjee/food-delivary-rishabh-BE/controllers/cart"
	"github.com/prithaChatterjee/food-delivary-rishabh-BE/models"
	"github.com/prithaChatterjee/food-delivary-rishabh-BE/routes"
)

// fakeCartStore mirrors the mongo-backed store against in-memory maps so
// the routes can be driven end to end.
type fakeCartStore struct {
	carts  map[primitive.ObjectID]*models.Cart
	dishes map[primitive.ObjectID]models.Dish
}

func newFakeCartStore(dishes ...models.Dish) *fakeCartStore {
	store := &fakeCartStore{
		carts:  map[primitive.ObjectID]*models.Cart{},
		dishes: map[primitive.ObjectID]models.Dish{},
	}
	for _, dish := range dishes {
		store.dishes[dish.Id] = dish
	}
	return store
}

func (s *fakeCartStore) fetchOrCreate(userID primitive.ObjectID) *models.Cart {
	if cart, ok := s.carts[userID]; ok {
		return cart
	}
	cart := &models.Cart{Id: primitive.NewObjectID(), User: userID, Items: []models.CartItem{}}
	s.carts[userID] = cart
	return cart
}

func (s *fakeCartStore) GetOrCreate(_ context.Context, userID primitive.ObjectID) (int, interface{}) {
	return fiber.StatusOK, models.FlattenCart(*s.fetchOrCreate(userID), s.dishes)
}

func (s *fakeCartStore) AddItem(_ context.Context, userID, productID primitive.ObjectID) (int, interface{}) {
	cart := s.fetchOrCreate(userID)
	cart.AddItem(productID)
	return fiber.StatusOK, models.FlattenCart(*cart, s.dishes)
}

func (s *fakeCartStore) RemoveItem(_ context.Context, userID, productID primitive.ObjectID) (int, interface{}) {
	cart, ok := s.carts[userID]
	if !ok {
		return fiber.StatusNotFound, "Cart not found"
	}
	if !cart.RemoveItem(productID) {
		return fiber.StatusNotFound, "Product not found in cart"
	}
	return fiber.StatusOK, models.FlattenCart(*cart, s.dishes)
}

func (s *fakeCartStore) Clear(_ context.Context, userID primitive.ObjectID) (int, interface{}) {
	delete(s.carts, userID)
	return fiber.StatusOK, "Cart cleared successfully"
}

func cartApp(store cartController.CartStore, userID primitive.ObjectID) *fiber.App {
	app := fiber.New()
	auth := func(c *fiber.Ctx) error {
		c.Locals("user", &models.User{Id: userID})
		return c.Next()
	}
	routes.CartRoutes(app, cartController.NewController(store), auth)
	return app
}

type cartResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Result  struct {
		Data models.CartView `json:"data"`
	} `json:"result"`
}

func decodeCart(t *testing.T, res *http.Response) cartResponse {
	t.Helper()
	var body cartResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return body
}

func TestAddSameProductTwice(t *testing.T) {
	product := primitive.NewObjectID()
	store := newFakeCartStore(models.Dish{Id: product, Name: "Margherita", Price: 10})
	app := cartApp(store, primitive.NewObjectID())

	payload := `{"productId":"` + product.Hex() + `"}`
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/cart/items", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if res.StatusCode != fiber.StatusOK {
			t.Fatalf("expected 200 adding to cart, got %d", res.StatusCode)
		}
	}

	res, err := app.Test(httptest.NewRequest("GET", "/cart", nil))
	if err != nil {
		t.Fatal(err)
	}
	body := decodeCart(t, res)
	if len(body.Result.Data.Items) != 1 {
		t.Fatalf("expected one line item, got %d", len(body.Result.Data.Items))
	}
	if body.Result.Data.Items[0].Qty != 2 {
		t.Fatalf("expected quantity 2, got %d", body.Result.Data.Items[0].Qty)
	}
	if body.Result.Data.Subtotal != 20 {
		t.Fatalf("expected subtotal 20, got %v", body.Result.Data.Subtotal)
	}
}

func TestDecrementRemovesLastUnit(t *testing.T) {
	product := primitive.NewObjectID()
	user := primitive.NewObjectID()
	store := newFakeCartStore(models.Dish{Id: product, Name: "Dal", Price: 6})
	store.carts[user] = &models.Cart{
		Id:    primitive.NewObjectID(),
		User:  user,
		Items: []models.CartItem{{Product: product, Qty: 1}},
	}
	app := cartApp(store, user)

	res, err := app.Test(httptest.NewRequest("PUT", "/cart/items/"+product.Hex(), nil))
	if err != nil {
		t.Fatal(err)
	}
	body := decodeCart(t, res)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if len(body.Result.Data.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", body.Result.Data.Items)
	}
}

func TestDecrementLeavesRemainder(t *testing.T) {
	product := primitive.NewObjectID()
	user := primitive.NewObjectID()
	store := newFakeCartStore(models.Dish{Id: product, Name: "Dal", Price: 6})
	store.carts[user] = &models.Cart{
		Id:    primitive.NewObjectID(),
		User:  user,
		Items: []models.CartItem{{Product: product, Qty: 2}},
	}
	app := cartApp(store, user)

	res, err := app.Test(httptest.NewRequest("DELETE", "/cart/items/"+product.Hex(), nil))
	if err != nil {
		t.Fatal(err)
	}
	body := decodeCart(t, res)
	if len(body.Result.Data.Items) != 1 || body.Result.Data.Items[0].Qty != 1 {
		t.Fatalf("expected one item with quantity 1, got %+v", body.Result.Data.Items)
	}
}

func TestRemoveMissingProduct(t *testing.T) {
	user := primitive.NewObjectID()
	store := newFakeCartStore()
	store.carts[user] = &models.Cart{Id: primitive.NewObjectID(), User: user, Items: []models.CartItem{}}
	app := cartApp(store, user)

	res, err := app.Test(httptest.NewRequest("PUT", "/cart/items/"+primitive.NewObjectID().Hex(), nil))
	if err != nil {
		t.Fatal(err)
	}
	body := decodeCart(t, res)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
	if body.Message != "Product not found in cart" {
		t.Fatalf("unexpected message %q", body.Message)
	}
}

func TestRemoveFromMissingCart(t *testing.T) {
	app := cartApp(newFakeCartStore(), primitive.NewObjectID())

	res, err := app.Test(httptest.NewRequest("PUT", "/cart/items/"+primitive.NewObjectID().Hex(), nil))
	if err != nil {
		t.Fatal(err)
	}
	body := decodeCart(t, res)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
	if body.Message != "Cart not found" {
		t.Fatalf("unexpected message %q", body.Message)
	}
}

func TestGetCreatesEmptyCart(t *testing.T) {
	app := cartApp(newFakeCartStore(), primitive.NewObjectID())

	res, err := app.Test(httptest.NewRequest("GET", "/cart", nil))
	if err != nil {
		t.Fatal(err)
	}
	body := decodeCart(t, res)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if len(body.Result.Data.Items) != 0 || body.Result.Data.TotalQty != 0 {
		t.Fatalf("expected empty cart, got %+v", body.Result.Data)
	}
}

func TestClearCart(t *testing.T) {
	user := primitive.NewObjectID()
	product := primitive.NewObjectID()
	store := newFakeCartStore(models.Dish{Id: product, Name: "Naan", Price: 3})
	store.carts[user] = &models.Cart{
		Id:    primitive.NewObjectID(),
		User:  user,
		Items: []models.CartItem{{Product: product, Qty: 4}},
	}
	app := cartApp(store, user)

	res, err := app.Test(httptest.NewRequest("DELETE", "/cart", nil))
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if _, ok := store.carts[user]; ok {
		t.Fatal("cart should be deleted")
	}

	// removing from a cleared cart reports it missing
	res, err = app.Test(httptest.NewRequest("PUT", "/cart/items/"+product.Hex(), nil))
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 after clear, got %d", res.StatusCode)
	}
}

func TestAddItemInvalidProductID(t *testing.T) {
	app := cartApp(newFakeCartStore(), primitive.NewObjectID())

	req := httptest.NewRequest("POST", "/cart/items", strings.NewReader(`{"productId":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for bad product id, got %d", res.StatusCode)
	}
}
