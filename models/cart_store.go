package models

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CartStore persists one cart per user. Every mutation re-fetches the cart,
// updates it in memory and writes the full item list back; responses always
// re-expand line items against the current dishes collection.
type CartStore struct {
	carts  *mongo.Collection
	dishes *mongo.Collection
	log    zerolog.Logger
}

func NewCartStore(db *mongo.Database, log zerolog.Logger) *CartStore {
	return &CartStore{
		carts:  db.Collection("carts"),
		dishes: db.Collection("dishes"),
		log:    log,
	}
}

func (s *CartStore) fetchOrCreate(ctx context.Context, userID primitive.ObjectID) (*Cart, error) {
	var cart Cart
	err := s.carts.FindOne(ctx, bson.M{"user": userID}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		cart = Cart{
			Id:    primitive.NewObjectID(),
			User:  userID,
			Items: []CartItem{},
		}
		if _, err := s.carts.InsertOne(ctx, cart); err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *CartStore) flatten(ctx context.Context, cart Cart) (CartView, error) {
	dishes := map[primitive.ObjectID]Dish{}
	if len(cart.Items) > 0 {
		ids := make([]primitive.ObjectID, 0, len(cart.Items))
		for _, item := range cart.Items {
			ids = append(ids, item.Product)
		}
		cursor, err := s.dishes.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
		if err != nil {
			return CartView{}, err
		}
		var docs []Dish
		if err := cursor.All(ctx, &docs); err != nil {
			return CartView{}, err
		}
		for _, dish := range docs {
			dishes[dish.Id] = dish
		}
	}
	return FlattenCart(cart, dishes), nil
}

func (s *CartStore) save(ctx context.Context, cart *Cart) error {
	_, err := s.carts.UpdateOne(ctx, bson.M{"_id": cart.Id}, bson.M{"$set": bson.M{"items": cart.Items}})
	return err
}

// GetOrCreate returns the user's cart, creating an empty one on first
// access.
func (s *CartStore) GetOrCreate(ctx context.Context, userID primitive.ObjectID) (int, interface{}) {
	cart, err := s.fetchOrCreate(ctx, userID)
	if err != nil {
		s.log.Error().Err(err).Msg("cart: fetching cart")
		return fiber.StatusInternalServerError, "Could not retrieve cart"
	}

	view, err := s.flatten(ctx, *cart)
	if err != nil {
		s.log.Error().Err(err).Msg("cart: expanding items")
		return fiber.StatusInternalServerError, "Could not retrieve cart"
	}
	return fiber.StatusOK, view
}

// AddItem adds one unit of a product to the user's cart, creating the cart
// if needed.
func (s *CartStore) AddItem(ctx context.Context, userID, productID primitive.ObjectID) (int, interface{}) {
	cart, err := s.fetchOrCreate(ctx, userID)
	if err != nil {
		s.log.Error().Err(err).Msg("cart: fetching cart")
		return fiber.StatusInternalServerError, "Server error while adding item to cart"
	}

	cart.AddItem(productID)

	if err := s.save(ctx, cart); err != nil {
		s.log.Error().Err(err).Msg("cart: saving cart")
		return fiber.StatusInternalServerError, "Server error while adding item to cart"
	}

	view, err := s.flatten(ctx, *cart)
	if err != nil {
		s.log.Error().Err(err).Msg("cart: expanding items")
		return fiber.StatusInternalServerError, "Server error while adding item to cart"
	}
	return fiber.StatusOK, view
}

// RemoveItem removes one unit of a product from the user's cart, dropping
// the line item entirely when its quantity reaches zero.
func (s *CartStore) RemoveItem(ctx context.Context, userID, productID primitive.ObjectID) (int, interface{}) {
	var cart Cart
	err := s.carts.FindOne(ctx, bson.M{"user": userID}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		return fiber.StatusNotFound, "Cart not found"
	}
	if err != nil {
		s.log.Error().Err(err).Msg("cart: fetching cart")
		return fiber.StatusInternalServerError, "Server error while removing item from cart"
	}

	if !cart.RemoveItem(productID) {
		return fiber.StatusNotFound, "Product not found in cart"
	}

	if err := s.save(ctx, &cart); err != nil {
		s.log.Error().Err(err).Msg("cart: saving cart")
		return fiber.StatusInternalServerError, "Server error while removing item from cart"
	}

	view, err := s.flatten(ctx, cart)
	if err != nil {
		s.log.Error().Err(err).Msg("cart: expanding items")
		return fiber.StatusInternalServerError, "Server error while removing item from cart"
	}
	return fiber.StatusOK, view
}

// Clear deletes the cart belonging to the user.
func (s *CartStore) Clear(ctx context.Context, userID primitive.ObjectID) (int, interface{}) {
	if _, err := s.carts.DeleteOne(ctx, bson.M{"user": userID}); err != nil {
		s.log.Error().Err(err).Msg("cart: clearing cart")
		return fiber.StatusInternalServerError, "Server error while clearing cart"
	}
	return fiber.StatusOK, "Cart cleared successfully"
}
