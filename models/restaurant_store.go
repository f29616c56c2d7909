package models

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RestaurantStore persists restaurants and expands their city references
// from the locations collection.
type RestaurantStore struct {
	restaurants *mongo.Collection
	cities      *mongo.Collection
	log         zerolog.Logger
}

func NewRestaurantStore(db *mongo.Database, log zerolog.Logger) *RestaurantStore {
	return &RestaurantStore{
		restaurants: db.Collection("restaurants"),
		cities:      db.Collection("locations"),
		log:         log,
	}
}

func (s *RestaurantStore) citiesByID(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]City, error) {
	cities := map[primitive.ObjectID]City{}
	if len(ids) == 0 {
		return cities, nil
	}
	cursor, err := s.cities.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var docs []City
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	for _, city := range docs {
		cities[city.Id] = city
	}
	return cities, nil
}

// Create persists a restaurant owned by the given seller. Names are
// globally unique.
func (s *RestaurantStore) Create(ctx context.Context, restaurant Restaurant, seller primitive.ObjectID) (int, interface{}) {
	if restaurant.Name == "" {
		return fiber.StatusBadRequest, "Restaurant name is required"
	}

	count, err := s.restaurants.CountDocuments(ctx, bson.M{"name": restaurant.Name})
	if err != nil {
		s.log.Error().Err(err).Msg("restaurants: checking name uniqueness")
		return fiber.StatusBadRequest, "Error creating restaurant"
	}
	if count > 0 {
		return fiber.StatusBadRequest, "Restaurant name already exists"
	}

	restaurant.Id = primitive.NewObjectID()
	restaurant.Seller = seller
	if _, err := s.restaurants.InsertOne(ctx, restaurant); err != nil {
		s.log.Error().Err(err).Msg("restaurants: inserting")
		return fiber.StatusBadRequest, "Error creating restaurant"
	}

	return fiber.StatusOK, restaurant
}

// SearchByCity lists restaurants located in the given city. Only the
// enumerated "city" field may be searched; arbitrary caller-supplied field
// names are rejected. Restaurants whose city reference does not resolve are
// silently dropped from the result.
func (s *RestaurantStore) SearchByCity(ctx context.Context, field string, cityID primitive.ObjectID) (int, interface{}) {
	if field != "city" {
		return fiber.StatusBadRequest, "Unsupported search field: " + field
	}

	cursor, err := s.restaurants.Find(ctx, bson.M{"location.city": cityID})
	if err != nil {
		s.log.Error().Err(err).Msg("restaurants: searching by city")
		return fiber.StatusBadRequest, "Error fetching restaurants"
	}
	var docs []Restaurant
	if err := cursor.All(ctx, &docs); err != nil {
		s.log.Error().Err(err).Msg("restaurants: decoding search results")
		return fiber.StatusBadRequest, "Error fetching restaurants"
	}

	cities, err := s.citiesByID(ctx, []primitive.ObjectID{cityID})
	if err != nil {
		s.log.Error().Err(err).Msg("restaurants: expanding city")
		return fiber.StatusBadRequest, "Error fetching restaurants"
	}

	views := []RestaurantView{}
	for _, doc := range docs {
		view := ExpandRestaurant(doc, cities)
		if view.Location == nil || view.Location.City == nil {
			continue
		}
		views = append(views, view)
	}
	return fiber.StatusOK, views
}

// ByUser lists a seller's restaurants with location and city expanded.
func (s *RestaurantStore) ByUser(ctx context.Context, seller primitive.ObjectID) (int, interface{}) {
	cursor, err := s.restaurants.Find(ctx, bson.M{"seller": seller})
	if err != nil {
		s.log.Error().Err(err).Msg("restaurants: fetching by seller")
		return fiber.StatusBadRequest, "Error fetching restaurants"
	}
	var docs []Restaurant
	if err := cursor.All(ctx, &docs); err != nil {
		s.log.Error().Err(err).Msg("restaurants: decoding by seller")
		return fiber.StatusBadRequest, "Error fetching restaurants"
	}

	var cityIDs []primitive.ObjectID
	for _, doc := range docs {
		if doc.Location != nil && !doc.Location.City.IsZero() {
			cityIDs = append(cityIDs, doc.Location.City)
		}
	}
	cities, err := s.citiesByID(ctx, cityIDs)
	if err != nil {
		s.log.Error().Err(err).Msg("restaurants: expanding cities")
		return fiber.StatusBadRequest, "Error fetching restaurants"
	}

	views := []RestaurantView{}
	for _, doc := range docs {
		views = append(views, ExpandRestaurant(doc, cities))
	}
	return fiber.StatusOK, views
}

// ByID looks up one restaurant with its city expanded.
func (s *RestaurantStore) ByID(ctx context.Context, id primitive.ObjectID) (int, interface{}) {
	var doc Restaurant
	err := s.restaurants.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return fiber.StatusNotFound, "Restaurant not found"
	}
	if err != nil {
		s.log.Error().Err(err).Msg("restaurants: fetching by id")
		return fiber.StatusBadRequest, "Error fetching restaurant"
	}

	var cityIDs []primitive.ObjectID
	if doc.Location != nil && !doc.Location.City.IsZero() {
		cityIDs = append(cityIDs, doc.Location.City)
	}
	cities, err := s.citiesByID(ctx, cityIDs)
	if err != nil {
		s.log.Error().Err(err).Msg("restaurants: expanding city")
		return fiber.StatusBadRequest, "Error fetching restaurant"
	}

	return fiber.StatusOK, ExpandRestaurant(doc, cities)
}

// Delete removes a restaurant by id and returns the removed record.
func (s *RestaurantStore) Delete(ctx context.Context, id primitive.ObjectID) (int, interface{}) {
	var doc Restaurant
	err := s.restaurants.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return fiber.StatusNotFound, "Restaurant not found"
	}
	if err != nil {
		s.log.Error().Err(err).Msg("restaurants: deleting")
		return fiber.StatusBadRequest, "Error deleting restaurant"
	}
	return fiber.StatusOK, doc
}
