package models

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DishStore persists dishes and expands their category references.
type DishStore struct {
	dishes     *mongo.Collection
	categories *mongo.Collection
	log        zerolog.Logger
}

func NewDishStore(db *mongo.Database, log zerolog.Logger) *DishStore {
	return &DishStore{
		dishes:     db.Collection("dishes"),
		categories: db.Collection("categories"),
		log:        log,
	}
}

func (s *DishStore) categoriesByID(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]Category, error) {
	categories := map[primitive.ObjectID]Category{}
	if len(ids) == 0 {
		return categories, nil
	}
	cursor, err := s.categories.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var docs []Category
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	for _, cat := range docs {
		categories[cat.Id] = cat
	}
	return categories, nil
}

func (s *DishStore) expand(ctx context.Context, dish Dish) (DishView, error) {
	categories, err := s.categoriesByID(ctx, dish.Categories)
	if err != nil {
		return DishView{}, err
	}
	return ExpandDish(dish, categories), nil
}

// ByRestaurant lists a restaurant's dishes with categories expanded.
func (s *DishStore) ByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) (int, interface{}) {
	cursor, err := s.dishes.Find(ctx, bson.M{"restaurant": restaurantID})
	if err != nil {
		s.log.Error().Err(err).Msg("dishes: fetching by restaurant")
		return fiber.StatusInternalServerError, "Error fetching dishes"
	}
	var docs []Dish
	if err := cursor.All(ctx, &docs); err != nil {
		s.log.Error().Err(err).Msg("dishes: decoding by restaurant")
		return fiber.StatusInternalServerError, "Error fetching dishes"
	}

	var categoryIDs []primitive.ObjectID
	for _, doc := range docs {
		categoryIDs = append(categoryIDs, doc.Categories...)
	}
	categories, err := s.categoriesByID(ctx, categoryIDs)
	if err != nil {
		s.log.Error().Err(err).Msg("dishes: expanding categories")
		return fiber.StatusInternalServerError, "Error fetching dishes"
	}

	views := []DishView{}
	for _, doc := range docs {
		views = append(views, ExpandDish(doc, categories))
	}
	return fiber.StatusOK, views
}

// Create persists a dish and returns it with categories expanded.
func (s *DishStore) Create(ctx context.Context, dish Dish) (int, interface{}) {
	if dish.Name == "" {
		return fiber.StatusBadRequest, "Dish name is required"
	}
	if dish.Price <= 0 {
		return fiber.StatusBadRequest, "Dish price is required"
	}

	dish.Id = primitive.NewObjectID()
	if _, err := s.dishes.InsertOne(ctx, dish); err != nil {
		s.log.Error().Err(err).Msg("dishes: inserting")
		return fiber.StatusBadRequest, "Error creating dish"
	}

	view, err := s.expand(ctx, dish)
	if err != nil {
		s.log.Error().Err(err).Msg("dishes: expanding categories")
		return fiber.StatusBadRequest, "Error creating dish"
	}
	return fiber.StatusOK, view
}

// Update applies a partial update and returns the updated dish with
// categories expanded.
func (s *DishStore) Update(ctx context.Context, id primitive.ObjectID, edit DishEdit) (int, interface{}) {
	set := bson.M{}
	if edit.Name != nil {
		set["name"] = *edit.Name
	}
	if edit.Description != nil {
		set["description"] = *edit.Description
	}
	if edit.Price != nil {
		if *edit.Price <= 0 {
			return fiber.StatusBadRequest, "Dish price must be greater than zero"
		}
		set["price"] = *edit.Price
	}
	if edit.Rating != nil {
		set["rating"] = *edit.Rating
	}
	if edit.Categories != nil {
		set["categories"] = *edit.Categories
	}

	var doc Dish
	var err error
	if len(set) == 0 {
		err = s.dishes.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	} else {
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err = s.dishes.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&doc)
	}
	if err == mongo.ErrNoDocuments {
		return fiber.StatusNotFound, "Dish not found"
	}
	if err != nil {
		s.log.Error().Err(err).Msg("dishes: updating")
		return fiber.StatusBadRequest, "Error updating dish"
	}

	view, err := s.expand(ctx, doc)
	if err != nil {
		s.log.Error().Err(err).Msg("dishes: expanding categories")
		return fiber.StatusBadRequest, "Error updating dish"
	}
	return fiber.StatusOK, view
}

// Delete removes a dish and returns the removed record with categories
// expanded.
func (s *DishStore) Delete(ctx context.Context, id primitive.ObjectID) (int, interface{}) {
	var doc Dish
	err := s.dishes.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return fiber.StatusNotFound, "Dish not found"
	}
	if err != nil {
		s.log.Error().Err(err).Msg("dishes: deleting")
		return fiber.StatusBadRequest, "Error deleting dish"
	}

	view, err := s.expand(ctx, doc)
	if err != nil {
		s.log.Error().Err(err).Msg("dishes: expanding categories")
		return fiber.StatusBadRequest, "Error deleting dish"
	}
	return fiber.StatusOK, view
}
