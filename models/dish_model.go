package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Category struct {
	Id   primitive.ObjectID `bson:"_id" json:"id"`
	Name string             `bson:"name" json:"name"`
}

type Dish struct {
	Id          primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64              `bson:"price" json:"price"`
	Rating      float64              `bson:"rating,omitempty" json:"rating,omitempty"`
	Categories  []primitive.ObjectID `bson:"categories,omitempty" json:"categories,omitempty"`
	Restaurant  primitive.ObjectID   `bson:"restaurant" json:"restaurant"`
}

// DishEdit carries a partial dish update; nil fields are left untouched.
type DishEdit struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	Price       *float64              `json:"price"`
	Rating      *float64              `json:"rating"`
	Categories  *[]primitive.ObjectID `json:"categories"`
}

// DishView is a Dish with category references expanded.
type DishView struct {
	Id          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Price       float64            `json:"price"`
	Rating      float64            `json:"rating,omitempty"`
	Categories  []Category         `json:"categories"`
	Restaurant  primitive.ObjectID `json:"restaurant"`
}

func ExpandDish(d Dish, categories map[primitive.ObjectID]Category) DishView {
	view := DishView{
		Id:          d.Id,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Rating:      d.Rating,
		Categories:  []Category{},
		Restaurant:  d.Restaurant,
	}
	for _, id := range d.Categories {
		if cat, ok := categories[id]; ok {
			view.Categories = append(view.Categories, cat)
		}
	}
	return view
}
