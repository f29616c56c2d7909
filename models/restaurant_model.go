package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// City lives in the locations collection and is joined into restaurant
// responses when the location reference resolves.
type City struct {
	Id   primitive.ObjectID `bson:"_id" json:"id"`
	Name string             `bson:"name" json:"name"`
}

type Location struct {
	Address string             `bson:"address,omitempty" json:"address,omitempty"`
	City    primitive.ObjectID `bson:"city,omitempty" json:"city,omitempty"`
}

type Restaurant struct {
	Id       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Seller   primitive.ObjectID `bson:"seller" json:"seller"`
	Location *Location          `bson:"location,omitempty" json:"location,omitempty"`
}

// LocationView is a Location with the city reference expanded.
type LocationView struct {
	Address string `json:"address,omitempty"`
	City    *City  `json:"city,omitempty"`
}

type RestaurantView struct {
	Id       primitive.ObjectID `json:"id"`
	Name     string             `json:"name"`
	Seller   primitive.ObjectID `json:"seller"`
	Location *LocationView      `json:"location,omitempty"`
}

// ExpandRestaurant joins the referenced city record into the response shape.
func ExpandRestaurant(r Restaurant, cities map[primitive.ObjectID]City) RestaurantView {
	view := RestaurantView{
		Id:     r.Id,
		Name:   r.Name,
		Seller: r.Seller,
	}
	if r.Location != nil {
		view.Location = &LocationView{Address: r.Location.Address}
		if city, ok := cities[r.Location.City]; ok {
			view.Location.City = &city
		}
	}
	return view
}
