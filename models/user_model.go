package models

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is embedded in a user document. It must be either fully populated
// or absent; partial addresses are rejected on registration and edit.
type Address struct {
	Street string `bson:"street" json:"street"`
	City   string `bson:"city" json:"city"`
	State  string `bson:"state" json:"state"`
	Zip    string `bson:"zip" json:"zip"`
}

func (a Address) Empty() bool {
	return a.Street == "" && a.City == "" && a.State == "" && a.Zip == ""
}

func (a Address) Complete() bool {
	return a.Street != "" && a.City != "" && a.State != "" && a.Zip != ""
}

type User struct {
	Id         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	Email      string             `bson:"email" json:"email"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Password   string             `bson:"password" json:"-"`
	Role       string             `bson:"role" json:"role"`
	Preference string             `bson:"preference" json:"preference"`
	Address    *Address           `bson:"address,omitempty" json:"address,omitempty"`
}

// UserEdit carries a partial update. Pointer fields distinguish "absent"
// from "present but empty"; Id, Email and Password exist only so attempts
// to change them can be rejected by name.
type UserEdit struct {
	Id         *string  `json:"_id"`
	Email      *string  `json:"email"`
	Password   *string  `json:"password"`
	Name       *string  `json:"name"`
	Phone      *string  `json:"phone"`
	Preference *string  `json:"preference"`
	Address    *Address `json:"address"`
}

var emailRegex = regexp.MustCompile(`^(([^<>()[\]\.,;:\s@\"]+(\.[^<>()[\]\.,;:\s@\"]+)*)|(\".+\"))@(([^<>()[\]\.,;:\s@\"]+\.)+[^<>()[\]\.,;:\s@\"]{2,})$`)

// Indian mobile number, with or without the +91/0 prefix.
var phoneRegex = regexp.MustCompile(`^(\+91[\-\s]?|0)?[6-9]\d{9}$`)

func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func ValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

func ValidRole(role string) bool {
	return role == "seller" || role == "buyer"
}

func ValidPreference(preference string) bool {
	return preference == "veg" || preference == "nonveg" || preference == "both"
}
