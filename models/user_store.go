package models

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// UserStore persists user documents and issues the tokens returned on
// register, login and edit. Every operation returns an HTTP status code and
// a result payload; the result is an error message string on failure.
type UserStore struct {
	users  *mongo.Collection
	secret string
	log    zerolog.Logger
}

func NewUserStore(db *mongo.Database, secret string, log zerolog.Logger) *UserStore {
	return &UserStore{
		users:  db.Collection("users"),
		secret: secret,
		log:    log,
	}
}

func (s *UserStore) generateToken(id primitive.ObjectID) (string, error) {
	claims := jwt.MapClaims{
		"_id": id.Hex(),
		"exp": time.Now().Add(time.Hour * 720).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// Register validates and persists a new user, returning the stored user with
// the password stripped plus a signed token.
func (s *UserStore) Register(ctx context.Context, user User) (int, interface{}, string) {
	if !ValidEmail(user.Email) {
		return fiber.StatusBadRequest, "Please enter a valid email", ""
	}
	if user.Phone != "" && !ValidPhone(user.Phone) {
		return fiber.StatusBadRequest, "Invalid Indian mobile number", ""
	}
	if user.Password == "" {
		return fiber.StatusBadRequest, "Password is required", ""
	}

	if user.Role == "" {
		user.Role = "buyer"
	}
	if !ValidRole(user.Role) {
		return fiber.StatusBadRequest, "Role must be seller or buyer", ""
	}
	if user.Preference == "" {
		user.Preference = "both"
	}
	if !ValidPreference(user.Preference) {
		return fiber.StatusBadRequest, "Preference must be veg, nonveg or both", ""
	}

	if user.Address != nil {
		if user.Address.Empty() {
			user.Address = nil
		} else if !user.Address.Complete() {
			return fiber.StatusBadRequest, "Address must include street, city, state, and zip if provided.", ""
		}
	}

	count, err := s.users.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		s.log.Error().Err(err).Msg("register: checking email uniqueness")
		return fiber.StatusBadRequest, "Error creating user", ""
	}
	if count > 0 {
		return fiber.StatusBadRequest, "User with same email already exists", ""
	}

	if user.Phone != "" {
		count, err = s.users.CountDocuments(ctx, bson.M{"phone": user.Phone})
		if err != nil {
			s.log.Error().Err(err).Msg("register: checking phone uniqueness")
			return fiber.StatusBadRequest, "Error creating user", ""
		}
		if count > 0 {
			return fiber.StatusBadRequest, "User with same phone already exists", ""
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error().Err(err).Msg("register: hashing password")
		return fiber.StatusBadRequest, "Error creating user", ""
	}
	user.Password = string(hashed)
	user.Id = primitive.NewObjectID()

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		s.log.Error().Err(err).Msg("register: inserting user")
		return fiber.StatusBadRequest, "Error creating user", ""
	}

	token, err := s.generateToken(user.Id)
	if err != nil {
		s.log.Error().Err(err).Msg("register: signing token")
		return fiber.StatusInternalServerError, "Error while generating token", ""
	}

	user.Password = ""
	return fiber.StatusOK, user, token
}

// Login checks an email/password pair. Both an unknown email and a wrong
// password report the same message so callers cannot tell which was wrong.
func (s *UserStore) Login(ctx context.Context, email, password string) (int, interface{}, string) {
	var user User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return fiber.StatusBadRequest, "Invalid Credential", ""
	}
	if err != nil {
		s.log.Error().Err(err).Msg("login: fetching user")
		return fiber.StatusInternalServerError, "Error fetching user", ""
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return fiber.StatusBadRequest, "Invalid Credential", ""
	}

	token, err := s.generateToken(user.Id)
	if err != nil {
		s.log.Error().Err(err).Msg("login: signing token")
		return fiber.StatusInternalServerError, "Error while generating token", ""
	}

	user.Password = ""
	return fiber.StatusOK, user, token
}

// Edit applies a partial update. Identifier, email and password are
// immutable; address changes follow the same all-or-nothing rule as
// registration, and clearing all four sub-fields removes the address.
func (s *UserStore) Edit(ctx context.Context, id primitive.ObjectID, edit UserEdit) (int, interface{}, string) {
	if edit.Id != nil {
		return fiber.StatusBadRequest, "Cannot update field: _id", ""
	}
	if edit.Email != nil {
		return fiber.StatusBadRequest, "Cannot update field: email", ""
	}
	if edit.Password != nil {
		return fiber.StatusBadRequest, "Cannot update field: password", ""
	}

	var user User
	err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return fiber.StatusNotFound, "User not found", ""
	}
	if err != nil {
		s.log.Error().Err(err).Msg("edit: fetching user")
		return fiber.StatusBadRequest, "Error updating user", ""
	}

	if edit.Name != nil {
		user.Name = *edit.Name
	}
	if edit.Phone != nil {
		if *edit.Phone != "" {
			if !ValidPhone(*edit.Phone) {
				return fiber.StatusBadRequest, "Invalid Indian mobile number", ""
			}
			count, err := s.users.CountDocuments(ctx, bson.M{"phone": *edit.Phone, "_id": bson.M{"$ne": id}})
			if err != nil {
				s.log.Error().Err(err).Msg("edit: checking phone uniqueness")
				return fiber.StatusBadRequest, "Error updating user", ""
			}
			if count > 0 {
				return fiber.StatusBadRequest, "User with same phone already exists", ""
			}
		}
		user.Phone = *edit.Phone
	}
	if edit.Preference != nil {
		if !ValidPreference(*edit.Preference) {
			return fiber.StatusBadRequest, "Preference must be veg, nonveg or both", ""
		}
		user.Preference = *edit.Preference
	}
	if edit.Address != nil {
		switch {
		case edit.Address.Empty():
			user.Address = nil
		case edit.Address.Complete():
			user.Address = edit.Address
		default:
			return fiber.StatusBadRequest, "Please provide all address fields: street, city, state, and zip.", ""
		}
	}

	if _, err := s.users.ReplaceOne(ctx, bson.M{"_id": id}, user); err != nil {
		s.log.Error().Err(err).Msg("edit: saving user")
		return fiber.StatusBadRequest, "Error updating user", ""
	}

	token, err := s.generateToken(user.Id)
	if err != nil {
		s.log.Error().Err(err).Msg("edit: signing token")
		return fiber.StatusInternalServerError, "Error while generating token", ""
	}

	user.Password = ""
	return fiber.StatusOK, user, token
}

// FindByID loads a user for the auth guard.
func (s *UserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	var user User
	if err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}
