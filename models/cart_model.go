package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is a line item in a cart. The product id is the unique key;
// a product never appears in two items.
type CartItem struct {
	Product primitive.ObjectID `bson:"product" json:"product"`
	Qty     int                `bson:"qty" json:"qty"`
}

// Cart holds one user's line items. There is at most one cart per user.
type Cart struct {
	Id    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	User  primitive.ObjectID `bson:"user" json:"user"`
	Items []CartItem         `bson:"items" json:"items"`
}

// AddItem increments the quantity of an existing line item by one, or
// appends a new item with quantity one.
func (c *Cart) AddItem(productID primitive.ObjectID) {
	for i := range c.Items {
		if c.Items[i].Product == productID {
			c.Items[i].Qty++
			return
		}
	}
	c.Items = append(c.Items, CartItem{Product: productID, Qty: 1})
}

// RemoveItem decrements the quantity of a line item by one, dropping the
// item entirely when its quantity reaches zero. Returns false when the
// product is not in the cart.
func (c *Cart) RemoveItem(productID primitive.ObjectID) bool {
	for i := range c.Items {
		if c.Items[i].Product == productID {
			if c.Items[i].Qty > 1 {
				c.Items[i].Qty--
			} else {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			}
			return true
		}
	}
	return false
}

// CartItemView is a line item flattened with the live name and price of the
// referenced dish.
type CartItemView struct {
	Product primitive.ObjectID `json:"product"`
	Name    string             `json:"name"`
	Price   float64            `json:"price"`
	Qty     int                `json:"qty"`
}

type CartView struct {
	Id       primitive.ObjectID `json:"id"`
	User     primitive.ObjectID `json:"user"`
	Items    []CartItemView     `json:"items"`
	TotalQty int                `json:"totalQty"`
	Subtotal float64            `json:"subtotal"`
}

// FlattenCart expands each line item against the current catalog and
// recomputes the derived totals. Prices are read from the dishes passed in,
// never snapshotted on the cart itself.
func FlattenCart(cart Cart, dishes map[primitive.ObjectID]Dish) CartView {
	view := CartView{
		Id:    cart.Id,
		User:  cart.User,
		Items: []CartItemView{},
	}
	for _, item := range cart.Items {
		dish := dishes[item.Product]
		view.Items = append(view.Items, CartItemView{
			Product: item.Product,
			Name:    dish.Name,
			Price:   dish.Price,
			Qty:     item.Qty,
		})
		view.TotalQty += item.Qty
		view.Subtotal += float64(item.Qty) * dish.Price
	}
	return view
}
