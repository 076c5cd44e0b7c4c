package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"password,omitempty"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}

// Product keeps the catalog's original BSON field casing. LegacyID is the
// old numeric catalog id some clients still send in place of the ObjectID.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LegacyID      int                `bson:"id,omitempty" json:"-"`
	Name          string             `bson:"Name" json:"Name"`
	Category      string             `bson:"Category" json:"Category"`
	Image         string             `bson:"image" json:"image"`
	OriginalPrice float64            `bson:"OriginalPrice" json:"OriginalPrice"`
	SellingPrice  float64            `bson:"SellingPrice" json:"SellingPrice"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID primitive.ObjectID `bson:"product" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

type Cart struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"userId" json:"userId"`
	Items  []CartItem         `bson:"items" json:"items"`
}

type WishlistItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID primitive.ObjectID `bson:"product" json:"productId"`
	AddedAt   time.Time          `bson:"addedAt" json:"addedAt"`
}

type Wishlist struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"userId" json:"userId"`
	Items  []WishlistItem     `bson:"items" json:"items"`
}

// OrderItem is a snapshot of the product at purchase time; name, image and
// price are frozen copies, never re-read from the catalog.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Image     string             `bson:"image" json:"image"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Items     []OrderItem        `bson:"items" json:"items"`
	Subtotal  float64            `bson:"subtotal" json:"subtotal"`
	Tax       float64            `bson:"tax" json:"tax"`
	Total     float64            `bson:"total" json:"total"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
