package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Mathumitha-create/BeautyHub-Backend/internal/models"
)

type Carts struct {
	col *mongo.Collection
}

func (c *Carts) ByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := c.col.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Carts) Create(ctx context.Context, cart *models.Cart) error {
	res, err := c.col.InsertOne(ctx, cart)
	if err != nil {
		return err
	}
	cart.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// SaveItems replaces the cart's item array. Last write wins; there is no
// version check on the document.
func (c *Carts) SaveItems(ctx context.Context, cartID primitive.ObjectID, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	_, err := c.col.UpdateByID(ctx, cartID, bson.M{"$set": bson.M{"items": items}})
	return err
}
